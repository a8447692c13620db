package staff

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Staff is one employed person. EmploymentType drives how the payroll
// run prices them; Active gates eligibility independently, so a staff
// member can change contract type without losing history.
type Staff struct {
	ID             uuid.UUID        `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	StaffNumber    string           `gorm:"uniqueIndex;not null"`
	FirstName      string           `gorm:"not null"`
	LastName       string           `gorm:"not null"`
	Email          string           `gorm:"uniqueIndex;not null"`
	Phone          *string
	EmploymentType string           `gorm:"type:varchar(20);not null;default:'full_time'"`
	Active         bool             `gorm:"not null;default:true"`
	HourlyRate     *decimal.Decimal `gorm:"type:numeric(14,2)"`
	HireDate       time.Time        `gorm:"type:date;not null"`
	PositionID     *uuid.UUID       `gorm:"type:uuid"`

	BankName      *string
	AccountNumber *string
	AccountName   *string
	TaxID         *string `gorm:"column:tax_id"`
	PensionID     *string `gorm:"column:pension_id"`

	CreatedAt time.Time
	UpdatedAt time.Time

	Position *PositionRow `gorm:"foreignKey:PositionID;references:ID"`
}

func (Staff) TableName() string {
	return "staff"
}

type PositionRow struct {
	ID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	Title string    `gorm:"column:title"`
}

func (PositionRow) TableName() string {
	return "position"
}

// SalaryStructureRow lets staff creation seed the initial active salary
// structure in the same transaction.
type SalaryStructureRow struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	StaffID     uuid.UUID       `gorm:"type:uuid;not null"`
	BasicSalary decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	IsActive    bool            `gorm:"column:is_active;not null;default:true"`
	EffectiveAt time.Time       `gorm:"not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (SalaryStructureRow) TableName() string {
	return "salary_structure"
}
