package salarystructure

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SalaryStructure is one salary assignment for a staff member. At most
// one row per staff is active; history rows stay behind for audit.
type SalaryStructure struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	StaffID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	BasicSalary decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	IsActive    bool            `gorm:"column:is_active;not null;default:true"`
	EffectiveAt time.Time       `gorm:"not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Staff *StaffRef `gorm:"foreignKey:StaffID;references:ID"`
}

func (SalaryStructure) TableName() string {
	return "salary_structure"
}

type StaffRef struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	StaffNumber string    `gorm:"column:staff_number"`
	FirstName   string    `gorm:"column:first_name"`
	LastName    string    `gorm:"column:last_name"`
}

func (StaffRef) TableName() string {
	return "staff"
}
