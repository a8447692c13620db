package benefit

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	KindAllowance = "allowance"
	KindDeduction = "deduction"
)

// Allowance is a catalog entry. Amount is the default applied to every
// assigned staff member unless their assignment overrides it.
type Allowance struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name        string          `gorm:"uniqueIndex;not null"`
	Amount      decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	Description *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (Allowance) TableName() string {
	return "allowance"
}

type Deduction struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name        string          `gorm:"uniqueIndex;not null"`
	Amount      decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	Description *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (Deduction) TableName() string {
	return "deduction"
}

// StaffAllowance links one staff member to one catalog allowance.
// Amount, when set, overrides the catalog default for this staff only.
type StaffAllowance struct {
	ID          uuid.UUID        `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	StaffID     uuid.UUID        `gorm:"type:uuid;not null;index:idx_staff_allowance,unique"`
	AllowanceID uuid.UUID        `gorm:"type:uuid;not null;index:idx_staff_allowance,unique"`
	Amount      *decimal.Decimal `gorm:"type:numeric(14,2)"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Allowance *Allowance `gorm:"foreignKey:AllowanceID;references:ID"`
}

func (StaffAllowance) TableName() string {
	return "staff_allowance"
}

type StaffDeduction struct {
	ID          uuid.UUID        `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	StaffID     uuid.UUID        `gorm:"type:uuid;not null;index:idx_staff_deduction,unique"`
	DeductionID uuid.UUID        `gorm:"type:uuid;not null;index:idx_staff_deduction,unique"`
	Amount      *decimal.Decimal `gorm:"type:numeric(14,2)"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Deduction *Deduction `gorm:"foreignKey:DeductionID;references:ID"`
}

func (StaffDeduction) TableName() string {
	return "staff_deduction"
}
