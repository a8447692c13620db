package payroll

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PayrollRun is one processing pass over all eligible staff for a
// (month, year) period. Totals are recomputed from scratch on every run.
type PayrollRun struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Month           int             `gorm:"not null;index:idx_run_period,unique"`
	Year            int             `gorm:"not null;index:idx_run_period,unique"`
	TotalGross      decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0"`
	TotalDeductions decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0"`
	TotalNet        decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0"`
	Status          string          `gorm:"type:varchar(20);not null;default:'draft'"`
	ProcessedBy     *uuid.UUID      `gorm:"type:uuid"`
	ProcessedAt     *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time

	Payslips []Payslip `gorm:"foreignKey:PayrollRunID"`
}

func (PayrollRun) TableName() string {
	return "payroll_run"
}

// Payslip is one staff member's computed pay breakdown for one run.
// Owned by the run: purged and regenerated with it.
type Payslip struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	PayrollRunID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	StaffID         uuid.UUID       `gorm:"type:uuid;not null;index"`
	Month           int             `gorm:"not null;index:idx_payslip_period"`
	Year            int             `gorm:"not null;index:idx_payslip_period"`
	BasicSalary     decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0"`
	TotalAllowances decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0"`
	TotalDeductions decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0"`
	GrossPay        decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0"`
	NetPay          decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0"`
	Status          string          `gorm:"type:varchar(20);not null;default:'pending'"`
	PaymentDate     *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time

	Details []PayslipDetail `gorm:"foreignKey:PayslipID"`
	Staff   *StaffRef       `gorm:"foreignKey:StaffID;references:ID"`
}

func (Payslip) TableName() string {
	return "payslip"
}

// PayslipDetail is one allowance or deduction line item, an audit trail
// of what composed the payslip totals.
type PayslipDetail struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	PayslipID uuid.UUID       `gorm:"type:uuid;not null;index"`
	Type      string          `gorm:"type:varchar(20);not null"`
	Name      string          `gorm:"type:varchar(120);not null"`
	Amount    decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0"`
	CreatedAt time.Time
}

func (PayslipDetail) TableName() string {
	return "payslip_details"
}

type StaffRef struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	StaffNumber string     `gorm:"column:staff_number"`
	FirstName   string     `gorm:"column:first_name"`
	LastName    string     `gorm:"column:last_name"`
	PositionID  *uuid.UUID `gorm:"type:uuid"`

	Position *PositionRef `gorm:"foreignKey:PositionID;references:ID"`
}

func (StaffRef) TableName() string {
	return "staff"
}

type PositionRef struct {
	ID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	Title string    `gorm:"column:title"`
}

func (PositionRef) TableName() string {
	return "position"
}
