package payroll

import (
	"fmt"
	"strings"

	"github.com/Fritz24/Remunera/internal/compensation"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// EligibleStaff is the read model the run loop consumes: one active staff
// member with the joins compensation needs for the target period.
type EligibleStaff struct {
	ID             uuid.UUID        `gorm:"type:uuid;primaryKey"`
	StaffNumber    string           `gorm:"column:staff_number"`
	FirstName      string           `gorm:"column:first_name"`
	LastName       string           `gorm:"column:last_name"`
	EmploymentType string           `gorm:"column:employment_type"`
	Active         bool             `gorm:"column:active"`
	HourlyRate     *decimal.Decimal `gorm:"column:hourly_rate;type:numeric(14,2)"`
	PositionID     *uuid.UUID       `gorm:"type:uuid"`

	Salaries    []SalaryRow         `gorm:"foreignKey:StaffID"`
	Allowances  []StaffAllowanceRow `gorm:"foreignKey:StaffID"`
	Deductions  []StaffDeductionRow `gorm:"foreignKey:StaffID"`
	Attendances []AttendanceRow     `gorm:"foreignKey:StaffID"`
}

func (EligibleStaff) TableName() string {
	return "staff"
}

type SalaryRow struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	StaffID     uuid.UUID       `gorm:"type:uuid"`
	BasicSalary decimal.Decimal `gorm:"column:basic_salary;type:numeric(14,2)"`
	IsActive    bool            `gorm:"column:is_active"`
}

func (SalaryRow) TableName() string {
	return "salary_structure"
}

type StaffAllowanceRow struct {
	ID          uuid.UUID        `gorm:"type:uuid;primaryKey"`
	StaffID     uuid.UUID        `gorm:"type:uuid"`
	AllowanceID uuid.UUID        `gorm:"type:uuid"`
	Amount      *decimal.Decimal `gorm:"type:numeric(14,2)"`

	Allowance *AllowanceRow `gorm:"foreignKey:AllowanceID;references:ID"`
}

func (StaffAllowanceRow) TableName() string {
	return "staff_allowance"
}

type AllowanceRow struct {
	ID     uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Name   string          `gorm:"column:name"`
	Amount decimal.Decimal `gorm:"type:numeric(14,2)"`
}

func (AllowanceRow) TableName() string {
	return "allowance"
}

type StaffDeductionRow struct {
	ID          uuid.UUID        `gorm:"type:uuid;primaryKey"`
	StaffID     uuid.UUID        `gorm:"type:uuid"`
	DeductionID uuid.UUID        `gorm:"type:uuid"`
	Amount      *decimal.Decimal `gorm:"type:numeric(14,2)"`

	Deduction *DeductionRow `gorm:"foreignKey:DeductionID;references:ID"`
}

func (StaffDeductionRow) TableName() string {
	return "staff_deduction"
}

type DeductionRow struct {
	ID     uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Name   string          `gorm:"column:name"`
	Amount decimal.Decimal `gorm:"type:numeric(14,2)"`
}

func (DeductionRow) TableName() string {
	return "deduction"
}

type AttendanceRow struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	StaffID       uuid.UUID       `gorm:"type:uuid"`
	Month         int             `gorm:"column:month"`
	Year          int             `gorm:"column:year"`
	HoursPresent  decimal.Decimal `gorm:"column:hours_present;type:numeric(8,2)"`
	HoursAbsent   decimal.Decimal `gorm:"column:hours_absent;type:numeric(8,2)"`
	OvertimeHours decimal.Decimal `gorm:"column:overtime_hours;type:numeric(8,2)"`
}

func (AttendanceRow) TableName() string {
	return "attendance"
}

func (s EligibleStaff) FullName() string {
	return strings.TrimSpace(s.FirstName + " " + s.LastName)
}

// PayProfile maps the read model onto the resolver's input. Part-time
// staff without an hourly rate cannot be priced and become a row error
// in the run response rather than aborting the whole run.
func (s EligibleStaff) PayProfile() (compensation.StaffProfile, error) {
	profile := compensation.StaffProfile{
		EmploymentType: s.EmploymentType,
		HourlyRate:     s.HourlyRate,
	}

	if s.EmploymentType == compensation.EmploymentPartTime && s.HourlyRate == nil {
		return profile, payrollMissingHourlyRate(s.FullName())
	}

	for _, sal := range s.Salaries {
		if sal.IsActive {
			profile.BasicSalary = sal.BasicSalary
			break
		}
	}

	if len(s.Attendances) > 0 {
		att := s.Attendances[0]
		profile.Attendance = &compensation.Hours{
			Present:  att.HoursPresent,
			Absent:   att.HoursAbsent,
			Overtime: att.OvertimeHours,
		}
	}

	for _, sa := range s.Allowances {
		if sa.Allowance == nil {
			continue
		}
		profile.Allowances = append(profile.Allowances, compensation.BenefitItem{
			Name:          sa.Allowance.Name,
			Amount:        sa.Amount,
			CatalogAmount: sa.Allowance.Amount,
		})
	}

	for _, sd := range s.Deductions {
		if sd.Deduction == nil {
			continue
		}
		profile.Deductions = append(profile.Deductions, compensation.BenefitItem{
			Name:          sd.Deduction.Name,
			Amount:        sd.Amount,
			CatalogAmount: sd.Deduction.Amount,
		})
	}

	return profile, nil
}

func payrollMissingHourlyRate(name string) error {
	return fmt.Errorf("hourly rate not set for %s", name)
}
