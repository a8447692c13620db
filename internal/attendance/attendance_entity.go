package attendance

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Attendance is one staff member's aggregated hours for a (month, year)
// period. Re-uploading a sheet for the same period overwrites the row.
type Attendance struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	StaffID       uuid.UUID       `gorm:"type:uuid;not null;index:idx_attendance_period,unique"`
	Month         int             `gorm:"not null;index:idx_attendance_period,unique"`
	Year          int             `gorm:"not null;index:idx_attendance_period,unique"`
	HoursPresent  decimal.Decimal `gorm:"type:numeric(8,2);not null;default:0"`
	HoursAbsent   decimal.Decimal `gorm:"type:numeric(8,2);not null;default:0"`
	OvertimeHours decimal.Decimal `gorm:"type:numeric(8,2);not null;default:0"`
	CreatedAt     time.Time
	UpdatedAt     time.Time

	Staff *StaffRow `gorm:"foreignKey:StaffID;references:ID"`
}

func (Attendance) TableName() string {
	return "attendance"
}

// StaffRow is the slice of the staff table the uploader needs to match
// sheet rows and price previews.
type StaffRow struct {
	ID             uuid.UUID        `gorm:"type:uuid;primaryKey"`
	StaffNumber    string           `gorm:"column:staff_number"`
	FirstName      string           `gorm:"column:first_name"`
	LastName       string           `gorm:"column:last_name"`
	EmploymentType string           `gorm:"column:employment_type"`
	Active         bool             `gorm:"column:active"`
	HourlyRate     *decimal.Decimal `gorm:"column:hourly_rate;type:numeric(14,2)"`
	PositionID     *uuid.UUID       `gorm:"type:uuid"`

	Position   *PositionRow        `gorm:"foreignKey:PositionID;references:ID"`
	Deductions []StaffDeductionRow `gorm:"foreignKey:StaffID"`
}

func (StaffRow) TableName() string {
	return "staff"
}

func (s StaffRow) FullName() string {
	if s.LastName == "" {
		return s.FirstName
	}
	return s.FirstName + " " + s.LastName
}

type PositionRow struct {
	ID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	Title string    `gorm:"column:title"`
}

func (PositionRow) TableName() string {
	return "position"
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
