package attendance

import (
	"github.com/shopspring/decimal"
)

type ListAttendanceFilterRequest struct {
	Month *int `form:"month" binding:"omitempty,min=1,max=12"`
	Year  *int `form:"year" binding:"omitempty,min=1"`
}

// ProcessedRow mirrors one sheet row back to the caller with the figures
// the upload derived from it. Column-style JSON keys match the sheet
// headers so the frontend can render the preview as uploaded.
type ProcessedRow struct {
	StaffNumber  string           `json:"Staff Number"`
	Name         string           `json:"Name"`
	Position     string           `json:"Position,omitempty"`
	HoursPresent decimal.Decimal  `json:"Hours Present"`
	HoursAbsent  decimal.Decimal  `json:"Hours Absent"`
	Overtime     decimal.Decimal  `json:"Overtime"`
	Deductions   *decimal.Decimal `json:"Deductions,omitempty"`
	NetSalary    *decimal.Decimal `json:"Net Salary,omitempty"`
	Actions      string           `json:"Actions,omitempty"`
	Error        string           `json:"error,omitempty"`
}

type UploadResult struct {
	Month        int            `json:"month"`
	Year         int            `json:"year"`
	RowsTotal    int            `json:"rows_total"`
	RowsImported int            `json:"rows_imported"`
	RowsFailed   int            `json:"rows_failed"`
	Rows         []ProcessedRow `json:"rows"`
}

type AttendanceResponse struct {
	ID            string          `json:"id"`
	StaffID       string          `json:"staff_id"`
	StaffName     string          `json:"staff_name,omitempty"`
	Position      string          `json:"position,omitempty"`
	Month         int             `json:"month"`
	Year          int             `json:"year"`
	HoursPresent  decimal.Decimal `json:"hours_present"`
	HoursAbsent   decimal.Decimal `json:"hours_absent"`
	OvertimeHours decimal.Decimal `json:"overtime_hours"`
}
