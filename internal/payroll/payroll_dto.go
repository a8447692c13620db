package payroll

import (
	"github.com/shopspring/decimal"
)

type RunPayrollRequest struct {
	Month int `json:"month" binding:"required,min=1,max=12"`
	Year  int `json:"year" binding:"required,min=1"`
}

type SetRunStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=draft processing approved paid"`
}

type GetRunsFilterRequest struct {
	Month *int `form:"month" binding:"omitempty,min=1,max=12"`
	Year  *int `form:"year" binding:"omitempty,min=1"`
}

type PayrollRunResponse struct {
	ID              string          `json:"id"`
	Month           int             `json:"month"`
	Year            int             `json:"year"`
	TotalGross      decimal.Decimal `json:"total_gross"`
	TotalDeductions decimal.Decimal `json:"total_deductions"`
	TotalNet        decimal.Decimal `json:"total_net"`
	Status          string          `json:"status"`
	OverallStatus   string          `json:"overall_status,omitempty"`
	ProcessedBy     *string         `json:"processed_by,omitempty"`
	ProcessedAt     *string         `json:"processed_at,omitempty"`
}

// RunRowError reports one staff member the run could not price. The rest
// of the run proceeds; the run stays in processing until a clean re-run.
type RunRowError struct {
	StaffID   string `json:"staff_id"`
	StaffName string `json:"staff_name"`
	Error     string `json:"error"`
}

type RunPayrollResponse struct {
	PayrollRun        PayrollRunResponse `json:"payroll_run"`
	PayslipsGenerated int                `json:"payslips_generated"`
	Errors            []RunRowError      `json:"errors,omitempty"`
}

type PayslipDetailResponse struct {
	Type   string          `json:"type"`
	Name   string          `json:"name"`
	Amount decimal.Decimal `json:"amount"`
}

type PayslipResponse struct {
	ID              string                  `json:"id"`
	PayrollRunID    string                  `json:"payroll_run_id"`
	StaffID         string                  `json:"staff_id"`
	StaffName       string                  `json:"staff_name,omitempty"`
	Position        string                  `json:"position,omitempty"`
	Month           int                     `json:"month"`
	Year            int                     `json:"year"`
	BasicSalary     decimal.Decimal         `json:"basic_salary"`
	TotalAllowances decimal.Decimal         `json:"total_allowances"`
	TotalDeductions decimal.Decimal         `json:"total_deductions"`
	GrossPay        decimal.Decimal         `json:"gross_pay"`
	NetPay          decimal.Decimal         `json:"net_pay"`
	Status          string                  `json:"status"`
	PaymentDate     *string                 `json:"payment_date,omitempty"`
	Details         []PayslipDetailResponse `json:"details,omitempty"`
}
