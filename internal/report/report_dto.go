package report

import (
	"github.com/shopspring/decimal"
)

type PeriodFilterRequest struct {
	Month int `form:"month" binding:"required,min=1,max=12"`
	Year  int `form:"year" binding:"required,min=1"`
}

// BenefitReportRow aggregates one allowance or deduction across every
// payslip in the period.
type BenefitReportRow struct {
	Name       string          `json:"name"`
	StaffCount int             `json:"staff_count"`
	Total      decimal.Decimal `json:"total"`
}

type BenefitReportResponse struct {
	Month int                `json:"month"`
	Year  int                `json:"year"`
	Items []BenefitReportRow `json:"items"`
	Total decimal.Decimal    `json:"total"`
}

type MonthlySummaryResponse struct {
	Month           int             `json:"month"`
	Year            int             `json:"year"`
	StaffCount      int             `json:"staff_count"`
	TotalGross      decimal.Decimal `json:"total_gross"`
	TotalAllowances decimal.Decimal `json:"total_allowances"`
	TotalDeductions decimal.Decimal `json:"total_deductions"`
	TotalNet        decimal.Decimal `json:"total_net"`
	StatusCounts    map[string]int  `json:"status_counts"`
}

type PositionPayrollRow struct {
	Position   string          `json:"position"`
	StaffCount int             `json:"staff_count"`
	TotalGross decimal.Decimal `json:"total_gross"`
	TotalNet   decimal.Decimal `json:"total_net"`
}

type PositionPayrollResponse struct {
	Month int                  `json:"month"`
	Year  int                  `json:"year"`
	Items []PositionPayrollRow `json:"items"`
}
