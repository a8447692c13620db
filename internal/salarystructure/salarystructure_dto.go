package salarystructure

import (
	"github.com/shopspring/decimal"
)

type AssignSalaryRequest struct {
	StaffID     string          `json:"staff_id" binding:"required,uuid"`
	BasicSalary decimal.Decimal `json:"basic_salary" binding:"required"`
	EffectiveAt string          `json:"effective_at" binding:"omitempty,datetime=2006-01-02"`
}

type ListSalaryFilterRequest struct {
	StaffID    *string `form:"staff_id" binding:"omitempty,uuid"`
	ActiveOnly bool    `form:"active_only"`
}

type SalaryStructureResponse struct {
	ID          string          `json:"id"`
	StaffID     string          `json:"staff_id"`
	StaffName   string          `json:"staff_name,omitempty"`
	StaffNumber string          `json:"staff_number,omitempty"`
	BasicSalary decimal.Decimal `json:"basic_salary"`
	IsActive    bool            `json:"is_active"`
	EffectiveAt string          `json:"effective_at"`
}
