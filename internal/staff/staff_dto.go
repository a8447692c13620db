package staff

import (
	"github.com/shopspring/decimal"
)

type CreateStaffRequest struct {
	StaffNumber    string           `json:"staff_number" binding:"omitempty,max=20"`
	FirstName      string           `json:"first_name" binding:"required,max=80"`
	LastName       string           `json:"last_name" binding:"required,max=80"`
	Email          string           `json:"email" binding:"required,email"`
	Phone          *string          `json:"phone" binding:"omitempty,max=30"`
	EmploymentType string           `json:"employment_type" binding:"required,oneof=full_time part_time"`
	HourlyRate     *decimal.Decimal `json:"hourly_rate"`
	BasicSalary    *decimal.Decimal `json:"basic_salary"`
	HireDate       string           `json:"hire_date" binding:"required"`
	PositionID     *string          `json:"position_id" binding:"omitempty,uuid"`
	BankName       *string          `json:"bank_name"`
	AccountNumber  *string          `json:"account_number"`
	AccountName    *string          `json:"account_name"`
	TaxID          *string          `json:"tax_id"`
	PensionID      *string          `json:"pension_id"`
}

type UpdateStaffRequest struct {
	FirstName      *string          `json:"first_name" binding:"omitempty,max=80"`
	LastName       *string          `json:"last_name" binding:"omitempty,max=80"`
	Email          *string          `json:"email" binding:"omitempty,email"`
	Phone          *string          `json:"phone" binding:"omitempty,max=30"`
	EmploymentType *string          `json:"employment_type" binding:"omitempty,oneof=full_time part_time"`
	Active         *bool            `json:"active"`
	HourlyRate     *decimal.Decimal `json:"hourly_rate"`
	PositionID     *string          `json:"position_id" binding:"omitempty,uuid"`
	BankName       *string          `json:"bank_name"`
	AccountNumber  *string          `json:"account_number"`
	AccountName    *string          `json:"account_name"`
	TaxID          *string          `json:"tax_id"`
	PensionID      *string          `json:"pension_id"`
}

type ListStaffFilterRequest struct {
	Active         *bool   `form:"active"`
	EmploymentType *string `form:"employment_type" binding:"omitempty,oneof=full_time part_time"`
	Search         *string `form:"search" binding:"omitempty,max=120"`
}

type StaffResponse struct {
	ID             string           `json:"id"`
	StaffNumber    string           `json:"staff_number"`
	FirstName      string           `json:"first_name"`
	LastName       string           `json:"last_name"`
	Email          string           `json:"email"`
	Phone          *string          `json:"phone,omitempty"`
	EmploymentType string           `json:"employment_type"`
	Active         bool             `json:"active"`
	HourlyRate     *decimal.Decimal `json:"hourly_rate,omitempty"`
	HireDate       string           `json:"hire_date"`
	PositionID     *string          `json:"position_id,omitempty"`
	Position       string           `json:"position,omitempty"`
	BankName       *string          `json:"bank_name,omitempty"`
	AccountNumber  *string          `json:"account_number,omitempty"`
	AccountName    *string          `json:"account_name,omitempty"`
	TaxID          *string          `json:"tax_id,omitempty"`
	PensionID      *string          `json:"pension_id,omitempty"`
}

// StaffOption is the trimmed shape select inputs consume.
type StaffOption struct {
	ID          string `json:"id"`
	StaffNumber string `json:"staff_number"`
	Name        string `json:"name"`
}
