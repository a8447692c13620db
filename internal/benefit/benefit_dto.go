package benefit

import (
	"github.com/shopspring/decimal"
)

type CreateBenefitRequest struct {
	Name        string          `json:"name" binding:"required,max=120"`
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	Description *string         `json:"description" binding:"omitempty,max=255"`
}

type UpdateBenefitRequest struct {
	Name        *string          `json:"name" binding:"omitempty,max=120"`
	Amount      *decimal.Decimal `json:"amount"`
	Description *string          `json:"description" binding:"omitempty,max=255"`
}

type BenefitResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Amount      decimal.Decimal `json:"amount"`
	Description *string         `json:"description,omitempty"`
}

// AssignmentInput is one desired benefit for a staff member. Amount
// overrides the catalog default when present.
type AssignmentInput struct {
	BenefitID string           `json:"benefit_id" binding:"required,uuid"`
	Amount    *decimal.Decimal `json:"amount"`
}

// SyncAssignmentsRequest is the full desired set: what is absent gets
// removed, what is new gets added, what changed gets updated.
type SyncAssignmentsRequest struct {
	Assignments []AssignmentInput `json:"assignments" binding:"dive"`
}

type AssignmentResponse struct {
	ID        string           `json:"id"`
	BenefitID string           `json:"benefit_id"`
	Name      string           `json:"name"`
	Amount    *decimal.Decimal `json:"amount,omitempty"`
	Effective decimal.Decimal  `json:"effective_amount"`
}

type StaffBenefitsResponse struct {
	StaffID    string               `json:"staff_id"`
	Allowances []AssignmentResponse `json:"allowances"`
	Deductions []AssignmentResponse `json:"deductions"`
}
