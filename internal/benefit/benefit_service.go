package benefit

import (
	"context"
	"errors"
	"strings"

	benefiterrors "github.com/Fritz24/Remunera/internal/benefit/errors"
	"github.com/Fritz24/Remunera/internal/shared/contextutil"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Service interface {
	CreateAllowance(ctx context.Context, req CreateBenefitRequest) (BenefitResponse, error)
	ListAllowances(ctx context.Context) ([]BenefitResponse, error)
	UpdateAllowance(ctx context.Context, id string, req UpdateBenefitRequest) (BenefitResponse, error)
	DeleteAllowance(ctx context.Context, id string) error

	CreateDeduction(ctx context.Context, req CreateBenefitRequest) (BenefitResponse, error)
	ListDeductions(ctx context.Context) ([]BenefitResponse, error)
	UpdateDeduction(ctx context.Context, id string, req UpdateBenefitRequest) (BenefitResponse, error)
	DeleteDeduction(ctx context.Context, id string) error

	SyncStaffAllowances(ctx context.Context, staffID string, req SyncAssignmentsRequest) ([]AssignmentResponse, error)
	SyncStaffDeductions(ctx context.Context, staffID string, req SyncAssignmentsRequest) ([]AssignmentResponse, error)
	GetStaffBenefits(ctx context.Context, staffID string) (StaffBenefitsResponse, error)
}

type service struct {
	db   *gorm.DB
	repo Repository
}

func NewService(db *gorm.DB, repo Repository) Service {
	return &service{db: db, repo: repo}
}

func (s *service) CreateAllowance(ctx context.Context, req CreateBenefitRequest) (BenefitResponse, error) {
	row := Allowance{
		ID:          uuid.New(),
		Name:        req.Name,
		Amount:      req.Amount,
		Description: req.Description,
	}
	if err := s.repo.CreateAllowance(ctx, &row); err != nil {
		return BenefitResponse{}, mapCatalogError(err)
	}
	return mapAllowance(row), nil
}

func (s *service) ListAllowances(ctx context.Context) ([]BenefitResponse, error) {
	rows, err := s.repo.ListAllowances(ctx)
	if err != nil {
		return nil, err
	}
	res := make([]BenefitResponse, len(rows))
	for i, r := range rows {
		res[i] = mapAllowance(r)
	}
	return res, nil
}

func (s *service) UpdateAllowance(ctx context.Context, id string, req UpdateBenefitRequest) (BenefitResponse, error) {
	row, err := s.repo.FindAllowanceByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return BenefitResponse{}, benefiterrors.ErrBenefitNotFound
		}
		return BenefitResponse{}, err
	}

	applyCatalogUpdate(&row.Name, &row.Amount, &row.Description, req)
	if err := s.repo.UpdateAllowance(ctx, row); err != nil {
		return BenefitResponse{}, mapCatalogError(err)
	}
	return mapAllowance(*row), nil
}

// DeleteAllowance refuses while assignments reference the catalog entry;
// payslip history is unaffected either way because line items copy the
// name and amount.
func (s *service) DeleteAllowance(ctx context.Context, id string) error {
	if _, err := s.repo.FindAllowanceByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return benefiterrors.ErrBenefitNotFound
		}
		return err
	}

	count, err := s.repo.CountAllowanceAssignments(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return benefiterrors.ErrBenefitInUse
	}
	return s.repo.DeleteAllowance(ctx, id)
}

func (s *service) CreateDeduction(ctx context.Context, req CreateBenefitRequest) (BenefitResponse, error) {
	row := Deduction{
		ID:          uuid.New(),
		Name:        req.Name,
		Amount:      req.Amount,
		Description: req.Description,
	}
	if err := s.repo.CreateDeduction(ctx, &row); err != nil {
		return BenefitResponse{}, mapCatalogError(err)
	}
	return mapDeduction(row), nil
}

func (s *service) ListDeductions(ctx context.Context) ([]BenefitResponse, error) {
	rows, err := s.repo.ListDeductions(ctx)
	if err != nil {
		return nil, err
	}
	res := make([]BenefitResponse, len(rows))
	for i, r := range rows {
		res[i] = mapDeduction(r)
	}
	return res, nil
}

func (s *service) UpdateDeduction(ctx context.Context, id string, req UpdateBenefitRequest) (BenefitResponse, error) {
	row, err := s.repo.FindDeductionByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return BenefitResponse{}, benefiterrors.ErrBenefitNotFound
		}
		return BenefitResponse{}, err
	}

	applyCatalogUpdate(&row.Name, &row.Amount, &row.Description, req)
	if err := s.repo.UpdateDeduction(ctx, row); err != nil {
		return BenefitResponse{}, mapCatalogError(err)
	}
	return mapDeduction(*row), nil
}

func (s *service) DeleteDeduction(ctx context.Context, id string) error {
	if _, err := s.repo.FindDeductionByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return benefiterrors.ErrBenefitNotFound
		}
		return err
	}

	count, err := s.repo.CountDeductionAssignments(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return benefiterrors.ErrBenefitInUse
	}
	return s.repo.DeleteDeduction(ctx, id)
}

// SyncStaffAllowances replaces the staff member's allowance set with the
// request: missing rows are deleted, new ones inserted and changed
// overrides updated, all in one transaction.
func (s *service) SyncStaffAllowances(ctx context.Context, staffID string, req SyncAssignmentsRequest) ([]AssignmentResponse, error) {
	sid, err := uuid.Parse(staffID)
	if err != nil {
		return nil, benefiterrors.ErrStaffNotFound
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)

		if err := s.requireStaff(ctx, qtx, staffID); err != nil {
			return err
		}

		current, err := qtx.ListStaffAllowances(ctx, staffID)
		if err != nil {
			return err
		}

		currentByBenefit := make(map[string]StaffAllowance, len(current))
		for _, row := range current {
			currentByBenefit[row.AllowanceID.String()] = row
		}

		var toCreate []StaffAllowance
		desired := make(map[string]struct{}, len(req.Assignments))
		for _, in := range req.Assignments {
			desired[in.BenefitID] = struct{}{}

			existing, ok := currentByBenefit[in.BenefitID]
			if !ok {
				if _, err := qtx.FindAllowanceByID(ctx, in.BenefitID); err != nil {
					if errors.Is(err, gorm.ErrRecordNotFound) {
						return benefiterrors.ErrUnknownBenefitRef
					}
					return err
				}
				toCreate = append(toCreate, StaffAllowance{
					ID:          uuid.New(),
					StaffID:     sid,
					AllowanceID: uuid.MustParse(in.BenefitID),
					Amount:      in.Amount,
				})
				continue
			}

			if !amountsEqual(existing.Amount, in.Amount) {
				existing.Amount = in.Amount
				if err := qtx.UpdateStaffAllowance(ctx, &existing); err != nil {
					return err
				}
			}
		}

		var toDelete []uuid.UUID
		for benefitID, row := range currentByBenefit {
			if _, keep := desired[benefitID]; !keep {
				toDelete = append(toDelete, row.ID)
			}
		}

		if len(toDelete) > 0 {
			if err := qtx.DeleteStaffAllowances(ctx, toDelete); err != nil {
				return err
			}
		}
		if len(toCreate) > 0 {
			if err := qtx.CreateStaffAllowances(ctx, toCreate); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	contextutil.Logger(ctx).Info("staff allowances synced",
		zap.String("staff_id", staffID),
		zap.Int("assignments", len(req.Assignments)),
	)

	rows, err := s.repo.ListStaffAllowances(ctx, staffID)
	if err != nil {
		return nil, err
	}
	return mapStaffAllowances(rows), nil
}

func (s *service) SyncStaffDeductions(ctx context.Context, staffID string, req SyncAssignmentsRequest) ([]AssignmentResponse, error) {
	sid, err := uuid.Parse(staffID)
	if err != nil {
		return nil, benefiterrors.ErrStaffNotFound
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)

		if err := s.requireStaff(ctx, qtx, staffID); err != nil {
			return err
		}

		current, err := qtx.ListStaffDeductions(ctx, staffID)
		if err != nil {
			return err
		}

		currentByBenefit := make(map[string]StaffDeduction, len(current))
		for _, row := range current {
			currentByBenefit[row.DeductionID.String()] = row
		}

		var toCreate []StaffDeduction
		desired := make(map[string]struct{}, len(req.Assignments))
		for _, in := range req.Assignments {
			desired[in.BenefitID] = struct{}{}

			existing, ok := currentByBenefit[in.BenefitID]
			if !ok {
				if _, err := qtx.FindDeductionByID(ctx, in.BenefitID); err != nil {
					if errors.Is(err, gorm.ErrRecordNotFound) {
						return benefiterrors.ErrUnknownBenefitRef
					}
					return err
				}
				toCreate = append(toCreate, StaffDeduction{
					ID:          uuid.New(),
					StaffID:     sid,
					DeductionID: uuid.MustParse(in.BenefitID),
					Amount:      in.Amount,
				})
				continue
			}

			if !amountsEqual(existing.Amount, in.Amount) {
				existing.Amount = in.Amount
				if err := qtx.UpdateStaffDeduction(ctx, &existing); err != nil {
					return err
				}
			}
		}

		var toDelete []uuid.UUID
		for benefitID, row := range currentByBenefit {
			if _, keep := desired[benefitID]; !keep {
				toDelete = append(toDelete, row.ID)
			}
		}

		if len(toDelete) > 0 {
			if err := qtx.DeleteStaffDeductions(ctx, toDelete); err != nil {
				return err
			}
		}
		if len(toCreate) > 0 {
			if err := qtx.CreateStaffDeductions(ctx, toCreate); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	rows, err := s.repo.ListStaffDeductions(ctx, staffID)
	if err != nil {
		return nil, err
	}
	return mapStaffDeductions(rows), nil
}

func (s *service) GetStaffBenefits(ctx context.Context, staffID string) (StaffBenefitsResponse, error) {
	if err := s.requireStaff(ctx, s.repo, staffID); err != nil {
		return StaffBenefitsResponse{}, err
	}

	allowances, err := s.repo.ListStaffAllowances(ctx, staffID)
	if err != nil {
		return StaffBenefitsResponse{}, err
	}
	deductions, err := s.repo.ListStaffDeductions(ctx, staffID)
	if err != nil {
		return StaffBenefitsResponse{}, err
	}

	return StaffBenefitsResponse{
		StaffID:    staffID,
		Allowances: mapStaffAllowances(allowances),
		Deductions: mapStaffDeductions(deductions),
	}, nil
}

func (s *service) requireStaff(ctx context.Context, repo Repository, staffID string) error {
	exists, err := repo.StaffExists(ctx, staffID)
	if err != nil {
		return err
	}
	if !exists {
		return benefiterrors.ErrStaffNotFound
	}
	return nil
}

func amountsEqual(a, b *decimal.Decimal) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Equal(*b)
}

func applyCatalogUpdate(name *string, amount *decimal.Decimal, description **string, req UpdateBenefitRequest) {
	if req.Name != nil {
		*name = *req.Name
	}
	if req.Amount != nil {
		*amount = *req.Amount
	}
	if req.Description != nil {
		*description = req.Description
	}
}

func mapCatalogError(err error) error {
	if strings.Contains(err.Error(), "duplicate key") {
		return benefiterrors.ErrDuplicateName
	}
	return err
}

func mapAllowance(row Allowance) BenefitResponse {
	return BenefitResponse{
		ID:          row.ID.String(),
		Name:        row.Name,
		Amount:      row.Amount,
		Description: row.Description,
	}
}

func mapDeduction(row Deduction) BenefitResponse {
	return BenefitResponse{
		ID:          row.ID.String(),
		Name:        row.Name,
		Amount:      row.Amount,
		Description: row.Description,
	}
}

func mapStaffAllowances(rows []StaffAllowance) []AssignmentResponse {
	res := make([]AssignmentResponse, len(rows))
	for i, row := range rows {
		res[i] = AssignmentResponse{
			ID:        row.ID.String(),
			BenefitID: row.AllowanceID.String(),
			Amount:    row.Amount,
		}
		if row.Allowance != nil {
			res[i].Name = row.Allowance.Name
			res[i].Effective = row.Allowance.Amount
		}
		if row.Amount != nil {
			res[i].Effective = *row.Amount
		}
	}
	return res
}

func mapStaffDeductions(rows []StaffDeduction) []AssignmentResponse {
	res := make([]AssignmentResponse, len(rows))
	for i, row := range rows {
		res[i] = AssignmentResponse{
			ID:        row.ID.String(),
			BenefitID: row.DeductionID.String(),
			Amount:    row.Amount,
		}
		if row.Deduction != nil {
			res[i].Name = row.Deduction.Name
			res[i].Effective = row.Deduction.Amount
		}
		if row.Amount != nil {
			res[i].Effective = *row.Amount
		}
	}
	return res
}
