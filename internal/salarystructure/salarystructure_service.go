package salarystructure

import (
	"context"
	"errors"
	"strings"
	"time"

	salarystructureerrors "github.com/Fritz24/Remunera/internal/salarystructure/errors"
	"github.com/Fritz24/Remunera/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Service interface {
	Assign(ctx context.Context, req AssignSalaryRequest) (SalaryStructureResponse, error)
	GetAll(ctx context.Context, filter ListSalaryFilterRequest) ([]SalaryStructureResponse, error)
	GetActiveByStaff(ctx context.Context, staffID string) (SalaryStructureResponse, error)
}

type service struct {
	db   *gorm.DB
	repo Repository
}

func NewService(db *gorm.DB, repo Repository) Service {
	return &service{db: db, repo: repo}
}

// Assign makes the new amount the staff member's single active salary.
// Previous rows are deactivated, never deleted, inside one transaction.
func (s *service) Assign(ctx context.Context, req AssignSalaryRequest) (SalaryStructureResponse, error) {
	if !req.BasicSalary.IsPositive() {
		return SalaryStructureResponse{}, salarystructureerrors.ErrInvalidBasicSalary
	}

	effectiveAt := time.Now().UTC()
	if req.EffectiveAt != "" {
		parsed, err := time.Parse("2006-01-02", req.EffectiveAt)
		if err != nil {
			return SalaryStructureResponse{}, salarystructureerrors.ErrInvalidEffectiveDate
		}
		effectiveAt = parsed
	}

	var row SalaryStructure

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)

		exists, err := qtx.StaffExists(ctx, req.StaffID)
		if err != nil {
			return err
		}
		if !exists {
			return salarystructureerrors.ErrStaffNotFound
		}

		if err := qtx.DeactivateByStaff(ctx, req.StaffID); err != nil {
			return err
		}

		row = SalaryStructure{
			ID:          uuid.New(),
			StaffID:     uuid.MustParse(req.StaffID),
			BasicSalary: req.BasicSalary,
			IsActive:    true,
			EffectiveAt: effectiveAt,
		}
		return qtx.Create(ctx, &row)
	})
	if err != nil {
		return SalaryStructureResponse{}, err
	}

	contextutil.Logger(ctx).Info("salary structure assigned",
		zap.String("staff_id", req.StaffID),
		zap.String("basic_salary", req.BasicSalary.String()),
	)

	return mapToResponse(row), nil
}

func (s *service) GetAll(ctx context.Context, filter ListSalaryFilterRequest) ([]SalaryStructureResponse, error) {
	rows, err := s.repo.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}

	res := make([]SalaryStructureResponse, len(rows))
	for i, r := range rows {
		res[i] = mapToResponse(r)
	}
	return res, nil
}

func (s *service) GetActiveByStaff(ctx context.Context, staffID string) (SalaryStructureResponse, error) {
	row, err := s.repo.FindActiveByStaff(ctx, staffID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return SalaryStructureResponse{}, salarystructureerrors.ErrStructureNotFound
		}
		return SalaryStructureResponse{}, err
	}

	return mapToResponse(*row), nil
}

func mapToResponse(row SalaryStructure) SalaryStructureResponse {
	resp := SalaryStructureResponse{
		ID:          row.ID.String(),
		StaffID:     row.StaffID.String(),
		BasicSalary: row.BasicSalary,
		IsActive:    row.IsActive,
		EffectiveAt: row.EffectiveAt.Format("2006-01-02"),
	}
	if row.Staff != nil {
		resp.StaffName = strings.TrimSpace(row.Staff.FirstName + " " + row.Staff.LastName)
		resp.StaffNumber = row.Staff.StaffNumber
	}
	return resp
}
