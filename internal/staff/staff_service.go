package staff

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Fritz24/Remunera/internal/compensation"
	"github.com/Fritz24/Remunera/internal/shared/contextutil"
	"github.com/Fritz24/Remunera/internal/shared/counter"
	stafferrors "github.com/Fritz24/Remunera/internal/staff/errors"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
)

const StaffOptionsKey = "staff:options"

type Service interface {
	Create(ctx context.Context, req CreateStaffRequest) (StaffResponse, error)
	GetAll(ctx context.Context, filter ListStaffFilterRequest) ([]StaffResponse, error)
	GetOptions(ctx context.Context) ([]StaffOption, error)
	GetByID(ctx context.Context, id string) (StaffResponse, error)
	Update(ctx context.Context, id string, req UpdateStaffRequest) (StaffResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	db      *gorm.DB
	repo    Repository
	counter counter.Repository
	rdb     *redis.Client
	sf      *singleflight.Group
	logger  *zap.Logger
}

func NewService(db *gorm.DB, repo Repository, counterRepo counter.Repository, rdb *redis.Client, logger ...*zap.Logger) Service {
	l := zap.L().Named("staff.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("staff.service")
	}
	return &service{
		db:      db,
		repo:    repo,
		counter: counterRepo,
		rdb:     rdb,
		sf:      &singleflight.Group{},
		logger:  l,
	}
}

func (s *service) Create(ctx context.Context, req CreateStaffRequest) (StaffResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create staff requested",
		zap.String("request_id", rid),
		zap.String("email", req.Email),
		zap.String("employment_type", req.EmploymentType),
	)

	hireDate, err := time.Parse("2006-01-02", req.HireDate)
	if err != nil {
		return StaffResponse{}, stafferrors.ErrInvalidHireDate
	}
	if req.EmploymentType == compensation.EmploymentPartTime && req.HourlyRate == nil {
		return StaffResponse{}, stafferrors.ErrHourlyRateRequired
	}
	if req.EmploymentType == compensation.EmploymentFullTime && req.BasicSalary == nil {
		return StaffResponse{}, stafferrors.ErrBasicSalaryRequired
	}

	var row Staff

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)

		staffNumber := req.StaffNumber
		if staffNumber == "" {
			nextVal, err := s.counter.GetNextValue(ctx, "staff_number")
			if err != nil {
				return err
			}
			staffNumber = fmt.Sprintf("EMP-%06d", nextVal)
		}

		row = Staff{
			ID:             uuid.New(),
			StaffNumber:    staffNumber,
			FirstName:      req.FirstName,
			LastName:       req.LastName,
			Email:          req.Email,
			Phone:          req.Phone,
			EmploymentType: req.EmploymentType,
			Active:         true,
			HourlyRate:     req.HourlyRate,
			HireDate:       hireDate,
			PositionID:     uuidPtr(req.PositionID),
			BankName:       req.BankName,
			AccountNumber:  req.AccountNumber,
			AccountName:    req.AccountName,
			TaxID:          req.TaxID,
			PensionID:      req.PensionID,
		}

		if err := qtx.Create(ctx, &row); err != nil {
			return mapRepositoryError(err)
		}

		if req.EmploymentType == compensation.EmploymentFullTime {
			return qtx.CreateSalaryStructure(ctx, &SalaryStructureRow{
				ID:          uuid.New(),
				StaffID:     row.ID,
				BasicSalary: *req.BasicSalary,
				IsActive:    true,
				EffectiveAt: hireDate,
			})
		}
		return nil
	})
	if err != nil {
		s.logger.Error("create staff failed", zap.String("request_id", rid), zap.Error(err))
		return StaffResponse{}, err
	}

	s.invalidateOptions(ctx)
	s.logger.Info("create staff success",
		zap.String("request_id", rid),
		zap.String("staff_id", row.ID.String()),
		zap.String("staff_number", row.StaffNumber),
	)

	return mapToResponse(row), nil
}

func (s *service) GetAll(ctx context.Context, filter ListStaffFilterRequest) ([]StaffResponse, error) {
	rows, err := s.repo.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}

	res := make([]StaffResponse, len(rows))
	for i, r := range rows {
		res[i] = mapToResponse(r)
	}
	return res, nil
}

// GetOptions serves the select-input list from redis, with singleflight
// keeping a cold cache from stampeding the database.
func (s *service) GetOptions(ctx context.Context) ([]StaffOption, error) {
	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, StaffOptionsKey).Result(); err == nil {
			var resp []StaffOption
			if json.Unmarshal([]byte(cached), &resp) == nil {
				return resp, nil
			}
		}
	}

	v, err, _ := s.sf.Do(StaffOptionsKey, func() (interface{}, error) {
		rows, err := s.repo.FindOptions(ctx)
		if err != nil {
			return nil, err
		}

		resp := make([]StaffOption, len(rows))
		for i, r := range rows {
			resp[i] = StaffOption{
				ID:          r.ID.String(),
				StaffNumber: r.StaffNumber,
				Name:        strings.TrimSpace(r.FirstName + " " + r.LastName),
			}
		}

		if s.rdb != nil {
			if jsonData, err := json.Marshal(resp); err == nil {
				s.rdb.Set(ctx, StaffOptionsKey, jsonData, 1*time.Hour)
			}
		}

		return resp, nil
	})
	if err != nil {
		return nil, err
	}

	return v.([]StaffOption), nil
}

func (s *service) GetByID(ctx context.Context, id string) (StaffResponse, error) {
	row, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return StaffResponse{}, stafferrors.ErrStaffNotFound
		}
		return StaffResponse{}, err
	}

	return mapToResponse(*row), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateStaffRequest) (StaffResponse, error) {
	row, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return StaffResponse{}, stafferrors.ErrStaffNotFound
		}
		return StaffResponse{}, err
	}

	if req.FirstName != nil {
		row.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		row.LastName = *req.LastName
	}
	if req.Email != nil {
		row.Email = *req.Email
	}
	if req.Phone != nil {
		row.Phone = req.Phone
	}
	if req.EmploymentType != nil {
		row.EmploymentType = *req.EmploymentType
	}
	if req.Active != nil {
		row.Active = *req.Active
	}
	if req.HourlyRate != nil {
		row.HourlyRate = req.HourlyRate
	}
	if req.PositionID != nil {
		row.PositionID = uuidPtr(req.PositionID)
	}
	if req.BankName != nil {
		row.BankName = req.BankName
	}
	if req.AccountNumber != nil {
		row.AccountNumber = req.AccountNumber
	}
	if req.AccountName != nil {
		row.AccountName = req.AccountName
	}
	if req.TaxID != nil {
		row.TaxID = req.TaxID
	}
	if req.PensionID != nil {
		row.PensionID = req.PensionID
	}

	if row.EmploymentType == compensation.EmploymentPartTime && row.HourlyRate == nil {
		return StaffResponse{}, stafferrors.ErrHourlyRateRequired
	}

	if err := s.repo.Update(ctx, row); err != nil {
		return StaffResponse{}, mapRepositoryError(err)
	}

	s.invalidateOptions(ctx)
	return mapToResponse(*row), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	if err := s.repo.Deactivate(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return stafferrors.ErrStaffNotFound
		}
		return err
	}

	s.invalidateOptions(ctx)
	s.logger.Info("staff deactivated", zap.String("staff_id", id))
	return nil
}

func (s *service) invalidateOptions(ctx context.Context) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Del(ctx, StaffOptionsKey).Err(); err != nil {
		s.logger.Error("failed to invalidate staff options cache",
			zap.Error(err),
			zap.String("key", StaffOptionsKey),
		)
	}
}

func mapRepositoryError(err error) error {
	msg := err.Error()
	switch {
	case strings.Contains(msg, "idx_staff_staff_number") || strings.Contains(msg, "staff_staff_number"):
		return stafferrors.ErrDuplicateStaffNumber
	case strings.Contains(msg, "idx_staff_email") || strings.Contains(msg, "staff_email"):
		return stafferrors.ErrDuplicateEmail
	default:
		return err
	}
}

func mapToResponse(row Staff) StaffResponse {
	resp := StaffResponse{
		ID:             row.ID.String(),
		StaffNumber:    row.StaffNumber,
		FirstName:      row.FirstName,
		LastName:       row.LastName,
		Email:          row.Email,
		Phone:          row.Phone,
		EmploymentType: row.EmploymentType,
		Active:         row.Active,
		HourlyRate:     row.HourlyRate,
		HireDate:       row.HireDate.Format("2006-01-02"),
		BankName:       row.BankName,
		AccountNumber:  row.AccountNumber,
		AccountName:    row.AccountName,
		TaxID:          row.TaxID,
		PensionID:      row.PensionID,
	}
	if row.PositionID != nil {
		v := row.PositionID.String()
		resp.PositionID = &v
	}
	if row.Position != nil {
		resp.Position = row.Position.Title
	}
	return resp
}

func uuidPtr(id *string) *uuid.UUID {
	if id == nil || *id == "" {
		return nil
	}
	parsed, err := uuid.Parse(*id)
	if err != nil {
		return nil
	}
	return &parsed
}
