package salarystructure_test

import (
	"context"
	"testing"

	"github.com/Fritz24/Remunera/internal/salarystructure"
	salarystructureerrors "github.com/Fritz24/Remunera/internal/salarystructure/errors"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type fakeSalaryRepository struct {
	staffExistsFn       func(ctx context.Context, staffID string) (bool, error)
	deactivateByStaffFn func(ctx context.Context, staffID string) error
	createFn            func(ctx context.Context, row *salarystructure.SalaryStructure) error
	findAllFn           func(ctx context.Context, filter salarystructure.ListSalaryFilterRequest) ([]salarystructure.SalaryStructure, error)
	findActiveByStaffFn func(ctx context.Context, staffID string) (*salarystructure.SalaryStructure, error)
}

func (f *fakeSalaryRepository) WithTx(tx *gorm.DB) salarystructure.Repository {
	return f
}

func (f *fakeSalaryRepository) StaffExists(ctx context.Context, staffID string) (bool, error) {
	if f.staffExistsFn != nil {
		return f.staffExistsFn(ctx, staffID)
	}
	return true, nil
}

func (f *fakeSalaryRepository) DeactivateByStaff(ctx context.Context, staffID string) error {
	if f.deactivateByStaffFn != nil {
		return f.deactivateByStaffFn(ctx, staffID)
	}
	return nil
}

func (f *fakeSalaryRepository) Create(ctx context.Context, row *salarystructure.SalaryStructure) error {
	if f.createFn != nil {
		return f.createFn(ctx, row)
	}
	return nil
}

func (f *fakeSalaryRepository) FindAll(ctx context.Context, filter salarystructure.ListSalaryFilterRequest) ([]salarystructure.SalaryStructure, error) {
	if f.findAllFn != nil {
		return f.findAllFn(ctx, filter)
	}
	return nil, nil
}

func (f *fakeSalaryRepository) FindActiveByStaff(ctx context.Context, staffID string) (*salarystructure.SalaryStructure, error) {
	if f.findActiveByStaffFn != nil {
		return f.findActiveByStaffFn(ctx, staffID)
	}
	return nil, gorm.ErrRecordNotFound
}

type salaryServiceDeps struct {
	sqlMock sqlmock.Sqlmock
	repo    *fakeSalaryRepository
	service salarystructure.Service
	cleanup func()
}

func setupSalaryServiceTest(t *testing.T) *salaryServiceDeps {
	t.Helper()

	db, sqlMock, err := sqlmock.New()
	assert.NoError(t, err)

	gdb, err := gorm.Open(gormpostgres.New(gormpostgres.Config{
		Conn:                 db,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		Logger:                 logger.Default.LogMode(logger.Silent),
		SkipDefaultTransaction: true,
	})
	assert.NoError(t, err)

	repo := &fakeSalaryRepository{}
	svc := salarystructure.NewService(gdb, repo)

	return &salaryServiceDeps{
		sqlMock: sqlMock,
		repo:    repo,
		service: svc,
		cleanup: func() { _ = db.Close() },
	}
}

func d(v string) decimal.Decimal {
	dec, _ := decimal.NewFromString(v)
	return dec
}

func TestSalaryService_Assign_DeactivatesBeforeInsert(t *testing.T) {
	ctx := context.Background()
	staffID := uuid.New()

	deps := setupSalaryServiceTest(t)
	defer deps.cleanup()

	var calls []string
	deps.repo.deactivateByStaffFn = func(ctx context.Context, sid string) error {
		assert.Equal(t, staffID.String(), sid)
		calls = append(calls, "deactivate")
		return nil
	}

	var created *salarystructure.SalaryStructure
	deps.repo.createFn = func(ctx context.Context, row *salarystructure.SalaryStructure) error {
		calls = append(calls, "create")
		created = row
		return nil
	}

	deps.sqlMock.ExpectBegin()
	deps.sqlMock.ExpectCommit()

	resp, err := deps.service.Assign(ctx, salarystructure.AssignSalaryRequest{
		StaffID:     staffID.String(),
		BasicSalary: d("650000"),
		EffectiveAt: "2026-03-01",
	})

	assert.NoError(t, err)
	assert.Equal(t, []string{"deactivate", "create"}, calls)
	assert.NotNil(t, created)
	assert.True(t, created.IsActive)
	assert.True(t, created.BasicSalary.Equal(d("650000")))
	assert.True(t, resp.IsActive)
	assert.Equal(t, "2026-03-01", resp.EffectiveAt)
	assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
}

func TestSalaryService_Assign_UnknownStaff(t *testing.T) {
	ctx := context.Background()

	deps := setupSalaryServiceTest(t)
	defer deps.cleanup()

	deps.repo.staffExistsFn = func(ctx context.Context, staffID string) (bool, error) {
		return false, nil
	}

	deps.sqlMock.ExpectBegin()
	deps.sqlMock.ExpectRollback()

	_, err := deps.service.Assign(ctx, salarystructure.AssignSalaryRequest{
		StaffID:     uuid.NewString(),
		BasicSalary: d("650000"),
	})

	assert.ErrorIs(t, err, salarystructureerrors.ErrStaffNotFound)
	assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
}

func TestSalaryService_Assign_RejectsNonPositive(t *testing.T) {
	ctx := context.Background()

	deps := setupSalaryServiceTest(t)
	defer deps.cleanup()

	_, err := deps.service.Assign(ctx, salarystructure.AssignSalaryRequest{
		StaffID:     uuid.NewString(),
		BasicSalary: d("0"),
	})

	assert.ErrorIs(t, err, salarystructureerrors.ErrInvalidBasicSalary)
}

func TestSalaryService_Assign_RejectsBadEffectiveDate(t *testing.T) {
	ctx := context.Background()

	deps := setupSalaryServiceTest(t)
	defer deps.cleanup()

	_, err := deps.service.Assign(ctx, salarystructure.AssignSalaryRequest{
		StaffID:     uuid.NewString(),
		BasicSalary: d("500000"),
		EffectiveAt: "06/15/2026",
	})

	assert.ErrorIs(t, err, salarystructureerrors.ErrInvalidEffectiveDate)
}

func TestSalaryService_GetActiveByStaff_NotFound(t *testing.T) {
	ctx := context.Background()

	deps := setupSalaryServiceTest(t)
	defer deps.cleanup()

	_, err := deps.service.GetActiveByStaff(ctx, uuid.NewString())

	assert.ErrorIs(t, err, salarystructureerrors.ErrStructureNotFound)
}

func TestSalaryService_GetAll_MapsStaff(t *testing.T) {
	ctx := context.Background()

	deps := setupSalaryServiceTest(t)
	defer deps.cleanup()

	deps.repo.findAllFn = func(ctx context.Context, filter salarystructure.ListSalaryFilterRequest) ([]salarystructure.SalaryStructure, error) {
		assert.True(t, filter.ActiveOnly)
		return []salarystructure.SalaryStructure{
			{
				ID:          uuid.New(),
				StaffID:     uuid.New(),
				BasicSalary: d("500000"),
				IsActive:    true,
				Staff: &salarystructure.StaffRef{
					StaffNumber: "EMP-000001",
					FirstName:   "Ada",
					LastName:    "Okoro",
				},
			},
		}, nil
	}

	resp, err := deps.service.GetAll(ctx, salarystructure.ListSalaryFilterRequest{ActiveOnly: true})

	assert.NoError(t, err)
	assert.Len(t, resp, 1)
	assert.Equal(t, "Ada Okoro", resp[0].StaffName)
	assert.Equal(t, "EMP-000001", resp[0].StaffNumber)
}
