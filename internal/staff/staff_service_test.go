package staff_test

import (
	"context"
	"testing"
	"time"

	"github.com/Fritz24/Remunera/internal/staff"
	stafferrors "github.com/Fritz24/Remunera/internal/staff/errors"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type fakeStaffRepository struct {
	createFn                func(ctx context.Context, s *staff.Staff) error
	createSalaryStructureFn func(ctx context.Context, row *staff.SalaryStructureRow) error
	findAllFn               func(ctx context.Context, filter staff.ListStaffFilterRequest) ([]staff.Staff, error)
	findOptionsFn           func(ctx context.Context) ([]staff.Staff, error)
	findByIDFn              func(ctx context.Context, id string) (*staff.Staff, error)
	updateFn                func(ctx context.Context, s *staff.Staff) error
	deactivateFn            func(ctx context.Context, id string) error
}

func (f *fakeStaffRepository) WithTx(tx *gorm.DB) staff.Repository {
	return f
}

func (f *fakeStaffRepository) Create(ctx context.Context, s *staff.Staff) error {
	if f.createFn != nil {
		return f.createFn(ctx, s)
	}
	return nil
}

func (f *fakeStaffRepository) CreateSalaryStructure(ctx context.Context, row *staff.SalaryStructureRow) error {
	if f.createSalaryStructureFn != nil {
		return f.createSalaryStructureFn(ctx, row)
	}
	return nil
}

func (f *fakeStaffRepository) FindAll(ctx context.Context, filter staff.ListStaffFilterRequest) ([]staff.Staff, error) {
	if f.findAllFn != nil {
		return f.findAllFn(ctx, filter)
	}
	return nil, nil
}

func (f *fakeStaffRepository) FindOptions(ctx context.Context) ([]staff.Staff, error) {
	if f.findOptionsFn != nil {
		return f.findOptionsFn(ctx)
	}
	return nil, nil
}

func (f *fakeStaffRepository) FindByID(ctx context.Context, id string) (*staff.Staff, error) {
	if f.findByIDFn != nil {
		return f.findByIDFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeStaffRepository) Update(ctx context.Context, s *staff.Staff) error {
	if f.updateFn != nil {
		return f.updateFn(ctx, s)
	}
	return nil
}

func (f *fakeStaffRepository) Deactivate(ctx context.Context, id string) error {
	if f.deactivateFn != nil {
		return f.deactivateFn(ctx, id)
	}
	return nil
}

type fakeCounterRepository struct {
	next int64
}

func (f *fakeCounterRepository) GetNextValue(ctx context.Context, counterType string) (int64, error) {
	f.next++
	return f.next, nil
}

type staffServiceDeps struct {
	sqlMock sqlmock.Sqlmock
	repo    *fakeStaffRepository
	service staff.Service
	cleanup func()
}

func setupStaffServiceTest(t *testing.T) *staffServiceDeps {
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

	repo := &fakeStaffRepository{}
	svc := staff.NewService(gdb, repo, &fakeCounterRepository{}, nil)

	return &staffServiceDeps{
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

func dp(v string) *decimal.Decimal {
	dec := d(v)
	return &dec
}

func TestStaffService_Create_FullTimeSeedsSalaryStructure(t *testing.T) {
	ctx := context.Background()

	deps := setupStaffServiceTest(t)
	defer deps.cleanup()

	var created *staff.Staff
	var seeded *staff.SalaryStructureRow
	deps.repo.createFn = func(ctx context.Context, s *staff.Staff) error {
		created = s
		return nil
	}
	deps.repo.createSalaryStructureFn = func(ctx context.Context, row *staff.SalaryStructureRow) error {
		seeded = row
		return nil
	}

	deps.sqlMock.ExpectBegin()
	deps.sqlMock.ExpectCommit()

	resp, err := deps.service.Create(ctx, staff.CreateStaffRequest{
		FirstName:      "Ada",
		LastName:       "Okoro",
		Email:          "ada@example.com",
		EmploymentType: "full_time",
		BasicSalary:    dp("500000"),
		HireDate:       "2026-01-15",
	})

	assert.NoError(t, err)
	assert.NotNil(t, created)
	assert.Equal(t, "EMP-000001", resp.StaffNumber)
	assert.True(t, resp.Active)

	assert.NotNil(t, seeded)
	assert.Equal(t, created.ID, seeded.StaffID)
	assert.True(t, seeded.BasicSalary.Equal(d("500000")))
	assert.True(t, seeded.IsActive)
	assert.Equal(t, time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC), seeded.EffectiveAt)
	assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
}

func TestStaffService_Create_PartTimeRequiresHourlyRate(t *testing.T) {
	ctx := context.Background()

	deps := setupStaffServiceTest(t)
	defer deps.cleanup()

	_, err := deps.service.Create(ctx, staff.CreateStaffRequest{
		FirstName:      "Bola",
		LastName:       "Ade",
		Email:          "bola@example.com",
		EmploymentType: "part_time",
		HireDate:       "2026-02-01",
	})

	assert.ErrorIs(t, err, stafferrors.ErrHourlyRateRequired)
}

func TestStaffService_Create_PartTimeSkipsSalaryStructure(t *testing.T) {
	ctx := context.Background()

	deps := setupStaffServiceTest(t)
	defer deps.cleanup()

	seeded := false
	deps.repo.createSalaryStructureFn = func(ctx context.Context, row *staff.SalaryStructureRow) error {
		seeded = true
		return nil
	}

	deps.sqlMock.ExpectBegin()
	deps.sqlMock.ExpectCommit()

	resp, err := deps.service.Create(ctx, staff.CreateStaffRequest{
		FirstName:      "Bola",
		LastName:       "Ade",
		Email:          "bola@example.com",
		EmploymentType: "part_time",
		HourlyRate:     dp("2000"),
		HireDate:       "2026-02-01",
	})

	assert.NoError(t, err)
	assert.False(t, seeded)
	assert.Equal(t, "part_time", resp.EmploymentType)
}

func TestStaffService_Create_InvalidHireDate(t *testing.T) {
	ctx := context.Background()

	deps := setupStaffServiceTest(t)
	defer deps.cleanup()

	_, err := deps.service.Create(ctx, staff.CreateStaffRequest{
		FirstName:      "Chi",
		LastName:       "Obi",
		Email:          "chi@example.com",
		EmploymentType: "full_time",
		BasicSalary:    dp("400000"),
		HireDate:       "15-01-2026",
	})

	assert.ErrorIs(t, err, stafferrors.ErrInvalidHireDate)
}

func TestStaffService_Update_ActiveToggle(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	deps := setupStaffServiceTest(t)
	defer deps.cleanup()

	deps.repo.findByIDFn = func(ctx context.Context, sid string) (*staff.Staff, error) {
		return &staff.Staff{
			ID:             id,
			StaffNumber:    "EMP-000002",
			FirstName:      "Dele",
			LastName:       "Musa",
			Email:          "dele@example.com",
			EmploymentType: "full_time",
			Active:         true,
			HireDate:       time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC),
		}, nil
	}

	var updated *staff.Staff
	deps.repo.updateFn = func(ctx context.Context, s *staff.Staff) error {
		updated = s
		return nil
	}

	active := false
	resp, err := deps.service.Update(ctx, id.String(), staff.UpdateStaffRequest{Active: &active})

	assert.NoError(t, err)
	assert.False(t, resp.Active)
	assert.NotNil(t, updated)
	assert.False(t, updated.Active)
	// contract type untouched by the activity toggle
	assert.Equal(t, "full_time", updated.EmploymentType)
}

func TestStaffService_Update_PartTimeSwitchNeedsRate(t *testing.T) {
	ctx := context.Background()

	deps := setupStaffServiceTest(t)
	defer deps.cleanup()

	deps.repo.findByIDFn = func(ctx context.Context, sid string) (*staff.Staff, error) {
		return &staff.Staff{
			ID:             uuid.New(),
			EmploymentType: "full_time",
			Active:         true,
			HireDate:       time.Now(),
		}, nil
	}

	partTime := "part_time"
	_, err := deps.service.Update(ctx, uuid.NewString(), staff.UpdateStaffRequest{EmploymentType: &partTime})

	assert.ErrorIs(t, err, stafferrors.ErrHourlyRateRequired)
}

func TestStaffService_Delete_Deactivates(t *testing.T) {
	ctx := context.Background()

	deps := setupStaffServiceTest(t)
	defer deps.cleanup()

	var gotID string
	deps.repo.deactivateFn = func(ctx context.Context, id string) error {
		gotID = id
		return nil
	}

	id := uuid.NewString()
	err := deps.service.Delete(ctx, id)

	assert.NoError(t, err)
	assert.Equal(t, id, gotID)
}

func TestStaffService_Delete_NotFound(t *testing.T) {
	ctx := context.Background()

	deps := setupStaffServiceTest(t)
	defer deps.cleanup()

	deps.repo.deactivateFn = func(ctx context.Context, id string) error {
		return gorm.ErrRecordNotFound
	}

	err := deps.service.Delete(ctx, uuid.NewString())

	assert.ErrorIs(t, err, stafferrors.ErrStaffNotFound)
}

func TestStaffService_GetOptions(t *testing.T) {
	ctx := context.Background()

	deps := setupStaffServiceTest(t)
	defer deps.cleanup()

	deps.repo.findOptionsFn = func(ctx context.Context) ([]staff.Staff, error) {
		return []staff.Staff{
			{ID: uuid.New(), StaffNumber: "EMP-000001", FirstName: "Ada", LastName: "Okoro"},
			{ID: uuid.New(), StaffNumber: "EMP-000002", FirstName: "Dele", LastName: "Musa"},
		}, nil
	}

	resp, err := deps.service.GetOptions(ctx)

	assert.NoError(t, err)
	assert.Len(t, resp, 2)
	assert.Equal(t, "Ada Okoro", resp[0].Name)
	assert.Equal(t, "EMP-000002", resp[1].StaffNumber)
}
