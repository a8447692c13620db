package attendance_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/Fritz24/Remunera/internal/attendance"
	attendanceerrors "github.com/Fritz24/Remunera/internal/attendance/errors"
	"github.com/Fritz24/Remunera/internal/compensation"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type fakeAttendanceRepository struct {
	findStaffByNumberFn func(ctx context.Context, staffNumber string) (*attendance.StaffRow, error)
	findStaffByNameFn   func(ctx context.Context, name string) (*attendance.StaffRow, error)
	upsertFn            func(ctx context.Context, row *attendance.Attendance) error
	listFn              func(ctx context.Context, month, year *int) ([]attendance.Attendance, error)
}

func (f *fakeAttendanceRepository) WithTx(tx *gorm.DB) attendance.Repository {
	return f
}

func (f *fakeAttendanceRepository) FindStaffByNumber(ctx context.Context, staffNumber string) (*attendance.StaffRow, error) {
	if f.findStaffByNumberFn != nil {
		return f.findStaffByNumberFn(ctx, staffNumber)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeAttendanceRepository) FindStaffByName(ctx context.Context, name string) (*attendance.StaffRow, error) {
	if f.findStaffByNameFn != nil {
		return f.findStaffByNameFn(ctx, name)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeAttendanceRepository) Upsert(ctx context.Context, row *attendance.Attendance) error {
	if f.upsertFn != nil {
		return f.upsertFn(ctx, row)
	}
	return nil
}

func (f *fakeAttendanceRepository) List(ctx context.Context, month, year *int) ([]attendance.Attendance, error) {
	if f.listFn != nil {
		return f.listFn(ctx, month, year)
	}
	return nil, nil
}

type attendanceServiceDeps struct {
	sqlMock sqlmock.Sqlmock
	repo    *fakeAttendanceRepository
	service attendance.Service
	cleanup func()
}

func setupAttendanceServiceTest(t *testing.T) *attendanceServiceDeps {
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

	repo := &fakeAttendanceRepository{}
	svc := attendance.NewService(gdb, repo)

	return &attendanceServiceDeps{
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

func hourlyStaff(number, first string) *attendance.StaffRow {
	return &attendance.StaffRow{
		ID:             uuid.New(),
		StaffNumber:    number,
		FirstName:      first,
		LastName:       "Okoro",
		EmploymentType: compensation.EmploymentPartTime,
		Active:         true,
		HourlyRate:     dp("2000"),
		Position:       &attendance.PositionRow{ID: uuid.New(), Title: "Cashier"},
	}
}

const sheetHeader = "Staff Number,Name,Position,Hours Present,Hours Absent,Overtime\n"

func TestAttendanceService_Upload_ImportsRows(t *testing.T) {
	ctx := context.Background()

	deps := setupAttendanceServiceTest(t)
	defer deps.cleanup()

	staff := hourlyStaff("EMP-007", "Ada")
	staff.Deductions = []attendance.StaffDeductionRow{
		{
			ID:        uuid.New(),
			Deduction: &attendance.DeductionRow{ID: uuid.New(), Name: "Pension", Amount: d("15000")},
		},
	}

	deps.repo.findStaffByNumberFn = func(ctx context.Context, staffNumber string) (*attendance.StaffRow, error) {
		assert.Equal(t, "EMP-007", staffNumber)
		return staff, nil
	}

	var saved *attendance.Attendance
	deps.repo.upsertFn = func(ctx context.Context, row *attendance.Attendance) error {
		saved = row
		return nil
	}

	deps.sqlMock.ExpectBegin()
	deps.sqlMock.ExpectCommit()

	sheet := sheetHeader + "EMP-007,Ada,Cashier,160,8,10\n"
	result, err := deps.service.Upload(ctx, "6", "2026", "june.csv", strings.NewReader(sheet))

	assert.NoError(t, err)
	assert.Equal(t, 1, result.RowsTotal)
	assert.Equal(t, 1, result.RowsImported)
	assert.Equal(t, 0, result.RowsFailed)

	assert.NotNil(t, saved)
	assert.Equal(t, staff.ID, saved.StaffID)
	assert.Equal(t, 6, saved.Month)
	assert.Equal(t, 2026, saved.Year)
	assert.True(t, saved.HoursPresent.Equal(d("160")))
	assert.True(t, saved.OvertimeHours.Equal(d("10")))

	row := result.Rows[0]
	assert.Equal(t, "Ada Okoro", row.Name)
	assert.Equal(t, "Cashier", row.Position)
	assert.NotNil(t, row.Deductions)
	assert.True(t, row.Deductions.Equal(d("15000")))
	// 160*2000 + 10*2000*1.5 - 15000
	assert.NotNil(t, row.NetSalary)
	assert.True(t, row.NetSalary.Equal(d("335000")))
	assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
}

func TestAttendanceService_Upload_UnknownStaffRowIsIsolated(t *testing.T) {
	ctx := context.Background()

	deps := setupAttendanceServiceTest(t)
	defer deps.cleanup()

	known := hourlyStaff("EMP-001", "Bola")
	deps.repo.findStaffByNumberFn = func(ctx context.Context, staffNumber string) (*attendance.StaffRow, error) {
		if staffNumber == "EMP-001" {
			return known, nil
		}
		return nil, gorm.ErrRecordNotFound
	}

	upserts := 0
	deps.repo.upsertFn = func(ctx context.Context, row *attendance.Attendance) error {
		upserts++
		return nil
	}

	deps.sqlMock.ExpectBegin()
	deps.sqlMock.ExpectCommit()

	sheet := sheetHeader +
		"EMP-001,Bola,Cashier,120,0,0\n" +
		"EMP-999,Ghost,Unknown,100,0,0\n"
	result, err := deps.service.Upload(ctx, "2", "2026", "feb.csv", strings.NewReader(sheet))

	assert.NoError(t, err)
	assert.Equal(t, 2, result.RowsTotal)
	assert.Equal(t, 1, result.RowsImported)
	assert.Equal(t, 1, result.RowsFailed)
	assert.Equal(t, 1, upserts)
	assert.Contains(t, result.Rows[1].Error, "no staff matches")
}

func TestAttendanceService_Upload_FallsBackToNameMatch(t *testing.T) {
	ctx := context.Background()

	deps := setupAttendanceServiceTest(t)
	defer deps.cleanup()

	staff := hourlyStaff("EMP-004", "Chidi")
	deps.repo.findStaffByNameFn = func(ctx context.Context, name string) (*attendance.StaffRow, error) {
		assert.Equal(t, "Chidi", name)
		return staff, nil
	}

	deps.sqlMock.ExpectBegin()
	deps.sqlMock.ExpectCommit()

	sheet := "Name,Hours Present,Hours Absent,Overtime\nChidi,80,0,0\n"
	result, err := deps.service.Upload(ctx, "3", "2026", "march.csv", strings.NewReader(sheet))

	assert.NoError(t, err)
	assert.Equal(t, 1, result.RowsImported)
	assert.Equal(t, "EMP-004", result.Rows[0].StaffNumber)
}

func TestAttendanceService_Upload_RejectsBadInput(t *testing.T) {
	ctx := context.Background()

	deps := setupAttendanceServiceTest(t)
	defer deps.cleanup()

	sheet := sheetHeader + "EMP-001,Bola,Cashier,120,0,0\n"

	_, err := deps.service.Upload(ctx, "all", "2026", "a.csv", strings.NewReader(sheet))
	assert.ErrorIs(t, err, attendanceerrors.ErrInvalidMonth)

	_, err = deps.service.Upload(ctx, "13", "2026", "a.csv", strings.NewReader(sheet))
	assert.ErrorIs(t, err, attendanceerrors.ErrInvalidMonth)

	_, err = deps.service.Upload(ctx, "2", "abc", "a.csv", strings.NewReader(sheet))
	assert.ErrorIs(t, err, attendanceerrors.ErrInvalidYear)

	_, err = deps.service.Upload(ctx, "2", "2026", "a.xlsx", strings.NewReader(sheet))
	assert.ErrorIs(t, err, attendanceerrors.ErrNotCSV)

	_, err = deps.service.Upload(ctx, "2", "2026", "a.csv", strings.NewReader("Foo,Bar\n1,2\n"))
	assert.ErrorIs(t, err, attendanceerrors.ErrMissingHeader)
}

func TestAttendanceService_Upload_NegativeHoursRowFails(t *testing.T) {
	ctx := context.Background()

	deps := setupAttendanceServiceTest(t)
	defer deps.cleanup()

	deps.repo.findStaffByNumberFn = func(ctx context.Context, staffNumber string) (*attendance.StaffRow, error) {
		return hourlyStaff(staffNumber, "Dele"), nil
	}

	deps.sqlMock.ExpectBegin()
	deps.sqlMock.ExpectCommit()

	sheet := sheetHeader + "EMP-002,Dele,Cashier,-5,0,0\n"
	result, err := deps.service.Upload(ctx, "4", "2026", "apr.csv", strings.NewReader(sheet))

	assert.NoError(t, err)
	assert.Equal(t, 1, result.RowsFailed)
	assert.Contains(t, result.Rows[0].Error, "cannot be negative")
}

func TestAttendanceService_Upload_UpsertFailureAbortsImport(t *testing.T) {
	ctx := context.Background()

	deps := setupAttendanceServiceTest(t)
	defer deps.cleanup()

	deps.repo.findStaffByNumberFn = func(ctx context.Context, staffNumber string) (*attendance.StaffRow, error) {
		return hourlyStaff(staffNumber, "Efe"), nil
	}

	upserts := 0
	deps.repo.upsertFn = func(ctx context.Context, row *attendance.Attendance) error {
		upserts++
		if upserts == 2 {
			return errors.New(`pq: insert or update on table "attendance" violates foreign key constraint`)
		}
		return nil
	}

	deps.sqlMock.ExpectBegin()
	deps.sqlMock.ExpectRollback()

	sheet := sheetHeader +
		"EMP-001,Efe,Cashier,120,0,0\n" +
		"EMP-002,Efe,Cashier,100,0,0\n" +
		"EMP-003,Efe,Cashier,90,0,0\n"
	result, err := deps.service.Upload(ctx, "5", "2026", "may.csv", strings.NewReader(sheet))

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "foreign key constraint")
	assert.Zero(t, result.RowsImported)
	// Third row never reached; the sheet aborts at the failed write.
	assert.Equal(t, 2, upserts)
	assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
}

func TestAttendanceService_Upload_StaffLookupFailureAbortsImport(t *testing.T) {
	ctx := context.Background()

	deps := setupAttendanceServiceTest(t)
	defer deps.cleanup()

	deps.repo.findStaffByNumberFn = func(ctx context.Context, staffNumber string) (*attendance.StaffRow, error) {
		return nil, errors.New("pq: connection reset by peer")
	}

	upserts := 0
	deps.repo.upsertFn = func(ctx context.Context, row *attendance.Attendance) error {
		upserts++
		return nil
	}

	deps.sqlMock.ExpectBegin()
	deps.sqlMock.ExpectRollback()

	sheet := sheetHeader + "EMP-001,Bola,Cashier,120,0,0\n"
	result, err := deps.service.Upload(ctx, "2", "2026", "feb.csv", strings.NewReader(sheet))

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "connection reset")
	assert.Zero(t, result.RowsImported)
	assert.Zero(t, upserts)
	assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
}

func TestAttendanceService_GetAll(t *testing.T) {
	ctx := context.Background()

	deps := setupAttendanceServiceTest(t)
	defer deps.cleanup()

	staffID := uuid.New()
	deps.repo.listFn = func(ctx context.Context, month, year *int) ([]attendance.Attendance, error) {
		assert.NotNil(t, month)
		assert.Equal(t, 6, *month)
		return []attendance.Attendance{
			{
				ID:           uuid.New(),
				StaffID:      staffID,
				Month:        6,
				Year:         2026,
				HoursPresent: d("160"),
				Staff: &attendance.StaffRow{
					ID:        staffID,
					FirstName: "Ada",
					LastName:  "Okoro",
					Position:  &attendance.PositionRow{Title: "Cashier"},
				},
			},
		}, nil
	}

	month := 6
	resp, err := deps.service.GetAll(ctx, attendance.ListAttendanceFilterRequest{Month: &month})

	assert.NoError(t, err)
	assert.Len(t, resp, 1)
	assert.Equal(t, "Ada Okoro", resp[0].StaffName)
	assert.Equal(t, "Cashier", resp[0].Position)
	assert.True(t, resp[0].HoursPresent.Equal(d("160")))
}
