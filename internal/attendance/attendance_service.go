package attendance

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	attendanceerrors "github.com/Fritz24/Remunera/internal/attendance/errors"
	"github.com/Fritz24/Remunera/internal/compensation"
	"github.com/Fritz24/Remunera/internal/shared/contextutil"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// sheet column headers, matched case-insensitively.
const (
	colStaffNumber  = "staff number"
	colName         = "name"
	colPosition     = "position"
	colHoursPresent = "hours present"
	colHoursAbsent  = "hours absent"
	colOvertime     = "overtime"
)

type Service interface {
	Upload(ctx context.Context, monthStr, yearStr, filename string, file io.Reader) (UploadResult, error)
	GetAll(ctx context.Context, filter ListAttendanceFilterRequest) ([]AttendanceResponse, error)
}

type service struct {
	db   *gorm.DB
	repo Repository
}

func NewService(db *gorm.DB, repo Repository) Service {
	return &service{db: db, repo: repo}
}

func (s *service) Upload(ctx context.Context, monthStr, yearStr, filename string, file io.Reader) (UploadResult, error) {
	if file == nil {
		return UploadResult{}, attendanceerrors.ErrFileRequired
	}
	if !strings.EqualFold(filepath.Ext(filename), ".csv") {
		return UploadResult{}, attendanceerrors.ErrNotCSV
	}

	month, err := strconv.Atoi(strings.TrimSpace(monthStr))
	if err != nil || month < 1 || month > 12 {
		return UploadResult{}, attendanceerrors.ErrInvalidMonth
	}
	year, err := strconv.Atoi(strings.TrimSpace(yearStr))
	if err != nil || year < 1 {
		return UploadResult{}, attendanceerrors.ErrInvalidYear
	}

	reader := csv.NewReader(file)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return UploadResult{}, attendanceerrors.ErrEmptyFile
	}

	cols := indexColumns(header)
	if _, ok := cols[colHoursPresent]; !ok {
		return UploadResult{}, attendanceerrors.ErrMissingHeader
	}
	_, hasNumber := cols[colStaffNumber]
	_, hasName := cols[colName]
	if !hasNumber && !hasName {
		return UploadResult{}, attendanceerrors.ErrMissingHeader
	}

	result := UploadResult{Month: month, Year: year}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)

		for {
			record, err := reader.Read()
			if errors.Is(err, io.EOF) {
				break
			}
			if err != nil {
				result.RowsTotal++
				result.RowsFailed++
				result.Rows = append(result.Rows, ProcessedRow{Error: err.Error()})
				continue
			}

			result.RowsTotal++
			row, err := s.processRow(ctx, qtx, cols, record, month, year)
			if err != nil {
				// A store failure poisons the transaction; rolling the
				// whole sheet back beats reporting rows that were never
				// committed.
				return err
			}
			if row.Error != "" {
				result.RowsFailed++
			} else {
				result.RowsImported++
			}
			result.Rows = append(result.Rows, row)
		}

		if result.RowsTotal == 0 {
			return attendanceerrors.ErrEmptyFile
		}
		return nil
	})
	if err != nil {
		return UploadResult{}, err
	}

	contextutil.Logger(ctx).Info("attendance sheet imported",
		zap.Int("month", month),
		zap.Int("year", year),
		zap.Int("rows_imported", result.RowsImported),
		zap.Int("rows_failed", result.RowsFailed),
	)

	return result, nil
}

// processRow matches one sheet row to a staff member, stores the hours
// and prices a preview. Unmatched staff and bad values are isolated to
// the row; the returned error is reserved for store failures, which must
// abort the import because the surrounding transaction is already dead.
func (s *service) processRow(
	ctx context.Context,
	repo Repository,
	cols map[string]int,
	record []string,
	month, year int,
) (ProcessedRow, error) {
	row := ProcessedRow{
		StaffNumber: cell(record, cols, colStaffNumber),
		Name:        cell(record, cols, colName),
		Position:    cell(record, cols, colPosition),
	}

	staff, err := s.matchStaff(ctx, repo, row.StaffNumber, row.Name)
	if err != nil {
		var noMatch noStaffMatchError
		if errors.As(err, &noMatch) {
			row.Error = err.Error()
			return row, nil
		}
		return row, err
	}
	row.Name = staff.FullName()
	row.StaffNumber = staff.StaffNumber
	if staff.Position != nil {
		row.Position = staff.Position.Title
	}

	row.HoursPresent, err = parseHours(cell(record, cols, colHoursPresent), colHoursPresent)
	if err != nil {
		row.Error = err.Error()
		return row, nil
	}
	row.HoursAbsent, err = parseHours(cell(record, cols, colHoursAbsent), colHoursAbsent)
	if err != nil {
		row.Error = err.Error()
		return row, nil
	}
	row.Overtime, err = parseHours(cell(record, cols, colOvertime), colOvertime)
	if err != nil {
		row.Error = err.Error()
		return row, nil
	}

	if err := repo.Upsert(ctx, &Attendance{
		ID:            uuid.New(),
		StaffID:       staff.ID,
		Month:         month,
		Year:          year,
		HoursPresent:  row.HoursPresent,
		HoursAbsent:   row.HoursAbsent,
		OvertimeHours: row.Overtime,
	}); err != nil {
		return row, err
	}

	s.priceRow(&row, staff)
	row.Actions = "imported"
	return row, nil
}

type noStaffMatchError struct {
	ident string
}

func (e noStaffMatchError) Error() string {
	return fmt.Sprintf("no staff matches %q", e.ident)
}

func (s *service) matchStaff(ctx context.Context, repo Repository, staffNumber, name string) (*StaffRow, error) {
	if staffNumber != "" {
		staff, err := repo.FindStaffByNumber(ctx, staffNumber)
		if err == nil {
			return staff, nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
	}

	if name != "" {
		staff, err := repo.FindStaffByName(ctx, name)
		if err == nil {
			return staff, nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
	}

	return nil, noStaffMatchError{ident: firstNonEmpty(staffNumber, name)}
}

// priceRow attaches the deduction total and projected net pay for hourly
// staff. Salaried staff keep their hours but are priced by the run, not
// the sheet.
func (s *service) priceRow(row *ProcessedRow, staff *StaffRow) {
	if staff.EmploymentType != compensation.EmploymentPartTime || staff.HourlyRate == nil {
		return
	}

	profile := compensation.StaffProfile{
		EmploymentType: staff.EmploymentType,
		HourlyRate:     staff.HourlyRate,
		Attendance: &compensation.Hours{
			Present:  row.HoursPresent,
			Absent:   row.HoursAbsent,
			Overtime: row.Overtime,
		},
	}
	for _, sd := range staff.Deductions {
		if sd.Deduction == nil {
			continue
		}
		profile.Deductions = append(profile.Deductions, compensation.BenefitItem{
			Name:          sd.Deduction.Name,
			Amount:        sd.Amount,
			CatalogAmount: sd.Deduction.Amount,
		})
	}

	comp := compensation.Resolve(profile)
	row.Deductions = &comp.TotalDeductions
	row.NetSalary = &comp.NetPay
}

func (s *service) GetAll(ctx context.Context, filter ListAttendanceFilterRequest) ([]AttendanceResponse, error) {
	rows, err := s.repo.List(ctx, filter.Month, filter.Year)
	if err != nil {
		return nil, err
	}

	res := make([]AttendanceResponse, len(rows))
	for i, r := range rows {
		res[i] = mapToResponse(r)
	}
	return res, nil
}

func mapToResponse(a Attendance) AttendanceResponse {
	resp := AttendanceResponse{
		ID:            a.ID.String(),
		StaffID:       a.StaffID.String(),
		Month:         a.Month,
		Year:          a.Year,
		HoursPresent:  a.HoursPresent,
		HoursAbsent:   a.HoursAbsent,
		OvertimeHours: a.OvertimeHours,
	}
	if a.Staff != nil {
		resp.StaffName = a.Staff.FullName()
		if a.Staff.Position != nil {
			resp.Position = a.Staff.Position.Title
		}
	}
	return resp
}

func indexColumns(header []string) map[string]int {
	cols := make(map[string]int, len(header))
	for i, h := range header {
		cols[strings.ToLower(strings.TrimSpace(h))] = i
	}
	return cols
}

func cell(record []string, cols map[string]int, name string) string {
	idx, ok := cols[name]
	if !ok || idx >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[idx])
}

func parseHours(raw, column string) (decimal.Decimal, error) {
	if raw == "" {
		return decimal.Zero, nil
	}
	v, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid %s value %q", column, raw)
	}
	if v.IsNegative() {
		return decimal.Zero, fmt.Errorf("%s cannot be negative", column)
	}
	return v, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
