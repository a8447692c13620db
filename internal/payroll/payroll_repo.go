package payroll

import (
	"context"
	"time"

	"github.com/Fritz24/Remunera/internal/compensation"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository interface {
	WithTx(tx *gorm.DB) Repository
	FindRunByPeriod(ctx context.Context, month, year int) (*PayrollRun, error)
	FindRunByID(ctx context.Context, id string) (*PayrollRun, error)
	ListRuns(ctx context.Context, month, year *int) ([]PayrollRun, error)
	CreateRun(ctx context.Context, run *PayrollRun) error
	UpdateRun(ctx context.Context, run *PayrollRun) error
	DeleteDetailsByRun(ctx context.Context, runID uuid.UUID) error
	DeletePayslipsByRun(ctx context.Context, runID uuid.UUID) error
	ListEligibleStaff(ctx context.Context, month, year int) ([]EligibleStaff, error)
	CreatePayslips(ctx context.Context, payslips []Payslip) error
	CreateDetails(ctx context.Context, details []PayslipDetail) error
	ListPayslipsByRun(ctx context.Context, runID string) ([]Payslip, error)
	UpdatePayslipStatusByRun(ctx context.Context, runID uuid.UUID, status string, paymentDate *time.Time) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	return &repository{db: tx}
}

func (r *repository) FindRunByPeriod(ctx context.Context, month, year int) (*PayrollRun, error) {
	var run PayrollRun
	err := r.db.WithContext(ctx).
		First(&run, "month = ? AND year = ?", month, year).Error
	if err != nil {
		return nil, err
	}
	return &run, nil
}

func (r *repository) FindRunByID(ctx context.Context, id string) (*PayrollRun, error) {
	var run PayrollRun
	err := r.db.WithContext(ctx).
		Preload("Payslips").
		First(&run, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &run, nil
}

func (r *repository) ListRuns(ctx context.Context, month, year *int) ([]PayrollRun, error) {
	db := r.db.WithContext(ctx).Preload("Payslips")
	if month != nil {
		db = db.Where("month = ?", *month)
	}
	if year != nil {
		db = db.Where("year = ?", *year)
	}

	var runs []PayrollRun
	err := db.Order("year DESC, month DESC").Find(&runs).Error
	return runs, err
}

func (r *repository) CreateRun(ctx context.Context, run *PayrollRun) error {
	return r.db.WithContext(ctx).Create(run).Error
}

func (r *repository) UpdateRun(ctx context.Context, run *PayrollRun) error {
	return r.db.WithContext(ctx).Omit("Payslips").Save(run).Error
}

// DeleteDetailsByRun removes the line items first so the payslips they
// belong to can be deleted afterwards.
func (r *repository) DeleteDetailsByRun(ctx context.Context, runID uuid.UUID) error {
	return r.db.WithContext(ctx).Exec(
		`DELETE FROM payslip_details WHERE payslip_id IN (SELECT id FROM payslip WHERE payroll_run_id = ?)`,
		runID,
	).Error
}

func (r *repository) DeletePayslipsByRun(ctx context.Context, runID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Delete(&Payslip{}, "payroll_run_id = ?", runID).Error
}

// ListEligibleStaff loads active staff with the joins the resolver needs.
// Salaried staff must carry an active salary structure; hourly staff
// qualify on activity alone and get their attendance for the period.
func (r *repository) ListEligibleStaff(ctx context.Context, month, year int) ([]EligibleStaff, error) {
	var staff []EligibleStaff
	err := r.db.WithContext(ctx).
		Where("active = ?", true).
		Where(
			"employment_type = ? OR EXISTS (SELECT 1 FROM salary_structure ss WHERE ss.staff_id = staff.id AND ss.is_active)",
			compensation.EmploymentPartTime,
		).
		Preload("Salaries", "is_active = ?", true).
		Preload("Allowances.Allowance").
		Preload("Deductions.Deduction").
		Preload("Attendances", "month = ? AND year = ?", month, year).
		Order("staff_number ASC").
		Find(&staff).Error
	return staff, err
}

func (r *repository) CreatePayslips(ctx context.Context, payslips []Payslip) error {
	return r.db.WithContext(ctx).Omit("Details", "Staff").Create(&payslips).Error
}

// CreateDetails inserts all line items for a run as one multi-row write.
func (r *repository) CreateDetails(ctx context.Context, details []PayslipDetail) error {
	return r.db.WithContext(ctx).Create(&details).Error
}

func (r *repository) ListPayslipsByRun(ctx context.Context, runID string) ([]Payslip, error) {
	var payslips []Payslip
	err := r.db.WithContext(ctx).
		Preload("Details").
		Preload("Staff.Position").
		Where("payroll_run_id = ?", runID).
		Order("created_at ASC").
		Find(&payslips).Error
	return payslips, err
}

func (r *repository) UpdatePayslipStatusByRun(ctx context.Context, runID uuid.UUID, status string, paymentDate *time.Time) error {
	return r.db.WithContext(ctx).
		Model(&Payslip{}).
		Where("payroll_run_id = ?", runID).
		Updates(map[string]any{
			"status":       status,
			"payment_date": paymentDate,
		}).Error
}
