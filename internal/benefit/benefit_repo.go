package benefit

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository interface {
	WithTx(tx *gorm.DB) Repository
	StaffExists(ctx context.Context, staffID string) (bool, error)

	CreateAllowance(ctx context.Context, row *Allowance) error
	ListAllowances(ctx context.Context) ([]Allowance, error)
	FindAllowanceByID(ctx context.Context, id string) (*Allowance, error)
	UpdateAllowance(ctx context.Context, row *Allowance) error
	DeleteAllowance(ctx context.Context, id string) error
	CountAllowanceAssignments(ctx context.Context, id string) (int64, error)

	CreateDeduction(ctx context.Context, row *Deduction) error
	ListDeductions(ctx context.Context) ([]Deduction, error)
	FindDeductionByID(ctx context.Context, id string) (*Deduction, error)
	UpdateDeduction(ctx context.Context, row *Deduction) error
	DeleteDeduction(ctx context.Context, id string) error
	CountDeductionAssignments(ctx context.Context, id string) (int64, error)

	ListStaffAllowances(ctx context.Context, staffID string) ([]StaffAllowance, error)
	CreateStaffAllowances(ctx context.Context, rows []StaffAllowance) error
	UpdateStaffAllowance(ctx context.Context, row *StaffAllowance) error
	DeleteStaffAllowances(ctx context.Context, ids []uuid.UUID) error

	ListStaffDeductions(ctx context.Context, staffID string) ([]StaffDeduction, error)
	CreateStaffDeductions(ctx context.Context, rows []StaffDeduction) error
	UpdateStaffDeduction(ctx context.Context, row *StaffDeduction) error
	DeleteStaffDeductions(ctx context.Context, ids []uuid.UUID) error
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

func (r *repository) StaffExists(ctx context.Context, staffID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("staff").
		Where("id = ?", staffID).
		Count(&count).Error
	return count > 0, err
}

func (r *repository) CreateAllowance(ctx context.Context, row *Allowance) error {
	return r.db.WithContext(ctx).Create(row).Error
}

func (r *repository) ListAllowances(ctx context.Context) ([]Allowance, error) {
	var rows []Allowance
	err := r.db.WithContext(ctx).Order("name ASC").Find(&rows).Error
	return rows, err
}

func (r *repository) FindAllowanceByID(ctx context.Context, id string) (*Allowance, error) {
	var row Allowance
	if err := r.db.WithContext(ctx).First(&row, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *repository) UpdateAllowance(ctx context.Context, row *Allowance) error {
	return r.db.WithContext(ctx).Save(row).Error
}

func (r *repository) DeleteAllowance(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&Allowance{}, "id = ?", id).Error
}

func (r *repository) CountAllowanceAssignments(ctx context.Context, id string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&StaffAllowance{}).
		Where("allowance_id = ?", id).
		Count(&count).Error
	return count, err
}

func (r *repository) CreateDeduction(ctx context.Context, row *Deduction) error {
	return r.db.WithContext(ctx).Create(row).Error
}

func (r *repository) ListDeductions(ctx context.Context) ([]Deduction, error) {
	var rows []Deduction
	err := r.db.WithContext(ctx).Order("name ASC").Find(&rows).Error
	return rows, err
}

func (r *repository) FindDeductionByID(ctx context.Context, id string) (*Deduction, error) {
	var row Deduction
	if err := r.db.WithContext(ctx).First(&row, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *repository) UpdateDeduction(ctx context.Context, row *Deduction) error {
	return r.db.WithContext(ctx).Save(row).Error
}

func (r *repository) DeleteDeduction(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&Deduction{}, "id = ?", id).Error
}

func (r *repository) CountDeductionAssignments(ctx context.Context, id string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&StaffDeduction{}).
		Where("deduction_id = ?", id).
		Count(&count).Error
	return count, err
}

func (r *repository) ListStaffAllowances(ctx context.Context, staffID string) ([]StaffAllowance, error) {
	var rows []StaffAllowance
	err := r.db.WithContext(ctx).
		Preload("Allowance").
		Where("staff_id = ?", staffID).
		Find(&rows).Error
	return rows, err
}

func (r *repository) CreateStaffAllowances(ctx context.Context, rows []StaffAllowance) error {
	return r.db.WithContext(ctx).Omit("Allowance").Create(&rows).Error
}

func (r *repository) UpdateStaffAllowance(ctx context.Context, row *StaffAllowance) error {
	return r.db.WithContext(ctx).
		Model(&StaffAllowance{}).
		Where("id = ?", row.ID).
		Update("amount", row.Amount).Error
}

func (r *repository) DeleteStaffAllowances(ctx context.Context, ids []uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&StaffAllowance{}, "id IN ?", ids).Error
}

func (r *repository) ListStaffDeductions(ctx context.Context, staffID string) ([]StaffDeduction, error) {
	var rows []StaffDeduction
	err := r.db.WithContext(ctx).
		Preload("Deduction").
		Where("staff_id = ?", staffID).
		Find(&rows).Error
	return rows, err
}

func (r *repository) CreateStaffDeductions(ctx context.Context, rows []StaffDeduction) error {
	return r.db.WithContext(ctx).Omit("Deduction").Create(&rows).Error
}

func (r *repository) UpdateStaffDeduction(ctx context.Context, row *StaffDeduction) error {
	return r.db.WithContext(ctx).
		Model(&StaffDeduction{}).
		Where("id = ?", row.ID).
		Update("amount", row.Amount).Error
}

func (r *repository) DeleteStaffDeductions(ctx context.Context, ids []uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&StaffDeduction{}, "id IN ?", ids).Error
}
