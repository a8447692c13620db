package salarystructure

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	WithTx(tx *gorm.DB) Repository
	StaffExists(ctx context.Context, staffID string) (bool, error)
	DeactivateByStaff(ctx context.Context, staffID string) error
	Create(ctx context.Context, row *SalaryStructure) error
	FindAll(ctx context.Context, filter ListSalaryFilterRequest) ([]SalaryStructure, error)
	FindActiveByStaff(ctx context.Context, staffID string) (*SalaryStructure, error)
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

func (r *repository) DeactivateByStaff(ctx context.Context, staffID string) error {
	return r.db.WithContext(ctx).
		Model(&SalaryStructure{}).
		Where("staff_id = ? AND is_active", staffID).
		Update("is_active", false).Error
}

func (r *repository) Create(ctx context.Context, row *SalaryStructure) error {
	return r.db.WithContext(ctx).Omit("Staff").Create(row).Error
}

func (r *repository) FindAll(ctx context.Context, filter ListSalaryFilterRequest) ([]SalaryStructure, error) {
	db := r.db.WithContext(ctx).Preload("Staff")
	if filter.StaffID != nil {
		db = db.Where("staff_id = ?", *filter.StaffID)
	}
	if filter.ActiveOnly {
		db = db.Where("is_active")
	}

	var rows []SalaryStructure
	err := db.Order("effective_at DESC").Find(&rows).Error
	return rows, err
}

func (r *repository) FindActiveByStaff(ctx context.Context, staffID string) (*SalaryStructure, error) {
	var row SalaryStructure
	err := r.db.WithContext(ctx).
		Preload("Staff").
		Where("staff_id = ? AND is_active", staffID).
		First(&row).Error
	if err != nil {
		return nil, err
	}
	return &row, nil
}
