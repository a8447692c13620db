package position

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, row *Position) error
	FindAll(ctx context.Context) ([]Position, error)
	FindByID(ctx context.Context, id string) (*Position, error)
	Update(ctx context.Context, row *Position) error
	Delete(ctx context.Context, id string) error
	CountStaff(ctx context.Context, id string) (int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, row *Position) error {
	return r.db.WithContext(ctx).Create(row).Error
}

func (r *repository) FindAll(ctx context.Context) ([]Position, error) {
	var rows []Position
	err := r.db.WithContext(ctx).Order("title ASC").Find(&rows).Error
	return rows, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*Position, error) {
	var row Position
	if err := r.db.WithContext(ctx).First(&row, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *repository) Update(ctx context.Context, row *Position) error {
	return r.db.WithContext(ctx).Save(row).Error
}

func (r *repository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&Position{}, "id = ?", id).Error
}

func (r *repository) CountStaff(ctx context.Context, id string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("staff").
		Where("position_id = ?", id).
		Count(&count).Error
	return count, err
}
