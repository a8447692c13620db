package staff

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, s *Staff) error
	CreateSalaryStructure(ctx context.Context, row *SalaryStructureRow) error
	FindAll(ctx context.Context, filter ListStaffFilterRequest) ([]Staff, error)
	FindOptions(ctx context.Context) ([]Staff, error)
	FindByID(ctx context.Context, id string) (*Staff, error)
	Update(ctx context.Context, s *Staff) error
	Deactivate(ctx context.Context, id string) error
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

func (r *repository) Create(ctx context.Context, s *Staff) error {
	return r.db.WithContext(ctx).Omit("Position").Create(s).Error
}

func (r *repository) CreateSalaryStructure(ctx context.Context, row *SalaryStructureRow) error {
	return r.db.WithContext(ctx).Create(row).Error
}

func (r *repository) FindAll(ctx context.Context, filter ListStaffFilterRequest) ([]Staff, error) {
	db := r.db.WithContext(ctx).Preload("Position")
	if filter.Active != nil {
		db = db.Where("active = ?", *filter.Active)
	}
	if filter.EmploymentType != nil {
		db = db.Where("employment_type = ?", *filter.EmploymentType)
	}
	if filter.Search != nil && *filter.Search != "" {
		like := "%" + *filter.Search + "%"
		db = db.Where(
			"staff_number ILIKE ? OR (first_name || ' ' || last_name) ILIKE ?",
			like, like,
		)
	}

	var rows []Staff
	err := db.Order("staff_number ASC").Find(&rows).Error
	return rows, err
}

func (r *repository) FindOptions(ctx context.Context) ([]Staff, error) {
	var rows []Staff
	err := r.db.WithContext(ctx).
		Select("id", "staff_number", "first_name", "last_name").
		Where("active = ?", true).
		Order("staff_number ASC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*Staff, error) {
	var s Staff
	err := r.db.WithContext(ctx).
		Preload("Position").
		First(&s, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *repository) Update(ctx context.Context, s *Staff) error {
	return r.db.WithContext(ctx).Omit("Position").Save(s).Error
}

// Deactivate is the delete path: history stays, eligibility ends.
func (r *repository) Deactivate(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).
		Model(&Staff{}).
		Where("id = ?", id).
		Update("active", false)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
