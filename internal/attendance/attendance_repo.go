package attendance

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Repository interface {
	WithTx(tx *gorm.DB) Repository
	FindStaffByNumber(ctx context.Context, staffNumber string) (*StaffRow, error)
	FindStaffByName(ctx context.Context, name string) (*StaffRow, error)
	Upsert(ctx context.Context, row *Attendance) error
	List(ctx context.Context, month, year *int) ([]Attendance, error)
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

func (r *repository) FindStaffByNumber(ctx context.Context, staffNumber string) (*StaffRow, error) {
	var staff StaffRow
	err := r.db.WithContext(ctx).
		Preload("Position").
		Preload("Deductions.Deduction").
		First(&staff, "staff_number = ?", staffNumber).Error
	if err != nil {
		return nil, err
	}
	return &staff, nil
}

// FindStaffByName is the fallback match for sheets without a staff
// number column. Partial, case-insensitive, first hit wins.
func (r *repository) FindStaffByName(ctx context.Context, name string) (*StaffRow, error) {
	var staff StaffRow
	err := r.db.WithContext(ctx).
		Preload("Position").
		Preload("Deductions.Deduction").
		Where("(first_name || ' ' || last_name) ILIKE ?", "%"+name+"%").
		First(&staff).Error
	if err != nil {
		return nil, err
	}
	return &staff, nil
}

func (r *repository) Upsert(ctx context.Context, row *Attendance) error {
	return r.db.WithContext(ctx).
		Omit("Staff").
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "staff_id"}, {Name: "month"}, {Name: "year"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"hours_present", "hours_absent", "overtime_hours", "updated_at",
			}),
		}).
		Create(row).Error
}

func (r *repository) List(ctx context.Context, month, year *int) ([]Attendance, error) {
	db := r.db.WithContext(ctx).Preload("Staff.Position")
	if month != nil {
		db = db.Where("month = ?", *month)
	}
	if year != nil {
		db = db.Where("year = ?", *year)
	}

	var rows []Attendance
	err := db.Order("year DESC, month DESC").Find(&rows).Error
	return rows, err
}
