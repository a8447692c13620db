package rbac

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	GetRolePolicies(ctx context.Context) ([]RolePolicyRow, error)

	ListRoles(ctx context.Context) ([]Role, error)
	FindRoleByID(ctx context.Context, id string) (*Role, error)
	CreateRole(ctx context.Context, role *Role) error
	UpdateRole(ctx context.Context, role *Role) error
	DeleteRole(ctx context.Context, id string) error

	ListPermissions(ctx context.Context) ([]Permission, error)
	FindPermissionsByIDs(ctx context.Context, ids []string) ([]Permission, error)
	FindPermissionsByRole(ctx context.Context, roleID string) ([]Permission, error)
	ReplaceRolePermissions(ctx context.Context, roleID string, permissionIDs []string) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) GetRolePolicies(ctx context.Context) ([]RolePolicyRow, error) {
	var rows []RolePolicyRow
	err := r.db.WithContext(ctx).
		Table("role_permission").
		Select("role.name AS role_name, permission.resource, permission.action").
		Joins("JOIN role ON role.id = role_permission.role_id").
		Joins("JOIN permission ON permission.id = role_permission.permission_id").
		Scan(&rows).Error
	return rows, err
}

func (r *repository) ListRoles(ctx context.Context) ([]Role, error) {
	var rows []Role
	err := r.db.WithContext(ctx).Order("name ASC").Find(&rows).Error
	return rows, err
}

func (r *repository) FindRoleByID(ctx context.Context, id string) (*Role, error) {
	var row Role
	if err := r.db.WithContext(ctx).First(&row, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *repository) CreateRole(ctx context.Context, role *Role) error {
	return r.db.WithContext(ctx).Create(role).Error
}

func (r *repository) UpdateRole(ctx context.Context, role *Role) error {
	return r.db.WithContext(ctx).Save(role).Error
}

func (r *repository) DeleteRole(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("role_id = ?", id).Delete(&RolePermission{}).Error; err != nil {
			return err
		}
		return tx.Delete(&Role{}, "id = ?", id).Error
	})
}

func (r *repository) ListPermissions(ctx context.Context) ([]Permission, error) {
	var rows []Permission
	err := r.db.WithContext(ctx).Order("category, label").Find(&rows).Error
	return rows, err
}

func (r *repository) FindPermissionsByIDs(ctx context.Context, ids []string) ([]Permission, error) {
	var rows []Permission
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&rows).Error
	return rows, err
}

func (r *repository) FindPermissionsByRole(ctx context.Context, roleID string) ([]Permission, error) {
	var rows []Permission
	err := r.db.WithContext(ctx).
		Table("permission").
		Select("permission.*").
		Joins("JOIN role_permission ON role_permission.permission_id = permission.id").
		Where("role_permission.role_id = ?", roleID).
		Scan(&rows).Error
	return rows, err
}

func (r *repository) ReplaceRolePermissions(ctx context.Context, roleID string, permissionIDs []string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("role_id = ?", roleID).Delete(&RolePermission{}).Error; err != nil {
			return err
		}
		for _, pid := range permissionIDs {
			if err := tx.Exec(
				"INSERT INTO role_permission (role_id, permission_id) VALUES (?, ?)",
				roleID, pid,
			).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
