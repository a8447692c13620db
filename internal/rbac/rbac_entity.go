package rbac

import (
	"time"

	"github.com/google/uuid"
)

type Role struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name        string    `gorm:"type:varchar(50);uniqueIndex:idx_role_name;not null" json:"name"`
	Description string    `gorm:"type:varchar(255)" json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (Role) TableName() string { return "role" }

type Permission struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Resource string    `gorm:"type:varchar(50);not null" json:"resource"`
	Action   string    `gorm:"type:varchar(50);not null" json:"action"`
	Label    string    `gorm:"type:varchar(100)" json:"label"`
	Category string    `gorm:"type:varchar(50)" json:"category"`
}

func (Permission) TableName() string { return "permission" }

type RolePermission struct {
	RoleID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	PermissionID uuid.UUID `gorm:"type:uuid;primaryKey"`
}

func (RolePermission) TableName() string { return "role_permission" }

// RolePolicyRow is one policy line as loaded into the enforcer.
type RolePolicyRow struct {
	RoleName string
	Resource string
	Action   string
}
