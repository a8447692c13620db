package rbac

import (
	"context"
	"testing"

	"github.com/Fritz24/Remunera/internal/domain"
	rbacerrors "github.com/Fritz24/Remunera/internal/rbac/errors"
	"github.com/Fritz24/Remunera/internal/rbac/infra"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakeRBACRepository struct {
	getRolePoliciesFn       func(ctx context.Context) ([]RolePolicyRow, error)
	listRolesFn             func(ctx context.Context) ([]Role, error)
	findRoleByIDFn          func(ctx context.Context, id string) (*Role, error)
	createRoleFn            func(ctx context.Context, role *Role) error
	updateRoleFn            func(ctx context.Context, role *Role) error
	deleteRoleFn            func(ctx context.Context, id string) error
	listPermissionsFn       func(ctx context.Context) ([]Permission, error)
	findPermissionsByIDsFn  func(ctx context.Context, ids []string) ([]Permission, error)
	findPermissionsByRoleFn func(ctx context.Context, roleID string) ([]Permission, error)
	replacePermissionsFn    func(ctx context.Context, roleID string, permissionIDs []string) error
}

func (f *fakeRBACRepository) GetRolePolicies(ctx context.Context) ([]RolePolicyRow, error) {
	if f.getRolePoliciesFn != nil {
		return f.getRolePoliciesFn(ctx)
	}
	return nil, nil
}

func (f *fakeRBACRepository) ListRoles(ctx context.Context) ([]Role, error) {
	if f.listRolesFn != nil {
		return f.listRolesFn(ctx)
	}
	return nil, nil
}

func (f *fakeRBACRepository) FindRoleByID(ctx context.Context, id string) (*Role, error) {
	if f.findRoleByIDFn != nil {
		return f.findRoleByIDFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeRBACRepository) CreateRole(ctx context.Context, role *Role) error {
	if f.createRoleFn != nil {
		return f.createRoleFn(ctx, role)
	}
	return nil
}

func (f *fakeRBACRepository) UpdateRole(ctx context.Context, role *Role) error {
	if f.updateRoleFn != nil {
		return f.updateRoleFn(ctx, role)
	}
	return nil
}

func (f *fakeRBACRepository) DeleteRole(ctx context.Context, id string) error {
	if f.deleteRoleFn != nil {
		return f.deleteRoleFn(ctx, id)
	}
	return nil
}

func (f *fakeRBACRepository) ListPermissions(ctx context.Context) ([]Permission, error) {
	if f.listPermissionsFn != nil {
		return f.listPermissionsFn(ctx)
	}
	return nil, nil
}

func (f *fakeRBACRepository) FindPermissionsByIDs(ctx context.Context, ids []string) ([]Permission, error) {
	if f.findPermissionsByIDsFn != nil {
		return f.findPermissionsByIDsFn(ctx, ids)
	}
	return nil, nil
}

func (f *fakeRBACRepository) FindPermissionsByRole(ctx context.Context, roleID string) ([]Permission, error) {
	if f.findPermissionsByRoleFn != nil {
		return f.findPermissionsByRoleFn(ctx, roleID)
	}
	return nil, nil
}

func (f *fakeRBACRepository) ReplaceRolePermissions(ctx context.Context, roleID string, permissionIDs []string) error {
	if f.replacePermissionsFn != nil {
		return f.replacePermissionsFn(ctx, roleID, permissionIDs)
	}
	return nil
}

func newTestService(t *testing.T, repo Repository) Service {
	t.Helper()
	enforcer, err := infra.NewEnforcer()
	assert.NoError(t, err)
	return NewService(repo, enforcer)
}

func TestRBACService_Enforce(t *testing.T) {
	repo := &fakeRBACRepository{
		getRolePoliciesFn: func(ctx context.Context) ([]RolePolicyRow, error) {
			return []RolePolicyRow{
				{RoleName: "hr_admin", Resource: "payroll", Action: "create"},
				{RoleName: "hr_admin", Resource: "payroll", Action: "read"},
				{RoleName: "viewer", Resource: "payroll", Action: "read"},
			}, nil
		},
	}
	svc := newTestService(t, repo)

	allowed, err := svc.Enforce(domain.EnforceRequest{
		Role: "hr_admin", Resource: "payroll", Action: "create",
	})
	assert.NoError(t, err)
	assert.True(t, allowed)

	denied, err := svc.Enforce(domain.EnforceRequest{
		Role: "viewer", Resource: "payroll", Action: "create",
	})
	assert.NoError(t, err)
	assert.False(t, denied)
}

func TestRBACService_Enforce_ReflectsPolicyChanges(t *testing.T) {
	policies := []RolePolicyRow{}
	repo := &fakeRBACRepository{
		getRolePoliciesFn: func(ctx context.Context) ([]RolePolicyRow, error) {
			return policies, nil
		},
	}
	svc := newTestService(t, repo)

	allowed, err := svc.Enforce(domain.EnforceRequest{
		Role: "viewer", Resource: "report", Action: "read",
	})
	assert.NoError(t, err)
	assert.False(t, allowed)

	// Grant and check again without restarting the service.
	policies = append(policies, RolePolicyRow{RoleName: "viewer", Resource: "report", Action: "read"})

	allowed, err = svc.Enforce(domain.EnforceRequest{
		Role: "viewer", Resource: "report", Action: "read",
	})
	assert.NoError(t, err)
	assert.True(t, allowed)
}

func TestRBACService_UpdateRolePermissions_UnknownPermission(t *testing.T) {
	ctx := context.Background()
	roleID := uuid.New()

	repo := &fakeRBACRepository{
		findRoleByIDFn: func(ctx context.Context, id string) (*Role, error) {
			return &Role{ID: roleID, Name: "hr_admin"}, nil
		},
		findPermissionsByIDsFn: func(ctx context.Context, ids []string) ([]Permission, error) {
			return nil, nil
		},
	}
	svc := newTestService(t, repo)

	_, err := svc.UpdateRolePermissions(ctx, roleID.String(), UpdateRolePermissionsRequest{
		PermissionIDs: []string{uuid.NewString()},
	})

	assert.ErrorIs(t, err, rbacerrors.ErrPermissionNotFound)
}

func TestRBACService_CreateRole_DuplicateName(t *testing.T) {
	ctx := context.Background()

	repo := &fakeRBACRepository{
		createRoleFn: func(ctx context.Context, role *Role) error {
			return assert.AnError
		},
	}
	svc := newTestService(t, repo)

	_, err := svc.CreateRole(ctx, CreateRoleRequest{Name: "hr_admin"})
	assert.Error(t, err)
	assert.NotErrorIs(t, err, rbacerrors.ErrDuplicateRoleName)

	repo.createRoleFn = func(ctx context.Context, role *Role) error {
		return errDuplicate{}
	}
	_, err = svc.CreateRole(ctx, CreateRoleRequest{Name: "hr_admin"})
	assert.ErrorIs(t, err, rbacerrors.ErrDuplicateRoleName)
}

type errDuplicate struct{}

func (errDuplicate) Error() string {
	return `pq: duplicate key value violates unique constraint "idx_role_name"`
}

func TestRBACService_GetRole_NotFound(t *testing.T) {
	svc := newTestService(t, &fakeRBACRepository{})

	_, err := svc.GetRole(context.Background(), uuid.NewString())
	assert.ErrorIs(t, err, rbacerrors.ErrRoleNotFound)
}
