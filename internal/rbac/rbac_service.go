package rbac

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/Fritz24/Remunera/internal/domain"
	rbacerrors "github.com/Fritz24/Remunera/internal/rbac/errors"

	"github.com/casbin/casbin/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Service interface {
	Enforce(req domain.EnforceRequest) (bool, error)
	LoadPolicy(ctx context.Context) error

	ListRoles(ctx context.Context) ([]RoleResponse, error)
	GetRole(ctx context.Context, id string) (*RoleResponse, error)
	CreateRole(ctx context.Context, req CreateRoleRequest) (*RoleResponse, error)
	UpdateRole(ctx context.Context, id string, req UpdateRoleRequest) (*RoleResponse, error)
	DeleteRole(ctx context.Context, id string) error

	ListPermissions(ctx context.Context) ([]PermissionResponse, error)
	UpdateRolePermissions(ctx context.Context, roleID string, req UpdateRolePermissionsRequest) (*RoleResponse, error)
}

type service struct {
	repo     Repository
	enforcer *casbin.Enforcer
	logger   *zap.Logger
	mu       sync.Mutex
}

func NewService(repo Repository, enforcer *casbin.Enforcer, logger ...*zap.Logger) Service {
	l := zap.L().Named("rbac.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("rbac.service")
	}
	return &service{repo: repo, enforcer: enforcer, logger: l}
}

func (s *service) LoadPolicy(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadPolicyUnlocked(ctx)
}

func (s *service) loadPolicyUnlocked(ctx context.Context) error {
	s.enforcer.ClearPolicy()

	policies, err := s.repo.GetRolePolicies(ctx)
	if err != nil {
		return err
	}

	for _, p := range policies {
		if _, err := s.enforcer.AddPolicy(p.RoleName, p.Resource, p.Action); err != nil {
			return err
		}
	}

	s.logger.Debug("rbac policy loaded", zap.Int("policies", len(policies)))
	return nil
}

// Enforce reloads the policy on every check so permission edits take
// effect without a restart. Policy volume is small (roles x catalog).
func (s *service) Enforce(req domain.EnforceRequest) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.loadPolicyUnlocked(context.Background()); err != nil {
		return false, err
	}

	allowed, err := s.enforcer.Enforce(req.Role, req.Resource, req.Action)
	if err != nil {
		s.logger.Error("rbac enforce failed",
			zap.String("role", req.Role),
			zap.String("resource", req.Resource),
			zap.String("action", req.Action),
			zap.Error(err),
		)
		return false, err
	}

	s.logger.Debug("rbac enforce",
		zap.String("role", req.Role),
		zap.String("resource", req.Resource),
		zap.String("action", req.Action),
		zap.Bool("allowed", allowed),
	)
	return allowed, nil
}

func (s *service) ListRoles(ctx context.Context) ([]RoleResponse, error) {
	roles, err := s.repo.ListRoles(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]RoleResponse, 0, len(roles))
	for i := range roles {
		out = append(out, *mapRoleToResponse(&roles[i], nil))
	}
	return out, nil
}

func (s *service) GetRole(ctx context.Context, id string) (*RoleResponse, error) {
	role, err := s.findRole(ctx, id)
	if err != nil {
		return nil, err
	}

	perms, err := s.repo.FindPermissionsByRole(ctx, id)
	if err != nil {
		return nil, err
	}

	return mapRoleToResponse(role, perms), nil
}

func (s *service) CreateRole(ctx context.Context, req CreateRoleRequest) (*RoleResponse, error) {
	role := &Role{
		Name:        strings.TrimSpace(req.Name),
		Description: strings.TrimSpace(req.Description),
	}

	if err := s.repo.CreateRole(ctx, role); err != nil {
		return nil, mapRoleError(err)
	}
	return mapRoleToResponse(role, nil), nil
}

func (s *service) UpdateRole(ctx context.Context, id string, req UpdateRoleRequest) (*RoleResponse, error) {
	role, err := s.findRole(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		role.Name = strings.TrimSpace(*req.Name)
	}
	if req.Description != nil {
		role.Description = strings.TrimSpace(*req.Description)
	}

	if err := s.repo.UpdateRole(ctx, role); err != nil {
		return nil, mapRoleError(err)
	}
	return mapRoleToResponse(role, nil), nil
}

func (s *service) DeleteRole(ctx context.Context, id string) error {
	if _, err := s.findRole(ctx, id); err != nil {
		return err
	}
	return s.repo.DeleteRole(ctx, id)
}

func (s *service) ListPermissions(ctx context.Context) ([]PermissionResponse, error) {
	perms, err := s.repo.ListPermissions(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]PermissionResponse, 0, len(perms))
	for i := range perms {
		out = append(out, mapPermissionToResponse(&perms[i]))
	}
	return out, nil
}

func (s *service) UpdateRolePermissions(ctx context.Context, roleID string, req UpdateRolePermissionsRequest) (*RoleResponse, error) {
	role, err := s.findRole(ctx, roleID)
	if err != nil {
		return nil, err
	}

	found, err := s.repo.FindPermissionsByIDs(ctx, req.PermissionIDs)
	if err != nil {
		return nil, err
	}
	if len(found) != len(req.PermissionIDs) {
		return nil, rbacerrors.ErrPermissionNotFound
	}

	if err := s.repo.ReplaceRolePermissions(ctx, roleID, req.PermissionIDs); err != nil {
		return nil, err
	}

	return mapRoleToResponse(role, found), nil
}

func (s *service) findRole(ctx context.Context, id string) (*Role, error) {
	role, err := s.repo.FindRoleByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, rbacerrors.ErrRoleNotFound
		}
		return nil, err
	}
	return role, nil
}

func mapRoleError(err error) error {
	if strings.Contains(err.Error(), "duplicate key") {
		return rbacerrors.ErrDuplicateRoleName
	}
	return err
}

func mapRoleToResponse(role *Role, perms []Permission) *RoleResponse {
	resp := &RoleResponse{
		ID:          role.ID.String(),
		Name:        role.Name,
		Description: role.Description,
		CreatedAt:   role.CreatedAt,
		UpdatedAt:   role.UpdatedAt,
	}
	for i := range perms {
		resp.Permissions = append(resp.Permissions, mapPermissionToResponse(&perms[i]))
	}
	return resp
}

func mapPermissionToResponse(p *Permission) PermissionResponse {
	return PermissionResponse{
		ID:       p.ID.String(),
		Resource: p.Resource,
		Action:   p.Action,
		Label:    p.Label,
		Category: p.Category,
	}
}
