package rbacerrors

import (
	"net/http"

	"github.com/Fritz24/Remunera/internal/shared/apperror"
)

var (
	ErrRoleNotFound = apperror.New(
		apperror.CodeNotFound, "role not found", http.StatusNotFound)
	ErrDuplicateRoleName = apperror.New(
		apperror.CodeConflict, "a role with this name already exists", http.StatusConflict)
	ErrPermissionNotFound = apperror.New(
		apperror.CodeInvalidInput, "one or more permissions do not exist", http.StatusBadRequest)
)
