package benefiterrors

import (
	"net/http"

	"github.com/Fritz24/Remunera/internal/shared/apperror"
)

var (
	ErrBenefitNotFound = apperror.New(
		apperror.CodeNotFound, "benefit not found", http.StatusNotFound)
	ErrStaffNotFound = apperror.New(
		apperror.CodeNotFound, "staff not found", http.StatusNotFound)
	ErrDuplicateName = apperror.New(
		apperror.CodeConflict, "a benefit with this name already exists", http.StatusConflict)
	ErrUnknownBenefitRef = apperror.New(
		apperror.CodeInvalidInput, "assignment references an unknown benefit", http.StatusBadRequest)
	ErrBenefitInUse = apperror.New(
		apperror.CodeConflict, "benefit is still assigned to staff", http.StatusConflict)
)
