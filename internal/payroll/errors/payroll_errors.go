package payrollerrors

import (
	"net/http"

	"github.com/Fritz24/Remunera/internal/shared/apperror"
)

var (
	ErrInvalidMonth = apperror.New(
		apperror.CodeInvalidInput,
		"month must be between 1 and 12",
		http.StatusBadRequest,
	)
	ErrInvalidYear = apperror.New(
		apperror.CodeInvalidInput,
		"year is required",
		http.StatusBadRequest,
	)
	ErrRunNotFound = apperror.New(
		apperror.CodeNotFound,
		"payroll run not found",
		http.StatusNotFound,
	)
	ErrRunAlreadyPaid = apperror.New(
		apperror.CodeInvalidState,
		"payroll for this period has already been paid",
		http.StatusBadRequest,
	)
	ErrRunInProgress = apperror.New(
		apperror.CodeConflict,
		"a payroll run for this period is already in progress",
		http.StatusConflict,
	)
	ErrInvalidStatus = apperror.New(
		apperror.CodeInvalidInput,
		"invalid payroll run status",
		http.StatusBadRequest,
	)
	ErrInvalidStatusTransition = apperror.New(
		apperror.CodeInvalidState,
		"invalid payroll run status transition",
		http.StatusBadRequest,
	)
)
