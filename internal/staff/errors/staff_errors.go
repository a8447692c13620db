package stafferrors

import (
	"net/http"

	"github.com/Fritz24/Remunera/internal/shared/apperror"
)

var (
	ErrStaffNotFound = apperror.New(
		apperror.CodeNotFound, "staff not found", http.StatusNotFound)
	ErrDuplicateStaffNumber = apperror.New(
		apperror.CodeConflict, "staff number already in use", http.StatusConflict)
	ErrDuplicateEmail = apperror.New(
		apperror.CodeConflict, "email already in use", http.StatusConflict)
	ErrInvalidHireDate = apperror.New(
		apperror.CodeInvalidInput, "invalid hire_date format, expected YYYY-MM-DD", http.StatusBadRequest)
	ErrHourlyRateRequired = apperror.New(
		apperror.CodeInvalidInput, "hourly_rate is required for part-time staff", http.StatusBadRequest)
	ErrBasicSalaryRequired = apperror.New(
		apperror.CodeInvalidInput, "basic_salary is required for full-time staff", http.StatusBadRequest)
)
