package attendanceerrors

import (
	"net/http"

	"github.com/Fritz24/Remunera/internal/shared/apperror"
)

var (
	ErrFileRequired = apperror.New(
		apperror.CodeInvalidInput, "attendance file is required", http.StatusBadRequest)
	ErrNotCSV = apperror.New(
		apperror.CodeInvalidInput, "attendance file must be a .csv", http.StatusBadRequest)
	ErrInvalidMonth = apperror.New(
		apperror.CodeInvalidInput, "month must be between 1 and 12", http.StatusBadRequest)
	ErrInvalidYear = apperror.New(
		apperror.CodeInvalidInput, "year must be a valid year", http.StatusBadRequest)
	ErrMissingHeader = apperror.New(
		apperror.CodeInvalidInput, "csv is missing required columns", http.StatusBadRequest)
	ErrEmptyFile = apperror.New(
		apperror.CodeInvalidInput, "csv contains no data rows", http.StatusBadRequest)
)
