package reporterrors

import (
	"net/http"

	"github.com/Fritz24/Remunera/internal/shared/apperror"
)

var (
	ErrInvalidMonth = apperror.New(
		apperror.CodeInvalidInput, "month must be between 1 and 12", http.StatusBadRequest)
	ErrInvalidYear = apperror.New(
		apperror.CodeInvalidInput, "year must be a valid year", http.StatusBadRequest)
)
