package salarystructureerrors

import (
	"net/http"

	"github.com/Fritz24/Remunera/internal/shared/apperror"
)

var (
	ErrStructureNotFound = apperror.New(
		apperror.CodeNotFound, "salary structure not found", http.StatusNotFound)
	ErrStaffNotFound = apperror.New(
		apperror.CodeNotFound, "staff not found", http.StatusNotFound)
	ErrInvalidBasicSalary = apperror.New(
		apperror.CodeInvalidInput, "basic_salary must be greater than zero", http.StatusBadRequest)
	ErrInvalidEffectiveDate = apperror.New(
		apperror.CodeInvalidInput, "effective_at must be a YYYY-MM-DD date", http.StatusBadRequest)
)
