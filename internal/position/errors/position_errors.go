package positionerrors

import (
	"net/http"

	"github.com/Fritz24/Remunera/internal/shared/apperror"
)

var (
	ErrPositionNotFound = apperror.New(
		apperror.CodeNotFound, "position not found", http.StatusNotFound)
	ErrDuplicateTitle = apperror.New(
		apperror.CodeConflict, "a position with this title already exists", http.StatusConflict)
	ErrPositionInUse = apperror.New(
		apperror.CodeConflict, "position is still assigned to staff", http.StatusConflict)
)
