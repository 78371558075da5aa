package http

import (
	"net/http"

	"quicksched/internal/schedule"
	pkgErrors "quicksched/pkg/errors"
)

// mapError translates domain/use-case errors into HTTP errors from
// pkg/errors. Unknown errors surface as 500 without detail.
func (h *handler) mapError(err error) error {
	switch err {
	case schedule.ErrEmptyInput:
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "schedule text is empty")
	case schedule.ErrScheduleNotFound:
		return pkgErrors.NewHTTPError(http.StatusNotFound, "schedule not found")
	default:
		return pkgErrors.NewHTTPError(http.StatusInternalServerError, "internal error")
	}
}
