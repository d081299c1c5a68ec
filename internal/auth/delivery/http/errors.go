package http

import (
	"net/http"

	"todoist-export/internal/auth"
	"todoist-export/internal/export"
	pkgErrors "todoist-export/pkg/errors"
)

// mapError translates domain errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch err {
	case auth.ErrInvalidState, auth.ErrMissingCode, export.ErrUnsupportedFormat:
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	case auth.ErrAuthorization:
		return pkgErrors.NewHTTPError(http.StatusUnauthorized, err.Error())
	default:
		return pkgErrors.NewHTTPError(http.StatusInternalServerError, "authorization failed")
	}
}

// errDetail exposes the raw error outside production builds only.
func (h *handler) errDetail(err error) any {
	if h.environment == "production" {
		return nil
	}
	return err.Error()
}
