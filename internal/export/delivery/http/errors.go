package http

import (
	"net/http"

	"todoist-export/internal/export"
	pkgErrors "todoist-export/pkg/errors"
)

// mapError translates domain errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch err {
	case export.ErrMissingToken, export.ErrUnsupportedFormat:
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	case export.ErrPremiumRequired:
		return pkgErrors.NewHTTPError(http.StatusForbidden, err.Error())
	case export.ErrSnapshotFetch:
		return pkgErrors.NewHTTPError(http.StatusBadGateway, err.Error())
	case export.ErrSerialization, export.ErrJSONSerialization:
		return pkgErrors.NewHTTPError(http.StatusInternalServerError, err.Error())
	default:
		return pkgErrors.NewHTTPError(http.StatusInternalServerError, "export failed")
	}
}

// errDetail exposes the raw error outside production builds only.
func (h *handler) errDetail(err error) any {
	if h.environment == "production" {
		return nil
	}
	return err.Error()
}
