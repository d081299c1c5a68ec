package http

import (
	"github.com/gin-gonic/gin"

	"todoist-export/internal/export"
)

// processExportReq parses and validates the download query parameters.
func (h *handler) processExportReq(c *gin.Context) (export.Input, error) {
	token := c.Query("token")
	if token == "" {
		return export.Input{}, export.ErrMissingToken
	}

	archived := c.Query("archived") == "1" || c.Query("archived") == "true"

	format, archived, err := export.ParseFormat(c.Query("format"), archived)
	if err != nil {
		return export.Input{}, err
	}

	return export.Input{
		Token:           token,
		Format:          format,
		IncludeArchived: archived,
	}, nil
}
