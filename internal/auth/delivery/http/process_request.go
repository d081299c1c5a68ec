package http

import (
	"github.com/gin-gonic/gin"

	"todoist-export/internal/auth"
	"todoist-export/internal/export"
)

// processLoginReq parses the export preferences off the login request.
func (h *handler) processLoginReq(c *gin.Context) (auth.LoginInput, error) {
	archived := c.Query("archived") == "1" || c.Query("archived") == "true"

	format, archived, err := export.ParseFormat(c.Query("format"), archived)
	if err != nil {
		return auth.LoginInput{}, err
	}

	return auth.LoginInput{Format: format, Archived: archived}, nil
}
