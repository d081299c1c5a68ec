package http

import (
	"github.com/gin-gonic/gin"

	"todoist-export/internal/middleware"
)

// RegisterRoutes maps the export endpoints. The download route is rate
// limited: each export triggers a full upstream sync.
func RegisterRoutes(r *gin.Engine, h Handler, mw middleware.Middleware) {
	r.GET("/", h.Home)
	r.GET("/export", mw.RateLimit(), h.Export)
}
