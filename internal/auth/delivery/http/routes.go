package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps the authorization flow endpoints.
func RegisterRoutes(rg *gin.RouterGroup, h Handler) {
	rg.GET("/login", h.Login)
	rg.GET("/callback", h.Callback)
}
