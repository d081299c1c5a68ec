package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Cors returns a permissive CORS handler. The service exposes only
// read-style GET endpoints, so a wildcard origin is acceptable.
func (m Middleware) Cors() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}
