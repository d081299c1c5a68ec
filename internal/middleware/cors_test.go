package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"todoist-export/internal/middleware"
)

func TestCors(t *testing.T) {
	gin.SetMode(gin.TestMode)

	mw := middleware.New(&mockLogger{}, 0)
	r := gin.New()
	r.Use(mw.Cors())
	r.GET("/export", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	t.Run("Sets Headers On GET", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/export", nil)
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if got := w.Header().Get("Access-Control-Allow-Origin"); got != "*" {
			t.Errorf("unexpected allow-origin %q", got)
		}
	})

	t.Run("Short Circuits Preflight", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodOptions, "/export", nil)
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204 for preflight, got %d", w.Code)
		}
	})
}
