package middleware

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

type nopLogger struct{}

func (nopLogger) Debug(ctx context.Context, args ...any)                    {}
func (nopLogger) Debugf(ctx context.Context, template string, args ...any)  {}
func (nopLogger) Info(ctx context.Context, args ...any)                     {}
func (nopLogger) Infof(ctx context.Context, template string, args ...any)   {}
func (nopLogger) Warn(ctx context.Context, args ...any)                     {}
func (nopLogger) Warnf(ctx context.Context, template string, args ...any)   {}
func (nopLogger) Error(ctx context.Context, args ...any)                    {}
func (nopLogger) Errorf(ctx context.Context, template string, args ...any)  {}
func (nopLogger) Fatal(ctx context.Context, args ...any)                    {}
func (nopLogger) Fatalf(ctx context.Context, template string, args ...any)  {}
func (nopLogger) DPanic(ctx context.Context, args ...any)                   {}
func (nopLogger) DPanicf(ctx context.Context, template string, args ...any) {}
func (nopLogger) Panic(ctx context.Context, args ...any)                    {}
func (nopLogger) Panicf(ctx context.Context, template string, args ...any)  {}

// The limiter table must stay bounded no matter how many distinct
// client IPs hit the service: the LRU evicts the oldest entry once
// maxTrackedClients is reached.
func TestLimiterTableStaysBounded(t *testing.T) {
	gin.SetMode(gin.TestMode)

	mw := New(nopLogger{}, 60)
	r := gin.New()
	r.GET("/export", mw.RateLimit(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	distinct := maxTrackedClients + 500
	for i := 0; i < distinct; i++ {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/export", nil)
		req.RemoteAddr = fmt.Sprintf("10.%d.%d.%d:1234", i/65536, (i/256)%256, i%256)
		r.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Fatalf("request from IP %d rejected with %d", i, w.Code)
		}
	}

	if got := mw.limiters.Len(); got > maxTrackedClients {
		t.Errorf("limiter table grew past its bound: %d entries, max %d", got, maxTrackedClients)
	}
	if got := mw.limiters.Len(); got != maxTrackedClients {
		t.Errorf("expected table capped at %d after %d distinct IPs, got %d", maxTrackedClients, distinct, got)
	}
}
