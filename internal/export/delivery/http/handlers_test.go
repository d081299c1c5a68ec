package http_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"todoist-export/internal/export"
	exportHTTP "todoist-export/internal/export/delivery/http"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, args ...any)  {}

type mockUseCase struct {
	exportFunc func(input export.Input) (export.Output, error)

	lastInput export.Input
}

func (m *mockUseCase) Export(ctx context.Context, input export.Input) (export.Output, error) {
	m.lastInput = input
	return m.exportFunc(input)
}

func doExport(t *testing.T, uc export.UseCase, target string) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)

	h := exportHTTP.New(&mockLogger{}, uc, "development")
	r := gin.New()
	r.GET("/", h.Home)
	r.GET("/export", h.Export)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	r.ServeHTTP(w, req)
	return w
}

func TestExportHandler(t *testing.T) {
	t.Run("Streams File With Disposition", func(t *testing.T) {
		uc := &mockUseCase{
			exportFunc: func(export.Input) (export.Output, error) {
				return export.Output{
					Filename:    "todoist.csv",
					ContentType: "text/csv",
					Data:        []byte("id,content\n"),
				}, nil
			},
		}
		w := doExport(t, uc, "/export?token=tok&format=csv")

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if got := w.Header().Get("Content-Disposition"); got != "attachment; filename=todoist.csv" {
			t.Errorf("unexpected disposition %q", got)
		}
		if uc.lastInput.Format != export.FormatCSV || uc.lastInput.IncludeArchived {
			t.Errorf("unexpected input: %+v", uc.lastInput)
		}
	})

	t.Run("Legacy Suffixed Format", func(t *testing.T) {
		uc := &mockUseCase{
			exportFunc: func(export.Input) (export.Output, error) {
				return export.Output{Filename: "todoist.json", ContentType: "application/json", Data: []byte("{}")}, nil
			},
		}
		doExport(t, uc, "/export?token=tok&format=json_all")

		if uc.lastInput.Format != export.FormatJSON {
			t.Errorf("suffix leaked into format: %q", uc.lastInput.Format)
		}
		if !uc.lastInput.IncludeArchived {
			t.Error("archived flag not parsed off the legacy suffix")
		}
	})

	t.Run("Missing Token", func(t *testing.T) {
		uc := &mockUseCase{exportFunc: func(export.Input) (export.Output, error) {
			t.Fatal("usecase must not run without a token")
			return export.Output{}, nil
		}}
		w := doExport(t, uc, "/export?format=json")

		if w.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", w.Code)
		}
	})

	t.Run("Premium Required Renders 403", func(t *testing.T) {
		uc := &mockUseCase{
			exportFunc: func(export.Input) (export.Output, error) {
				return export.Output{}, export.ErrPremiumRequired
			},
		}
		w := doExport(t, uc, "/export?token=tok&format=csv&archived=1")

		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
		if !strings.Contains(w.Body.String(), "Must be Todoist Premium to export archived items.") {
			t.Errorf("premium message missing: %s", w.Body.String())
		}
	})

	t.Run("Upstream Failure Renders 502", func(t *testing.T) {
		uc := &mockUseCase{
			exportFunc: func(export.Input) (export.Output, error) {
				return export.Output{}, export.ErrSnapshotFetch
			},
		}
		w := doExport(t, uc, "/export?token=tok")

		if w.Code != http.StatusBadGateway {
			t.Fatalf("expected 502, got %d", w.Code)
		}
		if !strings.Contains(w.Body.String(), "Could not fetch data from Todoist.") {
			t.Errorf("fetch message missing: %s", w.Body.String())
		}
	})

	t.Run("Home Page", func(t *testing.T) {
		uc := &mockUseCase{exportFunc: func(export.Input) (export.Output, error) {
			return export.Output{}, nil
		}}
		w := doExport(t, uc, "/")

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if !strings.Contains(w.Body.String(), "/auth/login") {
			t.Error("home page must point at the authorize flow")
		}
	})
}
