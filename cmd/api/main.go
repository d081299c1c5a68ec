package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/oauth2"

	"todoist-export/config"
	_ "todoist-export/docs" // Swagger docs
	authHTTP "todoist-export/internal/auth/delivery/http"
	authUC "todoist-export/internal/auth/usecase"
	exportHTTP "todoist-export/internal/export/delivery/http"
	exportUC "todoist-export/internal/export/usecase"
	"todoist-export/internal/httpserver"
	"todoist-export/internal/middleware"
	"todoist-export/pkg/log"
	"todoist-export/pkg/todoist"
)

// @title       Todoist Export API
// @description OAuth2 relay that downloads a Todoist account's full task dataset as JSON or CSV.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Todoist Export...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Todoist API: %s", cfg.Todoist.APIBaseURL)

	// 3. Upstream client
	todoistClient := todoist.NewClient(cfg.Todoist.APIBaseURL, todoist.WithLogger(logger))

	// 4. Auth domain
	oauthCfg := &oauth2.Config{
		ClientID:     cfg.Todoist.ClientID,
		ClientSecret: cfg.Todoist.ClientSecret,
		Scopes:       cfg.Todoist.Scopes,
		Endpoint: oauth2.Endpoint{
			AuthURL:  cfg.Todoist.AuthURL,
			TokenURL: cfg.Todoist.TokenURL,
		},
	}
	stateTTL := time.Duration(cfg.Export.StateTTLMinutes) * time.Minute
	authUseCase := authUC.New(logger, oauthCfg, stateTTL)
	authHandler := authHTTP.New(logger, authUseCase, cfg.Environment.Name)

	// 5. Export domain
	exportUseCase := exportUC.New(logger, todoistClient)
	exportHandler := exportHTTP.New(logger, exportUseCase, cfg.Environment.Name)

	// 6. HTTP server
	mw := middleware.New(logger, cfg.Export.RateLimitPerMin)
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:        logger,
		Port:          cfg.HTTPServer.Port,
		Mode:          cfg.HTTPServer.Mode,
		Environment:   cfg.Environment.Name,
		Middleware:    mw,
		AuthHandler:   authHandler,
		ExportHandler: exportHandler,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 7. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
