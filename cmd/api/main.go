package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"

	"taskmate/config"
	_ "taskmate/docs" // Swagger docs
	"taskmate/internal/httpserver"
	"taskmate/internal/middleware"
	"taskmate/internal/model"
	taskHTTP "taskmate/internal/task/delivery/http"
	taskSQLite "taskmate/internal/task/repository/sqlite"
	"taskmate/internal/task/usecase"
	"taskmate/pkg/gcalendar"
	"taskmate/pkg/interpret"
	"taskmate/pkg/log"
)

// @title       Taskmate API
// @description Natural-language personal task manager: free-form text in, structured tasks out.
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

	logger.Info(ctx, "Starting Taskmate...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Store path: %s", cfg.Store.Path)

	// 3. Interpreter
	parser, err := interpret.NewParser(cfg.Interpreter.Timezone)
	if err != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", cfg.Interpreter.Timezone, err)
		parser, _ = interpret.NewParser("UTC")
	}

	// 4. Persistence store. The connection opens lazily on first use, so a
	// broken store path surfaces through the status endpoint instead of
	// preventing startup.
	conn := taskSQLite.NewConn(cfg.Store.Path, logger)
	defer conn.Close()
	taskRepo := taskSQLite.New(conn, logger)

	// 5. Google Calendar export (optional)
	var calendarClient *gcalendar.Client
	if cfg.GoogleCalendar.CredentialsPath != "" {
		calendarClient, err = gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath)
		if err != nil {
			logger.Warnf(ctx, "Google Calendar not available (optional): %v", err)
		} else {
			logger.Info(ctx, "Google Calendar export enabled")
		}
	}

	// 6. Task domain
	taskUC := usecase.New(logger, taskRepo, parser, calendarClient,
		cfg.GoogleCalendar.CalendarID, cfg.Interpreter.Timezone)
	taskHandler := taskHTTP.New(logger, taskUC)

	// 7. HTTP server. Production never runs gin in debug mode, whatever the
	// config says.
	ginMode := cfg.HTTPServer.Mode
	if model.Environment(cfg.Environment.Name) == model.EnvironmentProduction {
		ginMode = gin.ReleaseMode
	}
	mw := middleware.New(logger, cfg.RateLimit.RequestsPerMin)
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:      logger,
		Port:        cfg.HTTPServer.Port,
		Mode:        ginMode,
		Environment: cfg.Environment.Name,
		Middleware:  mw,
		TaskHandler: taskHandler,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 8. Run
	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
