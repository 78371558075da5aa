package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"quicksched/config"
	_ "quicksched/docs" // Swagger docs
	"quicksched/internal/httpserver"
	"quicksched/internal/model"
	scheduleSQLite "quicksched/internal/schedule/repository/sqlite"
	"quicksched/pkg/gcalendar"
	"quicksched/pkg/log"
	"quicksched/pkg/quickparse"
)

// @title       QuickSched API
// @description Deterministic quick-add scheduling: free-text phrases become stored appointments, optionally synced to Google Calendar.
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

	logger.Info(ctx, "Starting quicksched...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Quick-add parser
	parser, err := quickparse.NewParser(cfg.Scheduler.Timezone)
	if err != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", cfg.Scheduler.Timezone, err)
		parser, _ = quickparse.NewParser("UTC")
	}

	// 4. SQLite store
	db, err := scheduleSQLite.Open(cfg.Store.Path)
	if err != nil {
		logger.Errorf(ctx, "Failed to open store at %s: %v", cfg.Store.Path, err)
		return
	}
	defer db.Close()
	logger.Infof(ctx, "Store opened at %s", cfg.Store.Path)

	// 5. Google Calendar client (optional)
	var calendarClient gcalendar.ICalendar
	if cfg.GoogleCalendar.CredentialsPath != "" {
		client, calErr := gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath)
		if calErr != nil {
			logger.Warnf(ctx, "Google Calendar not available (optional): %v", calErr)
			logger.Warn(ctx, "→ Run `go run scripts/gcal-auth/main.go` to generate token.json")
		} else {
			logger.Info(ctx, "Google Calendar initialized")
			calendarClient = client
		}
	}

	// 6. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     model.Environment(cfg.Environment.Name),
		DB:              db,
		Parser:          parser,
		Calendar:        calendarClient,
		CalendarID:      cfg.GoogleCalendar.CalendarID,
		RequestsPerMin:  cfg.HTTPServer.RateLimitPerMin,
		DefaultDuration: cfg.Scheduler.DefaultDurationMinutes,
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
