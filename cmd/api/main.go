package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"voice-task-management/config"
	_ "voice-task-management/docs" // Swagger docs
	"voice-task-management/internal/httpserver"
	taskMongo "voice-task-management/internal/task/repository/mongo"
	"voice-task-management/pkg/datemath"
	"voice-task-management/pkg/gcalendar"
	"voice-task-management/pkg/gemini"
	"voice-task-management/pkg/log"
)

// @title       Voice Task Management API
// @description Task CRUD with voice-to-task parsing backed by the Gemini LLM.
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

	logger.Info(ctx, "Starting Voice Task Management...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Gemini LLM client (required for the voice pipeline)
	geminiClient, err := gemini.NewClient(gemini.Config{
		APIKey:  cfg.Gemini.APIKey,
		Model:   cfg.Gemini.Model,
		Timeout: time.Duration(cfg.Gemini.TimeoutSeconds) * time.Second,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize Gemini client: ", err)
		return
	}

	// 4. DateMath parser
	timezone := cfg.Gemini.Timezone
	dateParser, dtErr := datemath.NewParser(timezone)
	if dtErr != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", timezone, dtErr)
		dateParser, _ = datemath.NewParser("UTC")
	}

	// 5. Google Calendar client (optional)
	var calendarClient *gcalendar.Client
	if cfg.GoogleCalendar.CredentialsPath != "" {
		calendarClient, err = gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath)
		if err != nil {
			logger.Warnf(ctx, "Google Calendar not available (optional): %v", err)
			calendarClient = nil
		} else {
			logger.Info(ctx, "Google Calendar initialized")
		}
	}

	// 6. HTTP Server
	srvCfg := httpserver.Config{
		Logger:       logger,
		Port:         cfg.HTTPServer.Port,
		Mode:         cfg.HTTPServer.Mode,
		Environment:  cfg.Environment.Name,
		AppConfig:    cfg,
		GeminiClient: geminiClient,
		DateParser:   dateParser,
		Calendar:     calendarClient,
	}

	if cfg.Mongo.URI != "" {
		db, closeDB, mErr := taskMongo.Connect(ctx, cfg.Mongo.URI, cfg.Mongo.Database)
		if mErr != nil {
			logger.Error(ctx, "Failed to connect to MongoDB: ", mErr)
			return
		}
		defer func() {
			if cErr := closeDB(); cErr != nil {
				logger.Warnf(ctx, "MongoDB disconnect: %v", cErr)
			}
		}()
		srvCfg.MongoDB = db
	} else {
		logger.Warn(ctx, "MONGO_URI not set, tasks will not survive restarts")
	}

	httpServer, err := httpserver.New(logger, srvCfg)
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
