package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"

	"voice-task-management/config"
	"voice-task-management/pkg/datemath"
	"voice-task-management/pkg/gcalendar"
	"voice-task-management/pkg/gemini"
	"voice-task-management/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string
	cfg         *config.Config

	// Task store. A nil mongoDB selects the in-memory store.
	mongoDB *mongo.Database

	// Voice pipeline
	geminiClient *gemini.Client
	dateParser   *datemath.Parser

	// Optional due-date calendar sync
	calendar *gcalendar.Client
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string
	AppConfig   *config.Config

	MongoDB      *mongo.Database
	GeminiClient *gemini.Client
	DateParser   *datemath.Parser
	Calendar     *gcalendar.Client
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:            logger,
		gin:          gin.New(),
		port:         cfg.Port,
		mode:         cfg.Mode,
		environment:  cfg.Environment,
		cfg:          cfg.AppConfig,
		mongoDB:      cfg.MongoDB,
		geminiClient: cfg.GeminiClient,
		dateParser:   cfg.DateParser,
		calendar:     cfg.Calendar,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv *HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.cfg == nil {
		return errors.New("app config is required")
	}
	if srv.geminiClient == nil {
		return errors.New("gemini client is required")
	}
	if srv.dateParser == nil {
		return errors.New("date parser is required")
	}
	return nil
}
