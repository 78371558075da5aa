package httpserver

import (
	"database/sql"
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	"quicksched/internal/model"
	"quicksched/pkg/gcalendar"
	"quicksched/pkg/log"
	"quicksched/pkg/quickparse"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment model.Environment

	// Schedule domain
	db              *sql.DB
	parser          *quickparse.Parser
	calendar        gcalendar.ICalendar // nil when no provider is configured
	calendarID      string
	requestsPerMin  int
	defaultDuration int
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment model.Environment

	DB              *sql.DB
	Parser          *quickparse.Parser
	Calendar        gcalendar.ICalendar
	CalendarID      string
	RequestsPerMin  int
	DefaultDuration int
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.New(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		db:              cfg.DB,
		parser:          cfg.Parser,
		calendar:        cfg.Calendar,
		calendarID:      cfg.CalendarID,
		requestsPerMin:  cfg.RequestsPerMin,
		defaultDuration: cfg.DefaultDuration,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.db == nil {
		return errors.New("database is required")
	}
	if srv.parser == nil {
		return errors.New("parser is required")
	}
	return nil
}

// Location returns the zone used to interpret zone-naive timestamps.
func (srv HTTPServer) location() *time.Location {
	return srv.parser.Location()
}
