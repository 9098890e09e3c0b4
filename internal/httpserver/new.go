package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	"meeting-conflict-resolver/config"
	"meeting-conflict-resolver/internal/resolution/slotfinder"
	"meeting-conflict-resolver/internal/resolution/usecase"
	"meeting-conflict-resolver/pkg/datemath"
	"meeting-conflict-resolver/pkg/log"
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

	// Resolution domain
	calendar  usecase.CalendarClient
	ruleStore usecase.RuleStore
	oracle    usecase.Oracle
	finder    *slotfinder.Finder
	dateMath  *datemath.Parser
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string
	AppConfig   *config.Config

	// Resolution domain
	Calendar  usecase.CalendarClient
	RuleStore usecase.RuleStore
	Oracle    usecase.Oracle
	Finder    *slotfinder.Finder
	DateMath  *datemath.Parser
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:           logger,
		gin:         gin.Default(),
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,
		cfg:         cfg.AppConfig,
		calendar:    cfg.Calendar,
		ruleStore:   cfg.RuleStore,
		oracle:      cfg.Oracle,
		finder:      cfg.Finder,
		dateMath:    cfg.DateMath,
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
	if srv.cfg == nil {
		return errors.New("app config is required")
	}
	if srv.calendar == nil {
		return errors.New("calendar client is required")
	}
	if srv.finder == nil {
		return errors.New("slot finder is required")
	}
	if srv.dateMath == nil {
		return errors.New("date math parser is required")
	}
	return nil
}
