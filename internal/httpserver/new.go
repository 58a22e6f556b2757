package httpserver

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	"personal-assistant/internal/command"
	tgDelivery "personal-assistant/internal/command/delivery/telegram"
	"personal-assistant/internal/test"
	"personal-assistant/pkg/log"
)

const (
	environmentProduction = "production"
	shutdownTimeout       = 10 * time.Second
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin             *gin.Engine
	l               log.Logger
	port            int
	mode            string
	environment     string
	rateLimitPerMin int

	// Command domain
	commandUC command.UseCase
	calendar  command.Calendar

	// Optional Telegram transport
	telegramHandler tgDelivery.Handler

	// Test domain
	testHandler test.Handler
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger          log.Logger
	Port            int
	Mode            string
	Environment     string
	RateLimitPerMin int

	// Command domain
	CommandUseCase command.UseCase
	Calendar       command.Calendar

	// Optional Telegram transport
	TelegramHandler tgDelivery.Handler

	// Test domain
	TestHandler test.Handler
}

// New creates a new HTTPServer instance and maps its routes.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.New(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		rateLimitPerMin: cfg.RateLimitPerMin,
		commandUC:       cfg.CommandUseCase,
		calendar:        cfg.Calendar,
		telegramHandler: cfg.TelegramHandler,
		testHandler:     cfg.TestHandler,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

// Handler exposes the gin engine, mainly for tests.
func (srv HTTPServer) Handler() *gin.Engine {
	return srv.gin
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
	if srv.commandUC == nil {
		return errors.New("command usecase is required")
	}
	if srv.calendar == nil {
		return errors.New("calendar is required")
	}
	return nil
}
