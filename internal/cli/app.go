package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/deppfellow/product-service/internal/config"
	"github.com/deppfellow/product-service/internal/handler"
	"github.com/deppfellow/product-service/internal/logger"
	"github.com/deppfellow/product-service/internal/repository"
	"github.com/deppfellow/product-service/internal/server"
	"github.com/deppfellow/product-service/internal/service"
	"github.com/rs/zerolog"
)

// application is the dependency graph shared by serve and invoke.
type application struct {
	config        *config.Config
	logger        *zerolog.Logger
	loggerService *logger.LoggerService
	server        *server.Server
	handlers      *handler.Handlers
}

// newApplication loads config and connects storage. A non-nil logOutput
// redirects logs, which invoke uses to keep stdout for the response.
func newApplication(logOutput io.Writer) (*application, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	loggerService := logger.NewLoggerService(cfg.Observability)

	log := logger.NewLoggerWithService(cfg.Observability, loggerService)
	if logOutput != nil {
		log = log.Output(zerolog.ConsoleWriter{Out: logOutput, TimeFormat: time.RFC3339})
	}

	srv, err := server.New(cfg, &log, loggerService)
	if err != nil {
		loggerService.Shutdown()
		return nil, fmt.Errorf("failed to initialize server: %w", err)
	}

	repos, err := repository.NewRepositories(srv)
	if err != nil {
		_ = srv.Close()
		loggerService.Shutdown()
		return nil, fmt.Errorf("failed to initialize repositories: %w", err)
	}

	services := service.NewServices(srv, repos)

	return &application{
		config:        cfg,
		logger:        &log,
		loggerService: loggerService,
		server:        srv,
		handlers:      handler.NewHandlers(srv, services),
	}, nil
}

// close releases storage connections and flushes New Relic.
func (a *application) close() {
	if err := a.server.Close(); err != nil {
		a.logger.Error().Err(err).Msg("failed to close storage")
	}
	a.loggerService.Shutdown()
}
