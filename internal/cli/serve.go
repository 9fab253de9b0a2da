package cli

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/deppfellow/product-service/internal/config"
	"github.com/deppfellow/product-service/internal/database"
	"github.com/deppfellow/product-service/internal/router"
	"github.com/spf13/cobra"
)

// DefaultShutdownTimeout bounds graceful shutdown after a signal.
const DefaultShutdownTimeout = 30 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	Long:  "Starts the HTTP server and blocks until SIGINT or SIGTERM, then shuts down gracefully",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApplication(nil)
		if err != nil {
			return err
		}
		defer app.loggerService.Shutdown()

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		// Local databases are migrated by hand with the migrate command.
		if app.config.Storage.Driver == config.DriverPostgres && app.config.Primary.Env != "local" {
			if err := database.Migrate(ctx, app.logger, app.config); err != nil {
				_ = app.server.Close()
				return err
			}
		}

		r := router.NewRouter(app.server, app.handlers)
		app.server.SetupHTTPServer(r)

		serverErr := make(chan error, 1)
		go func() {
			if err := app.server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				serverErr <- err
			}
			close(serverErr)
		}()

		select {
		case err := <-serverErr:
			if err != nil {
				app.logger.Error().Err(err).Msg("server stopped")
				_ = app.server.Close()
				return err
			}
		case <-ctx.Done():
		}

		app.logger.Info().Msg("shutting down server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), DefaultShutdownTimeout)
		defer cancel()

		if err := app.server.Shutdown(shutdownCtx); err != nil {
			app.logger.Error().Err(err).Msg("server forced to shutdown")
			return err
		}

		app.logger.Info().Msg("server exited properly")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
