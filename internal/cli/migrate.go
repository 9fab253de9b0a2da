package cli

import (
	"fmt"

	"github.com/deppfellow/product-service/internal/config"
	"github.com/deppfellow/product-service/internal/database"
	"github.com/deppfellow/product-service/internal/logger"
	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply pending migrations",
	Long:  "Applies the embedded PostgreSQL migrations that create the products table",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		if cfg.Storage.Driver != config.DriverPostgres {
			return fmt.Errorf("migrate requires the %s storage driver, got %q", config.DriverPostgres, cfg.Storage.Driver)
		}

		log := logger.NewLogger(cfg.Observability)
		return database.Migrate(cmd.Context(), &log, cfg)
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}
