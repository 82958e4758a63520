package migrate

import (
	"fmt"

	"github.com/spf13/cobra"

	"transcript-control/cmd/transcript-control/cmd/cliutil"
	"transcript-control/internal/app/logging"
	dbmigrate "transcript-control/internal/app/repository/migrate"
	"transcript-control/internal/app/repository/pg"
	"transcript-control/internal/config"
)

var configFile string

func init() {
	Cmd.Flags().StringVarP(&configFile, "config", "c", "", "optional YAML config file (env CONFIG_FILE)")
}

// Cmd represents the migrate command
var Cmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create the tables and indexes the API uses",
	Long: `Create the tables and indexes the API uses

- Every statement is idempotent, running it twice is safe
- Tables the ingestion pipeline already created are left as they are`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := config.LoadEnv(); err != nil {
			return err
		}
		cfg, err := config.Load(configFile)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		logger, err := logging.New(!cfg.IsProduction())
		if err != nil {
			return err
		}
		defer logger.Sync() //nolint:errcheck

		ctx, stop := cliutil.Context(cmd)
		defer stop()

		db, err := pg.Open(ctx, pg.Config{
			DSN:          cfg.Database.PostgresDSN(),
			MaxOpenConns: cfg.Database.MaxOpenConns,
			MaxIdleConns: cfg.Database.MaxIdleConns,
		})
		if err != nil {
			return err
		}
		defer db.Close()

		if err := dbmigrate.Run(ctx, db, logger); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "migrations applied")
		return nil
	},
}
