package serve

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"transcript-control/cmd/transcript-control/cmd/cliutil"
	"transcript-control/internal/app"
	"transcript-control/internal/app/logging"
	"transcript-control/internal/config"
)

const shutdownTimeout = 10 * time.Second

var configFile string

func init() {
	Cmd.Flags().StringVarP(&configFile, "config", "c", "", "optional YAML config file (env CONFIG_FILE)")
}

// Cmd represents the serve command
var Cmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the REST API",
	Long: `Run the REST API

- Reads .env, then the optional YAML config, then the environment
- Connects to Postgres and exposes /api, /metrics and /swagger`,
	RunE: func(cmd *cobra.Command, args []string) error {
		envFile, err := config.LoadEnv()
		if err != nil {
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
		if envFile != "" {
			logger.Info("Loaded environment file", zap.String("path", envFile))
		}

		ctx, stop := cliutil.Context(cmd)
		defer stop()

		application, cleanup, err := app.InitializeApplication(ctx, cfg, logger)
		if err != nil {
			return fmt.Errorf("initialize application: %w", err)
		}
		defer cleanup()

		errCh, err := application.Server.Start()
		if err != nil {
			return err
		}

		select {
		case <-ctx.Done():
			logger.Info("Shutdown signal received")
		case err, ok := <-errCh:
			if ok && err != nil {
				return err
			}
			return nil
		}

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := application.Server.Shutdown(shutdownCtx); err != nil {
			logger.Error("Server shutdown failed", zap.Error(err))
			return err
		}
		return nil
	},
}
