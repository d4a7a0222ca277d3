package cmd

import (
	"fmt"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/learnpath/internal/api"
	"github.com/abhisek/learnpath/internal/app"
	"github.com/abhisek/learnpath/internal/export"
	"github.com/abhisek/learnpath/internal/logging"
)

// runApp loads configuration, builds the backend client and launches the TUI.
func runApp(cmd *cobra.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	logger, closer, err := logging.New(cfg.Log)
	if err != nil {
		return fmt.Errorf("open log: %w", err)
	}
	defer closer.Close()
	defer func() { _ = logger.Sync() }()

	client, err := api.NewClient(cfg.Server.BaseURL, api.WithTimeout(cfg.Server.Timeout))
	if err != nil {
		return fmt.Errorf("create client: %w", err)
	}

	logger.Info("starting",
		zap.String("version", version),
		zap.String("server", client.BaseURL()),
		zap.Duration("timeout", cfg.Server.Timeout),
		zap.String("export_dir", cfg.Export.Dir),
	)

	err = app.Run(app.Options{
		Backend: api.WithLogging(client, logger),
		Writer:  export.NewWriter(afero.NewOsFs(), cfg.Export.Dir),
		Logger:  logger,
	})
	if err != nil {
		logger.Error("exited with error", zap.Error(err))
		return err
	}
	return nil
}
