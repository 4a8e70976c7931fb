package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/wikiquiz/internal/app"
)

// runApp launches the TUI against the configured service.
func runApp(cmd *cobra.Command) error {
	logger.Info("starting tui", zap.String("service_url", cfg.ServiceURL))

	err := app.Run(app.Options{
		Service:  newService(),
		Workflow: workflowOptions(cmd),
	})
	if err != nil {
		logger.Error("tui exited with error", zap.Error(err))
		return err
	}
	logger.Info("tui exited")
	return nil
}
