package cmd

import (
	"fmt"
	"net/http"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/wikiquiz/internal/client"
	"github.com/abhisek/wikiquiz/internal/config"
	"github.com/abhisek/wikiquiz/internal/logging"
	"github.com/abhisek/wikiquiz/internal/workflow"
)

var rootCmd = &cobra.Command{
	Use:   "wikiquiz",
	Short: "Quizzes from Wikipedia articles",
	Long:  "WikiQuiz: terminal client that turns English Wikipedia articles into multiple-choice quizzes via a quiz service.",
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

var (
	settings = config.NewViper()
	cfg      = config.DefaultConfig()
	logger   = logging.Nop()
	closeLog = func() {}
)

func Execute() error {
	defer func() { closeLog() }()
	return rootCmd.Execute()
}

func init() {
	def := config.DefaultConfig()
	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "Path to config file (default $XDG_CONFIG_HOME/wikiquiz/config.yaml)")
	flags.String("service-url", def.ServiceURL, "Base URL of the quiz service (overrides WIKIQUIZ_SERVICE_URL)")
	flags.Duration("timeout", def.Timeout, "Per-request timeout (overrides WIKIQUIZ_TIMEOUT)")
	flags.Int("retries", def.Retries, "Extra attempts for failed history lookups, 0 disables (overrides WIKIQUIZ_RETRIES)")
	flags.String("log-file", def.Log.File, "Log file path, - for stderr (overrides WIKIQUIZ_LOG_FILE)")
	flags.String("log-level", def.Log.Level, "Log level: debug, info, warn, error (overrides WIKIQUIZ_LOG_LEVEL)")

	for key, name := range map[string]string{
		config.KeyServiceURL: "service-url",
		config.KeyTimeout:    "timeout",
		config.KeyRetries:    "retries",
		config.KeyLogFile:    "log-file",
		config.KeyLogLevel:   "log-level",
	} {
		if err := settings.BindPFlag(key, flags.Lookup(name)); err != nil {
			panic(fmt.Sprintf("bind flag %s: %v", name, err))
		}
	}

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(versionCmd)
}

// setup resolves configuration and opens the log before any command runs.
func setup(cmd *cobra.Command, args []string) error {
	if cmd == versionCmd {
		return nil
	}

	file, _ := cmd.Flags().GetString("config")
	loaded, err := config.Load(settings, file)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	cfg = loaded

	l, cleanup, err := logging.New(cfg.Log)
	if err != nil {
		return fmt.Errorf("open log: %w", err)
	}
	logger, closeLog = l, cleanup

	logger.Debug("config loaded",
		zap.String("command", cmd.CommandPath()),
		zap.String("service_url", cfg.ServiceURL),
		zap.Duration("timeout", cfg.Timeout),
		zap.Int("retries", cfg.Retries),
	)
	return nil
}

// newService builds the HTTP client for the configured service. With the
// default of zero retries each failure surfaces after one round trip.
func newService() client.Service {
	retry := client.DefaultRetryConfig()
	retry.MaxAttempts = cfg.Retries + 1

	svc := client.NewHTTPClient(cfg.ServiceURL, &http.Client{})
	logger.Debug("service client ready",
		zap.String("base_url", svc.BaseURL()),
		zap.Int("max_attempts", retry.MaxAttempts),
	)
	return client.WithRetry(client.WithLogging(svc, logger), retry)
}

// workflowOptions derives per-request settings from cmd's context.
func workflowOptions(cmd *cobra.Command) workflow.Options {
	return workflow.Options{
		Context: cmd.Context(),
		Timeout: cfg.Timeout,
	}
}
