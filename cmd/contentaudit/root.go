package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"ContentAudit/internal/config"
	"ContentAudit/internal/logging"
)

var (
	configPath string
	logLevel   string
)

var rootCmd = &cobra.Command{
	Use:   "contentaudit",
	Short: "Audit content coverage across buyer personas and funnel stages",
	Long: `contentaudit classifies a content corpus by persona and funnel stage, scores the
persona x stage coverage matrix, lists the gaps and proposes a content strategy.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "YAML config file (default $CONTENT_AUDIT_CONFIG)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error")
}

func loadConfig() (config.Config, *slog.Logger) {
	cfg := config.Load(configPath)
	if logLevel != "" {
		cfg.Logging.Level = logLevel
	}
	return cfg, logging.New(cfg.Logging.Level)
}
