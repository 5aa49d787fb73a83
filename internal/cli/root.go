// Package cli implements the quizctl command tree.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"quiz-coach/internal/config"
	"quiz-coach/internal/logger"
)

// Execute runs the CLI.
func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "quizctl",
		Short:         "Operate the quiz question pipeline from the command line",
		SilenceUsage:  true,
	}
	cmd.AddCommand(NewGenerateCmd())
	cmd.AddCommand(NewBatchCmd())
	return cmd
}

// bootstrap loads configuration and starts the logger for a subcommand.
func bootstrap() (*config.Config, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if err := logger.Initialize(cfg.Logger); err != nil {
		return nil, fmt.Errorf("initialize logger: %w", err)
	}
	return cfg, nil
}
