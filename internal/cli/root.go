// Package cli wires the GreenPrint commands: the interactive
// questionnaire, the non-interactive calculator, the country listing,
// and report export.
package cli

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/keanyaoha/greenprint/internal/config"
	"github.com/keanyaoha/greenprint/internal/logging"
)

// isTerminal checks if the given file is a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// NewRootCmd creates the root Cobra command for the greenprint CLI.
// It wires up logging and the calc/countries subcommands.
func NewRootCmd(ver string) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "greenprint",
		Short:   "Estimate your monthly carbon footprint",
		Long:    "GreenPrint: estimate your monthly carbon footprint from everyday activities and compare it to country and global averages",
		Version: ver,
		Example: rootCmdExample,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return setupLogging(cmd)
		},
		SilenceUsage: true,
	}

	cmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	cmd.PersistentFlags().String("config", "", "config file path (default $HOME/.greenprint/config.yaml)")
	cmd.AddCommand(newCalcCmd(), newCountriesCmd())

	return cmd
}

// setupLogging builds the logger from config, env, and flags, and
// attaches it to the command context with a session trace ID.
func setupLogging(cmd *cobra.Command) error {
	configPath, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	loggingCfg := logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
	}
	if debug, _ := cmd.Flags().GetBool("debug"); debug {
		loggingCfg.Level = "debug"
		loggingCfg.Format = "console"
	}

	logger := logging.ComponentLogger(logging.New(loggingCfg), "cli")

	ctx := logger.WithContext(cmd.Context())
	ctx = logging.ContextWithTraceID(ctx, logging.NewTraceID())
	ctx = contextWithConfig(ctx, cfg)
	cmd.SetContext(ctx)

	logger.Debug().Str("command", cmd.Name()).Msg("command started")
	return nil
}

const rootCmdExample = `  # Run the interactive questionnaire
  greenprint calc

  # Calculate from a saved inputs file
  greenprint calc --country Germany --inputs my_month.yaml

  # Same, as JSON for scripting
  greenprint calc --country Germany --inputs my_month.yaml --output json

  # Write the report document
  greenprint calc --country Germany --inputs my_month.yaml --report report.txt

  # List available countries
  greenprint countries

  # Fuzzy-search countries
  greenprint countries --search "untied stats"`
