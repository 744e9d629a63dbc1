// Package cli wires the infragpt command tree: the root prompt handler,
// interactive mode, and the history, config, and version subcommands.
package cli

import (
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/infragpt/infragpt/internal/config"
	"github.com/infragpt/infragpt/internal/errors"
	"github.com/infragpt/infragpt/internal/history"
	"github.com/infragpt/infragpt/internal/prompter"
)

// Command group IDs for help output organization
const (
	GroupCore          = "core"
	GroupConfiguration = "configuration"
)

var (
	flagModel      string
	flagConfigPath string
	flagYes        bool
	flagVerbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "infragpt [prompt...]",
	Short: "Translate natural language into gcloud commands",
	Long: `infragpt turns natural-language requests into Google Cloud CLI commands.

Give it a request as arguments for a one-shot answer, or run it with no
arguments for an interactive session. Generated commands with [PLACEHOLDER]
parameters are resolved interactively before you copy or run them.

Requires an API key for the selected model backend:
  gpt4o:  OPENAI_API_KEY
  claude: ANTHROPIC_API_KEY

See https://github.com/infragpt/infragpt for documentation.`,
	Example: `  # One-shot request
  infragpt "create a vm with 2 cpus in us-central1"

  # Interactive session
  infragpt

  # Pick the model backend
  infragpt --model claude "list my storage buckets"

  # Skip confirmations and use the configured default action
  infragpt -y "list my compute instances"`,
	Args:         cobra.ArbitraryArgs,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		gen, err := cfg.GetGenerator(flagModel)
		if err != nil {
			return err
		}

		hist := history.NewWriter(cfg.StateDir, cfg.MaxHistoryEntries)
		term := prompter.New()
		session := NewSession(gen, term, cfg, hist, cmd.OutOrStdout())

		if len(args) > 0 {
			return session.HandlePrompt(cmd.Context(), strings.Join(args, " "))
		}
		return RunInteractive(cmd.Context(), session)
	},
}

func init() {
	rootCmd.AddGroup(
		&cobra.Group{ID: GroupCore, Title: "Core Commands:"},
		&cobra.Group{ID: GroupConfiguration, Title: "Configuration Commands:"},
	)

	rootCmd.PersistentFlags().StringVarP(&flagModel, "model", "m", "", "Model backend to use (gpt4o, claude)")
	rootCmd.PersistentFlags().StringVarP(&flagConfigPath, "config", "c", "", "Path to a project config file")
	rootCmd.PersistentFlags().BoolVarP(&flagYes, "yes", "y", false, "Skip confirmation prompts")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Verbose output")
}

// loadConfig loads layered configuration and applies global flag overrides.
func loadConfig() (*config.Configuration, error) {
	cfg, err := config.Load(flagConfigPath)
	if err != nil {
		if cliErr := errors.AsCLIError(err); cliErr != nil {
			return nil, cliErr
		}
		return nil, errors.ConfigParseError(flagConfigPath, err)
	}
	if flagYes {
		cfg.SkipConfirmations = true
	}
	return cfg, nil
}

// Execute runs the root command, rendering structured errors to stderr.
func Execute() error {
	err := rootCmd.Execute()
	if err == nil {
		return nil
	}

	if cliErr := errors.AsCLIError(err); cliErr != nil {
		errors.PrintError(cliErr)
		os.Exit(exitCodeFor(cliErr))
	}
	// cobra already printed the plain error
	return err
}
