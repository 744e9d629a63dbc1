package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/infragpt/infragpt/internal/config"
	"github.com/infragpt/infragpt/internal/history"
)

var historyCmd = &cobra.Command{
	Use:          "history",
	Short:        "View prompt history",
	Long:         `View a log of past requests with timestamp, model backend, and the commands each request produced.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runHistoryWithStateDir(cmd, historyStateDir())
	},
}

func init() {
	historyCmd.GroupID = GroupCore
	rootCmd.AddCommand(historyCmd)
	historyCmd.Flags().StringP("model", "M", "", "Filter by model backend")
	historyCmd.Flags().IntP("limit", "n", 0, "Limit to last N entries (most recent)")
	historyCmd.Flags().BoolP("clear", "C", false, "Clear all history")
}

// historyStateDir resolves the state directory from configuration, falling
// back to the built-in default when config cannot be loaded.
func historyStateDir() string {
	cfg, err := config.Load(flagConfigPath)
	if err == nil {
		return cfg.StateDir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".infragpt", "state")
}

// runHistoryWithStateDir runs the history command with a custom state directory.
func runHistoryWithStateDir(cmd *cobra.Command, stateDir string) error {
	clearFlag, _ := cmd.Flags().GetBool("clear")
	modelFilter, _ := cmd.Flags().GetString("model")
	limit, _ := cmd.Flags().GetInt("limit")

	if limit < 0 {
		return fmt.Errorf("limit must be positive, got %d", limit)
	}

	if clearFlag {
		if err := history.Clear(stateDir); err != nil {
			return fmt.Errorf("clearing history: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), "History cleared.")
		return nil
	}

	histFile, err := history.Load(stateDir)
	if err != nil {
		return fmt.Errorf("loading history: %w", err)
	}

	entries := filterEntries(histFile.Entries, modelFilter, limit)
	if len(entries) == 0 {
		if modelFilter != "" {
			fmt.Fprintf(cmd.OutOrStdout(), "No matching entries for model '%s'.\n", modelFilter)
		} else {
			fmt.Fprintln(cmd.OutOrStdout(), "No history available.")
		}
		return nil
	}

	displayEntries(cmd, entries)
	return nil
}

// filterEntries filters and limits history entries.
func filterEntries(entries []history.Entry, modelFilter string, limit int) []history.Entry {
	var result []history.Entry

	for _, entry := range entries {
		if modelFilter == "" || entry.Model == modelFilter {
			result = append(result, entry)
		}
	}

	// Apply limit (most recent entries)
	if limit > 0 && len(result) > limit {
		result = result[len(result)-limit:]
	}

	return result
}

// displayEntries formats and displays history entries.
func displayEntries(cmd *cobra.Command, entries []history.Entry) {
	out := cmd.OutOrStdout()

	cyan := color.New(color.FgCyan).SprintFunc()
	dim := color.New(color.Faint).SprintFunc()
	green := color.New(color.FgGreen).SprintFunc()

	for _, entry := range entries {
		timestamp := entry.Timestamp.Format("2006-01-02 15:04:05")

		model := entry.Model
		if model == "" {
			model = "-"
		}

		fmt.Fprintf(out, "%s  %s  %s\n",
			cyan(timestamp),
			dim(fmt.Sprintf("%-8s", model)),
			entry.Prompt,
		)
		for _, c := range entry.Commands {
			fmt.Fprintf(out, "%s\n", green("    "+strings.TrimSpace(c)))
		}
	}
}
