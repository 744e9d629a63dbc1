package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/infragpt/infragpt/internal/config"
	"github.com/infragpt/infragpt/internal/output"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage infragpt configuration",
	Long: `Manage infragpt configuration settings.

Configuration is loaded with the following priority (highest to lowest):
  1. Environment variables (INFRAGPT_*)
  2. Project config (.infragpt/config.yml)
  3. User config (~/.config/infragpt/config.yml)
  4. Built-in defaults`,
	Example: `  # Create a commented user-level config file
  infragpt config init

  # Show config file locations
  infragpt config path

  # Migrate a legacy JSON config to YAML
  infragpt config migrate`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

var configInitCmd = &cobra.Command{
	Use:          "init",
	Short:        "Create a user-level config file with documented defaults",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		force, _ := cmd.Flags().GetBool("force")

		path, err := config.UserConfigPath()
		if err != nil {
			return fmt.Errorf("resolving user config path: %w", err)
		}

		if _, err := os.Stat(path); err == nil && !force {
			fmt.Fprintf(cmd.OutOrStdout(), "Config already exists at %s (use --force to overwrite).\n", path)
			return nil
		}

		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return fmt.Errorf("creating config directory: %w", err)
		}
		if err := os.WriteFile(path, []byte(config.GetDefaultConfigTemplate()), 0o644); err != nil {
			return fmt.Errorf("writing config file: %w", err)
		}

		output.PrintSuccess(cmd.OutOrStdout(), fmt.Sprintf("Created %s", path))
		return nil
	},
}

var configPathCmd = &cobra.Command{
	Use:          "path",
	Short:        "Show config file locations and whether each exists",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()

		userPath, err := config.UserConfigPath()
		if err != nil {
			return fmt.Errorf("resolving user config path: %w", err)
		}
		fmt.Fprintf(out, "User config:    %s%s\n", userPath, existsSuffix(userPath))
		fmt.Fprintf(out, "Project config: %s%s\n", config.ProjectConfigPath(), existsSuffix(config.ProjectConfigPath()))

		if legacyPath, err := config.LegacyUserConfigPath(); err == nil {
			if _, err := os.Stat(legacyPath); err == nil {
				fmt.Fprintf(out, "Legacy config:  %s (deprecated, run 'infragpt config migrate')\n", legacyPath)
			}
		}
		return nil
	},
}

var configMigrateCmd = &cobra.Command{
	Use:          "migrate",
	Short:        "Migrate a legacy JSON config to YAML",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		dryRun, _ := cmd.Flags().GetBool("dry-run")

		result, err := config.MigrateUserConfig(dryRun)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), result.Message)

		if result.Success && !dryRun {
			if err := config.RemoveLegacyConfig(result.SourcePath, dryRun); err != nil {
				return err
			}
		}
		return nil
	},
}

func init() {
	configCmd.GroupID = GroupConfiguration
	rootCmd.AddCommand(configCmd)

	configInitCmd.Flags().Bool("force", false, "Overwrite an existing config file")
	configMigrateCmd.Flags().Bool("dry-run", false, "Report what would be migrated without writing")

	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configMigrateCmd)
}

// existsSuffix annotates a path listing with whether the file is present.
func existsSuffix(path string) string {
	if _, err := os.Stat(path); err == nil {
		return ""
	}
	return " (not found)"
}
