package cli

import (
	"bytes"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCmd_Structure(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "infragpt [prompt...]", rootCmd.Use)
	assert.NotEmpty(t, rootCmd.Short)
	assert.NotEmpty(t, rootCmd.Long)
	assert.NotEmpty(t, rootCmd.Example)
	assert.True(t, rootCmd.SilenceUsage)
}

func TestRootCmd_PersistentFlags(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		flagName     string
		wantShortcut string
	}{
		"model flag":   {flagName: "model", wantShortcut: "m"},
		"config flag":  {flagName: "config", wantShortcut: "c"},
		"yes flag":     {flagName: "yes", wantShortcut: "y"},
		"verbose flag": {flagName: "verbose", wantShortcut: "v"},
	}

	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			flag := rootCmd.PersistentFlags().Lookup(tt.flagName)
			require.NotNil(t, flag, "Flag %s should exist", tt.flagName)
			assert.Equal(t, tt.wantShortcut, flag.Shorthand)
		})
	}
}

func TestRootCmd_SubcommandGroups(t *testing.T) {
	t.Parallel()

	groups := rootCmd.Groups()
	assert.Greater(t, len(groups), 0, "Root command should have groups defined")

	groupIDs := make(map[string]bool)
	for _, g := range groups {
		groupIDs[g.ID] = true
	}

	assert.True(t, groupIDs[GroupCore], "Should have core group")
	assert.True(t, groupIDs[GroupConfiguration], "Should have configuration group")
}

func TestRootCmd_Subcommands(t *testing.T) {
	t.Parallel()

	commandNames := make(map[string]bool)
	for _, cmd := range rootCmd.Commands() {
		commandNames[cmd.Name()] = true
	}

	assert.True(t, commandNames["history"], "Should have history command")
	assert.True(t, commandNames["config"], "Should have config command")
	assert.True(t, commandNames["version"], "Should have version command")
}

func TestConfigCmd_Subcommands(t *testing.T) {
	t.Parallel()

	commandNames := make(map[string]bool)
	for _, cmd := range configCmd.Commands() {
		commandNames[cmd.Name()] = true
	}

	assert.True(t, commandNames["init"], "Should have config init command")
	assert.True(t, commandNames["path"], "Should have config path command")
	assert.True(t, commandNames["migrate"], "Should have config migrate command")
}

func TestRootCmd_CanShowHelp(t *testing.T) {
	t.Parallel()

	// Fresh command avoids mutating global state
	cmd := &cobra.Command{
		Use:   "infragpt",
		Short: "Test command",
	}
	cmd.SetArgs([]string{"--help"})
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)

	err := cmd.Execute()
	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "Test command")
}

func TestVersionCmd(t *testing.T) {
	// Not parallel: mutates global rootCmd output streams.
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs([]string{"version"})
	defer rootCmd.SetArgs(nil)

	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, buf.String(), "infragpt dev")
}
