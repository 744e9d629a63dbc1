package cli

import "github.com/infragpt/infragpt/internal/errors"

// Exit codes for the infragpt CLI
// These codes support programmatic composition and scripting
const (
	// ExitSuccess indicates successful command execution
	ExitSuccess = 0

	// ExitRuntimeError indicates a generated command failed to run
	ExitRuntimeError = 1

	// ExitInvalidArguments indicates invalid command arguments
	ExitInvalidArguments = 2

	// ExitConfigError indicates invalid configuration or missing credentials
	ExitConfigError = 3

	// ExitGenerationFailed indicates the model backend failed
	ExitGenerationFailed = 4
)

// exitCodeFor maps an error category to the process exit code.
func exitCodeFor(err *errors.CLIError) int {
	switch err.Category {
	case errors.Argument:
		return ExitInvalidArguments
	case errors.Configuration:
		return ExitConfigError
	case errors.Generation:
		return ExitGenerationFailed
	default:
		return ExitRuntimeError
	}
}
