package errors

import "fmt"

// Common error messages for the infragpt CLI.
// These templates ensure consistent, actionable error messages.

// MissingAPIKey creates an error for a missing model backend credential.
func MissingAPIKey(envVar, model string) *CLIError {
	return NewConfigError(
		fmt.Sprintf("%s environment variable not set", envVar),
		fmt.Sprintf("Export the key: export %s=<your key>", envVar),
		fmt.Sprintf("Or select a different backend: infragpt --model <name> (current: %s)", model),
	)
}

// UnknownModel creates an error for an unrecognized model backend name.
func UnknownModel(name string, available []string) *CLIError {
	return NewArgumentErrorWithUsage(
		fmt.Sprintf("unknown model backend: %s", name),
		"infragpt --model <gpt4o|claude> \"<request>\"",
		fmt.Sprintf("Available backends: %v", available),
		"Or set a default in config: model: gpt4o",
	)
}

// GenerationFailed creates an error when the model call fails.
func GenerationFailed(err error) *CLIError {
	return WrapWithMessage(err, Generation,
		"command generation failed",
		"Check your network connection",
		"Verify your API key is valid",
		"Retry the request; model backends are occasionally unavailable",
	)
}

// ConfigParseError creates an error for an invalid config file.
func ConfigParseError(path string, err error) *CLIError {
	return WrapWithMessage(err, Configuration,
		fmt.Sprintf("failed to parse config file: %s", path),
		"Check the file for YAML syntax errors",
		"Reset to defaults with: infragpt config init --force",
	)
}

// ClipboardUnavailable creates an error when the system clipboard cannot be used.
func ClipboardUnavailable(err error) *CLIError {
	return WrapWithMessage(err, Runtime,
		"failed to copy to clipboard",
		"You can manually copy the command above",
		"On Linux, install xclip or xsel for clipboard support",
	)
}

// ExecutionFailed creates an error when a generated command exits non-zero.
func ExecutionFailed(command string, err error) *CLIError {
	return WrapWithMessage(err, Runtime,
		fmt.Sprintf("error executing command: %s", command),
		"Check that the gcloud CLI is installed and authenticated",
		"Verify the parameter values you entered",
	)
}

// TimeoutError creates an error when a model call or command times out.
func TimeoutError(duration string, operation string) *CLIError {
	return NewRuntimeError(
		fmt.Sprintf("%s timed out after %s", operation, duration),
		"Increase timeout in config: INFRAGPT_TIMEOUT=120",
		"Or edit the config file and set timeout: 120",
		"Set timeout to 0 to disable the timeout",
	)
}
