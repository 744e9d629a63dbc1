// Package executor dispatches resolved commands: copying them to the system
// clipboard or running them as subprocesses with inherited stdio.
package executor

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"time"

	"github.com/atotto/clipboard"
	"github.com/google/shlex"

	"github.com/infragpt/infragpt/internal/errors"
)

// ClipboardAvailable reports whether the system clipboard can be written.
// On headless Linux this is false unless xclip or xsel is installed.
func ClipboardAvailable() bool {
	return !clipboard.Unsupported
}

// CopyToClipboard places the command on the system clipboard.
func CopyToClipboard(command string) error {
	if err := clipboard.WriteAll(command); err != nil {
		return errors.ClipboardUnavailable(err)
	}
	return nil
}

// Run executes a resolved command as a subprocess with inherited stdio.
// A positive timeout bounds the run; zero means no timeout.
func Run(ctx context.Context, command string, timeout time.Duration) error {
	parts, err := shlex.Split(command)
	if err != nil {
		return errors.ExecutionFailed(command, fmt.Errorf("parsing command: %w", err))
	}
	if len(parts) == 0 {
		return errors.ExecutionFailed(command, fmt.Errorf("empty command"))
	}

	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, parts[0], parts[1:]...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return errors.TimeoutError(timeout.String(), "command execution")
		}
		return errors.ExecutionFailed(command, err)
	}
	return nil
}
