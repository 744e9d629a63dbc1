package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/infragpt/infragpt/internal/errors"
	"github.com/infragpt/infragpt/internal/output"
)

// RunInteractive reads requests in a loop until the input stream ends.
// Failures inside a single request are reported and the loop continues, so
// one bad generation doesn't end the session.
func RunInteractive(ctx context.Context, session *Session) error {
	output.PrintWelcome(session.Out, session.Generator.Name())

	for {
		prompt, err := session.Prompter.ReadPrompt("> ")
		if err != nil {
			if err == io.EOF {
				fmt.Fprintln(session.Out, "\nExiting infragpt.")
				return nil
			}
			return errors.Wrap(err, errors.Runtime)
		}
		if prompt == "" {
			continue
		}

		if err := session.HandlePrompt(ctx, prompt); err != nil {
			if err == io.EOF {
				fmt.Fprintln(session.Out, "\nExiting infragpt.")
				return nil
			}
			if cliErr := errors.AsCLIError(err); cliErr != nil {
				errors.FprintError(session.Out, cliErr)
				continue
			}
			return err
		}
	}
}
