package cli

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/infragpt/infragpt/internal/command"
	"github.com/infragpt/infragpt/internal/config"
	"github.com/infragpt/infragpt/internal/errors"
	"github.com/infragpt/infragpt/internal/executor"
	"github.com/infragpt/infragpt/internal/generator"
	"github.com/infragpt/infragpt/internal/history"
	"github.com/infragpt/infragpt/internal/output"
	"github.com/infragpt/infragpt/internal/progress"
)

// Prompter is the interactive surface a session needs. *prompter.Terminal
// satisfies it; tests substitute scripted fakes.
type Prompter interface {
	Ask(label, description string, examples []string, defaultValue string) (string, error)
	Confirm(label string, defaultValue bool) (bool, error)
	Choose(label string, choices []string, defaultChoice string) (string, error)
	ReadPrompt(prefix string) (string, error)
}

// Session drives one or more prompts through the full pipeline: generate,
// split, classify, resolve parameters, and dispatch each resolved command.
type Session struct {
	Generator generator.Generator
	Prompter  Prompter
	Config    *config.Configuration
	History   *history.Writer
	Out       io.Writer

	// Side-effecting dispatch hooks, replaceable in tests.
	copyToClipboard    func(string) error
	runCommand         func(context.Context, string, time.Duration) error
	clipboardAvailable func() bool
}

// NewSession wires a session to the real clipboard and subprocess executor.
func NewSession(gen generator.Generator, p Prompter, cfg *config.Configuration, hist *history.Writer, out io.Writer) *Session {
	return &Session{
		Generator:          gen,
		Prompter:           p,
		Config:             cfg,
		History:            hist,
		Out:                out,
		copyToClipboard:    executor.CopyToClipboard,
		runCommand:         executor.Run,
		clipboardAvailable: executor.ClipboardAvailable,
	}
}

// HandlePrompt turns one natural-language request into resolved commands and
// dispatches each of them. Parameter prompting errors abort the batch;
// dispatch failures are reported and the batch continues.
func (s *Session) HandlePrompt(ctx context.Context, prompt string) error {
	status := progress.StartStatus("Generating command...")
	raw, err := s.Generator.Generate(ctx, prompt)
	status.Stop()
	if err != nil {
		return errors.GenerationFailed(err)
	}

	commands := command.Split(raw)
	if len(commands) == 0 {
		output.PrintWarning(s.Out, "the model returned no commands")
		return nil
	}
	if commands[0] == command.Sentinel {
		output.PrintSentinel(s.Out)
		s.History.LogPrompt(prompt, s.Generator.Name(), nil)
		return nil
	}

	output.PrintBatchHeader(s.Out, len(commands))

	var resolved []string
	for i, cmd := range commands {
		final, err := s.resolveOne(ctx, cmd)
		if err != nil {
			return err
		}
		resolved = append(resolved, final)

		output.PrintCommandPanel(s.Out, fmt.Sprintf("Command %d", i+1), final)

		proceed, err := s.dispatch(ctx, final, i < len(commands)-1)
		if err != nil {
			return err
		}
		if !proceed {
			break
		}
	}

	s.History.LogPrompt(prompt, s.Generator.Name(), resolved)
	return nil
}

// resolveOne classifies a single command and fills in its parameters with
// the user. The raw template is shown before any prompting so the user can
// see the command they are filling in. Metadata lookup failures degrade to
// bare prompts.
func (s *Session) resolveOne(ctx context.Context, cmd string) (string, error) {
	classified := command.Classify(cmd)
	if classified.HasPlaceholders() || classified.HasBoundParams() {
		output.PrintCommandPanel(s.Out, "Command template", cmd)
	}

	var meta map[string]command.ParamInfo
	if classified.HasPlaceholders() {
		status := progress.StartStatus("Fetching parameter details...")
		var err error
		meta, err = command.ResolveMetadata(ctx, s.Generator, cmd, classified.Placeholders)
		status.Stop()
		if err != nil {
			output.PrintWarning(s.Out, err.Error())
		}
	}

	return command.NewResolver(s.Prompter).ResolveCommand(classified, meta)
}

// dispatch asks what to do with a resolved command and does it. The second
// command onward is gated on a confirmation after a run, mirroring how
// operators double-check between mutating gcloud calls. Returns false when
// the user declines to continue.
func (s *Session) dispatch(ctx context.Context, cmd string, hasNext bool) (bool, error) {
	action, err := s.chooseAction()
	if err != nil {
		return false, err
	}

	switch action {
	case "copy":
		if err := s.copyToClipboard(cmd); err != nil {
			s.reportDispatchError(err)
		} else {
			output.PrintSuccess(s.Out, "Command copied to clipboard.")
		}
	case "run":
		output.PrintExecutingCommand(s.Out, cmd)
		timeout := time.Duration(s.Config.Timeout) * time.Second
		if err := s.runCommand(ctx, cmd, timeout); err != nil {
			s.reportDispatchError(err)
		}
		if hasNext && !s.Config.SkipConfirmations {
			return s.Prompter.Confirm("Continue with the next command?", true)
		}
	}
	return true, nil
}

// chooseAction picks copy or run. Clipboardless environments only offer run,
// and skip_confirmations takes the configured default without asking.
func (s *Session) chooseAction() (string, error) {
	choices := []string{"copy", "run"}
	defaultAction := s.Config.DefaultAction
	if !s.clipboardAvailable() {
		choices = []string{"run"}
		defaultAction = "run"
	}

	if s.Config.SkipConfirmations {
		return defaultAction, nil
	}
	return s.Prompter.Choose("What would you like to do with this command?", choices, defaultAction)
}

// reportDispatchError prints a dispatch failure without aborting the batch.
func (s *Session) reportDispatchError(err error) {
	if cliErr := errors.AsCLIError(err); cliErr != nil {
		errors.FprintError(s.Out, cliErr)
		return
	}
	output.PrintWarning(s.Out, err.Error())
}
