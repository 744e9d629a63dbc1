package progress

import (
	"time"

	"github.com/briandowns/spinner"
)

// Status is a spinner shown while waiting on the model backend. On
// non-interactive terminals it degrades to a no-op so piped output stays
// clean.
type Status struct {
	spinner *spinner.Spinner
}

// StartStatus begins a spinner with the given message. Call Stop when the
// operation finishes.
func StartStatus(message string) *Status {
	caps := DetectTerminalCapabilities()
	if !caps.IsTTY {
		return &Status{}
	}

	symbols := SelectSymbols(caps)
	s := spinner.New(spinner.CharSets[symbols.SpinnerSet], 100*time.Millisecond)
	s.Suffix = " " + message
	if caps.SupportsColor {
		s.Color("blue")
	}
	s.Start()
	return &Status{spinner: s}
}

// Stop halts the spinner and clears its line.
func (s *Status) Stop() {
	if s.spinner != nil {
		s.spinner.Stop()
	}
}
