// Package progress provides terminal capability detection and spinner-based
// status display for long-running generator calls.
package progress

// TerminalCapabilities describes what the attached terminal supports.
type TerminalCapabilities struct {
	IsTTY           bool
	SupportsColor   bool
	SupportsUnicode bool
	Width           int
}

// ProgressSymbols is the symbol set matching the terminal's capabilities.
type ProgressSymbols struct {
	Checkmark  string
	Failure    string
	SpinnerSet int
}
