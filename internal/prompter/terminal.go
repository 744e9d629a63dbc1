// Package prompter implements the interactive terminal collaborator for the
// resolution pipeline: per-parameter questions, confirmations, action
// choices, and the free-text read loop.
package prompter

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
)

// Terminal prompts on an io.Reader/Writer pair, styling output with color.
// The zero value is not usable; construct with New or NewWithIO.
type Terminal struct {
	in  *bufio.Reader
	out io.Writer
}

var (
	labelColor   = color.New(color.FgCyan, color.Bold).SprintFunc()
	dimColor     = color.New(color.Faint).SprintFunc()
	warnColor    = color.New(color.FgYellow, color.Bold).SprintFunc()
	promptMarker = color.New(color.FgCyan, color.Bold).SprintFunc()
)

// New creates a Terminal on stdin/stdout.
func New() *Terminal {
	return NewWithIO(os.Stdin, os.Stdout)
}

// NewWithIO creates a Terminal on the given reader and writer (for tests).
func NewWithIO(in io.Reader, out io.Writer) *Terminal {
	return &Terminal{in: bufio.NewReader(in), out: out}
}

// Ask prompts for a single value. The label is shown in bold, the
// description and examples dimmed underneath when present. An empty answer
// yields defaultValue. Read errors (including EOF) are returned to the
// caller, which treats input-stream termination as fatal.
func (t *Terminal) Ask(label, description string, examples []string, defaultValue string) (string, error) {
	fmt.Fprintf(t.out, "%s", labelColor(label))
	if description != "" {
		fmt.Fprintf(t.out, "\n  %s", dimColor(description))
	}
	if len(examples) > 0 {
		fmt.Fprintf(t.out, "\n  %s", dimColor("Examples: "+strings.Join(examples, ", ")))
	}
	if defaultValue != "" {
		fmt.Fprintf(t.out, " %s", dimColor("["+defaultValue+"]"))
	}
	fmt.Fprint(t.out, ": ")

	answer, err := t.readLine()
	if err != nil {
		return "", err
	}
	if answer == "" {
		return defaultValue, nil
	}
	return answer, nil
}

// Confirm asks a yes/no question, re-asking on unrecognized input. An empty
// answer yields defaultValue.
func (t *Terminal) Confirm(label string, defaultValue bool) (bool, error) {
	hint := "[y/N]"
	if defaultValue {
		hint = "[Y/n]"
	}

	for {
		fmt.Fprintf(t.out, "%s %s: ", warnColor(label), dimColor(hint))
		answer, err := t.readLine()
		if err != nil {
			return false, err
		}
		switch strings.ToLower(answer) {
		case "":
			return defaultValue, nil
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		default:
			fmt.Fprintf(t.out, "Please answer y or n.\n")
		}
	}
}

// Choose asks the user to pick one of choices, re-asking on anything else.
// An empty answer yields defaultChoice.
func (t *Terminal) Choose(label string, choices []string, defaultChoice string) (string, error) {
	for {
		fmt.Fprintf(t.out, "%s %s %s: ",
			warnColor(label),
			dimColor("("+strings.Join(choices, "/")+")"),
			dimColor("["+defaultChoice+"]"))
		answer, err := t.readLine()
		if err != nil {
			return "", err
		}
		if answer == "" {
			return defaultChoice, nil
		}
		answer = strings.ToLower(answer)
		for _, choice := range choices {
			if answer == choice {
				return choice, nil
			}
		}
		fmt.Fprintf(t.out, "Please choose one of: %s\n", strings.Join(choices, ", "))
	}
}

// ReadPrompt reads one free-text request line for the interactive loop.
// Returns io.EOF when the input stream ends (Ctrl+D).
func (t *Terminal) ReadPrompt(prefix string) (string, error) {
	fmt.Fprint(t.out, promptMarker(prefix))
	return t.readLine()
}

// readLine reads and trims one line. A final unterminated line is still
// returned before EOF surfaces on the next read.
func (t *Terminal) readLine() (string, error) {
	line, err := t.in.ReadString('\n')
	if err != nil {
		if err == io.EOF && strings.TrimSpace(line) != "" {
			return strings.TrimSpace(line), nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}
