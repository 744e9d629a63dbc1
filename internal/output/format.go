// Package output provides terminal output formatting utilities for the
// infragpt CLI. This package is designed to have minimal dependencies to
// avoid import cycles.
package output

import (
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// GetTerminalWidth returns the terminal width, defaulting to 80 if unavailable.
func GetTerminalWidth() int {
	if width, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && width > 0 {
		return width
	}
	return 80
}

// PrintCommandPanel prints a resolved command inside a titled box so it
// stands out from surrounding prompts.
func PrintCommandPanel(out io.Writer, title, command string) {
	printCommandPanel(out, title, command, GetTerminalWidth())
}

func printCommandPanel(out io.Writer, title, command string, termWidth int) {
	green := color.New(color.FgGreen).SprintFunc()
	cyan := color.New(color.FgCyan, color.Bold).SprintFunc()

	width := panelWidth(title, command, termWidth)

	top := "╭─ " + title + " " + strings.Repeat("─", clampRepeat(width-utf8.RuneCountInString(title)-1)) + "╮"
	bottom := "╰" + strings.Repeat("─", width+2) + "╯"

	fmt.Fprintf(out, "%s\n", cyan(top))
	for _, line := range strings.Split(command, "\n") {
		pad := clampRepeat(width - utf8.RuneCountInString(line))
		fmt.Fprintf(out, "%s %s%s %s\n", cyan("│"), green(line), strings.Repeat(" ", pad), cyan("│"))
	}
	fmt.Fprintf(out, "%s\n", cyan(bottom))
}

// panelWidth sizes the panel to its content, clamped to the terminal. The
// clamp can land below the title length on very narrow terminals; border
// repeat counts must tolerate that.
func panelWidth(title, command string, termWidth int) int {
	width := utf8.RuneCountInString(title) + 4
	for _, line := range strings.Split(command, "\n") {
		if n := utf8.RuneCountInString(line); n > width {
			width = n
		}
	}
	if max := termWidth - 4; width > max && max > 0 {
		width = max
	}
	return width
}

func clampRepeat(n int) int {
	if n < 0 {
		return 0
	}
	return n
}

// PrintBatchHeader announces how many commands a request produced.
func PrintBatchHeader(out io.Writer, count int) {
	if count < 2 {
		return
	}
	cyan := color.New(color.FgCyan, color.Bold).SprintFunc()
	fmt.Fprintf(out, "%s\n", cyan(fmt.Sprintf("The request produced %d commands.", count)))
}

// PrintSentinel explains that the request could not be turned into a command.
func PrintSentinel(out io.Writer) {
	yellow := color.New(color.FgYellow, color.Bold).SprintFunc()
	fmt.Fprintf(out, "%s\n", yellow("The request cannot be fulfilled as a gcloud command."))
	fmt.Fprintln(out, "Try rephrasing it as a Google Cloud operation.")
}

// PrintWarning prints a non-fatal warning line.
func PrintWarning(out io.Writer, message string) {
	yellow := color.New(color.FgYellow).SprintFunc()
	fmt.Fprintf(out, "%s %s\n", yellow("Warning:"), message)
}

// PrintSuccess prints a colored success line.
// Uses a green checkmark and cyan for the detail text.
func PrintSuccess(out io.Writer, message string) {
	green := color.New(color.FgGreen, color.Bold).SprintFunc()
	cyan := color.New(color.FgCyan).SprintFunc()
	fmt.Fprintf(out, "%s %s\n", green("✓"), cyan(message))
}

// PrintExecutingCommand prints the command being executed with colored styling.
// Uses magenta arrow and dim text for the command details.
func PrintExecutingCommand(out io.Writer, command string) {
	magenta := color.New(color.FgMagenta).SprintFunc()
	dim := color.New(color.Faint).SprintFunc()
	fmt.Fprintf(out, "\n%s %s\n\n", magenta("→ Executing:"), dim(command))
}

// PrintWelcome prints the interactive-mode banner.
func PrintWelcome(out io.Writer, model string) {
	cyan := color.New(color.FgCyan, color.Bold).SprintFunc()
	dim := color.New(color.Faint).SprintFunc()
	fmt.Fprintf(out, "%s %s\n", cyan("InfraGPT"), dim("("+model+")"))
	fmt.Fprintf(out, "%s\n\n", dim("Describe what you want to do in Google Cloud. Ctrl+D to exit."))
}
