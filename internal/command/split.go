// Package command implements the command templating pipeline: splitting raw
// generator output into individual commands, classifying tokens into base
// command, bound flag parameters, and bracket placeholders, resolving
// placeholder metadata, interactively resolving values, and reconstructing
// the final executable string.
package command

import "strings"

// Sentinel is the generator's verbatim refusal response for requests that
// cannot be translated into cloud commands.
const Sentinel = "Request cannot be fulfilled."

// Split divides a raw generator response into an ordered list of command
// strings. A response containing the refusal sentinel collapses to a single
// sentinel element regardless of any other content; callers must treat it as
// terminal. Blank lines are discarded, so an all-blank response yields an
// empty list ("no commands generated").
func Split(raw string) []string {
	if strings.Contains(raw, Sentinel) {
		return []string{Sentinel}
	}

	var commands []string
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			commands = append(commands, line)
		}
	}
	return commands
}
