package command

import (
	"regexp"
	"strings"
)

// flagPrefix marks a token as a long-form flag (e.g. --zone=us-central1-a).
const flagPrefix = "--"

// placeholderPattern matches bracket placeholders like [INSTANCE_NAME].
var placeholderPattern = regexp.MustCompile(`\[([A-Z_]+)\]`)

// Classified is the structured form of one command template.
type Classified struct {
	// Template is the original command string, unmodified.
	Template string
	// BaseCommand holds the non-flag tokens in order (verbs and positionals).
	BaseCommand []string
	// BoundParams maps flag names (without the -- prefix) to their values,
	// insertion-ordered for stable reconstruction.
	BoundParams *ParamMap
	// Placeholders lists distinct bracket placeholder names in
	// first-occurrence order. Duplicate occurrences elsewhere in the string
	// are not repeated here but are still substituted on resolution.
	Placeholders []string
}

// HasPlaceholders reports whether the command contains bracket placeholders.
func (c Classified) HasPlaceholders() bool {
	return len(c.Placeholders) > 0
}

// HasBoundParams reports whether the command contains flag parameters.
func (c Classified) HasBoundParams() bool {
	return c.BoundParams.Len() > 0
}

// Classify parses a command template into its base command, bound flag
// parameters, and bracket placeholders. Classification never fails;
// malformed input is classified best-effort.
//
// A flag token of the form --name=value binds immediately. A bare --name
// stays unbound until a following non-flag token supplies its value; a flag
// still awaiting a value at end of string remains unbound.
func Classify(template string) Classified {
	c := Classified{
		Template:    template,
		BoundParams: NewParamMap(),
	}

	seen := make(map[string]bool)
	awaiting := ""

	for _, token := range strings.Fields(template) {
		for _, match := range placeholderPattern.FindAllStringSubmatch(token, -1) {
			name := match[1]
			if !seen[name] {
				seen[name] = true
				c.Placeholders = append(c.Placeholders, name)
			}
		}

		switch {
		case strings.HasPrefix(token, flagPrefix):
			name, value, hasValue := strings.Cut(strings.TrimPrefix(token, flagPrefix), "=")
			if hasValue {
				c.BoundParams.Set(name, value)
			} else {
				c.BoundParams.SetUnbound(name)
				awaiting = name
			}
		case awaiting != "":
			c.BoundParams.Set(awaiting, token)
			awaiting = ""
		default:
			c.BaseCommand = append(c.BaseCommand, token)
		}
	}

	return c
}
