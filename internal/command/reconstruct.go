package command

import (
	"fmt"
	"strings"
)

// Reconstruct rebuilds an executable command from the classified base
// command plus resolved flag values, appending --name=value in insertion
// order. Parameters with empty values are dropped entirely rather than
// emitted as --name=; optional flags the user leaves blank simply disappear
// from the final command.
func Reconstruct(c Classified, resolved *ParamMap) string {
	out := strings.Join(c.BaseCommand, " ")
	for _, name := range resolved.Names() {
		value, bound := resolved.Get(name)
		if bound && value != "" {
			out += fmt.Sprintf(" --%s=%s", name, value)
		}
	}
	return out
}
