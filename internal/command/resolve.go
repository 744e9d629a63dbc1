package command

import "strings"

// Asker prompts the user for a single parameter value. The label is the bare
// parameter name; description and examples come from placeholder metadata
// and may be empty. An empty answer falls back to defaultValue, which the
// implementation is expected to apply.
type Asker interface {
	Ask(label, description string, examples []string, defaultValue string) (string, error)
}

// Resolver walks classified commands through interactive value resolution.
// It defines only the order and content of the questions; rendering and
// input belong to the Asker.
type Resolver struct {
	prompter Asker
}

// NewResolver creates a Resolver that asks questions through prompter.
func NewResolver(prompter Asker) *Resolver {
	return &Resolver{prompter: prompter}
}

// ResolveCommand produces the final executable string for one command.
//
// Placeholder mode takes precedence: when bracket placeholders exist, only
// they are prompted for and any bound flag values pass through untouched as
// literal text. Without placeholders, each bound flag parameter is prompted
// for in insertion order with its current value as the default, and the
// command is rebuilt from the classified parts. A command with neither
// passes through unchanged.
//
// Any prompter error aborts resolution; the caller decides batch fate.
func (r *Resolver) ResolveCommand(c Classified, meta map[string]ParamInfo) (string, error) {
	switch {
	case c.HasPlaceholders():
		return r.resolvePlaceholders(c, meta)
	case c.HasBoundParams():
		return r.resolveBoundParams(c)
	default:
		return c.Template, nil
	}
}

// resolvePlaceholders substitutes every literal occurrence of [NAME] in the
// template with the answered value, one placeholder at a time in
// first-occurrence order.
func (r *Resolver) resolvePlaceholders(c Classified, meta map[string]ParamInfo) (string, error) {
	resolved := c.Template
	for _, name := range c.Placeholders {
		info := meta[name]
		value, err := r.prompter.Ask(name, info.Description, info.Examples, info.Default)
		if err != nil {
			return "", err
		}
		resolved = strings.ReplaceAll(resolved, "["+name+"]", value)
	}
	return resolved, nil
}

// resolveBoundParams re-prompts each flag with its existing value as the
// default and rebuilds the command, dropping parameters left empty.
func (r *Resolver) resolveBoundParams(c Classified) (string, error) {
	resolved := NewParamMap()
	for _, name := range c.BoundParams.Names() {
		current, _ := c.BoundParams.Get(name)
		value, err := r.prompter.Ask(name, "", nil, current)
		if err != nil {
			return "", err
		}
		resolved.Set(name, value)
	}
	return Reconstruct(c, resolved), nil
}
