package generator

import "sort"

// EnvVar names the environment variable holding each backend's API key.
// Credential lookup lives in config; the mapping is declared here next to
// the backends it belongs to.
var EnvVar = map[string]string{
	"gpt4o":  "OPENAI_API_KEY",
	"claude": "ANTHROPIC_API_KEY",
}

// registry maps preset names to backend constructors.
var registry = map[string]func(Options) Generator{
	"gpt4o":  func(opts Options) Generator { return NewOpenAI(opts) },
	"claude": func(opts Options) Generator { return NewAnthropic(opts) },
}

// Get constructs the backend registered under name, or nil if the name is
// unknown.
func Get(name string, opts Options) Generator {
	construct, ok := registry[name]
	if !ok {
		return nil
	}
	return construct(opts)
}

// List returns the registered preset names, sorted.
func List() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
