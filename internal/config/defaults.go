package config

// GetDefaultConfigTemplate returns a fully commented config template
// that helps users understand all available options
func GetDefaultConfigTemplate() string {
	return `# InfraGPT Configuration
# See 'infragpt config -h' for commands

# Generator settings
model: gpt4o                          # Command generator: gpt4o | claude
openai_base_url: ""                   # Override the OpenAI endpoint (empty = public API)
openai_model: ""                      # Override the OpenAI model (empty = gpt-4o)
anthropic_base_url: ""                # Override the Anthropic endpoint (empty = public API)
anthropic_model: ""                   # Override the Anthropic model (empty = claude-3-sonnet-20240229)
timeout: 60                           # Request/execution timeout in seconds (0 = no timeout)

# Session settings
skip_confirmations: false             # Skip confirmation prompts
default_action: copy                  # Preselected action for resolved commands: copy | run

# History settings
state_dir: ~/.infragpt/state          # Directory for the prompt history file
max_history_entries: 500              # Max history entries to retain
`
}

// GetDefaults returns the default configuration values
func GetDefaults() map[string]interface{} {
	return map[string]interface{}{
		"model":              "gpt4o",
		"openai_base_url":    "",
		"openai_model":       "",
		"anthropic_base_url": "",
		"anthropic_model":    "",
		// timeout: bounds each generator request and each executed command.
		"timeout":            60,
		"skip_confirmations": false,
		"default_action":     "copy",
		"state_dir":          "~/.infragpt/state",
		// max_history_entries: oldest entries are pruned past this limit.
		"max_history_entries": 500,
	}
}
