package config

import (
	"os"
	"time"

	"github.com/infragpt/infragpt/internal/errors"
	"github.com/infragpt/infragpt/internal/generator"
)

// GetGenerator builds the command generator selected by modelOverride, or by
// the configured model when the override is empty. The API key comes from
// the preset's environment variable.
func (c *Configuration) GetGenerator(modelOverride string) (generator.Generator, error) {
	model := c.Model
	if modelOverride != "" {
		model = modelOverride
	}

	envVar, ok := generator.EnvVar[model]
	if !ok {
		return nil, errors.UnknownModel(model, generator.List())
	}

	apiKey := os.Getenv(envVar)
	if apiKey == "" {
		return nil, errors.MissingAPIKey(envVar, model)
	}

	opts := generator.Options{
		APIKey:  apiKey,
		Timeout: time.Duration(c.Timeout) * time.Second,
	}
	switch model {
	case "gpt4o":
		opts.Model = c.OpenAIModel
		opts.BaseURL = c.OpenAIBaseURL
	case "claude":
		opts.Model = c.AnthropicModel
		opts.BaseURL = c.AnthropicBaseURL
	}

	gen := generator.Get(model, opts)
	if gen == nil {
		return nil, errors.UnknownModel(model, generator.List())
	}
	return gen, nil
}
