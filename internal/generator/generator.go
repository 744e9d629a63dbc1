// Package generator provides the language-model backends that translate
// natural-language requests into gcloud commands and describe command
// parameters. Backends are registered under preset names and selected by
// configuration; the rest of the pipeline treats them as black boxes that
// may be slow or occasionally return unparseable text.
package generator

import (
	"context"
	"time"
)

// Generator produces command templates and parameter metadata from an
// external language model.
type Generator interface {
	// Name returns the preset name of the backend.
	Name() string
	// Generate translates a natural-language request into raw command text:
	// one command per line, bracket placeholders for unresolved values, or
	// the refusal sentinel.
	Generate(ctx context.Context, userPrompt string) (string, error)
	// DescribeParameters returns raw text expected to contain a JSON block
	// describing each bracket placeholder in the command.
	DescribeParameters(ctx context.Context, command string) (string, error)
}

// Options carries backend construction settings resolved from configuration.
type Options struct {
	// APIKey authenticates against the backend. Required.
	APIKey string
	// Model overrides the backend's default model identifier.
	Model string
	// BaseURL overrides the backend's default API endpoint (used by tests
	// and OpenAI-compatible proxies).
	BaseURL string
	// Timeout bounds each HTTP request. Zero means the default.
	Timeout time.Duration
}

// defaultHTTPTimeout bounds model calls when no timeout is configured.
const defaultHTTPTimeout = 60 * time.Second

func (o Options) httpTimeout() time.Duration {
	if o.Timeout > 0 {
		return o.Timeout
	}
	return defaultHTTPTimeout
}
