package cli

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// loopPrompter replays a fixed set of interactive requests, then signals EOF.
type loopPrompter struct {
	scriptedPrompter
	prompts []string
}

func (p *loopPrompter) ReadPrompt(prefix string) (string, error) {
	if len(p.prompts) == 0 {
		return p.scriptedPrompter.ReadPrompt(prefix)
	}
	prompt := p.prompts[0]
	p.prompts = p.prompts[1:]
	return prompt, nil
}

func TestRunInteractive_HandlesPromptsUntilEOF(t *testing.T) {
	t.Parallel()

	gen := &fakeGenerator{generateResponse: "gcloud compute instances list"}
	p := &loopPrompter{
		prompts:          []string{"list my vms", "", "list again"},
		scriptedPrompter: scriptedPrompter{choices: []string{"copy", "copy"}},
	}
	s, out, copied, _ := newTestSession(t, gen, p)

	require.NoError(t, RunInteractive(context.Background(), s))

	// Both non-empty prompts handled, blank line skipped.
	assert.Len(t, *copied, 2)
	assert.Contains(t, out.String(), "Exiting infragpt.")
	assert.Contains(t, out.String(), "InfraGPT")
}

func TestRunInteractive_GenerationErrorDoesNotEndSession(t *testing.T) {
	t.Parallel()

	gen := &fakeGenerator{generateErr: assert.AnError}
	p := &loopPrompter{prompts: []string{"bad request"}}
	s, out, _, _ := newTestSession(t, gen, p)

	require.NoError(t, RunInteractive(context.Background(), s))
	assert.Contains(t, out.String(), "command generation failed")
	assert.Contains(t, out.String(), "Exiting infragpt.")
}
