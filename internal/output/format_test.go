package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
)

func TestPrintCommandPanel(t *testing.T) {
	color.NoColor = true

	var out bytes.Buffer
	PrintCommandPanel(&out, "Command 1", "gcloud compute instances list")

	got := out.String()
	assert.Contains(t, got, "Command 1")
	assert.Contains(t, got, "gcloud compute instances list")
	assert.Contains(t, got, "╭")
	assert.Contains(t, got, "╰")

	// Every content line is framed.
	for _, line := range strings.Split(strings.TrimSpace(got), "\n") {
		assert.True(t,
			strings.HasPrefix(line, "╭") || strings.HasPrefix(line, "╰") || strings.HasPrefix(line, "│"),
			"unframed line: %q", line)
	}
}

func TestPrintCommandPanel_NarrowTerminal(t *testing.T) {
	color.NoColor = true

	// Terminal narrower than the title plus the frame: borders must not
	// underflow, output stays framed.
	var out bytes.Buffer
	printCommandPanel(&out, "Command template", "gcloud compute instances list", 12)

	got := out.String()
	assert.Contains(t, got, "Command template")
	for _, line := range strings.Split(strings.TrimSpace(got), "\n") {
		assert.True(t,
			strings.HasPrefix(line, "╭") || strings.HasPrefix(line, "╰") || strings.HasPrefix(line, "│"),
			"unframed line: %q", line)
	}
}

func TestPrintBatchHeader(t *testing.T) {
	color.NoColor = true

	var out bytes.Buffer
	PrintBatchHeader(&out, 1)
	assert.Empty(t, out.String(), "single command needs no header")

	PrintBatchHeader(&out, 3)
	assert.Contains(t, out.String(), "3 commands")
}

func TestPrintSentinel(t *testing.T) {
	color.NoColor = true

	var out bytes.Buffer
	PrintSentinel(&out)
	assert.Contains(t, out.String(), "cannot be fulfilled")
}

func TestPrintWarning(t *testing.T) {
	color.NoColor = true

	var out bytes.Buffer
	PrintWarning(&out, "parameter metadata unavailable")
	assert.Contains(t, out.String(), "Warning: parameter metadata unavailable")
}
