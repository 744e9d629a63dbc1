package command

import (
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptedAsker returns pre-seeded answers in order and records each
// question it was asked.
type scriptedAsker struct {
	answers []string
	asked   []string
	err     error
}

func (s *scriptedAsker) Ask(label, _ string, _ []string, defaultValue string) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	s.asked = append(s.asked, label)
	if len(s.answers) == 0 {
		return defaultValue, nil
	}
	answer := s.answers[0]
	s.answers = s.answers[1:]
	if answer == "" {
		return defaultValue, nil
	}
	return answer, nil
}

func TestResolveCommand_PlaceholderMode(t *testing.T) {
	t.Parallel()

	// Every literal occurrence of [A] is replaced, not just the first.
	asker := &scriptedAsker{answers: []string{"x", "y"}}
	c := Classify("tool [A] --first=[A] --second=[B] --third=[A]")

	got, err := NewResolver(asker).ResolveCommand(c, nil)
	require.NoError(t, err)
	assert.Equal(t, "tool x --first=x --second=y --third=x", got)
	assert.Equal(t, []string{"A", "B"}, asker.asked)
	assert.NotContains(t, got, "[", "no placeholder tokens remain")
}

func TestResolveCommand_PlaceholderModePrecedence(t *testing.T) {
	t.Parallel()

	// When placeholders and bound params coexist, only placeholders are
	// prompted for; bound values pass through as literal text.
	asker := &scriptedAsker{answers: []string{"web-1", "us-central1-a"}}
	c := Classify("gcloud compute instances create [INSTANCE_NAME] --zone=[ZONE] --machine-type=e2-medium")

	got, err := NewResolver(asker).ResolveCommand(c, nil)
	require.NoError(t, err)
	assert.Equal(t, "gcloud compute instances create web-1 --zone=us-central1-a --machine-type=e2-medium", got)
	assert.Equal(t, []string{"INSTANCE_NAME", "ZONE"}, asker.asked, "machine-type is never prompted for")
}

func TestResolveCommand_BoundParamMode(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		command string
		answers []string
		want    string
	}{
		"edit one value keep another": {
			command: "gcloud compute instances create web-1 --zone=us-west1-b --machine-type=e2-medium",
			answers: []string{"us-central1-a", ""},
			want:    "gcloud compute instances create web-1 --zone=us-central1-a --machine-type=e2-medium",
		},
		"blank answer on unbound flag drops it": {
			command: "gcloud compute instances list --format",
			answers: []string{""},
			want:    "gcloud compute instances list",
		},
		"empty answers drop optional flags": {
			command: "gcloud compute instances create web-1 --zone= --name=foo",
			answers: []string{"", ""},
			want:    "gcloud compute instances create web-1 --name=foo",
		},
	}

	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			asker := &scriptedAsker{answers: tt.answers}
			c := Classify(tt.command)
			got, err := NewResolver(asker).ResolveCommand(c, nil)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolveCommand_PassThrough(t *testing.T) {
	t.Parallel()

	asker := &scriptedAsker{}
	c := Classify("gcloud projects list")
	got, err := NewResolver(asker).ResolveCommand(c, nil)
	require.NoError(t, err)
	assert.Equal(t, "gcloud projects list", got)
	assert.Empty(t, asker.asked, "no prompting for a command with nothing to resolve")
}

func TestResolveCommand_BareNamesWithoutMetadata(t *testing.T) {
	t.Parallel()

	// Empty metadata still prompts for every placeholder using its bare name.
	asker := &scriptedAsker{answers: []string{"p1", "t1"}}
	c := Classify("gcloud pubsub topics create [TOPIC_NAME] --project=[PROJECT_ID]")

	got, err := NewResolver(asker).ResolveCommand(c, map[string]ParamInfo{})
	require.NoError(t, err)
	assert.Equal(t, []string{"TOPIC_NAME", "PROJECT_ID"}, asker.asked)
	assert.Equal(t, "gcloud pubsub topics create p1 --project=t1", got)
}

func TestResolveCommand_PrompterErrorAborts(t *testing.T) {
	t.Parallel()

	asker := &scriptedAsker{err: io.EOF}
	c := Classify("gcloud pubsub topics create [TOPIC_NAME]")

	_, err := NewResolver(asker).ResolveCommand(c, nil)
	assert.True(t, errors.Is(err, io.EOF))
}

func TestResolveCommand_EndToEnd(t *testing.T) {
	t.Parallel()

	asker := &scriptedAsker{answers: []string{"web-1", "us-central1-a"}}
	c := Classify("gcloud compute instances create [INSTANCE_NAME] --zone=[ZONE] --machine-type=e2-medium")
	require.Equal(t, []string{"INSTANCE_NAME", "ZONE"}, c.Placeholders)

	got, err := NewResolver(asker).ResolveCommand(c, nil)
	require.NoError(t, err)
	assert.Equal(t, "gcloud compute instances create web-1 --zone=us-central1-a --machine-type=e2-medium", got)
}
