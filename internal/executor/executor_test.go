package executor

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		command string
		timeout time.Duration
		wantErr string
	}{
		"successful command": {
			command: "true",
		},
		"quoted arguments survive splitting": {
			command: `sh -c "exit 0"`,
		},
		"failing command": {
			command: "false",
			wantErr: "error executing command",
		},
		"empty command": {
			command: "",
			wantErr: "error executing command",
		},
		"unbalanced quotes": {
			command: `echo "unclosed`,
			wantErr: "error executing command",
		},
		"timeout exceeded": {
			command: "sleep 2",
			timeout: 50 * time.Millisecond,
			wantErr: "timed out",
		},
	}

	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			err := Run(context.Background(), tt.command, tt.timeout)
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestRun_CancelledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := Run(ctx, "sleep 1", 0)
	assert.Error(t, err)
}
