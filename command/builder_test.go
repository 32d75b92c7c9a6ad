package command

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild(t *testing.T) {
	sb := NewSafeBuilder()

	cmd, err := sb.Build(context.Background(), "git", "rev-parse", "--show-toplevel")
	require.NoError(t, err)
	assert.Equal(t, "git", cmd.name)
	assert.Equal(t, []string{"rev-parse", "--show-toplevel"}, cmd.args)
	assert.Equal(t, DefaultTimeout, cmd.timeout)
}

func TestBuildEmptyName(t *testing.T) {
	sb := NewSafeBuilder()

	_, err := sb.Build(context.Background(), "")
	require.Error(t, err)
}

func TestWithTimeoutCapped(t *testing.T) {
	sb := NewSafeBuilder()

	cmd, err := sb.Build(context.Background(), "git", "fetch")
	require.NoError(t, err)

	cmd = cmd.WithTimeout(time.Hour)
	assert.Equal(t, MaxTimeout, cmd.timeout)
}

func TestValidate(t *testing.T) {
	sb := NewSafeBuilder()

	tests := []struct {
		argType string
		value   string
		wantErr bool
	}{
		{"gitRef", "v5.0.0", false},
		{"gitRef", "refs/heads/main", false},
		{"gitRef", "", true},
		{"gitRef", "v1; rm -rf /", true},
		{"hookType", "pre-commit", false},
		{"hookType", "commit-msg", false},
		{"hookType", "Pre_Commit", true},
		{"hookType", "", true},
		{"fileName", ".pre-commit-config.yaml", false},
		{"fileName", "../../etc/passwd", true},
		{"fileName", "a.yaml; echo pwned", true},
		{"unknown", "anything", true},
	}

	for _, tt := range tests {
		t.Run(tt.argType+"/"+tt.value, func(t *testing.T) {
			err := sb.Validate(tt.argType, tt.value)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestExecUsesExecutor(t *testing.T) {
	sb := NewSafeBuilder()

	cmd, err := sb.Build(context.Background(), "git", "status")
	require.NoError(t, err)

	execCmd := cmd.Exec()
	require.NotNil(t, execCmd)
	assert.Contains(t, execCmd.Args[0], "git")
}
