package logging

import (
	"bytes"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTextFormatter(t *testing.T) {
	logger := logrus.New()
	var buf bytes.Buffer
	logger.SetOutput(&buf)
	logger.SetFormatter(&TextFormatter{Config: FormatConfig{DisableTimestamp: true}})

	logger.WithField("component", "validate").WithField("path", "x.yaml").Info("loaded configuration")

	out := buf.String()
	assert.Contains(t, out, "[INFO]")
	assert.Contains(t, out, "loaded configuration")
	assert.Contains(t, out, "path=x.yaml")
}

func TestTextFormatterWarnLevel(t *testing.T) {
	f := &TextFormatter{Config: FormatConfig{DisableTimestamp: true, DisableComponent: true}}
	entry := logrus.NewEntry(logrus.New())
	entry.Level = logrus.WarnLevel
	entry.Message = "rev pin looks stale"

	out, err := f.Format(entry)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(out), "[WARN]"), "got %q", string(out))
}

func TestNewLoggerIsSingletonPerComponent(t *testing.T) {
	t.Chdir(t.TempDir())
	a := NewLogger("test-singleton")
	b := NewLogger("test-singleton")
	assert.Same(t, a, b)
}

func TestNewLoggerLevelFromEnv(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("HOOKCFG_LOG_LEVEL", "debug")
	entry := NewLogger("test-env-level")
	assert.Equal(t, logrus.DebugLevel, entry.Logger.GetLevel())
}
