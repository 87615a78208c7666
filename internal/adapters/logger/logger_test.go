package logger_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/pali/internal/adapters/logger"
	"go.trai.ch/zerr"
)

func TestLogger_Info(t *testing.T) {
	l := logger.New()
	concrete, ok := l.(*logger.Logger)
	require.True(t, ok)

	var buf bytes.Buffer
	concrete.SetOutput(&buf)

	l.Info("loading configuration")

	out := buf.String()
	assert.Contains(t, out, "level=INFO")
	assert.Contains(t, out, "loading configuration")
}

func TestLogger_Warn(t *testing.T) {
	l := logger.New()
	concrete, ok := l.(*logger.Logger)
	require.True(t, ok)

	var buf bytes.Buffer
	concrete.SetOutput(&buf)

	l.Warn("target has no outputs")

	out := buf.String()
	assert.Contains(t, out, "level=WARN")
	assert.Contains(t, out, "target has no outputs")
}

func TestLogger_Error(t *testing.T) {
	l := logger.New()
	concrete, ok := l.(*logger.Logger)
	require.True(t, ok)

	var buf bytes.Buffer
	concrete.SetOutput(&buf)

	l.Error(zerr.New("action failed"))

	out := buf.String()
	assert.Contains(t, out, "level=ERROR")
	assert.Contains(t, out, "action failed")
}
