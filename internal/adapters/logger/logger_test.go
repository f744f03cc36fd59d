package logger_test

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/forge/internal/adapters/logger"
)

func newBuffered() (*logger.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	lg := logger.New()
	lg.SetOutput(&buf)
	return lg, &buf
}

func TestLogger_Info(t *testing.T) {
	lg, buf := newBuffered()
	lg.Info("some message")

	assert.Contains(t, buf.String(), "some message")
	assert.Contains(t, buf.String(), "INFO")
}

func TestLogger_Error(t *testing.T) {
	lg, buf := newBuffered()
	lg.Error(os.ErrPermission)

	assert.Contains(t, buf.String(), "permission denied")
	assert.Contains(t, buf.String(), "ERROR")
}

func TestLogger_Warn(t *testing.T) {
	lg, buf := newBuffered()
	lg.Warn("some warning")

	assert.Contains(t, buf.String(), "some warning")
	assert.Contains(t, buf.String(), "WARN")
}

func TestLogger_DebugHiddenUntilVerbose(t *testing.T) {
	lg, buf := newBuffered()

	lg.Debug("hidden")
	assert.Empty(t, buf.String())

	lg.SetVerbose(true)
	lg.Debug("shown")
	assert.True(t, strings.Contains(buf.String(), "shown"))
	assert.NotContains(t, buf.String(), "hidden")

	lg.SetVerbose(false)
	lg.Debug("hidden again")
	assert.NotContains(t, buf.String(), "hidden again")
}
