package logger

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func newBufferLogger(buf *bytes.Buffer) *Logger {
	return NewLogger(&Config{
		Level:      InfoLevel,
		TimeFormat: time.RFC3339,
		Output:     buf,
	})
}

func TestInfoWritesToConfiguredOutput(t *testing.T) {
	var buf bytes.Buffer
	log := newBufferLogger(&buf)

	log.Info("starting server", "port", 8080)

	out := buf.String()
	assert.Contains(t, out, "starting server")
	assert.Contains(t, out, "port")
}

func TestErrorIncludesCause(t *testing.T) {
	var buf bytes.Buffer
	log := newBufferLogger(&buf)

	log.Error(errors.New("disk full"), "failed to write report")

	out := buf.String()
	assert.Contains(t, out, "failed to write report")
	assert.Contains(t, out, "disk full")
}

func TestLevelFiltersBelowThreshold(t *testing.T) {
	var buf bytes.Buffer
	log := NewLogger(&Config{
		Level:      ErrorLevel,
		TimeFormat: time.RFC3339,
		Output:     &buf,
	})

	log.Info("noise")
	assert.Empty(t, buf.String())
}
