package logger

import (
	"bytes"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]log.Level{
		"debug":   log.DebugLevel,
		"INFO":    log.InfoLevel,
		"warn":    log.WarnLevel,
		"warning": log.WarnLevel,
		"error":   log.ErrorLevel,
		"fatal":   log.FatalLevel,
		" Debug ": log.DebugLevel,
		"":        log.InfoLevel,
		"verbose": log.InfoLevel,
	}
	for in, want := range cases {
		assert.Equal(t, want, ParseLevel(in), "ParseLevel(%q)", in)
	}
}

func TestNew_WritesPrefixAndFields(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, DefaultOptions())

	l.Info("data file not found, creating a new one", "path", "tasks.json")
	l.Debug("hidden at info level")

	out := buf.String()
	assert.Contains(t, out, Prefix)
	assert.Contains(t, out, "data file not found")
	assert.Contains(t, out, "path=tasks.json")
	assert.NotContains(t, out, "hidden at info level")
}

func TestNewFromConfig_VerboseForcesDebug(t *testing.T) {
	l := NewFromConfig(nil, "error", true)
	assert.Equal(t, log.DebugLevel, l.GetLevel())

	l = NewFromConfig(&bytes.Buffer{}, "warn", false)
	assert.Equal(t, log.WarnLevel, l.GetLevel())
}
