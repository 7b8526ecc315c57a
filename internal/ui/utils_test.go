package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStripDecorations(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"plain text untouched", "Task 1 deleted.", "Task 1 deleted."},
		{"leading emoji", "✅ Task added successfully (ID: 1)", "Task added successfully (ID: 1)"},
		{"emoji with variation selector", "✏️ Task 2 updated.", "Task 2 updated."},
		{"indentation kept", "  add \"description\"       Add a new task", "  add \"description\"       Add a new task"},
		{"multi-line", "\n👋 Welcome!\n   task-cli list", "\nWelcome!\n   task-cli list"},
		{"inner symbols", "café ☕ time", "caf  time"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, StripDecorations(tt.input))
		})
	}
}
