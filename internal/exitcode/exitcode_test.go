package exitcode

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCodesAreDistinct(t *testing.T) {
	codes := []int{Success, DirError, FileError, DBReadError, DBWriteError, JSONError, IDError, UsageError}
	seen := map[int]bool{}
	for _, c := range codes {
		assert.False(t, seen[c], "duplicate exit code %d", c)
		seen[c] = true
	}
}

func TestMessage(t *testing.T) {
	assert.Equal(t, "Task ID not found", Message(IDError))
	assert.Equal(t, "Database write error", Message(DBWriteError))
	assert.Empty(t, Message(Success))
	assert.Empty(t, Message(99))
}
