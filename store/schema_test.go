package store

import (
	"testing"

	"github.com/josephgoksu/task-cli/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeTaskList(t *testing.T) {
	data := []byte(`[
    {"id": 1, "description": "Buy groceries", "status": "done", "created_at": "", "updated_at": ""},
    {"id": 9007199254740993, "description": "Big id", "status": "todo"}
]`)

	tasks, err := decodeTaskList(data)
	require.NoError(t, err)
	require.Len(t, tasks, 2)
	assert.Equal(t, models.StatusDone, tasks[0].Status)
	assert.Equal(t, 9007199254740993, tasks[1].ID)
}

func TestDecodeTaskList_EmptyArray(t *testing.T) {
	tasks, err := decodeTaskList([]byte("[]"))
	require.NoError(t, err)
	assert.NotNil(t, tasks)
	assert.Empty(t, tasks)
}

func TestDecodeTaskList_Rejects(t *testing.T) {
	tests := map[string]string{
		"syntax error":     `[{"id": 1,`,
		"not an array":     `{"tasks": []}`,
		"zero id":          `[{"id": 0, "description": "x", "status": "todo"}]`,
		"fractional id":    `[{"id": 2.5, "description": "x", "status": "todo"}]`,
		"unknown status":   `[{"id": 1, "description": "x", "status": "later"}]`,
		"second document":  `[] {}`,
		"stray bracket":    `[] ]`,
		"missing required": `[{"id": 1}]`,
	}

	for name, content := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := decodeTaskList([]byte(content))
			assert.Error(t, err)
		})
	}
}

func TestEncodeTaskList_NilIsEmptyArray(t *testing.T) {
	data, err := encodeTaskList(nil)
	require.NoError(t, err)
	assert.Equal(t, "[]\n", string(data))
}
