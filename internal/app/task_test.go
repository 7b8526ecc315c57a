package app

import (
	"errors"
	"testing"

	"github.com/josephgoksu/task-cli/models"
	"github.com/josephgoksu/task-cli/store"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp(t *testing.T) *TaskApp {
	t.Helper()
	s := store.NewFileTaskStore(afero.NewMemMapFs(), "tasks.json")
	return NewTaskApp(NewContext(s, nil))
}

func TestTaskApp_AddAndList(t *testing.T) {
	a := newTestApp(t)

	res, err := a.Add("Buy groceries")
	require.NoError(t, err)
	assert.Equal(t, KindAdded, res.Kind)
	assert.True(t, res.Success)
	assert.Equal(t, "Task added successfully (ID: 1)", res.Message)
	require.NotNil(t, res.Task)
	assert.Equal(t, 1, res.Task.ID)

	res, err = a.List("")
	require.NoError(t, err)
	assert.Equal(t, KindListed, res.Kind)
	require.Len(t, res.Tasks, 1)
	assert.Empty(t, res.Message)
}

func TestTaskApp_ListEmpty(t *testing.T) {
	a := newTestApp(t)

	res, err := a.List(models.StatusDone)
	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.Empty(t, res.Tasks)
	assert.Equal(t, "No tasks found.", res.Message)
}

func TestTaskApp_NotFound(t *testing.T) {
	a := newTestApp(t)

	ops := map[string]func() (*TaskResult, error){
		"update": func() (*TaskResult, error) { return a.Update(9, "x") },
		"delete": func() (*TaskResult, error) { return a.Delete(9) },
		"mark":   func() (*TaskResult, error) { return a.Mark(9, models.StatusDone) },
	}
	for name, op := range ops {
		t.Run(name, func(t *testing.T) {
			res, err := op()
			require.NoError(t, err)
			assert.Equal(t, KindNotFound, res.Kind)
			assert.False(t, res.Success)
			assert.Equal(t, "No task found with ID=9", res.Message)
			assert.Equal(t, 9, res.ID)
		})
	}
}

func TestTaskApp_Messages(t *testing.T) {
	a := newTestApp(t)
	_, err := a.Add("Read a book")
	require.NoError(t, err)

	res, err := a.Update(1, "Read two books")
	require.NoError(t, err)
	assert.Equal(t, "Task 1 updated.", res.Message)

	res, err = a.Mark(1, models.StatusInProgress)
	require.NoError(t, err)
	assert.Equal(t, "Task 1 marked as in-progress.", res.Message)

	res, err = a.Delete(1)
	require.NoError(t, err)
	assert.Equal(t, KindDeleted, res.Kind)
	assert.Equal(t, "Task 1 deleted.", res.Message)
}

func TestTaskApp_InvalidInputWrapsStoreError(t *testing.T) {
	a := newTestApp(t)

	_, err := a.Add("  ")
	require.Error(t, err)
	assert.True(t, errors.Is(err, store.ErrInvalidTask))

	_, err = a.List(models.TaskStatus("someday"))
	assert.ErrorIs(t, err, store.ErrInvalidTask)
}
