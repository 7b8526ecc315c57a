package store

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileTaskStore_InvalidateReloads(t *testing.T) {
	s, fs := setupTestStore(t)
	_, err := s.Add("mine")
	require.NoError(t, err)

	other := NewFileTaskStore(fs, "data/tasks.json")
	_, err = other.Add("theirs")
	require.NoError(t, err)

	tasks, err := s.List("")
	require.NoError(t, err)
	assert.Len(t, tasks, 1, "cached list is used until invalidated")

	s.Invalidate()
	tasks, err = s.List("")
	require.NoError(t, err)
	require.Len(t, tasks, 2)
	assert.Equal(t, "theirs", tasks[1].Description)

	task, err := s.Add("after reload")
	require.NoError(t, err)
	assert.Equal(t, 3, task.ID)
}

func TestWatcher_PicksUpExternalChanges(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tasks.json")
	fs := afero.NewOsFs()

	s := NewFileTaskStore(fs, path)
	_, err := s.Add("mine")
	require.NoError(t, err)

	w, err := NewWatcher(s, nil)
	require.NoError(t, err)
	require.NoError(t, w.Start())
	t.Cleanup(w.Stop)

	other := NewFileTaskStore(fs, path)
	_, err = other.Add("theirs")
	require.NoError(t, err)

	assert.Eventually(t, func() bool {
		tasks, err := s.List("")
		return err == nil && len(tasks) == 2
	}, 5*time.Second, 20*time.Millisecond)
}

func TestWatcher_IgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	s := NewFileTaskStore(afero.NewOsFs(), filepath.Join(dir, "tasks.json"))
	_, err := s.Load()
	require.NoError(t, err)

	w, err := NewWatcher(s, nil)
	require.NoError(t, err)
	s.stale.Store(false)

	w.handleEvent(fsnotifyEvent(filepath.Join(dir, "notes.txt")))
	assert.False(t, s.stale.Load())

	w.handleEvent(fsnotifyEvent(filepath.Join(dir, "tasks.json")))
	assert.True(t, s.stale.Load())
	w.Stop()
}

func fsnotifyEvent(name string) fsnotify.Event {
	return fsnotify.Event{Name: name, Op: fsnotify.Write}
}
