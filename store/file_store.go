package store

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"slices"
	"strings"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
	"github.com/josephgoksu/task-cli/internal/logger"
	"github.com/josephgoksu/task-cli/models"
	"github.com/spf13/afero"
)

const (
	// DefaultDataFile is the task file used when none is configured.
	DefaultDataFile = "tasks.json"

	corruptSuffix = ".corrupt-"
	tempSuffix    = ".tmp"
	filePerm      = 0o644
	dirPerm       = 0o755
)

// FileTaskStore implements TaskStore on top of a single JSON file.
// The whole list is kept in memory in insertion order and rewritten on every mutation.
type FileTaskStore struct {
	fs       afero.Fs
	filePath string
	tasks    []models.Task
	loaded   bool
	stale    atomic.Bool
	log      *log.Logger
	now      func() time.Time
}

// Option configures a FileTaskStore.
type Option func(*FileTaskStore)

// WithLogger sets the logger used for file lifecycle messages.
func WithLogger(l *log.Logger) Option {
	return func(s *FileTaskStore) { s.log = l }
}

// WithClock overrides the time source used for timestamps and backup names.
func WithClock(now func() time.Time) Option {
	return func(s *FileTaskStore) { s.now = now }
}

// NewFileTaskStore creates a store backed by filePath on fsys.
// It does not touch the filesystem; Load (or the first operation) does.
func NewFileTaskStore(fsys afero.Fs, filePath string, opts ...Option) *FileTaskStore {
	if filePath == "" {
		filePath = DefaultDataFile
	}
	s := &FileTaskStore{
		fs:       fsys,
		filePath: filePath,
		log:      logger.Discard(),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Path returns the backing file path.
func (s *FileTaskStore) Path() string {
	return s.filePath
}

// Load reads tasks from the file, creating or resetting it when needed.
func (s *FileTaskStore) Load() ([]models.Task, error) {
	if err := s.ensureDir(); err != nil {
		return nil, err
	}

	data, err := afero.ReadFile(s.fs, s.filePath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			s.log.Info("data file not found, creating a new one", "path", s.filePath)
			return s.reset()
		}
		return nil, fmt.Errorf("%w: %s: %w", ErrRead, s.filePath, err)
	}

	tasks, decodeErr := decodeTaskList(data)
	if decodeErr != nil {
		backup, err := s.backupCorrupt(data)
		if err != nil {
			return nil, err
		}
		s.log.Warn("data file is corrupted, resetting", "path", s.filePath, "backup", backup, "err", decodeErr)
		return s.reset()
	}

	s.tasks = tasks
	s.loaded = true
	s.log.Debug("tasks loaded", "path", s.filePath, "count", len(tasks))
	return slices.Clone(s.tasks), nil
}

// Save replaces the in-memory list with tasks and writes it out.
func (s *FileTaskStore) Save(tasks []models.Task) error {
	if err := s.ensureDir(); err != nil {
		return err
	}
	next := slices.Clone(tasks)
	if next == nil {
		next = []models.Task{}
	}
	s.loaded = true
	return s.commit(next)
}

// Add appends a new todo task with the next free id.
func (s *FileTaskStore) Add(description string) (models.Task, error) {
	if err := s.ensureLoaded(); err != nil {
		return models.Task{}, err
	}

	task := models.NewTask(s.nextID(), strings.TrimSpace(description), s.now())
	if err := models.ValidateStruct(task); err != nil {
		return models.Task{}, fmt.Errorf("%w: %w", ErrInvalidTask, err)
	}

	if err := s.commit(append(slices.Clone(s.tasks), task)); err != nil {
		return models.Task{}, err
	}
	return task, nil
}

// Update replaces the description of the first task with the given id.
func (s *FileTaskStore) Update(id int, description string) (bool, error) {
	description = strings.TrimSpace(description)
	if description == "" {
		return false, fmt.Errorf("%w: description cannot be empty", ErrInvalidTask)
	}
	return s.modify(id, func(t *models.Task) {
		t.Description = description
	})
}

// Delete removes every task with the given id and persists only if something was removed.
func (s *FileTaskStore) Delete(id int) (bool, error) {
	if err := s.ensureLoaded(); err != nil {
		return false, err
	}

	next := slices.DeleteFunc(slices.Clone(s.tasks), func(t models.Task) bool {
		return t.ID == id
	})
	if len(next) == len(s.tasks) {
		return false, nil
	}
	if err := s.commit(next); err != nil {
		return false, err
	}
	return true, nil
}

// Mark sets the status of the first task with the given id.
func (s *FileTaskStore) Mark(id int, status models.TaskStatus) (bool, error) {
	if !status.Valid() {
		return false, fmt.Errorf("%w: unknown status %q", ErrInvalidTask, status)
	}
	return s.modify(id, func(t *models.Task) {
		t.Status = status
	})
}

// List returns a copy of the tasks, filtered by status when one is given.
func (s *FileTaskStore) List(status models.TaskStatus) ([]models.Task, error) {
	if status != "" && !status.Valid() {
		return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidTask, status)
	}
	if err := s.ensureLoaded(); err != nil {
		return nil, err
	}

	result := make([]models.Task, 0, len(s.tasks))
	for _, t := range s.tasks {
		if status == "" || t.Status == status {
			result = append(result, t)
		}
	}
	return result, nil
}

// modify applies fn to the first task with the given id, refreshes its
// updated_at and persists. It reports whether a task matched.
func (s *FileTaskStore) modify(id int, fn func(*models.Task)) (bool, error) {
	if err := s.ensureLoaded(); err != nil {
		return false, err
	}

	idx := slices.IndexFunc(s.tasks, func(t models.Task) bool { return t.ID == id })
	if idx < 0 {
		return false, nil
	}

	next := slices.Clone(s.tasks)
	fn(&next[idx])
	next[idx].Touch(s.now())

	if err := s.commit(next); err != nil {
		return false, err
	}
	return true, nil
}

// nextID returns max(existing ids) + 1, so ids stay unique after deletions.
func (s *FileTaskStore) nextID() int {
	maxID := 0
	for _, t := range s.tasks {
		maxID = max(maxID, t.ID)
	}
	return maxID + 1
}

// Invalidate makes the next operation reload the file before acting.
// It is safe to call from any goroutine.
func (s *FileTaskStore) Invalidate() {
	s.stale.Store(true)
}

func (s *FileTaskStore) ensureLoaded() error {
	if s.stale.Swap(false) {
		s.loaded = false
	}
	if s.loaded {
		return nil
	}
	_, err := s.Load()
	return err
}

func (s *FileTaskStore) ensureDir() error {
	dir := filepath.Dir(s.filePath)
	if dir == "." || dir == "" {
		return nil
	}
	if err := s.fs.MkdirAll(dir, dirPerm); err != nil {
		return fmt.Errorf("%w: create %s: %w", ErrDataDir, dir, err)
	}
	return nil
}

// reset installs an empty list and writes it to disk.
func (s *FileTaskStore) reset() ([]models.Task, error) {
	s.loaded = true
	if err := s.commit([]models.Task{}); err != nil {
		return nil, err
	}
	return []models.Task{}, nil
}

// commit swaps in next and persists it, restoring the previous list if the write fails.
func (s *FileTaskStore) commit(next []models.Task) error {
	prev := s.tasks
	s.tasks = next
	if err := s.writeFile(); err != nil {
		s.tasks = prev
		return err
	}
	return nil
}

// writeFile writes the list to a temporary file and renames it over the data file.
func (s *FileTaskStore) writeFile() error {
	data, err := encodeTaskList(s.tasks)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrWrite, err)
	}

	tempPath := s.filePath + tempSuffix
	if err := afero.WriteFile(s.fs, tempPath, data, filePerm); err != nil {
		return fmt.Errorf("%w: write %s: %w", ErrWrite, tempPath, err)
	}
	if err := s.fs.Rename(tempPath, s.filePath); err != nil {
		_ = s.fs.Remove(tempPath)
		return fmt.Errorf("%w: replace %s: %w", ErrWrite, s.filePath, err)
	}
	return nil
}

// backupCorrupt moves unreadable content aside so a reset never loses it.
// Blank files have nothing worth keeping and are left for the reset to overwrite.
func (s *FileTaskStore) backupCorrupt(data []byte) (string, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return "", nil
	}
	backupPath, err := s.freeBackupPath()
	if err != nil {
		return "", err
	}
	if err := s.fs.Rename(s.filePath, backupPath); err != nil {
		return "", fmt.Errorf("%w: back up corrupted %s: %w", ErrWrite, s.filePath, err)
	}
	return backupPath, nil
}

// freeBackupPath returns <file>.corrupt-<timestamp>, adding -1, -2, ... when
// earlier backups from the same second already exist.
func (s *FileTaskStore) freeBackupPath() (string, error) {
	base := s.filePath + corruptSuffix + s.now().Format("20060102150405")
	candidate := base
	for n := 1; ; n++ {
		exists, err := afero.Exists(s.fs, candidate)
		if err != nil {
			return "", fmt.Errorf("%w: check backup %s: %w", ErrWrite, candidate, err)
		}
		if !exists {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s-%d", base, n)
	}
}
