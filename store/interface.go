package store

import (
	"errors"

	"github.com/josephgoksu/task-cli/models"
)

// Errors returned by store implementations. Lookups of unknown ids are not errors;
// the id-based operations report them through their boolean result.
var (
	ErrInvalidTask = errors.New("invalid task")
	ErrDataDir     = errors.New("data directory error")
	ErrRead        = errors.New("task file read error")
	ErrWrite       = errors.New("task file write error")
)

// TaskStore defines the contract for task persistence.
// Every mutating method persists the full task list before returning.
type TaskStore interface {
	// Load reads the task list from the backing file. A missing file yields an
	// empty list and a freshly written file; a corrupted file is backed up and
	// reset the same way. Only genuine I/O failures are returned as errors.
	Load() ([]models.Task, error)

	// Save replaces the task list and overwrites the backing file.
	Save(tasks []models.Task) error

	// Add appends a new todo task and returns it with its assigned id.
	Add(description string) (models.Task, error)

	// Update replaces the description of the first task with the given id.
	// It returns false when no task matches.
	Update(id int, description string) (bool, error)

	// Delete removes every task with the given id.
	// It returns false when nothing was removed.
	Delete(id int) (bool, error)

	// Mark sets the status of the first task with the given id.
	// It returns false when no task matches.
	Mark(id int, status models.TaskStatus) (bool, error)

	// List returns the tasks in stored order, optionally filtered by status.
	// An empty status means no filter.
	List(status models.TaskStatus) ([]models.Task, error)

	// Path returns the backing file path.
	Path() string
}
