package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// TaskStatus represents the possible statuses of a task.
type TaskStatus string

const (
	StatusTodo       TaskStatus = "todo"
	StatusInProgress TaskStatus = "in-progress"
	StatusDone       TaskStatus = "done"
)

// TimestampLayout is the layout used for created_at and updated_at.
const TimestampLayout = time.RFC3339

// Statuses lists every valid status in display order.
var Statuses = []TaskStatus{StatusTodo, StatusInProgress, StatusDone}

// StatusNames returns the statuses as plain strings, e.g. for cobra ValidArgs.
func StatusNames() []string {
	names := make([]string, len(Statuses))
	for i, s := range Statuses {
		names[i] = string(s)
	}
	return names
}

// ParseStatus converts user input into a TaskStatus.
func ParseStatus(s string) (TaskStatus, error) {
	status := TaskStatus(strings.TrimSpace(s))
	if !status.Valid() {
		return "", fmt.Errorf("invalid status %q: must be one of %s", s, strings.Join(StatusNames(), ", "))
	}
	return status, nil
}

// Valid reports whether s is one of the known statuses.
func (s TaskStatus) Valid() bool {
	switch s {
	case StatusTodo, StatusInProgress, StatusDone:
		return true
	}
	return false
}

// Task represents a single tracked to-do item.
// Timestamps are kept as strings so files written with empty timestamps round-trip unchanged.
type Task struct {
	ID          int        `json:"id" yaml:"id" toml:"id" validate:"required,min=1"`
	Description string     `json:"description" yaml:"description" toml:"description" validate:"required"`
	Status      TaskStatus `json:"status" yaml:"status" toml:"status" validate:"required,oneof=todo in-progress done"`
	CreatedAt   string     `json:"created_at" yaml:"created_at" toml:"created_at" validate:"omitempty,datetime=2006-01-02T15:04:05Z07:00"`
	UpdatedAt   string     `json:"updated_at" yaml:"updated_at" toml:"updated_at" validate:"omitempty,datetime=2006-01-02T15:04:05Z07:00"`
}

// global validator instance
var validate *validator.Validate

func init() {
	validate = validator.New()
}

// ValidateStruct performs validation on any struct that has validation tags.
func ValidateStruct(s interface{}) error {
	if validate == nil {
		validate = validator.New()
	}
	err := validate.Struct(s)
	if err != nil {
		validationErrors, ok := err.(validator.ValidationErrors)
		if !ok {
			return err
		}
		var errorMessages []string
		for _, e := range validationErrors {
			errorMessages = append(errorMessages, fmt.Sprintf("field '%s' failed rule '%s' (value: '%v')", e.StructNamespace(), e.Tag(), e.Value()))
		}
		return fmt.Errorf("%s", strings.Join(errorMessages, "; "))
	}
	return nil
}

// NewTask creates a todo task stamped with the given time.
func NewTask(id int, description string, now time.Time) Task {
	stamp := now.UTC().Format(TimestampLayout)
	return Task{
		ID:          id,
		Description: description,
		Status:      StatusTodo,
		CreatedAt:   stamp,
		UpdatedAt:   stamp,
	}
}

// Touch refreshes UpdatedAt.
func (t *Task) Touch(now time.Time) {
	t.UpdatedAt = now.UTC().Format(TimestampLayout)
}

// String renders the task the way list output shows it.
func (t Task) String() string {
	return fmt.Sprintf("[%d] %s - %s", t.ID, t.Description, t.Status)
}
