package app

import (
	"fmt"

	"github.com/josephgoksu/task-cli/models"
)

// ResultKind identifies which operation produced a TaskResult.
type ResultKind string

const (
	KindAdded    ResultKind = "added"
	KindUpdated  ResultKind = "updated"
	KindDeleted  ResultKind = "deleted"
	KindMarked   ResultKind = "marked"
	KindListed   ResultKind = "listed"
	KindNotFound ResultKind = "not_found"
)

// TaskResult contains the result of a task operation.
// This is the canonical response type used by both front ends.
type TaskResult struct {
	Kind    ResultKind    `json:"kind"`
	Success bool          `json:"success"`
	Message string        `json:"message,omitempty"`
	Task    *models.Task  `json:"task,omitempty"`
	Tasks   []models.Task `json:"tasks,omitempty"`
	ID      int           `json:"id,omitempty"`
}

// TaskApp provides task lifecycle operations.
// This is THE implementation - the CLI commands and the shell both call these methods.
type TaskApp struct {
	ctx *Context
}

// NewTaskApp creates a new task application service.
func NewTaskApp(ctx *Context) *TaskApp {
	return &TaskApp{ctx: ctx}
}

// Add creates a new todo task.
func (a *TaskApp) Add(description string) (*TaskResult, error) {
	task, err := a.ctx.Store.Add(description)
	if err != nil {
		return nil, fmt.Errorf("add task: %w", err)
	}
	a.ctx.Logger.Debug("task added", "id", task.ID)
	return &TaskResult{
		Kind:    KindAdded,
		Success: true,
		Message: fmt.Sprintf("Task added successfully (ID: %d)", task.ID),
		Task:    &task,
		ID:      task.ID,
	}, nil
}

// Update replaces the description of a task.
func (a *TaskApp) Update(id int, description string) (*TaskResult, error) {
	found, err := a.ctx.Store.Update(id, description)
	if err != nil {
		return nil, fmt.Errorf("update task %d: %w", id, err)
	}
	if !found {
		return notFound(id), nil
	}
	return &TaskResult{
		Kind:    KindUpdated,
		Success: true,
		Message: fmt.Sprintf("Task %d updated.", id),
		ID:      id,
	}, nil
}

// Delete removes a task.
func (a *TaskApp) Delete(id int) (*TaskResult, error) {
	found, err := a.ctx.Store.Delete(id)
	if err != nil {
		return nil, fmt.Errorf("delete task %d: %w", id, err)
	}
	if !found {
		return notFound(id), nil
	}
	return &TaskResult{
		Kind:    KindDeleted,
		Success: true,
		Message: fmt.Sprintf("Task %d deleted.", id),
		ID:      id,
	}, nil
}

// Mark sets the status of a task.
func (a *TaskApp) Mark(id int, status models.TaskStatus) (*TaskResult, error) {
	found, err := a.ctx.Store.Mark(id, status)
	if err != nil {
		return nil, fmt.Errorf("mark task %d: %w", id, err)
	}
	if !found {
		return notFound(id), nil
	}
	return &TaskResult{
		Kind:    KindMarked,
		Success: true,
		Message: fmt.Sprintf("Task %d marked as %s.", id, status),
		ID:      id,
	}, nil
}

// List returns tasks, optionally filtered by status. An empty result still succeeds.
func (a *TaskApp) List(status models.TaskStatus) (*TaskResult, error) {
	tasks, err := a.ctx.Store.List(status)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	res := &TaskResult{
		Kind:    KindListed,
		Success: true,
		Tasks:   tasks,
	}
	if len(tasks) == 0 {
		res.Message = "No tasks found."
	}
	return res, nil
}

func notFound(id int) *TaskResult {
	return &TaskResult{
		Kind:    KindNotFound,
		Success: false,
		Message: fmt.Sprintf("No task found with ID=%d", id),
		ID:      id,
	}
}
