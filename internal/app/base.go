// Package app provides the application layer that orchestrates task operations.
// It sits between the front ends and the store, so the one-shot commands and the
// interactive shell are thin adapters over the same implementation.
package app

import (
	"github.com/charmbracelet/log"
	"github.com/josephgoksu/task-cli/internal/logger"
	"github.com/josephgoksu/task-cli/store"
)

// Context holds shared dependencies for all app services.
type Context struct {
	Store  store.TaskStore
	Logger *log.Logger
}

// NewContext creates an app context. A nil logger discards output.
func NewContext(s store.TaskStore, l *log.Logger) *Context {
	if l == nil {
		l = logger.Discard()
	}
	return &Context{Store: s, Logger: l}
}
