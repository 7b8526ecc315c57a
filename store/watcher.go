package store

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/fsnotify/fsnotify"
	"github.com/josephgoksu/task-cli/internal/logger"
)

// Watcher invalidates a FileTaskStore whenever its data file changes on disk,
// so a long-lived session picks up edits made by other task-cli processes
// instead of overwriting them on its next save.
type Watcher struct {
	store   *FileTaskStore
	watcher *fsnotify.Watcher
	target  string
	log     *log.Logger

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewWatcher creates a watcher for s. The store must live on the OS filesystem.
func NewWatcher(s *FileTaskStore, l *log.Logger) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create fsnotify watcher: %w", err)
	}
	if l == nil {
		l = logger.Discard()
	}

	ctx, cancel := context.WithCancel(context.Background())
	return &Watcher{
		store:   s,
		watcher: fw,
		target:  filepath.Clean(s.Path()),
		log:     l,
		ctx:     ctx,
		cancel:  cancel,
	}, nil
}

// Start begins watching. The directory is watched rather than the file,
// because saves replace the file with a rename.
func (w *Watcher) Start() error {
	dir := filepath.Dir(w.target)
	if err := w.watcher.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}
	w.log.Debug("watching task file", "path", w.target)

	w.wg.Add(1)
	go w.eventLoop()
	return nil
}

// Stop stops the watcher and waits for its goroutine to finish.
func (w *Watcher) Stop() {
	w.cancel()
	_ = w.watcher.Close()
	w.wg.Wait()
}

func (w *Watcher) eventLoop() {
	defer w.wg.Done()

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handleEvent(event)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.log.Debug("watch error", "err", err)

		case <-w.ctx.Done():
			return
		}
	}
}

func (w *Watcher) handleEvent(event fsnotify.Event) {
	if filepath.Clean(event.Name) != w.target {
		return
	}
	if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
		return
	}
	w.log.Debug("task file changed on disk", "path", event.Name, "op", event.Op.String())
	w.store.Invalidate()
}
