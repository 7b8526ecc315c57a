package logger

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"runtime/debug"
	"strings"
	"sync"
	"time"

	"github.com/spf13/afero"
)

const (
	// CrashLogDir is the directory for crash logs relative to the base path.
	CrashLogDir = "crash_logs"

	// MaxCrashLogs is how many crash logs survive a prune.
	MaxCrashLogs = 10

	maxInputLen      = 500
	crashFilePrefix  = "crash_"
	crashFileExt     = ".log"
	crashStampLayout = "20060102_150405.000"
)

// crashState is what the running command has told the reporter about itself.
type crashState struct {
	baseDir   string
	version   string
	command   string
	lastInput string
}

// crashReporter turns a recovered panic into a report file.
type crashReporter struct {
	mu    sync.RWMutex
	state crashState
	fs    afero.Fs
	now   func() time.Time
}

func newCrashReporter(fsys afero.Fs) *crashReporter {
	return &crashReporter{fs: fsys, now: time.Now}
}

var reporter = newCrashReporter(afero.NewOsFs())

func (r *crashReporter) set(fn func(*crashState)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	fn(&r.state)
}

func (r *crashReporter) snapshot() crashState {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.state
}

// SetBasePath sets the directory that holds crash_logs. Empty means the OS temp dir.
func SetBasePath(path string) { reporter.set(func(s *crashState) { s.baseDir = path }) }

// SetVersion records the application version.
func SetVersion(version string) { reporter.set(func(s *crashState) { s.version = version }) }

// SetCommand records the command being executed.
func SetCommand(cmd string) { reporter.set(func(s *crashState) { s.command = cmd }) }

// SetLastInput records the last interactive input line, trimmed and capped.
func SetLastInput(input string) {
	input = strings.TrimSpace(input)
	if len(input) > maxInputLen {
		input = input[:maxInputLen] + "... [truncated]"
	}
	reporter.set(func(s *crashState) { s.lastInput = input })
}

// CrashDir returns the directory crash logs are written to.
func CrashDir() string { return reporter.dir() }

// ListCrashLogs returns the crash log paths, oldest first.
func ListCrashLogs() ([]string, error) {
	return reporter.list(reporter.dir())
}

// HandlePanic recovers a panic, saves a crash report and exits with status 1.
//
//	defer logger.HandlePanic()
func HandlePanic() {
	v := recover()
	if v == nil {
		return
	}
	os.Exit(reporter.handle(v, debug.Stack(), os.Stderr))
}

// CrashReport is the content of one crash log.
type CrashReport struct {
	Time      time.Time
	Version   string
	Command   string
	GoVersion string
	Platform  string
	Panic     string
	Stack     string
	LastInput string
}

// WriteTo renders the report as plain text.
func (c CrashReport) WriteTo(w io.Writer) (int64, error) {
	var b bytes.Buffer
	title := Prefix + " crash report"
	fmt.Fprintf(&b, "%s\n%s\n", title, strings.Repeat("=", len(title)))
	fmt.Fprintf(&b, "time:     %s\n", c.Time.Format(time.RFC3339))
	fmt.Fprintf(&b, "version:  %s\n", c.Version)
	fmt.Fprintf(&b, "command:  %s\n", c.Command)
	fmt.Fprintf(&b, "runtime:  %s %s\n", c.GoVersion, c.Platform)

	writeSection(&b, "panic", c.Panic)
	writeSection(&b, "stack", c.Stack)
	if c.LastInput != "" {
		writeSection(&b, "last input", c.LastInput)
	}
	return b.WriteTo(w)
}

// writeSection writes a titled block with body indented by four spaces.
func writeSection(b *bytes.Buffer, title, body string) {
	fmt.Fprintf(b, "\n%s:\n", title)
	for _, line := range strings.Split(strings.TrimRight(body, "\n"), "\n") {
		if line == "" {
			b.WriteString("\n")
			continue
		}
		b.WriteString("    " + line + "\n")
	}
}

func (r *crashReporter) report(v any, stack []byte) CrashReport {
	s := r.snapshot()
	return CrashReport{
		Time:      r.now(),
		Version:   s.version,
		Command:   s.command,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
		Panic:     fmt.Sprint(v),
		Stack:     string(stack),
		LastInput: s.lastInput,
	}
}

// handle saves the report for v and tells the user where it went. It
// returns the exit status.
func (r *crashReporter) handle(v any, stack []byte, w io.Writer) int {
	l := New(w, DefaultOptions())
	rep := r.report(v, stack)

	path, err := r.save(rep)
	if err != nil {
		l.Error("could not write crash log", "err", err)
		fmt.Fprintf(w, "panic: %s\n\n%s\n", rep.Panic, rep.Stack)
		return 1
	}
	if err := r.prune(filepath.Dir(path)); err != nil {
		l.Warn("could not prune old crash logs", "err", err)
	}

	fmt.Fprintf(w, "\n%s encountered an unexpected error.\n", Prefix)
	fmt.Fprintf(w, "A crash log has been saved to:\n  %s\n\n", path)
	return 1
}

func (r *crashReporter) dir() string {
	base := r.snapshot().baseDir
	if base == "" {
		base = filepath.Join(os.TempDir(), Prefix)
	}
	return filepath.Join(base, CrashLogDir)
}

// path returns the log file name for a crash at t. Millisecond stamps keep
// names unique and in chronological order.
func (r *crashReporter) path(t time.Time) string {
	return filepath.Join(r.dir(), crashFilePrefix+t.Format(crashStampLayout)+crashFileExt)
}

func (r *crashReporter) save(rep CrashReport) (string, error) {
	dir := r.dir()
	if err := r.fs.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create crash log dir: %w", err)
	}

	var buf bytes.Buffer
	if _, err := rep.WriteTo(&buf); err != nil {
		return "", err
	}
	path := r.path(rep.Time)
	if err := afero.WriteFile(r.fs, path, buf.Bytes(), 0o644); err != nil {
		return "", fmt.Errorf("write crash log: %w", err)
	}
	return path, nil
}

// prune removes the oldest logs in dir until MaxCrashLogs remain.
func (r *crashReporter) prune(dir string) error {
	logs, err := r.list(dir)
	if err != nil {
		return err
	}
	if len(logs) <= MaxCrashLogs {
		return nil
	}
	for _, path := range logs[:len(logs)-MaxCrashLogs] {
		if err := r.fs.Remove(path); err != nil {
			return fmt.Errorf("remove old crash log %s: %w", filepath.Base(path), err)
		}
	}
	return nil
}

// list returns crash logs in dir sorted by name, which is also by time.
func (r *crashReporter) list(dir string) ([]string, error) {
	entries, err := afero.ReadDir(r.fs, dir)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var logs []string
	for _, e := range entries {
		name := e.Name()
		if !e.IsDir() && strings.HasPrefix(name, crashFilePrefix) && strings.HasSuffix(name, crashFileExt) {
			logs = append(logs, filepath.Join(dir, name))
		}
	}
	return logs, nil
}
