// Package shell implements the interactive read-eval loop over the task app.
package shell

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/josephgoksu/task-cli/internal/app"
	"github.com/josephgoksu/task-cli/internal/logger"
	"github.com/josephgoksu/task-cli/internal/ui"
	"github.com/josephgoksu/task-cli/models"
)

// Shell dispatches interactive command lines to a TaskApp.
// Bad input is reported and the session continues.
type Shell struct {
	app     *app.TaskApp
	printer *ui.Printer
	log     *log.Logger
}

// New creates a shell printing through p. A nil logger discards output.
func New(a *app.TaskApp, p *ui.Printer, l *log.Logger) *Shell {
	if l == nil {
		l = logger.Discard()
	}
	return &Shell{app: a, printer: p, log: l}
}

// Execute runs one input line. It reports whether the session should end.
func (s *Shell) Execute(line string) (exit bool) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false
	}
	logger.SetLastInput(line)

	name, args := fields[0], fields[1:]
	switch name {
	case "exit", "quit":
		return true
	case "help":
		s.printer.Decorated(ui.HelpText(true))
	case "start":
		s.printer.Decorated(ui.StartText)
	case "add":
		if len(args) == 0 {
			s.usage("add <description>")
			return false
		}
		s.report(s.app.Add(strings.Join(args, " ")))
	case "update":
		if len(args) < 2 {
			s.usage("update <id> <description>")
			return false
		}
		id, ok := s.parseID(args[0], "update <id> <description>")
		if !ok {
			return false
		}
		s.report(s.app.Update(id, strings.Join(args[1:], " ")))
	case "delete":
		if id, ok := s.singleID(args, "delete <id>"); ok {
			s.report(s.app.Delete(id))
		}
	case "mark-in-progress":
		if id, ok := s.singleID(args, "mark-in-progress <id>"); ok {
			s.report(s.app.Mark(id, models.StatusInProgress))
		}
	case "mark-done":
		if id, ok := s.singleID(args, "mark-done <id>"); ok {
			s.report(s.app.Mark(id, models.StatusDone))
		}
	case "list":
		s.list(args)
	default:
		s.printer.Warn(fmt.Sprintf("Unknown command: %s. Type 'help' to see available commands.", name))
	}
	return false
}

// Run reads lines from in until exit, end of input or ctx cancellation,
// printing the banner first and a farewell last.
func (s *Shell) Run(ctx context.Context, in io.Reader) error {
	s.printer.Decorated(ui.BannerText)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	lines := make(chan string)
	readErr := make(chan error, 1)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		readErr <- scanner.Err()
	}()

	out := s.printer.Writer()
	for {
		fmt.Fprint(out, ui.PromptText)

		select {
		case <-ctx.Done():
			fmt.Fprintln(out)
			s.log.Debug("interactive session interrupted")
			s.printer.Decorated(ui.FarewellText)
			return nil
		case line, ok := <-lines:
			if !ok {
				fmt.Fprintln(out)
				s.printer.Decorated(ui.FarewellText)
				select {
				case err := <-readErr:
					if err != nil {
						return fmt.Errorf("read input: %w", err)
					}
				default:
				}
				return nil
			}
			if s.Execute(line) {
				s.printer.Decorated(ui.FarewellText)
				return nil
			}
		}
	}
}

func (s *Shell) list(args []string) {
	const usage = "list [todo|in-progress|done]"
	if len(args) > 1 {
		s.usage(usage)
		return
	}
	var status models.TaskStatus
	if len(args) == 1 {
		parsed, err := models.ParseStatus(args[0])
		if err != nil {
			s.printer.Warn(fmt.Sprintf("Invalid status %q.", args[0]))
			s.usage(usage)
			return
		}
		status = parsed
	}
	s.report(s.app.List(status))
}

func (s *Shell) singleID(args []string, usage string) (int, bool) {
	if len(args) != 1 {
		s.usage(usage)
		return 0, false
	}
	return s.parseID(args[0], usage)
}

func (s *Shell) parseID(arg, usage string) (int, bool) {
	id, err := strconv.Atoi(arg)
	if err != nil {
		s.printer.Warn(fmt.Sprintf("Task ID must be a number, got %q.", arg))
		s.usage(usage)
		return 0, false
	}
	return id, true
}

func (s *Shell) usage(text string) {
	s.printer.Info("", "Usage: "+text)
}

func (s *Shell) report(res *app.TaskResult, err error) {
	if err != nil {
		s.log.Debug("command failed", "err", err)
		s.printer.Error(err.Error())
		return
	}
	s.printer.Result(res)
}
