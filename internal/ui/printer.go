package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/josephgoksu/task-cli/internal/app"
	"github.com/josephgoksu/task-cli/models"
)

// Printer writes human-readable output. Decorated messages (confirmations,
// warnings, banners, help) lose their non-ASCII symbols when emoji is off;
// task lines are printed as they are.
type Printer struct {
	out    io.Writer
	emoji  bool
	styles Styles
}

// PrinterOption configures a Printer.
type PrinterOption func(*printerConfig)

type printerConfig struct {
	renderer *lipgloss.Renderer
}

// WithRenderer makes the printer pick colors for r's output instead of its own writer.
// Used when output is buffered before it reaches the terminal.
func WithRenderer(r *lipgloss.Renderer) PrinterOption {
	return func(c *printerConfig) { c.renderer = r }
}

// NewPrinter creates a printer writing to w.
func NewPrinter(w io.Writer, emoji bool, opts ...PrinterOption) *Printer {
	cfg := printerConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.renderer == nil {
		cfg.renderer = lipgloss.NewRenderer(w)
	}
	return &Printer{
		out:    w,
		emoji:  emoji,
		styles: NewStyles(cfg.renderer),
	}
}

// Writer returns the underlying writer.
func (p *Printer) Writer() io.Writer {
	return p.out
}

// Styles returns the palette bound to this printer's renderer.
func (p *Printer) Styles() Styles {
	return p.styles
}

// Decorated prints text after applying the emoji policy.
func (p *Printer) Decorated(text string) {
	fmt.Fprintln(p.out, p.decorate(text))
}

// Success prints a confirmation.
func (p *Printer) Success(icon, msg string) {
	p.styled(p.styles.Success, icon, msg)
}

// Info prints a neutral notice.
func (p *Printer) Info(icon, msg string) {
	p.styled(p.styles.Subtle, icon, msg)
}

// Warn prints a warning.
func (p *Printer) Warn(msg string) {
	p.styled(p.styles.Warning, "⚠️", msg)
}

// Error prints an error.
func (p *Printer) Error(msg string) {
	p.styled(p.styles.Error, "❌", msg)
}

// Result prints the message for an operation result, or the task lines for a
// non-empty listing.
func (p *Printer) Result(res *app.TaskResult) {
	switch res.Kind {
	case app.KindAdded, app.KindMarked:
		p.Success("✅", res.Message)
	case app.KindUpdated:
		p.styled(p.styles.Primary, "✏️", res.Message)
	case app.KindDeleted:
		p.styled(p.styles.Primary, "🗑️", res.Message)
	case app.KindNotFound:
		p.Warn(res.Message)
	case app.KindListed:
		if len(res.Tasks) == 0 {
			p.Info("📂", res.Message)
			return
		}
		p.Tasks(res.Tasks)
	default:
		p.Decorated(res.Message)
	}
}

// Table prints t, falling back to ASCII rules and truncation marks when
// emoji is off.
func (p *Printer) Table(t *Table) {
	fmt.Fprint(p.out, t.Render(p.styles, !p.emoji))
}

// Tasks prints one `[id] description - status` line per task.
func (p *Printer) Tasks(tasks []models.Task) {
	for _, t := range tasks {
		fmt.Fprintf(p.out, "[%d] %s - %s\n", t.ID, t.Description, p.statusStyle(t.Status).Render(string(t.Status)))
	}
}

func (p *Printer) statusStyle(s models.TaskStatus) lipgloss.Style {
	switch s {
	case models.StatusDone:
		return p.styles.Done
	case models.StatusInProgress:
		return p.styles.Progress
	default:
		return p.styles.Todo
	}
}

func (p *Printer) styled(style lipgloss.Style, icon, msg string) {
	text := msg
	if icon != "" {
		text = icon + " " + msg
	}
	fmt.Fprintln(p.out, style.Render(p.decorate(text)))
}

func (p *Printer) decorate(text string) string {
	if p.emoji {
		return text
	}
	return strings.TrimRight(StripDecorations(text), " ")
}
