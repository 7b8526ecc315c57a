package ui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/josephgoksu/task-cli/models"
)

// Table renders data in a compact aligned table format.
type Table struct {
	Headers  []string
	Rows     [][]string
	MaxWidth int // Max width per column (0 = auto)
}

// TaskTable builds the table used by `list --format table`.
func TaskTable(tasks []models.Task) *Table {
	t := &Table{
		Headers:  []string{"ID", "Description", "Status", "Updated"},
		MaxWidth: 60,
	}
	for _, task := range tasks {
		t.Rows = append(t.Rows, []string{
			strconv.Itoa(task.ID),
			task.Description,
			string(task.Status),
			task.UpdatedAt,
		})
	}
	return t
}

// ColumnWidths calculates column widths in terminal cells.
func (t *Table) ColumnWidths() []int {
	widths := make([]int, len(t.Headers))

	for i, h := range t.Headers {
		widths[i] = lipgloss.Width(h)
	}

	for _, row := range t.Rows {
		for i, cell := range row {
			if i < len(widths) {
				widths[i] = max(widths[i], lipgloss.Width(cell))
			}
		}
	}

	if t.MaxWidth > 0 {
		for i := range widths {
			widths[i] = min(widths[i], t.MaxWidth)
		}
	}

	return widths
}

// tableGlyphs are the rule and truncation marks drawn around the cells.
type tableGlyphs struct {
	rule     string
	ellipsis string
}

var (
	unicodeGlyphs = tableGlyphs{rule: "─", ellipsis: "…"}
	asciiGlyphs   = tableGlyphs{rule: "-", ellipsis: "..."}
)

// Render outputs the table using styles from s. With ascii set, the rule
// and truncation marks are drawn with plain ASCII characters.
func (t *Table) Render(s Styles, ascii bool) string {
	if len(t.Headers) == 0 {
		return ""
	}
	g := unicodeGlyphs
	if ascii {
		g = asciiGlyphs
	}

	widths := t.ColumnWidths()
	var sb strings.Builder

	headerStyle := s.Primary.Bold(true)

	var headerCells []string
	for i, h := range t.Headers {
		headerCells = append(headerCells, headerStyle.Render(padRight(h, widths[i])))
	}
	sb.WriteString(" " + strings.TrimRight(strings.Join(headerCells, "  "), " ") + "\n")

	var sepParts []string
	for _, w := range widths {
		sepParts = append(sepParts, s.Subtle.Render(strings.Repeat(g.rule, w)))
	}
	sb.WriteString(" " + strings.Join(sepParts, g.rule+g.rule) + "\n")

	for _, row := range t.Rows {
		var cells []string
		for i := range t.Headers {
			val := ""
			if i < len(row) {
				val = truncateCells(row[i], widths[i], g.ellipsis)
			}
			cells = append(cells, padRight(val, widths[i]))
		}
		sb.WriteString(" " + strings.TrimRight(strings.Join(cells, "  "), " ") + "\n")
	}

	return sb.String()
}

// truncateCells shortens s to at most width cells, marking the cut with ellipsis.
func truncateCells(s string, width int, ellipsis string) string {
	if lipgloss.Width(s) <= width {
		return s
	}
	markWidth := lipgloss.Width(ellipsis)
	if width <= markWidth {
		return ellipsis
	}
	runes := []rune(s)
	for len(runes) > 0 && lipgloss.Width(string(runes))+markWidth > width {
		runes = runes[:len(runes)-1]
	}
	return string(runes) + ellipsis
}

// padRight pads a string to the specified width in cells.
func padRight(s string, width int) string {
	w := lipgloss.Width(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}
