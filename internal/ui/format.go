package ui

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/josephgoksu/task-cli/models"
	"gopkg.in/yaml.v3"
)

// Format selects how `list` renders tasks.
type Format string

const (
	FormatText  Format = "text"
	FormatTable Format = "table"
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
	FormatTOML  Format = "toml"
)

// Formats lists every supported format.
var Formats = []Format{FormatText, FormatTable, FormatJSON, FormatYAML, FormatTOML}

// ParseFormat validates a --format value.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	if slices.Contains(Formats, f) {
		return f, nil
	}
	names := make([]string, len(Formats))
	for i, v := range Formats {
		names[i] = string(v)
	}
	return "", fmt.Errorf("unsupported format %q: must be one of %s", s, strings.Join(names, ", "))
}

// Structured reports whether f is a machine-readable format.
func (f Format) Structured() bool {
	return f == FormatJSON || f == FormatYAML || f == FormatTOML
}

// tomlDocument wraps the list because a TOML document must be a table.
type tomlDocument struct {
	Tasks []models.Task `toml:"tasks"`
}

// EncodeTasks writes tasks to w in a structured format. An empty list is
// still a valid document.
func EncodeTasks(w io.Writer, tasks []models.Task, f Format) error {
	if tasks == nil {
		tasks = []models.Task{}
	}
	switch f {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetEscapeHTML(false)
		enc.SetIndent("", "  ")
		return enc.Encode(tasks)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(tasks); err != nil {
			return err
		}
		return enc.Close()
	case FormatTOML:
		return toml.NewEncoder(w).Encode(tomlDocument{Tasks: tasks})
	default:
		return fmt.Errorf("format %q is not a structured format", f)
	}
}
