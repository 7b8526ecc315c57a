package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/josephgoksu/task-cli/models"
	"github.com/santhosh-tekuri/jsonschema/v5"
)

const taskListSchemaURL = "task-list.schema.json"

// taskListSchemaJSON describes the persisted document: a JSON array of task objects.
// Descriptions may be empty here so files written by older releases still load.
const taskListSchemaJSON = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "array",
  "items": {
    "type": "object",
    "required": ["id", "description", "status"],
    "properties": {
      "id": {"type": "integer", "minimum": 1},
      "description": {"type": "string"},
      "status": {"enum": ["todo", "in-progress", "done"]},
      "created_at": {"type": "string"},
      "updated_at": {"type": "string"}
    }
  }
}`

var taskListSchema = jsonschema.MustCompileString(taskListSchemaURL, taskListSchemaJSON)

// decodeTaskList parses and schema-checks a persisted task list.
func decodeTaskList(data []byte) ([]models.Task, error) {
	// jsonschema/v5 validates generic values; numbers must stay json.Number.
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var doc interface{}
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("parse task list: %w", err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parse task list: unexpected data after the document")
	}
	if err := taskListSchema.Validate(doc); err != nil {
		return nil, fmt.Errorf("task list does not match schema: %w", err)
	}

	var tasks []models.Task
	if err := json.Unmarshal(data, &tasks); err != nil {
		return nil, fmt.Errorf("decode task list: %w", err)
	}
	if tasks == nil {
		tasks = []models.Task{}
	}
	return tasks, nil
}

// encodeTaskList serializes tasks the way the file has always been written:
// a JSON array indented with four spaces, non-ASCII and HTML characters unescaped.
func encodeTaskList(tasks []models.Task) ([]byte, error) {
	if tasks == nil {
		tasks = []models.Task{}
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(tasks); err != nil {
		return nil, fmt.Errorf("encode task list: %w", err)
	}
	return buf.Bytes(), nil
}
