// Package exitcode defines exit codes for the CLI.
package exitcode

// Exit codes returned by task-cli.
const (
	// Success indicates successful completion.
	Success = 0

	// DirError indicates the data directory could not be created.
	DirError = 1

	// FileError indicates the configuration file could not be read or is invalid.
	FileError = 2

	// DBReadError indicates the task file could not be read.
	DBReadError = 3

	// DBWriteError indicates the task file could not be written.
	DBWriteError = 4

	// JSONError indicates tasks could not be encoded for output.
	JSONError = 5

	// IDError indicates no task exists with the requested id.
	IDError = 6

	// UsageError indicates a malformed invocation or an unknown command.
	UsageError = 64
)

var messages = map[int]string{
	DirError:     "Configuration directory error",
	FileError:    "Configuration file error",
	DBReadError:  "Database read error",
	DBWriteError: "Database write error",
	JSONError:    "Invalid JSON format",
	IDError:      "Task ID not found",
	UsageError:   "Invalid usage",
}

// Message returns a short description of code, or "" for Success and unknown codes.
func Message(code int) string {
	return messages[code]
}
