package cmd

import (
	"errors"
	"fmt"
	"io"

	"github.com/josephgoksu/task-cli/internal/exitcode"
	"github.com/josephgoksu/task-cli/store"
	"github.com/josephgoksu/task-cli/types"
	"github.com/spf13/viper"
)

// PrintError prints an error message without exiting, allowing for recovery.
// It prints a user-friendly message by default. If the --verbose flag is set,
// it prints the full technical error.
func PrintError(w io.Writer, userMsg string, technicalErr error) {
	if viper.GetBool("verbose") && technicalErr != nil {
		// In verbose mode, print the detailed, underlying technical error.
		fmt.Fprintf(w, "Error: %v\n", technicalErr)
	} else {
		// By default, print the clean, user-friendly message.
		fmt.Fprintln(w, userMsg)
	}
}

// LogError logs an error at debug level, so it only shows with --verbose.
func LogError(msg string, err error) {
	if err != nil {
		GetLogger().Debug(msg, "err", err)
	} else {
		GetLogger().Debug(msg)
	}
}

// storeError converts a store or app error into a CLIError with the matching exit code.
func storeError(err error) error {
	if err == nil {
		return nil
	}
	LogError("task operation failed", err)

	var code int
	switch {
	case errors.Is(err, store.ErrInvalidTask):
		return types.NewCLIError(exitcode.UsageError, "Invalid task: the description cannot be empty.", err)
	case errors.Is(err, store.ErrDataDir):
		code = exitcode.DirError
	case errors.Is(err, store.ErrRead):
		code = exitcode.DBReadError
	case errors.Is(err, store.ErrWrite):
		code = exitcode.DBWriteError
	default:
		code = exitcode.DirError
	}
	return types.NewCLIError(code, exitcode.Message(code), err)
}
