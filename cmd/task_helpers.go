package cmd

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/josephgoksu/task-cli/internal/app"
	"github.com/josephgoksu/task-cli/internal/exitcode"
	"github.com/josephgoksu/task-cli/internal/ui"
	"github.com/josephgoksu/task-cli/store"
	"github.com/josephgoksu/task-cli/types"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// appFs is the filesystem the task store works on. Tests swap in a memory fs.
var appFs afero.Fs = afero.NewOsFs()

// newPrinter returns a printer for the command's stdout honoring the emoji setting.
func newPrinter(cmd *cobra.Command) *ui.Printer {
	return ui.NewPrinter(cmd.OutOrStdout(), GetConfig().Output.EmojiEnabled())
}

// GetStore initializes and loads the task store from the current configuration.
func GetStore() (store.TaskStore, error) {
	s := store.NewFileTaskStore(appFs, GetConfig().Data.File, store.WithLogger(GetLogger()))
	if _, err := s.Load(); err != nil {
		return nil, storeError(err)
	}
	return s, nil
}

// newTaskApp builds the task application over a freshly loaded store.
func newTaskApp() (*app.TaskApp, error) {
	s, err := GetStore()
	if err != nil {
		return nil, err
	}
	return app.NewTaskApp(app.NewContext(s, GetLogger())), nil
}

// watchStore keeps a long-running session in sync with changes other
// processes make to the task file. It returns nil when the store is not on
// disk or the watcher cannot start; the session then works without it.
func watchStore(s store.TaskStore) *store.Watcher {
	fileStore, ok := s.(*store.FileTaskStore)
	if _, onDisk := appFs.(*afero.OsFs); !ok || !onDisk {
		return nil
	}
	w, err := store.NewWatcher(fileStore, GetLogger())
	if err != nil {
		LogError("task file watcher unavailable", err)
		return nil
	}
	if err := w.Start(); err != nil {
		w.Stop()
		LogError("task file watcher unavailable", err)
		return nil
	}
	return w
}

// runTaskOp runs one operation and prints its result. A missing task is
// reported on stdout and turned into the IDError exit code.
func runTaskOp(cmd *cobra.Command, op func(*app.TaskApp) (*app.TaskResult, error)) error {
	a, err := newTaskApp()
	if err != nil {
		return err
	}
	res, err := op(a)
	if err != nil {
		return storeError(err)
	}
	newPrinter(cmd).Result(res)
	if res.Kind == app.KindNotFound {
		return types.NewCLIError(exitcode.IDError, "", nil)
	}
	return nil
}

// idArg validates that the positional argument at pos is an integer task id.
func idArg(pos int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if pos >= len(args) {
			return nil
		}
		if _, err := strconv.Atoi(args[pos]); err != nil {
			return fmt.Errorf("invalid task ID %q: must be an integer", args[pos])
		}
		return nil
	}
}

// parseID converts an argument already checked by idArg.
func parseID(arg string) int {
	id, _ := strconv.Atoi(arg)
	return id
}

// negativeIDHint returns a usage hint when err came from a numeric argument
// such as -1 that the flag parser took for a shorthand group.
func negativeIDHint(cmd *cobra.Command, err error) string {
	var notExist *pflag.NotExistError
	if !errors.As(err, &notExist) {
		return ""
	}
	group := notExist.GetSpecifiedShortnames()
	if group == "" {
		return ""
	}
	if _, convErr := strconv.Atoi(group); convErr != nil {
		return ""
	}
	return fmt.Sprintf("IDs starting with '-' must come after '--', e.g. task-cli %s -- -%s", cmd.Name(), group)
}
