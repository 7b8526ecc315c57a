/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package cmd

import (
	"github.com/josephgoksu/task-cli/internal/exitcode"
	"github.com/josephgoksu/task-cli/internal/ui"
	"github.com/josephgoksu/task-cli/models"
	"github.com/josephgoksu/task-cli/types"
	"github.com/spf13/cobra"
)

var listFormat string

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:   "list [todo|in-progress|done]",
	Short: "List tasks (optionally filter by status)",
	Long: `List tasks in the order they were added.

Without arguments, lists all tasks.
With a status argument, lists only tasks with that status.

Examples:
  task-cli list                # All tasks
  task-cli list done           # Only finished tasks
  task-cli list --format json  # Machine-readable output`,
	ValidArgs: models.StatusNames(),
	Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
	RunE:      runList,
}

func init() {
	rootCmd.AddCommand(listCmd)

	listCmd.Flags().StringVar(&listFormat, "format", string(ui.FormatText), "output format: text, table, json, yaml or toml")
}

func runList(cmd *cobra.Command, args []string) error {
	format, err := ui.ParseFormat(listFormat)
	if err != nil {
		return types.NewCLIError(exitcode.UsageError, err.Error(), nil)
	}

	var status models.TaskStatus
	if len(args) > 0 {
		status = models.TaskStatus(args[0])
	}

	a, err := newTaskApp()
	if err != nil {
		return err
	}
	res, err := a.List(status)
	if err != nil {
		return storeError(err)
	}

	p := newPrinter(cmd)
	switch {
	case format.Structured():
		if err := ui.EncodeTasks(cmd.OutOrStdout(), res.Tasks, format); err != nil {
			return types.NewCLIError(exitcode.JSONError, exitcode.Message(exitcode.JSONError), err)
		}
	case format == ui.FormatTable && len(res.Tasks) > 0:
		p.Table(ui.TaskTable(res.Tasks))
	default:
		p.Result(res)
	}
	return nil
}
