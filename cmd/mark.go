package cmd

import (
	"fmt"

	"github.com/josephgoksu/task-cli/internal/app"
	"github.com/josephgoksu/task-cli/models"
	"github.com/spf13/cobra"
)

// newMarkCmd builds a command that moves a task to status.
func newMarkCmd(status models.TaskStatus) *cobra.Command {
	return &cobra.Command{
		Use:   fmt.Sprintf("mark-%s <id>", status),
		Short: fmt.Sprintf("Mark a task as %s", status),
		Long: fmt.Sprintf(`Move the task with the given ID to %[1]s.

Place '--' before an ID that starts with a dash:
  task-cli mark-%[1]s -- -1`, status),
		Args:  cobra.MatchAll(cobra.ExactArgs(1), idArg(0)),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := parseID(args[0])
			return runTaskOp(cmd, func(a *app.TaskApp) (*app.TaskResult, error) {
				return a.Mark(id, status)
			})
		},
	}
}

var (
	markInProgressCmd = newMarkCmd(models.StatusInProgress)
	markDoneCmd       = newMarkCmd(models.StatusDone)
)

func init() {
	rootCmd.AddCommand(markInProgressCmd, markDoneCmd)
}
