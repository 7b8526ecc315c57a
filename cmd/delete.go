/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package cmd

import (
	"github.com/josephgoksu/task-cli/internal/app"
	"github.com/spf13/cobra"
)

// deleteCmd represents the delete command
var deleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a task by ID",
	Long: `Delete the task with the given ID.

Place '--' before an ID that starts with a dash:
  task-cli delete -- -1`,
	Args:  cobra.MatchAll(cobra.ExactArgs(1), idArg(0)),
	RunE: func(cmd *cobra.Command, args []string) error {
		id := parseID(args[0])
		return runTaskOp(cmd, func(a *app.TaskApp) (*app.TaskResult, error) {
			return a.Delete(id)
		})
	},
}

func init() {
	rootCmd.AddCommand(deleteCmd)
}
