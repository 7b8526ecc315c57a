/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package cmd

import (
	"strings"

	"github.com/josephgoksu/task-cli/internal/app"
	"github.com/spf13/cobra"
)

// addCmd represents the add command
var addCmd = &cobra.Command{
	Use:   "add <description>",
	Short: "Add a new task",
	Long: `Add a new task with status 'todo'. The task gets the next free ID.

Examples:
  task-cli add "Buy groceries"
  task-cli add Read a book`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAdd,
}

func init() {
	rootCmd.AddCommand(addCmd)
}

func runAdd(cmd *cobra.Command, args []string) error {
	description := strings.Join(args, " ")
	return runTaskOp(cmd, func(a *app.TaskApp) (*app.TaskResult, error) {
		return a.Add(description)
	})
}
