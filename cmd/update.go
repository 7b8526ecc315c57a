/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package cmd

import (
	"strings"

	"github.com/josephgoksu/task-cli/internal/app"
	"github.com/spf13/cobra"
)

// updateCmd represents the update command
var updateCmd = &cobra.Command{
	Use:   "update <id> <description>",
	Short: "Update a task's description",
	Long: `Replace the description of the task with the given ID.

Example:
  task-cli update 1 "Buy groceries and cook dinner"

Place '--' before an ID that starts with a dash:
  task-cli update -- -1 "Buy groceries"`,
	Args: cobra.MatchAll(cobra.MinimumNArgs(2), idArg(0)),
	RunE: runUpdate,
}

func init() {
	rootCmd.AddCommand(updateCmd)
}

func runUpdate(cmd *cobra.Command, args []string) error {
	id := parseID(args[0])
	description := strings.Join(args[1:], " ")
	return runTaskOp(cmd, func(a *app.TaskApp) (*app.TaskResult, error) {
		return a.Update(id, description)
	})
}
