/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package cmd

import (
	"github.com/josephgoksu/task-cli/internal/ui"
	"github.com/spf13/cobra"
)

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Show greeting and quickstart guide",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		newPrinter(cmd).Decorated(ui.StartText)
	},
}

func init() {
	rootCmd.AddCommand(startCmd)
}
