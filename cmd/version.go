package cmd

import (
	"fmt"

	"github.com/josephgoksu/task-cli/internal/logger"
	"github.com/spf13/cobra"
)

// versionCmd prints the application version. With --verbose it also reports
// where crash logs are kept.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "task-cli version %s\n", GetVersion())
		if !GetConfig().Verbose {
			return nil
		}

		logs, err := logger.ListCrashLogs()
		if err != nil {
			LogError("list crash logs", err)
		}
		fmt.Fprintf(out, "crash logs: %d in %s\n", len(logs), logger.CrashDir())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
