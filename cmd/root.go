/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package cmd

import (
	"errors"
	"fmt"

	"github.com/josephgoksu/task-cli/internal/exitcode"
	"github.com/josephgoksu/task-cli/internal/logger"
	"github.com/josephgoksu/task-cli/internal/ui"
	"github.com/josephgoksu/task-cli/types"
	"github.com/spf13/cobra"
)

var (
	// cfgFile is the path to the configuration file.
	cfgFile string
	// verbose enables verbose output.
	verbose bool
	// dataFile overrides the task file path.
	dataFile string
	// version is the application version.
	version = "1.0.0"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "task-cli",
	Short: "📌 Task Manager CLI - Manage your tasks directly from the terminal",
	Long: `task-cli tracks short text tasks with the statuses todo, in-progress and done.
Tasks are stored in a JSON file (tasks.json in the working directory by default).

Run a single command, or start an interactive session with 'task-cli interactive'.`,
	Args:              cobra.ArbitraryArgs,
	SilenceErrors:     true,
	SilenceUsage:      true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return InitConfig(cmd) },
	RunE: func(cmd *cobra.Command, args []string) error {
		p := newPrinter(cmd)
		// return help if no args are provided
		if len(args) == 0 {
			p.Decorated(ui.HelpText(false))
			return nil
		}

		errPrinter := ui.NewPrinter(cmd.ErrOrStderr(), GetConfig().Output.EmojiEnabled())
		errPrinter.Warn(fmt.Sprintf("Unknown command: %s", args[0]))
		errPrinter.Decorated(ui.HelpText(false))
		return types.NewCLIError(exitcode.UsageError, "", nil)
	},
}

// Execute runs the command tree and returns the process exit code.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() int {
	cmd, err := rootCmd.ExecuteC()
	if err == nil {
		return exitcode.Success
	}

	var cliErr *types.CLIError
	if errors.As(err, &cliErr) {
		if cliErr.Message != "" {
			PrintError(cmd.ErrOrStderr(), cliErr.Message, cliErr.Err)
		}
		return cliErr.Code
	}

	// Anything cobra rejects on its own (flags, argument validators) is a usage problem.
	fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
	if hint := negativeIDHint(cmd, err); hint != "" {
		fmt.Fprintln(cmd.ErrOrStderr(), hint)
	}
	fmt.Fprint(cmd.ErrOrStderr(), cmd.UsageString())
	return exitcode.UsageError
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (default is ./.task-cli.yaml or $HOME/.task-cli.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().StringVarP(&dataFile, "file", "f", "", "task file (default is tasks.json)")

	rootCmd.SetHelpCommand(helpCmd)
	logger.SetVersion(version)
}

// GetVersion returns the application version.
func GetVersion() string {
	return version
}
