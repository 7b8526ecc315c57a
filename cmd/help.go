package cmd

import (
	"github.com/josephgoksu/task-cli/internal/ui"
	"github.com/spf13/cobra"
)

// helpCmd replaces cobra's default help command. Without arguments it prints
// the command reference; with a command name it shows that command's usage.
var helpCmd = &cobra.Command{
	Use:   "help [command]",
	Short: "Show available commands",
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			newPrinter(cmd).Decorated(ui.HelpText(false))
			return nil
		}
		target, _, err := cmd.Root().Find(args)
		if err != nil || target == cmd.Root() {
			newPrinter(cmd).Decorated(ui.HelpText(false))
			return nil
		}
		return target.Help()
	},
}
