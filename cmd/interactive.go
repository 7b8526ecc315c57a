/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package cmd

import (
	"bytes"
	"errors"
	"os"
	"os/signal"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/josephgoksu/task-cli/internal/app"
	"github.com/josephgoksu/task-cli/internal/shell"
	"github.com/josephgoksu/task-cli/internal/ui"
	"github.com/spf13/cobra"
)

var interactivePlain bool

// interactiveCmd represents the interactive command
var interactiveCmd = &cobra.Command{
	Use:   "interactive",
	Short: "Start an interactive task session",
	Long: `Interactive mode reads commands at a 'prompt>' prompt until you type
'exit' or 'quit', press Ctrl+C, or input ends.

Every task command works the same way as on the command line:
  prompt> add Buy groceries
  prompt> mark-done 1
  prompt> list done

On a terminal a line editor with history is used; pass --plain (or pipe input)
for a simple line-by-line loop.`,
	Aliases: []string{"shell", "repl"},
	Args:    cobra.NoArgs,
	RunE:    runInteractive,
}

func init() {
	rootCmd.AddCommand(interactiveCmd)

	interactiveCmd.Flags().BoolVar(&interactivePlain, "plain", false, "use the plain line loop even on a terminal")
}

func runInteractive(cmd *cobra.Command, args []string) error {
	s, err := GetStore()
	if err != nil {
		return err
	}
	if w := watchStore(s); w != nil {
		defer w.Stop()
	}
	a := app.NewTaskApp(app.NewContext(s, GetLogger()))

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	if interactivePlain || cmd.InOrStdin() != os.Stdin || !ui.IsInteractive() {
		return shell.New(a, newPrinter(cmd), GetLogger()).Run(ctx, cmd.InOrStdin())
	}

	out := cmd.OutOrStdout()
	p := newPrinter(cmd)
	p.Decorated(ui.BannerText)

	// Each line's output is buffered and handed to bubbletea, which prints it
	// above the prompt. Colors are chosen for the real terminal.
	var buf bytes.Buffer
	sh := shell.New(a, ui.NewPrinter(&buf, GetConfig().Output.EmojiEnabled(), ui.WithRenderer(lipgloss.NewRenderer(out))), GetLogger())
	err = ui.RunShell(func(line string) (string, bool) {
		buf.Reset()
		exit := sh.Execute(line)
		return buf.String(), exit
	}, tea.WithContext(ctx), tea.WithOutput(out))
	if err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		LogError("interactive shell failed", err)
		return err
	}

	p.Decorated(ui.FarewellText)
	return nil
}
