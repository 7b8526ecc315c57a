package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// ExecFunc runs one input line and returns what it printed and whether the
// session should end.
type ExecFunc func(line string) (output string, exit bool)

// RunShell runs the terminal prompt until the user leaves.
func RunShell(exec ExecFunc, opts ...tea.ProgramOption) error {
	p := tea.NewProgram(NewShellModel(exec), opts...)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running interactive shell: %w", err)
	}
	return nil
}

// ShellModel is the bubbletea model behind the interactive prompt. Each
// submitted line is executed and its output printed above the prompt.
type ShellModel struct {
	textInput textinput.Model
	exec      ExecFunc
	history   []string
	histPos   int
	quitting  bool
}

// NewShellModel creates a focused prompt that runs lines through exec.
func NewShellModel(exec ExecFunc) ShellModel {
	ti := textinput.New()
	ti.Prompt = StylePrompt.Render(PromptText)
	ti.Placeholder = "help"
	ti.CharLimit = 1024
	ti.Focus()

	return ShellModel{
		textInput: ti,
		exec:      exec,
	}
}

// Quitting reports whether the session has ended.
func (m ShellModel) Quitting() bool {
	return m.quitting
}

// History returns the submitted non-empty lines, oldest first.
func (m ShellModel) History() []string {
	return m.history
}

func (m ShellModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m ShellModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyEnter:
			return m.submit()
		case tea.KeyCtrlC:
			m.quitting = true
			return m, tea.Quit
		case tea.KeyCtrlD:
			if m.textInput.Value() == "" {
				m.quitting = true
				return m, tea.Quit
			}
		case tea.KeyUp:
			m.recall(-1)
			return m, nil
		case tea.KeyDown:
			m.recall(1)
			return m, nil
		}
	}

	m.textInput, cmd = m.textInput.Update(msg)
	return m, cmd
}

func (m ShellModel) View() string {
	if m.quitting {
		return ""
	}
	return m.textInput.View() + "\n"
}

func (m ShellModel) submit() (tea.Model, tea.Cmd) {
	line := m.textInput.Value()
	m.textInput.Reset()

	cmds := []tea.Cmd{tea.Println(PromptText + line)}
	if strings.TrimSpace(line) != "" {
		m.history = append(m.history, line)
	}
	m.histPos = len(m.history)

	out, exit := m.exec(line)
	if out = strings.TrimRight(out, "\n"); out != "" {
		cmds = append(cmds, tea.Println(out))
	}
	if exit {
		m.quitting = true
		cmds = append(cmds, tea.Quit)
	}
	return m, tea.Sequence(cmds...)
}

// recall moves through history; moving past the newest entry clears the input.
func (m *ShellModel) recall(delta int) {
	if len(m.history) == 0 {
		return
	}
	m.histPos = min(max(m.histPos+delta, 0), len(m.history))
	if m.histPos == len(m.history) {
		m.textInput.SetValue("")
		return
	}
	m.textInput.SetValue(m.history[m.histPos])
	m.textInput.CursorEnd()
}
