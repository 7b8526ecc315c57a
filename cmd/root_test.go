package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/josephgoksu/task-cli/internal/exitcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCmd_NoArgsPrintsHelp(t *testing.T) {
	setupCmdTest(t)

	res := run(t)
	assert.Equal(t, exitcode.Success, res.code)
	assert.Contains(t, res.stdout, "mark-in-progress ID")
	assert.Contains(t, res.stdout, "Start an interactive session")
	assert.Empty(t, res.stderr)
}

func TestRootCmd_UnknownCommand(t *testing.T) {
	setupCmdTest(t)

	res := run(t, "frob", "it")
	assert.Equal(t, exitcode.UsageError, res.code)
	assert.Empty(t, res.stdout)
	assert.Contains(t, res.stderr, "⚠️ Unknown command: frob")
	assert.Contains(t, res.stderr, "Commands Reference")
}

func TestRootCmd_UnknownFlag(t *testing.T) {
	setupCmdTest(t)

	res := run(t, "list", "--bogus")
	assert.Equal(t, exitcode.UsageError, res.code)
	assert.Contains(t, res.stderr, "unknown flag: --bogus")
}

func TestHelpCmd(t *testing.T) {
	setupCmdTest(t)

	res := run(t, "help")
	assert.Equal(t, exitcode.Success, res.code)
	assert.Contains(t, res.stdout, "list in-progress")

	res = run(t, "help", "list")
	assert.Equal(t, exitcode.Success, res.code)
	assert.Contains(t, res.stdout, "task-cli list --format json")
	assert.Contains(t, res.stdout, "--format")

	res = run(t, "help", "nonsense")
	assert.Equal(t, exitcode.Success, res.code)
	assert.Contains(t, res.stdout, "mark-done ID")
}

func TestStartCmd(t *testing.T) {
	setupCmdTest(t)

	res := run(t, "start")
	assert.Equal(t, exitcode.Success, res.code)
	assert.NotEmpty(t, strings.TrimSpace(res.stdout))
}

func TestVersionCmd(t *testing.T) {
	setupCmdTest(t)

	res := run(t, "version")
	assert.Equal(t, exitcode.Success, res.code)
	assert.Equal(t, "task-cli version "+GetVersion()+"\n", res.stdout)
}

func TestInteractiveCmd_PlainSession(t *testing.T) {
	fs := setupCmdTest(t)

	input := strings.NewReader("add Buy groceries\nmark-done 1\nlist done\ndelete 9\nfrob\nexit\nadd never runs\n")
	res := executeCommand(t, input, "interactive")
	require.Equal(t, exitcode.Success, res.code, res.stderr)

	out := res.stdout
	assert.Contains(t, out, "Task Manager CLI - interactive mode")
	assert.Contains(t, out, "prompt> ")
	assert.Contains(t, out, "✅ Task added successfully (ID: 1)")
	assert.Contains(t, out, "✅ Task 1 marked as done.")
	assert.Contains(t, out, "[1] Buy groceries - done")
	assert.Contains(t, out, "⚠️ No task found with ID=9")
	assert.Contains(t, out, "Unknown command: frob")
	assert.True(t, strings.HasSuffix(out, "👋 Goodbye!\n"))

	tasks := readTasks(t, fs, "tasks.json")
	require.Len(t, tasks, 1, "input after exit is not executed")
}

func TestInteractiveCmd_EndOfInput(t *testing.T) {
	setupCmdTest(t)

	res := executeCommand(t, strings.NewReader("add Walk the dog\n"), "shell")
	assert.Equal(t, exitcode.Success, res.code)
	assert.Contains(t, res.stdout, "Task added successfully (ID: 1)")
	assert.Contains(t, res.stdout, "Goodbye!")
}

func TestInteractiveCmd_RejectsArgs(t *testing.T) {
	setupCmdTest(t)

	res := run(t, "interactive", "now")
	assert.Equal(t, exitcode.UsageError, res.code)
}

func TestVersionCmd_VerboseListsCrashLogs(t *testing.T) {
	setupCmdTest(t)
	crashDir := t.TempDir()
	require.NoError(t, os.WriteFile(".task-cli.yaml", []byte("log:\n  crashDir: "+crashDir+"\n"), 0o644))

	res := run(t, "--verbose", "version")
	assert.Equal(t, exitcode.Success, res.code)
	assert.Contains(t, res.stdout, "crash logs: 0 in "+filepath.Join(crashDir, "crash_logs"))
}
