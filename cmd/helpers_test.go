package cmd

import (
	"bytes"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// setupCmdTest points the store at a memory filesystem and runs the test in
// an empty working directory so no stray config or .env file is picked up.
func setupCmdTest(t *testing.T) afero.Fs {
	t.Helper()

	fs := afero.NewMemMapFs()
	original := appFs
	appFs = fs
	t.Cleanup(func() { appFs = original })

	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })
	t.Setenv("HOME", t.TempDir())
	t.Setenv("XDG_CONFIG_HOME", "")
	t.Setenv("USE_EMOJI", "1")
	return fs
}

// resetFlags restores every flag in the tree to its default between runs.
func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

type cmdResult struct {
	stdout string
	stderr string
	code   int
}

// executeCommand runs the CLI the way main does and captures its output.
func executeCommand(t *testing.T, stdin io.Reader, args ...string) cmdResult {
	t.Helper()

	viper.Reset()
	resetFlags(rootCmd)

	if stdin == nil {
		stdin = strings.NewReader("")
	}
	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetIn(stdin)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetIn(nil)
		rootCmd.SetArgs(nil)
	})

	code := Execute()
	return cmdResult{stdout: out.String(), stderr: errOut.String(), code: code}
}

func run(t *testing.T, args ...string) cmdResult {
	t.Helper()
	return executeCommand(t, nil, args...)
}
