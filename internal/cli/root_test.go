package cli

import (
	"bytes"
	"errors"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shinji-kodama/sortstack/internal/model"
)

// executeRoot runs a fresh root command with stdin and args, returning
// everything written to stdout. SetArgs is always called with a non-nil
// slice so cobra does not fall back to the test binary's os.Args.
func executeRoot(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	if args == nil {
		args = []string{}
	}

	cmd := NewRootCommand()
	var out bytes.Buffer
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

// readOutputFile returns the contents of sorted_stack.txt in the current
// working directory.
func readOutputFile(t *testing.T) string {
	t.Helper()
	data, err := os.ReadFile(model.OutputFileName)
	require.NoError(t, err, "sorted_stack.txt should exist after a run")
	return string(data)
}

// TestRootCommand_FullTranscript pins the exact console transcript of a run
// with an invalid token.
func TestRootCommand_FullTranscript(t *testing.T) {
	t.Chdir(t.TempDir())

	stdout, err := executeRoot(t, "5 foo 3 done")
	require.NoError(t, err)

	want := "Enter integers (type 'done' to finish):\n" +
		"Invalid input. Please enter an integer or 'done' to finish.\n" +
		"Sorted Stack (top to bottom):\n" +
		"5\n" +
		"3\n" +
		"Sorted stack saved to sorted_stack.txt\n"
	assert.Equal(t, want, stdout)
	assert.Equal(t, "5\n3\n", readOutputFile(t))
}

// TestRootCommand_OversizedToken checks that a token too long for the
// input buffer is warned about like any other invalid token and the
// numbers after it are still sorted and saved.
func TestRootCommand_OversizedToken(t *testing.T) {
	t.Chdir(t.TempDir())

	stdout, err := executeRoot(t, "5 "+strings.Repeat("9", 2<<20)+" 3 7 done")
	require.NoError(t, err)

	want := "Enter integers (type 'done' to finish):\n" +
		"Invalid input. Please enter an integer or 'done' to finish.\n" +
		"Sorted Stack (top to bottom):\n" +
		"7\n" +
		"5\n" +
		"3\n" +
		"Sorted stack saved to sorted_stack.txt\n"
	assert.Equal(t, want, stdout)
	assert.Equal(t, "7\n5\n3\n", readOutputFile(t))
}

// TestRootCommand_EmptyInput verifies that "done" alone shows only the
// header and leaves a zero-byte file.
func TestRootCommand_EmptyInput(t *testing.T) {
	t.Chdir(t.TempDir())

	stdout, err := executeRoot(t, "done\n")
	require.NoError(t, err)

	want := "Enter integers (type 'done' to finish):\n" +
		"Sorted Stack (top to bottom):\n" +
		"Sorted stack saved to sorted_stack.txt\n"
	assert.Equal(t, want, stdout)
	assert.Equal(t, "", readOutputFile(t))
}

// TestRootCommand_OverwritesPreviousRun runs the command twice in the same
// directory and checks that only the second result remains.
func TestRootCommand_OverwritesPreviousRun(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := executeRoot(t, "1 2 3 4 5 6 done")
	require.NoError(t, err)
	require.Equal(t, "6\n5\n4\n3\n2\n1\n", readOutputFile(t))

	_, err = executeRoot(t, "8 7 done")
	require.NoError(t, err)
	assert.Equal(t, "8\n7\n", readOutputFile(t))
}

// TestRootCommand_SaveFailureIsNotFatal makes the output path unusable and
// checks that the failure is reported on stdout while the command still
// succeeds.
func TestRootCommand_SaveFailureIsNotFatal(t *testing.T) {
	t.Chdir(t.TempDir())

	// A directory with the output file's name makes os.Create fail.
	require.NoError(t, os.Mkdir(model.OutputFileName, 0o755))

	stdout, err := executeRoot(t, "2 1 done")
	require.NoError(t, err, "a failed save must not fail the command")

	lines := strings.Split(strings.TrimRight(stdout, "\n"), "\n")
	require.NotEmpty(t, lines)

	// The numbers are still displayed before the save is attempted.
	assert.Contains(t, stdout, "Sorted Stack (top to bottom):\n2\n1\n")

	last := lines[len(lines)-1]
	assert.True(t, strings.HasPrefix(last, model.SaveFailurePrefix), "got %q", last)
	assert.Contains(t, last, model.OutputFileName)
	assert.NotContains(t, stdout, model.SaveSuccessMessage)
}

// TestRootCommand_UsageErrors verifies that command line mistakes are
// returned as CLIError values with ExitUsageError and that nothing is run.
func TestRootCommand_UsageErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "positional argument", args: []string{"numbers.txt"}},
		{name: "unknown flag", args: []string{"--reverse"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Chdir(t.TempDir())

			stdout, err := executeRoot(t, "1 done", tt.args...)
			require.Error(t, err)

			var cliErr *model.CLIError
			require.True(t, errors.As(err, &cliErr), "error should be a CLIError, got %T", err)
			assert.Equal(t, model.ExitUsageError, cliErr.Code)

			assert.Empty(t, stdout)
			_, statErr := os.Stat(model.OutputFileName)
			assert.True(t, os.IsNotExist(statErr), "no file should be written on usage errors")
		})
	}
}

// TestRootCommand_Version verifies that --version prints build info and
// does not run the pipeline.
func TestRootCommand_Version(t *testing.T) {
	t.Chdir(t.TempDir())

	stdout, err := executeRoot(t, "1 done", "--version")
	require.NoError(t, err)
	assert.Contains(t, stdout, "sortstack version "+Version)

	_, statErr := os.Stat(model.OutputFileName)
	assert.True(t, os.IsNotExist(statErr))
}

// TestRootCommand_Verbose checks that --verbose leaves stdout unchanged.
func TestRootCommand_Verbose(t *testing.T) {
	t.Chdir(t.TempDir())

	quiet, err := executeRoot(t, "3 x 1 done")
	require.NoError(t, err)

	loud, err := executeRoot(t, "3 x 1 done", "--verbose")
	require.NoError(t, err)

	assert.Equal(t, quiet, loud)
}
