package ui_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jailfs/internal/jail"
	"jailfs/internal/syscalls"
	"jailfs/internal/treeops"
	"jailfs/internal/ui"
)

func newTestInterpreter(t *testing.T) (*ui.Interpreter, string) {
	t.Helper()

	tmp := t.TempDir()

	osProvider := &syscalls.RealOS{}
	unixProvider := &syscalls.RealUnix{}
	treeHandler := treeops.NewHandler(osProvider, unixProvider)

	j, err := jail.New(tmp, osProvider, unixProvider, treeHandler)
	require.NoError(t, err)

	return ui.NewInterpreter(j, osProvider), tmp
}

func run(t *testing.T, in *ui.Interpreter, line string) string {
	t.Helper()

	output, quit := in.Execute(line)
	require.False(t, quit, "unexpected quit for: %s", line)

	return output
}

func TestExecute_Quit(t *testing.T) {
	t.Parallel()
	in, _ := newTestInterpreter(t)

	_, quit := in.Execute("quit")
	assert.True(t, quit)

	_, quit = in.Execute("exit")
	assert.True(t, quit)
}

func TestExecute_EmptyLine(t *testing.T) {
	t.Parallel()
	in, _ := newTestInterpreter(t)

	output, quit := in.Execute("   ")

	assert.Empty(t, output)
	assert.False(t, quit)
}

func TestExecute_PwdAndCd(t *testing.T) {
	t.Parallel()
	in, tmp := newTestInterpreter(t)

	require.NoError(t, os.MkdirAll(filepath.Join(tmp, "sub"), 0o755))

	assert.Equal(t, "/", run(t, in, "pwd"))
	assert.Equal(t, "jail:/$ ", in.Prompt())

	assert.Empty(t, run(t, in, "cd sub"))
	assert.Equal(t, "/sub", run(t, in, "pwd"))
	assert.Equal(t, "jail:/sub$ ", in.Prompt())

	// Climbing above the root is reported, not performed.
	output := run(t, in, "cd ../..")
	assert.Contains(t, output, "error:")
	assert.Equal(t, "/sub", run(t, in, "pwd"))
}

func TestExecute_Root(t *testing.T) {
	t.Parallel()
	in, tmp := newTestInterpreter(t)

	assert.Equal(t, tmp, run(t, in, "root"))
}

func TestExecute_MkdirAndLs(t *testing.T) {
	t.Parallel()
	in, _ := newTestInterpreter(t)

	assert.Empty(t, run(t, in, "mkdir dir"))
	assert.Empty(t, run(t, in, "mkdir -p deep/nested/dir"))

	output := run(t, in, "ls /")
	assert.Contains(t, output, "/dir")
	assert.Contains(t, output, "<dir>")
	assert.Contains(t, output, "/deep")
}

func TestExecute_CpMvRm(t *testing.T) {
	t.Parallel()
	in, tmp := newTestInterpreter(t)

	require.NoError(t, os.WriteFile(filepath.Join(tmp, "file.txt"), []byte("payload"), 0o644))
	require.NoError(t, os.MkdirAll(filepath.Join(tmp, "other"), 0o755))

	assert.Empty(t, run(t, in, "cp file.txt other/"))

	content, err := os.ReadFile(filepath.Join(tmp, "other", "file.txt"))
	require.NoError(t, err)
	assert.Equal(t, "payload", string(content))

	// Without -f the existing copy blocks a second transfer.
	output := run(t, in, "cp file.txt other/file.txt")
	assert.Contains(t, output, "error:")

	assert.Empty(t, run(t, in, "cp -f file.txt other/file.txt"))

	assert.Empty(t, run(t, in, "mv file.txt renamed.txt"))
	assert.Contains(t, run(t, in, "ls /*.txt"), "/renamed.txt")

	assert.Empty(t, run(t, in, "rm renamed.txt"))
	assert.Empty(t, run(t, in, "rm -r other"))

	_, statErr := os.Stat(filepath.Join(tmp, "other"))
	assert.True(t, os.IsNotExist(statErr))
}

func TestExecute_Rmdir(t *testing.T) {
	t.Parallel()
	in, tmp := newTestInterpreter(t)

	require.NoError(t, os.MkdirAll(filepath.Join(tmp, "tree", "sub"), 0o755))

	output := run(t, in, "rmdir tree")
	assert.Contains(t, output, "error:")

	assert.Empty(t, run(t, in, "rmdir -r tree"))

	_, statErr := os.Stat(filepath.Join(tmp, "tree"))
	assert.True(t, os.IsNotExist(statErr))
}

func TestExecute_Find(t *testing.T) {
	t.Parallel()
	in, tmp := newTestInterpreter(t)

	require.NoError(t, os.WriteFile(filepath.Join(tmp, "a.txt"), nil, 0o644))
	require.NoError(t, os.MkdirAll(filepath.Join(tmp, "sub"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(tmp, "sub", "b.txt"), nil, 0o644))

	output := run(t, in, "find *.txt")

	assert.Equal(t, []string{"/a.txt", "/sub/b.txt"}, strings.Split(output, "\n"))
}

func TestExecute_Umask(t *testing.T) {
	t.Parallel()
	in, _ := newTestInterpreter(t)

	assert.Equal(t, "0000", run(t, in, "umask"))

	assert.Empty(t, run(t, in, "umask 022"))
	assert.Equal(t, "0022", run(t, in, "umask"))

	assert.Contains(t, run(t, in, "umask 9z"), "not an octal value")
}

func TestExecute_UsageAndUnknown(t *testing.T) {
	t.Parallel()
	in, _ := newTestInterpreter(t)

	assert.Contains(t, run(t, in, "cd"), "usage:")
	assert.Contains(t, run(t, in, "cp one"), "usage:")
	assert.Contains(t, run(t, in, "frobnicate"), "unknown command")
	assert.Contains(t, run(t, in, "help"), "commands:")
}
