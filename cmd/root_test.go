package cmd

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execRoot(t *testing.T, stdin string, args ...string) (string, error) {
	noConfig := filepath.Join(t.TempDir(), "none.toml")
	cmd := NewRootCmd(append([]string{"--config", noConfig}, args...), BuildInfo{Version: "1.2.3"})
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetIn(strings.NewReader(stdin))
	err := cmd.Execute()
	return out.String(), err
}

func TestRootDumpArgs(t *testing.T) {
	out, err := execRoot(t, "", "--key-type", "int", "dump", "1", "8", "3", "8")
	require.NoError(t, err)
	assert.Equal(t, `***Hash Table: Separate Chaining***
table_size = 7, current_size = 3
0: -
1: --->8--->1-
2: -
3: --->3-
4: -
5: -
6: -
`, out)
}

func TestRootDumpStdin(t *testing.T) {
	out, err := execRoot(t, "4\n\n2\n", "-k", "int", "--buckets", "5", "--min-buckets", "5", "dump")
	require.NoError(t, err)
	assert.Equal(t, `***Hash Table: Separate Chaining***
table_size = 5, current_size = 2
0: -
1: -
2: --->2-
3: -
4: --->4-
`, out)
}

func TestReadLinesLong(t *testing.T) {
	long := strings.Repeat("k", 100<<10)
	lines, err := readLines(strings.NewReader("a\n" + long + "\n\nb\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"a", long, "b"}, lines)
}

func TestRootRepl(t *testing.T) {
	out, err := execRoot(t, "INSERT x y\nCOUNT y\n", "repl")
	require.NoError(t, err)
	assert.Equal(t, "(integer) 2\n(integer) 1\n", out)

	out, err = execRoot(t, "SIZE\n")
	require.NoError(t, err)
	assert.Equal(t, "(integer) 0\n", out, "the root command runs the REPL")
}

func TestRootVersion(t *testing.T) {
	out, err := execRoot(t, "", "version")
	require.NoError(t, err)
	assert.Equal(t, "hsetcli 1.2.3\n", out)
}

func TestRootInvalidFlags(t *testing.T) {
	_, err := execRoot(t, "", "--max-load", "3", "dump", "a")
	assert.Error(t, err)

	_, err = execRoot(t, "", "--growth", "triple", "dump", "a")
	assert.Error(t, err)

	_, err = execRoot(t, "", "--log-level", "loud", "version")
	assert.Error(t, err)

	_, err = execRoot(t, "", "-k", "int", "dump", "x")
	assert.ErrorIs(t, err, errNotInteger)
}

func TestBuildInfoString(t *testing.T) {
	assert.Equal(t, "1.0", BuildInfo{Version: "1.0", GitSHA1: "unknown"}.String())
	assert.Equal(t, "1.0 (git:abc123)", BuildInfo{Version: "1.0", GitSHA1: "abc123", GitDirty: "0"}.String())
	assert.Equal(t, "1.0 (git:abc123-dirty)", BuildInfo{Version: "1.0", GitSHA1: "abc123", GitDirty: "1"}.String())
}
