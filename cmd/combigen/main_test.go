package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/combigen/config"
	"github.com/katalvlaran/combigen/gen"
	"github.com/katalvlaran/combigen/pattern"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd(&out, &errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), config.FileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "--version")
	require.NoError(t, err)
	require.Contains(t, out, version)
}

func TestSize(t *testing.T) {
	out, err := execute(t, "size", `\d{3,5}`)
	require.NoError(t, err)
	require.Equal(t, "111,000\n", out)

	out, err = execute(t, "size", "--exact", "[01]{70}")
	require.NoError(t, err)
	require.Equal(t, "1180591620717411303424\n", out)
}

func TestGet(t *testing.T) {
	out, err := execute(t, "get", "(N|E|S|W) St", "--index", "3")
	require.NoError(t, err)
	require.Equal(t, "W St\n", out)

	out, err = execute(t, "get", "(N|E|S|W) St", "--index", "0x2")
	require.NoError(t, err)
	require.Equal(t, "S St\n", out)

	_, err = execute(t, "get", "(N|E|S|W) St", "--index", "4")
	require.ErrorIs(t, err, gen.ErrIndexOutOfRange)

	_, err = execute(t, "get", "(N|E|S|W) St", "--index", "-1")
	require.Error(t, err)

	_, err = execute(t, "get", "(N|E|S|W) St")
	require.Error(t, err)
}

func TestList(t *testing.T) {
	out, err := execute(t, "list", "[ab]{2}", "--offset", "1", "--limit", "2")
	require.NoError(t, err)
	require.Equal(t, "ab\nba\n", out)

	out, err = execute(t, "list", "[ab]{2}", "--limit", "0")
	require.NoError(t, err)
	require.Equal(t, "aa\nab\nba\nbb\n", out)

	out, err = execute(t, "list", `\d{4}`)
	require.NoError(t, err)
	require.Len(t, strings.Split(strings.TrimSuffix(out, "\n"), "\n"), 100)

	_, err = execute(t, "list", "[ab]{2}", "--offset", "4")
	require.ErrorIs(t, err, gen.ErrIndexOutOfRange)
}

func TestSampleSeeded(t *testing.T) {
	first, err := execute(t, "sample", `\d{3}-[a-z]{2}`, "--count", "5", "--seed", "7")
	require.NoError(t, err)
	second, err := execute(t, "sample", `\d{3}-[a-z]{2}`, "--count", "5", "--seed", "7")
	require.NoError(t, err)
	require.Equal(t, first, second)

	lines := strings.Split(strings.TrimSuffix(first, "\n"), "\n")
	require.Len(t, lines, 5)
	for _, l := range lines {
		require.Regexp(t, `^\d{3}-[a-z]{2}$`, l)
	}
}

func TestVisit(t *testing.T) {
	out, err := execute(t, "visit", "(N|E) (St|Ave)", "--index", "1")
	require.NoError(t, err)
	require.Equal(t, "\"N\"\n\" \"\n\"Ave\"\n", out)
}

func TestRender(t *testing.T) {
	out, err := execute(t, "render", "colou?r")
	require.NoError(t, err)
	require.Equal(t, "colou?r\n", out)
}

func TestRepeatLimitFlag(t *testing.T) {
	_, err := execute(t, "size", "a*")
	require.ErrorIs(t, err, pattern.ErrUnsupportedSyntax)

	out, err := execute(t, "--repeat-limit", "2", "size", "a*")
	require.NoError(t, err)
	require.Equal(t, "3\n", out)

	_, err = execute(t, "--repeat-limit", "5000", "size", "a*")
	require.Error(t, err)
}

func TestUniverseFlag(t *testing.T) {
	out, err := execute(t, "--universe", "xyz", "list", ".", "--limit", "0")
	require.NoError(t, err)
	require.Equal(t, "x\ny\nz\n", out)
}

const testConfig = `
[defaults]
seed = 11

[generators.street]
pattern = '\d{3}( (N|S))? Main St'
repeat_limit = 2

[generators.tag]
pattern = '[a-c]+'
repeat_limit = 2
`

func TestNamedGenerator(t *testing.T) {
	path := writeConfig(t, testConfig)

	out, err := execute(t, "--config", path, "size", "@street")
	require.NoError(t, err)
	require.Equal(t, "3,000\n", out)

	out, err = execute(t, "--config", path, "get", "@street", "--index", "2")
	require.NoError(t, err)
	require.Equal(t, "000 Main St\n", out)

	// The command line limit overrides the file.
	out, err = execute(t, "--config", path, "--repeat-limit", "1", "size", "@tag")
	require.NoError(t, err)
	require.Equal(t, "3\n", out)

	_, err = execute(t, "--config", path, "size", "@nope")
	require.ErrorIs(t, err, config.ErrUnknownGenerator)
}

func TestConfigSeedDefault(t *testing.T) {
	path := writeConfig(t, testConfig)

	first, err := execute(t, "--config", path, "sample", "@tag", "--count", "4")
	require.NoError(t, err)
	second, err := execute(t, "--config", path, "sample", "@tag", "--count", "4")
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func TestMissingConfig(t *testing.T) {
	_, err := execute(t, "--config", filepath.Join(t.TempDir(), "absent.toml"), "size", "@street")
	require.Error(t, err)
}
