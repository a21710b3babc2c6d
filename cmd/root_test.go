package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/zoobzio/utf7/convert"
)

func run(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	rootCmd := createRootCommand(context.Background(), &Input{}, "test")
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestRun_Encode(t *testing.T) {
	out, _, err := run(t, "1 + 2 = 3;", "-f", "utf-8", "-e", "=")
	require.NoError(t, err)
	assert.Equal(t, "1 +- 2 +AD0 3;", out)
}

func TestRun_Decode(t *testing.T) {
	out, _, err := run(t, "+A8A-r^2", "-t", "8")
	require.NoError(t, err)
	assert.Equal(t, "πr^2", out)
}

func TestRun_DefaultsToUTF7(t *testing.T) {
	out, _, err := run(t, "Hi Mom -+Jjo--!")
	require.NoError(t, err)
	assert.Equal(t, "Hi Mom -+Jjo--!", out)
}

func TestRun_AddBOM(t *testing.T) {
	out, _, err := run(t, "abc", "-b", "-f", "utf-8", "-t", "utf-8")
	require.NoError(t, err)
	assert.Equal(t, "\uFEFFabc", out)
}

func TestRun_ClearBOM(t *testing.T) {
	out, _, err := run(t, "+/v8-abc", "-c", "-t", "utf-8")
	require.NoError(t, err)
	assert.Equal(t, "abc", out)
}

func TestRun_InvalidInput(t *testing.T) {
	_, _, err := run(t, "ok\n+2D0-", "-t", "utf-8")
	assert.EqualError(t, err, "stdin:2: invalid input")
}

func TestRun_TruncatedInput(t *testing.T) {
	_, _, err := run(t, "+AGE", "-t", "utf-8")
	assert.EqualError(t, err, "stdin:1: truncated input")
}

func TestRun_UnknownEncoding(t *testing.T) {
	_, _, err := run(t, "", "-f", "ebcdic")
	assert.EqualError(t, err, "unknown encoding, ebcdic")
}

func TestRun_BadIndirect(t *testing.T) {
	_, _, err := run(t, "", "-f", "utf-8", "-e", "=a")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "indirect set")
}

func TestRun_BOMFlagsExclusive(t *testing.T) {
	_, _, err := run(t, "", "-b", "-c")
	assert.Error(t, err)
}

func TestRun_RejectsArguments(t *testing.T) {
	_, _, err := run(t, "", "file.txt")
	assert.Error(t, err)
}

func TestRun_ReportJSON(t *testing.T) {
	_, stderr, err := run(t, "a\nb\n", "-f", "utf-8", "--report", "json")
	require.NoError(t, err)

	var stats convert.Stats
	require.NoError(t, json.Unmarshal([]byte(stderr), &stats))
	assert.Equal(t, convert.Stats{BytesIn: 4, BytesOut: 4, Runes: 4, Lines: 3}, stats)
}

func TestRun_ReportYAML(t *testing.T) {
	_, stderr, err := run(t, "~", "-f", "utf-8", "--report", "yaml")
	require.NoError(t, err)

	var stats convert.Stats
	require.NoError(t, yaml.Unmarshal([]byte(stderr), &stats))
	assert.Equal(t, int64(1), stats.Runes)
	assert.Equal(t, int64(len("+AH4-")), stats.BytesOut)
}

func TestRun_ReportUnknownFormat(t *testing.T) {
	_, _, err := run(t, "a", "-f", "utf-8", "--report", "toml")
	assert.EqualError(t, err, `unknown report format "toml"`)
}
