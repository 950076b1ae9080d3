package cmd

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/alecthomas/kong"
	"github.com/goccy/go-yaml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type initTestCLI struct {
	Level   string   `default:"info"`
	Path    []string `short:"I"`
	Name    string
	Secret  string `default:"s3cret" hidden:""`
	Pretty  bool   `default:"true" negatable:""`
	PprofOn string `default:"cpu" name:"pprof-mode"`

	Init Init `cmd:""`
}

// parseInit parses args against initTestCLI with the config file at path.
func parseInit(t *testing.T, path string, args ...string) *kong.Context {
	t.Helper()

	var cli initTestCLI

	parser, err := kong.New(&cli, kong.Vars{ConfigIdentifier: path})
	require.NoError(t, err)

	ktx, err := parser.Parse(args)
	require.NoError(t, err)

	return ktx
}

// TestConfigValues verifies which flags are written and in what order.
func TestConfigValues(t *testing.T) {
	t.Parallel()

	ktx := parseInit(t, "unused", "-I", "/a", "-I", "/b", "--no-pretty", "init")

	want := yaml.MapSlice{
		{Key: "level", Value: "info"},
		{Key: "path", Value: []string{"/a", "/b"}},
		{Key: "pretty", Value: false},
	}
	assert.Equal(t, want, configValues(ktx))
}

// TestInit_Run verifies the file is written once unless forced.
func TestInit_Run(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "config.yaml")

	ktx := parseInit(t, path, "--level", "debug", "init")
	ctx := WithContext(context.Background(), ktx)

	require.NoError(t, (&Init{}).Run(ctx))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "level: debug\npretty: true\n", string(data))

	err = (&Init{}).Run(ctx)
	require.ErrorIs(t, err, ErrWriteConfig)
	require.ErrorIs(t, err, ErrFileExists)

	require.NoError(t, (&Init{Force: true}).Run(ctx))
}
