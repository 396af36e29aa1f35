package main_test

import (
	"bytes"
	"testing"

	"github.com/alecthomas/kong"
	main "github.com/fwojciec/sitedraft/cmd/sitedraft"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var allCommands = []string{"generate", "extract", "list", "show", "export", "screenshot", "delete", "serve"}

func TestCLI_HelpShowsAllCommands(t *testing.T) {
	t.Parallel()

	cli := &main.CLI{}
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	parser, err := kong.New(cli,
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
	)
	require.NoError(t, err)

	_, _ = parser.Parse([]string{"--help"})

	for _, cmd := range allCommands {
		assert.Contains(t, stdout.String(), cmd, "Help should mention %s command", cmd)
	}
}

func TestCLI_ParsesFlags(t *testing.T) {
	t.Parallel()

	cli := &main.CLI{}
	parser, err := kong.New(cli, kong.Exit(func(int) {}))
	require.NoError(t, err)

	ctx, err := parser.Parse([]string{"-v", "export", "set-1", "out", "--base-url", "https://example.com"})
	require.NoError(t, err)

	assert.Equal(t, "export <id> <dir>", ctx.Command())
	assert.True(t, cli.Verbose)
	assert.Equal(t, "set-1", cli.Export.ID)
	assert.Equal(t, "https://example.com", cli.Export.BaseURL)
}

func TestCLI_ShowViewsAreExclusive(t *testing.T) {
	t.Parallel()

	cli := &main.CLI{}
	parser, err := kong.New(cli, kong.Exit(func(int) {}), kong.Writers(&bytes.Buffer{}, &bytes.Buffer{}))
	require.NoError(t, err)

	_, err = parser.Parse([]string{"show", "set-1", "--text", "--code"})

	assert.Error(t, err)
}
