package main

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	kerrors "github.com/alexisbeaulieu97/kinetic/pkg/errors"
)

func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	stdout := &bytes.Buffer{}
	root.SetOut(stdout)
	root.SetErr(&bytes.Buffer{})
	root.SetArgs(args)
	err := root.Execute()
	return stdout.String(), err
}

func TestResolveCommand_TextOutput(t *testing.T) {
	stdout, err := executeCommand(t, "resolve", "--kind", "primary")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Treatment: solid")
	assert.Contains(t, stdout, "Color:     primary")
	assert.Contains(t, stdout, "background")
	assert.Contains(t, stdout, "#1677ff")
}

func TestResolveCommand_DangerDefault(t *testing.T) {
	stdout, err := executeCommand(t, "resolve", "--danger")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Treatment: solid")
	assert.Contains(t, stdout, "Color:     danger")
}

func TestResolveCommand_YAMLOutput(t *testing.T) {
	stdout, err := executeCommand(t, "resolve", "--variant", "dashed", "--color", "purple", "--collapsed", "--format", "yaml")
	require.NoError(t, err)

	var out resolveOutput
	require.NoError(t, yaml.Unmarshal([]byte(stdout), &out))
	assert.Equal(t, "dashed", out.Treatment)
	assert.Equal(t, "purple", out.Color)
	require.NotEmpty(t, out.Directives)

	seen := map[string]bool{}
	for _, d := range out.Directives {
		assert.False(t, seen[d.Property], "collapsed output repeats %s", d.Property)
		seen[d.Property] = true
		assert.NotEmpty(t, d.Stage)
	}
	assert.True(t, seen["border-style"])
}

func TestResolveCommand_UncollapsedKeepsStages(t *testing.T) {
	stdout, err := executeCommand(t, "resolve", "--kind", "primary", "--ghost", "--format", "yaml")
	require.NoError(t, err)

	var out resolveOutput
	require.NoError(t, yaml.Unmarshal([]byte(stdout), &out))

	stages := map[string]bool{}
	for _, d := range out.Directives {
		stages[d.Stage] = true
	}
	assert.True(t, stages["base"])
	assert.True(t, stages["axis"])
	assert.True(t, stages["combination"])
}

func TestResolveCommand_RejectsUnknownValue(t *testing.T) {
	_, err := executeCommand(t, "resolve", "--kind", "secondary")
	require.Error(t, err)

	var cfgErr *kerrors.ConfigError
	require.True(t, errors.As(err, &cfgErr))
	assert.Equal(t, "kind", cfgErr.Axis)
	assert.Equal(t, "secondary", cfgErr.Value)
	assert.Contains(t, err.Error(), "Suggestion:")
}

func TestResolveCommand_RejectsUnknownFormat(t *testing.T) {
	_, err := executeCommand(t, "resolve", "--format", "toml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown format")
}

func TestResolveCommand_RejectsUnknownLogFormat(t *testing.T) {
	_, err := executeCommand(t, "resolve", "--log-format", "xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--log-format")
}
