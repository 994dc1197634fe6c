package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	kerrors "github.com/alexisbeaulieu97/kinetic/pkg/errors"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "gallery.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestParseConfigValid(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `
version: "1.0"
title: Demo
theme: dark
buttons:
  - label: Go
    kind: primary
    loading:
      delay: 250ms
      icon: "…"
    job: 1s
radio_group:
  value: b
  options:
    - {label: A, value: a}
    - {label: B, value: b}
radios:
  - label: Opt in
    checked: true
`)

	cfg, err := ParseConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "Demo", cfg.Title)
	assert.Equal(t, "dark", cfg.ThemeName())
	require.Len(t, cfg.Buttons, 1)
	assert.Equal(t, LoadingSpec{Enabled: true, Delay: 250_000_000, Icon: "…"}, cfg.Buttons[0].Loading)
	assert.Equal(t, "1s", cfg.Buttons[0].Job.String())
	require.NotNil(t, cfg.RadioGroup)
	assert.Equal(t, "b", cfg.RadioGroup.Value)
	require.Len(t, cfg.Radios, 1)
	require.NotNil(t, cfg.Radios[0].Checked)
	assert.True(t, *cfg.Radios[0].Checked)
}

func TestParseConfigMissingFile(t *testing.T) {
	t.Parallel()

	_, err := ParseConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	var parseErr *kerrors.ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Zero(t, parseErr.Line)
}

func TestParseReportsLine(t *testing.T) {
	t.Parallel()

	_, err := Parse([]byte("version: \"1.0\"\ntitle: x\nbuttons:\n  - label: [unclosed\n"), "inline.yaml")
	var parseErr *kerrors.ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, "inline.yaml", parseErr.Path)
	assert.Positive(t, parseErr.Line)
}

func TestParseRejectsBadLoading(t *testing.T) {
	t.Parallel()

	_, err := Parse([]byte("version: \"1.0\"\ntitle: x\nbuttons:\n  - label: a\n    loading: [1, 2]\n"), "inline.yaml")
	var parseErr *kerrors.ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Contains(t, parseErr.Message, "loading must be a boolean or a mapping")
}

func TestDefaultGalleryIsValid(t *testing.T) {
	t.Parallel()

	cfg := Default()
	assert.NotEmpty(t, cfg.Title)
	assert.NotEmpty(t, cfg.Buttons)
	require.NotNil(t, cfg.RadioGroup)
	assert.NotEmpty(t, cfg.Radios)
}

func TestExtractLine(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0, extractLine(nil))
	assert.Equal(t, 12, extractLine(errors.New("yaml: line 12: mapping values are not allowed")))
	assert.Equal(t, 0, extractLine(errors.New("no position")))
}
