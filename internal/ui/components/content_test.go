package components

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	kerrors "github.com/alexisbeaulieu97/kinetic/pkg/errors"
)

func TestAutoSpace(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{"你好", "你 好"},
		{"按钮", "按 钮"},
		{"你好吗", "你好吗"},
		{"你", "你"},
		{"你a", "你a"},
		{"ok", "ok"},
		{"", ""},
		{"こん", "こん"},
		{" 你好 ", " 你好 "},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, AutoSpace(tt.in), "input %q", tt.in)
	}
}

func TestComposeContent(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "⠋ Save", composeContent("⠋", "✓", IconStart, "Save"))
	assert.Equal(t, "✓ Save", composeContent("", "✓", IconStart, "Save"))
	assert.Equal(t, "Save ✓", composeContent("", "✓", IconEnd, "Save"))
	assert.Equal(t, "Save", composeContent("", "", IconEnd, "Save"))
	assert.Equal(t, "", composeContent("", "", IconStart, ""))
}

func TestParseIconPosition(t *testing.T) {
	t.Parallel()

	for raw, want := range map[string]IconPosition{"": IconStart, "start": IconStart, " END ": IconEnd} {
		got, err := ParseIconPosition(raw)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := ParseIconPosition("middle")
	var cfgErr *kerrors.ConfigError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, "iconPosition", cfgErr.Axis)
	assert.Equal(t, "IconPosition(5)", IconPosition(5).String())
}
