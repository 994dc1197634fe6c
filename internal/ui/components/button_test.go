package components

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/kinetic/internal/ui/variant"
	kerrors "github.com/alexisbeaulieu97/kinetic/pkg/errors"
)

type clickCounter struct {
	n int
}

func (c *clickCounter) handler() tea.Cmd {
	c.n++
	return nil
}

func TestNewButtonRejectsInvalidProps(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		props ButtonProps
		axis  string
	}{
		{"kind", ButtonProps{Kind: variant.Kind(42)}, "kind"},
		{"color", ButtonProps{Color: variant.ColorRole(99)}, "color"},
		{"html type", ButtonProps{HTMLType: "bogus"}, "htmlType"},
		{"icon position", ButtonProps{IconPosition: IconPosition(7)}, "iconPosition"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewButton(tt.props)
			var cfgErr *kerrors.ConfigError
			require.ErrorAs(t, err, &cfgErr)
			assert.Equal(t, tt.axis, cfgErr.Axis)
		})
	}

	_, err := NewButton(ButtonProps{Loading: LoadingProp{Enabled: true, Delay: -1}})
	var valErr *kerrors.ValidationError
	require.ErrorAs(t, err, &valErr)
}

func TestButtonClick(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		props   ButtonProps
		loading bool
		want    int
	}{
		{"enabled", ButtonProps{}, false, 1},
		{"disabled", ButtonProps{Disabled: true}, false, 0},
		{"loading", ButtonProps{}, true, 0},
		{"anchor", ButtonProps{Href: "https://example.com"}, false, 1},
		{"disabled anchor", ButtonProps{Href: "https://example.com", Disabled: true}, false, 0},
		{"loading anchor", ButtonProps{Href: "https://example.com"}, true, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			counter := &clickCounter{}
			props := tt.props
			props.Label = "Go"
			props.OnClick = counter.handler
			if tt.loading {
				props.Loading = LoadingOn()
			}
			b, err := NewButton(props)
			require.NoError(t, err)
			b.Init()

			b.Click()
			assert.Equal(t, tt.want, counter.n)
		})
	}
}

func TestButtonKeyActivation(t *testing.T) {
	t.Parallel()

	counter := &clickCounter{}
	b, err := NewButton(ButtonProps{Label: "Go", OnClick: counter.handler})
	require.NoError(t, err)

	b.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.Zero(t, counter.n, "unfocused buttons ignore keys")

	b.SetFocused(true)
	b.Update(tea.KeyMsg{Type: tea.KeyEnter})
	b.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{' '}})
	b.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}})
	require.Equal(t, 2, counter.n)
}

func TestButtonElementModes(t *testing.T) {
	t.Parallel()

	attrs := map[string]string{"data-test": "cta"}
	anchor, err := NewButton(ButtonProps{Label: "Docs", Href: "https://example.com", Target: "_blank", Attrs: attrs})
	require.NoError(t, err)
	el := anchor.Element()
	assert.Equal(t, TagAnchor, el.Tag)
	assert.Equal(t, "a", el.Tag.String())
	assert.Equal(t, "https://example.com", el.Href)
	assert.Equal(t, "_blank", el.Target)
	assert.Equal(t, attrs, el.Attrs)

	action, err := NewButton(ButtonProps{Label: "Docs"})
	require.NoError(t, err)
	el = action.Element()
	assert.Equal(t, TagButton, el.Tag)
	assert.Equal(t, HTMLTypeButton, el.Type)
	assert.Empty(t, el.Href)
	assert.False(t, el.Disabled)

	submit, err := NewButton(ButtonProps{Label: "Send", HTMLType: HTMLTypeSubmit, Loading: LoadingOn()})
	require.NoError(t, err)
	submit.Init()
	el = submit.Element()
	assert.Equal(t, HTMLTypeSubmit, el.Type)
	assert.True(t, el.Disabled, "loading buttons are disabled")
}

func TestAnchorViewIsHyperlinked(t *testing.T) {
	t.Parallel()

	b, err := NewButton(ButtonProps{Label: "Docs", Href: "https://example.com"})
	require.NoError(t, err)

	view := b.View()
	assert.Contains(t, view, "\x1b]8;;https://example.com")
	assert.Contains(t, ansi.Strip(view), "Docs")

	plain, err := NewButton(ButtonProps{Label: "Docs"})
	require.NoError(t, err)
	assert.NotContains(t, plain.View(), "\x1b]8;")
}

func TestButtonContent(t *testing.T) {
	t.Parallel()

	off := false
	tests := []struct {
		name  string
		props ButtonProps
		want  string
	}{
		{"two ideographs", ButtonProps{Label: "你好"}, "你 好"},
		{"three ideographs", ButtonProps{Label: "你好吗"}, "你好吗"},
		{"latin", ButtonProps{Label: "ok"}, "ok"},
		{"auto space off", ButtonProps{Label: "你好", AutoInsertSpace: &off}, "你好"},
		{"icon start", ButtonProps{Label: "Search", Icon: "⌕"}, "⌕ Search"},
		{"icon end", ButtonProps{Label: "Next", Icon: "→", IconPosition: IconEnd}, "Next →"},
		{"icon only", ButtonProps{Icon: "+"}, "+"},
		{"custom loading icon", ButtonProps{Label: "Save", Icon: "✓", Loading: LoadingAfter(0, "…")}, "… Save"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := NewButton(tt.props)
			require.NoError(t, err)
			b.Init()
			assert.Equal(t, tt.want, b.Content())
		})
	}
}

func TestLoadingSuppressesIcon(t *testing.T) {
	t.Parallel()

	b, err := NewButton(ButtonProps{Label: "Save", Icon: "✓", Loading: LoadingOn()})
	require.NoError(t, err)
	b.Init()

	content := b.Content()
	assert.NotContains(t, content, "✓")
	assert.True(t, strings.HasSuffix(content, " Save"))
	assert.NotEqual(t, "Save", content, "spinner frame should precede the label")
}

func TestButtonOverridesWin(t *testing.T) {
	t.Parallel()

	b, err := NewButton(ButtonProps{
		Label: "Go",
		Kind:  variant.KindPrimary,
		Overrides: map[Region]variant.Set{
			RegionButton: {variant.D(variant.PropBackground, "#123456")},
		},
	})
	require.NoError(t, err)

	res, set := b.Resolution()
	assert.Equal(t, variant.ColorPrimary, res.Color)
	got, ok := set.Collapse().Value(variant.PropBackground)
	require.True(t, ok)
	assert.Equal(t, "#123456", got)
}

func TestButtonDangerShorthand(t *testing.T) {
	t.Parallel()

	b, err := NewButton(ButtonProps{Label: "Delete", Danger: true})
	require.NoError(t, err)
	res, _ := b.Resolution()
	assert.Equal(t, variant.TreatmentSolid, res.Treatment)
	assert.Equal(t, variant.ColorDanger, res.Color)
}

func TestButtonIDsAreUnique(t *testing.T) {
	t.Parallel()

	a, err := NewButton(ButtonProps{})
	require.NoError(t, err)
	b, err := NewButton(ButtonProps{})
	require.NoError(t, err)
	assert.NotEqual(t, a.ID(), b.ID())
}
