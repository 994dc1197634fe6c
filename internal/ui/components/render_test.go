package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/kinetic/internal/ui/variant"
)

func surfaceFor(in variant.Inputs, state InteractionState) Surface {
	return NewSurface(variant.Resolve(in).Directives, state)
}

func TestSurfaceSolidBackground(t *testing.T) {
	t.Parallel()

	ctx := DefaultContext()
	in := variant.Inputs{Kind: variant.KindPrimary}

	rest := surfaceFor(in, InteractionState{}).Style(lipgloss.NewStyle(), ctx)
	assert.Equal(t, lipgloss.Color("#1677ff"), rest.GetBackground())
	assert.Equal(t, lipgloss.Color("#ffffff"), rest.GetForeground())

	hover := surfaceFor(in, InteractionState{Hovered: true}).Style(lipgloss.NewStyle(), ctx)
	assert.Equal(t, lipgloss.Color("#4096ff"), hover.GetBackground())

	disabled := surfaceFor(in, InteractionState{Hovered: true, Disabled: true}).Style(lipgloss.NewStyle(), ctx)
	assert.Equal(t, lipgloss.Color("#1677ff"), disabled.GetBackground())
	assert.True(t, disabled.GetFaint())
}

func TestSurfaceBorders(t *testing.T) {
	t.Parallel()

	ctx := DefaultContext()

	outlined := surfaceFor(variant.Inputs{Treatment: variant.TreatmentOutlined}, InteractionState{}).Style(lipgloss.NewStyle(), ctx)
	assert.Equal(t, lipgloss.RoundedBorder(), outlined.GetBorderStyle())
	assert.Equal(t, lipgloss.NoColor{}, outlined.GetBackground())

	dashed := surfaceFor(variant.Inputs{Kind: variant.KindDashed}, InteractionState{}).Style(lipgloss.NewStyle(), ctx)
	assert.Equal(t, ctx.Theme.Borders.Dashed, dashed.GetBorderStyle())

	solid := surfaceFor(variant.Inputs{}, InteractionState{}).Style(lipgloss.NewStyle(), ctx)
	assert.Equal(t, lipgloss.Border{}, solid.GetBorderStyle())
}

func TestSurfaceDefaultInkFollowsTheme(t *testing.T) {
	t.Parallel()

	for _, theme := range []Theme{LightTheme(), DarkTheme()} {
		ctx := DefaultContext().WithTheme(theme)
		style := surfaceFor(variant.Inputs{Kind: variant.KindText}, InteractionState{}).Style(lipgloss.NewStyle(), ctx)
		assert.Equal(t, theme.Palette.Surface.OnBase, style.GetForeground(), theme.Name)
	}
}

func TestSurfaceSizes(t *testing.T) {
	t.Parallel()

	ctx := DefaultContext()
	large := surfaceFor(variant.Inputs{Size: variant.SizeLarge}, InteractionState{}).Style(lipgloss.NewStyle(), ctx)
	assert.Equal(t, 3, large.GetPaddingLeft())
	assert.True(t, large.GetBold())

	small := surfaceFor(variant.Inputs{Size: variant.SizeSmall}, InteractionState{}).Style(lipgloss.NewStyle(), ctx)
	assert.Equal(t, 1, small.GetPaddingRight())
	assert.False(t, small.GetBold())

	circle := surfaceFor(variant.Inputs{Shape: variant.ShapeCircle, Size: variant.SizeSmall}, InteractionState{}).Style(lipgloss.NewStyle(), ctx)
	assert.Equal(t, 1, circle.GetPaddingLeft(), "size padding is applied after the shape axis")
}

func TestSurfaceLinkUnderlinesOnHover(t *testing.T) {
	t.Parallel()

	ctx := DefaultContext()
	in := variant.Inputs{Kind: variant.KindLink}
	assert.False(t, surfaceFor(in, InteractionState{}).Style(lipgloss.NewStyle(), ctx).GetUnderline())
	assert.True(t, surfaceFor(in, InteractionState{Hovered: true}).Style(lipgloss.NewStyle(), ctx).GetUnderline())
	assert.False(t, surfaceFor(in, InteractionState{Hovered: true, Disabled: true}).Style(lipgloss.NewStyle(), ctx).GetUnderline())
}

func TestSurfaceBlockFillsParent(t *testing.T) {
	t.Parallel()

	ctx := DefaultContext().WithParentWidth(30)
	out := surfaceFor(variant.Inputs{Block: true, Treatment: variant.TreatmentOutlined}, InteractionState{}).
		Render(lipgloss.NewStyle(), "Go", ctx)
	assert.Equal(t, 30, lipgloss.Width(out))

	inline := surfaceFor(variant.Inputs{Treatment: variant.TreatmentOutlined}, InteractionState{}).
		Render(lipgloss.NewStyle(), "Go", ctx)
	assert.Less(t, lipgloss.Width(inline), 30)
}

func TestSurfaceRoundCaps(t *testing.T) {
	t.Parallel()

	ctx := DefaultContext()
	round := ansi.Strip(surfaceFor(variant.Inputs{Shape: variant.ShapeRound}, InteractionState{}).Render(lipgloss.NewStyle(), "Go", ctx))
	assert.True(t, strings.HasPrefix(round, capLeft))
	assert.True(t, strings.HasSuffix(round, capRight))

	outlined := ansi.Strip(surfaceFor(variant.Inputs{Shape: variant.ShapeRound, Treatment: variant.TreatmentOutlined}, InteractionState{}).Render(lipgloss.NewStyle(), "Go", ctx))
	assert.NotContains(t, outlined, capLeft, "bordered pills keep their border instead of caps")
}

func TestSurfaceOverridesApply(t *testing.T) {
	t.Parallel()

	res := variant.Resolve(variant.Inputs{Kind: variant.KindPrimary})
	set := res.With(variant.Set{variant.D(variant.PropPaddingX, "5")})
	style := NewSurface(set, InteractionState{}).Style(lipgloss.NewStyle(), DefaultContext())
	assert.Equal(t, 5, style.GetPaddingLeft())
}

func TestSurfaceIndicator(t *testing.T) {
	t.Parallel()

	ctx := DefaultContext()
	checked := NewSurface(variant.ResolveOption(variant.OptionInputs{Checked: true}), InteractionState{})
	assert.Equal(t, "(●)", ansi.Strip(checked.Indicator(true, ctx)))

	unchecked := NewSurface(variant.ResolveOption(variant.OptionInputs{}), InteractionState{})
	assert.Equal(t, "( )", ansi.Strip(unchecked.Indicator(false, ctx)))
	assert.Equal(t, IndicatorWidth, lipgloss.Width(unchecked.Indicator(false, ctx)))
}

func TestThemeInk(t *testing.T) {
	t.Parallel()

	theme := DefaultTheme()
	assert.Nil(t, theme.Ink(""))
	assert.Nil(t, theme.Ink(variant.Transparent))
	assert.Nil(t, theme.Ink(variant.CurrentColor))
	assert.Equal(t, lipgloss.Color("#1677ff"), theme.Ink("#1677ff"))
	assert.Equal(t, theme.Palette.Surface.OnBase, theme.Ink("#000000"))
}

func TestThemeByName(t *testing.T) {
	t.Parallel()

	dark, ok := ThemeByName("Dark")
	require.True(t, ok)
	assert.Equal(t, "dark", dark.Name)

	light, ok := ThemeByName("")
	require.True(t, ok)
	assert.Equal(t, "light", light.Name)

	_, ok = ThemeByName("solarized")
	assert.False(t, ok)
}
