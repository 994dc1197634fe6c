package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/kinetic/internal/ui/ripple"
)

func TestHStackLayoutReportsChildRects(t *testing.T) {
	t.Parallel()

	stack := HStack(NewText("ab"), nil, NewText("cde"), NewText("")).WithGap(2)
	view, rects := stack.Layout(DefaultContext())

	require.Len(t, rects, 4)
	assert.Equal(t, ripple.Rect{X: 0, Width: 2, Height: 1}, rects[0])
	assert.Equal(t, ripple.Rect{}, rects[1])
	assert.Equal(t, ripple.Rect{X: 4, Width: 3, Height: 1}, rects[2])
	assert.Equal(t, ripple.Rect{}, rects[3])
	assert.Equal(t, "ab  cde", ansi.Strip(view))
}

func TestVStackLayoutReportsChildRects(t *testing.T) {
	t.Parallel()

	stack := VStack(NewText("one"), NewText("two\nlines")).WithGap(1)
	view, rects := stack.Layout(DefaultContext())

	require.Len(t, rects, 2)
	assert.Equal(t, ripple.Rect{Y: 0, Width: 3, Height: 1}, rects[0])
	assert.Equal(t, ripple.Rect{Y: 2, Width: 5, Height: 2}, rects[1])
	assert.Equal(t, 4, lipgloss.Height(view))

	lines := strings.Split(ansi.Strip(view), "\n")
	assert.Equal(t, "two", strings.TrimSpace(lines[2]))
}

func TestVStackWithoutGap(t *testing.T) {
	t.Parallel()

	require.NotPanics(t, func() {
		assert.Equal(t, "a", ansi.Strip(VStack(NewText("a")).View()))
	})

	view, rects := VStack(NewText("a"), NewText("b")).Layout(DefaultContext())
	assert.Equal(t, 2, lipgloss.Height(view))
	assert.Equal(t, ripple.Rect{Y: 1, Width: 1, Height: 1}, rects[1])
}

func TestStackNegativeGapActsAsZero(t *testing.T) {
	t.Parallel()

	require.NotPanics(t, func() {
		view, rects := VStack(NewText("a"), NewText("b")).WithGap(-3).Layout(DefaultContext())
		assert.Equal(t, "a\nb", ansi.Strip(view))
		assert.Equal(t, 1, rects[1].Y)

		view, rects = HStack(NewText("a"), NewText("b")).WithGap(-1).Layout(DefaultContext())
		assert.Equal(t, "ab", ansi.Strip(view))
		assert.Equal(t, 1, rects[1].X)
	})
}

func TestStackPassesContextToChildren(t *testing.T) {
	t.Parallel()

	ctx := DefaultContext().WithParentWidth(12)
	_, rects := VStack(NewDivider()).Layout(ctx)
	assert.Equal(t, 12, rects[0].Width)

	fixed := NewDivider().WithChar("=").WithWidth(5)
	assert.Equal(t, "=====", ansi.Strip(fixed.ViewWithContext(ctx)))
	assert.Equal(t, defaultDividerWidth, lipgloss.Width(NewDivider().View()))
}

func TestEmptyStack(t *testing.T) {
	t.Parallel()

	view, rects := NewStack().Layout(DefaultContext())
	assert.Empty(t, rects)
	assert.Empty(t, ansi.Strip(view))
}

func TestTextHelpersUseTypography(t *testing.T) {
	t.Parallel()

	theme := DefaultTheme()
	title := TitleText("Kit")
	assert.Equal(t, "Kit", title.Content())
	assert.True(t, title.ComputeStyle(theme).GetBold())

	hint := HintText("press tab")
	assert.Equal(t, theme.Typography.Hint.GetForeground(), hint.ComputeStyle(theme).GetForeground())
}
