package components

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/kinetic/internal/ui/variant"
)

// InteractionState carries the transient state that selects between the
// resting and interactive directives of a resolved set.
type InteractionState struct {
	Hovered  bool
	Focused  bool
	Disabled bool
}

const (
	capLeft  = "▐"
	capRight = "▌"
)

// Surface is a directive set applied to terminal output. The renderer is the
// only place that knows how directive values map onto lipgloss.
type Surface struct {
	set   variant.Set
	state InteractionState
}

// NewSurface collapses set and pairs it with state.
func NewSurface(set variant.Set, state InteractionState) Surface {
	return Surface{set: set.Collapse(), state: state}
}

func (s Surface) value(p variant.Property) string {
	v, _ := s.set.Value(p)
	return v
}

// background picks the hover background while hovered or focused.
func (s Surface) background() string {
	bg := s.value(variant.PropBackground)
	if s.state.Disabled || !(s.state.Hovered || s.state.Focused) {
		return bg
	}
	if hover := s.value(variant.PropHoverBackground); hover != "" {
		return hover
	}
	return bg
}

func (s Surface) foreground() string {
	fg := s.value(variant.PropForeground)
	if fg == variant.CurrentColor {
		return ""
	}
	return fg
}

func (s Surface) rounded() bool {
	switch s.value(variant.PropRadius) {
	case "md", "lg", "full":
		return true
	}
	return false
}

func (s Surface) border(theme Theme) (lipgloss.Border, bool) {
	switch s.value(variant.PropBorderStyle) {
	case "normal", "solid":
		if s.rounded() {
			return theme.Borders.Rounded, true
		}
		return theme.Borders.Normal, true
	case "dashed":
		return theme.Borders.Dashed, true
	}
	return lipgloss.Border{}, false
}

// capped reports whether the surface draws half-block end caps to suggest a
// pill shape on a filled background.
func (s Surface) capped() bool {
	if s.value(variant.PropRadius) != "full" {
		return false
	}
	if _, bordered := s.border(Theme{}); bordered {
		return false
	}
	switch s.background() {
	case "", variant.Transparent, variant.None:
		return false
	}
	return true
}

func atoi(v string) int {
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil || n < 0 {
		return 0
	}
	return n
}

func dimmed(v string) bool {
	f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	return err == nil && f < 1
}

// Style maps the collapsed directives onto base.
func (s Surface) Style(base lipgloss.Style, ctx RenderContext) lipgloss.Style {
	theme := ctx.Theme
	style := base

	if c := theme.Ink(s.background()); c != nil {
		style = style.Background(c)
	}
	if c := theme.Ink(s.foreground()); c != nil {
		style = style.Foreground(c)
	}

	frame := 0
	if b, ok := s.border(theme); ok {
		style = style.Border(b)
		frame = 2
		if c := theme.Ink(s.value(variant.PropBorderColor)); c != nil {
			style = style.BorderForeground(c)
		} else if c := theme.Ink(s.foreground()); c != nil {
			style = style.BorderForeground(c)
		}
	}

	style = style.
		PaddingLeft(atoi(s.value(variant.PropPaddingX))).
		PaddingRight(atoi(s.value(variant.PropPaddingX))).
		PaddingTop(atoi(s.value(variant.PropPaddingY))).
		PaddingBottom(atoi(s.value(variant.PropPaddingY)))

	switch s.value(variant.PropFontWeight) {
	case "semibold", "bold":
		style = style.Bold(true)
	}
	switch s.value(variant.PropTextSize) {
	case "base", "lg", "xl":
		style = style.Bold(true)
	}

	if s.value(variant.PropHoverUnderline) == "true" && (s.state.Hovered || s.state.Focused) && !s.state.Disabled {
		style = style.Underline(true)
	}
	if dimmed(s.value(variant.PropOpacity)) {
		style = style.Faint(true)
	}
	if s.state.Disabled && dimmed(s.value(variant.PropDisabledDim)) {
		style = style.Faint(true)
	}

	if s.value(variant.PropWidth) == "full" && ctx.ParentWidth > 0 {
		if s.capped() {
			frame += 2
		}
		if w := ctx.ParentWidth - frame; w > 0 {
			style = style.Width(w).Align(lipgloss.Center)
		}
	}
	return style
}

// Render applies the surface to content, adding end caps for filled pills.
func (s Surface) Render(base lipgloss.Style, content string, ctx RenderContext) string {
	body := s.Style(base, ctx).Render(content)
	if !s.capped() {
		return body
	}

	caps := lipgloss.NewStyle()
	if c := ctx.Theme.Ink(s.background()); c != nil {
		caps = caps.Foreground(c)
	}
	if s.state.Disabled && dimmed(s.value(variant.PropDisabledDim)) {
		caps = caps.Faint(true)
	}
	height := lipgloss.Height(body)
	left := caps.Render(strings.TrimSuffix(strings.Repeat(capLeft+"\n", height), "\n"))
	right := caps.Render(strings.TrimSuffix(strings.Repeat(capRight+"\n", height), "\n"))
	return lipgloss.JoinHorizontal(lipgloss.Top, left, body, right)
}

// Indicator renders the two-state option indicator from the indicator
// directives: a pair of brackets in the border color around a dot drawn in
// the fill color when checked.
func (s Surface) Indicator(checked bool, ctx RenderContext) string {
	theme := ctx.Theme
	fill := s.value(variant.PropIndicatorFill)
	border := s.value(variant.PropIndicatorBorder)

	fillInk := theme.Ink(fill)
	if fill == variant.CurrentColor {
		fillInk = theme.Palette.Surface.OnBase
	}

	edge := lipgloss.NewStyle()
	switch {
	case theme.Ink(border) != nil:
		edge = edge.Foreground(theme.Ink(border))
	case fillInk != nil:
		edge = edge.Foreground(fillInk)
	}

	centre := lipgloss.NewStyle()
	glyph := " "
	if checked {
		glyph = "●"
		if fillInk != nil {
			centre = centre.Foreground(fillInk)
		}
		// A disabled checked option draws its dot in the dot color on a
		// washed fill.
		if dot := s.value(variant.PropIndicatorDot); dot != "" && s.state.Disabled {
			if c := theme.Ink(dot); c != nil {
				centre = centre.Foreground(c)
			}
		}
	} else if fillInk != nil {
		centre = centre.Background(fillInk)
	}

	if dimmed(s.value(variant.PropOpacity)) {
		edge = edge.Faint(true)
		centre = centre.Faint(true)
	}
	return edge.Render("(") + centre.Render(glyph) + edge.Render(")")
}
