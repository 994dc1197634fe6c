package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/kinetic/internal/ui/variant"
)

// ColourSet represents a semantic color set with base, on-base and muted colors.
// All colors are adaptive, providing both light and dark mode variants.
type ColourSet struct {
	Base   lipgloss.AdaptiveColor
	OnBase lipgloss.AdaptiveColor
	Muted  lipgloss.AdaptiveColor
}

// Palette describes the semantic colour slots the kit needs around its
// controls. Control colors themselves come from the resolved directives.
type Palette struct {
	Surface ColourSet
	Accent  ColourSet
	Neutral ColourSet
}

// BorderVariant selects one of the theme borders.
type BorderVariant int

const (
	BorderVariantNone BorderVariant = iota
	BorderVariantNormal
	BorderVariantRounded
	BorderVariantDashed
)

// BorderSet groups reusable border definitions.
type BorderSet struct {
	None    lipgloss.Border
	Normal  lipgloss.Border
	Rounded lipgloss.Border
	Dashed  lipgloss.Border
}

// TypographyScale contains the text presets used by labels and headings.
type TypographyScale struct {
	Title lipgloss.Style
	Label lipgloss.Style
	Hint  lipgloss.Style
}

// TypographyVariant represents a strongly-typed typography token.
type TypographyVariant int

const (
	TypographyVariantLabel TypographyVariant = iota
	TypographyVariantTitle
	TypographyVariantHint
)

// Theme represents an immutable styling theme for components.
type Theme struct {
	Name       string
	Palette    Palette
	Borders    BorderSet
	Typography TypographyScale
}

// dashedBorder approximates a dashed outline with light dash glyphs.
func dashedBorder() lipgloss.Border {
	return lipgloss.Border{
		Top:         "╌",
		Bottom:      "╌",
		Left:        "╎",
		Right:       "╎",
		TopLeft:     "╭",
		TopRight:    "╮",
		BottomLeft:  "╰",
		BottomRight: "╯",
	}
}

func ac(light, dark string) lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: light, Dark: dark}
}

// DefaultTheme returns the default theme for components.
func DefaultTheme() Theme {
	palette := Palette{
		Surface: ColourSet{
			Base:   ac("#ffffff", "#111827"),
			OnBase: ac("#111827", "#f9fafb"),
			Muted:  ac("#e5e7eb", "#1f2937"),
		},
		Accent: ColourSet{
			Base:   ac("#6366f1", "#818cf8"),
			OnBase: ac("#f8fafc", "#0b1120"),
			Muted:  ac("#4f46e5", "#4338ca"),
		},
		Neutral: ColourSet{
			Base:   ac("#64748b", "#94a3b8"),
			OnBase: ac("#f1f5f9", "#0f172a"),
			Muted:  ac("#475569", "#334155"),
		},
	}

	return Theme{
		Name:    "light",
		Palette: palette,
		Borders: BorderSet{
			None:    lipgloss.Border{},
			Normal:  lipgloss.NormalBorder(),
			Rounded: lipgloss.RoundedBorder(),
			Dashed:  dashedBorder(),
		},
		Typography: defaultTypography(palette),
	}
}

func defaultTypography(p Palette) TypographyScale {
	base := lipgloss.NewStyle().Foreground(p.Surface.OnBase)
	return TypographyScale{
		Title: base.Bold(true).Foreground(p.Accent.Base),
		Label: base,
		Hint:  base.Foreground(p.Neutral.Base).Faint(true),
	}
}

// DarkTheme returns a dark theme variant.
func DarkTheme() Theme {
	theme := DefaultTheme()
	theme.Name = "dark"
	theme.Palette.Surface = ColourSet{
		Base:   ac("#111827", "#0b1120"),
		OnBase: ac("#f9fafb", "#e5e7eb"),
		Muted:  ac("#1f2937", "#111827"),
	}
	theme.Palette.Neutral = ColourSet{
		Base:   ac("#94a3b8", "#64748b"),
		OnBase: ac("#0f172a", "#f1f5f9"),
		Muted:  ac("#334155", "#1f2937"),
	}
	theme.Typography = defaultTypography(theme.Palette)
	return theme
}

// LightTheme returns a light theme variant.
func LightTheme() Theme {
	return DefaultTheme()
}

// ThemeByName looks up one of the built-in themes.
func ThemeByName(name string) (Theme, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "light", "default":
		return LightTheme(), true
	case "dark":
		return DarkTheme(), true
	}
	return Theme{}, false
}

// Ink converts a directive color value into a terminal color. Transparent
// and empty values yield nil. The neutral black of the default color role is
// mapped to the surface text color so it stays legible on dark terminals.
func (t Theme) Ink(value string) lipgloss.TerminalColor {
	switch strings.TrimSpace(value) {
	case "", variant.Transparent, variant.None, variant.CurrentColor:
		return nil
	case variant.Palette[variant.ColorDefault].Base:
		return t.Palette.Surface.OnBase
	}
	return lipgloss.Color(value)
}

// BorderForVariant returns the border style for the given variant.
func BorderForVariant(theme Theme, v BorderVariant) lipgloss.Border {
	switch v {
	case BorderVariantNormal:
		return theme.Borders.Normal
	case BorderVariantRounded:
		return theme.Borders.Rounded
	case BorderVariantDashed:
		return theme.Borders.Dashed
	default:
		return theme.Borders.None
	}
}

// TypographyStyle returns the specified typography style from the given theme.
func TypographyStyle(theme Theme, v TypographyVariant) lipgloss.Style {
	switch v {
	case TypographyVariantTitle:
		return theme.Typography.Title
	case TypographyVariantHint:
		return theme.Typography.Hint
	default:
		return theme.Typography.Label
	}
}

// PaletteSlot provides access to a semantic colour slot from a Palette.
type PaletteSlot func(Palette) ColourSet

// Predefined semantic palette slots for type-safe theme access.
var (
	PaletteSurface PaletteSlot = func(p Palette) ColourSet { return p.Surface }
	PaletteAccent  PaletteSlot = func(p Palette) ColourSet { return p.Accent }
	PaletteNeutral PaletteSlot = func(p Palette) ColourSet { return p.Neutral }
)

// Background applies a semantic background colour and matching foreground.
func Background(slot PaletteSlot) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		cs := slot(theme.Palette)
		return base.Background(cs.Base).Foreground(cs.OnBase)
	}
}

// Foreground applies a semantic foreground colour without changing the background.
func Foreground(slot PaletteSlot) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Foreground(slot(theme.Palette).Base)
	}
}

// Border applies a border style from the theme.
func Border(v BorderVariant) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Border(BorderForVariant(theme, v))
	}
}

// Typography applies typography styling.
func Typography(v TypographyVariant) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Inherit(TypographyStyle(theme, v))
	}
}

// MarginX adds horizontal margin in cells.
func MarginX(cells int) StyleFunc {
	return func(base lipgloss.Style, _ Theme) lipgloss.Style {
		return base.MarginLeft(cells).MarginRight(cells)
	}
}
