package ripple

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"
)

const (
	defaultFade   = "#ffffff"
	fallbackColor = "#9ca3af"

	glyphSpan      = "─"
	glyphRoundLeft = "╶"
	glyphRoundEnd  = "╴"
)

// View renders child with a feedback row beneath it. The row is always
// present so the host keeps a stable height while ripples come and go.
func (m Model) View(child string) string {
	width := lipgloss.Width(child)
	return lipgloss.JoinVertical(lipgloss.Left, child, m.overlay(width))
}

type cell struct {
	glyph string
	color string
}

func (m Model) overlay(width int) string {
	if width <= 0 {
		return ""
	}
	cells := make([]cell, width)

	// Later artifacts paint over earlier ones.
	for _, a := range m.artifacts {
		center := clamp(a.X, 0, width-1)
		reach := int(math.Ceil(a.progress * float64(width)))
		lo := clamp(center-reach, 0, width-1)
		hi := clamp(center+reach, 0, width-1)
		color := m.fade(a)
		rounded := isRounded(a.BorderRadius)
		for c := lo; c <= hi; c++ {
			glyph := glyphSpan
			if rounded && c == lo && lo != hi {
				glyph = glyphRoundLeft
			} else if rounded && c == hi && lo != hi {
				glyph = glyphRoundEnd
			}
			cells[c] = cell{glyph: glyph, color: color}
		}
	}

	var b strings.Builder
	for i := 0; i < len(cells); {
		j := i
		var run strings.Builder
		for j < len(cells) && cells[j].color == cells[i].color {
			if cells[j].glyph == "" {
				run.WriteByte(' ')
			} else {
				run.WriteString(cells[j].glyph)
			}
			j++
		}
		if cells[i].color == "" {
			b.WriteString(run.String())
		} else {
			b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(cells[i].color)).Render(run.String()))
		}
		i = j
	}
	return b.String()
}

// fade blends the artifact color towards the fade target as it progresses.
func (m Model) fade(a Artifact) string {
	base, err := colorful.Hex(a.Color)
	if err != nil {
		base, _ = colorful.Hex(fallbackColor)
	}
	target, err := colorful.Hex(m.fadeTo)
	if err != nil {
		return base.Hex()
	}
	return base.BlendLab(target, 0.8*clampFloat(a.progress, 0, 1)).Clamped().Hex()
}

func isRounded(radius string) bool {
	switch strings.TrimSpace(radius) {
	case "full", "50%", "9999px":
		return true
	}
	return false
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampFloat(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
