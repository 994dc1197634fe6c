package components

import (
	"fmt"
	"math"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

// Progress renders how far a running job has got.
type Progress struct {
	bar progress.Model
}

// NewProgress creates a progress component whose bar is width cells wide.
func NewProgress(width int) Progress {
	bar := progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage())
	if width > 0 {
		bar.Width = width
	}
	return Progress{bar: bar}
}

// View renders label, the bar and a percentage for ratio. Ratios outside
// [0, 1] are clamped.
func (p Progress) View(label string, ratio float64) string {
	ratio = math.Max(0, math.Min(1, ratio))
	name := lipgloss.NewStyle().Bold(true).Render(label)
	pct := fmt.Sprintf("%3.0f%%", ratio*100)
	return lipgloss.JoinHorizontal(lipgloss.Left, name, " ", p.bar.ViewAs(ratio), " ", pct)
}

// Width returns the bar width in cells.
func (p Progress) Width() int {
	return p.bar.Width
}
