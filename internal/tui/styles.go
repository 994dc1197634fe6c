package tui

import "github.com/charmbracelet/lipgloss"

// indent is the left offset of every section body, in cells.
const indent = 2

var (
	sectionStyle = lipgloss.NewStyle().Bold(true).MarginTop(1)
	bodyStyle    = lipgloss.NewStyle().PaddingLeft(indent)
	helpStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
)
