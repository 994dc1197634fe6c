package tui

import (
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/kinetic/internal/ui/components"
	"github.com/alexisbeaulieu97/kinetic/internal/ui/ripple"
)

const helpText = "tab/shift+tab focus • enter/space activate • click with the mouse • t theme • q quit"

type regionKind int

const (
	regionButton regionKind = iota
	regionGroupRadio
	regionRadio
)

// region is the screen area of one control, in absolute cells.
type region struct {
	kind  regionKind
	index int
	rect  ripple.Rect
}

func regionAt(regions []region, x, y int) (region, bool) {
	for _, r := range regions {
		if r.rect.Contains(x, y) {
			return r, true
		}
	}
	return region{}, false
}

func hitButton(regions []region, index, x, y int) bool {
	for _, r := range regions {
		if r.kind == regionButton && r.index == index {
			return r.rect.Contains(x, y)
		}
	}
	return false
}

// canvas stacks rendered blocks top to bottom and tracks where controls land.
type canvas struct {
	blocks  []string
	y       int
	regions []region
}

// add appends a block and returns the row it starts on.
func (c *canvas) add(block string) int {
	y := c.y
	c.blocks = append(c.blocks, block)
	c.y += lipgloss.Height(block)
	return y
}

// place records a control rect reported relative to a section body that
// starts on row y.
func (c *canvas) place(kind regionKind, index int, rect ripple.Rect, y int) {
	if rect.Empty() {
		return
	}
	rect.X += indent
	rect.Y += y
	c.regions = append(c.regions, region{kind: kind, index: index, rect: rect})
}

func (c *canvas) String() string {
	return strings.Join(c.blocks, "\n")
}

// View renders the current state of the model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	view, _ := m.render()
	return view
}

func (m Model) contentWidth() int {
	if w := m.width - indent; w > 20 {
		return w
	}
	return 20
}

func (m Model) render() (string, []region) {
	ctx := components.DefaultContext().WithTheme(m.theme).WithParentWidth(m.contentWidth())
	var c canvas

	c.add(components.NewText(m.cfg.Title).
		WithAppliers(components.Typography(components.TypographyVariantTitle)).
		ViewWithContext(ctx))
	c.add(bodyStyle.Render(components.NewDivider().
		WithAppliers(components.Foreground(components.PaletteNeutral)).
		ViewWithContext(ctx)))

	if len(m.buttons) > 0 {
		c.add(heading(ctx, "Buttons"))
		for _, row := range m.buttonRows(ctx) {
			children := make([]components.Renderable, len(row))
			for i, index := range row {
				children[i] = m.buttons[index].button
			}
			view, rects := components.HStack(children...).WithGap(1).Layout(ctx)
			y := c.add(bodyStyle.Render(view))
			for i, index := range row {
				c.place(regionButton, index, rects[i], y)
			}
		}
	}

	if m.group != nil {
		c.add(heading(ctx, "Radio group"))
		view, rects := m.group.Layout(ctx)
		y := c.add(bodyStyle.Render(view))
		for i, rect := range rects {
			c.place(regionGroupRadio, i, rect, y)
		}
	}

	if len(m.radios) > 0 {
		c.add(heading(ctx, "Radios"))
		children := make([]components.Renderable, len(m.radios))
		for i, r := range m.radios {
			children[i] = r
		}
		view, rects := components.VStack(children...).Layout(ctx)
		y := c.add(bodyStyle.Render(view))
		for i, rect := range rects {
			c.place(regionRadio, i, rect, y)
		}
	}

	if jobs := m.jobsView(); jobs != "" {
		c.add(heading(ctx, "Jobs"))
		c.add(bodyStyle.Render(jobs))
	}

	if m.activity.Len() > 0 {
		c.add(heading(ctx, "Activity"))
		c.add(bodyStyle.Render(components.NewText(m.activity.View()).
			WithAppliers(
				components.Foreground(components.PaletteNeutral),
				components.Border(components.BorderVariantRounded),
			).
			ViewWithContext(ctx)))
	}

	c.add(helpStyle.Render(helpText))
	return c.String(), c.regions
}

// heading renders a section title in the accent colour of the active theme.
func heading(ctx components.RenderContext, title string) string {
	return sectionStyle.Render(components.NewText(title).
		WithAppliers(
			components.Typography(components.TypographyVariantLabel),
			components.Foreground(components.PaletteAccent),
		).
		ViewWithContext(ctx))
}

// buttonRows wraps buttons into rows that fit the content width. A block
// button always gets a row of its own.
func (m Model) buttonRows(ctx components.RenderContext) [][]int {
	limit := m.contentWidth()
	var rows [][]int
	var row []int
	width := 0

	flush := func() {
		if len(row) > 0 {
			rows = append(rows, row)
		}
		row, width = nil, 0
	}

	for i, entry := range m.buttons {
		w := lipgloss.Width(entry.button.ViewWithContext(ctx))
		block := entry.button.Props().Block
		if block || (len(row) > 0 && width+1+w > limit) {
			flush()
		}
		if len(row) > 0 {
			width++
		}
		row = append(row, i)
		width += w
		if block {
			flush()
		}
	}
	flush()
	return rows
}

func (m Model) jobsView() string {
	if len(m.jobs) == 0 {
		return ""
	}
	indices := make([]int, 0, len(m.jobs))
	for index := range m.jobs {
		indices = append(indices, index)
	}
	sort.Ints(indices)

	lines := make([]string, 0, len(indices))
	for _, index := range indices {
		job := m.jobs[index]
		ratio := 0.0
		if job.total > 0 {
			ratio = float64(job.elapsed) / float64(job.total)
		}
		lines = append(lines, m.progress.View(m.buttons[index].label, ratio))
	}
	return strings.Join(lines, "\n")
}
