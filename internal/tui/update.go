package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/kinetic/internal/ui/components"
	"github.com/alexisbeaulieu97/kinetic/internal/ui/ripple"
)

// Update handles Bubbletea messages and updates model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case ButtonClickedMsg:
		return m.handleClick(msg.Index)

	case jobTickMsg:
		return m.advanceJob(msg.index)

	case GroupChangedMsg:
		m.activity = m.activity.Append("group", fmt.Sprintf("selected %q", msg.Value))
		return m, nil

	case RadioChangedMsg:
		return m.handleRadioChange(msg)

	case tea.QuitMsg:
		m.quitting = true
		return m, nil
	}

	return m, m.broadcast(msg)
}

// broadcast forwards a message to every control. Controls ignore messages
// addressed to another instance.
func (m Model) broadcast(msg tea.Msg) tea.Cmd {
	var cmds []tea.Cmd
	for _, entry := range m.buttons {
		cmds = append(cmds, entry.button.Update(msg))
	}
	if m.group != nil {
		cmds = append(cmds, m.group.Update(msg))
	}
	for _, r := range m.radios {
		cmds = append(cmds, r.Update(msg))
	}
	return tea.Batch(cmds...)
}

func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		m.quitting = true
		return m, tea.Quit

	case "tab", "right", "l":
		m.moveFocus(1)
		return m, nil

	case "shift+tab", "left", "h":
		m.moveFocus(-1)
		return m, nil

	case "t":
		if m.theme.Name == "dark" {
			m.setTheme(components.LightTheme())
		} else {
			m.setTheme(components.DarkTheme())
		}
		m.activity = m.activity.Append("theme", m.theme.Name)
		return m, nil
	}

	if f := m.focused(); f != nil {
		return m, f.Update(msg)
	}
	return m, nil
}

func (m *Model) moveFocus(delta int) {
	n := len(m.focusables)
	if n == 0 {
		return
	}
	m.focus = ((m.focus+delta)%n + n) % n
	m.applyFocus()
}

func (m Model) focused() focusable {
	if m.focus < 0 || m.focus >= len(m.focusables) {
		return nil
	}
	return m.focusables[m.focus]
}

func (m *Model) focusOn(target focusable) {
	for i, f := range m.focusables {
		if f == target {
			m.focus = i
			m.applyFocus()
			return
		}
	}
}

func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	_, regions := m.render()

	if msg.Action == tea.MouseActionMotion {
		for i, entry := range m.buttons {
			entry.button.SetHovered(hitButton(regions, i, msg.X, msg.Y))
		}
		return m, nil
	}

	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}

	region, ok := regionAt(regions, msg.X, msg.Y)
	if !ok {
		return m, nil
	}

	switch region.kind {
	case regionButton:
		button := m.buttons[region.index].button
		m.focusOn(button)
		return m, button.Click()
	case regionGroupRadio:
		radio := m.group.Radios()[region.index]
		m.focusOn(radio)
		return m, interact(radio, region.rect, msg.X)
	case regionRadio:
		radio := m.radios[region.index]
		m.focusOn(radio)
		return m, interact(radio, region.rect, msg.X)
	}
	return m, nil
}

// interact presses a radio whose row occupies rect. The ripple host is the
// indicator cell block at the start of the row; presses on the label are
// pulled onto the indicator's last column.
func interact(radio *components.Radio, rect ripple.Rect, x int) tea.Cmd {
	style := radio.IndicatorStyle()
	host := ripple.StaticHost{
		Rect:  ripple.Rect{X: rect.X, Y: rect.Y, Width: components.IndicatorWidth, Height: 1},
		Child: &style,
	}
	p := ripple.Pointer{X: x, Y: rect.Y}
	if last := rect.X + components.IndicatorWidth - 1; p.X > last {
		p.X = last
	}
	return radio.Interact(p, host)
}

func (m Model) handleClick(index int) (tea.Model, tea.Cmd) {
	if index < 0 || index >= len(m.buttons) {
		return m, nil
	}
	entry := m.buttons[index]

	if href := entry.button.Props().Href; href != "" {
		m.activity = m.activity.Append(entry.label, "open "+href)
		return m, nil
	}

	if entry.job <= 0 {
		m.activity = m.activity.Append(entry.label, "clicked")
		return m, nil
	}

	if _, running := m.jobs[index]; running {
		m.activity = m.activity.Append(entry.label, "already running")
		return m, nil
	}

	m.jobs[index] = jobState{total: entry.job}
	m.activity = m.activity.Append(entry.label, fmt.Sprintf("started %s job", entry.job))
	m.log.Debug("job started", map[string]any{"button": entry.label, "duration": entry.job.String()})
	return m, tea.Batch(entry.button.SetLoading(entry.loading), jobTick(index))
}

func jobTick(index int) tea.Cmd {
	return tea.Tick(jobStep, func(time.Time) tea.Msg { return jobTickMsg{index: index} })
}

func (m Model) advanceJob(index int) (tea.Model, tea.Cmd) {
	job, ok := m.jobs[index]
	if !ok {
		return m, nil
	}
	job.elapsed += jobStep
	if job.elapsed < job.total {
		m.jobs[index] = job
		return m, jobTick(index)
	}

	delete(m.jobs, index)
	entry := m.buttons[index]
	m.activity = m.activity.Append(entry.label, "finished")
	return m, entry.button.SetLoading(components.LoadingOff())
}

func (m Model) handleRadioChange(msg RadioChangedMsg) (tea.Model, tea.Cmd) {
	if msg.Index < 0 || msg.Index >= len(m.radios) {
		return m, nil
	}
	radio := m.radios[msg.Index]
	state := "unchecked"
	if msg.Event.Checked {
		state = "checked"
	}

	if radio.IsControlled() {
		// The gallery owns controlled radios and accepts every proposal.
		if err := radio.SetChecked(msg.Event.Checked); err != nil {
			m.log.Error(err, "controlled radio rejected value")
			return m, nil
		}
		m.activity = m.activity.Append(radio.Label(), state+" (controlled)")
		return m, nil
	}

	m.activity = m.activity.Append(radio.Label(), state)
	return m, nil
}
