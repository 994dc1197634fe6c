package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/kinetic/internal/config"
	"github.com/alexisbeaulieu97/kinetic/internal/logger"
	tuicomponents "github.com/alexisbeaulieu97/kinetic/internal/tui/components"
	"github.com/alexisbeaulieu97/kinetic/internal/ui/components"
	"github.com/alexisbeaulieu97/kinetic/internal/ui/ripple"
)

const (
	defaultWidth  = 80
	defaultHeight = 24
	activityLimit = 5
	jobStep       = 100 * time.Millisecond
)

// Options tune a gallery model.
type Options struct {
	Theme  components.Theme
	Logger *logger.Logger
	// Clock drives the loading delays of the buttons. Nil means the system clock.
	Clock components.Clock
	Width int
}

// focusable is a control that takes part in tab focus.
type focusable interface {
	SetFocused(bool)
	Focused() bool
	Update(tea.Msg) tea.Cmd
}

type buttonEntry struct {
	button *components.Button
	label  string
	// job is the simulated work started by a click; while it runs the button
	// shows the configured loading descriptor.
	job     time.Duration
	loading components.LoadingProp
}

type jobState struct {
	elapsed time.Duration
	total   time.Duration
}

// Model contains the Bubbletea state for the component gallery.
type Model struct {
	cfg   *config.Config
	theme components.Theme
	log   *logger.Logger

	buttons []buttonEntry
	group   *components.RadioGroup
	radios  []*components.Radio

	focusables []focusable
	focus      int

	jobs     map[int]jobState
	progress tuicomponents.Progress
	activity tuicomponents.ActivityLog

	width    int
	height   int
	quitting bool
}

// NewModel builds the gallery described by cfg. A nil cfg uses the built-in gallery.
func NewModel(cfg *config.Config, opts Options) (Model, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	width := opts.Width
	if width <= 0 {
		width = defaultWidth
	}
	theme := opts.Theme
	if theme.Name == "" {
		theme, _ = components.ThemeByName(cfg.ThemeName())
	}

	m := Model{
		cfg:      cfg,
		theme:    theme,
		log:      opts.Logger.WithComponent("gallery"),
		jobs:     make(map[int]jobState),
		progress: tuicomponents.NewProgress(24),
		activity: tuicomponents.NewActivityLog(activityLimit),
		width:    width,
		height:   defaultHeight,
	}

	componentOpts := []components.Option{
		components.WithLogger(opts.Logger),
		components.WithRippleOptions(ripple.WithFadeTo(fadeTarget(theme))),
	}
	if opts.Clock != nil {
		componentOpts = append(componentOpts, components.WithClock(opts.Clock))
	}

	for i, spec := range cfg.Buttons {
		props, err := spec.Props()
		if err != nil {
			return Model{}, err
		}
		entry := buttonEntry{label: buttonLabel(spec), job: spec.Job}
		if spec.Job > 0 {
			entry.loading = props.Loading
			if !entry.loading.Enabled {
				entry.loading = components.LoadingOn()
			}
			props.Loading = components.LoadingOff()
		}
		index := i
		props.OnClick = func() tea.Cmd {
			return func() tea.Msg { return ButtonClickedMsg{Index: index} }
		}
		button, err := components.NewButton(props, componentOpts...)
		if err != nil {
			return Model{}, err
		}
		entry.button = button
		m.buttons = append(m.buttons, entry)
		m.focusables = append(m.focusables, button)
	}

	if cfg.RadioGroup != nil {
		props, err := cfg.RadioGroup.Props()
		if err != nil {
			return Model{}, err
		}
		props.OnChange = func(value string) tea.Cmd {
			return func() tea.Msg { return GroupChangedMsg{Value: value} }
		}
		group, err := components.NewRadioGroup(props, componentOpts...)
		if err != nil {
			return Model{}, err
		}
		m.group = group
		for _, r := range group.Radios() {
			m.focusables = append(m.focusables, r)
		}
	}

	for i, spec := range cfg.Radios {
		props, err := spec.Props()
		if err != nil {
			return Model{}, err
		}
		index := i
		props.OnChange = func(ev components.ChangeEvent) tea.Cmd {
			return func() tea.Msg { return RadioChangedMsg{Index: index, Event: ev} }
		}
		radio, err := components.NewRadio(props, componentOpts...)
		if err != nil {
			return Model{}, err
		}
		m.radios = append(m.radios, radio)
		m.focusables = append(m.focusables, radio)
	}

	m.focus = m.initialFocus()
	m.applyFocus()
	return m, nil
}

func buttonLabel(spec config.ButtonSpec) string {
	if spec.Label != "" {
		return spec.Label
	}
	return spec.Icon
}

// fadeTarget is the surface colour of theme, which ripples fade into.
func fadeTarget(theme components.Theme) string {
	if theme.Name == "dark" {
		return theme.Palette.Surface.Base.Dark
	}
	return theme.Palette.Surface.Base.Light
}

// setTheme switches the theme and retargets every ripple at its surface.
func (m *Model) setTheme(theme components.Theme) {
	m.theme = theme
	fade := fadeTarget(theme)
	if m.group != nil {
		for _, r := range m.group.Radios() {
			r.SetRippleFade(fade)
		}
	}
	for _, r := range m.radios {
		r.SetRippleFade(fade)
	}
}

// initialFocus honours the first auto-focused control, else the first control.
func (m Model) initialFocus() int {
	for i, f := range m.focusables {
		if f.Focused() {
			return i
		}
	}
	return 0
}

func (m *Model) applyFocus() {
	for i, f := range m.focusables {
		f.SetFocused(i == m.focus)
	}
}

// Init mounts every button and sets the window title.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{tea.SetWindowTitle(m.cfg.Title)}
	for _, entry := range m.buttons {
		cmds = append(cmds, entry.button.Init())
	}
	return tea.Batch(cmds...)
}

// Close cancels outstanding loading timers.
func (m Model) Close() {
	for _, entry := range m.buttons {
		entry.button.Dispose()
	}
}

// Theme returns the active theme.
func (m Model) Theme() components.Theme {
	return m.theme
}

// Focus returns the index of the focused control in tab order.
func (m Model) Focus() int {
	return m.focus
}

// Buttons returns the gallery buttons in configuration order.
func (m Model) Buttons() []*components.Button {
	out := make([]*components.Button, len(m.buttons))
	for i, entry := range m.buttons {
		out[i] = entry.button
	}
	return out
}

// Group returns the radio group, or nil when none is configured.
func (m Model) Group() *components.RadioGroup {
	return m.group
}

// Radios returns the standalone radios in configuration order.
func (m Model) Radios() []*components.Radio {
	return append([]*components.Radio(nil), m.radios...)
}

// Activity returns the recent events.
func (m Model) Activity() tuicomponents.ActivityLog {
	return m.activity
}

// JobRunning reports whether the job of the button at index is in progress.
func (m Model) JobRunning(index int) bool {
	_, ok := m.jobs[index]
	return ok
}

// IsQuitting reports whether the user asked to leave.
func (m Model) IsQuitting() bool {
	return m.quitting
}
