package components

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/kinetic/internal/logger"
	"github.com/alexisbeaulieu97/kinetic/internal/ui/ripple"
	"github.com/alexisbeaulieu97/kinetic/internal/ui/variant"
	kerrors "github.com/alexisbeaulieu97/kinetic/pkg/errors"
)

// RadioOption is one choice of a RadioGroup.
type RadioOption struct {
	Label    string
	Value    string
	Disabled bool
}

// RadioGroupProps configure a RadioGroup.
type RadioGroupProps struct {
	Options  []RadioOption
	Value    string
	Color    variant.ColorRole
	Disabled bool
	OnChange func(value string) tea.Cmd
}

// RadioGroup keeps several controlled radios in sync with one selected
// value.
type RadioGroup struct {
	radios   []*Radio
	value    string
	onChange func(string) tea.Cmd
	gap      int
	log      *logger.Logger
}

// NewRadioGroup creates one controlled radio per option.
func NewRadioGroup(props RadioGroupProps, opts ...Option) (*RadioGroup, error) {
	o := collect(opts)
	g := &RadioGroup{
		value:    props.Value,
		onChange: props.OnChange,
		gap:      2,
		log:      o.log.WithComponent("radio-group"),
	}

	seen := make(map[string]bool, len(props.Options))
	for i, opt := range props.Options {
		if seen[opt.Value] {
			return nil, kerrors.NewValidationError("options", fmt.Sprintf("duplicate value %q", opt.Value), nil)
		}
		seen[opt.Value] = true

		radio, err := NewRadio(RadioProps{
			Label:    opt.Label,
			Color:    props.Color,
			Disabled: props.Disabled || opt.Disabled,
			Checked:  Controlled(opt.Value == props.Value),
			Value:    opt.Value,
			OnChange: g.proposed,
		}, opts...)
		if err != nil {
			return nil, kerrors.NewValidationError("options", fmt.Sprintf("option %d: %v", i, err), err)
		}
		g.radios = append(g.radios, radio)
	}
	return g, nil
}

// proposed receives the value a radio would take. Only selections change
// the group: a checked radio cannot be cleared by interacting with it.
func (g *RadioGroup) proposed(ev ChangeEvent) tea.Cmd {
	if !ev.Checked || ev.Value == g.value {
		return nil
	}
	return g.Select(ev.Value)
}

// Select makes value the selected option and notifies OnChange.
func (g *RadioGroup) Select(value string) tea.Cmd {
	known := false
	for _, r := range g.radios {
		if r.Value() == value {
			known = true
		}
	}
	if !known {
		g.log.Warn("unknown option selected", map[string]any{"value": value})
		return nil
	}

	g.value = value
	for _, r := range g.radios {
		// Every radio in the group is controlled, so this cannot fail.
		_ = r.SetChecked(r.Value() == value)
	}
	if g.onChange == nil {
		return nil
	}
	return g.onChange(value)
}

// Value returns the selected value.
func (g *RadioGroup) Value() string {
	return g.value
}

// Radios returns the radios in option order.
func (g *RadioGroup) Radios() []*Radio {
	return g.radios
}

// Update forwards msg to every radio.
func (g *RadioGroup) Update(msg tea.Msg) tea.Cmd {
	cmds := make([]tea.Cmd, 0, len(g.radios))
	for _, r := range g.radios {
		cmds = append(cmds, r.Update(msg))
	}
	return tea.Batch(cmds...)
}

// WithGap sets the number of cells between radios.
func (g *RadioGroup) WithGap(gap int) *RadioGroup {
	g.gap = gap
	return g
}

// View renders the group on one row.
func (g *RadioGroup) View() string {
	return g.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the group on one row.
func (g *RadioGroup) ViewWithContext(ctx RenderContext) string {
	view, _ := g.Layout(ctx)
	return view
}

// Layout renders the group and reports each radio's rect relative to the
// group origin, in option order.
func (g *RadioGroup) Layout(ctx RenderContext) (string, []ripple.Rect) {
	children := make([]Renderable, len(g.radios))
	for i, r := range g.radios {
		children[i] = r
	}
	return HStack(children...).WithGap(g.gap).Layout(ctx)
}
