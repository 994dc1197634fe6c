package components

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/kinetic/internal/logger"
	"github.com/alexisbeaulieu97/kinetic/internal/ui/ripple"
	"github.com/alexisbeaulieu97/kinetic/internal/ui/variant"
	kerrors "github.com/alexisbeaulieu97/kinetic/pkg/errors"
)

// IndicatorWidth is the number of cells the option indicator occupies.
const IndicatorWidth = 3

type checkedMode int

const (
	uncontrolled checkedMode = iota
	controlled
)

func (m checkedMode) String() string {
	if m == controlled {
		return "controlled"
	}
	return "uncontrolled"
}

func modeOf(checked *bool) checkedMode {
	if checked != nil {
		return controlled
	}
	return uncontrolled
}

// Controlled returns a checked value for RadioProps.Checked. A radio created
// with a non-nil Checked reflects it and never changes it on its own.
func Controlled(checked bool) *bool {
	return &checked
}

// ChangeEvent is delivered to OnChange after an interaction.
type ChangeEvent struct {
	Checked bool
	Value   string
}

// RadioProps are the caller-supplied properties of a selectable element.
type RadioProps struct {
	Label    string
	Color    variant.ColorRole
	Disabled bool

	// Checked makes the radio controlled when non-nil. DefaultChecked seeds
	// the internal state of an uncontrolled radio.
	Checked        *bool
	DefaultChecked bool

	Value     string
	OnChange  func(ChangeEvent) tea.Cmd
	AutoFocus bool
	Attrs     map[string]string
}

// Validate rejects props the element cannot render.
func (p RadioProps) Validate() error {
	return variant.OptionInputs{Color: p.Color}.Validate()
}

// Radio is a selectable element with a ripple-wrapped indicator.
type Radio struct {
	BaseComponent
	id      int
	props   RadioProps
	mode    checkedMode
	inner   bool
	ripple  ripple.Model
	focused bool
	log     *logger.Logger
}

// NewRadio validates props and creates a radio. Whether it is controlled is
// decided here, once, from props.Checked.
func NewRadio(props RadioProps, opts ...Option) (*Radio, error) {
	if err := props.Validate(); err != nil {
		return nil, err
	}
	o := collect(opts)
	id := nextID()
	props.Checked = copyBool(props.Checked)

	rippleOpts := append([]ripple.Option{
		ripple.WithDisabled(props.Disabled),
		ripple.WithLogger(o.log),
	}, o.ripple...)

	return &Radio{
		BaseComponent: NewBaseComponent(),
		id:            id,
		props:         props,
		mode:          modeOf(props.Checked),
		inner:         props.DefaultChecked,
		ripple:        ripple.New(rippleOpts...),
		focused:       props.AutoFocus,
		log:           o.log.WithComponent("radio").WithFields(map[string]any{"id": id}),
	}, nil
}

func copyBool(v *bool) *bool {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}

// ID returns the instance identity.
func (r *Radio) ID() int {
	return r.id
}

// IsControlled reports whether the displayed state comes from props.
func (r *Radio) IsControlled() bool {
	return r.mode == controlled
}

// Checked returns the displayed checked state.
func (r *Radio) Checked() bool {
	if r.mode == controlled {
		return *r.props.Checked
	}
	return r.inner
}

// Value returns the value used for group comparison.
func (r *Radio) Value() string {
	return r.props.Value
}

// Label returns the label text.
func (r *Radio) Label() string {
	return r.props.Label
}

// Attrs returns the pass-through attributes.
func (r *Radio) Attrs() map[string]string {
	return r.props.Attrs
}

// Disabled reports whether the radio ignores interaction.
func (r *Radio) Disabled() bool {
	return r.props.Disabled
}

// Ripple returns the ripple engine wrapping the indicator.
func (r *Radio) Ripple() ripple.Model {
	return r.ripple
}

// SetRippleFade changes the color the indicator ripple fades towards.
func (r *Radio) SetRippleFade(color string) {
	r.ripple = r.ripple.SetFadeTo(color)
}

// SetProps replaces the props. A change between controlled and uncontrolled
// is rejected with a ModeSwitchError: the rest of the props still apply and
// the radio keeps the mode it was created with.
func (r *Radio) SetProps(props RadioProps) error {
	if err := props.Validate(); err != nil {
		return err
	}
	props.Checked = copyBool(props.Checked)

	var err error
	if next := modeOf(props.Checked); next != r.mode {
		err = kerrors.NewModeSwitchError("radio", r.mode.String(), next.String())
		r.log.Warn("checked mode switch rejected", map[string]any{"from": r.mode.String(), "to": next.String()})
		if r.mode == controlled {
			props.Checked = r.props.Checked
		} else {
			props.Checked = nil
		}
	}

	r.props = props
	r.ripple = r.ripple.SetDisabled(props.Disabled)
	return err
}

// SetChecked feeds a new value to a controlled radio. Uncontrolled radios
// own their state and reject it.
func (r *Radio) SetChecked(checked bool) error {
	if r.mode != controlled {
		r.log.Warn("checked value ignored on uncontrolled radio")
		return kerrors.NewModeSwitchError("radio", uncontrolled.String(), controlled.String())
	}
	r.props.Checked = &checked
	return nil
}

// Toggle is the keyboard path of an interaction. A controlled radio only
// reports the proposed value; an uncontrolled radio flips its own state
// first.
func (r *Radio) Toggle() tea.Cmd {
	if r.props.Disabled {
		return nil
	}
	next := !r.Checked()
	if r.mode == uncontrolled {
		r.inner = next
	}
	if r.props.OnChange == nil {
		return nil
	}
	return r.props.OnChange(ChangeEvent{Checked: next, Value: r.props.Value})
}

// Interact is the pointer path: it spawns a ripple on the indicator and
// toggles. Disabled radios do neither.
func (r *Radio) Interact(p ripple.Pointer, host ripple.Host) tea.Cmd {
	if r.props.Disabled {
		return nil
	}
	var cmd tea.Cmd
	r.ripple, cmd = r.ripple.Interact(p, host)
	return tea.Batch(cmd, r.Toggle())
}

// Update routes ripple animation messages and key presses.
func (r *Radio) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case ripple.FrameMsg, ripple.AnimationEndMsg:
		var cmd tea.Cmd
		r.ripple, cmd = r.ripple.Update(msg)
		return cmd
	case tea.KeyMsg:
		if !r.focused {
			return nil
		}
		switch msg.String() {
		case "enter", " ":
			return r.Toggle()
		}
	}
	return nil
}

// Surface returns the option directives in the current state.
func (r *Radio) Surface() Surface {
	set := variant.ResolveOption(variant.OptionInputs{
		Color:    r.props.Color,
		Disabled: r.props.Disabled,
		Checked:  r.Checked(),
	})
	return NewSurface(set, InteractionState{Focused: r.focused, Disabled: r.props.Disabled})
}

// IndicatorStyle is the computed style of the indicator, which the ripple
// engine samples for its color.
func (r *Radio) IndicatorStyle() ripple.ComputedStyle {
	s := r.Surface()
	color := s.value(variant.PropIndicatorFill)
	if !strings.HasPrefix(color, "#") {
		color = s.value(variant.PropIndicatorBorder)
	}
	if !strings.HasPrefix(color, "#") {
		color = ""
	}
	return ripple.ComputedStyle{BorderRadius: "full", Background: color}
}

// View renders the radio.
func (r *Radio) View() string {
	return r.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the indicator wrapped by its ripple row, followed
// by the label.
func (r *Radio) ViewWithContext(ctx RenderContext) string {
	surface := r.Surface()
	indicator := r.ripple.View(surface.Indicator(r.Checked(), ctx))

	labelStyle := r.ComputeStyle(ctx.Theme).Inherit(ctx.Theme.Typography.Label)
	if r.props.Disabled {
		labelStyle = labelStyle.Faint(true)
	}
	if r.focused && !r.props.Disabled {
		labelStyle = labelStyle.Underline(true)
	}
	if r.props.Label == "" {
		return indicator
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, indicator, " ", labelStyle.Render(r.props.Label))
}

// SetFocused marks the radio as focused.
func (r *Radio) SetFocused(focused bool) {
	r.focused = focused
}

// Focused reports whether the radio has focus.
func (r *Radio) Focused() bool {
	return r.focused
}

// WithAppliers applies theme-based style modifiers to the label.
func (r *Radio) WithAppliers(appliers ...StyleFunc) *Radio {
	r.AddAppliers(appliers...)
	return r
}
