package components

import (
	"sync/atomic"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/alexisbeaulieu97/kinetic/internal/logger"
	"github.com/alexisbeaulieu97/kinetic/internal/ui/ripple"
	"github.com/alexisbeaulieu97/kinetic/internal/ui/variant"
	kerrors "github.com/alexisbeaulieu97/kinetic/pkg/errors"
)

var lastID int64

func nextID() int {
	return int(atomic.AddInt64(&lastID, 1))
}

// HTMLType is the native type of an action-mode button.
type HTMLType string

const (
	HTMLTypeButton HTMLType = "button"
	HTMLTypeSubmit HTMLType = "submit"
	HTMLTypeReset  HTMLType = "reset"
)

// Region names a part of a component that accepts directive overrides.
type Region string

// RegionButton is the primary surface of an action element.
const RegionButton Region = "button"

// Tag is the kind of element a button renders as.
type Tag int

const (
	TagButton Tag = iota
	TagAnchor
)

func (t Tag) String() string {
	if t == TagAnchor {
		return "a"
	}
	return "button"
}

// Element describes the rendered element and the attributes it carries.
type Element struct {
	Tag      Tag
	Href     string
	Target   string
	Type     HTMLType
	Disabled bool
	Attrs    map[string]string
}

// ButtonProps are the caller-supplied properties of an action element.
type ButtonProps struct {
	Label     string
	Kind      variant.Kind
	Treatment variant.Treatment
	Color     variant.ColorRole
	Danger    bool
	Size      variant.Size
	Shape     variant.Shape
	Block     bool
	Ghost     bool
	Disabled  bool
	Loading   LoadingProp

	Icon         string
	IconPosition IconPosition

	Href     string
	Target   string
	HTMLType HTMLType

	// AutoInsertSpace defaults to true when nil.
	AutoInsertSpace *bool

	OnClick   func() tea.Cmd
	Overrides map[Region]variant.Set
	Attrs     map[string]string
}

// Inputs returns the style inputs carried by the props.
func (p ButtonProps) Inputs() variant.Inputs {
	return variant.Inputs{
		Kind:      p.Kind,
		Treatment: p.Treatment,
		Color:     p.Color,
		Size:      p.Size,
		Shape:     p.Shape,
		Block:     p.Block,
		Ghost:     p.Ghost,
		Danger:    p.Danger,
	}
}

// Validate rejects props the element cannot render.
func (p ButtonProps) Validate() error {
	if err := p.Inputs().Validate(); err != nil {
		return err
	}
	switch p.HTMLType {
	case "", HTMLTypeButton, HTMLTypeSubmit, HTMLTypeReset:
	default:
		return kerrors.NewConfigError("htmlType", string(p.HTMLType), []string{"button", "submit", "reset"})
	}
	if p.IconPosition != IconStart && p.IconPosition != IconEnd {
		return kerrors.NewConfigError("iconPosition", p.IconPosition.String(), []string{"start", "end"})
	}
	if p.Loading.Delay < 0 {
		return kerrors.NewValidationError("loading.delay", "must not be negative", nil)
	}
	return nil
}

func (p ButtonProps) autoInsertSpace() bool {
	return p.AutoInsertSpace == nil || *p.AutoInsertSpace
}

// options are shared by every interactive component constructor.
type options struct {
	clock   Clock
	log     *logger.Logger
	spinner *spinner.Spinner
	ripple  []ripple.Option
}

// Option configures an interactive component.
type Option func(*options)

// WithClock replaces the clock used for delayed loading.
func WithClock(c Clock) Option {
	return func(o *options) { o.clock = c }
}

// WithLogger attaches a logger.
func WithLogger(l *logger.Logger) Option {
	return func(o *options) { o.log = l }
}

// WithSpinner replaces the default loading spinner frames.
func WithSpinner(s spinner.Spinner) Option {
	return func(o *options) { o.spinner = &s }
}

// WithRippleOptions passes options through to the ripple engine of
// components that have one.
func WithRippleOptions(opts ...ripple.Option) Option {
	return func(o *options) { o.ripple = append(o.ripple, opts...) }
}

func collect(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Button is an action element. It renders as a hyperlink when Href is set
// and as an action button otherwise.
type Button struct {
	BaseComponent
	id      int
	props   ButtonProps
	loading loadingMachine
	spinner spinner.Model
	focused bool
	hovered bool
	log     *logger.Logger
}

// NewButton validates props and creates a button. Call Init to apply the
// initial loading prop.
func NewButton(props ButtonProps, opts ...Option) (*Button, error) {
	if err := props.Validate(); err != nil {
		return nil, err
	}
	o := collect(opts)

	id := nextID()
	sp := spinner.New(spinner.WithSpinner(spinner.MiniDot))
	if o.spinner != nil {
		sp.Spinner = *o.spinner
	}

	return &Button{
		BaseComponent: NewBaseComponent(),
		id:            id,
		props:         props,
		loading:       newLoadingMachine(id, o.clock),
		spinner:       sp,
		log:           o.log.WithComponent("button").WithFields(map[string]any{"id": id}),
	}, nil
}

// ID returns the instance identity used to route messages.
func (b *Button) ID() int {
	return b.id
}

// Props returns a copy of the current props.
func (b *Button) Props() ButtonProps {
	return b.props
}

// Init applies the initial loading prop.
func (b *Button) Init() tea.Cmd {
	return b.SetLoading(b.props.Loading)
}

// SetLoading drives the loading state machine. Turning loading off or on
// without a delay cancels any pending timer; a delayed prop arms a new timer
// that replaces the previous one.
func (b *Button) SetLoading(prop LoadingProp) tea.Cmd {
	was := b.loading.state
	b.props.Loading = prop
	cmd := b.loading.set(prop)

	b.log.Debug("loading updated", map[string]any{
		"from":  was.String(),
		"to":    b.loading.state.String(),
		"delay": prop.Delay.String(),
	})

	if was != Loading && b.loading.state == Loading {
		return tea.Batch(cmd, b.startIndicator())
	}
	return cmd
}

// Dispose cancels any outstanding timer. The button must not be used after
// Dispose.
func (b *Button) Dispose() {
	b.loading.stop()
}

// State returns the loading state.
func (b *Button) State() LoadingState {
	return b.loading.state
}

// IsLoading reports whether the loading indicator is showing.
func (b *Button) IsLoading() bool {
	return b.loading.state == Loading
}

// IsInert reports whether clicks are ignored: when disabled or loading.
func (b *Button) IsInert() bool {
	return b.props.Disabled || b.IsLoading()
}

// Click invokes the click handler unless the button is inert.
func (b *Button) Click() tea.Cmd {
	if b.IsInert() {
		b.log.Debug("click ignored", map[string]any{"disabled": b.props.Disabled, "loading": b.IsLoading()})
		return nil
	}
	if b.props.OnClick == nil {
		return nil
	}
	return b.props.OnClick()
}

// Update routes timer, spinner and key messages.
func (b *Button) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case loadingElapsedMsg:
		if b.loading.elapsed(msg) {
			b.log.Debug("loading delay elapsed")
			return b.startIndicator()
		}
	case spinner.TickMsg:
		if !b.IsLoading() || b.props.Loading.Icon != "" {
			return nil
		}
		var cmd tea.Cmd
		b.spinner, cmd = b.spinner.Update(msg)
		return cmd
	case tea.KeyMsg:
		if !b.focused {
			return nil
		}
		switch msg.String() {
		case "enter", " ":
			return b.Click()
		}
	}
	return nil
}

func (b *Button) startIndicator() tea.Cmd {
	if b.props.Loading.Icon != "" {
		return nil
	}
	return b.spinner.Tick
}

// Content returns the inner content: loading indicator, icon and label.
func (b *Button) Content() string {
	indicator := ""
	if b.IsLoading() {
		indicator = b.props.Loading.Icon
		if indicator == "" {
			indicator = b.spinner.View()
		}
	}
	label := b.props.Label
	if b.props.autoInsertSpace() {
		label = AutoSpace(label)
	}
	return composeContent(indicator, b.props.Icon, b.props.IconPosition, label)
}

// Element describes the element the button renders as.
func (b *Button) Element() Element {
	if b.props.Href != "" {
		return Element{
			Tag:    TagAnchor,
			Href:   b.props.Href,
			Target: b.props.Target,
			Attrs:  b.props.Attrs,
		}
	}
	htmlType := b.props.HTMLType
	if htmlType == "" {
		htmlType = HTMLTypeButton
	}
	return Element{
		Tag:      TagButton,
		Type:     htmlType,
		Disabled: b.IsInert(),
		Attrs:    b.props.Attrs,
	}
}

// Resolution returns the resolved style treatment, color and directives
// including caller overrides.
func (b *Button) Resolution() (variant.Resolution, variant.Set) {
	res := variant.Resolve(b.props.Inputs())
	return res, res.With(b.props.Overrides[RegionButton])
}

// Surface returns the directive set applied to the button in its current
// interaction state.
func (b *Button) Surface() Surface {
	_, set := b.Resolution()
	return NewSurface(set, InteractionState{
		Hovered:  b.hovered,
		Focused:  b.focused,
		Disabled: b.IsInert(),
	})
}

// View renders the button.
func (b *Button) View() string {
	return b.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the button with the given theme context.
func (b *Button) ViewWithContext(ctx RenderContext) string {
	out := b.Surface().Render(b.ComputeStyle(ctx.Theme), b.Content(), ctx)
	if b.props.Href != "" {
		out = ansi.SetHyperlink(b.props.Href) + out + ansi.ResetHyperlink()
	}
	return out
}

// SetFocused marks the button as focused.
func (b *Button) SetFocused(focused bool) {
	b.focused = focused
}

// Focused reports whether the button has focus.
func (b *Button) Focused() bool {
	return b.focused
}

// SetHovered marks the pointer as over the button.
func (b *Button) SetHovered(hovered bool) {
	b.hovered = hovered
}

// SetDisabled updates the disabled prop.
func (b *Button) SetDisabled(disabled bool) {
	b.props.Disabled = disabled
}

// WithStyle sets the button base style.
func (b *Button) WithStyle(style lipgloss.Style) *Button {
	b.SetStyle(style)
	return b
}

// WithAppliers applies theme-based style modifiers.
func (b *Button) WithAppliers(appliers ...StyleFunc) *Button {
	b.AddAppliers(appliers...)
	return b
}

// WithFocused sets the focus state.
func (b *Button) WithFocused(focused bool) *Button {
	b.focused = focused
	return b
}
