package ripple

import (
	"math"
	"slices"
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/harmonica"

	"github.com/alexisbeaulieu97/kinetic/internal/logger"
)

const (
	defaultFPS       = 60
	defaultFrequency = 6.0
	defaultDamping   = 1.0

	settleEpsilon = 0.01
	maxFrames     = 5 * defaultFPS
)

var lastID int64

func nextID() int {
	return int(atomic.AddInt64(&lastID, 1))
}

// Pointer is an interaction position in screen cells.
type Pointer struct {
	X int
	Y int
}

// Rect is a host bounding box in screen cells.
type Rect struct {
	X      int
	Y      int
	Width  int
	Height int
}

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Contains reports whether (x, y) lies inside the rectangle.
func (r Rect) Contains(x, y int) bool {
	return !r.Empty() && x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

// ComputedStyle is the resolved style sampled from the wrapped child.
type ComputedStyle struct {
	BorderRadius string
	Background   string
}

// Host supplies the geometry of the wrapper and the computed style of its
// first child. Either lookup may fail when the host is not laid out.
type Host interface {
	Bounds() (Rect, bool)
	FirstChild() (ComputedStyle, bool)
}

// StaticHost is a Host with fixed geometry.
type StaticHost struct {
	Rect     Rect
	Child    *ComputedStyle
	Detached bool
}

// Bounds implements Host.
func (h StaticHost) Bounds() (Rect, bool) {
	if h.Detached || h.Rect.Empty() {
		return Rect{}, false
	}
	return h.Rect, true
}

// FirstChild implements Host.
func (h StaticHost) FirstChild() (ComputedStyle, bool) {
	if h.Detached || h.Child == nil {
		return ComputedStyle{}, false
	}
	return *h.Child, true
}

// Artifact is one live ripple.
type Artifact struct {
	ID           uint64
	X            int
	Y            int
	BorderRadius string
	Color        string

	width    int
	progress float64
	velocity float64
	frames   int
}

// Progress reports how far the ripple animation has run, from 0 to 1.
func (a Artifact) Progress() float64 {
	return a.progress
}

// FrameMsg advances the animation of one artifact.
type FrameMsg struct {
	EngineID   int
	ArtifactID uint64
}

// AnimationEndMsg signals that an artifact finished animating.
type AnimationEndMsg struct {
	EngineID int
	ID       uint64
}

// Model owns the ripple artifacts of a single wrapped surface.
type Model struct {
	id        int
	artifacts []Artifact
	lastID    uint64

	disabled bool
	color    string
	fadeTo   string
	handler  func(Pointer)
	log      *logger.Logger

	spring harmonica.Spring
	frame  time.Duration
}

// Option configures a Model.
type Option func(*Model)

// WithDisabled suppresses ripple spawning.
func WithDisabled(disabled bool) Option {
	return func(m *Model) { m.disabled = disabled }
}

// WithColor fixes the ripple color instead of sampling the child background.
func WithColor(color string) Option {
	return func(m *Model) { m.color = color }
}

// WithFadeTo sets the color a ripple fades towards as it finishes.
func WithFadeTo(color string) Option {
	return func(m *Model) { m.fadeTo = color }
}

// WithHandler registers a callback invoked for every accepted interaction.
func WithHandler(fn func(Pointer)) Option {
	return func(m *Model) { m.handler = fn }
}

// WithSpring tunes the spring that drives the spread animation.
func WithSpring(fps int, frequency, damping float64) Option {
	return func(m *Model) {
		if fps <= 0 {
			fps = defaultFPS
		}
		m.spring = harmonica.NewSpring(harmonica.FPS(fps), frequency, damping)
		m.frame = time.Second / time.Duration(fps)
	}
}

// WithLogger attaches a logger for dropped interactions.
func WithLogger(log *logger.Logger) Option {
	return func(m *Model) { m.log = log.WithComponent("ripple") }
}

// New creates an engine with its own identity.
func New(opts ...Option) Model {
	m := Model{
		id:     nextID(),
		fadeTo: defaultFade,
		spring: harmonica.NewSpring(harmonica.FPS(defaultFPS), defaultFrequency, defaultDamping),
		frame:  time.Second / defaultFPS,
	}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// ID returns the engine identity carried by its messages.
func (m Model) ID() int {
	return m.id
}

// Disabled reports whether spawning is suppressed.
func (m Model) Disabled() bool {
	return m.disabled
}

// SetDisabled toggles spawning. Live artifacts keep animating.
func (m Model) SetDisabled(disabled bool) Model {
	m.disabled = disabled
	return m
}

// FadeTo returns the color ripples fade towards.
func (m Model) FadeTo() string {
	return m.fadeTo
}

// SetFadeTo changes the fade target. Live artifacts pick it up on the next frame.
func (m Model) SetFadeTo(color string) Model {
	m.fadeTo = color
	return m
}

// Artifacts returns the live artifacts in creation order.
func (m Model) Artifacts() []Artifact {
	return slices.Clone(m.artifacts)
}

// Len returns the number of live artifacts.
func (m Model) Len() int {
	return len(m.artifacts)
}

// Interact spawns a ripple at p relative to the host. It is a no-op while
// disabled, and the interaction is dropped when the host cannot be measured.
func (m Model) Interact(p Pointer, host Host) (Model, tea.Cmd) {
	if m.disabled {
		return m, nil
	}
	if m.handler != nil {
		m.handler(p)
	}
	if host == nil {
		m.log.Debug("interaction dropped", map[string]any{"reason": "no host"})
		return m, nil
	}

	rect, ok := host.Bounds()
	if !ok || rect.Empty() {
		m.log.Debug("interaction dropped", map[string]any{"reason": "unmeasurable host"})
		return m, nil
	}
	child, ok := host.FirstChild()
	if !ok {
		m.log.Debug("interaction dropped", map[string]any{"reason": "no child"})
		return m, nil
	}

	m.lastID++
	a := Artifact{
		ID:           m.lastID,
		X:            p.X - rect.X,
		Y:            p.Y - rect.Y,
		BorderRadius: child.BorderRadius,
		Color:        child.Background,
		width:        rect.Width,
	}
	if m.color != "" {
		a.Color = m.color
	}

	artifacts := make([]Artifact, len(m.artifacts), len(m.artifacts)+1)
	copy(artifacts, m.artifacts)
	m.artifacts = append(artifacts, a)
	return m, m.frameCmd(a.ID)
}

// AnimationEnd removes the artifact with the given id. Unknown ids are
// ignored, so duplicate completion signals are harmless.
func (m Model) AnimationEnd(id uint64) Model {
	if m.index(id) < 0 {
		return m
	}
	m.artifacts = slices.DeleteFunc(slices.Clone(m.artifacts), func(a Artifact) bool {
		return a.ID == id
	})
	return m
}

// Update advances animation frames and removes finished artifacts. Messages
// addressed to other engines are ignored.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case FrameMsg:
		if msg.EngineID != m.id {
			return m, nil
		}
		return m.advance(msg.ArtifactID)
	case AnimationEndMsg:
		if msg.EngineID != m.id {
			return m, nil
		}
		return m.AnimationEnd(msg.ID), nil
	}
	return m, nil
}

func (m Model) advance(id uint64) (Model, tea.Cmd) {
	i := m.index(id)
	if i < 0 {
		return m, nil
	}

	artifacts := slices.Clone(m.artifacts)
	a := artifacts[i]
	a.progress, a.velocity = m.spring.Update(a.progress, a.velocity, 1)
	a.frames++

	settled := math.Abs(1-a.progress) < settleEpsilon && math.Abs(a.velocity) < settleEpsilon
	if settled || a.frames >= maxFrames {
		a.progress = 1
		a.velocity = 0
		artifacts[i] = a
		m.artifacts = artifacts
		return m, m.endCmd(id)
	}

	artifacts[i] = a
	m.artifacts = artifacts
	return m, m.frameCmd(id)
}

func (m Model) index(id uint64) int {
	return slices.IndexFunc(m.artifacts, func(a Artifact) bool { return a.ID == id })
}

func (m Model) frameCmd(id uint64) tea.Cmd {
	engine := m.id
	return tea.Tick(m.frame, func(time.Time) tea.Msg {
		return FrameMsg{EngineID: engine, ArtifactID: id}
	})
}

func (m Model) endCmd(id uint64) tea.Cmd {
	engine := m.id
	return func() tea.Msg {
		return AnimationEndMsg{EngineID: engine, ID: id}
	}
}
