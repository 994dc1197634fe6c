package components

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// LoadingState is the observable state of the delayed loading machine.
type LoadingState int

const (
	NotLoading LoadingState = iota
	PendingLoading
	Loading
)

func (s LoadingState) String() string {
	switch s {
	case NotLoading:
		return "not-loading"
	case PendingLoading:
		return "pending"
	case Loading:
		return "loading"
	default:
		return "unknown"
	}
}

// LoadingProp is the loading property of an action element: either a plain
// flag or a delayed descriptor with an optional custom indicator.
type LoadingProp struct {
	Enabled bool
	Delay   time.Duration
	Icon    string
}

// LoadingOff disables the loading state.
func LoadingOff() LoadingProp { return LoadingProp{} }

// LoadingOn enters the loading state immediately.
func LoadingOn() LoadingProp { return LoadingProp{Enabled: true} }

// LoadingAfter enters the loading state once delay has elapsed. An empty icon
// keeps the default spinner.
func LoadingAfter(delay time.Duration, icon string) LoadingProp {
	return LoadingProp{Enabled: true, Delay: delay, Icon: icon}
}

// Delayed reports whether the prop describes a deferred transition.
func (l LoadingProp) Delayed() bool {
	return l.Enabled && l.Delay > 0
}

// loadingElapsedMsg is delivered when an armed delay fires. seq identifies
// the arm so a message from a replaced timer is ignored.
type loadingElapsedMsg struct {
	owner int
	seq   int
}

// loadingMachine owns at most one outstanding timer.
type loadingMachine struct {
	owner  int
	clock  Clock
	state  LoadingState
	prop   LoadingProp
	seq    int
	cancel context.CancelFunc
}

func newLoadingMachine(owner int, clock Clock) loadingMachine {
	if clock == nil {
		clock = SystemClock
	}
	return loadingMachine{owner: owner, clock: clock}
}

// set applies a new loading prop and returns the command that waits for the
// delay, if one was armed.
func (m *loadingMachine) set(prop LoadingProp) tea.Cmd {
	m.prop = prop
	switch {
	case !prop.Enabled:
		m.stop()
		m.state = NotLoading
		return nil
	case !prop.Delayed():
		m.stop()
		m.state = Loading
		return nil
	case m.state == Loading:
		// Already loading: a delayed descriptor does not step back to pending.
		m.stop()
		return nil
	default:
		return m.arm(prop.Delay)
	}
}

func (m *loadingMachine) arm(delay time.Duration) tea.Cmd {
	m.stop()
	m.seq++
	m.state = PendingLoading

	ctx, cancel := context.WithCancel(context.Background())
	m.cancel = cancel
	timer := m.clock.NewTimer(delay)
	owner, seq := m.owner, m.seq

	return func() tea.Msg {
		defer timer.Stop()
		select {
		case <-timer.C():
			return loadingElapsedMsg{owner: owner, seq: seq}
		case <-ctx.Done():
			return nil
		}
	}
}

// elapsed completes the pending transition if msg belongs to the live arm.
func (m *loadingMachine) elapsed(msg loadingElapsedMsg) bool {
	if msg.owner != m.owner || msg.seq != m.seq || m.state != PendingLoading {
		return false
	}
	m.stop()
	m.state = Loading
	return true
}

func (m *loadingMachine) stop() {
	if m.cancel != nil {
		m.cancel()
		m.cancel = nil
	}
}

// pending reports whether a timer is outstanding.
func (m *loadingMachine) pending() bool {
	return m.cancel != nil
}
