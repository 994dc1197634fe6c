package tui

import "github.com/alexisbeaulieu97/kinetic/internal/ui/components"

// ButtonClickedMsg is emitted by a gallery button's click handler.
type ButtonClickedMsg struct {
	Index int
}

// GroupChangedMsg reports a new selection in the radio group.
type GroupChangedMsg struct {
	Value string
}

// RadioChangedMsg reports a change proposed or made by a standalone radio.
type RadioChangedMsg struct {
	Index int
	Event components.ChangeEvent
}

// jobTickMsg advances the simulated job of the button at index.
type jobTickMsg struct {
	index int
}
