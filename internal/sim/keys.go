package sim

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/muurk/mainviews/internal/event"
)

// keyMap binds terminal keys to radio keys.
type keyMap struct {
	PageUp      key.Binding
	PageDown    key.Binding
	Model       key.Binding
	System      key.Binding
	Telemetry   key.Binding
	Exit        key.Binding
	RotaryLeft  key.Binding
	RotaryRight key.Binding
	Enter       key.Binding
	LongEnter   key.Binding
	Help        key.Binding
	Quit        key.Binding
}

// ShortHelp returns keybindings to be shown in the mini help view
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.RotaryLeft, k.RotaryRight, k.Enter, k.LongEnter, k.Exit, k.Help, k.Quit}
}

// FullHelp returns keybindings for the expanded help view
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.RotaryLeft, k.RotaryRight, k.Enter, k.LongEnter},
		{k.PageUp, k.PageDown, k.Exit},
		{k.Model, k.System, k.Telemetry},
		{k.Help, k.Quit},
	}
}

func defaultKeyMap() keyMap {
	return keyMap{
		PageUp: key.NewBinding(
			key.WithKeys("pgup"),
			key.WithHelp("pgup", "page up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown"),
			key.WithHelp("pgdn", "page down"),
		),
		Model: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("↑", "model"),
		),
		System: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("←", "system"),
		),
		Telemetry: key.NewBinding(
			key.WithKeys("right"),
			key.WithHelp("→", "telemetry"),
		),
		Exit: key.NewBinding(
			key.WithKeys("down", "esc", "backspace", "delete"),
			key.WithHelp("esc/↓", "exit"),
		),
		RotaryLeft: key.NewBinding(
			key.WithKeys("-"),
			key.WithHelp("-", "rotary left"),
		),
		RotaryRight: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "rotary right"),
		),
		Enter: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "select"),
		),
		LongEnter: key.NewBinding(
			key.WithKeys("l"),
			key.WithHelp("l", "long enter"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// eventFor maps a key press to a radio event.
func (k keyMap) eventFor(msg tea.KeyMsg) (event.Event, bool) {
	switch {
	case key.Matches(msg, k.PageUp):
		return event.KeyBreak(event.KeyPageUp), true
	case key.Matches(msg, k.PageDown):
		return event.KeyBreak(event.KeyPageDown), true
	case key.Matches(msg, k.Model):
		return event.KeyBreak(event.KeyModel), true
	case key.Matches(msg, k.System):
		return event.KeyBreak(event.KeySystem), true
	case key.Matches(msg, k.Telemetry):
		return event.KeyBreak(event.KeyTelemetry), true
	case key.Matches(msg, k.Exit):
		return event.KeyBreak(event.KeyExit), true
	case key.Matches(msg, k.RotaryLeft):
		return event.RotaryLeft, true
	case key.Matches(msg, k.RotaryRight):
		return event.RotaryRight, true
	case key.Matches(msg, k.Enter):
		return event.KeyBreak(event.KeyEnter), true
	case key.Matches(msg, k.LongEnter):
		return event.KeyLong(event.KeyEnter), true
	}
	return event.None, false
}

// eventForMouse maps the mouse wheel to the rotary encoder and the middle
// button to ENTER.
func eventForMouse(msg tea.MouseMsg) (event.Event, bool) {
	if msg.Action != tea.MouseActionPress {
		return event.None, false
	}
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		return event.RotaryLeft, true
	case tea.MouseButtonWheelDown:
		return event.RotaryRight, true
	case tea.MouseButtonMiddle:
		return event.KeyBreak(event.KeyEnter), true
	}
	return event.None, false
}
