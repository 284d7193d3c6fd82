package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/power-crisis/internal/core"
)

// KeyPress is a key message translated to a game action.
type KeyPress struct {
	Action core.Action
	// Sprint is set for shifted movement keys (W, A, S, D, shift+arrows).
	Sprint bool
	Quit   bool
}

// Movement reports whether the press is a held direction rather than
// a one-shot action.
func (k KeyPress) Movement() bool {
	switch k.Action {
	case core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight:
		return true
	}
	return false
}

// KeyMapper translates Bubble Tea key messages to game actions.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to a game action.
// Terminals report shift as uppercase letters, so capital WASD sprints.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) KeyPress {
	switch msg.String() {
	case "ctrl+c", "q":
		return KeyPress{Action: core.ActionQuit, Quit: true}

	case "w", "up":
		return KeyPress{Action: core.ActionUp}
	case "s", "down":
		return KeyPress{Action: core.ActionDown}
	case "a", "left":
		return KeyPress{Action: core.ActionLeft}
	case "d", "right":
		return KeyPress{Action: core.ActionRight}

	case "W", "shift+up":
		return KeyPress{Action: core.ActionUp, Sprint: true}
	case "S", "shift+down":
		return KeyPress{Action: core.ActionDown, Sprint: true}
	case "A", "shift+left":
		return KeyPress{Action: core.ActionLeft, Sprint: true}
	case "D", "shift+right":
		return KeyPress{Action: core.ActionRight, Sprint: true}

	case " ", "e":
		return KeyPress{Action: core.ActionRepair}
	case "g":
		return KeyPress{Action: core.ActionGenerator}
	case "p":
		return KeyPress{Action: core.ActionPause}
	case "r":
		return KeyPress{Action: core.ActionRestart}
	case "enter":
		return KeyPress{Action: core.ActionConfirm}
	case "b", "esc":
		return KeyPress{Action: core.ActionBack}
	}

	return KeyPress{Action: core.ActionNone}
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionQuit
	MenuActionScoreboard
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k":
		return MenuActionUp
	case "s", "down", "j":
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "tab":
		return MenuActionScoreboard
	}
	return MenuActionNone
}

// GameKeyMap lists the in-game bindings for the help bar.
type GameKeyMap struct {
	Move      key.Binding
	Sprint    key.Binding
	Repair    key.Binding
	Generator key.Binding
	Pause     key.Binding
	Restart   key.Binding
	Back      key.Binding
	Quit      key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k GameKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Move, k.Sprint, k.Repair, k.Generator, k.Pause, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k GameKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Move, k.Sprint, k.Repair, k.Generator},
		{k.Pause, k.Restart, k.Back, k.Quit},
	}
}

// DefaultGameKeyMap describes the bindings MapKey implements.
// The generator binding is disabled for games that run it automatically.
func DefaultGameKeyMap(manualGenerator bool) GameKeyMap {
	k := GameKeyMap{
		Move:      key.NewBinding(key.WithKeys("w", "a", "s", "d", "up", "down", "left", "right"), key.WithHelp("wasd", "move")),
		Sprint:    key.NewBinding(key.WithKeys("W", "A", "S", "D"), key.WithHelp("WASD", "sprint")),
		Repair:    key.NewBinding(key.WithKeys(" ", "e"), key.WithHelp("space", "repair")),
		Generator: key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "generator")),
		Pause:     key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "pause")),
		Restart:   key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "restart")),
		Back:      key.NewBinding(key.WithKeys("b", "esc"), key.WithHelp("esc", "menu")),
		Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
	k.Generator.SetEnabled(manualGenerator)
	return k
}
