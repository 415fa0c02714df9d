package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
)

// KeyMap translates Bubble Tea key messages to game actions.
type KeyMap struct {
	Left    key.Binding
	Right   key.Binding
	Shoot   key.Binding
	Pierce  key.Binding
	Confirm key.Binding
	Quit    key.Binding
}

// NewKeyMap builds bindings from the configured key names.
func NewKeyMap(cfg config.KeysConfig) KeyMap {
	return KeyMap{
		Left:    binding(cfg.Left, "move left"),
		Right:   binding(cfg.Right, "move right"),
		Shoot:   binding(cfg.Shoot, "shoot"),
		Pierce:  binding(cfg.Pierce, "fire piercer"),
		Confirm: binding(cfg.Confirm, "new round"),
		Quit:    binding(cfg.Quit, "quit"),
	}
}

func binding(keys []string, desc string) key.Binding {
	return key.NewBinding(
		key.WithKeys(keys...),
		key.WithHelp(helpKeys(keys), desc),
	)
}

// helpKeys joins key names for display, spelling out the space bar.
func helpKeys(keys []string) string {
	names := make([]string, len(keys))
	for i, k := range keys {
		if k == " " {
			k = "space"
		}
		names[i] = k
	}
	return strings.Join(names, "/")
}

// Action returns the action bound to msg, or ActionNone. A key bound to
// several actions resolves to the first in declaration order.
func (km KeyMap) Action(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, km.Left):
		return core.ActionLeft
	case key.Matches(msg, km.Right):
		return core.ActionRight
	case key.Matches(msg, km.Shoot):
		return core.ActionShoot
	case key.Matches(msg, km.Pierce):
		return core.ActionPierce
	case key.Matches(msg, km.Confirm):
		return core.ActionConfirm
	case key.Matches(msg, km.Quit):
		return core.ActionQuit
	}
	return core.ActionNone
}

// ShortHelp returns bindings for the in-game hint line.
func (km KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{km.Confirm, km.Quit}
}

// FullHelp returns every binding, grouped for display.
func (km KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{km.Left, km.Right, km.Shoot, km.Pierce},
		{km.Confirm, km.Quit},
	}
}
