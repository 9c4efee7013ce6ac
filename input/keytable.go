package input

import (
	"unicode"

	"github.com/gdamore/tcell/v2"
)

// KeyTable maps key presses to actions
type KeyTable struct {
	// Non-printable keys (arrows, Enter, Esc)
	SpecialKeys map[tcell.Key]Action

	// Printable keys, matched case-insensitively when no exact entry exists
	Runes map[rune]Action
}

// DefaultKeyTable returns the default bindings: arrows, wasd and hjkl steer
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]Action{
			tcell.KeyUp:     ActionUp,
			tcell.KeyDown:   ActionDown,
			tcell.KeyLeft:   ActionLeft,
			tcell.KeyRight:  ActionRight,
			tcell.KeyEnter:  ActionNewGame,
			tcell.KeyEscape: ActionQuit,
		},
		Runes: map[rune]Action{
			'w': ActionUp,
			's': ActionDown,
			'a': ActionLeft,
			'd': ActionRight,
			'k': ActionUp,
			'j': ActionDown,
			'h': ActionLeft,
			'l': ActionRight,
			'n': ActionNewGame,
			'p': ActionPause,
			' ': ActionPause,
			'q': ActionQuit,
		},
	}
}

// Resolve returns the action bound to ev
// Ctrl-C always quits regardless of bindings
func (kt *KeyTable) Resolve(ev *tcell.EventKey) Action {
	if ev == nil {
		return ActionNone
	}
	if ev.Key() == tcell.KeyCtrlC {
		return ActionQuit
	}
	if ev.Key() != tcell.KeyRune {
		return kt.SpecialKeys[ev.Key()]
	}

	r := ev.Rune()
	if a, ok := kt.Runes[r]; ok {
		return a
	}
	return kt.Runes[unicode.ToLower(r)]
}

// Clone returns a deep copy
func (kt *KeyTable) Clone() *KeyTable {
	out := &KeyTable{
		SpecialKeys: make(map[tcell.Key]Action, len(kt.SpecialKeys)),
		Runes:       make(map[rune]Action, len(kt.Runes)),
	}
	for k, v := range kt.SpecialKeys {
		out.SpecialKeys[k] = v
	}
	for k, v := range kt.Runes {
		out.Runes[k] = v
	}
	return out
}

// unbind removes every key bound to a
func (kt *KeyTable) unbind(a Action) {
	for k, v := range kt.SpecialKeys {
		if v == a {
			delete(kt.SpecialKeys, k)
		}
	}
	for r, v := range kt.Runes {
		if v == a {
			delete(kt.Runes, r)
		}
	}
}
