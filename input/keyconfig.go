package input

import (
	"fmt"
	"sort"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// specialKeyNames maps config key names to non-printable keys
var specialKeyNames = map[string]tcell.Key{
	"up":        tcell.KeyUp,
	"down":      tcell.KeyDown,
	"left":      tcell.KeyLeft,
	"right":     tcell.KeyRight,
	"enter":     tcell.KeyEnter,
	"return":    tcell.KeyEnter,
	"esc":       tcell.KeyEscape,
	"escape":    tcell.KeyEscape,
	"tab":       tcell.KeyTab,
	"backspace": tcell.KeyBackspace2,
}

// Rune aliases for keys that are awkward to write as a single character
var runeAliases = map[string]rune{
	"space": ' ',
}

// ApplyBindings returns a copy of base where every action named in bindings
// is rebound to exactly the listed keys; actions not named keep their defaults
// An empty key list unbinds the action
func ApplyBindings(base *KeyTable, bindings map[string][]string) (*KeyTable, error) {
	kt := base.Clone()

	// Sorted for deterministic error reporting
	names := make([]string, 0, len(bindings))
	for name := range bindings {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		action, err := ActionByName(name)
		if err != nil {
			return nil, fmt.Errorf("[keys] %w", err)
		}
		kt.unbind(action)
	}

	for _, name := range names {
		action, _ := ActionByName(name)
		for _, keyName := range bindings[name] {
			if err := kt.bind(keyName, action); err != nil {
				return nil, fmt.Errorf("[keys] %s: %w", name, err)
			}
		}
	}
	return kt, nil
}

func (kt *KeyTable) bind(keyName string, action Action) error {
	if k, ok := specialKeyNames[strings.ToLower(keyName)]; ok {
		kt.SpecialKeys[k] = action
		return nil
	}
	r, err := resolveRune(keyName)
	if err != nil {
		return err
	}
	kt.Runes[r] = action
	return nil
}

// resolveRune converts a key name to a rune, accepting single characters and aliases
func resolveRune(s string) (rune, error) {
	if r, ok := runeAliases[strings.ToLower(s)]; ok {
		return r, nil
	}
	runes := []rune(s)
	if len(runes) == 1 {
		return runes[0], nil
	}
	return 0, fmt.Errorf("unknown key name: %q (expected single character or key name)", s)
}
