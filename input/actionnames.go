package input

import (
	"fmt"
	"strings"
)

// actionRegistry maps canonical action names used in the [keys] config section
var actionRegistry = map[string]Action{
	"up":       ActionUp,
	"down":     ActionDown,
	"left":     ActionLeft,
	"right":    ActionRight,
	"new_game": ActionNewGame,
	"pause":    ActionPause,
	"quit":     ActionQuit,
}

var actionNames = func() map[Action]string {
	m := make(map[Action]string, len(actionRegistry))
	for name, a := range actionRegistry {
		m[a] = name
	}
	return m
}()

// ActionByName resolves a config action name
func ActionByName(name string) (Action, error) {
	a, ok := actionRegistry[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return ActionNone, fmt.Errorf("unknown action: %q", name)
	}
	return a, nil
}
