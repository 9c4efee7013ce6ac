package input

import "github.com/lixenwraith/snake/game"

// Action is what a key press asks the session to do
type Action uint8

const (
	ActionNone Action = iota
	ActionUp
	ActionDown
	ActionLeft
	ActionRight
	ActionNewGame
	ActionPause
	ActionQuit
)

// Direction maps steering actions to a heading, other actions map to game.None
func (a Action) Direction() game.Direction {
	switch a {
	case ActionUp:
		return game.Up
	case ActionDown:
		return game.Down
	case ActionLeft:
		return game.Left
	case ActionRight:
		return game.Right
	}
	return game.None
}

// IsSteer reports whether the action changes heading
func (a Action) IsSteer() bool {
	return a.Direction() != game.None
}

func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "none"
}
