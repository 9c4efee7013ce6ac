package engine

import (
	"github.com/google/uuid"

	"github.com/lixenwraith/snake/game"
)

// EventType identifies a session event
type EventType int

const (
	EventGameStarted EventType = iota
	EventFoodEaten
	EventGameOver
)

func (t EventType) String() string {
	switch t {
	case EventGameStarted:
		return "game_started"
	case EventFoodEaten:
		return "food_eaten"
	case EventGameOver:
		return "game_over"
	}
	return "unknown"
}

// Event is emitted by a Session on game milestones
type Event struct {
	Type      EventType
	SessionID uuid.UUID
	GameID    uuid.UUID
	Score     int
	Length    int
	Collision game.Collision
}

// EventHandler receives session events on the driver goroutine
// Handlers must not block
type EventHandler interface {
	HandleEvent(Event)
}

// EventHandlerFunc adapts a function to EventHandler
type EventHandlerFunc func(Event)

func (f EventHandlerFunc) HandleEvent(e Event) { f(e) }
