package engine

import (
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/snake/game"
	"github.com/lixenwraith/snake/input"
)

// SessionConfig fixes the parameters every game of a session is built with
type SessionConfig struct {
	GridSize int

	// Seed 0 seeds food placement from the clock
	Seed       uint64
	AvoidSnake bool

	// RestartOnlyWhenOver ignores the new-game action until the current game ends
	RestartOnlyWhenOver bool

	// Spawner overrides food placement, nil uses a random spawner from Seed and AvoidSnake
	Spawner game.Spawner
}

// Session owns the current game and what outlives it: best score, game count, handlers
// Not safe for concurrent use, the Driver serializes all calls
type Session struct {
	id      uuid.UUID
	cfg     SessionConfig
	spawner game.Spawner

	state  *game.State
	gameID uuid.UUID
	games  int
	best   int
	paused bool

	handlers []EventHandler
	logger   zerolog.Logger
}

// NewSession creates a session with no game; call NewGame to start one
func NewSession(cfg SessionConfig, logger zerolog.Logger) *Session {
	spawner := cfg.Spawner
	if spawner == nil {
		// One spawner for the whole session keeps a seeded run reproducible across games
		spawner = game.NewRandomSpawner(cfg.Seed, cfg.AvoidSnake)
	}

	id := uuid.New()
	return &Session{
		id:      id,
		cfg:     cfg,
		spawner: spawner,
		logger:  logger.With().Str("session", id.String()).Logger(),
	}
}

// RegisterEventHandler adds a handler, call before the first NewGame to see every event
func (s *Session) RegisterEventHandler(h EventHandler) {
	s.handlers = append(s.handlers, h)
}

// NewGame discards the current game and starts a fresh one on the same board size
func (s *Session) NewGame() {
	s.state = game.New(s.cfg.GridSize, game.WithSpawner(s.spawner))
	s.gameID = uuid.New()
	s.games++
	s.paused = false

	s.logger.Info().
		Str("game", s.gameID.String()).
		Int("number", s.games).
		Int("grid", s.cfg.GridSize).
		Msg("game started")
	s.emit(EventGameStarted, game.NoCollision)
}

// Apply performs a user action and reports whether the user asked to quit
func (s *Session) Apply(a input.Action) (quit bool) {
	switch a {
	case input.ActionQuit:
		return true

	case input.ActionNewGame:
		if s.state == nil || s.state.Over() || !s.cfg.RestartOnlyWhenOver {
			s.NewGame()
		}

	case input.ActionPause:
		if s.state != nil && !s.state.Over() {
			s.paused = !s.paused
			s.logger.Debug().Bool("paused", s.paused).Msg("pause toggled")
		}

	default:
		if d := a.Direction(); d != game.None && s.state != nil && !s.paused {
			s.state.HandleInput(d)
		}
	}
	return false
}

// Tick advances the current game one step unless paused
func (s *Session) Tick() game.TickResult {
	if s.state == nil || s.paused {
		return game.TickResult{}
	}

	res := s.state.Tick()
	if score := s.state.Score(); score > s.best {
		s.best = score
	}

	if res.Ate {
		s.emit(EventFoodEaten, game.NoCollision)
	}
	if res.Collision != game.NoCollision {
		s.logger.Info().
			Str("game", s.gameID.String()).
			Int("score", s.state.Score()).
			Int("length", s.state.Len()).
			Str("collision", res.Collision.String()).
			Int("ticks", s.state.Ticks()).
			Msg("game over")
		s.emit(EventGameOver, res.Collision)
	}
	return res
}

func (s *Session) emit(t EventType, c game.Collision) {
	ev := Event{
		Type:      t,
		SessionID: s.id,
		GameID:    s.gameID,
		Score:     s.state.Score(),
		Length:    s.state.Len(),
		Collision: c,
	}
	for _, h := range s.handlers {
		h.HandleEvent(ev)
	}
}

// State returns the current game, nil before the first NewGame
func (s *Session) State() *game.State { return s.state }

// ID returns the session id
func (s *Session) ID() uuid.UUID { return s.id }

// GameID returns the id of the current game
func (s *Session) GameID() uuid.UUID { return s.gameID }

// Games returns how many games were started
func (s *Session) Games() int { return s.games }

// Best returns the highest score reached this session, kept in memory only
func (s *Session) Best() int { return s.best }

// Paused reports whether the current game is paused
func (s *Session) Paused() bool { return s.paused }
