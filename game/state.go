// Package game implements the snake board state machine.
// A State is advanced by Tick and steered by HandleInput; it performs no I/O and
// holds no timer, the caller owns scheduling and rendering.
package game

// Phase is the lifecycle state of a game
type Phase uint8

const (
	Running Phase = iota
	Over
)

func (p Phase) String() string {
	if p == Over {
		return "over"
	}
	return "running"
}

// Collision identifies what ended the game
type Collision uint8

const (
	NoCollision Collision = iota
	WallCollision
	SelfCollision
)

func (c Collision) String() string {
	switch c {
	case WallCollision:
		return "wall"
	case SelfCollision:
		return "self"
	}
	return "none"
}

// TickResult reports what a single Tick changed
// Moved is false for ticks applied before the first heading, where the head stays in place
type TickResult struct {
	Moved     bool
	Ate       bool
	Collision Collision
}

// State is one game on a square board
// Not safe for concurrent use, all calls must be serialized by the owner
type State struct {
	size      int
	snake     []Cell // head first
	direction Direction
	food      Cell
	score     int
	phase     Phase
	collision Collision
	ticks     int

	spawner Spawner
}

// Option configures a State at construction
type Option func(*options)

type options struct {
	spawner    Spawner
	seed       uint64
	avoidSnake bool
}

// WithSpawner overrides food placement
func WithSpawner(s Spawner) Option {
	return func(o *options) { o.spawner = s }
}

// WithSeed seeds the default random spawner, 0 seeds from the clock
func WithSeed(seed uint64) Option {
	return func(o *options) { o.seed = seed }
}

// WithAvoidSnake makes the default spawner skip cells occupied by the snake
func WithAvoidSnake(avoid bool) Option {
	return func(o *options) { o.avoidSnake = avoid }
}

// New creates a running game on a size×size board
// The snake starts as a single cell at the center with no heading
func New(size int, opts ...Option) *State {
	if size < 1 {
		size = 1
	}

	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if o.spawner == nil {
		o.spawner = NewRandomSpawner(o.seed, o.avoidSnake)
	}

	s := &State{
		size:    size,
		snake:   []Cell{{X: size / 2, Y: size / 2}},
		spawner: o.spawner,
	}
	s.food = s.spawner.Spawn(size, s.snake)
	return s
}

// HandleInput changes heading unless the game is over or d reverses the current heading
// Returns true if the heading was accepted
func (s *State) HandleInput(d Direction) bool {
	if s.phase == Over || d == None {
		return false
	}
	if s.direction.IsOpposite(d) {
		return false
	}
	s.direction = d
	return true
}

// Tick advances the game one step
// The new head is prepended before collision detection, so on a wall hit the
// out-of-bounds head remains the first cell of Snake()
// With no heading yet the new head equals the old one: the tail is popped back
// off, unless food sits under the head, in which case it is eaten and the
// doubled head collides with itself
func (s *State) Tick() TickResult {
	if s.phase == Over {
		return TickResult{}
	}
	s.ticks++

	dx, dy := s.direction.Delta()
	head := s.snake[0].Add(dx, dy)

	s.snake = append(s.snake, Cell{})
	copy(s.snake[1:], s.snake)
	s.snake[0] = head

	result := TickResult{Moved: s.direction != None}
	if head == s.food {
		s.food = s.spawner.Spawn(s.size, s.snake)
		s.score++
		result.Ate = true
	} else {
		s.snake = s.snake[:len(s.snake)-1]
	}

	if c := s.detectCollision(); c != NoCollision {
		s.phase = Over
		s.collision = c
		result.Collision = c
	}
	return result
}

func (s *State) detectCollision() Collision {
	head := s.snake[0]
	if !head.In(s.size) {
		return WallCollision
	}
	for _, c := range s.snake[1:] {
		if c == head {
			return SelfCollision
		}
	}
	return NoCollision
}

// Snake returns a copy of the body, head first
func (s *State) Snake() []Cell {
	out := make([]Cell, len(s.snake))
	copy(out, s.snake)
	return out
}

func (s *State) Head() Cell {
	return s.snake[0]
}

func (s *State) Len() int {
	return len(s.snake)
}

func (s *State) Food() Cell {
	return s.food
}

func (s *State) Score() int {
	return s.score
}

func (s *State) Direction() Direction {
	return s.direction
}

func (s *State) Phase() Phase {
	return s.phase
}

func (s *State) Over() bool {
	return s.phase == Over
}

// Collision returns the cause of game over, NoCollision while running
func (s *State) Collision() Collision {
	return s.collision
}

func (s *State) GridSize() int {
	return s.size
}

// Ticks returns the number of ticks applied while running, including those before the first heading
func (s *State) Ticks() int {
	return s.ticks
}
