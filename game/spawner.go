package game

import (
	"time"

	"golang.org/x/exp/rand"
)

// Spawner picks the next food cell for a size×size board
type Spawner interface {
	Spawn(size int, snake []Cell) Cell
}

// SpawnerFunc adapts a plain function to Spawner
type SpawnerFunc func(size int, snake []Cell) Cell

func (f SpawnerFunc) Spawn(size int, snake []Cell) Cell {
	return f(size, snake)
}

// RandomSpawner places food uniformly at random
// With AvoidSnake unset the snake body is ignored and food may land under it
type RandomSpawner struct {
	rng        *rand.Rand
	AvoidSnake bool
}

// NewRandomSpawner creates a spawner seeded with seed, 0 seeds from the clock
func NewRandomSpawner(seed uint64, avoidSnake bool) *RandomSpawner {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return &RandomSpawner{
		rng:        rand.New(rand.NewSource(seed)),
		AvoidSnake: avoidSnake,
	}
}

func (s *RandomSpawner) Spawn(size int, snake []Cell) Cell {
	if !s.AvoidSnake {
		return Cell{X: s.rng.Intn(size), Y: s.rng.Intn(size)}
	}

	occupied := make(map[Cell]struct{}, len(snake))
	for _, c := range snake {
		occupied[c] = struct{}{}
	}

	free := make([]Cell, 0, max(size*size-len(occupied), 0))
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			c := Cell{X: x, Y: y}
			if _, ok := occupied[c]; !ok {
				free = append(free, c)
			}
		}
	}

	// Board full: fall back to any cell
	if len(free) == 0 {
		return Cell{X: s.rng.Intn(size), Y: s.rng.Intn(size)}
	}
	return free[s.rng.Intn(len(free))]
}
