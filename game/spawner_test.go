package game

import "testing"

// TestRandomSpawnerDeterministic verifies equal seeds produce equal sequences
func TestRandomSpawnerDeterministic(t *testing.T) {
	a := NewRandomSpawner(42, false)
	b := NewRandomSpawner(42, false)
	for i := 0; i < 100; i++ {
		ca, cb := a.Spawn(20, nil), b.Spawn(20, nil)
		if ca != cb {
			t.Fatalf("Draw %d: expected equal cells, got %v and %v", i, ca, cb)
		}
		if !ca.In(20) {
			t.Fatalf("Draw %d: expected cell inside board, got %v", i, ca)
		}
	}
}

// TestRandomSpawnerAvoidSnake verifies occupied cells are skipped while free cells exist
func TestRandomSpawnerAvoidSnake(t *testing.T) {
	const size = 3
	// Every cell but (2,2) is occupied
	var snake []Cell
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			if x == 2 && y == 2 {
				continue
			}
			snake = append(snake, Cell{X: x, Y: y})
		}
	}

	s := NewRandomSpawner(7, true)
	for i := 0; i < 50; i++ {
		if c := s.Spawn(size, snake); c != (Cell{X: 2, Y: 2}) {
			t.Fatalf("Draw %d: expected the only free cell (2,2), got %v", i, c)
		}
	}
}

// TestRandomSpawnerFullBoard verifies a full board still yields an in-bounds cell
func TestRandomSpawnerFullBoard(t *testing.T) {
	snake := []Cell{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}}
	s := NewRandomSpawner(3, true)
	if c := s.Spawn(2, snake); !c.In(2) {
		t.Errorf("Expected in-bounds cell on full board, got %v", c)
	}
}

// TestRandomSpawnerAllowsSnakeCells verifies the default mode ignores occupancy
func TestRandomSpawnerAllowsSnakeCells(t *testing.T) {
	snake := []Cell{{X: 0, Y: 0}}
	s := NewRandomSpawner(11, false)
	hit := false
	for i := 0; i < 500 && !hit; i++ {
		hit = s.Spawn(2, snake) == (Cell{X: 0, Y: 0})
	}
	if !hit {
		t.Error("Expected food to land on the snake cell at least once in 500 draws on a 2x2 board")
	}
}

// TestSpawnerFunc verifies the function adapter
func TestSpawnerFunc(t *testing.T) {
	f := SpawnerFunc(func(size int, snake []Cell) Cell { return Cell{X: size - 1, Y: len(snake)} })
	if c := f.Spawn(9, make([]Cell, 2)); c != (Cell{X: 8, Y: 2}) {
		t.Errorf("Expected (8,2), got %v", c)
	}
}
