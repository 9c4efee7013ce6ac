package game

// Direction is the heading of the snake
// None is the resting heading before the first input
type Direction uint8

const (
	None Direction = iota
	Up
	Down
	Left
	Right
)

// Opposite returns the reverse heading, None has no opposite
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	case Right:
		return Left
	}
	return None
}

// IsOpposite reports whether other is the exact reverse of d
func (d Direction) IsOpposite(other Direction) bool {
	return d != None && d.Opposite() == other
}

// Delta returns the unit step for the heading, screen coordinates (y grows downward)
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case Up:
		return 0, -1
	case Down:
		return 0, 1
	case Left:
		return -1, 0
	case Right:
		return 1, 0
	}
	return 0, 0
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return "none"
}
