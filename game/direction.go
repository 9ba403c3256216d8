package game

// Direction is one of the eight compass directions a line of discs can run in.
type Direction uint8

const (
	Up Direction = iota
	UpRight
	Right
	DownRight
	Down
	DownLeft
	Left
	UpLeft
)

// Directions lists all eight directions.
var Directions = [...]Direction{Up, UpRight, Right, DownRight, Down, DownLeft, Left, UpLeft}

// Delta is the (row, col) step of a direction.
func (d Direction) Delta() Coord {
	switch d {
	case Up:
		return Coord{-1, 0}
	case UpRight:
		return Coord{-1, 1}
	case Right:
		return Coord{0, 1}
	case DownRight:
		return Coord{1, 1}
	case Down:
		return Coord{1, 0}
	case DownLeft:
		return Coord{1, -1}
	case Left:
		return Coord{0, -1}
	case UpLeft:
		return Coord{-1, -1}
	}
	panic("Unreachable")
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "Up"
	case UpRight:
		return "UpRight"
	case Right:
		return "Right"
	case DownRight:
		return "DownRight"
	case Down:
		return "Down"
	case DownLeft:
		return "DownLeft"
	case Left:
		return "Left"
	case UpLeft:
		return "UpLeft"
	}
	return "Unknown"
}
