package game

import (
	"strings"

	"github.com/pkg/errors"
)

// Coord represents a (row, col) coordinate.
//
// The Coord uses a standard computer cartesian coordinates
//		- (0, 0) represents the top left
//		- (7, 7) represents the bottom right
//		- (-1, -1) represents the "empty" coordinate
type Coord struct {
	Row, Col int8
}

// EmptyCoord is the coordinate that is not on the board.
var EmptyCoord = Coord{-1, -1}

// IsEmpty returns true when the coordinate is the empty coordinate
func (c Coord) IsEmpty() bool { return c == EmptyCoord }

// Valid returns true if the coordinate is on the board.
func (c Coord) Valid() bool { return c.Row >= 0 && c.Row < Size && c.Col >= 0 && c.Col < Size }

func (c Coord) Add(other Coord) Coord { return Coord{c.Row + other.Row, c.Col + other.Col} }

func (c Coord) Eq(other Coord) bool { return c.Row == other.Row && c.Col == other.Col }

// Index is the row major index of the coordinate.
func (c Coord) Index() int { return int(c.Row)*Size + int(c.Col) }

// CoordAt is the inverse of Index.
func CoordAt(i int) Coord { return Coord{int8(i / Size), int8(i % Size)} }

// Less orders coordinates by row, then by column.
func (c Coord) Less(other Coord) bool {
	if c.Row != other.Row {
		return c.Row < other.Row
	}
	return c.Col < other.Col
}

func (c Coord) String() string {
	if c.IsEmpty() || !c.Valid() {
		return "-"
	}
	return string([]byte{'a' + byte(c.Col), '1' + byte(c.Row)})
}

// Between returns the coordinates strictly between c and other, ordered from c towards other.
// The two coordinates have to share a row, a column or a diagonal; otherwise nil is returned.
func (c Coord) Between(other Coord) []Coord {
	if c.IsEmpty() || other.IsEmpty() {
		return nil
	}
	dr, dc := other.Row-c.Row, other.Col-c.Col
	steps := abs8(dr)
	if abs8(dc) > steps {
		steps = abs8(dc)
	}
	if dr != 0 && dc != 0 && abs8(dr) != abs8(dc) {
		return nil
	}
	if steps < 2 {
		return nil
	}
	delta := Coord{sign8(dr), sign8(dc)}
	retVal := make([]Coord, 0, steps-1)
	for cur := c.Add(delta); cur != other; cur = cur.Add(delta) {
		retVal = append(retVal, cur)
	}
	return retVal
}

func abs8(a int8) int8 {
	if a < 0 {
		return -a
	}
	return a
}

func sign8(a int8) int8 {
	switch {
	case a < 0:
		return -1
	case a > 0:
		return 1
	}
	return 0
}

// Move is a coordinate to place a disc on, or one of the two sentinel moves Pass and Root.
type Move struct {
	Row, Col int8
}

var (
	// Pass is played when no placement is available.
	Pass = Move{-2, -2}

	// Root is the synthetic move leading into the root of a search. It is never played.
	Root = Move{-1, -1}
)

// MoveAt makes a placement move.
func MoveAt(c Coord) Move { return Move{c.Row, c.Col} }

// IsPass returns true when the move represents a "pass" move
func (m Move) IsPass() bool { return m == Pass }

// IsRoot returns true when the move is the root sentinel
func (m Move) IsRoot() bool { return m == Root }

// IsPlacement returns true when the move places a disc.
func (m Move) IsPlacement() bool { return m.Coord().Valid() }

// Coord returns the coordinate of a placement. Sentinels return EmptyCoord.
func (m Move) Coord() Coord {
	c := Coord{m.Row, m.Col}
	if !c.Valid() {
		return EmptyCoord
	}
	return c
}

// Less orders placements by row, then by column. Sentinel moves sort last.
func (m Move) Less(other Move) bool { return Compare(m, other) < 0 }

// Compare returns -1, 0 or 1. Sentinel moves compare greater than any placement.
func Compare(a, b Move) int {
	ap, bp := a.IsPlacement(), b.IsPlacement()
	switch {
	case !ap && !bp:
		return 0
	case !ap:
		return 1
	case !bp:
		return -1
	}
	switch {
	case a.Row < b.Row:
		return -1
	case a.Row > b.Row:
		return 1
	case a.Col < b.Col:
		return -1
	case a.Col > b.Col:
		return 1
	}
	return 0
}

// String formats the move in the external notation: "pass", "root", or column letter + row digit ("d3").
func (m Move) String() string {
	switch {
	case m.IsPass():
		return "pass"
	case m.IsRoot():
		return "root"
	}
	return m.Coord().String()
}

// ParseMove is the inverse of Move.String.
func ParseMove(s string) (Move, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	switch s {
	case "pass":
		return Pass, nil
	case "root":
		return Root, nil
	}
	if len(s) != 2 {
		return Pass, errors.Errorf("Unable to parse move %q", s)
	}
	c := Coord{Row: int8(s[1]) - '1', Col: int8(s[0]) - 'a'}
	if !c.Valid() {
		return Pass, errors.Errorf("Move %q is not on the board", s)
	}
	return MoveAt(c), nil
}
