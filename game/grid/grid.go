// Package grid is an 8×8 array board. It plays exactly like the bitboard, and additionally supports undoing a move in place.
package grid

import (
	"fmt"

	"github.com/gorgonia/reversi/game"
	"github.com/pkg/errors"
	"gorgonia.org/tensor"
	"gorgonia.org/tensor/native"
)

var _ game.State = &Board{}

// Flips records, per direction, the disc that closed the line flipped by a move.
// Directions in which nothing was flipped hold game.EmptyCoord.
type Flips [len(game.Directions)]game.Coord

func noFlips() (retVal Flips) {
	for i := range retVal {
		retVal[i] = game.EmptyCoord
	}
	return
}

// Count returns the number of directions that flipped.
func (f Flips) Count() int {
	var n int
	for _, c := range f {
		if !c.IsEmpty() {
			n++
		}
	}
	return n
}

type Board struct {
	data *tensor.Dense
	it   [][]game.Colour
}

// New creates an empty board.
func New() *Board {
	backing := make([]game.Colour, game.Squares)
	data := tensor.New(tensor.WithShape(game.Size, game.Size), tensor.WithBacking(backing))
	iter, err := native.Matrix(data)
	if err != nil {
		panic(err)
	}
	return &Board{
		data: data,
		it:   iter.([][]game.Colour),
	}
}

// Initial creates the standard starting position.
func Initial() *Board {
	b := New()
	b.it[3][3], b.it[4][4] = game.Black, game.Black
	b.it[3][4], b.it[4][3] = game.White, game.White
	return b
}

// FromColours creates a board from a row major slice of colours.
func FromColours(board []game.Colour) (*Board, error) {
	if len(board) != game.Squares {
		return nil, errors.Errorf("Expected %d squares. Got %d", game.Squares, len(board))
	}
	b := New()
	copy(b.data.Data().([]game.Colour), board)
	return b, nil
}

// FromRows parses rows of '*', 'X' and 'O' symbols.
func FromRows(rows ...string) (*Board, error) {
	board, err := game.ParseRows(rows)
	if err != nil {
		return nil, err
	}
	return FromColours(board)
}

func (b *Board) At(c game.Coord) game.Colour {
	if !c.Valid() {
		return game.None
	}
	return b.it[c.Row][c.Col]
}

func (b *Board) Board() []game.Colour {
	raw := b.data.Data().([]game.Colour)
	retVal := make([]game.Colour, len(raw))
	copy(retVal, raw)
	return retVal
}

// endpoint walks from c in direction d across opponent discs, and returns the own disc closing the line.
func (b *Board) endpoint(p game.Player, c game.Coord, d game.Direction) game.Coord {
	me, opp := game.Colour(p), game.Colour(game.Opponent(p))
	delta := d.Delta()
	cur := c.Add(delta)
	if b.At(cur) != opp {
		return game.EmptyCoord
	}
	for b.At(cur) == opp {
		cur = cur.Add(delta)
	}
	if b.At(cur) == me {
		return cur
	}
	return game.EmptyCoord
}

func (b *Board) flips(p game.Player, c game.Coord) Flips {
	retVal := noFlips()
	for i, d := range game.Directions {
		retVal[i] = b.endpoint(p, c, d)
	}
	return retVal
}

func (b *Board) LegalMoves(p game.Player) []game.Coord {
	retVal := make([]game.Coord, 0, 16)
	for i := 0; i < game.Squares; i++ {
		c := game.CoordAt(i)
		if b.IsMoveLegal(p, c) {
			retVal = append(retVal, c)
		}
	}
	return retVal
}

func (b *Board) IsMoveLegal(p game.Player, c game.Coord) bool {
	if !c.Valid() || b.it[c.Row][c.Col] != game.None {
		return false
	}
	for _, d := range game.Directions {
		if !b.endpoint(p, c, d).IsEmpty() {
			return true
		}
	}
	return false
}

func (b *Board) Apply(p game.Player, c game.Coord) error {
	_, err := b.ApplyFlips(p, c)
	return err
}

// ApplyFlips plays a disc of p at c. The returned Flips can be passed to Undo to restore the board.
func (b *Board) ApplyFlips(p game.Player, c game.Coord) (Flips, error) {
	if !game.IsValid(p) {
		return noFlips(), errors.Errorf("Cannot apply a move for %v", p)
	}
	m := game.MoveError{Player: p, Move: game.MoveAt(c)}
	if !c.Valid() {
		return noFlips(), errors.WithMessage(m, "Impossible move")
	}
	if b.it[c.Row][c.Col] != game.None {
		return noFlips(), errors.WithMessage(m, "Square is not empty")
	}
	f := b.flips(p, c)
	if f.Count() == 0 {
		return f, errors.WithMessage(m, "Nothing to flip")
	}
	b.it[c.Row][c.Col] = game.Colour(p)
	for _, end := range f {
		for _, x := range c.Between(end) {
			b.it[x.Row][x.Col] = game.Colour(p)
		}
	}
	return f, nil
}

// Undo reverts a move of p at c made by ApplyFlips.
func (b *Board) Undo(p game.Player, c game.Coord, f Flips) {
	if !c.Valid() {
		return
	}
	opp := game.Colour(game.Opponent(p))
	b.it[c.Row][c.Col] = game.None
	for _, end := range f {
		for _, x := range c.Between(end) {
			b.it[x.Row][x.Col] = opp
		}
	}
}

func (b *Board) Discs(p game.Player) int {
	var n int
	for _, c := range b.data.Data().([]game.Colour) {
		if c == game.Colour(p) {
			n++
		}
	}
	return n
}

// StableDiscs counts corner discs, and discs surrounded on all eight sides by their own colour.
func (b *Board) StableDiscs(p game.Player) int {
	me := game.Colour(p)
	var n int
	for i := 0; i < game.Squares; i++ {
		c := game.CoordAt(i)
		if b.At(c) != me {
			continue
		}
		if isCorner(c) {
			n++
			continue
		}
		stable := true
		for _, d := range game.Directions {
			if b.At(c.Add(d.Delta())) != me {
				stable = false
				break
			}
		}
		if stable {
			n++
		}
	}
	return n
}

func isCorner(c game.Coord) bool {
	const last = game.Size - 1
	return (c.Row == 0 || c.Row == last) && (c.Col == 0 || c.Col == last)
}

func (b *Board) Eq(other game.State) bool {
	if other == nil {
		return false
	}
	a, o := b.Board(), other.Board()
	for i := range a {
		if a[i] != o[i] {
			return false
		}
	}
	return true
}

func (b *Board) Clone() game.State {
	b2 := New()
	copy(b2.data.Data().([]game.Colour), b.data.Data().([]game.Colour))
	return b2
}

func (b *Board) Format(s fmt.State, c rune) {
	switch c {
	case 's', 'v':
		for _, row := range b.it {
			fmt.Fprint(s, "⎢ ")
			for _, col := range row {
				fmt.Fprintf(s, "%s ", col)
			}
			fmt.Fprint(s, "⎥\n")
		}
	}
}
