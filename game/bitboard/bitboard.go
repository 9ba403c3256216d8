// Package bitboard implements the Reversi board as two 64 bit occupancy masks.
//
// Bit 63 is square (0, 0) (a1), bit 0 is square (7, 7) (h8); squares are laid out in row major order
// with decreasing bit index.
package bitboard

import (
	"fmt"
	"math/bits"

	"github.com/gorgonia/reversi/game"
	"github.com/pkg/errors"
)

const (
	colA uint64 = 0x8080808080808080 // leftmost column
	colH uint64 = 0x0101010101010101 // rightmost column

	corners uint64 = 0x8100000000000081

	initialBlack uint64 = 0x0000001008000000 // d4, e5
	initialWhite uint64 = 0x0000000810000000 // e4, d5
)

var _ game.State = &Board{}

// Board is a Reversi position. The zero value is an empty board.
type Board struct {
	pieces [2]uint64 // indexed by game.Player.Index()
}

// New creates a board from the masks of each colour. The masks have to be disjoint.
func New(black, white uint64) (*Board, error) {
	if black&white != 0 {
		return nil, errors.Errorf("Black and white overlap at %064b", black&white)
	}
	return &Board{pieces: [2]uint64{black, white}}, nil
}

// Initial creates the standard starting position.
func Initial() *Board { return &Board{pieces: [2]uint64{initialBlack, initialWhite}} }

// FromColours creates a board from a row major slice of colours.
func FromColours(board []game.Colour) (*Board, error) {
	if len(board) != game.Squares {
		return nil, errors.Errorf("Expected %d squares. Got %d", game.Squares, len(board))
	}
	retVal := new(Board)
	for i, c := range board {
		switch c {
		case game.Black, game.White:
			retVal.pieces[game.Player(c).Index()] |= bit(game.CoordAt(i))
		}
	}
	return retVal, nil
}

// FromRows parses rows of '*', 'X' and 'O' symbols.
func FromRows(rows ...string) (*Board, error) {
	board, err := game.ParseRows(rows)
	if err != nil {
		return nil, err
	}
	return FromColours(board)
}

// Masks returns the masks of black and white.
func (b *Board) Masks() (black, white uint64) { return b.pieces[0], b.pieces[1] }

func (b *Board) empty() uint64 { return ^(b.pieces[0] | b.pieces[1]) }

func (b *Board) At(c game.Coord) game.Colour {
	if !c.Valid() {
		return game.None
	}
	pos := bit(c)
	switch {
	case b.pieces[0]&pos != 0:
		return game.Black
	case b.pieces[1]&pos != 0:
		return game.White
	}
	return game.None
}

func (b *Board) Board() []game.Colour {
	retVal := make([]game.Colour, game.Squares)
	for i := range retVal {
		retVal[i] = b.At(game.CoordAt(i))
	}
	return retVal
}

// LegalMoves returns the squares p can play on.
//
// For each direction the player's discs are shifted onto adjacent opponent discs, then walked through
// the run of opponent discs; any empty square reached at the end of a run is a legal move.
func (b *Board) LegalMoves(p game.Player) []game.Coord { return coords(b.legal(p)) }

func (b *Board) legal(p game.Player) uint64 {
	me, opp := b.pieces[p.Index()], b.pieces[game.Opponent(p).Index()]
	empty := b.empty()
	var moves uint64
	for _, d := range game.Directions {
		run := shift(d, me) & opp
		for run != 0 {
			moves |= shift(d, run) & empty
			run = shift(d, run) & opp
		}
	}
	return moves
}

// Mobility is the number of legal moves p has.
func (b *Board) Mobility(p game.Player) int { return bits.OnesCount64(b.legal(p)) }

func (b *Board) IsMoveLegal(p game.Player, c game.Coord) bool {
	if !c.Valid() {
		return false
	}
	return b.legal(p)&bit(c) != 0
}

// Apply places a disc of p at c and flips every opponent disc bracketed by it.
func (b *Board) Apply(p game.Player, c game.Coord) error {
	if !game.IsValid(p) {
		return errors.Errorf("Cannot apply a move for %v", p)
	}
	m := game.MoveError{Player: p, Move: game.MoveAt(c)}
	if !c.Valid() {
		return errors.WithMessage(m, "Impossible move")
	}
	pos := bit(c)
	if b.empty()&pos == 0 {
		return errors.WithMessage(m, "Square is not empty")
	}
	flips := b.flips(p, pos)
	if flips == 0 {
		return errors.WithMessage(m, "Nothing to flip")
	}
	me, opp := p.Index(), game.Opponent(p).Index()
	b.pieces[me] |= flips | pos
	b.pieces[opp] &^= flips
	return nil
}

// flips returns the opponent discs flipped when p plays at pos.
func (b *Board) flips(p game.Player, pos uint64) uint64 {
	me, opp := b.pieces[p.Index()], b.pieces[game.Opponent(p).Index()]
	var retVal uint64
	for _, d := range game.Directions {
		var run uint64
		x := shift(d, pos)
		for x&opp != 0 {
			run |= x
			x = shift(d, x)
		}
		if x&me != 0 {
			retVal |= run
		}
	}
	return retVal
}

// Endpoints returns, for each direction a move at c would flip in, the first disc of p's colour closing the line.
func (b *Board) Endpoints(p game.Player, c game.Coord) []game.Coord {
	if !c.Valid() {
		return nil
	}
	me, opp := b.pieces[p.Index()], b.pieces[game.Opponent(p).Index()]
	pos := bit(c)
	var retVal []game.Coord
	for _, d := range game.Directions {
		x := shift(d, pos)
		if x&opp == 0 {
			continue
		}
		for x&opp != 0 {
			x = shift(d, x)
		}
		if x&me != 0 {
			retVal = append(retVal, coordOf(x))
		}
	}
	return retVal
}

func (b *Board) Discs(p game.Player) int { return bits.OnesCount64(b.pieces[p.Index()]) }

// StableDiscs counts the discs of p that are locally stable.
//
// A corner disc is stable. Any other disc is stable only if, in every one of the eight directions,
// the adjacent square holds a disc of the same colour. Edges and empty squares next to a disc make it unstable.
func (b *Board) StableDiscs(p game.Player) int {
	me := b.pieces[p.Index()]
	var count int
	for rest := me; rest != 0; rest &= rest - 1 {
		pos := rest & -rest
		if pos&corners != 0 {
			count++
			continue
		}
		stable := true
		for _, d := range game.Directions {
			if shift(d, pos)&me == 0 {
				stable = false
				break
			}
		}
		if stable {
			count++
		}
	}
	return count
}

func (b *Board) Eq(other game.State) bool {
	ot, ok := other.(*Board)
	if !ok {
		return false
	}
	return b.pieces == ot.pieces
}

func (b *Board) Clone() game.State {
	retVal := *b
	return &retVal
}

func (b *Board) Format(s fmt.State, c rune) {
	switch c {
	case 's', 'v':
		game.FormatBoard(s, b.Board())
	case 'x':
		fmt.Fprintf(s, "%016x %016x", b.pieces[0], b.pieces[1])
	}
}

func (b *Board) String() string { return fmt.Sprintf("%s", b) }

// shift moves every bit of a mask one square in the given direction.
// Bits that would wrap around onto the opposite column are dropped.
func shift(d game.Direction, a uint64) uint64 {
	switch d {
	case game.Up:
		return a << 8
	case game.UpRight:
		return (a << 7) &^ colA
	case game.Right:
		return (a >> 1) &^ colA
	case game.DownRight:
		return (a >> 9) &^ colA
	case game.Down:
		return a >> 8
	case game.DownLeft:
		return (a >> 7) &^ colH
	case game.Left:
		return (a << 1) &^ colH
	case game.UpLeft:
		return (a << 9) &^ colH
	}
	panic("Unreachable")
}

func bit(c game.Coord) uint64 { return 1 << uint(63-c.Index()) }

// coordOf returns the coordinate of the highest set bit.
func coordOf(a uint64) game.Coord {
	if a == 0 {
		return game.EmptyCoord
	}
	return game.CoordAt(bits.LeadingZeros64(a))
}

// coords lists the coordinates of the set bits, ordered by (row, col).
func coords(a uint64) []game.Coord {
	retVal := make([]game.Coord, 0, bits.OnesCount64(a))
	for a != 0 {
		i := bits.LeadingZeros64(a)
		retVal = append(retVal, game.CoordAt(i))
		a &^= 1 << uint(63-i)
	}
	return retVal
}
