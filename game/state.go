package game

import (
	"fmt"
	"io"

	"github.com/pkg/errors"
)

const (
	// Size is the length of a side of the board.
	Size = 8

	// Squares is the number of squares on the board.
	Squares = Size * Size
)

type Colour int32

const (
	None Colour = iota
	Black
	White
)

func (cl Colour) Format(s fmt.State, c rune) {
	switch c {
	case 'v': // used in debug
		switch cl {
		case None:
			fmt.Fprint(s, "None")
		case Black:
			fmt.Fprint(s, "Black")
		case White:
			fmt.Fprint(s, "White")
		}
	case 's': // used in board games
		switch cl {
		case None:
			fmt.Fprint(s, "·")
		case Black:
			fmt.Fprint(s, "X")
		case White:
			fmt.Fprint(s, "O")
		}
	}
}

// Symbol returns the byte used for the colour in position files.
func (cl Colour) Symbol() byte {
	switch cl {
	case Black:
		return 'X'
	case White:
		return 'O'
	}
	return '*'
}

// ColourOf parses a position file symbol.
func ColourOf(b byte) (Colour, error) {
	switch b {
	case '*', '.':
		return None, nil
	case 'X', 'x':
		return Black, nil
	case 'O', 'o':
		return White, nil
	}
	return None, errors.Errorf("Unknown board symbol %q", b)
}

// Player represents a player. It's also a colour.
type Player Colour

const (
	BlackP = Player(Black)
	WhiteP = Player(White)
)

func (p Player) Format(s fmt.State, c rune) { Colour(p).Format(s, c) }

// Index returns 0 for Black and 1 for White. It is used by fixed size per-player tables.
func (p Player) Index() int {
	switch Colour(p) {
	case Black:
		return 0
	case White:
		return 1
	}
	panic("Unreachable")
}

// Opponent returns the colour of the opponent player
func Opponent(p Player) Player {
	switch Colour(p) {
	case White:
		return BlackP
	case Black:
		return WhiteP
	}
	panic("Unreachable")
}

// IsValid checks that a player is indeed valid
func IsValid(p Player) bool { return Colour(p) == Black || Colour(p) == White }

// PlayerOf parses a player symbol ("X", "O", "black", "white", "b", "w").
func PlayerOf(s string) (Player, error) {
	switch s {
	case "X", "x", "black", "Black", "b", "B":
		return BlackP, nil
	case "O", "o", "white", "White", "w", "W":
		return WhiteP, nil
	}
	return Player(None), errors.Errorf("Unknown player %q", s)
}

// PlayerMove is a tuple indicating the player and the move to be made.
type PlayerMove struct {
	Player
	Move
}

// Eq returns true if both are equal
func (p PlayerMove) Eq(other PlayerMove) bool {
	return p.Player == other.Player && p.Move == other.Move
}

func (p PlayerMove) Format(s fmt.State, c rune) { fmt.Fprintf(s, "%v@%v", p.Player, p.Move) }

// State is the capability set every board representation implements.
//
// Apply must leave the board untouched when the move is not legal.
type State interface {
	LegalMoves(p Player) []Coord        // sorted by (row, col), no duplicates
	IsMoveLegal(p Player, c Coord) bool // c is in LegalMoves(p)
	Apply(p Player, c Coord) error      // place a disc and flip
	Discs(p Player) int                 // number of discs of the player
	StableDiscs(p Player) int           // number of discs that are locally stable
	At(c Coord) Colour                  // colour at a square
	Board() []Colour                    // row major copy of the board

	// generics
	Eq(other State) bool
	Clone() State
}

// Ended checks if the game has ended. If it has, who is the winner?
func Ended(s State) (ended bool, winner Player) {
	if len(s.LegalMoves(BlackP)) > 0 || len(s.LegalMoves(WhiteP)) > 0 {
		return false, Player(None)
	}
	b, w := s.Discs(BlackP), s.Discs(WhiteP)
	switch {
	case b > w:
		return true, BlackP
	case w > b:
		return true, WhiteP
	}
	return true, Player(None)
}

// MetaState is the state of a game being played out, as seen by an output encoder.
type MetaState interface {
	Name() string         // name of the game
	MoveNumber() int      // count of moves so far, passes included
	LastMove() PlayerMove // returns the last move that was made
	State() State
}

// ParseRows parses rows of board symbols into a row major board.
// Whitespace within a row is ignored.
func ParseRows(rows []string) ([]Colour, error) {
	if len(rows) != Size {
		return nil, errors.Errorf("Expected %d rows. Got %d", Size, len(rows))
	}
	retVal := make([]Colour, 0, Squares)
	for i, row := range rows {
		var n int
		for j := 0; j < len(row); j++ {
			if row[j] == ' ' || row[j] == '\t' || row[j] == '\r' {
				continue
			}
			c, err := ColourOf(row[j])
			if err != nil {
				return nil, errors.WithMessagef(err, "row %d", i+1)
			}
			retVal = append(retVal, c)
			n++
		}
		if n != Size {
			return nil, errors.Errorf("Row %d has %d squares", i+1, n)
		}
	}
	return retVal, nil
}

// FormatBoard writes a row major board the way boards are shown everywhere else.
func FormatBoard(w io.Writer, board []Colour) {
	for i, c := range board {
		if i%Size == 0 {
			fmt.Fprint(w, "⎢ ")
		}
		fmt.Fprintf(w, "%s ", c)
		if (i+1)%Size == 0 {
			fmt.Fprint(w, "⎥\n")
		}
	}
}
