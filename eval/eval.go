// Package eval scores Reversi positions.
//
// All scores are from the point of view of a given player: higher is better for that player.
package eval

import (
	"github.com/chewxy/math32"
	"github.com/gorgonia/reversi/game"
	"gorgonia.org/vecf32"
)

// Func scores s for p. last is the move that led to s; it may be game.Root or game.Pass.
type Func func(s game.State, last game.Move, p game.Player) float32

// EncodeBoard encodes black as 1, white as -1 for each disc placed
func EncodeBoard(a []game.Colour, prealloc []float32) []float32 {
	if len(prealloc) != len(a) {
		prealloc = make([]float32, len(a))
	}

	for i := range a {
		switch a[i] {
		case game.Black:
			prealloc[i] = 1
		case game.White:
			prealloc[i] = -1
		default:
			prealloc[i] = 0
		}
	}
	return prealloc
}

// EncodeFor encodes the discs of p as 1 and the discs of the opponent as -1.
func EncodeFor(a []game.Colour, p game.Player, prealloc []float32) []float32 {
	retVal := EncodeBoard(a, prealloc)
	if p == game.WhiteP {
		vecf32.Scale(retVal, -1)
	}
	return retVal
}

// Positional is the sum of the weights of p's squares minus the sum of the weights of the opponent's squares.
func Positional(s game.State, p game.Player) float32 {
	enc := EncodeFor(s.Board(), p, nil)
	vecf32.Mul(enc, positional)
	return vecf32.Sum(enc)
}

// PositionalFunc adapts Positional to a Func. The last move is ignored.
func PositionalFunc(s game.State, _ game.Move, p game.Player) float32 { return Positional(s, p) }

// Composite multiplies the heuristic weight of the last move with three ratios of p's figures over the opponent's:
// discs, stable discs and mobility. Each figure is clamped to at least 1.
// Root and Pass have a heuristic weight of 1.
func Composite(s game.State, last game.Move, p game.Player) float32 {
	opp := game.Opponent(p)
	h := float32(1)
	if last.IsPlacement() {
		h = HeuristicWeight(last.Coord())
	}
	discs := ratio(s.Discs(p), s.Discs(opp))
	stable := ratio(s.StableDiscs(p), s.StableDiscs(opp))
	mobility := ratio(len(s.LegalMoves(p)), len(s.LegalMoves(opp)))
	return h * discs * stable * mobility
}

func ratio(mine, theirs int) float32 {
	return math32.Max(1, float32(mine)) / math32.Max(1, float32(theirs))
}
