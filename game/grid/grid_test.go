package grid

import (
	"fmt"
	"math/rand"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/gorgonia/reversi/game"
	"github.com/gorgonia/reversi/game/bitboard"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoard_Initial(t *testing.T) {
	assert := assert.New(t)
	g := Initial()
	assert.True(g.Eq(bitboard.Initial()))
	assert.Equal([]game.Coord{{Row: 2, Col: 4}, {Row: 3, Col: 5}, {Row: 4, Col: 2}, {Row: 5, Col: 3}}, g.LegalMoves(game.BlackP))
	assert.Equal([]game.Coord{{Row: 2, Col: 3}, {Row: 3, Col: 2}, {Row: 4, Col: 5}, {Row: 5, Col: 4}}, g.LegalMoves(game.WhiteP))
	assert.Equal(2, g.Discs(game.BlackP))
	lines := strings.Split(fmt.Sprintf("%v", g), "\n")
	assert.Equal("⎢ · · · X O · · · ⎥", lines[3])
}

func TestBoard_ApplyFlips(t *testing.T) {
	assert := assert.New(t)
	g, err := FromRows(
		"********",
		"*XXX****",
		"*XOO****",
		"*XO*O***",
		"********",
		"********",
		"********",
		"********",
	)
	require.NoError(t, err)
	before := g.Clone()

	f, err := g.ApplyFlips(game.BlackP, game.Coord{Row: 3, Col: 3})
	require.NoError(t, err)
	// up closes at (1,3), up-left at (1,1), left at (3,1)
	assert.Equal(game.Coord{Row: 1, Col: 3}, f[game.Up])
	assert.Equal(game.Coord{Row: 1, Col: 1}, f[game.UpLeft])
	assert.Equal(game.Coord{Row: 3, Col: 1}, f[game.Left])
	assert.Equal(game.EmptyCoord, f[game.Right])
	assert.Equal(3, f.Count())
	assert.Equal(game.White, g.At(game.Coord{Row: 3, Col: 4}))
	assert.Equal(game.Black, g.At(game.Coord{Row: 2, Col: 2}))
	assert.Equal(game.Black, g.At(game.Coord{Row: 2, Col: 3}))
	assert.Equal(game.Black, g.At(game.Coord{Row: 3, Col: 2}))

	g.Undo(game.BlackP, game.Coord{Row: 3, Col: 3}, f)
	assert.True(before.Eq(g), "Undo did not restore the board\n%v", g)
}

func TestBoard_ApplyIllegal(t *testing.T) {
	g := Initial()
	before := g.Clone()
	for _, c := range []game.Coord{{Row: 0, Col: 0}, {Row: 3, Col: 3}, game.EmptyCoord} {
		_, err := g.ApplyFlips(game.WhiteP, c)
		assert.True(t, game.IsMoveError(err), "%v: %v", c, err)
		assert.True(t, before.Eq(g))
	}
}

func TestBoard_StableDiscs(t *testing.T) {
	full := make([]game.Colour, game.Squares)
	for i := range full {
		full[i] = game.White
	}
	g, err := FromColours(full)
	require.NoError(t, err)
	assert.Equal(t, 40, g.StableDiscs(game.WhiteP))
	assert.Equal(t, 0, g.StableDiscs(game.BlackP))
}

// The grid and the bitboard must play the same game.
func TestBoard_MatchesBitboard(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	for i := 0; i < 30; i++ {
		g := Initial()
		bb := bitboard.Initial()
		p := game.BlackP
		passes := 0
		for passes < 2 {
			for _, pl := range []game.Player{game.BlackP, game.WhiteP} {
				if diff := cmp.Diff(bb.LegalMoves(pl), g.LegalMoves(pl)); diff != "" {
					t.Fatalf("Legal moves of %v differ (-bitboard +grid):\n%s\n%v", pl, diff, g)
				}
				if bb.Discs(pl) != g.Discs(pl) {
					t.Fatalf("Disc count of %v differ: %d vs %d", pl, bb.Discs(pl), g.Discs(pl))
				}
				if bb.StableDiscs(pl) != g.StableDiscs(pl) {
					t.Fatalf("Stable disc count of %v differ: %d vs %d\n%v", pl, bb.StableDiscs(pl), g.StableDiscs(pl), g)
				}
			}

			moves := g.LegalMoves(p)
			if len(moves) == 0 {
				passes++
				p = game.Opponent(p)
				continue
			}
			passes = 0
			m := moves[r.Intn(len(moves))]

			// try the move, take it back, then play it for real
			before := g.Clone()
			f, err := g.ApplyFlips(p, m)
			require.NoError(t, err)
			g.Undo(p, m, f)
			if !before.Eq(g) {
				t.Fatalf("Undo of %v did not restore the board", m)
			}

			require.NoError(t, g.Apply(p, m))
			require.NoError(t, bb.Apply(p, m))
			if !g.Eq(bb) {
				t.Fatalf("Boards differ after %v@%v\n%v\n%v", p, m, g, bb)
			}
			p = game.Opponent(p)
		}
	}
}
