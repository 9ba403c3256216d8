package bitboard

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/gorgonia/reversi/game"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitial(t *testing.T) {
	assert := assert.New(t)
	b := Initial()
	assert.Equal(2, b.Discs(game.BlackP))
	assert.Equal(2, b.Discs(game.WhiteP))
	assert.Equal(game.Black, b.At(game.Coord{Row: 3, Col: 3}))
	assert.Equal(game.White, b.At(game.Coord{Row: 3, Col: 4}))
	assert.Equal(game.White, b.At(game.Coord{Row: 4, Col: 3}))
	assert.Equal(game.Black, b.At(game.Coord{Row: 4, Col: 4}))
	assert.Equal(game.None, b.At(game.EmptyCoord))

	parsed, err := FromRows(
		"********",
		"********",
		"********",
		"***XO***",
		"***OX***",
		"********",
		"********",
		"********",
	)
	require.NoError(t, err)
	assert.True(b.Eq(parsed))
}

func TestBoard_LegalMoves(t *testing.T) {
	b := Initial()
	black := []game.Coord{{Row: 2, Col: 4}, {Row: 3, Col: 5}, {Row: 4, Col: 2}, {Row: 5, Col: 3}}
	white := []game.Coord{{Row: 2, Col: 3}, {Row: 3, Col: 2}, {Row: 4, Col: 5}, {Row: 5, Col: 4}}
	if diff := cmp.Diff(black, b.LegalMoves(game.BlackP)); diff != "" {
		t.Errorf("Black legal moves (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(white, b.LegalMoves(game.WhiteP)); diff != "" {
		t.Errorf("White legal moves (-want +got):\n%s", diff)
	}
	assert.Equal(t, 4, b.Mobility(game.BlackP))
	assert.True(t, b.IsMoveLegal(game.BlackP, game.Coord{Row: 2, Col: 4}))
	assert.False(t, b.IsMoveLegal(game.BlackP, game.Coord{Row: 2, Col: 3}))
	assert.False(t, b.IsMoveLegal(game.BlackP, game.EmptyCoord))
}

func TestBoard_NoWraparound(t *testing.T) {
	assert := assert.New(t)

	// Black on the right edge, White on the left edge of the next row.
	b, err := FromRows(
		"********",
		"********",
		"*******X",
		"O*******",
		"********",
		"********",
		"********",
		"********",
	)
	require.NoError(t, err)
	assert.False(b.IsMoveLegal(game.BlackP, game.Coord{Row: 3, Col: 1}))
	assert.Empty(b.LegalMoves(game.BlackP))
	assert.Empty(b.LegalMoves(game.WhiteP))

	// diagonals wrapping between rows
	b, err = FromRows(
		"********",
		"X******O",
		"********",
		"********",
		"********",
		"********",
		"********",
		"********",
	)
	require.NoError(t, err)
	assert.Empty(b.LegalMoves(game.BlackP))
	assert.Empty(b.LegalMoves(game.WhiteP))
}

func TestBoard_Apply(t *testing.T) {
	assert := assert.New(t)
	b := Initial()
	require.NoError(t, b.Apply(game.BlackP, game.Coord{Row: 2, Col: 4}))
	assert.Equal(4, b.Discs(game.BlackP))
	assert.Equal(1, b.Discs(game.WhiteP))
	assert.Equal(game.Black, b.At(game.Coord{Row: 3, Col: 4}))
	assert.Equal(game.White, b.At(game.Coord{Row: 4, Col: 3}))

	black, white := b.Masks()
	assert.Zero(black & white)

	// a long line
	b, err := FromRows(
		"XOOOOOO*",
		"********",
		"********",
		"********",
		"********",
		"********",
		"********",
		"********",
	)
	require.NoError(t, err)
	require.NoError(t, b.Apply(game.BlackP, game.Coord{Row: 0, Col: 7}))
	assert.Equal(8, b.Discs(game.BlackP))
	assert.Equal(0, b.Discs(game.WhiteP))
}

func TestBoard_ApplyIllegal(t *testing.T) {
	assert := assert.New(t)
	b := Initial()
	before := b.Clone()

	for _, c := range []game.Coord{{Row: 0, Col: 0}, {Row: 3, Col: 3}, {Row: 3, Col: 4}, game.EmptyCoord, {Row: 8, Col: 0}} {
		err := b.Apply(game.BlackP, c)
		if assert.Error(err, "%v", c) {
			assert.True(game.IsMoveError(err), "%v: %v", c, err)
		}
		assert.True(before.Eq(b), "board changed after illegal move at %v", c)
	}
	assert.Error(b.Apply(game.Player(game.None), game.Coord{Row: 2, Col: 4}))
	assert.True(before.Eq(b))
}

func TestBoard_Endpoints(t *testing.T) {
	b := Initial()
	got := b.Endpoints(game.BlackP, game.Coord{Row: 2, Col: 4})
	assert.Equal(t, []game.Coord{{Row: 4, Col: 4}}, got)
	assert.Empty(t, b.Endpoints(game.BlackP, game.Coord{Row: 0, Col: 0}))
}

func TestBoard_StableDiscs(t *testing.T) {
	assert := assert.New(t)
	b := Initial()
	assert.Equal(0, b.StableDiscs(game.BlackP))
	assert.Equal(0, b.StableDiscs(game.WhiteP))

	full, err := New(^uint64(0), 0)
	require.NoError(t, err)
	assert.Equal(40, full.StableDiscs(game.BlackP))
	assert.Equal(0, full.StableDiscs(game.WhiteP))

	corner, err := FromRows(
		"XX******",
		"XO******",
		"********",
		"********",
		"********",
		"********",
		"********",
		"*******O",
	)
	require.NoError(t, err)
	assert.Equal(1, corner.StableDiscs(game.BlackP))
	assert.Equal(1, corner.StableDiscs(game.WhiteP))
}

func TestNew(t *testing.T) {
	_, err := New(1, 1)
	assert.Error(t, err)
	_, err = FromColours(make([]game.Colour, 10))
	assert.Error(t, err)
}

func TestBoard_Format(t *testing.T) {
	s := Initial().String()
	lines := strings.Split(strings.TrimSpace(s), "\n")
	assert.Len(t, lines, game.Size)
	assert.Equal(t, "⎢ · · · X O · · · ⎥", lines[3])
}

func TestBoard_RandomPlayouts(t *testing.T) {
	r := rand.New(rand.NewSource(1337))
	for i := 0; i < 20; i++ {
		b := Initial()
		p := game.BlackP
		passes := 0
		for passes < 2 {
			moves := b.LegalMoves(p)
			if len(moves) == 0 {
				passes++
				p = game.Opponent(p)
				continue
			}
			passes = 0
			for _, m := range moves {
				if b.At(m) != game.None {
					t.Fatalf("Legal move %v is occupied\n%v", m, b)
				}
			}
			m := moves[r.Intn(len(moves))]
			mine, theirs := b.Discs(p), b.Discs(game.Opponent(p))
			if err := b.Apply(p, m); err != nil {
				t.Fatalf("Unable to apply legal move %v: %v", m, err)
			}
			black, white := b.Masks()
			if black&white != 0 {
				t.Fatalf("Masks overlap after %v\n%v", m, b)
			}
			if b.Discs(p) < mine+2 || b.Discs(game.Opponent(p)) > theirs-1 {
				t.Fatalf("Move %v did not flip anything\n%v", m, b)
			}
			if b.Discs(p)+b.Discs(game.Opponent(p)) != mine+theirs+1 {
				t.Fatalf("Move %v changed the disc total incorrectly", m)
			}
			p = game.Opponent(p)
		}
		ended, _ := game.Ended(b)
		assert.True(t, ended)
	}
}
