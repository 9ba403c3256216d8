package gif

import (
	"bytes"
	"image/gif"
	"testing"

	"github.com/gorgonia/reversi/game"
	"github.com/gorgonia/reversi/game/bitboard"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type replay struct {
	s     game.State
	moves []game.PlayerMove
}

func (r *replay) Name() string    { return "test" }
func (r *replay) MoveNumber() int { return len(r.moves) }
func (r *replay) State() game.State {
	return r.s
}
func (r *replay) LastMove() game.PlayerMove {
	if len(r.moves) == 0 {
		return game.PlayerMove{Player: game.Player(game.None), Move: game.Root}
	}
	return r.moves[len(r.moves)-1]
}

func TestEncoder(t *testing.T) {
	assert := assert.New(t)
	enc := NewGifEncoder(800, 600)
	assert.Error(enc.Flush())

	r := &replay{s: bitboard.Initial()}
	require.NoError(t, enc.Encode(r))
	for _, pm := range []game.PlayerMove{
		{Player: game.BlackP, Move: game.MoveAt(game.Coord{Row: 2, Col: 4})},
		{Player: game.WhiteP, Move: game.MoveAt(game.Coord{Row: 2, Col: 3})},
	} {
		require.NoError(t, r.s.Apply(pm.Player, pm.Move.Coord()))
		r.moves = append(r.moves, pm)
		require.NoError(t, enc.Encode(r))
	}

	// a finished game
	done, err := bitboard.FromRows(
		"X*******",
		"********",
		"********",
		"********",
		"********",
		"********",
		"********",
		"*******O",
	)
	require.NoError(t, err)
	r.s = done
	r.moves = append(r.moves, game.PlayerMove{Player: game.BlackP, Move: game.Pass})
	require.NoError(t, enc.Encode(r))
	assert.Equal(4, enc.Frames())
	assert.True(enc.W <= 600)
	assert.True(enc.H <= 800)

	var buf bytes.Buffer
	enc.Writer = &buf
	require.NoError(t, enc.Flush())
	g, err := gif.DecodeAll(&buf)
	require.NoError(t, err)
	assert.Len(g.Image, 4)
	assert.Equal([]int{0, 0, 0, finalDelay}, g.Delay)
	assert.Equal(enc.W, g.Config.Width)

	assert.Error(enc.Encode(&replay{}))
}
