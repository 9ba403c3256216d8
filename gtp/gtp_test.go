package gtp

import (
	"strings"
	"testing"

	"github.com/gorgonia/reversi/game"
	"github.com/gorgonia/reversi/game/bitboard"
	"github.com/stretchr/testify/assert"
)

func firstLegal(s game.State, p game.Player, depth int) (game.Move, error) {
	moves := s.LegalMoves(p)
	if len(moves) == 0 {
		return game.Pass, nil
	}
	return game.MoveAt(moves[0]), nil
}

func Test_General(t *testing.T) {
	assert := assert.New(t)
	e := New(nil, "xx", "1", nil)
	var x string

	ch, ret := e.Start()
	ch <- "version"
	x = <-ret
	assert.Equal("= 1\n\n", x)

	ch <- "known_command hello"
	x = <-ret
	assert.Equal("= false\n\n", x)

	ch <- "known_command name"
	x = <-ret
	assert.Equal("= true\n\n", x)

	ch <- "completelyUnheardOfCommand xxx"
	x = <-ret
	assert.Equal("? Unknown command \"completelyunheardofcommand\"\n\n", x)

	ch <- "   # just a comment"
	x = <-ret
	assert.Equal("= \n\n", x)

	ch <- "7 protocol_version"
	x = <-ret
	assert.Equal("= 7 2\n\n", x)

	ch <- "genmove black"
	x = <-ret
	assert.Equal("? No move generator\n\n", x)

	ch <- "quit"
	x = <-ret
	assert.Equal("= \n\n", x)
	_, ok := <-ret
	assert.False(ok)
}

func TestEngine_Play(t *testing.T) {
	assert := assert.New(t)
	e := New(firstLegal, "reversi", "0.1", nil)
	ch, ret := e.Start()
	send := func(cmd string) string {
		ch <- cmd
		return <-ret
	}

	assert.Equal("= \n\n", send("play black e3"))
	assert.Equal(4, e.State().Discs(game.BlackP))
	assert.Equal(1, e.State().Discs(game.WhiteP))

	assert.True(strings.HasPrefix(send("play white e3"), "? "), "occupied square")
	assert.True(strings.HasPrefix(send("play white pass"), "? "), "white has legal moves")
	assert.True(strings.HasPrefix(send("play green d3"), "? "))
	assert.True(strings.HasPrefix(send("play white"), "? "))

	// firstLegal picks the lowest coordinate
	want := game.MoveAt(e.State().LegalMoves(game.WhiteP)[0])
	assert.Equal("= "+want.String()+"\n\n", send("genmove w"))
	assert.Equal("= 0\n\n", send("final_score"))

	assert.Equal("= \n\n", send("undo"))
	assert.Equal("= \n\n", send("undo"))
	assert.True(e.State().Eq(bitboard.Initial()))
	assert.Equal("? Cannot undo\n\n", send("undo"))

	send("play b e3")
	assert.Equal("= B+3\n\n", send("final_score"))
	assert.Equal("= \n\n", send("clear_board"))
	assert.True(e.State().Eq(bitboard.Initial()))

	assert.Equal("= \n\n", send("set_depth 6"))
	assert.Equal(6, e.depth)
	assert.True(strings.HasPrefix(send("set_depth 0"), "? "))
	assert.True(strings.HasPrefix(send("set_depth deep"), "? "))

	board := send("showboard")
	assert.Contains(board, "⎢ · · · X O · · · ⎥")

	list := send("list_commands")
	assert.True(strings.HasPrefix(list, "= clear_board\nfinal_score\n"), list)
	send("quit")
}
