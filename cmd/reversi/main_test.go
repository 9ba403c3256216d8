package main

import (
	"bytes"
	"context"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/gorgonia/reversi"
	"github.com/gorgonia/reversi/game"
	"github.com/gorgonia/reversi/game/bitboard"
	"github.com/gorgonia/reversi/minimax"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func init() { logger = zap.NewNop().Sugar() }

const board = `********
********
********
***XO***
***OX***
********
********
********
`

func testConfig(t *testing.T) *Config {
	c, err := Setup(filepath.Join("testdata", "missing.yaml"))
	assert.Error(t, err)
	assert.Nil(t, c)

	c, err = Setup("")
	require.NoError(t, err)
	c.CounterDir = t.TempDir()
	return c
}

func TestSetup(t *testing.T) {
	assert := assert.New(t)
	c, err := Setup("")
	require.NoError(t, err)
	assert.Equal(4, c.Depth)
	assert.Equal(200*time.Second, c.Clock)
	assert.Equal("gamelog.txt", c.GameLog)

	t.Setenv("REVERSI_DEPTH", "3")
	t.Setenv("REVERSI_CLOCK", "90s")
	c, err = Setup("")
	require.NoError(t, err)
	assert.Equal(3, c.Depth)
	assert.Equal(90*time.Second, c.Clock)

	path := filepath.Join(t.TempDir(), "reversi.yaml")
	require.NoError(t, os.WriteFile(path, []byte("max_depth: 6\nepsilon: 0.25\n"), 0644))
	c, err = Setup(path)
	require.NoError(t, err)
	assert.Equal(6, c.MaxDepth)
	assert.Equal(float32(0.25), c.Epsilon)
	assert.Equal(3, c.Depth)

	require.NoError(t, os.WriteFile(path, []byte("max_depth: 1\n"), 0644))
	_, err = Setup(path)
	assert.Error(err)
}

func TestDecide(t *testing.T) {
	assert := assert.New(t)
	c := testConfig(t)

	var out bytes.Buffer
	require.NoError(t, decide(strings.NewReader("1\nX\n3\n"+board), &out, c))
	assert.Equal("********\n********\n****X***\n***XX***\n***OX***\n********\n********\n********\n\n", out.String())
	n, err := os.ReadFile(filepath.Join(c.CounterDir, "numberofmoves0.txt"))
	require.NoError(t, err)
	assert.Equal("1", string(n))

	out.Reset()
	require.NoError(t, decide(strings.NewReader("2\nX\n2\n"+board), &out, c))
	assert.Contains(out.String(), "\nNode,Depth,Value\nroot,0,-Infinity\n")

	out.Reset()
	require.NoError(t, decide(strings.NewReader("4\nO\n60\n"+board), &out, c))
	m, err := game.ParseMove(out.String())
	require.NoError(t, err)
	assert.True(bitboard.Initial().IsMoveLegal(game.WhiteP, m.Coord()))
	n, err = os.ReadFile(filepath.Join(c.CounterDir, "numberofmoves1.txt"))
	require.NoError(t, err)
	assert.Equal("1", string(n))

	assert.Error(decide(strings.NewReader("5\nX\n3\n"+board), &out, c))
}

func TestRunGTP(t *testing.T) {
	cfg = testConfig(t)
	var out bytes.Buffer
	require.NoError(t, runGTP(strings.NewReader("name\nplay b e3\ngenmove w\nquit\nversion\n"), &out))
	resp := strings.Split(out.String(), "\n\n")
	require.Len(t, resp, 5)
	assert.Equal(t, "= reversi", resp[0])
	assert.Equal(t, "= ", resp[1])
	assert.True(t, strings.HasPrefix(resp[2], "= "), resp[2])
	assert.Equal(t, "= ", resp[3])
	assert.Empty(t, resp[4])
}

func TestSpectator(t *testing.T) {
	s := NewSpectator(nil)
	srv := httptest.NewServer(s)
	defer srv.Close()

	conn, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http"), nil)
	require.NoError(t, err)
	defer conn.Close()
	require.Eventually(t, func() bool { return s.Clients() == 1 }, time.Second, 10*time.Millisecond)

	a, err := reversi.NewAgent("A", reversi.Greedy, cfgSearch(), game.BlackP, nil)
	require.NoError(t, err)
	b, err := reversi.NewAgent("B", reversi.Greedy, cfgSearch(), game.WhiteP, nil)
	require.NoError(t, err)
	conf := reversi.DefaultConfig()
	conf.MaxMoves = 1
	conf.OutputEncoder = encoders{s}
	ar, err := reversi.NewArena(a, b, conf)
	require.NoError(t, err)
	_, err = ar.Play(context.Background())
	require.NoError(t, err)

	var msg moveMsg
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))
	require.NoError(t, conn.ReadJSON(&msg))
	assert.Equal(t, "Reversi", msg.Game)
	assert.Equal(t, 1, msg.Number)
	assert.Equal(t, "X", msg.Player)
	assert.Equal(t, "e3", msg.Move)
	assert.Len(t, msg.Board, game.Squares)
	assert.False(t, msg.Ended)
}

func TestSpectator_Disconnect(t *testing.T) {
	s := NewSpectator(nil)
	srv := httptest.NewServer(s)
	defer srv.Close()

	conn, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http"), nil)
	require.NoError(t, err)
	require.Eventually(t, func() bool { return s.Clients() == 1 }, time.Second, 10*time.Millisecond)

	require.NoError(t, conn.Close())
	assert.Eventually(t, func() bool { return s.Clients() == 0 }, 5*time.Second, 10*time.Millisecond)
}

func cfgSearch() minimax.Config {
	c := &Config{Depth: 3, MinDepth: 2, MaxDepth: 4, Epsilon: 0.5, GameLength: 32}
	return c.search(minimax.AlphaBeta)
}

func TestReplayModel(t *testing.T) {
	assert := assert.New(t)
	rec, err := reversi.ReadLog(strings.NewReader("X e3 0.5\nO d3 0.25\n"))
	require.NoError(t, err)
	m, err := newReplayModel(rec)
	require.NoError(t, err)
	assert.Len(m.states, 3)
	assert.Contains(m.View(), "Move 0/2")

	key := func(s string) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRight})
	m = next.(replayModel)
	assert.Equal(0, m.i)
	assert.Equal(game.WhiteP, m.toMove())
	assert.Contains(m.View(), "Move 1/2")
	assert.Contains(m.View(), "X 4  O 1")

	next, _ = m.Update(key("f"))
	next, _ = next.Update(key("f"))
	m = next.(replayModel)
	assert.Equal(1, m.i)

	next, _ = m.Update(key("b"))
	next, _ = next.Update(key("b"))
	next, _ = next.Update(key("b"))
	m = next.(replayModel)
	assert.Equal(-1, m.i)

	_, cmd := m.Update(key("q"))
	require.NotNil(t, cmd)
	assert.Equal(tea.Quit(), cmd())
}
