package reversi

import (
	"bufio"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/gorgonia/reversi/game"
	"github.com/gorgonia/reversi/game/bitboard"
	"github.com/pkg/errors"
)

// PlayedMove is a move made in a game, and how long it took to decide.
type PlayedMove struct {
	Player  game.Player
	Move    game.Move
	Elapsed time.Duration
}

// Record is a played game.
type Record struct {
	Name     string
	Start    game.State // nil means the initial position
	Moves    []PlayedMove
	Final    game.State
	TimeLeft map[game.Player]time.Duration
}

func symbol(p game.Player) string { return string(game.Colour(p).Symbol()) }

// Winner returns the player with more discs on the final board, or None for a draw.
func (r Record) Winner() game.Player {
	if r.Final == nil {
		return game.Player(game.None)
	}
	b, w := r.Final.Discs(game.BlackP), r.Final.Discs(game.WhiteP)
	switch {
	case b > w:
		return game.BlackP
	case w > b:
		return game.WhiteP
	}
	return game.Player(game.None)
}

// Replay rebuilds the position after the i-th move. Use -1 for the starting position.
func (r Record) Replay(i int) (game.State, error) {
	if i < -1 || i >= len(r.Moves) {
		return nil, errors.Errorf("Move %d is out of range [-1, %d)", i, len(r.Moves))
	}
	var s game.State = bitboard.Initial()
	if r.Start != nil {
		s = r.Start.Clone()
	}
	for j := 0; j <= i; j++ {
		m := r.Moves[j]
		if !m.Move.IsPlacement() {
			continue
		}
		if err := s.Apply(m.Player, m.Move.Coord()); err != nil {
			return nil, errors.WithMessagef(err, "move %d", j+1)
		}
	}
	return s, nil
}

// startTag opens the line holding a start position other than the initial one.
const startTag = "start"

func isInitial(s game.State) bool {
	return slices.Equal(s.Board(), bitboard.Initial().Board())
}

// WriteLog writes one line per move: the player's symbol, the move, and the seconds taken.
// A game that did not start from the initial position is preceded by a line with its eight rows:
//
//	start ******** ******** ******** ***XO*** ***OX*** ******** ******** ********
func (r Record) WriteLog(w io.Writer) error {
	bw := bufio.NewWriter(w)
	if r.Start != nil && !isInitial(r.Start) {
		board := r.Start.Board()
		line := make([]byte, 0, len(startTag)+game.Squares+game.Size+1)
		line = append(line, startTag...)
		for i, c := range board {
			if i%game.Size == 0 {
				line = append(line, ' ')
			}
			line = append(line, c.Symbol())
		}
		line = append(line, '\n')
		if _, err := bw.Write(line); err != nil {
			return errors.Wrap(err, "Unable to write game log")
		}
	}
	for _, m := range r.Moves {
		secs := strconv.FormatFloat(m.Elapsed.Seconds(), 'f', -1, 64)
		if _, err := fmt.Fprintf(bw, "%s %v %s\n", symbol(m.Player), m.Move, secs); err != nil {
			return errors.Wrap(err, "Unable to write game log")
		}
	}
	return errors.Wrap(bw.Flush(), "Unable to write game log")
}

// ReadLog reads a log written by WriteLog. The final position is replayed from the start position.
func ReadLog(rd io.Reader) (Record, error) {
	var retVal Record
	sc := bufio.NewScanner(rd)
	var line int
	for sc.Scan() {
		line++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		if fields[0] == startTag {
			if retVal.Start != nil || len(retVal.Moves) > 0 {
				return retVal, errors.Errorf("line %d: the start position has to come before the moves", line)
			}
			start, err := bitboard.FromRows(fields[1:]...)
			if err != nil {
				return retVal, errors.WithMessagef(err, "line %d", line)
			}
			retVal.Start = start
			continue
		}
		if len(fields) != 3 {
			return retVal, errors.Errorf("line %d: expected 3 fields. Got %d", line, len(fields))
		}
		p, err := game.PlayerOf(fields[0])
		if err != nil {
			return retVal, errors.WithMessagef(err, "line %d", line)
		}
		m, err := game.ParseMove(fields[1])
		if err != nil {
			return retVal, errors.WithMessagef(err, "line %d", line)
		}
		secs, err := strconv.ParseFloat(fields[2], 64)
		if err != nil {
			return retVal, errors.Wrapf(err, "line %d", line)
		}
		retVal.Moves = append(retVal.Moves, PlayedMove{Player: p, Move: m, Elapsed: time.Duration(secs * float64(time.Second))})
	}
	if err := sc.Err(); err != nil {
		return retVal, errors.Wrap(err, "Unable to read game log")
	}

	final, err := retVal.Replay(len(retVal.Moves) - 1)
	if err != nil {
		return retVal, err
	}
	retVal.Final = final
	return retVal, nil
}

// Summary writes the time left and the discs of both players.
func (r Record) Summary(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 8, 1, '\t', 0)
	fmt.Fprintln(tw, "Field\tPlayer1\tPlayer2\t")
	fmt.Fprintf(tw, "Time\t%.3f\t%.3f\t\n", r.TimeLeft[game.BlackP].Seconds(), r.TimeLeft[game.WhiteP].Seconds())
	if r.Final != nil {
		fmt.Fprintf(tw, "Discs\t%d\t%d\t\n", r.Final.Discs(game.BlackP), r.Final.Discs(game.WhiteP))
	}
	return tw.Flush()
}
