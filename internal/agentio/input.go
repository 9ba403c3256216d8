// Package agentio reads the position an agent is asked to play, and writes its decision.
//
// An input file holds the task (1 greedy, 2 minimax, 3 alpha-beta, 4 competition), the symbol of the player
// to move, the cutoff depth (tasks 1 to 3) or the seconds left on the clock (task 4), and 8 rows of the board
// made of '*', 'X' and 'O'.
package agentio

import (
	"bufio"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/gorgonia/reversi"
	"github.com/gorgonia/reversi/game"
	"github.com/gorgonia/reversi/game/bitboard"
	"github.com/gorgonia/reversi/minimax"
	"github.com/pkg/errors"
)

// Input is a parsed input file.
type Input struct {
	Mode   reversi.Mode
	Player game.Player
	Depth  int           // tasks 1 to 3
	Clock  time.Duration // task 4
	Board  []game.Colour
}

// ReadInput parses an input file. Blank lines are skipped.
func ReadInput(r io.Reader) (Input, error) {
	var retVal Input
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		l := strings.TrimSpace(sc.Text())
		if l == "" {
			continue
		}
		lines = append(lines, l)
	}
	if err := sc.Err(); err != nil {
		return retVal, errors.Wrap(err, "Unable to read input")
	}
	if len(lines) < 3+game.Size {
		return retVal, errors.Errorf("Expected %d lines of input. Got %d", 3+game.Size, len(lines))
	}

	task, err := strconv.Atoi(lines[0])
	if err != nil {
		return retVal, errors.Wrap(err, "Unable to parse task")
	}
	retVal.Mode = reversi.Mode(task)
	if !retVal.Mode.IsValid() {
		return retVal, errors.Errorf("Unknown task %d", task)
	}

	if retVal.Player, err = game.PlayerOf(lines[1]); err != nil {
		return retVal, err
	}

	if retVal.Mode.FixedDepth() {
		if retVal.Depth, err = strconv.Atoi(lines[2]); err != nil {
			return retVal, errors.Wrap(err, "Unable to parse cutoff depth")
		}
		if retVal.Depth < 1 {
			return retVal, errors.Errorf("Cutoff depth has to be positive. Got %d", retVal.Depth)
		}
	} else {
		secs, err := strconv.ParseFloat(lines[2], 64)
		if err != nil {
			return retVal, errors.Wrap(err, "Unable to parse CPU time")
		}
		if secs < 0 {
			return retVal, errors.Errorf("CPU time cannot be negative. Got %v", secs)
		}
		retVal.Clock = time.Duration(secs * float64(time.Second))
	}

	if retVal.Board, err = game.ParseRows(lines[3 : 3+game.Size]); err != nil {
		return retVal, errors.WithMessage(err, "Unable to parse board")
	}
	return retVal, nil
}

// State creates the board of the input.
func (in Input) State() (*bitboard.Board, error) { return bitboard.FromColours(in.Board) }

// Decision is what the agent decides with, given the number of moves it made so far.
func (in Input) Decision(movesMade int) reversi.Decision {
	return reversi.Decision{
		Depth:  in.Depth,
		Budget: minimax.Budget{Remaining: in.Clock, MovesMade: movesMade},
	}
}
