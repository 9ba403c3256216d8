package main

import (
	"io"
	"os"

	"github.com/gorgonia/reversi"
	"github.com/gorgonia/reversi/game"
	"github.com/gorgonia/reversi/internal/agentio"
	"github.com/gorgonia/reversi/minimax"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var decideIn, decideOut string

var decideCmd = &cobra.Command{
	Use:   "decide",
	Short: "Read a position from an input file and write the decision",
	RunE: func(cmd *cobra.Command, args []string) error {
		in, err := os.Open(decideIn)
		if err != nil {
			return errors.Wrap(err, "Unable to open input")
		}
		defer in.Close()
		out, err := os.Create(decideOut)
		if err != nil {
			return errors.Wrap(err, "Unable to create output")
		}
		if err = decide(in, out, cfg); err != nil {
			out.Close()
			return err
		}
		return out.Close()
	},
}

func init() {
	decideCmd.Flags().StringVarP(&decideIn, "in", "i", "input.txt", "input file")
	decideCmd.Flags().StringVarP(&decideOut, "out", "o", "output.txt", "output file")
}

// decide plays one move. The competition mode writes only the move.
// The other modes write the board after the move and the search trace.
func decide(r io.Reader, w io.Writer, c *Config) error {
	in, err := agentio.ReadInput(r)
	if err != nil {
		return err
	}
	st, err := in.State()
	if err != nil {
		return err
	}
	counter := agentio.NewFileCounter(c.CounterDir, in.Player)
	movesMade, err := counter.Load()
	if err != nil {
		return err
	}

	a, err := reversi.NewAgent("", in.Mode, c.search(minimax.AlphaBeta), in.Player, logger)
	if err != nil {
		return err
	}
	res, err := a.Decide(st, in.Decision(movesMade))
	if err != nil {
		return err
	}
	if err = counter.Store(res.MovesMade); err != nil {
		return err
	}
	logger.Infow("decided", "player", string(game.Colour(in.Player).Symbol()), "mode", in.Mode.String(), "move", res.Move.String(), "depth", res.Stats.Depth)

	if in.Mode == reversi.Competition {
		return agentio.WriteDecision(w, res.Move)
	}
	if res.Move.IsPlacement() {
		if err = st.Apply(in.Player, res.Move.Coord()); err != nil {
			return err
		}
	}
	return agentio.WriteBoardAndTrace(w, st, res)
}
