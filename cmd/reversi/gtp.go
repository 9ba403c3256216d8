package main

import (
	"bufio"
	"io"
	"os"

	"github.com/gorgonia/reversi"
	"github.com/gorgonia/reversi/game"
	"github.com/gorgonia/reversi/gtp"
	"github.com/gorgonia/reversi/minimax"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var gtpMode int

var gtpCmd = &cobra.Command{
	Use:   "gtp",
	Short: "Speak the text protocol on stdin and stdout",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runGTP(os.Stdin, cmd.OutOrStdout())
	},
}

func init() {
	gtpCmd.Flags().IntVar(&gtpMode, "mode", int(reversi.AlphaBeta), "mode used by genmove")
}

// agentGenerator decides with a fresh agent every time, so either colour can be asked for a move.
func agentGenerator(mode reversi.Mode, conf minimax.Config) gtp.Generator {
	return func(s game.State, p game.Player, depth int) (game.Move, error) {
		a, err := reversi.NewAgent("", mode, conf, p, logger)
		if err != nil {
			return game.Pass, err
		}
		res, err := a.Decide(s, reversi.Decision{
			Depth:  depth,
			Budget: minimax.Budget{Remaining: cfg.Clock},
		})
		return res.Move, err
	}
}

func runGTP(r io.Reader, w io.Writer) error {
	e := gtp.New(agentGenerator(reversi.Mode(gtpMode), cfg.search(minimax.AlphaBeta)), "reversi", "1.0", nil)
	ch, ret := e.Start()
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		select {
		case ch <- sc.Text():
		case <-e.Done():
			return nil
		}
		if _, err := io.WriteString(w, <-ret); err != nil {
			return errors.Wrap(err, "Unable to write response")
		}
	}
	if err := sc.Err(); err != nil {
		return errors.Wrap(err, "Unable to read commands")
	}
	return nil
}
