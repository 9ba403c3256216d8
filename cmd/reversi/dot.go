package main

import (
	"fmt"
	"os"

	"github.com/gorgonia/reversi/eval"
	"github.com/gorgonia/reversi/internal/agentio"
	"github.com/gorgonia/reversi/minimax"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var dotAlgorithm string

var dotCmd = &cobra.Command{
	Use:   "dot [input]",
	Short: "Print the search tree of a position in the DOT language",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := "input.txt"
		if len(args) > 0 {
			path = args[0]
		}
		f, err := os.Open(path)
		if err != nil {
			return errors.Wrap(err, "Unable to open input")
		}
		in, err := agentio.ReadInput(f)
		f.Close()
		if err != nil {
			return err
		}
		st, err := in.State()
		if err != nil {
			return err
		}

		alg := minimax.AlphaBeta
		if dotAlgorithm == "minimax" {
			alg = minimax.Minimax
		}
		conf := cfg.search(alg)
		if in.Depth > 0 {
			conf.Depth = in.Depth
		}
		conf.RecordTree = true
		s := minimax.New(conf, eval.PositionalFunc, minimax.WithLogger(logger))
		n := s.Search(st, in.Player)
		logger.Infow("searched", "move", n.Move.String(), "value", n.Value, "visited", s.Visited())
		_, err = fmt.Fprintln(cmd.OutOrStdout(), s.ToDot())
		return err
	},
}

func init() {
	dotCmd.Flags().StringVar(&dotAlgorithm, "algorithm", "alphabeta", "minimax or alphabeta")
}
