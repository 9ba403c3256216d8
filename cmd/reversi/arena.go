package main

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/gorgonia/reversi"
	"github.com/gorgonia/reversi/encoding/gif"
	"github.com/gorgonia/reversi/game"
	"github.com/gorgonia/reversi/internal/agentio"
	"github.com/gorgonia/reversi/minimax"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var arenaFlags struct {
	black, white int
	games        int
	maxMoves     int
	gifPath      string
	listen       string
	statsPath    string
}

var arenaCmd = &cobra.Command{
	Use:   "arena",
	Short: "Play two engines against each other",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
		defer cancel()
		return runArena(ctx, cmd.OutOrStdout())
	},
}

func init() {
	f := arenaCmd.Flags()
	f.IntVar(&arenaFlags.black, "black", int(reversi.Competition), "mode of the black player (1 greedy, 2 minimax, 3 alpha-beta, 4 competition)")
	f.IntVar(&arenaFlags.white, "white", int(reversi.Competition), "mode of the white player")
	f.IntVarP(&arenaFlags.games, "games", "n", 1, "number of games to play")
	f.IntVar(&arenaFlags.maxMoves, "max-moves", 0, "stop a game after this many moves (0 for no limit)")
	f.StringVar(&arenaFlags.gifPath, "gif", "", "render every game into an animated gif")
	f.StringVar(&arenaFlags.listen, "listen", "", "serve a websocket stream of the moves on this address, at /ws")
	f.StringVar(&arenaFlags.statsPath, "stats", "", "write the win rates of a series as CSV")
}

func runArena(ctx context.Context, w io.Writer) error {
	conf := reversi.DefaultConfig()
	conf.Name = "Reversi"
	conf.SearchConf = cfg.search(minimax.AlphaBeta)
	conf.ClockPerPlayer = cfg.Clock
	conf.MaxMoves = arenaFlags.maxMoves
	if !conf.IsValid() {
		return errors.Errorf("Invalid arena configuration %+v", conf)
	}

	black, err := reversi.NewAgent("black", reversi.Mode(arenaFlags.black), conf.SearchConf, game.BlackP, logger)
	if err != nil {
		return err
	}
	white, err := reversi.NewAgent("white", reversi.Mode(arenaFlags.white), conf.SearchConf, game.WhiteP, logger)
	if err != nil {
		return err
	}

	var encs encoders
	if arenaFlags.gifPath != "" {
		encs = append(encs, &gifFiles{path: arenaFlags.gifPath, series: arenaFlags.games > 1})
	}
	if arenaFlags.listen != "" {
		spectator := NewSpectator(logger)
		mux := http.NewServeMux()
		mux.Handle("/ws", spectator)
		srv := &http.Server{Addr: arenaFlags.listen, Handler: mux}
		go func() {
			logger.Infow("spectate", "url", "ws://"+arenaFlags.listen+"/ws")
			if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				logger.Errorw("spectator server", "err", err)
			}
		}()
		defer srv.Close()
		encs = append(encs, spectator)
	}
	if len(encs) > 0 {
		conf.OutputEncoder = encs
	}

	ar, err := reversi.NewArena(black, white, conf,
		reversi.WithArenaLogger(logger),
		reversi.WithCounters(agentio.NewFileCounter(cfg.CounterDir, game.BlackP), agentio.NewFileCounter(cfg.CounterDir, game.WhiteP)),
	)
	if err != nil {
		return err
	}

	stats, records, err := ar.Series(ctx, arenaFlags.games)
	for i, rec := range records {
		if len(records) > 1 {
			fmt.Fprintf(w, "Game %d\n", i+1)
		}
		if serr := rec.Summary(w); serr != nil {
			return serr
		}
	}
	if err != nil {
		return err
	}
	if len(records) > 0 && cfg.GameLog != "" {
		if err = writeFile(cfg.GameLog, records[len(records)-1].WriteLog); err != nil {
			return err
		}
	}
	if arenaFlags.statsPath != "" {
		return writeFile(arenaFlags.statsPath, stats.Dump)
	}
	return nil
}

func writeFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "Unable to create %q", path)
	}
	if err = write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// gifFiles writes each game of a series into its own gif: replay.gif, replay-2.gif and so on.
type gifFiles struct {
	path   string
	series bool
	n      int
	enc    *gif.Encoder
}

func (g *gifFiles) Encode(ms game.MetaState) error {
	if g.enc == nil {
		g.enc = gif.NewGifEncoder(600, 800)
	}
	return g.enc.Encode(ms)
}

func (g *gifFiles) Flush() error {
	g.n++
	path := g.path
	if g.series && g.n > 1 {
		ext := filepath.Ext(path)
		path = fmt.Sprintf("%s-%d%s", strings.TrimSuffix(path, ext), g.n, ext)
	}
	enc := g.enc
	g.enc = nil
	if enc == nil {
		return nil
	}
	return writeFile(path, func(w io.Writer) error {
		enc.Writer = w
		return enc.Flush()
	})
}
