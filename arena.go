package reversi

import (
	"context"
	"time"

	"github.com/gorgonia/reversi/game"
	"github.com/gorgonia/reversi/game/bitboard"
	"github.com/gorgonia/reversi/minimax"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

var _ game.MetaState = &Arena{}

// Arena plays two agents against each other. A plays Black and moves first.
type Arena struct {
	A, B *Agent

	conf     Config
	logger   *zap.SugaredLogger
	counters [2]MoveCounter

	// state
	start         game.State
	game          game.State
	currentPlayer *Agent
	moves         []PlayedMove
	clocks        [2]time.Duration
}

// ArenaOpt configures an Arena.
type ArenaOpt func(*Arena)

// WithArenaLogger sets the logger of the arena.
func WithArenaLogger(l *zap.SugaredLogger) ArenaOpt {
	return func(a *Arena) {
		if l != nil {
			a.logger = l
		}
	}
}

// WithCounters persists the move counts of black and white with the given counters.
func WithCounters(black, white MoveCounter) ArenaOpt {
	return func(a *Arena) { a.counters = [2]MoveCounter{black, white} }
}

// WithPosition starts the games from s rather than the initial position.
func WithPosition(s game.State) ArenaOpt {
	return func(a *Arena) { a.start = s.Clone() }
}

// NewArena creates an arena for a and b. a must play Black and b White.
func NewArena(a, b *Agent, conf Config, opts ...ArenaOpt) (*Arena, error) {
	if a == nil || b == nil {
		return nil, errors.New("Arena needs two agents")
	}
	if a.Player != game.BlackP || b.Player != game.WhiteP {
		return nil, errors.Errorf("Expected A to play Black and B to play White. Got %v and %v", a.Player, b.Player)
	}
	if conf.Name == "" {
		conf.Name = "UNKNOWN GAME"
	}
	retVal := &Arena{
		A:        a,
		B:        b,
		conf:     conf,
		logger:   zap.NewNop().Sugar(),
		counters: [2]MoveCounter{new(memCounter), new(memCounter)},
		start:    bitboard.Initial(),
	}
	for _, opt := range opts {
		opt(retVal)
	}
	return retVal, nil
}

// Play plays a game until both players pass in a row, MaxMoves is reached, or ctx is done.
// The record of the game so far is returned even when an error occurs.
func (a *Arena) Play(ctx context.Context) (rec Record, err error) {
	if err = a.reset(); err != nil {
		return Record{}, err
	}
	a.logger.Infow("playing", "game", a.conf.Name, "black", a.A.Name(), "white", a.B.Name())

	enc := a.conf.OutputEncoder
	var passCount int
	for passCount < 2 {
		if a.conf.MaxMoves > 0 && len(a.moves) >= a.conf.MaxMoves {
			break
		}
		select {
		case <-ctx.Done():
			return a.record(), ctx.Err()
		default:
		}

		p := a.currentPlayer.Player
		counter := a.counters[p.Index()]
		var movesMade int
		if movesMade, err = counter.Load(); err != nil {
			return a.record(), errors.Wrapf(err, "Unable to load the move count of %v", p)
		}

		d := Decision{
			Depth:  a.conf.SearchConf.Depth,
			Budget: budgetOf(a.clocks[p.Index()], movesMade),
		}
		start := time.Now()
		res, derr := a.currentPlayer.Decide(a.game.Clone(), d)
		elapsed := time.Since(start)
		if derr != nil {
			return a.record(), errors.WithMessagef(derr, "%v failed to decide", a.currentPlayer.Name())
		}
		a.clocks[p.Index()] -= elapsed
		if err = counter.Store(res.MovesMade); err != nil {
			return a.record(), errors.Wrapf(err, "Unable to store the move count of %v", p)
		}

		if res.Move.IsPass() {
			passCount++
		} else {
			passCount = 0
			if err = a.game.Apply(p, res.Move.Coord()); err != nil {
				return a.record(), err
			}
		}
		a.moves = append(a.moves, PlayedMove{Player: p, Move: res.Move, Elapsed: elapsed})
		a.logger.Infow("move",
			"number", len(a.moves),
			"player", symbol(p),
			"move", res.Move.String(),
			"elapsed", elapsed,
			"depth", res.Stats.Depth,
			"left", a.clocks[p.Index()],
		)

		a.switchPlayer()
		if enc != nil {
			if err = enc.Encode(a); err != nil {
				return a.record(), errors.Wrap(err, "Unable to encode move")
			}
		}
	}
	if enc != nil {
		if err = enc.Flush(); err != nil {
			return a.record(), errors.Wrap(err, "Unable to flush output encoder")
		}
	}

	rec = a.record()
	winner := rec.Winner()
	switch winner {
	case game.Player(game.None):
		a.A.Draw++
		a.B.Draw++
	case a.A.Player:
		a.A.Wins++
		a.B.Loss++
	case a.B.Player:
		a.B.Wins++
		a.A.Loss++
	}
	a.logger.Infow("done",
		"winner", symbol(winner),
		"black", rec.Final.Discs(game.BlackP),
		"white", rec.Final.Discs(game.WhiteP),
	)
	return rec, nil
}

func (a *Arena) reset() error {
	a.game = a.start.Clone()
	a.moves = a.moves[:0]
	a.clocks = [2]time.Duration{a.conf.ClockPerPlayer, a.conf.ClockPerPlayer}
	a.currentPlayer = a.A
	for _, c := range a.counters {
		if err := c.Store(0); err != nil {
			return errors.Wrap(err, "Unable to reset move counter")
		}
	}
	return nil
}

func (a *Arena) record() Record {
	moves := make([]PlayedMove, len(a.moves))
	copy(moves, a.moves)
	return Record{
		Name:  a.conf.Name,
		Start: a.start.Clone(),
		Moves: moves,
		Final: a.game.Clone(),
		TimeLeft: map[game.Player]time.Duration{
			game.BlackP: a.clocks[0],
			game.WhiteP: a.clocks[1],
		},
	}
}

// budgetOf clamps a clock that ran out to zero.
func budgetOf(clock time.Duration, movesMade int) minimax.Budget {
	if clock < 0 {
		clock = 0
	}
	return minimax.Budget{Remaining: clock, MovesMade: movesMade}
}

func (a *Arena) switchPlayer() {
	switch a.currentPlayer {
	case a.A:
		a.currentPlayer = a.B
	case a.B:
		a.currentPlayer = a.A
	}
}

func (a *Arena) Name() string      { return a.conf.Name }
func (a *Arena) MoveNumber() int   { return len(a.moves) }
func (a *Arena) State() game.State { return a.game }

func (a *Arena) LastMove() game.PlayerMove {
	if len(a.moves) == 0 {
		return game.PlayerMove{Player: game.Player(game.None), Move: game.Root}
	}
	m := a.moves[len(a.moves)-1]
	return game.PlayerMove{Player: m.Player, Move: m.Move}
}

// TimeLeft returns the clock of p.
func (a *Arena) TimeLeft(p game.Player) time.Duration { return a.clocks[p.Index()] }
