package reversi

import (
	"fmt"
	"io"

	"github.com/gorgonia/reversi/eval"
	"github.com/gorgonia/reversi/game"
	"github.com/gorgonia/reversi/minimax"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Mode is how an agent decides. The values are the task numbers of the input file.
type Mode int

const (
	Greedy      Mode = iota + 1 // one ply, positional weights
	Minimax                     // fixed depth minimax, positional weights, traced
	AlphaBeta                   // fixed depth alpha-beta, positional weights, traced
	Competition                 // time budgeted iterative deepening, composite evaluation, ordered moves
)

func (m Mode) String() string {
	switch m {
	case Greedy:
		return "Greedy"
	case Minimax:
		return "Minimax"
	case AlphaBeta:
		return "AlphaBeta"
	case Competition:
		return "Competition"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

func (m Mode) IsValid() bool { return m >= Greedy && m <= Competition }

// FixedDepth returns true if the mode searches to a given depth rather than within a time budget.
func (m Mode) FixedDepth() bool { return m != Competition }

// Decision is what an agent is asked to decide with.
type Decision struct {
	Depth  int            // cutoff depth of the fixed depth modes. 0 uses the configured depth
	Budget minimax.Budget // time left and moves made so far, used by Competition
}

// Result is a decision.
type Result struct {
	Move  game.Move
	Value float32
	Stats minimax.Stats

	// MovesMade is the move count to persist for the next decision.
	MovesMade int

	Algorithm minimax.Algorithm
	Trace     []minimax.TraceRow
}

// An Agent is a player.
type Agent struct {
	Player   game.Player
	Mode     Mode
	Searcher *minimax.Searcher

	// Statistics
	Wins float32
	Loss float32
	Draw float32

	name   string
	logger *zap.SugaredLogger
}

// NewAgent creates an agent playing p. The mode decides the algorithm, the evaluator and move ordering;
// the rest of conf is used as is.
func NewAgent(name string, mode Mode, conf minimax.Config, p game.Player, logger *zap.SugaredLogger) (*Agent, error) {
	if !mode.IsValid() {
		return nil, errors.Errorf("Invalid mode %v", mode)
	}
	if !game.IsValid(p) {
		return nil, errors.Errorf("Invalid player %v", p)
	}
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}

	evaluate := eval.PositionalFunc
	switch mode {
	case Greedy:
		conf.Algorithm = minimax.Greedy
		conf.Trace = false
	case Minimax:
		conf.Algorithm = minimax.Minimax
		conf.Trace = true
	case AlphaBeta:
		conf.Algorithm = minimax.AlphaBeta
		conf.Trace = true
	case Competition:
		conf.Algorithm = minimax.AlphaBeta
		conf.OrderMoves = true
		conf.Trace = false
		evaluate = eval.Composite
	}
	if !conf.IsValid() {
		return nil, errors.Errorf("Invalid search configuration %+v", conf)
	}
	if name == "" {
		name = fmt.Sprintf("%v", p)
	}
	l := logger.With("agent", name)
	return &Agent{
		Player:   p,
		Mode:     mode,
		Searcher: minimax.New(conf, evaluate, minimax.WithLogger(l)),
		name:     name,
		logger:   l,
	}, nil
}

func (a *Agent) Name() string { return a.name }

// Decide picks a move for the agent's player in s. s is not modified.
//
// A terminal position yields game.Pass.
func (a *Agent) Decide(s game.State, d Decision) (Result, error) {
	var node minimax.Node
	var stats minimax.Stats
	if a.Mode.FixedDepth() {
		node = a.Searcher.SearchDepth(s, a.Player, d.Depth)
		stats = minimax.Stats{Depth: a.Searcher.Cutoff(), Visited: a.Searcher.Visited()}
	} else {
		node, stats = a.Searcher.Deepen(s, a.Player, d.Budget)
	}

	move := node.Move
	if move.IsRoot() {
		move = game.Pass
	}
	if move.IsPlacement() && !s.IsMoveLegal(a.Player, move.Coord()) {
		return Result{}, errors.WithMessage(game.MoveError{Player: a.Player, Move: move}, "Search produced an illegal move")
	}
	if move.IsPass() && len(s.LegalMoves(a.Player)) > 0 {
		return Result{}, errors.Errorf("%v passed with legal moves available", a.Player)
	}

	a.logger.Debugw("decided",
		"mode", a.Mode.String(),
		"move", move.String(),
		"value", node.Value,
		"depth", stats.Depth,
		"visited", stats.Visited,
	)
	return Result{
		Move:      move,
		Value:     node.Value,
		Stats:     stats,
		MovesMade: d.Budget.MovesMade + 1,
		Algorithm: a.Searcher.Algorithm,
		Trace:     a.Searcher.Trace(),
	}, nil
}

func (a *Agent) resetStats() {
	a.Wins = 0
	a.Loss = 0
	a.Draw = 0
}

// WriteTrace writes the trace of the decision as CSV. Greedy decisions write nothing.
func (r Result) WriteTrace(w io.Writer) error { return minimax.WriteTrace(w, r.Algorithm, r.Trace) }
