// Package minimax implements depth limited adversarial search for Reversi:
// plain minimax, alpha-beta pruning, and time budgeted iterative deepening.
package minimax

import (
	"github.com/chewxy/math32"
	"github.com/gorgonia/reversi/eval"
	"github.com/gorgonia/reversi/game"
	"go.uber.org/zap"
)

// Node is the result of exploring a position: the value of the best line and the move that starts it.
// Values are always from the point of view of the player the search maximizes for.
type Node struct {
	Value float32
	Move  game.Move
}

// Searcher searches game trees. A Searcher is not safe for concurrent use.
type Searcher struct {
	Config
	evaluate eval.Func
	logger   *zap.SugaredLogger

	// per search state
	cutoff  int
	max     game.Player
	visited int
	trace   []TraceRow
	tree    *recorder
}

// Option configures a Searcher.
type Option func(*Searcher)

// WithLogger sets the logger of the searcher.
func WithLogger(l *zap.SugaredLogger) Option {
	return func(s *Searcher) {
		if l != nil {
			s.logger = l
		}
	}
}

// New creates a Searcher that scores leaves with evaluate.
func New(conf Config, evaluate eval.Func, opts ...Option) *Searcher {
	retVal := &Searcher{
		Config:   conf,
		evaluate: evaluate,
		logger:   zap.NewNop().Sugar(),
	}
	for _, opt := range opts {
		opt(retVal)
	}
	return retVal
}

// Search explores s for p up to the configured depth.
//
// The returned Node holds the best move for p, or game.Pass if p cannot move.
// When the position is terminal the move is game.Root.
func (s *Searcher) Search(st game.State, p game.Player) Node {
	return s.search(st, p, s.Config.cutoff())
}

// SearchDepth is Search with the cutoff depth given per call. A depth below 1 uses the configured depth.
// Greedy searches always stop after one ply.
func (s *Searcher) SearchDepth(st game.State, p game.Player, depth int) Node {
	cutoff := s.Config.cutoff()
	if depth > 0 && s.Algorithm != Greedy {
		cutoff = depth
	}
	return s.search(st, p, cutoff)
}

// Cutoff returns the cutoff depth of the last search.
func (s *Searcher) Cutoff() int { return s.cutoff }

func (s *Searcher) search(st game.State, p game.Player, cutoff int) Node {
	s.reset(p, cutoff)
	return s.explore(st, 0, math32.Inf(-1), math32.Inf(1), game.Root, p, 0)
}

func (s *Searcher) reset(p game.Player, cutoff int) {
	s.cutoff = cutoff
	s.max = p
	s.visited = 0
	s.trace = s.trace[:0]
	s.tree = nil
	if s.RecordTree {
		s.tree = newRecorder()
	}
}

// Visited returns the number of positions visited by the last search.
func (s *Searcher) Visited() int { return s.visited }

func (s *Searcher) terminal(st game.State, depth, moves, passes int) bool {
	return depth >= s.cutoff ||
		(moves == 0 && passes >= 1) ||
		st.Discs(game.BlackP) == 0 ||
		st.Discs(game.WhiteP) == 0
}

// cut reports whether the siblings of a node with the given value can be skipped.
func (s *Searcher) cut(maximizing bool, value, alpha, beta float32) bool {
	if s.Algorithm != AlphaBeta {
		return false
	}
	if maximizing {
		return value >= beta
	}
	return value <= alpha
}

func (s *Searcher) explore(st game.State, depth int, alpha, beta float32, last game.Move, toMove game.Player, passes int) (retVal Node) {
	s.visited++
	id := s.tree.enter(last, toMove, depth)
	defer func() { s.tree.leave(id, retVal.Value, alpha, beta) }()

	moves := st.LegalMoves(toMove)
	if s.terminal(st, depth, len(moves), passes) {
		value := s.evaluate(st, last, s.max)
		s.record(last, depth, value, alpha, beta)
		return Node{value, last}
	}

	maximizing := toMove == s.max
	value := math32.Inf(1)
	if maximizing {
		value = math32.Inf(-1)
	}
	s.record(last, depth, value, alpha, beta)
	opp := game.Opponent(toMove)

	if len(moves) == 0 {
		child := s.explore(st, depth+1, alpha, beta, game.Pass, opp, passes+1)
		if (maximizing && child.Value > value) || (!maximizing && child.Value < value) {
			value = child.Value
		}
		if s.cut(maximizing, value, alpha, beta) {
			s.record(last, depth, value, alpha, beta)
			return Node{value, game.Pass}
		}
		alpha, beta = s.tighten(maximizing, value, alpha, beta)
		s.record(last, depth, value, alpha, beta)
		return Node{value, game.Pass}
	}

	if s.OrderMoves {
		moves = orderMoves(moves)
	}
	best := game.Pass
	for _, c := range moves {
		next := st.Clone()
		if err := next.Apply(toMove, c); err != nil {
			panic(err) // LegalMoves and Apply disagree
		}
		m := game.MoveAt(c)
		child := s.explore(next, depth+1, alpha, beta, m, opp, 0)
		if (maximizing && child.Value > value) || (!maximizing && child.Value < value) {
			value = child.Value
			best = m
		}
		if s.cut(maximizing, value, alpha, beta) {
			s.record(last, depth, value, alpha, beta)
			return Node{value, best}
		}
		alpha, beta = s.tighten(maximizing, value, alpha, beta)
		s.record(last, depth, value, alpha, beta)
	}
	return Node{value, best}
}

func (s *Searcher) tighten(maximizing bool, value, alpha, beta float32) (float32, float32) {
	if s.Algorithm != AlphaBeta {
		return alpha, beta
	}
	if maximizing {
		return math32.Max(alpha, value), beta
	}
	return alpha, math32.Min(beta, value)
}
