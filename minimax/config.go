package minimax

import "fmt"

// Algorithm selects how the game tree is explored.
type Algorithm byte

const (
	Minimax   Algorithm = iota // full tree, no pruning
	AlphaBeta                  // minimax with alpha-beta pruning
	Greedy                     // one ply
)

func (a Algorithm) String() string {
	switch a {
	case Minimax:
		return "Minimax"
	case AlphaBeta:
		return "AlphaBeta"
	case Greedy:
		return "Greedy"
	}
	return fmt.Sprintf("Algorithm(%d)", byte(a))
}

// traceColumns is the number of trace columns written for the algorithm.
func (a Algorithm) traceColumns() int {
	switch a {
	case Minimax:
		return 3
	case AlphaBeta:
		return 5
	}
	return 0
}

// Config configures a Searcher.
type Config struct {
	Algorithm Algorithm

	// Depth is the cutoff depth of Search. Greedy always uses 1.
	Depth int

	// MinDepth and MaxDepth bound iterative deepening. MaxDepth is exclusive.
	MinDepth, MaxDepth int

	// Epsilon is the safety margin used to decide if another iteration is affordable.
	Epsilon float32

	OrderMoves bool // explore moves with the best heuristic weight first
	Trace      bool // record a trace row for every decision point
	RecordTree bool // record the explored tree for ToDot

	// GameLength is the estimated number of moves a player makes in a game.
	GameLength int
}

func DefaultConfig() Config {
	return Config{
		Algorithm:  AlphaBeta,
		Depth:      4,
		MinDepth:   2,
		MaxDepth:   8,
		Epsilon:    0.5,
		GameLength: 32,
	}
}

func (c Config) IsValid() bool {
	return c.Depth > 0 &&
		c.MinDepth > 0 &&
		c.MaxDepth > c.MinDepth &&
		c.Epsilon >= 0 &&
		c.GameLength > 0 &&
		c.Algorithm <= Greedy
}

func (c Config) cutoff() int {
	if c.Algorithm == Greedy {
		return 1
	}
	return c.Depth
}
