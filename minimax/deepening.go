package minimax

import (
	"time"

	"github.com/chewxy/math32"
	"github.com/gorgonia/reversi/game"
)

// Budget is the time a player has left, and how many moves the player has made so far.
type Budget struct {
	Remaining time.Duration
	MovesMade int
}

// PerMove spreads the remaining time over the moves expected to be left in a game of gameLength moves.
func (b Budget) PerMove(gameLength int) time.Duration {
	left := gameLength - b.MovesMade
	if left < 1 {
		left = 1
	}
	return b.Remaining / time.Duration(left)
}

// Stats describes an iterative deepening run.
type Stats struct {
	Depth   int             // deepest completed depth
	Elapsed []time.Duration // time taken by each iteration
	Visited int             // positions visited over all iterations
}

// Total is the time taken by all iterations.
func (st Stats) Total() time.Duration {
	var retVal time.Duration
	for _, e := range st.Elapsed {
		retVal += e
	}
	return retVal
}

// Deepen searches at increasing depths from MinDepth up to (excluding) MaxDepth.
// After every iteration the time it took is compared against the per move budget, and deepening stops
// unless the budget is definitely greater than that. The result of the deepest completed iteration is returned.
// The MinDepth iteration always runs, even when MaxDepth does not exceed it, so a move (or pass) is always produced.
func (s *Searcher) Deepen(st game.State, p game.Player, b Budget) (Node, Stats) {
	perMove := b.PerMove(s.GameLength)
	first, last := s.MinDepth, s.MaxDepth
	if first < 1 {
		first = 1
	}
	if last <= first {
		last = first + 1
	}
	retVal := Node{Move: game.Pass}
	var stats Stats
	for d := first; d < last; d++ {
		start := time.Now()
		retVal = s.search(st, p, d)
		elapsed := time.Since(start)

		stats.Depth = d
		stats.Elapsed = append(stats.Elapsed, elapsed)
		stats.Visited += s.visited
		s.logger.Debugw("deepening",
			"depth", d,
			"move", retVal.Move.String(),
			"value", retVal.Value,
			"visited", s.visited,
			"elapsed", elapsed,
			"perMove", perMove,
		)
		if !definitelyGreaterThan(float32(perMove.Seconds()), float32(elapsed.Seconds()), s.Epsilon) {
			break
		}
	}
	return retVal, stats
}

// definitelyGreaterThan returns true if a exceeds b by more than epsilon times the larger magnitude of the two.
func definitelyGreaterThan(a, b, epsilon float32) bool {
	larger := math32.Abs(a)
	if bb := math32.Abs(b); bb > larger {
		larger = bb
	}
	return a-b > larger*epsilon
}
