package minimax

import (
	"sort"

	"github.com/gorgonia/reversi/eval"
	"github.com/gorgonia/reversi/game"
)

// byHeuristic is a sortable list of moves. It sorts the list with the best heuristic weight first.
type byHeuristic []game.Coord

func (l byHeuristic) Len() int { return len(l) }
func (l byHeuristic) Less(i, j int) bool {
	return eval.HeuristicWeight(l[i]) > eval.HeuristicWeight(l[j])
}
func (l byHeuristic) Swap(i, j int) { l[i], l[j] = l[j], l[i] }

// orderMoves sorts moves in place by descending heuristic weight. Ties keep their (row, col) order.
func orderMoves(moves []game.Coord) []game.Coord {
	sort.Stable(byHeuristic(moves))
	return moves
}
