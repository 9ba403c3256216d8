package eval

import "github.com/gorgonia/reversi/game"

// PositionalWeights is the square value table of the fixed depth tasks.
var PositionalWeights = [game.Size][game.Size]float32{
	{99, -8, 8, 6, 6, 8, -8, 99},
	{-8, -24, -4, -3, -3, -4, -24, -8},
	{8, -4, 7, 4, 4, 7, -4, 8},
	{6, -3, 4, 0, 0, 4, -3, 6},
	{6, -3, 4, 0, 0, 4, -3, 6},
	{8, -4, 7, 4, 4, 7, -4, 8},
	{-8, -24, -4, -3, -3, -4, -24, -8},
	{99, -8, 8, 6, 6, 8, -8, 99},
}

// HeuristicWeights scores the square a move was played on. It is used by the composite evaluator and for move ordering.
var HeuristicWeights = [game.Size][game.Size]float32{
	{80, -26, 24, -1, -5, 28, -18, 76},
	{-23, -39, -18, -9, -6, -8, -39, -1},
	{46, -16, 4, 1, -3, 6, -20, 52},
	{-13, -5, 2, -1, 4, 3, -12, -2},
	{-5, -6, 1, -2, -3, 0, -9, -5},
	{48, -13, 12, 5, 0, 5, -24, 41},
	{-27, -53, -11, -1, -11, -16, -58, -15},
	{87, -25, 27, -1, 5, 36, -3, 100},
}

// positional is PositionalWeights laid out row major.
var positional = flatten(&PositionalWeights)

func flatten(w *[game.Size][game.Size]float32) []float32 {
	retVal := make([]float32, 0, game.Squares)
	for _, row := range w {
		retVal = append(retVal, row[:]...)
	}
	return retVal
}

// HeuristicWeight returns the heuristic value of a square. Off board coordinates are worth 0.
func HeuristicWeight(c game.Coord) float32 {
	if !c.Valid() {
		return 0
	}
	return HeuristicWeights[c.Row][c.Col]
}
