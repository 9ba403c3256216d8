package reversi

import (
	"context"
	"encoding/csv"
	"io"
	"strconv"

	"github.com/pkg/errors"
)

// Statistics tracks the win rates of agents over a series of games.
type Statistics struct {
	Creation []string
	Wins     map[string][]float32
	Losses   map[string][]float32
	Draws    map[string][]float32
}

func makeStatistics() Statistics {
	return Statistics{
		Creation: make([]string, 0, 2),
		Wins:     make(map[string][]float32),
		Losses:   make(map[string][]float32),
		Draws:    make(map[string][]float32),
	}
}

func (s *Statistics) update(A *Agent) {
	aname := A.Name()

	if _, ok := s.Wins[aname]; !ok {
		s.Creation = append(s.Creation, aname)
	}

	s.Wins[aname] = append(s.Wins[aname], A.Wins)
	s.Losses[aname] = append(s.Losses[aname], A.Loss)
	s.Draws[aname] = append(s.Draws[aname], A.Draw)
}

// Series plays n games and records the running totals of both agents after each game.
func (a *Arena) Series(ctx context.Context, n int) (Statistics, []Record, error) {
	stats := makeStatistics()
	a.A.resetStats()
	a.B.resetStats()
	records := make([]Record, 0, n)
	for i := 0; i < n; i++ {
		rec, err := a.Play(ctx)
		if err != nil {
			return stats, records, errors.WithMessagef(err, "game %d", i+1)
		}
		records = append(records, rec)
		stats.update(a.A)
		stats.update(a.B)
	}
	return stats, records, nil
}

// Dump writes the win rate of every agent after every game as CSV, one column per agent.
func (s *Statistics) Dump(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(s.Creation); err != nil {
		return err
	}
	var records [][]string
	for i, agent := range s.Creation {
		for j, win := range s.Wins[agent] {
			record := make([]string, len(s.Creation))
			winRate := win / (win + s.Losses[agent][j] + s.Draws[agent][j])

			record[i] = strconv.FormatFloat(float64(winRate), 'f', 3, 32)
			records = append(records, record)
		}
	}
	if err := cw.WriteAll(records); err != nil {
		return err
	}
	cw.Flush()
	return cw.Error()
}
