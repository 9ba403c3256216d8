package minimax

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/chewxy/math32"
	"github.com/gorgonia/reversi/game"
	"github.com/pkg/errors"
)

// TraceHeader is the header row of a written trace.
var TraceHeader = []string{"Node", "Depth", "Value", "Alpha", "Beta"}

// TraceRow is a snapshot of a decision point.
type TraceRow struct {
	Move  game.Move
	Depth int
	Value float32
	Alpha float32
	Beta  float32
}

// Fields formats the row. The node at depth 0 is always called "root".
func (r TraceRow) Fields() []string {
	node := r.Move.String()
	if r.Depth == 0 {
		node = game.Root.String()
	}
	return []string{
		node,
		strconv.Itoa(r.Depth),
		formatValue(r.Value),
		formatValue(r.Alpha),
		formatValue(r.Beta),
	}
}

// formatValue writes infinities as "Infinity" and "-Infinity". Other values are truncated towards zero.
func formatValue(v float32) string {
	switch {
	case math32.IsInf(v, 1):
		return "Infinity"
	case math32.IsInf(v, -1):
		return "-Infinity"
	}
	return strconv.Itoa(int(v))
}

func (s *Searcher) record(m game.Move, depth int, value, alpha, beta float32) {
	if !s.Config.Trace {
		return
	}
	s.trace = append(s.trace, TraceRow{Move: m, Depth: depth, Value: value, Alpha: alpha, Beta: beta})
}

// Trace returns the rows recorded by the last search.
func (s *Searcher) Trace() []TraceRow {
	retVal := make([]TraceRow, len(s.trace))
	copy(retVal, s.trace)
	return retVal
}

// WriteTrace writes the trace of the last search as CSV.
// Minimax traces have three columns (node, depth, value), alpha-beta traces have five. Greedy searches write nothing.
func (s *Searcher) WriteTrace(w io.Writer) error {
	return WriteTrace(w, s.Algorithm, s.trace)
}

// WriteTrace writes rows as CSV, with the columns the algorithm reports.
func WriteTrace(w io.Writer, a Algorithm, rows []TraceRow) error {
	cols := a.traceColumns()
	if cols == 0 {
		return nil
	}
	cw := csv.NewWriter(w)
	if err := cw.Write(TraceHeader[:cols]); err != nil {
		return errors.Wrap(err, "Unable to write trace header")
	}
	for _, r := range rows {
		if err := cw.Write(r.Fields()[:cols]); err != nil {
			return errors.Wrapf(err, "Unable to write trace row %v", r.Move)
		}
	}
	cw.Flush()
	return errors.Wrap(cw.Error(), "Unable to flush trace")
}
