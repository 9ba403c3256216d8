package agentio

import (
	"bufio"
	"io"

	"github.com/gorgonia/reversi/game"
	"github.com/pkg/errors"
)

// TraceWriter is anything that can write a search trace.
type TraceWriter interface {
	WriteTrace(w io.Writer) error
}

// WriteDecision writes the move in its notation, and nothing else.
func WriteDecision(w io.Writer, m game.Move) error {
	_, err := io.WriteString(w, m.String())
	return errors.Wrap(err, "Unable to write decision")
}

// WriteBoardAndTrace writes the board as rows of '*', 'X' and 'O', followed by the trace, and a blank line.
func WriteBoardAndTrace(w io.Writer, s game.State, trace TraceWriter) error {
	bw := bufio.NewWriter(w)
	board := s.Board()
	row := make([]byte, 0, game.Size+1)
	for i := 0; i < game.Size; i++ {
		row = row[:0]
		for _, c := range board[i*game.Size : (i+1)*game.Size] {
			row = append(row, c.Symbol())
		}
		row = append(row, '\n')
		if _, err := bw.Write(row); err != nil {
			return errors.Wrap(err, "Unable to write board")
		}
	}
	if trace != nil {
		if err := trace.WriteTrace(bw); err != nil {
			return err
		}
	}
	if err := bw.WriteByte('\n'); err != nil {
		return errors.Wrap(err, "Unable to write output")
	}
	return errors.Wrap(bw.Flush(), "Unable to write output")
}
