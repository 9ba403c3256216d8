package main

import (
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/gorgonia/reversi"
	"github.com/gorgonia/reversi/game"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var replayCmd = &cobra.Command{
	Use:   "replay [gamelog]",
	Short: "Step through a game log in the terminal",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := cfg.GameLog
		if len(args) > 0 {
			path = args[0]
		}
		f, err := os.Open(path)
		if err != nil {
			return errors.Wrap(err, "Unable to open game log")
		}
		rec, err := reversi.ReadLog(f)
		f.Close()
		if err != nil {
			return err
		}
		m, err := newReplayModel(rec)
		if err != nil {
			return err
		}
		_, err = tea.NewProgram(m).Run()
		return err
	},
}

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39"))
	legalStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42"))
	lastStyle = lipgloss.NewStyle().
			Underline(true).
			Bold(true)
	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

type replayModel struct {
	rec    reversi.Record
	states []game.State // states[i+1] is the position after move i
	i      int          // index of the last move shown, -1 for the start
}

func newReplayModel(rec reversi.Record) (replayModel, error) {
	states := make([]game.State, 0, len(rec.Moves)+1)
	for i := -1; i < len(rec.Moves); i++ {
		s, err := rec.Replay(i)
		if err != nil {
			return replayModel{}, err
		}
		states = append(states, s)
	}
	return replayModel{rec: rec, states: states, i: -1}, nil
}

func (m replayModel) Init() tea.Cmd { return nil }

func (m replayModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "f", "right", "l":
			if m.i < len(m.rec.Moves)-1 {
				m.i++
			}
		case "b", "left", "h":
			if m.i >= 0 {
				m.i--
			}
		case "home", "g":
			m.i = -1
		case "end", "G":
			m.i = len(m.rec.Moves) - 1
		}
	}
	return m, nil
}

// toMove is the player whose replies are highlighted.
func (m replayModel) toMove() game.Player {
	if m.i < 0 {
		return game.BlackP
	}
	return game.Opponent(m.rec.Moves[m.i].Player)
}

func (m replayModel) View() string {
	s := m.states[m.i+1]
	p := m.toMove()
	last := game.EmptyCoord
	if m.i >= 0 && m.rec.Moves[m.i].Move.IsPlacement() {
		last = m.rec.Moves[m.i].Move.Coord()
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("Move %d/%d", m.i+1, len(m.rec.Moves))))
	if m.i >= 0 {
		pm := m.rec.Moves[m.i]
		fmt.Fprintf(&b, "  %v plays %v (%.3fs)", pm.Player, pm.Move, pm.Elapsed.Seconds())
	}
	b.WriteString("\n\n   a b c d e f g h\n")
	for r := int8(0); r < game.Size; r++ {
		fmt.Fprintf(&b, "%d  ", r+1)
		for c := int8(0); c < game.Size; c++ {
			at := game.Coord{Row: r, Col: c}
			cell := fmt.Sprintf("%s", s.At(at))
			switch {
			case at == last:
				cell = lastStyle.Render(cell)
			case s.IsMoveLegal(p, at):
				cell = legalStyle.Render("+")
			}
			b.WriteString(cell)
			b.WriteByte(' ')
		}
		b.WriteByte('\n')
	}
	fmt.Fprintf(&b, "\nX %d  O %d  %v to move\n", s.Discs(game.BlackP), s.Discs(game.WhiteP), p)
	b.WriteString(helpStyle.Render("f/→ forward • b/← back • q quit"))
	b.WriteByte('\n')
	return b.String()
}
