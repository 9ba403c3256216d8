package gtp

import (
	"bytes"
	"fmt"
	"sort"
	"strconv"

	"github.com/gorgonia/reversi/game"
	"github.com/gorgonia/reversi/game/grid"
	"github.com/pkg/errors"
)

type Command interface {
	Do(id int, args []string, e *Engine) (int, string, error)
}

type stdlib func(e *Engine) string

type stdlib2 func(e *Engine, args []string) (string, error)

// quitter ends the session once answered.
type quitter func(e *Engine) string

func (f stdlib) Do(id int, args []string, e *Engine) (int, string, error) {
	str := f(e)
	return id, str, nil
}

func (f stdlib2) Do(id int, args []string, e *Engine) (int, string, error) {
	str, err := f(e, args)
	return id, str, err
}

func (f quitter) Do(id int, args []string, e *Engine) (int, string, error) { return id, f(e), nil }

func protocolVersion(e *Engine) string { return "2" }
func name(e *Engine) string            { return e.name }
func version(e *Engine) string         { return e.version }

func listCommands(e *Engine) string {
	cmds := make([]string, 0, len(e.known))
	for c := range e.known {
		cmds = append(cmds, c)
	}
	sort.Strings(cmds)
	var buf bytes.Buffer
	for i, c := range cmds {
		if i > 0 {
			buf.WriteByte('\n')
		}
		buf.WriteString(c)
	}
	return buf.String()
}

func quit(e *Engine) string { return "" }

func clearBoard(e *Engine) string {
	e.g = grid.Initial()
	e.history = e.history[:0]
	return ""
}

func showboard(e *Engine) string { return fmt.Sprintf("\n%v", e.g) }

func undo(e *Engine, args []string) (string, error) { return "", e.undo() }

func knownCommand(e *Engine, args []string) (string, error) {
	if len(args) == 0 {
		return "", errors.New("Not enough arguments for \"known_command\"")
	}
	if _, ok := e.known[args[0]]; ok {
		return "true", nil
	}
	return "false", nil
}

func play(e *Engine, args []string) (string, error) {
	if len(args) < 2 {
		return "", errors.New("Not enough arguments for \"play\"")
	}
	p, err := game.PlayerOf(args[0])
	if err != nil {
		return "", err
	}
	m, err := game.ParseMove(args[1])
	if err != nil {
		return "", err
	}
	if m.IsRoot() {
		return "", errors.Errorf("Illegal move %q", args[1])
	}
	return "", e.apply(p, m)
}

func genmove(e *Engine, args []string) (string, error) {
	if len(args) < 1 {
		return "", errors.New("Not enough arguments for \"genmove\"")
	}
	if e.Generate == nil {
		return "", errors.New("No move generator")
	}
	p, err := game.PlayerOf(args[0])
	if err != nil {
		return "", err
	}
	m, err := e.Generate(e.g.Clone(), p, e.depth)
	if err != nil {
		return "", err
	}
	if err = e.apply(p, m); err != nil {
		return "", errors.WithMessagef(err, "Generated move %v", m)
	}
	return m.String(), nil
}

func setDepth(e *Engine, args []string) (string, error) {
	if len(args) < 1 {
		return "", errors.New("Not enough arguments for \"set_depth\"")
	}
	d, err := strconv.Atoi(args[0])
	if err != nil {
		return "", errors.WithMessage(err, "Unable to parse depth")
	}
	if d < 1 {
		return "", errors.Errorf("Depth must be positive. Got %d", d)
	}
	e.depth = d
	return "", nil
}

func finalScore(e *Engine) string {
	b, w := e.g.Discs(game.BlackP), e.g.Discs(game.WhiteP)
	switch {
	case b > w:
		return fmt.Sprintf("B+%d", b-w)
	case w > b:
		return fmt.Sprintf("W+%d", w-b)
	}
	return "0"
}

func StandardLib() map[string]Command {
	return map[string]Command{
		"protocol_version": stdlib(protocolVersion),
		"name":             stdlib(name),
		"version":          stdlib(version),
		"known_command":    stdlib2(knownCommand),
		"list_commands":    stdlib(listCommands),
		"quit":             quitter(quit),
		"clear_board":      stdlib(clearBoard),
		"showboard":        stdlib(showboard),
		"undo":             stdlib2(undo),
		"play":             stdlib2(play),
		"genmove":          stdlib2(genmove),
		"set_depth":        stdlib2(setDepth),
		"final_score":      stdlib(finalScore),
	}
}
