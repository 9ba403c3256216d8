// Package gtp implements a line oriented text protocol engine, in the style of the Go Text Protocol, for playing Reversi.
package gtp

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gorgonia/reversi/game"
	"github.com/gorgonia/reversi/game/grid"
	"github.com/pkg/errors"
)

// Generator picks a move for p in s, searching to the given depth.
type Generator func(s game.State, p game.Player, depth int) (game.Move, error)

type played struct {
	game.PlayerMove
	flips grid.Flips
}

type Engine struct {
	g       *grid.Board
	history []played

	known map[string]Command

	ch   chan string
	ret  chan string
	done chan struct{}

	Generate      Generator
	depth         int
	name, version string
}

func New(gen Generator, name, version string, known map[string]Command) *Engine {
	if known == nil {
		known = StandardLib()
	}
	return &Engine{
		g:        grid.Initial(),
		known:    known,
		Generate: gen,
		depth:    4,
		name:     name,
		version:  version,
	}
}

// Start starts the engine. Commands are sent on input, and every command gets exactly one response on output.
// After "quit" is answered, output is closed.
func (e *Engine) Start() (input chan<- string, output <-chan string) {
	e.ch = make(chan string)
	e.ret = make(chan string)
	e.done = make(chan struct{})
	go e.start()
	return e.ch, e.ret
}

// Done is closed once the engine has stopped reading commands.
func (e *Engine) Done() <-chan struct{} { return e.done }

func (e *Engine) State() game.State { return e.g }

func (e *Engine) start() {
	defer close(e.done)
	defer close(e.ret)
	for cmd := range e.ch {
		id, x, args, err := e.parse(cmd)
		if x == nil && err == nil {
			e.ret <- handleResult(id, "", nil)
			continue
		}
		if err != nil {
			e.ret <- handleErr(id, err)
			continue
		}
		id, result, err := x.Do(id, args, e)
		e.ret <- handleResult(id, result, err)
		if _, ok := x.(quitter); ok {
			return
		}
	}
}

// refer to this
// https://www.lysator.liu.se/%7Egunnar/gtp/gtp2-spec-draft2/gtp2-spec.html#SECTION00030000000000000000
func (e *Engine) parse(cmd string) (id int, x Command, args []string, err error) {
	cmd = preprocess(cmd)
	tokens := strings.Fields(cmd)
	id = -1
	if len(tokens) == 0 {
		return id, nil, nil, nil
	}
	if id, err = strconv.Atoi(tokens[0]); err == nil {
		// we've consumed ID
		tokens = tokens[1:]
	} else {
		// set err to nil because ID is optional
		err = nil
		id = -1
	}

	if len(tokens) == 0 {
		return id, nil, nil, nil
	}

	var ok bool
	if x, ok = e.known[tokens[0]]; !ok {
		return id, nil, nil, errors.Errorf("Unknown command %q", tokens[0])
	}
	if len(tokens) > 1 {
		args = tokens[1:]
	}
	return
}

func (e *Engine) apply(p game.Player, m game.Move) error {
	f := grid.Flips{}
	if m.IsPlacement() {
		var err error
		if f, err = e.g.ApplyFlips(p, m.Coord()); err != nil {
			return err
		}
	} else if len(e.g.LegalMoves(p)) > 0 {
		return errors.Errorf("%v cannot pass with legal moves available", p)
	}
	e.history = append(e.history, played{game.PlayerMove{Player: p, Move: m}, f})
	return nil
}

func (e *Engine) undo() error {
	if len(e.history) == 0 {
		return errors.New("Cannot undo")
	}
	last := e.history[len(e.history)-1]
	e.history = e.history[:len(e.history)-1]
	if last.Move.IsPlacement() {
		e.g.Undo(last.Player, last.Move.Coord(), last.flips)
	}
	return nil
}

func preprocess(a string) string {
	if i := strings.IndexByte(a, '#'); i >= 0 {
		a = a[:i]
	}
	return strings.ToLower(strings.TrimSpace(a))
}

func handleErr(id int, err error) string {
	if id != -1 {
		return fmt.Sprintf("? %d %v\n\n", id, err)
	}
	return fmt.Sprintf("? %v\n\n", err)
}

func handleResult(id int, result string, err error) string {
	if err != nil {
		return handleErr(id, err)
	}

	if id != -1 {
		return fmt.Sprintf("= %d %v\n\n", id, result)
	}
	return fmt.Sprintf("= %v\n\n", result)
}
