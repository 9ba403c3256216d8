package main

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/gorgonia/reversi"
	"github.com/gorgonia/reversi/game"
	"github.com/gorilla/websocket"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

var _ reversi.OutputEncoder = &Spectator{}

// moveMsg is sent to spectators after every move.
type moveMsg struct {
	Game   string `json:"game"`
	Number int    `json:"number"`
	Player string `json:"player"`
	Move   string `json:"move"`
	Board  string `json:"board"` // 64 symbols, row major
	Ended  bool   `json:"ended,omitempty"`
	Winner string `json:"winner,omitempty"`
}

var upgrader = websocket.Upgrader{} // use default options

// Spectator streams the moves of the games played in an arena to websocket clients.
// Slow clients miss moves rather than hold up the arena.
type Spectator struct {
	mu      sync.Mutex
	clients map[chan []byte]struct{}
	logger  *zap.SugaredLogger
}

func NewSpectator(logger *zap.SugaredLogger) *Spectator {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &Spectator{
		clients: make(map[chan []byte]struct{}),
		logger:  logger,
	}
}

func (s *Spectator) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	c, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warnw("upgrade", "err", err)
		return
	}
	defer c.Close()

	ch := make(chan []byte, 64)
	s.mu.Lock()
	s.clients[ch] = struct{}{}
	s.mu.Unlock()
	defer func() {
		s.mu.Lock()
		delete(s.clients, ch)
		s.mu.Unlock()
	}()

	// spectators only listen. Reading handles control frames and notices when the client goes away.
	gone := make(chan struct{})
	go func() {
		defer close(gone)
		for {
			if _, _, err := c.NextReader(); err != nil {
				return
			}
		}
	}()

	for {
		select {
		case b := <-ch:
			if err = c.WriteMessage(websocket.TextMessage, b); err != nil {
				s.logger.Infow("write", "err", err)
				return
			}
		case <-gone:
			return
		case <-r.Context().Done():
			return
		}
	}
}

// Clients returns the number of connected spectators.
func (s *Spectator) Clients() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.clients)
}

func (s *Spectator) Encode(ms game.MetaState) error {
	st := ms.State()
	board := st.Board()
	sym := make([]byte, len(board))
	for i, c := range board {
		sym[i] = c.Symbol()
	}
	last := ms.LastMove()
	msg := moveMsg{
		Game:   ms.Name(),
		Number: ms.MoveNumber(),
		Move:   last.Move.String(),
		Board:  string(sym),
	}
	if game.IsValid(last.Player) {
		msg.Player = string(game.Colour(last.Player).Symbol())
	}
	if ended, winner := game.Ended(st); ended {
		msg.Ended = true
		msg.Winner = string(game.Colour(winner).Symbol())
	}
	b, err := json.Marshal(msg)
	if err != nil {
		return errors.Wrap(err, "Unable to marshal move")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for ch := range s.clients {
		select {
		case ch <- b:
		default:
		}
	}
	return nil
}

// Flush ...
func (s *Spectator) Flush() error { return nil }

// encoders fans every call out to each encoder in turn.
type encoders []reversi.OutputEncoder

func (es encoders) Encode(ms game.MetaState) error {
	for _, e := range es {
		if err := e.Encode(ms); err != nil {
			return err
		}
	}
	return nil
}

func (es encoders) Flush() error {
	for _, e := range es {
		if err := e.Flush(); err != nil {
			return err
		}
	}
	return nil
}
