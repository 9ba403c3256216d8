package reversi

import (
	"time"

	"github.com/gorgonia/reversi/game"
	"github.com/gorgonia/reversi/minimax"
)

type Config struct {
	Name string
	Mode Mode

	// SearchConf configures both agents. For the fixed depth modes SearchConf.Depth is the cutoff depth.
	SearchConf minimax.Config

	// ClockPerPlayer is the time each player has for the whole game.
	ClockPerPlayer time.Duration

	// MaxMoves stops a game after this many moves (passes included). 0 means no limit.
	MaxMoves int

	// extensions
	OutputEncoder OutputEncoder
}

func DefaultConfig() Config {
	return Config{
		Name:           "Reversi",
		Mode:           Competition,
		SearchConf:     minimax.DefaultConfig(),
		ClockPerPlayer: 200 * time.Second,
	}
}

func (c Config) IsValid() bool {
	return c.Mode.IsValid() && c.SearchConf.IsValid() && c.ClockPerPlayer >= 0 && c.MaxMoves >= 0
}

// OutputEncoder encodes the entire meta state as whatever.
//
// An example OutputEncoder is the GifEncoder. Another example would be a websocket spectator.
type OutputEncoder interface {
	Encode(ms game.MetaState) error
	Flush() error
}

// MoveCounter persists the number of moves a player has made in the current game.
type MoveCounter interface {
	Load() (int, error)
	Store(n int) error
}

// memCounter is a MoveCounter that lives in memory.
type memCounter struct{ n int }

func (c *memCounter) Load() (int, error) { return c.n, nil }
func (c *memCounter) Store(n int) error  { c.n = n; return nil }
