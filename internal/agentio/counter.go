package agentio

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gorgonia/reversi"
	"github.com/gorgonia/reversi/game"
	"github.com/pkg/errors"
)

var _ reversi.MoveCounter = &FileCounter{}

// FileCounter keeps a player's move count in numberofmoves<i>.txt, where i is 0 for Black and 1 for White.
type FileCounter struct {
	Path string
}

// NewFileCounter creates the counter of p in dir.
func NewFileCounter(dir string, p game.Player) *FileCounter {
	return &FileCounter{Path: filepath.Join(dir, fmt.Sprintf("numberofmoves%d.txt", p.Index()))}
}

// Load reads the count. A missing file is a count of 0.
func (c *FileCounter) Load() (int, error) {
	bs, err := os.ReadFile(c.Path)
	if os.IsNotExist(err) {
		return 0, nil
	}
	if err != nil {
		return 0, errors.Wrapf(err, "Unable to read %v", c.Path)
	}
	s := strings.TrimSpace(string(bs))
	if s == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, errors.Wrapf(err, "Malformed move count in %v", c.Path)
	}
	return n, nil
}

func (c *FileCounter) Store(n int) error {
	err := os.WriteFile(c.Path, []byte(strconv.Itoa(n)), 0644)
	return errors.Wrapf(err, "Unable to write %v", c.Path)
}
