package game

import (
	"fmt"

	"github.com/pkg/errors"
)

// MoveError is returned when a move cannot be applied to a board.
type MoveError PlayerMove

func (err MoveError) Error() string {
	return fmt.Sprintf("Unable to make %v", PlayerMove(err))
}

// IsMoveError returns true if the cause of err is a MoveError.
func IsMoveError(err error) bool {
	_, ok := errors.Cause(err).(MoveError)
	return ok
}
