package holdem

import (
	"errors"
	"fmt"
)

var (
	ErrDeckExhausted     = errors.New("deck exhausted")
	ErrDuplicatePlayerID = errors.New("duplicate player id")
	ErrNotEnoughPlayers  = errors.New("not enough players")
	ErrTooManyPlayers    = errors.New("too many players")
	ErrGameOver          = errors.New("game over")
)

// InvalidStateError 状态机走到了不该到的地方
type InvalidStateError struct {
	Op     string
	Detail string
}

func (e *InvalidStateError) Error() string {
	return fmt.Sprintf("invalid state in %s: %s", e.Op, e.Detail)
}
