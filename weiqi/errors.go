package weiqi

import (
	"errors"
	"fmt"
)

// ErrOutsideBoard means that the point exceeds the size of the board
var ErrOutsideBoard = errors.New("outside board")

// ErrVertexNotEmpty means that there is already a stone at the point
var ErrVertexNotEmpty = errors.New("vertex not empty")

// ErrSuicide means that the move would leave its own chain without liberties
var ErrSuicide = errors.New("suicide")

// ErrKo means that the move immediately retakes a ko
var ErrKo = errors.New("retakes ko")

// ErrPositionalSuperko means that the same position has been created before
var ErrPositionalSuperko = errors.New("violates positional superko")

// ErrGameOver means that no more moves are accepted
var ErrGameOver = errors.New("game is over")

// ErrNothingToUndo is returned by Pop on a game without moves
var ErrNothingToUndo = errors.New("nothing to undo")

// ErrSetupAfterMoves means that setup stones were added once play had started
var ErrSetupAfterMoves = errors.New("setup after moves were played")

// IllegalMoveError wraps a rule violation with the attempted move
type IllegalMoveError struct {
	Move  int
	Color Color
	Err   error
}

func (e *IllegalMoveError) Error() string {
	return fmt.Sprintf("move %s by %s invalid: %s", moveString(e.Move), e.Color, e.Err)
}

func (e *IllegalMoveError) Unwrap() error {
	return e.Err
}

// ConfigurationError reports a bad construction parameter
type ConfigurationError struct {
	Field  string
	Value  interface{}
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("invalid %s %v: %s", e.Field, e.Value, e.Reason)
}
