package game

import "errors"

var (
	// ErrOutOfBounds reports a coordinate outside the board grid.
	ErrOutOfBounds = errors.New("coordinates out of bounds")
	// ErrEmptySquare reports an operation on a square with no piece.
	ErrEmptySquare = errors.New("no piece at square")
	// ErrInvalidMove reports a move outside the legal set for the player's
	// current turn state.
	ErrInvalidMove = errors.New("invalid move")
)
