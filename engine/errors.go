package engine

import "errors"

var (
	// ErrInvalidConfig is wrapped by every rejected board or piece setup.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrOutOfBounds indicates a coordinate outside the board.
	ErrOutOfBounds = errors.New("coordinate out of bounds")

	// ErrBlockedCell indicates a piece placed on a blocked cell.
	ErrBlockedCell = errors.New("cell is blocked")
)
