package apperror

import "errors"

var (
	ErrInvalidCell   = errors.New("invalid cell")
	ErrInvalidToken  = errors.New("invalid token")
	ErrInvalidSize   = errors.New("board size must be nonnegative")
	ErrInvalidLength = errors.New("board length is not a perfect square")
	ErrOutOfBounds   = errors.New("position is out of bounds")
	ErrCellOccupied  = errors.New("cell is already occupied")
	ErrGameOver      = errors.New("game is already finished")
)
