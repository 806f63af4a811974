package entity

import (
	"fmt"

	"github.com/rocketscienceinc/nttt/pkg/apperror"
)

// XY is a position on the Board relative to its upper-left.
type XY struct {
	X int
	Y int
}

// Game holds everything needed to play: the Board, the Token awarded the first
// move and the moves taken so far from first to last.
type Game struct {
	board    Board
	starting Token
	history  []XY
}

// NewGame creates a Game with Board sides of size Cells in length. The
// starting Token takes the first move.
func NewGame(starting Token, size int) (*Game, error) {
	if !starting.IsValid() {
		return nil, fmt.Errorf("%w: %q", apperror.ErrInvalidToken, starting)
	}

	board, err := NewBoard(size)
	if err != nil {
		return nil, err
	}

	return &Game{
		board:    board,
		starting: starting,
		history:  []XY{},
	}, nil
}

// Reset reinitializes the Game. Size and starting Token are kept.
func (that *Game) Reset() {
	that.board.Clear()
	that.history = that.history[:0]
}

// Size returns the length of each side of the Board in Cells.
func (that *Game) Size() int {
	return that.board.Size()
}

func (that *Game) State() State {
	return that.board.State()
}

func (that *Game) Starting() Token {
	return that.starting
}

// Turn returns the Token to play next.
func (that *Game) Turn() Token {
	if len(that.history)%2 == 1 {
		return that.starting.Next()
	}

	return that.starting
}

// Board returns a copy of the Board.
func (that *Game) Board() Board {
	return that.board.Clone()
}

// History returns a copy of the moves taken so far.
func (that *Game) History() []XY {
	return append([]XY(nil), that.history...)
}

// Mark places the current Token on the Cell at [y][x] and passes the turn.
func (that *Game) Mark(x, y int) error {
	cell, err := that.board.Cell(x, y)
	if err != nil {
		return err
	}

	if !cell.IsEmpty() {
		return fmt.Errorf("%w: x=%d y=%d", apperror.ErrCellOccupied, x, y)
	}

	if state := that.board.State(); state.IsFinished() {
		return fmt.Errorf("%w: %s", apperror.ErrGameOver, state)
	}

	if err = that.board.Mark(that.Turn().Cell(), x, y); err != nil {
		return err
	}

	that.history = append(that.history, XY{X: x, Y: y})

	return nil
}

// Undo takes back the last move. It reports false when there is nothing to
// undo.
func (that *Game) Undo() (XY, bool) {
	if len(that.history) == 0 {
		return XY{}, false
	}

	last := that.history[len(that.history)-1]
	that.history = that.history[:len(that.history)-1]
	that.board[last.Y][last.X] = CellEmpty

	return last, true
}

func (that *Game) String() string {
	return that.board.String()
}
