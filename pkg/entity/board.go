package entity

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/rocketscienceinc/nttt/pkg/apperror"
)

// DefaultSize is the side length of a classic three-by-three board.
const DefaultSize = 3

// Board is an n² row-by-column grid of Cells, indexed [y][x].
type Board [][]Cell

// NewBoard creates a Board with sides of size Cells in length, all empty.
func NewBoard(size int) (Board, error) {
	if size < 0 {
		return nil, fmt.Errorf("%w: size=%d", apperror.ErrInvalidSize, size)
	}

	board := make(Board, size)
	for y := range board {
		board[y] = makeSide(size)
	}

	return board, nil
}

// ParseBoard converts a DSL string to a Board. All whitespace is stripped and
// the remaining cells are laid out row-major. For example:
//
//	?x?
//	?xo
//	??o
//
// Not the inverse of String.
func ParseBoard(dsl string) (Board, error) {
	cells := make([]Cell, 0, len(dsl))
	for _, r := range dsl {
		if isSpace(r) {
			continue
		}

		cell, err := ParseCell(string(r))
		if err != nil {
			return nil, err
		}

		cells = append(cells, cell)
	}

	size := sqrt(len(cells))
	if size*size != len(cells) {
		return nil, fmt.Errorf("%w: length=%d", apperror.ErrInvalidLength, len(cells))
	}

	board := make(Board, size)
	for y := range board {
		board[y] = cells[y*size : (y+1)*size : (y+1)*size]
	}

	return board, nil
}

// Size returns the length of each side in Cells.
func (that Board) Size() int {
	return len(that)
}

// Cell returns the Cell at [y][x].
func (that Board) Cell(x, y int) (Cell, error) {
	if err := that.checkBounds(x, y); err != nil {
		return "", err
	}

	return that[y][x], nil
}

// Mark places a Token or empty Cell at [y][x]. x and y are positions in
// [0, size) relative to the upper-left.
func (that Board) Mark(cell Cell, x, y int) error {
	if !IsCell(string(cell)) {
		return fmt.Errorf("%w: %q", apperror.ErrInvalidCell, cell)
	}

	if err := that.checkBounds(x, y); err != nil {
		return err
	}

	that[y][x] = cell

	return nil
}

// Clear empties every Cell in place.
func (that Board) Clear() {
	for _, row := range that {
		for x := range row {
			row[x] = CellEmpty
		}
	}
}

// Clone returns a deep copy.
func (that Board) Clone() Board {
	board := make(Board, len(that))
	for y, row := range that {
		board[y] = append([]Cell(nil), row...)
	}

	return board
}

// State calculates the aggregated State. When matching Tokens fill a row,
// column or diagonal, that Token wins. When the Board is full without a
// winner, it's a cat's game. Otherwise, the game is incomplete.
//
// The Board is assumed valid: multiple distinct winners are not detected and
// the first line found (rows, columns, forward then backward diagonal) wins.
func (that Board) State() State {
	size := len(that)
	if size == 0 {
		return StateIncomplete
	}

	// Usually incomplete or cats. A Token is possible for one cell boards.
	boardState := stateOf(that[0][0])

	columnStates := make([]State, size)
	for x, cell := range that[0] {
		columnStates[x] = stateOf(cell)
	}

	for _, row := range that {
		rowState := stateOf(row[0])
		for x, cell := range row {
			rowState = rowState.Combine(stateOf(cell))
			columnStates[x] = columnStates[x].Combine(stateOf(cell))
		}

		if _, ok := rowState.Winner(); ok {
			return rowState
		}

		boardState = boardState.Combine(rowState)
	}

	for _, columnState := range columnStates {
		if _, ok := columnState.Winner(); ok {
			return columnState
		}
	}

	forward := stateOf(that[0][0])
	backward := stateOf(that[0][size-1])
	for i := range size {
		forward = forward.Combine(stateOf(that[i][i]))
		backward = backward.Combine(stateOf(that[i][size-1-i]))
	}

	if _, ok := forward.Winner(); ok {
		return forward
	}

	if _, ok := backward.Winner(); ok {
		return backward
	}

	return boardState
}

// DSL converts the Board to its DSL form, one row per line.
func (that Board) DSL() string {
	rows := make([]string, len(that))
	for y, row := range that {
		var sb strings.Builder
		for _, cell := range row {
			sb.WriteString(string(cell))
		}
		rows[y] = sb.String()
	}

	return strings.Join(rows, "\n")
}

// String renders the Board with box-drawing characters. Width is constant so
// lines usually carry leading and trailing whitespace:
//
//	   ╷   ╷
//	 x │   │
//	───┼───┼───
//	   │ x │ o
//	───┼───┼───
//	   │ o │ x
//	   ╵   ╵
func (that Board) String() string {
	size := len(that)
	switch size {
	case 0:
		return ""
	case 1:
		return that[0][0].String()
	}

	top := strings.Repeat("   ╷", size-1) + "   \n"
	divider := strings.Repeat("───┼", size-1) + "───\n"
	bottom := strings.Repeat("   ╵", size-1) + "   "

	rows := make([]string, size)
	for y, row := range that {
		cells := make([]string, size)
		for x, cell := range row {
			cells[x] = cell.String()
		}
		rows[y] = strings.Join(cells, "│") + "\n"
	}

	return top + strings.Join(rows, divider) + bottom
}

func (that Board) checkBounds(x, y int) error {
	size := len(that)
	if y < 0 || y >= size {
		return fmt.Errorf("%w: y=%d must be an integer in [0, %d)", apperror.ErrOutOfBounds, y, size)
	}

	if x < 0 || x >= len(that[y]) {
		return fmt.Errorf("%w: x=%d must be an integer in [0, %d)", apperror.ErrOutOfBounds, x, size)
	}

	return nil
}

// isSpace also treats the byte order mark as whitespace.
func isSpace(r rune) bool {
	return unicode.IsSpace(r) || r == '\uFEFF'
}

// makeSide creates a Board side initialized to empty.
func makeSide(size int) []Cell {
	side := make([]Cell, size)
	for i := range side {
		side[i] = CellEmpty
	}

	return side
}

// sqrt returns the integer square root of n, rounded down.
func sqrt(n int) int {
	root := 0
	for (root+1)*(root+1) <= n {
		root++
	}

	return root
}
