package entity

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/nttt/pkg/apperror"
)

// Cell is a single board space: a Token or empty.
type Cell string

const (
	CellX     Cell = "x"
	CellO     Cell = "o"
	CellEmpty Cell = "?"
)

// cellStrings maps every Cell to a constant width of three characters.
var cellStrings = map[Cell]string{
	CellX:     " x ",
	CellO:     " o ",
	CellEmpty: "   ",
}

// ParseCell converts a DSL string to a Cell. Surrounding whitespace is stripped.
// Not the inverse of String.
func ParseCell(dsl string) (Cell, error) {
	trimmed := strings.TrimSpace(dsl)
	if !IsCell(trimmed) {
		return "", fmt.Errorf("%w: %q", apperror.ErrInvalidCell, dsl)
	}

	return Cell(trimmed), nil
}

// IsCell reports whether str is a Cell. Whitespace-sensitive.
func IsCell(str string) bool {
	_, ok := cellStrings[Cell(str)]
	return ok
}

func (that Cell) IsEmpty() bool {
	return that == CellEmpty
}

// Token returns the playing piece occupying the cell, if any.
func (that Cell) Token() (Token, bool) {
	switch that {
	case CellX:
		return TokenX, true
	case CellO:
		return TokenO, true
	default:
		return "", false
	}
}

func (that Cell) String() string {
	return cellStrings[that]
}
