package entity

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/nttt/pkg/apperror"
)

// Token is the playing piece assigned to a player.
type Token string

const (
	TokenX Token = "x"
	TokenO Token = "o"
)

// nextToken maps the current playing piece to the next in turn order.
var nextToken = map[Token]Token{
	TokenX: TokenO,
	TokenO: TokenX,
}

// ParseToken converts a string to a Token. Surrounding whitespace is stripped.
func ParseToken(str string) (Token, error) {
	token := Token(strings.TrimSpace(str))
	if !token.IsValid() {
		return "", fmt.Errorf("%w: %q", apperror.ErrInvalidToken, str)
	}

	return token, nil
}

func (that Token) IsValid() bool {
	_, ok := nextToken[that]
	return ok
}

func (that Token) Next() Token {
	return nextToken[that]
}

func (that Token) Cell() Cell {
	return Cell(that)
}

func (that Token) String() string {
	return string(that)
}
