package parser

import (
	"fmt"

	"github.com/brooklang/brook/internal/token"
)

// ErrorKind classifies parse failures so callers can react to the class of
// problem without matching on message text.
type ErrorKind uint8

const (
	// EndOfInput marks running out of tokens, or meeting the end marker,
	// while more input was required.
	EndOfInput ErrorKind = iota
	// UnexpectedToken marks a token the grammar cannot accept at its
	// position.
	UnexpectedToken
	// TypeMismatch marks operands or initializers whose types disagree.
	TypeMismatch
	// Redeclared marks a define of a name already bound in the same scope.
	Redeclared
	// Undefined marks a reference to a name no scope in the chain binds.
	Undefined
)

func (k ErrorKind) String() string {
	switch k {
	case EndOfInput:
		return "premature end of input"
	case UnexpectedToken:
		return "unexpected token"
	case TypeMismatch:
		return "type mismatch"
	case Redeclared:
		return "redeclaration"
	case Undefined:
		return "undefined reference"
	}
	return "unknown"
}

// Error is the single failure value produced by a parse. The parser stops at
// the first failure, so one run never yields more than one.
type Error struct {
	Kind    ErrorKind
	Message string
	Token   *token.Token
}

// NewError creates a parse error at the given token. The token may be nil
// when the input ran out before one was available.
func NewError(kind ErrorKind, tok *token.Token, message string) error {
	return &Error{kind, message, tok}
}

func (err *Error) Error() string {
	if err.Token == nil {
		return fmt.Sprintf("Error at end: %s", err.Message)
	}
	if err.Token.Typ == token.EOF {
		return fmt.Sprintf(
			"[line %d] Error at end: %s",
			err.Token.Line,
			err.Message,
		)
	}
	return fmt.Sprintf(
		"[line %d] Error at '%s': %s",
		err.Token.Line,
		err.Token.Lexeme,
		err.Message,
	)
}
