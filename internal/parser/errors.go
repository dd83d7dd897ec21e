// Package parser builds a concrete syntax tree from a token stream using
// Pratt precedence climbing.
package parser

import (
	"fmt"

	"github.com/az-lang/az/internal/ast"
	"github.com/az-lang/az/internal/token"
)

// Error is the interface satisfied by every parsing error variant.
type Error interface {
	error
	Position() token.SubstringPosition
}

// MismatchedOpenBrace reports a "{" that was never closed by "}". Position
// is the opener's span, not the (absent) closer's.
type MismatchedOpenBrace struct {
	Pos token.SubstringPosition
}

func (e *MismatchedOpenBrace) Position() token.SubstringPosition { return e.Pos }
func (e *MismatchedOpenBrace) Error() string {
	return fmt.Sprintf("%s: unclosed '{'", e.Pos)
}

// MismatchedOpenParenthesis reports a "(" that was never closed by ")".
type MismatchedOpenParenthesis struct {
	Pos token.SubstringPosition
}

func (e *MismatchedOpenParenthesis) Position() token.SubstringPosition { return e.Pos }
func (e *MismatchedOpenParenthesis) Error() string {
	return fmt.Sprintf("%s: unclosed '('", e.Pos)
}

// MissingSemicolon reports a statement whose expression was not followed
// by ";".
type MissingSemicolon struct {
	Token token.Token
}

func (e *MissingSemicolon) Position() token.SubstringPosition { return e.Token.Position }
func (e *MissingSemicolon) Error() string {
	return fmt.Sprintf("%s: expected ';', found %s", e.Token.Position, e.Token.Content.Kind)
}

// OutOfTokens reports the stream ending where at least one more token was
// required to complete the construct in progress.
type OutOfTokens struct{}

func (e *OutOfTokens) Position() token.SubstringPosition { return token.SubstringPosition{} }
func (e *OutOfTokens) Error() string                      { return "unexpected end of token stream" }

// UnexpectedExpression reports a structural violation: an expression of
// the wrong shape in a position that requires a specific one (e.g. a
// non-Identifier left of ':', a conditional alternative that is neither a
// Block nor a Conditional).
type UnexpectedExpression struct {
	Expression ast.Expression
}

func (e *UnexpectedExpression) Position() token.SubstringPosition { return e.Expression.Span() }
func (e *UnexpectedExpression) Error() string {
	return fmt.Sprintf("%s: unexpected expression shape", e.Expression.Span())
}

// UnexpectedToken reports a token-level violation: a token that cannot
// begin or continue the construct in progress.
type UnexpectedToken struct {
	Token token.Token
}

func (e *UnexpectedToken) Position() token.SubstringPosition { return e.Token.Position }
func (e *UnexpectedToken) Error() string {
	return fmt.Sprintf("%s: unexpected token %s", e.Token.Position, e.Token.Content.Kind)
}
