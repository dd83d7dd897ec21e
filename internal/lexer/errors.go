// Package lexer turns source text into a lossless stream of tokens.
package lexer

import (
	"fmt"

	"github.com/az-lang/az/internal/token"
)

// Error is the interface satisfied by every lexical error variant. Position
// always points at the offending span; tokenization stops at the first one.
type Error interface {
	error
	Position() token.SubstringPosition
}

// CommentBlockIncomplete reports a "/*" that was never closed by "*/".
type CommentBlockIncomplete struct {
	Pos   token.SubstringPosition
	Lines []string
}

func (e *CommentBlockIncomplete) Position() token.SubstringPosition { return e.Pos }
func (e *CommentBlockIncomplete) Error() string {
	return fmt.Sprintf("%s: unterminated block comment", e.Pos)
}

// IdentifierIncomplete reports input that ended before an identifier's
// first character could be read.
type IdentifierIncomplete struct {
	Pos    token.SubstringPosition
	String string
}

func (e *IdentifierIncomplete) Position() token.SubstringPosition { return e.Pos }
func (e *IdentifierIncomplete) Error() string {
	return fmt.Sprintf("%s: incomplete identifier %q", e.Pos, e.String)
}

// IdentifierUnexpectedCharacter reports a character that cannot start an
// identifier where one was expected. The tokenizer raises it only while
// reading a numeric-literal type suffix, where it is converted into
// NumericLiteralTypeSuffixUnexpectedCharacter.
type IdentifierUnexpectedCharacter struct {
	Pos       token.SubstringPosition
	Character rune
	Expected  string
	String    string
}

func (e *IdentifierUnexpectedCharacter) Position() token.SubstringPosition { return e.Pos }
func (e *IdentifierUnexpectedCharacter) Error() string {
	return fmt.Sprintf("%s: unexpected character %q, expected one of %q", e.Pos, e.Character, e.Expected)
}

// NumericLiteralValueIncomplete reports a numeric literal whose value
// portion ended before it was syntactically complete.
type NumericLiteralValueIncomplete struct {
	Pos    token.SubstringPosition
	Kind   token.NumericLiteralValueKind
	String string
}

func (e *NumericLiteralValueIncomplete) Position() token.SubstringPosition { return e.Pos }
func (e *NumericLiteralValueIncomplete) Error() string {
	return fmt.Sprintf("%s: incomplete %s numeric literal %q", e.Pos, e.Kind, e.String)
}

// NumericLiteralValueUnexpectedCharacter reports an unexpected character
// while scanning a numeric literal's value (e.g. its exponent).
type NumericLiteralValueUnexpectedCharacter struct {
	Pos       token.SubstringPosition
	Character rune
	Expected  string
	Kind      token.NumericLiteralValueKind
	String    string
}

func (e *NumericLiteralValueUnexpectedCharacter) Position() token.SubstringPosition { return e.Pos }
func (e *NumericLiteralValueUnexpectedCharacter) Error() string {
	return fmt.Sprintf("%s: unexpected character %q in %s literal, expected one of %q", e.Pos, e.Character, e.Kind, e.Expected)
}

// NumericLiteralTypeSuffixIncomplete reports input that ended before the
// mandatory "_TYPE" suffix could be read.
type NumericLiteralTypeSuffixIncomplete struct {
	Pos       token.SubstringPosition
	Value     string
	ValueKind token.NumericLiteralValueKind
	String    string
}

func (e *NumericLiteralTypeSuffixIncomplete) Position() token.SubstringPosition { return e.Pos }
func (e *NumericLiteralTypeSuffixIncomplete) Error() string {
	return fmt.Sprintf("%s: incomplete type suffix for numeric literal %q", e.Pos, e.Value)
}

// NumericLiteralTypeSuffixUnexpectedCharacter reports a character where the
// "_" type-suffix separator was expected.
type NumericLiteralTypeSuffixUnexpectedCharacter struct {
	Pos       token.SubstringPosition
	Character rune
	Expected  string
	Value     string
	ValueKind token.NumericLiteralValueKind
	String    string
}

func (e *NumericLiteralTypeSuffixUnexpectedCharacter) Position() token.SubstringPosition {
	return e.Pos
}
func (e *NumericLiteralTypeSuffixUnexpectedCharacter) Error() string {
	return fmt.Sprintf("%s: unexpected character %q after numeric literal value %q, expected %q", e.Pos, e.Character, e.Value, e.Expected)
}

// NumericLiteralTypeSuffixUnknown reports a type suffix that was read in
// full but does not name one of the known numeric types.
type NumericLiteralTypeSuffixUnknown struct {
	Pos        token.SubstringPosition
	TypeSuffix string
	Value      string
	ValueKind  token.NumericLiteralValueKind
	String     string
}

func (e *NumericLiteralTypeSuffixUnknown) Position() token.SubstringPosition { return e.Pos }
func (e *NumericLiteralTypeSuffixUnknown) Error() string {
	return fmt.Sprintf("%s: unknown numeric literal type suffix %q", e.Pos, e.TypeSuffix)
}

// NumericLiteralValueTypeSuffixConflict reports a floating-point value
// paired with an integer type suffix. Integer values accept every suffix.
type NumericLiteralValueTypeSuffixConflict struct {
	Pos        token.SubstringPosition
	TypeSuffix string
	Value      string
	ValueKind  token.NumericLiteralValueKind
	String     string
}

func (e *NumericLiteralValueTypeSuffixConflict) Position() token.SubstringPosition { return e.Pos }
func (e *NumericLiteralValueTypeSuffixConflict) Error() string {
	return fmt.Sprintf("%s: %s value %q is not compatible with type suffix %q", e.Pos, e.ValueKind, e.Value, e.TypeSuffix)
}

// UnexpectedCharacter reports a character that does not begin any token.
type UnexpectedCharacter struct {
	Pos       token.SubstringPosition
	Character rune
	String    string
}

func (e *UnexpectedCharacter) Position() token.SubstringPosition { return e.Pos }
func (e *UnexpectedCharacter) Error() string {
	return fmt.Sprintf("%s: unexpected character %q", e.Pos, e.Character)
}
