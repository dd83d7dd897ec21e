// Package token defines the lexical vocabulary of the language: the
// byte/codepoint index types, source spans, and the tagged token content
// produced by the tokenizer and consumed by the parser and serializer.
package token

import "fmt"

// ByteIndex is a non-negative offset into a line, counted in bytes.
// Arithmetic on ByteIndex saturates at the type's maximum from the
// outside (via Add); internally the tokenizer only ever adds
// non-negative widths, so overflow is not a practical concern.
type ByteIndex uint64

// Add returns the saturating sum of two ByteIndex values.
func (b ByteIndex) Add(other ByteIndex) ByteIndex {
	sum := b + other
	if sum < b {
		return ^ByteIndex(0)
	}
	return sum
}

// Utf8Index is a non-negative offset into a line, counted in codepoints.
type Utf8Index uint64

// Add returns the saturating sum of two Utf8Index values.
func (u Utf8Index) Add(other Utf8Index) Utf8Index {
	sum := u + other
	if sum < u {
		return ^Utf8Index(0)
	}
	return sum
}

// CharacterPosition is the dual byte/codepoint offset of a character
// boundary within a line.
type CharacterPosition struct {
	Byte ByteIndex
	Utf8 Utf8Index
}

// SubstringPosition is a half-open span over the source text expressed in
// line-relative coordinates. Line indices are 0-based; a '\n' terminates
// a line and belongs to that line's Newline token.
type SubstringPosition struct {
	StartLine      int
	EndLine        int
	StartCharacter CharacterPosition
	EndCharacter   CharacterPosition
}

// String renders the span as "line:byte-line:byte" for diagnostics.
func (p SubstringPosition) String() string {
	return fmt.Sprintf("%d:%d-%d:%d", p.StartLine, p.StartCharacter.Byte, p.EndLine, p.EndCharacter.Byte)
}

// Kind discriminates the TokenContent tagged union.
type Kind int

const (
	KindInvalid Kind = iota

	// Punctuators.
	KindArrow
	KindAssignment
	KindAsterisk
	KindCloseBrace
	KindCloseParenthesis
	KindColon
	KindComma
	KindDot
	KindEqualTo
	KindGreaterThan
	KindGreaterThanOrEqualTo
	KindLowerThan
	KindLowerThanOrEqualTo
	KindMinus
	KindNotEqualTo
	KindOpenBrace
	KindOpenParenthesis
	KindPlus
	KindSemicolon
	KindSlash

	// Content-bearing.
	KindIdentifier
	KindNumericLiteral
	KindCommentLine
	KindCommentBlock
	KindWhitespace
	KindNewline
)

var kindNames = map[Kind]string{
	KindInvalid:              "Invalid",
	KindArrow:                "Arrow",
	KindAssignment:           "Assignment",
	KindAsterisk:             "Asterisk",
	KindCloseBrace:           "CloseBrace",
	KindCloseParenthesis:     "CloseParenthesis",
	KindColon:                "Colon",
	KindComma:                "Comma",
	KindDot:                  "Dot",
	KindEqualTo:              "EqualTo",
	KindGreaterThan:          "GreaterThan",
	KindGreaterThanOrEqualTo: "GreaterThanOrEqualTo",
	KindLowerThan:            "LowerThan",
	KindLowerThanOrEqualTo:   "LowerThanOrEqualTo",
	KindMinus:                "Minus",
	KindNotEqualTo:           "NotEqualTo",
	KindOpenBrace:            "OpenBrace",
	KindOpenParenthesis:      "OpenParenthesis",
	KindPlus:                 "Plus",
	KindSemicolon:            "Semicolon",
	KindSlash:                "Slash",
	KindIdentifier:           "Identifier",
	KindNumericLiteral:       "NumericLiteral",
	KindCommentLine:          "CommentLine",
	KindCommentBlock:         "CommentBlock",
	KindWhitespace:           "Whitespace",
	KindNewline:              "Newline",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "Unknown"
}

// NumericLiteralType is the fixed suffix spelling attached to a numeric
// literal, e.g. the "I32" in "1_I32".
type NumericLiteralType int

const (
	F32 NumericLiteralType = iota
	F64
	I8
	I16
	I32
	I64
	ISize
	U8
	U16
	U32
	U64
	USize
)

var numericLiteralTypeNames = map[NumericLiteralType]string{
	F32:   "F32",
	F64:   "F64",
	I8:    "I8",
	I16:   "I16",
	I32:   "I32",
	I64:   "I64",
	ISize: "ISize",
	U8:    "U8",
	U16:   "U16",
	U32:   "U32",
	U64:   "U64",
	USize: "USize",
}

// NumericLiteralTypesBySuffix maps canonical suffix spellings back to their
// NumericLiteralType; the tokenizer uses it to validate type suffixes.
var NumericLiteralTypesBySuffix = func() map[string]NumericLiteralType {
	m := make(map[string]NumericLiteralType, len(numericLiteralTypeNames))
	for k, v := range numericLiteralTypeNames {
		m[v] = k
	}
	return m
}()

func (t NumericLiteralType) String() string {
	if name, ok := numericLiteralTypeNames[t]; ok {
		return name
	}
	return "?"
}

// IsFloatCompatible reports whether t may be used as the suffix of a
// floating-point-valued numeric literal. Only F32/F64 qualify.
func (t NumericLiteralType) IsFloatCompatible() bool {
	return t == F32 || t == F64
}

// NumericLiteralValueKind distinguishes the two shapes a numeric literal's
// value can take, independent of its type suffix.
type NumericLiteralValueKind int

const (
	Integer NumericLiteralValueKind = iota
	FloatingPoint
)

func (k NumericLiteralValueKind) String() string {
	if k == Integer {
		return "Integer"
	}
	return "FloatingPoint"
}

// TokenContent is the tagged union of lexical token payloads. Only the
// fields relevant to Kind are populated; callers switch on Kind.
type TokenContent struct {
	Kind Kind

	// KindIdentifier
	Identifier string

	// KindNumericLiteral
	NumericValue string
	NumericType  NumericLiteralType
	NumericKind  NumericLiteralValueKind

	// KindCommentLine, KindWhitespace
	Text string

	// KindCommentBlock: one string per physical line, newline included
	// on every line but the last, which ends at the closing "*/".
	Lines []string
}

var canonicalPunctuators = map[Kind]string{
	KindArrow:                "->",
	KindAssignment:           "=",
	KindAsterisk:             "*",
	KindCloseBrace:           "}",
	KindCloseParenthesis:     ")",
	KindColon:                ":",
	KindComma:                ",",
	KindDot:                  ".",
	KindEqualTo:              "==",
	KindGreaterThan:          ">",
	KindGreaterThanOrEqualTo: ">=",
	KindLowerThan:            "<",
	KindLowerThanOrEqualTo:   "<=",
	KindMinus:                "-",
	KindNotEqualTo:           "!=",
	KindOpenBrace:            "{",
	KindOpenParenthesis:      "(",
	KindPlus:                 "+",
	KindSemicolon:            ";",
	KindSlash:                "/",
}

// Canonical returns the exact string this token content prints to. A
// NumericLiteral's canonical form is value + "_" + suffix.
func (c TokenContent) Canonical() string {
	switch c.Kind {
	case KindIdentifier:
		return c.Identifier
	case KindNumericLiteral:
		return c.NumericValue + "_" + c.NumericType.String()
	case KindCommentLine:
		return c.Text
	case KindCommentBlock:
		result := ""
		for _, line := range c.Lines {
			result += line
		}
		return result
	case KindWhitespace:
		return c.Text
	case KindNewline:
		return "\n"
	default:
		if s, ok := canonicalPunctuators[c.Kind]; ok {
			return s
		}
		return ""
	}
}

// Token pairs a TokenContent with the span it occupies in the source.
type Token struct {
	Content  TokenContent
	Position SubstringPosition
}

// IsTrivia reports whether this token is whitespace, a newline, or a
// comment -- the kinds the parser absorbs into pending fillers rather
// than treating as syntactically meaningful.
func (t Token) IsTrivia() bool {
	switch t.Content.Kind {
	case KindWhitespace, KindNewline, KindCommentLine, KindCommentBlock:
		return true
	default:
		return false
	}
}

// Punctuator builds a single-kind punctuator token at the given span.
func Punctuator(kind Kind, position SubstringPosition) Token {
	return Token{Content: TokenContent{Kind: kind}, Position: position}
}

// Identifier builds an identifier token.
func Identifier(value string, position SubstringPosition) Token {
	return Token{Content: TokenContent{Kind: KindIdentifier, Identifier: value}, Position: position}
}

// NumericLiteralToken builds a numeric-literal token.
func NumericLiteralToken(value string, kind NumericLiteralValueKind, typ NumericLiteralType, position SubstringPosition) Token {
	return Token{
		Content: TokenContent{
			Kind:         KindNumericLiteral,
			NumericValue: value,
			NumericKind:  kind,
			NumericType:  typ,
		},
		Position: position,
	}
}
