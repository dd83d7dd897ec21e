package ast

import "github.com/az-lang/az/internal/token"

// BinaryOperator enumerates every infix token the parser can drive a Pratt
// step from. It is richer than the arithmetic/comparison split the tree
// exposes: Annotation, Assignment, Call and MemberAccess also flow through
// it purely to share one precedence table.
type BinaryOperator int

const (
	BinaryAddition BinaryOperator = iota
	BinaryAnnotation
	BinaryAssignment
	BinaryCall
	BinaryDivision
	BinaryEqualTo
	BinaryGreaterThan
	BinaryGreaterThanOrEqualTo
	BinaryLowerThan
	BinaryLowerThanOrEqualTo
	BinaryMemberAccess
	BinaryMultiplication
	BinaryNotEqualTo
	BinarySubtraction
)

// BinaryOperatorFromContent maps the punctuator that opens an infix
// expression to its BinaryOperator, mirroring the one-to-one dispatch the
// parser's infix table performs. ok is false for tokens that never start an
// infix expression.
func BinaryOperatorFromContent(c token.TokenContent) (op BinaryOperator, ok bool) {
	switch c.Kind {
	case token.KindAssignment:
		return BinaryAssignment, true
	case token.KindAsterisk:
		return BinaryMultiplication, true
	case token.KindColon:
		return BinaryAnnotation, true
	case token.KindDot:
		return BinaryMemberAccess, true
	case token.KindEqualTo:
		return BinaryEqualTo, true
	case token.KindGreaterThan:
		return BinaryGreaterThan, true
	case token.KindGreaterThanOrEqualTo:
		return BinaryGreaterThanOrEqualTo, true
	case token.KindLowerThan:
		return BinaryLowerThan, true
	case token.KindLowerThanOrEqualTo:
		return BinaryLowerThanOrEqualTo, true
	case token.KindMinus:
		return BinarySubtraction, true
	case token.KindNotEqualTo:
		return BinaryNotEqualTo, true
	case token.KindOpenParenthesis:
		return BinaryCall, true
	case token.KindPlus:
		return BinaryAddition, true
	case token.KindSlash:
		return BinaryDivision, true
	default:
		return 0, false
	}
}

// UnaryOperator enumerates the prefix operators.
type UnaryOperator int

const (
	UnaryNegation UnaryOperator = iota
)

// UnaryOperatorFromContent maps a prefix punctuator to its UnaryOperator.
func UnaryOperatorFromContent(c token.TokenContent) (op UnaryOperator, ok bool) {
	if c.Kind == token.KindMinus {
		return UnaryNegation, true
	}
	return 0, false
}

// Precedence is the binding power driving the parser's climb: lower binds
// looser. Zero is the loosest (assignment), six the tightest (call and
// member access).
type Precedence int

// MinimumPrecedence is the loosest binding power, used to parse a full
// expression from scratch.
const MinimumPrecedence Precedence = 0

var binaryPrecedence = map[BinaryOperator]Precedence{
	BinaryAssignment:           0,
	BinaryAnnotation:           1,
	BinaryEqualTo:              2,
	BinaryGreaterThan:          2,
	BinaryGreaterThanOrEqualTo: 2,
	BinaryLowerThan:            2,
	BinaryLowerThanOrEqualTo:   2,
	BinaryNotEqualTo:           2,
	BinaryAddition:             3,
	BinarySubtraction:          3,
	BinaryDivision:             4,
	BinaryMultiplication:       4,
	BinaryCall:                 6,
	BinaryMemberAccess:         6,
}

// Precedence returns op's binding power.
func (op BinaryOperator) Precedence() Precedence { return binaryPrecedence[op] }

var unaryPrecedence = map[UnaryOperator]Precedence{
	UnaryNegation: 5,
}

// Precedence returns op's binding power.
func (op UnaryOperator) Precedence() Precedence { return unaryPrecedence[op] }

// Associativity controls how the parser's climb treats same-precedence
// operators chained together.
type Associativity int

const (
	LeftToRight Associativity = iota
	RightToLeft
)

var binaryAssociativity = map[BinaryOperator]Associativity{
	BinaryAssignment:           RightToLeft,
	BinaryAnnotation:           RightToLeft,
	BinaryEqualTo:              LeftToRight,
	BinaryGreaterThan:          LeftToRight,
	BinaryGreaterThanOrEqualTo: LeftToRight,
	BinaryLowerThan:            LeftToRight,
	BinaryLowerThanOrEqualTo:   LeftToRight,
	BinaryNotEqualTo:           LeftToRight,
	BinaryAddition:             LeftToRight,
	BinarySubtraction:          LeftToRight,
	BinaryDivision:             LeftToRight,
	BinaryMultiplication:       LeftToRight,
	BinaryCall:                 LeftToRight,
	BinaryMemberAccess:         LeftToRight,
}

// Associativity returns how chained occurrences of op associate.
func (op BinaryOperator) Associativity() Associativity { return binaryAssociativity[op] }

// Keyword identifier spellings recognized by the parser's prefix table.
// These are ordinary identifier tokens; the lexer has no notion of
// reserved words.
const (
	ConditionalAntecedentOpener  = "if"
	ConditionalAlternativeOpener = "else"
	FunctionOpener               = "Function"
)

// Keywords lists every identifier spelling the parser treats specially.
var Keywords = []string{
	ConditionalAlternativeOpener,
	ConditionalAntecedentOpener,
	FunctionOpener,
}
