package ast

import "github.com/az-lang/az/internal/token"

func (*AnnotatedIdentifier) expressionNode()       {}
func (*Assignment) expressionNode()                {}
func (*BinaryArithmeticOperation) expressionNode() {}
func (*BinaryComparison) expressionNode()          {}
func (*Block) expressionNode()                     {}
func (*Call) expressionNode()                      {}
func (*Conditional) expressionNode()                {}
func (*FunctionDefinition) expressionNode()        {}
func (*Grouping) expressionNode()                  {}
func (*Identifier) expressionNode()                {}
func (*MemberAccess) expressionNode()               {}
func (*NumericLiteral) expressionNode()            {}
func (*Tuple) expressionNode()                      {}
func (*UnaryArithmeticOperation) expressionNode()  {}

// Identifier is a bare name, e.g. "x". Its own leading fillers are
// attached here rather than to a wrapping node.
type Identifier struct {
	String   string
	Position token.SubstringPosition
	Fillers  []Filler
}

func (n *Identifier) Span() token.SubstringPosition { return n.Position }
func (n *Identifier) Accept(v Visitor)              { v.VisitIdentifier(n) }

// NumericLiteral is a literal value with a mandatory type suffix, e.g.
// "1_I32" or "0.5_F64".
type NumericLiteral struct {
	Value    string
	Type     token.NumericLiteralType
	Position token.SubstringPosition
	Fillers  []Filler
}

func (n *NumericLiteral) Span() token.SubstringPosition { return n.Position }
func (n *NumericLiteral) Accept(v Visitor)              { v.VisitNumericLiteral(n) }

// AnnotatedIdentifier is "identifier : annotation", the precedence-1 right
// associative binding used for function parameters and typed bindings.
type AnnotatedIdentifier struct {
	Identifier       *Identifier
	Annotation       Expression
	OperatorPosition token.SubstringPosition
	OperatorFillers  []Filler
}

func (n *AnnotatedIdentifier) Span() token.SubstringPosition {
	return spanOf(n.Identifier.Span(), n.Annotation.Span())
}
func (n *AnnotatedIdentifier) Accept(v Visitor) { v.VisitAnnotatedIdentifier(n) }

// Assignment is "target = value", precedence 0, right associative.
type Assignment struct {
	Target           Expression
	Value            Expression
	OperatorPosition token.SubstringPosition
	OperatorFillers  []Filler
}

func (n *Assignment) Span() token.SubstringPosition {
	return spanOf(n.Target.Span(), n.Value.Span())
}
func (n *Assignment) Accept(v Visitor) { v.VisitAssignment(n) }

// BinaryArithmeticOperation is "left OP right" for +, -, *, /.
type BinaryArithmeticOperation struct {
	Left             Expression
	Right            Expression
	Operator         BinaryOperator
	OperatorPosition token.SubstringPosition
	OperatorFillers  []Filler
}

func (n *BinaryArithmeticOperation) Span() token.SubstringPosition {
	return spanOf(n.Left.Span(), n.Right.Span())
}
func (n *BinaryArithmeticOperation) Accept(v Visitor) { v.VisitBinaryArithmeticOperation(n) }

// BinaryComparison is "left OP right" for ==, !=, <, <=, >, >=.
type BinaryComparison struct {
	Left             Expression
	Right            Expression
	Operator         BinaryOperator
	OperatorPosition token.SubstringPosition
	OperatorFillers  []Filler
}

func (n *BinaryComparison) Span() token.SubstringPosition {
	return spanOf(n.Left.Span(), n.Right.Span())
}
func (n *BinaryComparison) Accept(v Visitor) { v.VisitBinaryComparison(n) }

// UnaryArithmeticOperation is a prefix operator applied to an operand,
// currently just negation: "-operand".
type UnaryArithmeticOperation struct {
	Operand          Expression
	Operator         UnaryOperator
	OperatorPosition token.SubstringPosition
	OperatorFillers  []Filler
}

func (n *UnaryArithmeticOperation) Span() token.SubstringPosition {
	return spanOf(n.OperatorPosition, n.Operand.Span())
}
func (n *UnaryArithmeticOperation) Accept(v Visitor) { v.VisitUnaryArithmeticOperation(n) }

// MemberAccess is "object.member".
type MemberAccess struct {
	Object           Expression
	Member           *Identifier
	OperatorPosition token.SubstringPosition
	OperatorFillers  []Filler
}

func (n *MemberAccess) Span() token.SubstringPosition {
	return spanOf(n.Object.Span(), n.Member.Span())
}
func (n *MemberAccess) Accept(v Visitor) { v.VisitMemberAccess(n) }

// Grouping is a parenthesized sub-expression: "(expression)". It is
// distinct from a single-element Tuple, which requires a trailing comma.
type Grouping struct {
	Expression               Expression
	OpenParenthesisPosition  token.SubstringPosition
	CloseParenthesisPosition token.SubstringPosition
	OpenParenthesisFillers   []Filler
	CloseParenthesisFillers  []Filler
}

func (n *Grouping) Span() token.SubstringPosition {
	return spanOf(n.OpenParenthesisPosition, n.CloseParenthesisPosition)
}
func (n *Grouping) Accept(v Visitor) { v.VisitGrouping(n) }

// Tuple is a parenthesized, comma-separated expression list: "(a, b, c)"
// or "(a,)" for the one-element case that disambiguates from Grouping.
// CommasPositions/CommasFillers run parallel to each comma actually
// present; Elements may outnumber them by exactly one when there is no
// trailing comma.
type Tuple struct {
	Elements                 []Expression
	OpenParenthesisPosition   token.SubstringPosition
	CommasPositions           []token.SubstringPosition
	CloseParenthesisPosition  token.SubstringPosition
	OpenParenthesisFillers    []Filler
	CommasFillers             [][]Filler
	CloseParenthesisFillers   []Filler
}

func (n *Tuple) Span() token.SubstringPosition {
	return spanOf(n.OpenParenthesisPosition, n.CloseParenthesisPosition)
}
func (n *Tuple) Accept(v Visitor) { v.VisitTuple(n) }

// Call is "callable(arguments...)". Its argument-list fields mirror
// Tuple's exactly (same comma/element parity invariant) but it has no
// free-standing Tuple field, since a call's parenthesized list is never
// itself a standalone Tuple or Grouping node.
type Call struct {
	Callable                 Expression
	Arguments                []Expression
	OpenParenthesisPosition   token.SubstringPosition
	CommasPositions           []token.SubstringPosition
	CloseParenthesisPosition  token.SubstringPosition
	OpenParenthesisFillers    []Filler
	CommasFillers             [][]Filler
	CloseParenthesisFillers   []Filler
}

func (n *Call) Span() token.SubstringPosition {
	return spanOf(n.Callable.Span(), n.CloseParenthesisPosition)
}
func (n *Call) Accept(v Visitor) { v.VisitCall(n) }

// Block is "{ statements... expression? }"; the trailing expression, if
// present, is the block's value and carries no semicolon.
type Block struct {
	Statements           []Statement
	Expression           Expression
	OpenBracePosition    token.SubstringPosition
	CloseBracePosition   token.SubstringPosition
	OpenBraceFillers     []Filler
	CloseBraceFillers    []Filler
}

func (n *Block) Span() token.SubstringPosition {
	return spanOf(n.OpenBracePosition, n.CloseBracePosition)
}
func (n *Block) Accept(v Visitor) { v.VisitBlock(n) }

// Conditional is "if antecedent { consequent } [else alternative]". The
// alternative, when present, is itself an Expression so "else if" chains
// naturally through a nested Conditional.
type Conditional struct {
	Antecedent                 Expression
	Consequent                 Block
	Alternative                Expression
	OpenerPosition              token.SubstringPosition
	AlternativeOpenerPosition   *token.SubstringPosition
	OpenerFillers               []Filler
	AlternativeOpenerFillers    []Filler
}

func (n *Conditional) Span() token.SubstringPosition {
	end := n.Consequent.Span()
	if n.Alternative != nil {
		end = n.Alternative.Span()
	}
	return spanOf(n.OpenerPosition, end)
}
func (n *Conditional) Accept(v Visitor) { v.VisitConditional(n) }

// FunctionDefinition is "Function(parameters...) -> return_type { body }".
// The parser accepts only AnnotatedIdentifier parameters, but they are
// stored as plain Expression slots, like Tuple's elements.
type FunctionDefinition struct {
	Parameters                []Expression
	ReturnType                 Expression
	Body                       Block
	OpenerPosition              token.SubstringPosition
	OpenParenthesisPosition     token.SubstringPosition
	CommasPositions             []token.SubstringPosition
	CloseParenthesisPosition    token.SubstringPosition
	ArrowPosition                token.SubstringPosition
	OpenerFillers                []Filler
	OpenParenthesisFillers       []Filler
	CommasFillers                [][]Filler
	CloseParenthesisFillers      []Filler
	ArrowFillers                 []Filler
}

func (n *FunctionDefinition) Span() token.SubstringPosition {
	return spanOf(n.OpenerPosition, n.Body.Span())
}
func (n *FunctionDefinition) Accept(v Visitor) { v.VisitFunctionDefinition(n) }
