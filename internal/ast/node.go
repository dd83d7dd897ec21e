// Package ast defines the concrete syntax tree: statements and expressions
// that, unlike a typical AST, retain every filler (whitespace and comment)
// token so a tree can be serialized back into its exact source text.
package ast

import "github.com/az-lang/az/internal/token"

// Node is the base interface implemented by every tree element, statement
// or expression alike.
type Node interface {
	// Span returns the substring position the node occupies, computed
	// from its own fields rather than stored, since a node's extent is
	// the union of its children's spans.
	Span() token.SubstringPosition
	Accept(v Visitor)
}

// Statement is a Node that stands on its own within a Script.
type Statement interface {
	Node
	statementNode()
}

// Expression is a Node that produces the grammar's 14 expression variants.
type Expression interface {
	Node
	expressionNode()
}

// Visitor dispatches over every concrete Statement and Expression variant.
// Implementations that only care about a subset commonly embed a
// no-op base and override the methods they need.
type Visitor interface {
	VisitScript(n *Script)
	VisitExpressionStatement(n *ExpressionStatement)

	VisitAnnotatedIdentifier(n *AnnotatedIdentifier)
	VisitAssignment(n *Assignment)
	VisitBinaryArithmeticOperation(n *BinaryArithmeticOperation)
	VisitBinaryComparison(n *BinaryComparison)
	VisitBlock(n *Block)
	VisitCall(n *Call)
	VisitConditional(n *Conditional)
	VisitFunctionDefinition(n *FunctionDefinition)
	VisitGrouping(n *Grouping)
	VisitIdentifier(n *Identifier)
	VisitMemberAccess(n *MemberAccess)
	VisitNumericLiteral(n *NumericLiteral)
	VisitTuple(n *Tuple)
	VisitUnaryArithmeticOperation(n *UnaryArithmeticOperation)
}

// spanOf returns the span covering both a and b, used by composite nodes
// to derive Span() from their first and last children.
func spanOf(a, b token.SubstringPosition) token.SubstringPosition {
	return token.SubstringPosition{
		StartLine:      a.StartLine,
		EndLine:        b.EndLine,
		StartCharacter: a.StartCharacter,
		EndCharacter:   b.EndCharacter,
	}
}
