// Package serializer turns a tree back into the token stream (and, from
// there, the exact source text) it represents. It is the inverse of the
// parser: every filler and every node's own token is replayed in the
// order the parser originally consumed it from, using each node's
// stored positions rather than recomputing them (see internal/reset for
// that).
package serializer

import (
	"strings"

	"github.com/az-lang/az/internal/ast"
	"github.com/az-lang/az/internal/token"
)

var binaryOperatorKind = map[ast.BinaryOperator]token.Kind{
	ast.BinaryAddition:             token.KindPlus,
	ast.BinarySubtraction:          token.KindMinus,
	ast.BinaryMultiplication:       token.KindAsterisk,
	ast.BinaryDivision:             token.KindSlash,
	ast.BinaryEqualTo:              token.KindEqualTo,
	ast.BinaryNotEqualTo:           token.KindNotEqualTo,
	ast.BinaryGreaterThan:          token.KindGreaterThan,
	ast.BinaryGreaterThanOrEqualTo: token.KindGreaterThanOrEqualTo,
	ast.BinaryLowerThan:            token.KindLowerThan,
	ast.BinaryLowerThanOrEqualTo:   token.KindLowerThanOrEqualTo,
}

var unaryOperatorKind = map[ast.UnaryOperator]token.Kind{
	ast.UnaryNegation: token.KindMinus,
}

// Serialize walks script in source order and returns the exact token
// stream it represents, fillers included.
func Serialize(script *ast.Script) []token.Token {
	v := &serializeVisitor{}
	script.Accept(v)
	return v.tokens
}

// Render serializes script and concatenates every token's canonical
// text, producing the source text the tree represents.
func Render(script *ast.Script) string {
	var builder strings.Builder
	for _, tok := range Serialize(script) {
		builder.WriteString(tok.Content.Canonical())
	}
	return builder.String()
}

type serializeVisitor struct {
	tokens []token.Token
}

func (v *serializeVisitor) emitFillers(fillers []ast.Filler) {
	for _, f := range fillers {
		v.tokens = append(v.tokens, f.Token())
	}
}

func (v *serializeVisitor) emit(tok token.Token) {
	v.tokens = append(v.tokens, tok)
}

func numericValueKind(value string) token.NumericLiteralValueKind {
	if strings.ContainsAny(value, ".eE") {
		return token.FloatingPoint
	}
	return token.Integer
}

func (v *serializeVisitor) VisitScript(n *ast.Script) {
	for _, stmt := range n.Statements {
		stmt.Accept(v)
	}
	v.emitFillers(n.Fillers)
}

func (v *serializeVisitor) VisitExpressionStatement(n *ast.ExpressionStatement) {
	n.Expression.Accept(v)
	v.emitFillers(n.SemicolonFillers)
	v.emit(token.Punctuator(token.KindSemicolon, n.SemicolonPosition))
}

func (v *serializeVisitor) VisitIdentifier(n *ast.Identifier) {
	v.emitFillers(n.Fillers)
	v.emit(token.Identifier(n.String, n.Position))
}

func (v *serializeVisitor) VisitNumericLiteral(n *ast.NumericLiteral) {
	v.emitFillers(n.Fillers)
	v.emit(token.NumericLiteralToken(n.Value, numericValueKind(n.Value), n.Type, n.Position))
}

func (v *serializeVisitor) VisitAnnotatedIdentifier(n *ast.AnnotatedIdentifier) {
	n.Identifier.Accept(v)
	v.emitFillers(n.OperatorFillers)
	v.emit(token.Punctuator(token.KindColon, n.OperatorPosition))
	n.Annotation.Accept(v)
}

func (v *serializeVisitor) VisitAssignment(n *ast.Assignment) {
	n.Target.Accept(v)
	v.emitFillers(n.OperatorFillers)
	v.emit(token.Punctuator(token.KindAssignment, n.OperatorPosition))
	n.Value.Accept(v)
}

func (v *serializeVisitor) VisitBinaryArithmeticOperation(n *ast.BinaryArithmeticOperation) {
	n.Left.Accept(v)
	v.emitFillers(n.OperatorFillers)
	v.emit(token.Punctuator(binaryOperatorKind[n.Operator], n.OperatorPosition))
	n.Right.Accept(v)
}

func (v *serializeVisitor) VisitBinaryComparison(n *ast.BinaryComparison) {
	n.Left.Accept(v)
	v.emitFillers(n.OperatorFillers)
	v.emit(token.Punctuator(binaryOperatorKind[n.Operator], n.OperatorPosition))
	n.Right.Accept(v)
}

func (v *serializeVisitor) VisitUnaryArithmeticOperation(n *ast.UnaryArithmeticOperation) {
	v.emitFillers(n.OperatorFillers)
	v.emit(token.Punctuator(unaryOperatorKind[n.Operator], n.OperatorPosition))
	n.Operand.Accept(v)
}

func (v *serializeVisitor) VisitMemberAccess(n *ast.MemberAccess) {
	n.Object.Accept(v)
	v.emitFillers(n.OperatorFillers)
	v.emit(token.Punctuator(token.KindDot, n.OperatorPosition))
	n.Member.Accept(v)
}

func (v *serializeVisitor) VisitGrouping(n *ast.Grouping) {
	v.emitFillers(n.OpenParenthesisFillers)
	v.emit(token.Punctuator(token.KindOpenParenthesis, n.OpenParenthesisPosition))
	n.Expression.Accept(v)
	v.emitFillers(n.CloseParenthesisFillers)
	v.emit(token.Punctuator(token.KindCloseParenthesis, n.CloseParenthesisPosition))
}

// serializeCommaList replays a parenthesized, comma-separated element
// list shared by Tuple, Call and FunctionDefinition: every element has a
// following comma, except possibly the last.
func serializeCommaList(v *serializeVisitor, elements []ast.Expression, commasPositions []token.SubstringPosition, commasFillers [][]ast.Filler) {
	if len(elements) == 0 {
		return
	}
	trailingComma := len(elements) == len(commasPositions)
	lastIndex := len(elements) - 1
	if trailingComma {
		lastIndex = len(elements)
	}
	for i := 0; i < lastIndex; i++ {
		elements[i].Accept(v)
		v.emitFillers(commasFillers[i])
		v.emit(token.Punctuator(token.KindComma, commasPositions[i]))
	}
	if !trailingComma {
		elements[lastIndex].Accept(v)
	}
}

func (v *serializeVisitor) VisitTuple(n *ast.Tuple) {
	v.emitFillers(n.OpenParenthesisFillers)
	v.emit(token.Punctuator(token.KindOpenParenthesis, n.OpenParenthesisPosition))
	serializeCommaList(v, n.Elements, n.CommasPositions, n.CommasFillers)
	v.emitFillers(n.CloseParenthesisFillers)
	v.emit(token.Punctuator(token.KindCloseParenthesis, n.CloseParenthesisPosition))
}

func (v *serializeVisitor) VisitCall(n *ast.Call) {
	n.Callable.Accept(v)
	v.emitFillers(n.OpenParenthesisFillers)
	v.emit(token.Punctuator(token.KindOpenParenthesis, n.OpenParenthesisPosition))
	serializeCommaList(v, n.Arguments, n.CommasPositions, n.CommasFillers)
	v.emitFillers(n.CloseParenthesisFillers)
	v.emit(token.Punctuator(token.KindCloseParenthesis, n.CloseParenthesisPosition))
}

func (v *serializeVisitor) VisitBlock(n *ast.Block) {
	v.emitFillers(n.OpenBraceFillers)
	v.emit(token.Punctuator(token.KindOpenBrace, n.OpenBracePosition))
	for _, stmt := range n.Statements {
		stmt.Accept(v)
	}
	if n.Expression != nil {
		n.Expression.Accept(v)
	}
	v.emitFillers(n.CloseBraceFillers)
	v.emit(token.Punctuator(token.KindCloseBrace, n.CloseBracePosition))
}

func (v *serializeVisitor) VisitConditional(n *ast.Conditional) {
	v.emitFillers(n.OpenerFillers)
	v.emit(token.Identifier(ast.ConditionalAntecedentOpener, n.OpenerPosition))
	n.Antecedent.Accept(v)
	(&n.Consequent).Accept(v)
	v.emitFillers(n.AlternativeOpenerFillers)
	if n.AlternativeOpenerPosition != nil {
		v.emit(token.Identifier(ast.ConditionalAlternativeOpener, *n.AlternativeOpenerPosition))
	}
	if n.Alternative != nil {
		n.Alternative.Accept(v)
	}
}

func (v *serializeVisitor) VisitFunctionDefinition(n *ast.FunctionDefinition) {
	v.emitFillers(n.OpenerFillers)
	v.emit(token.Identifier(ast.FunctionOpener, n.OpenerPosition))
	v.emitFillers(n.OpenParenthesisFillers)
	v.emit(token.Punctuator(token.KindOpenParenthesis, n.OpenParenthesisPosition))
	serializeCommaList(v, n.Parameters, n.CommasPositions, n.CommasFillers)
	v.emitFillers(n.CloseParenthesisFillers)
	v.emit(token.Punctuator(token.KindCloseParenthesis, n.CloseParenthesisPosition))
	v.emitFillers(n.ArrowFillers)
	v.emit(token.Punctuator(token.KindArrow, n.ArrowPosition))
	n.ReturnType.Accept(v)
	(&n.Body).Accept(v)
}

var _ ast.Visitor = (*serializeVisitor)(nil)
