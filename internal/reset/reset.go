// Package reset recomputes every position recorded in a tree, walking it
// in source order and advancing a running line/byte/utf8 cursor by the
// canonical width of each token and filler it passes over. It is how a
// tree built or edited away from its original text gets a consistent set
// of positions again before being serialized or rendered.
package reset

import (
	"unicode/utf8"

	"github.com/az-lang/az/internal/ast"
	"github.com/az-lang/az/internal/token"
)

// cursor tracks the line index and in-line byte/utf8 offset the walk has
// reached so far.
type cursor struct {
	line int
	pos  token.CharacterPosition
}

func byteSize(s string) token.ByteIndex { return token.ByteIndex(len(s)) }
func utf8Size(s string) token.Utf8Index { return token.Utf8Index(utf8.RuneCountInString(s)) }

func (c *cursor) advance(s string) {
	c.pos.Byte = c.pos.Byte.Add(byteSize(s))
	c.pos.Utf8 = c.pos.Utf8.Add(utf8Size(s))
}

func (c *cursor) newline() {
	c.line++
	c.pos = token.CharacterPosition{}
}

// emit advances the cursor past s, which must not itself contain a
// newline (true of every punctuator, keyword, identifier and numeric
// literal spelling in this grammar), and returns the span it occupied.
func (c *cursor) emit(s string) token.SubstringPosition {
	start := c.pos
	startLine := c.line
	c.advance(s)
	return token.SubstringPosition{
		StartLine:      startLine,
		EndLine:        c.line,
		StartCharacter: start,
		EndCharacter:   c.pos,
	}
}

// ResetPositions recomputes every Position field in script, including
// fillers, from scratch, as if the tree were printed starting at line 0,
// character 0. Use it after constructing or mutating a tree by hand,
// before serializing or rendering it, so its positions describe the text
// it would actually produce rather than stale or zero-value spans.
func ResetPositions(script *ast.Script) {
	v := &resetVisitor{cur: &cursor{}}
	script.Accept(v)
}

func resetFillers(fillers []ast.Filler, cur *cursor) {
	for i := range fillers {
		f := &fillers[i]
		f.Position.StartLine = cur.line
		f.Position.StartCharacter = cur.pos
		switch f.Content.Kind {
		case ast.FillerCommentBlock:
			lines := f.Content.Lines
			switch len(lines) {
			case 0:
				// Unreachable: a comment block always has at least one line.
			case 1:
				cur.advance(lines[0])
			default:
				last := lines[len(lines)-1]
				cur.line += len(lines) - 1
				cur.pos = token.CharacterPosition{Byte: byteSize(last), Utf8: utf8Size(last)}
			}
		case ast.FillerCommentLine:
			cur.advance(f.Content.Text)
			f.Position.EndLine = cur.line
			f.Position.EndCharacter = cur.pos
			cur.newline()
			continue
		case ast.FillerNewline:
			cur.advance("\n")
			f.Position.EndLine = cur.line
			f.Position.EndCharacter = cur.pos
			cur.newline()
			continue
		case ast.FillerWhitespace:
			cur.advance(f.Content.Text)
		}
		f.Position.EndLine = cur.line
		f.Position.EndCharacter = cur.pos
	}
}

// resetVisitor implements ast.Visitor, rewriting positions in place as it
// descends the tree in the order its tokens would be emitted.
type resetVisitor struct {
	cur *cursor
}

var binaryOperatorCanonical = map[ast.BinaryOperator]string{
	ast.BinaryAddition:             "+",
	ast.BinarySubtraction:          "-",
	ast.BinaryMultiplication:       "*",
	ast.BinaryDivision:             "/",
	ast.BinaryEqualTo:              "==",
	ast.BinaryNotEqualTo:           "!=",
	ast.BinaryGreaterThan:          ">",
	ast.BinaryGreaterThanOrEqualTo: ">=",
	ast.BinaryLowerThan:            "<",
	ast.BinaryLowerThanOrEqualTo:   "<=",
}

var unaryOperatorCanonical = map[ast.UnaryOperator]string{
	ast.UnaryNegation: "-",
}

func (v *resetVisitor) VisitScript(n *ast.Script) {
	for _, stmt := range n.Statements {
		stmt.Accept(v)
	}
	resetFillers(n.Fillers, v.cur)
}

func (v *resetVisitor) VisitExpressionStatement(n *ast.ExpressionStatement) {
	n.Expression.Accept(v)
	resetFillers(n.SemicolonFillers, v.cur)
	n.SemicolonPosition = v.cur.emit(";")
}

func (v *resetVisitor) VisitIdentifier(n *ast.Identifier) {
	resetFillers(n.Fillers, v.cur)
	n.Position = v.cur.emit(n.String)
}

func (v *resetVisitor) VisitNumericLiteral(n *ast.NumericLiteral) {
	resetFillers(n.Fillers, v.cur)
	n.Position = v.cur.emit(n.Value + "_" + n.Type.String())
}

func (v *resetVisitor) VisitAnnotatedIdentifier(n *ast.AnnotatedIdentifier) {
	n.Identifier.Accept(v)
	resetFillers(n.OperatorFillers, v.cur)
	n.OperatorPosition = v.cur.emit(":")
	n.Annotation.Accept(v)
}

func (v *resetVisitor) VisitAssignment(n *ast.Assignment) {
	n.Target.Accept(v)
	resetFillers(n.OperatorFillers, v.cur)
	n.OperatorPosition = v.cur.emit("=")
	n.Value.Accept(v)
}

func (v *resetVisitor) VisitBinaryArithmeticOperation(n *ast.BinaryArithmeticOperation) {
	n.Left.Accept(v)
	resetFillers(n.OperatorFillers, v.cur)
	n.OperatorPosition = v.cur.emit(binaryOperatorCanonical[n.Operator])
	n.Right.Accept(v)
}

func (v *resetVisitor) VisitBinaryComparison(n *ast.BinaryComparison) {
	n.Left.Accept(v)
	resetFillers(n.OperatorFillers, v.cur)
	n.OperatorPosition = v.cur.emit(binaryOperatorCanonical[n.Operator])
	n.Right.Accept(v)
}

func (v *resetVisitor) VisitUnaryArithmeticOperation(n *ast.UnaryArithmeticOperation) {
	resetFillers(n.OperatorFillers, v.cur)
	n.OperatorPosition = v.cur.emit(unaryOperatorCanonical[n.Operator])
	n.Operand.Accept(v)
}

func (v *resetVisitor) VisitMemberAccess(n *ast.MemberAccess) {
	n.Object.Accept(v)
	resetFillers(n.OperatorFillers, v.cur)
	n.OperatorPosition = v.cur.emit(".")
	n.Member.Accept(v)
}

func (v *resetVisitor) VisitGrouping(n *ast.Grouping) {
	resetFillers(n.OpenParenthesisFillers, v.cur)
	n.OpenParenthesisPosition = v.cur.emit("(")
	n.Expression.Accept(v)
	resetFillers(n.CloseParenthesisFillers, v.cur)
	n.CloseParenthesisPosition = v.cur.emit(")")
}

// resetCommaList replays a parenthesized, comma-separated element list:
// either every element is followed by a comma, or every element but the
// last is. It is shared by Tuple, Call and FunctionDefinition, which all
// store their lists in this same shape.
func resetCommaList(v *resetVisitor, elements []ast.Expression, commasPositions []token.SubstringPosition, commasFillers [][]ast.Filler) {
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
		resetFillers(commasFillers[i], v.cur)
		commasPositions[i] = v.cur.emit(",")
	}
	if !trailingComma {
		elements[lastIndex].Accept(v)
	}
}

func (v *resetVisitor) VisitTuple(n *ast.Tuple) {
	resetFillers(n.OpenParenthesisFillers, v.cur)
	n.OpenParenthesisPosition = v.cur.emit("(")
	resetCommaList(v, n.Elements, n.CommasPositions, n.CommasFillers)
	resetFillers(n.CloseParenthesisFillers, v.cur)
	n.CloseParenthesisPosition = v.cur.emit(")")
}

func (v *resetVisitor) VisitCall(n *ast.Call) {
	n.Callable.Accept(v)
	resetFillers(n.OpenParenthesisFillers, v.cur)
	n.OpenParenthesisPosition = v.cur.emit("(")
	resetCommaList(v, n.Arguments, n.CommasPositions, n.CommasFillers)
	resetFillers(n.CloseParenthesisFillers, v.cur)
	n.CloseParenthesisPosition = v.cur.emit(")")
}

func (v *resetVisitor) VisitBlock(n *ast.Block) {
	resetFillers(n.OpenBraceFillers, v.cur)
	n.OpenBracePosition = v.cur.emit("{")
	for _, stmt := range n.Statements {
		stmt.Accept(v)
	}
	if n.Expression != nil {
		n.Expression.Accept(v)
	}
	resetFillers(n.CloseBraceFillers, v.cur)
	n.CloseBracePosition = v.cur.emit("}")
}

func (v *resetVisitor) VisitConditional(n *ast.Conditional) {
	resetFillers(n.OpenerFillers, v.cur)
	n.OpenerPosition = v.cur.emit(ast.ConditionalAntecedentOpener)
	n.Antecedent.Accept(v)
	(&n.Consequent).Accept(v)
	resetFillers(n.AlternativeOpenerFillers, v.cur)
	if n.AlternativeOpenerPosition != nil {
		position := v.cur.emit(ast.ConditionalAlternativeOpener)
		*n.AlternativeOpenerPosition = position
	}
	if n.Alternative != nil {
		n.Alternative.Accept(v)
	}
}

func (v *resetVisitor) VisitFunctionDefinition(n *ast.FunctionDefinition) {
	resetFillers(n.OpenerFillers, v.cur)
	n.OpenerPosition = v.cur.emit(ast.FunctionOpener)
	resetFillers(n.OpenParenthesisFillers, v.cur)
	n.OpenParenthesisPosition = v.cur.emit("(")
	resetCommaList(v, n.Parameters, n.CommasPositions, n.CommasFillers)
	resetFillers(n.CloseParenthesisFillers, v.cur)
	n.CloseParenthesisPosition = v.cur.emit(")")
	resetFillers(n.ArrowFillers, v.cur)
	n.ArrowPosition = v.cur.emit("->")
	n.ReturnType.Accept(v)
	(&n.Body).Accept(v)
}

var _ ast.Visitor = (*resetVisitor)(nil)
