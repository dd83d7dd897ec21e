package parser_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/az-lang/az/internal/ast"
	"github.com/az-lang/az/internal/lexer"
	"github.com/az-lang/az/internal/parser"
)

func mustParse(t *testing.T, source string) *ast.Script {
	t.Helper()
	tokens, err := lexer.Tokenize(source)
	require.NoError(t, err)
	script, err := parser.Parse(tokens)
	require.NoError(t, err)
	return script
}

func singleExpression(t *testing.T, source string) ast.Expression {
	t.Helper()
	script := mustParse(t, source)
	require.Len(t, script.Statements, 1)
	stmt, ok := script.Statements[0].(*ast.ExpressionStatement)
	require.True(t, ok)
	return stmt.Expression
}

func TestParseIdentifierStatement(t *testing.T) {
	expr := singleExpression(t, "x;")
	ident, ok := expr.(*ast.Identifier)
	require.True(t, ok)
	assert.Equal(t, "x", ident.String)
}

func TestParseArithmeticPrecedence(t *testing.T) {
	// "1 + 2 * 3" must bind as "1 + (2 * 3)" since * binds tighter than +.
	expr := singleExpression(t, "1_I32 + 2_I32 * 3_I32;")
	add, ok := expr.(*ast.BinaryArithmeticOperation)
	require.True(t, ok)
	assert.Equal(t, ast.BinaryAddition, add.Operator)

	_, leftIsLiteral := add.Left.(*ast.NumericLiteral)
	assert.True(t, leftIsLiteral)

	mul, ok := add.Right.(*ast.BinaryArithmeticOperation)
	require.True(t, ok)
	assert.Equal(t, ast.BinaryMultiplication, mul.Operator)
}

func TestParseAssignmentIsRightAssociative(t *testing.T) {
	// "a = b = c" must bind as "a = (b = c)".
	expr := singleExpression(t, "a = b = c;")
	outer, ok := expr.(*ast.Assignment)
	require.True(t, ok)
	_, targetIsIdentifier := outer.Target.(*ast.Identifier)
	assert.True(t, targetIsIdentifier)

	inner, ok := outer.Value.(*ast.Assignment)
	require.True(t, ok)
	_, innerTargetIsIdentifier := inner.Target.(*ast.Identifier)
	assert.True(t, innerTargetIsIdentifier)
}

func TestParseAnnotatedIdentifier(t *testing.T) {
	expr := singleExpression(t, "x: Int32;")
	annotated, ok := expr.(*ast.AnnotatedIdentifier)
	require.True(t, ok)
	assert.Equal(t, "x", annotated.Identifier.String)
	annotation, ok := annotated.Annotation.(*ast.Identifier)
	require.True(t, ok)
	assert.Equal(t, "Int32", annotation.String)
}

func TestParseGroupingVersusSingleElementTuple(t *testing.T) {
	grouping := singleExpression(t, "(a);")
	_, isGrouping := grouping.(*ast.Grouping)
	assert.True(t, isGrouping)

	tuple := singleExpression(t, "(a,);")
	tupleExpr, isTuple := tuple.(*ast.Tuple)
	require.True(t, isTuple)
	assert.Len(t, tupleExpr.Elements, 1)
	assert.Len(t, tupleExpr.CommasPositions, 1)
}

func TestParseEmptyTuple(t *testing.T) {
	expr := singleExpression(t, "();")
	tuple, ok := expr.(*ast.Tuple)
	require.True(t, ok)
	assert.Empty(t, tuple.Elements)
	assert.Empty(t, tuple.CommasPositions)
}

func TestParseMultiElementTuple(t *testing.T) {
	expr := singleExpression(t, "(a, b, c);")
	tuple, ok := expr.(*ast.Tuple)
	require.True(t, ok)
	assert.Len(t, tuple.Elements, 3)
	assert.Len(t, tuple.CommasPositions, 2)
}

func TestParseCallWithArguments(t *testing.T) {
	expr := singleExpression(t, "f(a, b);")
	call, ok := expr.(*ast.Call)
	require.True(t, ok)
	callee, ok := call.Callable.(*ast.Identifier)
	require.True(t, ok)
	assert.Equal(t, "f", callee.String)
	assert.Len(t, call.Arguments, 2)
}

func TestParseCallAndMemberAccessAssociateLeftToRight(t *testing.T) {
	// "a.b(c)" is a call of the member "a.b", not a member access on "a"
	// of the call "b(c)", since Call and MemberAccess share precedence 6
	// and associate left to right.
	expr := singleExpression(t, "a.b(c);")
	call, ok := expr.(*ast.Call)
	require.True(t, ok)
	member, ok := call.Callable.(*ast.MemberAccess)
	require.True(t, ok)
	object, ok := member.Object.(*ast.Identifier)
	require.True(t, ok)
	assert.Equal(t, "a", object.String)
	assert.Equal(t, "b", member.Member.String)
}

func TestParseConditionalWithAlternative(t *testing.T) {
	expr := singleExpression(t, "if a { b } else { c };")
	conditional, ok := expr.(*ast.Conditional)
	require.True(t, ok)
	_, antecedentIsIdentifier := conditional.Antecedent.(*ast.Identifier)
	assert.True(t, antecedentIsIdentifier)
	require.NotNil(t, conditional.AlternativeOpenerPosition)
	require.NotNil(t, conditional.Alternative)
}

func TestParseConditionalWithoutAlternative(t *testing.T) {
	expr := singleExpression(t, "if a { b };")
	conditional, ok := expr.(*ast.Conditional)
	require.True(t, ok)
	assert.Nil(t, conditional.AlternativeOpenerPosition)
	assert.Nil(t, conditional.Alternative)
}

func TestParseFunctionDefinition(t *testing.T) {
	expr := singleExpression(t, "Function(x: Int32) -> Int32 { x };")
	def, ok := expr.(*ast.FunctionDefinition)
	require.True(t, ok)
	require.Len(t, def.Parameters, 1)
	_, paramIsAnnotated := def.Parameters[0].(*ast.AnnotatedIdentifier)
	assert.True(t, paramIsAnnotated)
	returnType, ok := def.ReturnType.(*ast.Identifier)
	require.True(t, ok)
	assert.Equal(t, "Int32", returnType.String)
}

func TestParseFunctionDefinitionRejectsUnannotatedParameter(t *testing.T) {
	tokens, err := lexer.Tokenize("Function(n) -> Int32 { n };")
	require.NoError(t, err)
	_, err = parser.Parse(tokens)
	require.Error(t, err)
	_, isUnexpectedExpression := err.(*parser.UnexpectedExpression)
	assert.True(t, isUnexpectedExpression)
}

func TestParseBlockTrailingExpressionHasNoSemicolon(t *testing.T) {
	expr := singleExpression(t, "{ a; b };")
	block, ok := expr.(*ast.Block)
	require.True(t, ok)
	assert.Len(t, block.Statements, 1)
	require.NotNil(t, block.Expression)
	_, trailingIsIdentifier := block.Expression.(*ast.Identifier)
	assert.True(t, trailingIsIdentifier)
}

func TestParseUnaryNegationBindsTighterThanAddition(t *testing.T) {
	expr := singleExpression(t, "-a + b;")
	add, ok := expr.(*ast.BinaryArithmeticOperation)
	require.True(t, ok)
	_, leftIsNegation := add.Left.(*ast.UnaryArithmeticOperation)
	assert.True(t, leftIsNegation)
}

func TestParseMissingSemicolonIsReported(t *testing.T) {
	tokens, err := lexer.Tokenize("a")
	require.NoError(t, err)
	_, err = parser.Parse(tokens)
	require.Error(t, err)
	_, isOutOfTokens := err.(*parser.OutOfTokens)
	assert.True(t, isOutOfTokens)
}

func TestParseUnclosedParenthesisIsReported(t *testing.T) {
	tokens, err := lexer.Tokenize("(a, b;")
	require.NoError(t, err)
	_, err = parser.Parse(tokens)
	require.Error(t, err)
}

func TestParseUnclosedBraceIsReported(t *testing.T) {
	tokens, err := lexer.Tokenize("{ a;")
	require.NoError(t, err)
	_, err = parser.Parse(tokens)
	require.Error(t, err)
}
