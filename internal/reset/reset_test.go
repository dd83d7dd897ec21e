package reset_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/az-lang/az/internal/ast"
	"github.com/az-lang/az/internal/lexer"
	"github.com/az-lang/az/internal/parser"
	"github.com/az-lang/az/internal/reset"
	"github.com/az-lang/az/internal/serializer"
)

// parse tokenizes and parses source, failing the test on any error.
func parse(t *testing.T, source string) *ast.Script {
	t.Helper()
	tokens, err := lexer.Tokenize(source)
	require.NoError(t, err)
	script, err := parser.Parse(tokens)
	require.NoError(t, err)
	return script
}

// Since a fresh parse already assigns positions consistent with its
// source, resetting those same positions from scratch should reproduce
// them exactly. Parsing the same source twice yields two structurally
// identical trees; running ResetPositions on one of them must leave it
// equal to the untouched other.
func TestResetPositionsReproducesFreshParsePositions(t *testing.T) {
	sources := []string{
		"x;",
		"a = 1_I32 + 2_I32 * 3_I32;\n",
		"  a  +  b  ;\n// trailing comment\n",
		"/* a\nblock\ncomment */x;",
		"if a { b } else { c };",
		"(a, b, c);",
		"f(a, b);",
		"Function(x: Int32) -> Int32 { x };",
		"{ a; b };",
	}
	for _, source := range sources {
		untouched := parse(t, source)
		resetCopy := parse(t, source)
		reset.ResetPositions(resetCopy)
		assert.Equal(t, untouched, resetCopy, source)
	}
}

// A tree's rendered text is a function of its structure, not of position
// metadata: ResetPositions recomputes positions only, so rendering before
// and after must still agree with the original source text.
func TestResetPositionsLeavesRenderedTextMatchingSource(t *testing.T) {
	sources := []string{
		"x;",
		"a = 1_I32 + 2_I32 * 3_I32;\n",
		"  a  +  b  ;\n// trailing comment\n",
		"if a { b } else { c };",
		"Function(x: Int32) -> Int32 { x };",
	}
	for _, source := range sources {
		script := parse(t, source)
		require.Equal(t, source, serializer.Render(script), source)

		reset.ResetPositions(script)
		assert.Equal(t, source, serializer.Render(script), source)
	}
}
