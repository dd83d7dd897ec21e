package serializer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/az-lang/az/internal/lexer"
	"github.com/az-lang/az/internal/parser"
	"github.com/az-lang/az/internal/serializer"
)

func TestRenderRoundTripsExactSource(t *testing.T) {
	sources := []string{
		"",
		"x;",
		"a = 1_I32 + 2_I32 * 3_I32;\n",
		"  a  +  b  ;\n// trailing comment\n",
		"/* a\nblock\ncomment */x;",
		"if a { b } else { c };",
		"if a { b };",
		"(a, b, c);",
		"(a,);",
		"();",
		"f(a, b);",
		"a.b(c);",
		"Function(x: Int32) -> Int32 { x };",
		"{ a; b };",
	}
	for _, source := range sources {
		tokens, err := lexer.Tokenize(source)
		require.NoError(t, err, source)
		script, err := parser.Parse(tokens)
		require.NoError(t, err, source)
		assert.Equal(t, source, serializer.Render(script), source)
	}
}

func TestSerializeProducesSameCanonicalTokensAsTokenize(t *testing.T) {
	source := "a = 1_I32 + 2_I32 * 3_I32;\n"
	tokens, err := lexer.Tokenize(source)
	require.NoError(t, err)
	script, err := parser.Parse(tokens)
	require.NoError(t, err)

	serialized := serializer.Serialize(script)
	require.Len(t, serialized, len(tokens))
	for i := range tokens {
		assert.Equal(t, tokens[i].Content.Canonical(), serialized[i].Content.Canonical(), "token %d", i)
	}
}
