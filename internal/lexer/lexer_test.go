package lexer_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/az-lang/az/internal/lexer"
	"github.com/az-lang/az/internal/token"
)

// canonical reassembles the exact source text a token slice was produced
// from, exercising the lossless round-trip invariant every tokenization
// must satisfy.
func canonical(tokens []token.Token) string {
	result := ""
	for _, tok := range tokens {
		result += tok.Content.Canonical()
	}
	return result
}

func TestTokenizeRoundTripsExactSource(t *testing.T) {
	sources := []string{
		"",
		"x;",
		"x = 1_I32;\n",
		"  a  +  b  ;\n// trailing comment\n",
		"/* a\nblock\ncomment */x;",
		"if a { b } else c;",
	}
	for _, source := range sources {
		tokens, err := lexer.Tokenize(source)
		require.NoError(t, err, source)
		assert.Equal(t, source, canonical(tokens), source)
	}
}

func TestTokenizeIdentifier(t *testing.T) {
	tokens, err := lexer.Tokenize("hello_World2;")
	require.NoError(t, err)
	require.NotEmpty(t, tokens)
	assert.Equal(t, token.KindIdentifier, tokens[0].Content.Kind)
	assert.Equal(t, "hello_World2", tokens[0].Content.Identifier)
}

func TestTokenizeNumericLiteral(t *testing.T) {
	tokens, err := lexer.Tokenize("1_I32;")
	require.NoError(t, err)
	require.NotEmpty(t, tokens)
	assert.Equal(t, token.KindNumericLiteral, tokens[0].Content.Kind)
	assert.Equal(t, "1", tokens[0].Content.NumericValue)
	assert.Equal(t, token.I32, tokens[0].Content.NumericType)
}

func TestTokenizeFloatingPointLiteral(t *testing.T) {
	tokens, err := lexer.Tokenize("0.5_F64;")
	require.NoError(t, err)
	require.NotEmpty(t, tokens)
	assert.Equal(t, token.KindNumericLiteral, tokens[0].Content.Kind)
	assert.Equal(t, token.FloatingPoint, tokens[0].Content.NumericKind)
	assert.Equal(t, token.F64, tokens[0].Content.NumericType)
}

func TestTokenizePunctuators(t *testing.T) {
	tokens, err := lexer.Tokenize("->=*{}:,.==>>=<<=!=-+;/")
	require.NoError(t, err)
	wantKinds := []token.Kind{
		token.KindArrow, token.KindAssignment, token.KindAsterisk,
		token.KindOpenBrace, token.KindCloseBrace, token.KindColon,
		token.KindComma, token.KindDot, token.KindEqualTo,
		token.KindGreaterThan, token.KindGreaterThanOrEqualTo,
		token.KindLowerThan, token.KindLowerThanOrEqualTo,
		token.KindNotEqualTo, token.KindMinus, token.KindPlus,
		token.KindSemicolon, token.KindSlash,
	}
	require.Len(t, tokens, len(wantKinds))
	for i, want := range wantKinds {
		assert.Equal(t, want, tokens[i].Content.Kind, "token %d", i)
	}
}

func TestTokenizeLineComment(t *testing.T) {
	tokens, err := lexer.Tokenize("// a comment\n")
	require.NoError(t, err)
	require.NotEmpty(t, tokens)
	assert.Equal(t, token.KindCommentLine, tokens[0].Content.Kind)
}

func TestTokenizeBlockComment(t *testing.T) {
	tokens, err := lexer.Tokenize("/* multi\nline */")
	require.NoError(t, err)
	require.NotEmpty(t, tokens)
	assert.Equal(t, token.KindCommentBlock, tokens[0].Content.Kind)
	assert.Len(t, tokens[0].Content.Lines, 2)
}

func TestTokenizeInvalidNumericTypeSuffixIsAnError(t *testing.T) {
	_, err := lexer.Tokenize("1_NotAType;")
	assert.Error(t, err)
}

// TestTokenizeSpansTileSourceWithoutGapOrOverlap exercises span coverage
// directly: every token's declared Position must start exactly where the
// previous one ended, or at character 0 of the next line when the previous
// token ended with "\n", so the spans tile the source with no gap and no
// overlap, independent of whether Canonical() text happens to agree.
func TestTokenizeSpansTileSourceWithoutGapOrOverlap(t *testing.T) {
	source := "a = 1_I32 + 2.5_F64;\n// comment\n/* block\ncomment */b.c(d, e);\n"
	tokens, err := lexer.Tokenize(source)
	require.NoError(t, err)
	require.NotEmpty(t, tokens)

	want := token.CharacterPosition{}
	wantLine := 0
	for i, tok := range tokens {
		assert.Equal(t, wantLine, tok.Position.StartLine, "token %d start line", i)
		assert.Equal(t, want, tok.Position.StartCharacter, "token %d start character", i)
		wantLine = tok.Position.EndLine
		want = tok.Position.EndCharacter
		if strings.HasSuffix(tok.Content.Canonical(), "\n") {
			wantLine++
			want = token.CharacterPosition{}
		}
	}
}
