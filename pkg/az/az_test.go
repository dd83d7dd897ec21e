package az_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/az-lang/az/pkg/az"
)

func TestParseSourceRoundTripsThroughRender(t *testing.T) {
	source := "a = 1_I32 + 2_I32 * 3_I32;\n"

	script, err := az.ParseSource(source)
	require.NoError(t, err)
	assert.Equal(t, source, az.Render(script))

	tokens, err := az.Tokenize(source)
	require.NoError(t, err)
	reparsed, err := az.Parse(tokens)
	require.NoError(t, err)
	assert.Equal(t, source, az.Render(reparsed))
}

func TestParseSourceStopsAtFirstFailingStage(t *testing.T) {
	_, err := az.ParseSource("1_NotAType;")
	assert.Error(t, err)
}

func TestResetPositionsPreservesRenderedText(t *testing.T) {
	source := "Function(x: Int32) -> Int32 { x };"
	script, err := az.ParseSource(source)
	require.NoError(t, err)

	az.ResetPositions(script)
	assert.Equal(t, source, az.Render(script))
}

func TestSerializeMatchesTokenizeCanonicalForm(t *testing.T) {
	source := "f(a, b).c;"
	script, err := az.ParseSource(source)
	require.NoError(t, err)

	rendered := ""
	for _, tok := range az.Serialize(script) {
		rendered += tok.Content.Canonical()
	}
	assert.Equal(t, source, rendered)
}
