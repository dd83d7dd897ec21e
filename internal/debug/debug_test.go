package debug_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/az-lang/az/internal/debug"
	"github.com/az-lang/az/internal/lexer"
	"github.com/az-lang/az/internal/parser"
)

func TestDumpContainsIdentifierName(t *testing.T) {
	tokens, err := lexer.Tokenize("hello;")
	require.NoError(t, err)
	script, err := parser.Parse(tokens)
	require.NoError(t, err)

	dump := debug.Dump(script)
	assert.Contains(t, dump, "hello")
}
