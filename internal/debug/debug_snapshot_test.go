package debug_test

import (
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
	"github.com/stretchr/testify/require"

	"github.com/az-lang/az/internal/debug"
	"github.com/az-lang/az/internal/lexer"
	"github.com/az-lang/az/internal/parser"
)

// Dump's output is a developer-facing debugging aid, not part of the
// round-trip contract, so its exact layout is pinned with a snapshot
// rather than asserted field by field.
func TestDumpSnapshot(t *testing.T) {
	source := "Function(a: Int32, b: Int32) -> Int32 { if a { b } else { 0_I32 } };"
	tokens, err := lexer.Tokenize(source)
	require.NoError(t, err)
	script, err := parser.Parse(tokens)
	require.NoError(t, err)

	snaps.MatchSnapshot(t, debug.Dump(script))
}
