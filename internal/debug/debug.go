// Package debug renders tree nodes for trace-level logging and test
// diffing, replacing hand-rolled indentation logic with a general
// structured-value dumper.
package debug

import (
	"github.com/alecthomas/repr"

	"github.com/az-lang/az/internal/ast"
)

// Dump renders n's full field structure, recursing through every child
// node, for use in trace logs and test failure output.
func Dump(n ast.Node) string {
	return repr.String(n)
}
