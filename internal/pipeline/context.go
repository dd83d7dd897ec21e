// Package pipeline composes processing stages (tokenize, parse, reset,
// serialize) into a single sequential run, and owns the structured logger
// every stage logs through.
package pipeline

import (
	"github.com/az-lang/az/internal/ast"
	"github.com/az-lang/az/internal/token"
)

// Context carries the in-flight artifacts of one source file as it moves
// through the pipeline's stages. Each stage reads the fields the previous
// stage populated and fills in its own, stopping the run at the first Err.
type Context struct {
	Source string

	Tokens []token.Token
	Script *ast.Script

	Err error
}

// NewContext starts a pipeline run from raw source text.
func NewContext(source string) *Context {
	return &Context{Source: source}
}

// Failed reports whether an earlier stage has already recorded an error.
func (c *Context) Failed() bool {
	return c.Err != nil
}
