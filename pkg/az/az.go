// Package az is the public facade over the tokenizer, parser, reset
// walker and serializer, with no logic of its own. Every operation except
// Render is driven through the pipeline's stage composition so it gets the
// same stage-scoped logging; Render calls serializer.Render directly.
package az

import (
	"github.com/az-lang/az/internal/ast"
	"github.com/az-lang/az/internal/lexer"
	"github.com/az-lang/az/internal/parser"
	"github.com/az-lang/az/internal/pipeline"
	"github.com/az-lang/az/internal/reset"
	"github.com/az-lang/az/internal/serializer"
	"github.com/az-lang/az/internal/token"
)

// Script is the root of a parsed source file.
type Script = ast.Script

// Token is a single lexical unit, meaningful or trivia.
type Token = token.Token

// Tokenize lexes text into a lossless token stream: concatenating every
// token's canonical text reproduces text exactly.
func Tokenize(text string) ([]Token, error) {
	ctx := pipeline.New(lexer.Processor{}).Run(pipeline.NewContext(text))
	return ctx.Tokens, ctx.Err
}

// Parse builds a Script from a token stream produced by Tokenize.
func Parse(tokens []Token) (*Script, error) {
	ctx := pipeline.New(parser.Processor{}).Run(&pipeline.Context{Tokens: tokens})
	return ctx.Script, ctx.Err
}

// ParseSource runs the tokenize and parse stages as a single pipeline
// over source text, stopping at whichever stage fails first.
func ParseSource(source string) (*Script, error) {
	ctx := pipeline.New(lexer.Processor{}, parser.Processor{}).Run(pipeline.NewContext(source))
	return ctx.Script, ctx.Err
}

// Serialize turns a Script back into the token stream it represents.
func Serialize(script *Script) []Token {
	ctx := pipeline.New(serializer.Processor{}).Run(&pipeline.Context{Script: script})
	return ctx.Tokens
}

// Render serializes script and concatenates its tokens' canonical text.
func Render(script *Script) string {
	return serializer.Render(script)
}

// ResetPositions recomputes every position in script in place, as if it
// were printed from scratch starting at line 0, character 0.
func ResetPositions(script *Script) {
	pipeline.New(reset.Processor{}).Run(&pipeline.Context{Script: script})
}
