package lexer

import "github.com/az-lang/az/internal/pipeline"

// Processor is the pipeline's tokenize stage: it runs Tokenize over
// ctx.Source and populates ctx.Tokens, or records the first lexical error.
type Processor struct{}

func (Processor) Process(ctx *pipeline.Context) *pipeline.Context {
	log := pipeline.Logger().WithField("stage", "lexer")
	tokens, err := Tokenize(ctx.Source)
	if err != nil {
		log.WithError(err).Debug("tokenize failed")
		ctx.Err = err
		return ctx
	}
	log.WithField("tokens", len(tokens)).Trace("tokenize complete")
	ctx.Tokens = tokens
	return ctx
}

var _ pipeline.Processor = Processor{}
