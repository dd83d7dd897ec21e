package parser

import "github.com/az-lang/az/internal/pipeline"

// Processor is the pipeline's parse stage: it runs Parse over ctx.Tokens
// and populates ctx.Script, or records the first parsing error.
type Processor struct{}

func (Processor) Process(ctx *pipeline.Context) *pipeline.Context {
	log := pipeline.Logger().WithField("stage", "parser")
	script, err := Parse(ctx.Tokens)
	if err != nil {
		log.WithError(err).Debug("parse failed")
		ctx.Err = err
		return ctx
	}
	log.WithField("statements", len(script.Statements)).Trace("parse complete")
	ctx.Script = script
	return ctx
}

var _ pipeline.Processor = Processor{}
