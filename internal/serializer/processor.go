package serializer

import "github.com/az-lang/az/internal/pipeline"

// Processor is the pipeline's serialize stage: it runs Serialize over
// ctx.Script and replaces ctx.Tokens with the resulting token stream.
type Processor struct{}

func (Processor) Process(ctx *pipeline.Context) *pipeline.Context {
	log := pipeline.Logger().WithField("stage", "serializer")
	tokens := Serialize(ctx.Script)
	log.WithField("tokens", len(tokens)).Trace("serialize complete")
	ctx.Tokens = tokens
	return ctx
}

var _ pipeline.Processor = Processor{}
