package reset

import "github.com/az-lang/az/internal/pipeline"

// Processor is the pipeline's reset stage: it recomputes every position in
// ctx.Script in place, as if the tree were printed from scratch starting
// at line 0, character 0.
type Processor struct{}

func (Processor) Process(ctx *pipeline.Context) *pipeline.Context {
	log := pipeline.Logger().WithField("stage", "reset")
	ResetPositions(ctx.Script)
	log.Trace("reset complete")
	return ctx
}

var _ pipeline.Processor = Processor{}
