package pipeline

// Processor is one stage of the pipeline: it reads whatever fields earlier
// stages populated on ctx, does its work, and returns the (possibly
// mutated) context. A stage that finds ctx already failed should normally
// pass it through unchanged rather than attempt to run.
type Processor interface {
	Process(ctx *Context) *Context
}
