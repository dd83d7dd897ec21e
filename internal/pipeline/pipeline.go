package pipeline

// Pipeline is a sequence of processing stages run in order.
type Pipeline struct {
	processors []Processor
}

// New builds a pipeline from stages, run in the given order.
func New(processors ...Processor) *Pipeline {
	return &Pipeline{processors: processors}
}

// Run executes every stage in order, short-circuiting once a stage records
// an error on the context.
func (p *Pipeline) Run(initial *Context) *Context {
	ctx := initial
	for _, processor := range p.processors {
		if ctx.Failed() {
			break
		}
		ctx = processor.Process(ctx)
	}
	return ctx
}
