// Package pipeline runs a plot request through its processing stages. Every
// stage sees the whole context and appends its own field errors; the run
// never stops early, so one pass can report the function field, both bound
// fields and the range check together.
package pipeline

import (
	"github.com/google/uuid"
)

// PlotContext is the state threaded through one validate-and-plot cycle.
// It is created fresh per request and never reused.
type PlotContext struct {
	// ID tags the request in debug logs.
	ID uuid.UUID

	// Raw user input.
	FunctionText string
	MinText      string
	MaxText      string

	// Field-scoped error messages; empty string means no error. The range
	// error lands on both MinErr and MaxErr.
	FuncErr string
	MinErr  string
	MaxErr  string

	// Interval produced by the range stage.
	HasInterval bool
	Min         float64
	Max         float64

	// Sample set produced by the sampling stage.
	X []float64
	Y []float64
}

func NewPlotContext(functionText, minText, maxText string) *PlotContext {
	return &PlotContext{
		ID:           uuid.New(),
		FunctionText: functionText,
		MinText:      minText,
		MaxText:      maxText,
	}
}

// Failed reports whether any field collected an error.
func (ctx *PlotContext) Failed() bool {
	return ctx.FuncErr != "" || ctx.MinErr != "" || ctx.MaxErr != ""
}

// Processor is a single validation or sampling stage.
type Processor interface {
	Process(ctx *PlotContext) *PlotContext
}

// Pipeline represents a sequence of processing stages.
type Pipeline struct {
	processors []Processor
}

func New(processors ...Processor) *Pipeline {
	return &Pipeline{processors: processors}
}

// Run executes the pipeline.
func (p *Pipeline) Run(initialCtx *PlotContext) *PlotContext {
	ctx := initialCtx
	for _, processor := range p.processors {
		ctx = processor.Process(ctx)
		// Continue on errors so every field's message is collected in a
		// single pass; later stages decide for themselves what they need.
	}
	return ctx
}
