package validate

import (
	"strings"

	"github.com/funvibe/funplot/internal/config"
	"github.com/funvibe/funplot/internal/evaluator"
	"github.com/funvibe/funplot/internal/lexer"
	"github.com/funvibe/funplot/internal/parser"
	"github.com/funvibe/funplot/internal/pipeline"
)

// RangeProcessor parses both bound fields and checks their ordering. Both
// fields are always parsed so that both labels can carry a message in the
// same pass; only when both are valid is the min < max check applied, and
// a violation lands on both fields.
type RangeProcessor struct{}

func (rp *RangeProcessor) Process(ctx *pipeline.PlotContext) *pipeline.PlotContext {
	minBound := ParseBound(ctx.MinText)
	maxBound := ParseBound(ctx.MaxText)

	switch minBound.Err {
	case BoundErrEmpty:
		ctx.MinErr = config.MinValueEmptyError
	case BoundErrInvalid:
		ctx.MinErr = config.MinValueIncorrectError
	}
	switch maxBound.Err {
	case BoundErrEmpty:
		ctx.MaxErr = config.MaxValueEmptyError
	case BoundErrInvalid:
		ctx.MaxErr = config.MaxValueIncorrectError
	}

	if !minBound.Valid() || !maxBound.Valid() {
		return ctx
	}

	if maxBound.Value <= minBound.Value {
		ctx.MinErr = config.MinMaxError
		ctx.MaxErr = config.MinMaxError
		return ctx
	}

	ctx.HasInterval = true
	ctx.Min = minBound.Value
	ctx.Max = maxBound.Value
	return ctx
}

// FunctionProcessor performs the emptiness check on the function field.
// This runs regardless of the range stage's outcome, so an empty function
// and an invalid range are reported together. Syntax and evaluation faults
// are left to the sampling stage, which needs a valid interval anyway.
type FunctionProcessor struct{}

func (fp *FunctionProcessor) Process(ctx *pipeline.PlotContext) *pipeline.PlotContext {
	if strings.TrimSpace(ctx.FunctionText) == "" {
		ctx.FuncErr = config.FuncValueEmptyError
	}
	return ctx
}

// SampleProcessor generates the x domain and evaluates the function over it
// in one vectorized pass. It only runs when the earlier stages produced a
// valid interval and a non-empty function; every lex, parse or evaluation
// fault is normalized into the single function-incorrect message.
type SampleProcessor struct{}

func (sp *SampleProcessor) Process(ctx *pipeline.PlotContext) *pipeline.PlotContext {
	if ctx.Failed() || !ctx.HasInterval {
		return ctx
	}

	x := evaluator.Linspace(ctx.Min, ctx.Max, config.SampleCount)

	expr, errs := parser.New(lexer.New(Normalize(ctx.FunctionText))).Parse()
	if expr == nil || len(errs) > 0 {
		ctx.FuncErr = config.FuncValueIncorrectError
		return ctx
	}

	env := evaluator.NewEnvironment()
	env.Set(config.VariableName, &evaluator.Vector{Values: x})

	result := evaluator.Eval(expr, env)
	y, ok := evaluator.Broadcast(result, len(x))
	if !ok {
		ctx.FuncErr = config.FuncValueIncorrectError
		return ctx
	}

	ctx.X = x
	ctx.Y = y
	return ctx
}
