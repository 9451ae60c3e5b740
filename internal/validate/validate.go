// Package validate is the core of the plotter: it turns the three raw text
// inputs (function, min bound, max bound) into either a plottable SampleSet
// or a set of field-scoped error messages. Nothing in here panics across
// the boundary and nothing is cached between requests.
package validate

import (
	"math"
	"strings"

	"github.com/funvibe/funplot/internal/config"
	"github.com/funvibe/funplot/internal/evaluator"
	"github.com/funvibe/funplot/internal/lexer"
	"github.com/funvibe/funplot/internal/parser"
	"github.com/funvibe/funplot/internal/pipeline"
)

// Bound error kinds. A blank Err means the bound is valid.
const (
	BoundErrEmpty   = "empty"
	BoundErrInvalid = "invalid"
)

// Bound is one endpoint of the plotting domain, parsed from a text field.
type Bound struct {
	Raw   string
	Value float64
	Err   string // "", BoundErrEmpty or BoundErrInvalid
}

// Valid reports whether the bound parsed cleanly.
func (b Bound) Valid() bool { return b.Err == "" }

// Interval is a validated (min, max) pair with Min strictly less than Max.
type Interval struct {
	Min float64
	Max float64
}

// SampleSet is the (x, y, text) triple handed to the rendering sink. X and
// Y always have equal length; Text is the original expression exactly as
// the user typed it, ^ and all.
type SampleSet struct {
	X    []float64
	Y    []float64
	Text string
}

// Title is the display string for the rendering sink.
func (s *SampleSet) Title() string { return config.TitlePrefix + s.Text }

// Report carries at most one message per field. An empty string means the
// field validated. The range error appears on both Min and Max.
type Report struct {
	Function string
	Min      string
	Max      string
}

// OK reports whether the pass produced no errors at all.
func (r Report) OK() bool { return r.Function == "" && r.Min == "" && r.Max == "" }

// Normalize rewrites the user-facing power operator ^ into the expression
// language's **. Display strings always keep the original form.
func Normalize(text string) string {
	return strings.ReplaceAll(text, config.UserPowerOperator, config.NativePowerOperator)
}

// ParseBound evaluates one bound field as a constant expression. Users may
// enter arithmetic forms like "2^3+1", so this runs the full lexer, parser
// and evaluator against an empty environment rather than strconv.
func ParseBound(raw string) Bound {
	b := Bound{Raw: raw}

	if strings.TrimSpace(raw) == "" {
		b.Err = BoundErrEmpty
		return b
	}

	expr, errs := parser.New(lexer.New(Normalize(raw))).Parse()
	if expr == nil || len(errs) > 0 {
		b.Err = BoundErrInvalid
		return b
	}

	result := evaluator.Eval(expr, evaluator.NewEnvironment())
	scalar, ok := result.(*evaluator.Scalar)
	if !ok {
		b.Err = BoundErrInvalid
		return b
	}

	// A bound must be a finite number. Overflowing exponents like 9^999
	// evaluate to Inf and fractional powers of negatives to NaN; neither
	// can anchor an interval.
	if math.IsInf(scalar.Value, 0) || math.IsNaN(scalar.Value) {
		b.Err = BoundErrInvalid
		return b
	}

	b.Value = scalar.Value
	return b
}

// ValidateRange validates the two bound fields independently (both are
// always checked, so both labels can fill in the same pass) and then the
// ordering between them. Equal bounds are rejected: a single-point domain
// is reported as a range error, not plotted.
func ValidateRange(minText, maxText string) (*Interval, Report) {
	ctx := pipeline.NewPlotContext("", minText, maxText)
	ctx = (&RangeProcessor{}).Process(ctx)

	report := Report{Min: ctx.MinErr, Max: ctx.MaxErr}
	if !ctx.HasInterval {
		return nil, report
	}
	return &Interval{Min: ctx.Min, Max: ctx.Max}, report
}

// Process runs a prepared context through the full cycle: range validation,
// the function emptiness check, and - only once the interval is known good -
// sampling and vectorized evaluation. On any failure the returned SampleSet
// is nil and the Report carries every applicable field message.
func Process(ctx *pipeline.PlotContext) (*SampleSet, Report) {
	p := pipeline.New(
		&RangeProcessor{},
		&FunctionProcessor{},
		&SampleProcessor{},
	)
	ctx = p.Run(ctx)

	report := Report{Function: ctx.FuncErr, Min: ctx.MinErr, Max: ctx.MaxErr}
	if ctx.Failed() {
		return nil, report
	}
	return &SampleSet{X: ctx.X, Y: ctx.Y, Text: ctx.FunctionText}, report
}

// Request is the plain-text entry point used when the caller has no
// interest in the request context itself.
func Request(functionText, minText, maxText string) (*SampleSet, Report) {
	return Process(pipeline.NewPlotContext(functionText, minText, maxText))
}
