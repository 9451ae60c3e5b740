package validate_test

import (
	"math"
	"testing"

	"github.com/funvibe/funplot/internal/config"
	"github.com/funvibe/funplot/internal/validate"
)

func TestValidateRange(t *testing.T) {
	testCases := []struct {
		name    string
		minText string
		maxText string
		min     float64
		max     float64
	}{
		{"integers", "-10", "10", -10, 10},
		{"floats", "-12.2", "0.5", -12.2, 0.5},
		{"arithmetic_bounds", "2^3+1", "2^4", 9, 16},
		{"caret_exponent", "1^2", "13^2", 1, 169},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			interval, report := validate.ValidateRange(tc.minText, tc.maxText)
			if !report.OK() {
				t.Fatalf("unexpected errors: %+v", report)
			}
			if interval == nil {
				t.Fatal("expected an interval")
			}
			if interval.Min != tc.min || interval.Max != tc.max {
				t.Errorf("expected (%v, %v), got (%v, %v)", tc.min, tc.max, interval.Min, interval.Max)
			}
		})
	}
}

func TestValidateRangeFieldErrors(t *testing.T) {
	testCases := []struct {
		name    string
		minText string
		maxText string
		minErr  string
		maxErr  string
	}{
		{"both_empty", "", "", config.MinValueEmptyError, config.MaxValueEmptyError},
		{"min_empty", "", "10", config.MinValueEmptyError, ""},
		{"max_empty", "-10", "", "", config.MaxValueEmptyError},
		{"whitespace_only", "   ", "\t", config.MinValueEmptyError, config.MaxValueEmptyError},
		{"min_malformed", "abc", "10", config.MinValueIncorrectError, ""},
		{"max_malformed", "-10", "1.2.3", "", config.MaxValueIncorrectError},
		{"both_malformed", "-", "+", config.MinValueIncorrectError, config.MaxValueIncorrectError},
		{"variable_in_bound", "x", "10", config.MinValueIncorrectError, ""},
		{"overflow_min", "-9^999", "10", config.MinValueIncorrectError, ""},
		{"nan_max", "-10", "(0-1)^0.5", "", config.MaxValueIncorrectError},
		{"inverted", "10", "-10", config.MinMaxError, config.MinMaxError},
		{"equal_bounds", "5", "5", config.MinMaxError, config.MinMaxError},
		{"equal_via_arithmetic", "2+3", "5", config.MinMaxError, config.MinMaxError},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			interval, report := validate.ValidateRange(tc.minText, tc.maxText)
			if interval != nil {
				t.Fatalf("expected no interval, got (%v, %v)", interval.Min, interval.Max)
			}
			if report.Min != tc.minErr {
				t.Errorf("min: expected %q, got %q", tc.minErr, report.Min)
			}
			if report.Max != tc.maxErr {
				t.Errorf("max: expected %q, got %q", tc.maxErr, report.Max)
			}
		})
	}
}

func TestRequestSpecExample(t *testing.T) {
	set, report := validate.Request("x^2+2", "-10", "10")
	if !report.OK() {
		t.Fatalf("unexpected errors: %+v", report)
	}
	if set == nil {
		t.Fatal("expected a sample set")
	}

	if len(set.X) != config.SampleCount || len(set.Y) != config.SampleCount {
		t.Fatalf("expected %d samples, got %d/%d", config.SampleCount, len(set.X), len(set.Y))
	}
	if set.X[0] != -10 || set.X[len(set.X)-1] != 10 {
		t.Errorf("domain endpoints wrong: %v .. %v", set.X[0], set.X[len(set.X)-1])
	}
	for i, x := range set.X {
		want := x*x + 2
		if math.Abs(set.Y[i]-want) > 1e-9 {
			t.Fatalf("y[%d]: expected %v, got %v", i, want, set.Y[i])
		}
	}

	// The title must echo the original text, never the normalized ** form.
	if got, want := set.Title(), "f(x) = x^2+2"; got != want {
		t.Errorf("expected title %q, got %q", want, got)
	}
}

func TestRequestConstantFunctionBroadcasts(t *testing.T) {
	set, report := validate.Request("5", "-3", "7")
	if !report.OK() || set == nil {
		t.Fatalf("unexpected failure: %+v", report)
	}
	if len(set.Y) != len(set.X) {
		t.Fatalf("expected equal lengths, got %d/%d", len(set.X), len(set.Y))
	}
	for i, y := range set.Y {
		if y != 5.0 {
			t.Fatalf("y[%d]: expected 5.0, got %v", i, y)
		}
	}
}

func TestRequestFunctionErrors(t *testing.T) {
	testCases := []struct {
		name         string
		functionText string
		expected     string
	}{
		{"empty", "", config.FuncValueEmptyError},
		{"whitespace_only", "  \t", config.FuncValueEmptyError},
		{"unknown_identifier", "z^2+2", config.FuncValueIncorrectError},
		{"gibberish", "asdwrewfewf", config.FuncValueIncorrectError},
		{"dangling_operator", "x+", config.FuncValueIncorrectError},
		{"adjacent_values", "2x", config.FuncValueIncorrectError},
		{"constant_division_by_zero", "1/0", config.FuncValueIncorrectError},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			set, report := validate.Request(tc.functionText, "-10", "10")
			if set != nil {
				t.Fatal("expected no sample set")
			}
			if report.Function != tc.expected {
				t.Errorf("expected %q, got %q", tc.expected, report.Function)
			}
			if report.Min != "" || report.Max != "" {
				t.Errorf("bound fields should be clean, got %+v", report)
			}
		})
	}
}

// Empty function and broken range surface together: the emptiness check does
// not wait for a valid interval.
func TestRequestReportsAllFieldsInOnePass(t *testing.T) {
	set, report := validate.Request("", "", "")
	if set != nil {
		t.Fatal("expected no sample set")
	}
	if report.Function != config.FuncValueEmptyError {
		t.Errorf("function: expected %q, got %q", config.FuncValueEmptyError, report.Function)
	}
	if report.Min != config.MinValueEmptyError {
		t.Errorf("min: expected %q, got %q", config.MinValueEmptyError, report.Min)
	}
	if report.Max != config.MaxValueEmptyError {
		t.Errorf("max: expected %q, got %q", config.MaxValueEmptyError, report.Max)
	}
}

// A syntactically broken function is NOT reported while the range is
// invalid: expression evaluation needs concrete sample points, so only the
// emptiness check runs in that case.
func TestRequestFunctionEvaluationGatedOnInterval(t *testing.T) {
	set, report := validate.Request("z+", "10", "-10")
	if set != nil {
		t.Fatal("expected no sample set")
	}
	if report.Function != "" {
		t.Errorf("function error should be empty while the range is invalid, got %q", report.Function)
	}
	if report.Min != config.MinMaxError || report.Max != config.MinMaxError {
		t.Errorf("expected range error on both bounds, got %+v", report)
	}
}

func TestRequestVectorDivisionKeepsCurve(t *testing.T) {
	set, report := validate.Request("1/x", "-10", "10")
	if !report.OK() || set == nil {
		t.Fatalf("expected 1/x to plot, got %+v", report)
	}
	if len(set.Y) != len(set.X) {
		t.Fatalf("expected equal lengths, got %d/%d", len(set.X), len(set.Y))
	}
}

func TestNormalize(t *testing.T) {
	testCases := []struct {
		input    string
		expected string
	}{
		{"x^2+2", "x**2+2"},
		{"2^3^4", "2**3**4"},
		{"x+1", "x+1"},
	}
	for _, tc := range testCases {
		if got := validate.Normalize(tc.input); got != tc.expected {
			t.Errorf("Normalize(%q): expected %q, got %q", tc.input, tc.expected, got)
		}
	}
}

func TestParseBound(t *testing.T) {
	b := validate.ParseBound("13^2")
	if !b.Valid() {
		t.Fatalf("unexpected error: %q", b.Err)
	}
	if b.Value != 169 {
		t.Errorf("expected 169, got %v", b.Value)
	}

	if b := validate.ParseBound(""); b.Err != validate.BoundErrEmpty {
		t.Errorf("expected empty, got %q", b.Err)
	}
	if b := validate.ParseBound("12^"); b.Err != validate.BoundErrInvalid {
		t.Errorf("expected invalid for trailing caret, got %q", b.Err)
	}
	if b := validate.ParseBound("9^999"); b.Err != validate.BoundErrInvalid {
		t.Errorf("expected invalid for an overflowing value, got %q", b.Err)
	}
}
