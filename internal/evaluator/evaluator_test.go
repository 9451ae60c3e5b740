package evaluator_test

import (
	"math"
	"testing"

	"github.com/funvibe/funplot/internal/evaluator"
	"github.com/funvibe/funplot/internal/lexer"
	"github.com/funvibe/funplot/internal/parser"
)

func eval(t *testing.T, input string, env *evaluator.Environment) evaluator.Object {
	t.Helper()
	expr, errs := parser.New(lexer.New(input)).Parse()
	if len(errs) > 0 {
		t.Fatalf("parsing %q failed: %v", input, errs[0])
	}
	return evaluator.Eval(expr, env)
}

func evalScalar(t *testing.T, input string) float64 {
	t.Helper()
	result := eval(t, input, evaluator.NewEnvironment())
	scalar, ok := result.(*evaluator.Scalar)
	if !ok {
		t.Fatalf("evaluating %q: expected scalar, got %s", input, result.Inspect())
	}
	return scalar.Value
}

func TestScalarArithmetic(t *testing.T) {
	testCases := []struct {
		input    string
		expected float64
	}{
		{"5", 5},
		{"2 + 3 * 4", 14},
		{"(2 + 3) * 4", 20},
		{"10 / 4", 2.5},
		{"2 ** 3", 8},
		{"2 ** 3 ** 2", 512},
		{"2 ** -1", 0.5},
		{"-2 ** 2", -4},
		{"-5 + 3", -2},
		{"+7", 7},
		{"2 ** 3 + 1", 9},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			got := evalScalar(t, tc.input)
			if got != tc.expected {
				t.Errorf("expected %v, got %v", tc.expected, got)
			}
		})
	}
}

func TestVectorEvaluation(t *testing.T) {
	env := evaluator.NewEnvironment()
	env.Set("x", &evaluator.Vector{Values: []float64{-2, 0, 3}})

	result := eval(t, "x ** 2 + 2", env)
	vec, ok := result.(*evaluator.Vector)
	if !ok {
		t.Fatalf("expected vector, got %s", result.Inspect())
	}

	expected := []float64{6, 2, 11}
	if vec.Len() != len(expected) {
		t.Fatalf("expected %d elements, got %d", len(expected), vec.Len())
	}
	for i, want := range expected {
		if math.Abs(vec.Values[i]-want) > 1e-12 {
			t.Errorf("element %d: expected %v, got %v", i, want, vec.Values[i])
		}
	}
}

func TestScalarVectorBroadcastArithmetic(t *testing.T) {
	env := evaluator.NewEnvironment()
	env.Set("x", &evaluator.Vector{Values: []float64{1, 2, 4}})

	testCases := []struct {
		input    string
		expected []float64
	}{
		{"2 * x", []float64{2, 4, 8}},
		{"x - 1", []float64{0, 1, 3}},
		{"8 / x", []float64{8, 4, 2}},
		{"-x", []float64{-1, -2, -4}},
		{"x + x", []float64{2, 4, 8}},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			result := eval(t, tc.input, env)
			vec, ok := result.(*evaluator.Vector)
			if !ok {
				t.Fatalf("expected vector, got %s", result.Inspect())
			}
			for i, want := range tc.expected {
				if vec.Values[i] != want {
					t.Errorf("element %d: expected %v, got %v", i, want, vec.Values[i])
				}
			}
		})
	}
}

func TestUnknownIdentifier(t *testing.T) {
	env := evaluator.NewEnvironment()
	env.Set("x", &evaluator.Vector{Values: []float64{1, 2}})

	result := eval(t, "z ** 2 + 2", env)
	if result.Type() != evaluator.ERROR_OBJ {
		t.Fatalf("expected error, got %s", result.Inspect())
	}
}

// A constant expression dividing by zero has no value anywhere, so it is an
// error; division inside a vector expression follows IEEE-754 and keeps the
// finite part of the curve.
func TestDivisionByZero(t *testing.T) {
	result := eval(t, "1 / 0", evaluator.NewEnvironment())
	if result.Type() != evaluator.ERROR_OBJ {
		t.Fatalf("expected error for scalar division by zero, got %s", result.Inspect())
	}

	env := evaluator.NewEnvironment()
	env.Set("x", &evaluator.Vector{Values: []float64{-1, 0, 1}})
	vec, ok := eval(t, "1 / x", env).(*evaluator.Vector)
	if !ok {
		t.Fatal("expected vector for element-wise division")
	}
	if vec.Values[0] != -1 || vec.Values[2] != 1 {
		t.Errorf("finite elements wrong: %v", vec.Values)
	}
	if !math.IsInf(vec.Values[1], 1) {
		t.Errorf("expected +Inf at the zero crossing, got %v", vec.Values[1])
	}
}

func TestBroadcast(t *testing.T) {
	y, ok := evaluator.Broadcast(&evaluator.Scalar{Value: 5}, 4)
	if !ok {
		t.Fatal("expected broadcast to succeed")
	}
	if len(y) != 4 {
		t.Fatalf("expected 4 elements, got %d", len(y))
	}
	for i, v := range y {
		if v != 5 {
			t.Errorf("element %d: expected 5, got %v", i, v)
		}
	}

	vec := &evaluator.Vector{Values: []float64{1, 2, 3}}
	y, ok = evaluator.Broadcast(vec, 3)
	if !ok || len(y) != 3 {
		t.Fatal("expected vector broadcast to pass through")
	}

	if _, ok := evaluator.Broadcast(&evaluator.Error{Message: "boom"}, 3); ok {
		t.Error("expected broadcast of an error to fail")
	}
}

func TestLinspace(t *testing.T) {
	xs := evaluator.Linspace(-10, 10, 1000)
	if len(xs) != 1000 {
		t.Fatalf("expected 1000 samples, got %d", len(xs))
	}
	if xs[0] != -10 {
		t.Errorf("expected first sample -10, got %v", xs[0])
	}
	if xs[len(xs)-1] != 10 {
		t.Errorf("expected last sample 10, got %v", xs[len(xs)-1])
	}

	step := xs[1] - xs[0]
	for i := 1; i < len(xs); i++ {
		if math.Abs((xs[i]-xs[i-1])-step) > 1e-9 {
			t.Fatalf("uneven spacing at %d: %v vs %v", i, xs[i]-xs[i-1], step)
		}
	}
}

func TestLinspaceDegenerate(t *testing.T) {
	xs := evaluator.Linspace(3, 7, 1)
	if len(xs) != 1 || xs[0] != 3 {
		t.Errorf("expected [3], got %v", xs)
	}
}
