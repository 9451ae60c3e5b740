package evaluator

import (
	"math"

	"github.com/funvibe/funplot/internal/ast"
	"github.com/funvibe/funplot/internal/diagnostics"
)

// Environment binds the free variables of an expression. For plotting it
// holds a single entry, "x", bound to the sampled domain vector. Bound
// fields are evaluated against an empty environment, so any identifier
// there is an unknown-identifier error.
type Environment struct {
	store map[string]Object
}

func NewEnvironment() *Environment {
	return &Environment{store: make(map[string]Object)}
}

func (e *Environment) Get(name string) (Object, bool) {
	obj, ok := e.store[name]
	return obj, ok
}

func (e *Environment) Set(name string, val Object) Object {
	e.store[name] = val
	return val
}

// Eval walks the expression tree and produces a Scalar, Vector or Error.
// Arithmetic between a scalar and a vector broadcasts the scalar over every
// element; arithmetic between two vectors is element-wise. Vectors follow
// IEEE-754 (division by zero yields Inf/NaN and still plots); a scalar
// divided by scalar zero is an error, matching the behavior users see when
// a constant sub-expression has no finite value at all.
func Eval(node ast.Expression, env *Environment) Object {
	switch node := node.(type) {
	case *ast.NumberLiteral:
		return &Scalar{Value: node.Value}

	case *ast.Identifier:
		if val, ok := env.Get(node.Value); ok {
			return val
		}
		return newError(diagnostics.ErrE001, "unknown identifier: %s", node.Value)

	case *ast.PrefixExpression:
		right := Eval(node.Right, env)
		if isError(right) {
			return right
		}
		return evalPrefixExpression(node.Operator, right)

	case *ast.InfixExpression:
		left := Eval(node.Left, env)
		if isError(left) {
			return left
		}
		right := Eval(node.Right, env)
		if isError(right) {
			return right
		}
		return evalInfixExpression(node.Operator, left, right)
	}

	return newError(diagnostics.ErrE002, "unsupported expression node")
}

func evalPrefixExpression(operator string, right Object) Object {
	switch operator {
	case "-":
		switch right := right.(type) {
		case *Scalar:
			return &Scalar{Value: -right.Value}
		case *Vector:
			out := make([]float64, len(right.Values))
			for i, v := range right.Values {
				out[i] = -v
			}
			return &Vector{Values: out}
		}
	case "+":
		if right.Type() == SCALAR_OBJ || right.Type() == VECTOR_OBJ {
			return right
		}
	}
	return newError(diagnostics.ErrE002, "unknown operator: %s%s", operator, right.Type())
}

func evalInfixExpression(operator string, left, right Object) Object {
	if left.Type() == SCALAR_OBJ && right.Type() == SCALAR_OBJ {
		return evalScalarInfixExpression(operator, left.(*Scalar), right.(*Scalar))
	}

	lv, lok := left.(*Vector)
	rv, rok := right.(*Vector)
	switch {
	case lok && rok:
		if len(lv.Values) != len(rv.Values) {
			return newError(diagnostics.ErrE002, "vector length mismatch: %d vs %d", len(lv.Values), len(rv.Values))
		}
		return applyVector(operator, len(lv.Values),
			func(i int) float64 { return lv.Values[i] },
			func(i int) float64 { return rv.Values[i] })
	case lok:
		rs, ok := right.(*Scalar)
		if !ok {
			break
		}
		return applyVector(operator, len(lv.Values),
			func(i int) float64 { return lv.Values[i] },
			func(int) float64 { return rs.Value })
	case rok:
		ls, ok := left.(*Scalar)
		if !ok {
			break
		}
		return applyVector(operator, len(rv.Values),
			func(int) float64 { return ls.Value },
			func(i int) float64 { return rv.Values[i] })
	}

	return newError(diagnostics.ErrE002, "unknown operator: %s %s %s", left.Type(), operator, right.Type())
}

func evalScalarInfixExpression(operator string, left, right *Scalar) Object {
	switch operator {
	case "+":
		return &Scalar{Value: left.Value + right.Value}
	case "-":
		return &Scalar{Value: left.Value - right.Value}
	case "*":
		return &Scalar{Value: left.Value * right.Value}
	case "/":
		if right.Value == 0 {
			return newError(diagnostics.ErrE003, "division by zero")
		}
		return &Scalar{Value: left.Value / right.Value}
	case "**":
		return &Scalar{Value: math.Pow(left.Value, right.Value)}
	}
	return newError(diagnostics.ErrE002, "unknown operator: %s", operator)
}

func applyVector(operator string, n int, left, right func(int) float64) Object {
	var op func(a, b float64) float64
	switch operator {
	case "+":
		op = func(a, b float64) float64 { return a + b }
	case "-":
		op = func(a, b float64) float64 { return a - b }
	case "*":
		op = func(a, b float64) float64 { return a * b }
	case "/":
		// IEEE semantics: x/0 is +-Inf, 0/0 is NaN, so the curve keeps
		// its finite points.
		op = func(a, b float64) float64 { return a / b }
	case "**":
		op = math.Pow
	default:
		return newError(diagnostics.ErrE002, "unknown operator: %s", operator)
	}

	out := make([]float64, n)
	for i := 0; i < n; i++ {
		out[i] = op(left(i), right(i))
	}
	return &Vector{Values: out}
}

// Linspace returns n evenly spaced values spanning [min, max], both
// endpoints included. The last element is pinned to max so accumulated
// floating point error never shortens the domain.
func Linspace(min, max float64, n int) []float64 {
	if n <= 1 {
		return []float64{min}
	}
	out := make([]float64, n)
	step := (max - min) / float64(n-1)
	for i := range out {
		out[i] = min + float64(i)*step
	}
	out[n-1] = max
	return out
}
