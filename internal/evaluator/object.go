package evaluator

import (
	"fmt"
	"strconv"
	"strings"
)

type ObjectType string

const (
	SCALAR_OBJ = "SCALAR"
	VECTOR_OBJ = "VECTOR"
	ERROR_OBJ  = "ERROR"
)

// Object is the tagged result type of expression evaluation. An expression
// over the sample domain yields either a Vector (depends on x), a Scalar
// (constant expression) or an Error. Callers that need a plottable series
// should go through Broadcast rather than inspecting the tag themselves.
type Object interface {
	Type() ObjectType
	Inspect() string
}

// Scalar is a single numeric value, produced by constant expressions.
type Scalar struct {
	Value float64
}

func (s *Scalar) Type() ObjectType { return SCALAR_OBJ }
func (s *Scalar) Inspect() string  { return strconv.FormatFloat(s.Value, 'g', -1, 64) }

// Vector is an element-wise numeric sequence aligned with the sample domain.
type Vector struct {
	Values []float64
}

func (v *Vector) Type() ObjectType { return VECTOR_OBJ }
func (v *Vector) Inspect() string {
	parts := make([]string, 0, len(v.Values))
	for _, f := range v.Values {
		parts = append(parts, strconv.FormatFloat(f, 'g', -1, 64))
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// Len reports the vector length.
func (v *Vector) Len() int { return len(v.Values) }

type Error struct {
	Code    string
	Message string
}

func (e *Error) Type() ObjectType { return ERROR_OBJ }
func (e *Error) Inspect() string  { return "ERROR: " + e.Message }
func (e *Error) Error() string    { return e.Message }

func newError(code string, format string, a ...interface{}) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, a...)}
}

func isError(obj Object) bool {
	if obj != nil {
		return obj.Type() == ERROR_OBJ
	}
	return false
}

// Broadcast turns any successful result into a sequence of length n:
// vectors are returned as-is (their length already matches the sample
// domain), scalars are repeated n times.
func Broadcast(obj Object, n int) ([]float64, bool) {
	switch res := obj.(type) {
	case *Vector:
		return res.Values, true
	case *Scalar:
		out := make([]float64, n)
		for i := range out {
			out[i] = res.Value
		}
		return out, true
	default:
		return nil, false
	}
}
