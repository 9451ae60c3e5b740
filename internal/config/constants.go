package config

// SampleCount is the number of points sampled across the plotting interval,
// both endpoints included.
const SampleCount = 1000

// VariableName is the only free variable an expression may reference.
const VariableName = "x"

// Power operator spelling: users write ^, the expression language uses **.
const (
	UserPowerOperator   = "^"
	NativePowerOperator = "**"
)

// User-facing validation messages.
const (
	MinValueEmptyError     = "Error: The min value is empty"
	MinValueIncorrectError = "Error: The min value is incorrect"
	MaxValueEmptyError     = "Error: The max value is empty"
	MaxValueIncorrectError = "Error: The max value is incorrect"
	MinMaxError            = "Error: The min value must be less than the max value"

	FuncValueEmptyError     = "Error: The function is empty"
	FuncValueIncorrectError = "Error: The function is incorrect"
)

// TitlePrefix is prepended to the original (un-normalized) expression text
// when a sample set is handed to the rendering sink.
const TitlePrefix = "f(x) = "
