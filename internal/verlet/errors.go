package verlet

import "errors"

// Domain errors for simulation construction and tuning.
var (
	// ErrInvalidConfig indicates a configuration that cannot produce a stable run.
	ErrInvalidConfig = errors.New("verlet: invalid configuration")

	// ErrUnknownParam indicates a SetParam name with no tunable field behind it.
	ErrUnknownParam = errors.New("verlet: unknown parameter")

	// ErrParamBounds indicates a tunable value outside its valid range.
	ErrParamBounds = errors.New("verlet: parameter out of valid bounds")

	// ErrInvalidState indicates a particle with NaN or Inf components.
	ErrInvalidState = errors.New("verlet: invalid particle state (NaN or Inf detected)")
)

// StepError wraps an error with the frame where it was detected.
type StepError struct {
	Frame   int
	Time    float64
	Wrapped error
}

func (e *StepError) Error() string {
	return e.Wrapped.Error()
}

func (e *StepError) Unwrap() error {
	return e.Wrapped
}
