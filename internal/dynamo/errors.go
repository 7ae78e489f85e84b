package dynamo

import "errors"

// Domain errors for system generation and propagation.
var (
	// ErrInvalidState indicates a state vector holding NaN or Inf values.
	ErrInvalidState = errors.New("dynamo: invalid state (NaN or Inf detected)")

	// ErrUnstable indicates a mode or matrix with spectral radius >= 1.
	ErrUnstable = errors.New("dynamo: system not Schur-stable")

	// ErrParameterBounds indicates a generator parameter outside its valid range.
	ErrParameterBounds = errors.New("dynamo: parameter out of valid bounds")

	// ErrDimensionMismatch indicates mismatched state/matrix dimensions.
	ErrDimensionMismatch = errors.New("dynamo: dimension mismatch between state and system")

	// ErrNumerical indicates a failed factorization (QR or eigendecomposition).
	ErrNumerical = errors.New("dynamo: numerical factorization failed")
)

// GenerateError wraps an error with the generation stage that produced it.
type GenerateError struct {
	Stage   string
	Wrapped error
}

func (e *GenerateError) Error() string {
	return e.Stage + ": " + e.Wrapped.Error()
}

func (e *GenerateError) Unwrap() error {
	return e.Wrapped
}
