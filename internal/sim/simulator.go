package sim

import (
	"context"
	"fmt"

	"github.com/san-kum/modalsys/internal/dynamo"
	"gonum.org/v1/gonum/mat"
)

// Observer is notified after every step with the new state and its output.
type Observer interface {
	OnStep(step int, x dynamo.State, y []float64)
}

type Result struct {
	States     []dynamo.State
	Outputs    [][]float64
	StepsTaken int
}

// Channel returns output channel i across all recorded steps.
func (r *Result) Channel(i int) []float64 {
	out := make([]float64, len(r.Outputs))
	for t, y := range r.Outputs {
		out[t] = y[i]
	}
	return out
}

// Simulator propagates the free response x[t+1] = A x[t], y[t] = C x[t].
type Simulator struct {
	sys       *dynamo.System
	observers []Observer
}

func New(sys *dynamo.System) *Simulator {
	return &Simulator{
		sys:       sys,
		observers: make([]Observer, 0),
	}
}

func (s *Simulator) AddObserver(o Observer) { s.observers = append(s.observers, o) }

// Run applies A steps times starting from x0. Outputs[t] is C applied to the
// state after step t+1, so States has one more entry than Outputs.
func (s *Simulator) Run(ctx context.Context, x0 dynamo.State, steps int) (*Result, error) {
	if len(x0) != s.sys.N {
		return nil, fmt.Errorf("%w: initial state has %d entries, system has %d", dynamo.ErrDimensionMismatch, len(x0), s.sys.N)
	}
	if steps <= 0 {
		return nil, fmt.Errorf("%w: steps must be positive, got %d", dynamo.ErrParameterBounds, steps)
	}

	result := &Result{
		States:  make([]dynamo.State, 0, steps+1),
		Outputs: make([][]float64, 0, steps),
	}

	x := mat.NewVecDense(s.sys.N, x0.Clone())
	next := mat.NewVecDense(s.sys.N, nil)
	y := mat.NewVecDense(s.sys.OutputDim(), nil)

	result.States = append(result.States, x0.Clone())

	for i := 0; i < steps; i++ {
		select {
		case <-ctx.Done():
			return result, ctx.Err()
		default:
		}

		next.MulVec(s.sys.A, x)
		x, next = next, x
		y.MulVec(s.sys.C, x)

		state := dynamo.State(mat.Col(nil, 0, x))
		if !state.IsValid() {
			return result, fmt.Errorf("step %d: %w", i, dynamo.ErrInvalidState)
		}
		out := mat.Col(nil, 0, y)

		result.States = append(result.States, state)
		result.Outputs = append(result.Outputs, out)
		result.StepsTaken++

		for _, obs := range s.observers {
			obs.OnStep(i, state, out)
		}
	}

	return result, nil
}

// Kick returns the i-th standard basis vector of length n; i must lie in [0, n).
func Kick(n, i int) dynamo.State {
	x := make(dynamo.State, n)
	x[i] = 1
	return x
}
