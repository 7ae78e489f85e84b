package dynamo

import (
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/mat"
)

type State []float64

func (s State) Clone() State {
	c := make(State, len(s))
	copy(c, s)
	return c
}

func (s State) IsValid() bool {
	for _, v := range s {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

func (s State) Norm() float64 {
	sum := 0.0
	for _, v := range s {
		sum += v * v
	}
	return math.Sqrt(sum)
}

// Mode is a damped oscillation with eigenvalue Magnitude·e^(i·Frequency).
// Phase only offsets the standalone trajectory; it never enters A.
type Mode struct {
	Magnitude float64
	Frequency float64
	Phase     float64
}

func (m Mode) Eigenvalue() complex128 {
	return complex(m.Magnitude, 0) * cmplx.Exp(complex(0, m.Frequency))
}

// Block returns the 2x2 real modal form [[Re λ, Im λ], [-Im λ, Re λ]].
func (m Mode) Block() [2][2]float64 {
	lambda := m.Eigenvalue()
	re, im := real(lambda), imag(lambda)
	return [2][2]float64{
		{re, im},
		{-im, re},
	}
}

// Trajectory returns Re(λ^t · e^(iδ)) for t = 0..steps-1.
func (m Mode) Trajectory(steps int) []float64 {
	out := make([]float64, steps)
	for t := range out {
		ft := float64(t)
		out[t] = math.Pow(m.Magnitude, ft) * math.Cos(m.Frequency*ft+m.Phase)
	}
	return out
}

// System is a generated discrete-time linear system together with the
// modal form and rotation it was assembled from.
type System struct {
	A *mat.Dense
	B *mat.Dense
	C *mat.Dense
	N int

	Modes    []Mode
	Modal    *mat.Dense
	Rotation *mat.Dense
}

func (s *System) InputDim() int {
	_, c := s.B.Dims()
	return c
}

func (s *System) OutputDim() int {
	r, _ := s.C.Dims()
	return r
}

// Eigenvalues returns λ_k and conj(λ_k) for every mode, in block order.
func (s *System) Eigenvalues() []complex128 {
	vals := make([]complex128, 0, 2*len(s.Modes))
	for _, m := range s.Modes {
		lambda := m.Eigenvalue()
		vals = append(vals, lambda, cmplx.Conj(lambda))
	}
	return vals
}
