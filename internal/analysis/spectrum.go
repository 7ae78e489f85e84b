package analysis

import (
	"math"
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"
	"gonum.org/v1/gonum/floats"
)

// MagnitudeSpectrum returns |X[k]| for k = 0..n/2-1. Any length is accepted.
func MagnitudeSpectrum(data []float64) []float64 {
	if len(data) < 2 {
		return nil
	}
	spec := fft.FFTReal(data)
	ps := make([]float64, len(spec)/2)
	for i := range ps {
		ps[i] = cmplx.Abs(spec[i])
	}
	return ps
}

// DominantFrequency returns 2πk/n for the largest non-DC bin k, or 0 when the
// signal is too short to have one.
func DominantFrequency(data []float64) float64 {
	ps := MagnitudeSpectrum(data)
	if len(ps) < 2 {
		return 0
	}
	k := floats.MaxIdx(ps[1:]) + 1
	return 2 * math.Pi * float64(k) / float64(len(data))
}
