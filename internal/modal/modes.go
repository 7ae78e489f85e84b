package modal

import (
	"math"
	"math/rand/v2"

	"github.com/san-kum/modalsys/internal/config"
	"github.com/san-kum/modalsys/internal/dynamo"
	"gonum.org/v1/gonum/floats"
)

// Magnitudes returns n values 1 - base^t with t linearly spaced over [lo, hi].
// Larger exponents give magnitudes closer to one, i.e. slower decay.
func Magnitudes(n int, base, lo, hi float64) []float64 {
	exps := span(n, lo, hi)
	for i, t := range exps {
		exps[i] = 1 - math.Pow(base, t)
	}
	return exps
}

// Frequencies returns n angular frequencies log-spaced over [10^lo, 10^hi]
// in an order permuted by rng.
func Frequencies(rng *rand.Rand, n int, lo, hi float64) []float64 {
	freqs := make([]float64, n)
	if n == 1 {
		freqs[0] = math.Pow(10, lo)
	} else {
		floats.LogSpan(freqs, math.Pow(10, lo), math.Pow(10, hi))
	}
	rng.Shuffle(n, func(i, j int) {
		freqs[i], freqs[j] = freqs[j], freqs[i]
	})
	return freqs
}

// Phases draws n offsets uniformly from [0, span).
func Phases(rng *rand.Rand, n int, span float64) []float64 {
	phases := make([]float64, n)
	for i := range phases {
		phases[i] = rng.Float64() * span
	}
	return phases
}

// SampleModes draws magnitudes, frequencies and phases in that order.
func SampleModes(rng *rand.Rand, cfg *config.Config) []dynamo.Mode {
	n := cfg.Modes()
	mags := Magnitudes(n, cfg.MagnitudeBase, cfg.MagnitudeExpMin, cfg.MagnitudeExpMax)
	freqs := Frequencies(rng, n, cfg.FreqExpMin, cfg.FreqExpMax)
	phases := Phases(rng, n, cfg.PhaseSpan)

	modes := make([]dynamo.Mode, n)
	for i := range modes {
		modes[i] = dynamo.Mode{
			Magnitude: mags[i],
			Frequency: freqs[i],
			Phase:     phases[i],
		}
	}
	return modes
}

func span(n int, lo, hi float64) []float64 {
	out := make([]float64, n)
	if n == 1 {
		out[0] = lo
		return out
	}
	return floats.Span(out, lo, hi)
}
