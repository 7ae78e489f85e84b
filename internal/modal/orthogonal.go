package modal

import (
	"fmt"
	"math/rand/v2"

	"github.com/san-kum/modalsys/internal/dynamo"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"
)

// RandomOrthogonal samples an n x n orthogonal matrix from the Haar measure.
// Q comes from the QR factorization of a standard normal matrix with each
// column flipped to make diag(R) positive; without the flip the distribution
// is biased.
func RandomOrthogonal(rng *rand.Rand, n int) (*mat.Dense, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: orthogonal dimension %d", dynamo.ErrParameterBounds, n)
	}
	g := NormalMatrix(rng, n, n)

	var qr mat.QR
	qr.Factorize(g)

	var q, r mat.Dense
	qr.QTo(&q)
	qr.RTo(&r)

	for j := 0; j < n; j++ {
		d := r.At(j, j)
		if d == 0 {
			return nil, fmt.Errorf("%w: singular gaussian sample at column %d", dynamo.ErrNumerical, j)
		}
		if d > 0 {
			continue
		}
		for i := 0; i < n; i++ {
			q.Set(i, j, -q.At(i, j))
		}
	}
	return &q, nil
}

// NormalMatrix fills a rows x cols matrix row by row with N(0,1) draws.
func NormalMatrix(rng *rand.Rand, rows, cols int) *mat.Dense {
	dist := distuv.Normal{Mu: 0, Sigma: 1, Src: rng}
	return fill(rows, cols, dist.Rand)
}

// UniformMatrix fills a rows x cols matrix row by row with U[0,1) draws.
func UniformMatrix(rng *rand.Rand, rows, cols int) *mat.Dense {
	dist := distuv.Uniform{Min: 0, Max: 1, Src: rng}
	return fill(rows, cols, dist.Rand)
}

func fill(rows, cols int, draw func() float64) *mat.Dense {
	data := make([]float64, rows*cols)
	for i := range data {
		data[i] = draw()
	}
	return mat.NewDense(rows, cols, data)
}
