package modal

import (
	"github.com/san-kum/modalsys/internal/dynamo"
	"gonum.org/v1/gonum/mat"
)

// BlockDiag places the 2x2 real block of every mode along the diagonal of a
// 2n x 2n matrix.
func BlockDiag(modes []dynamo.Mode) *mat.Dense {
	n := 2 * len(modes)
	lam := mat.NewDense(n, n, nil)
	for k, m := range modes {
		b := m.Block()
		off := 2 * k
		for i := 0; i < 2; i++ {
			for j := 0; j < 2; j++ {
				lam.Set(off+i, off+j, b[i][j])
			}
		}
	}
	return lam
}
