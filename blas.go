package matbench

import (
	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/blas32"
)

// BLASMultiplier delegates to gonum's single-precision GEMM, computing
// C = 1.0·A·B. Its output is the performance reference the blocked variant
// is measured against; its correctness is assumed.
type BLASMultiplier struct{}

// Name implements Multiplier.
func (BLASMultiplier) Name() string { return "blas" }

// Multiply wraps the operands as row-major blas32.General views and calls
// Gemm with no transposition.
func (BLASMultiplier) Multiply(a, b *Matrix) (*Matrix, error) {
	if err := checkOperands("BLASMultiply", a, b); err != nil {
		return nil, err
	}

	n := a.N
	c := NewMatrix(n)
	av := blas32.General{Rows: n, Cols: n, Stride: n, Data: a.Data}
	bv := blas32.General{Rows: n, Cols: n, Stride: n, Data: b.Data}
	cv := blas32.General{Rows: n, Cols: n, Stride: n, Data: c.Data}
	blas32.Gemm(blas.NoTrans, blas.NoTrans, 1.0, av, bv, 0.0, cv)
	return c, nil
}
