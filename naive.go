package matbench

// NaiveMultiplier is the scalar triple-loop implementation. It makes no
// attempt at cache locality or vectorization and serves as the correctness
// oracle for the other implementations.
type NaiveMultiplier struct{}

// Name implements Multiplier.
func (NaiveMultiplier) Name() string { return "naive" }

// Multiply computes C = A·B one inner product at a time.
func (NaiveMultiplier) Multiply(a, b *Matrix) (*Matrix, error) {
	if err := checkOperands("NaiveMultiply", a, b); err != nil {
		return nil, err
	}

	n := a.N
	c := NewMatrix(n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			sum := float32(0)
			for k := 0; k < n; k++ {
				sum += a.Data[i*n+k] * b.Data[k*n+j]
			}
			c.Data[i*n+j] = sum
		}
	}
	return c, nil
}
