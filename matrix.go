package matbench

import (
	"math/rand"
)

// Matrix is a dense square matrix of float32 values in row-major order.
type Matrix struct {
	N    int
	Data []float32
}

// NewMatrix allocates a zero-initialized n×n matrix.
func NewMatrix(n int) *Matrix {
	return &Matrix{
		N:    n,
		Data: make([]float32, n*n),
	}
}

// NewRandomMatrix allocates an n×n matrix filled with pseudo-random values
// in [0,1) drawn from rng.
func NewRandomMatrix(n int, rng *rand.Rand) *Matrix {
	m := NewMatrix(n)
	for i := range m.Data {
		m.Data[i] = rng.Float32()
	}
	return m
}

// At returns the element at row i, column j.
func (m *Matrix) At(i, j int) float32 {
	return m.Data[i*m.N+j]
}

// Set stores v at row i, column j.
func (m *Matrix) Set(i, j int, v float32) {
	m.Data[i*m.N+j] = v
}

// Identity returns the n×n identity matrix.
func Identity(n int) *Matrix {
	m := NewMatrix(n)
	for i := 0; i < n; i++ {
		m.Data[i*n+i] = 1
	}
	return m
}

// Equal reports whether m and other have the same dimension and
// bit-identical contents.
func (m *Matrix) Equal(other *Matrix) bool {
	if m.N != other.N {
		return false
	}
	for i := range m.Data {
		if m.Data[i] != other.Data[i] {
			return false
		}
	}
	return true
}
