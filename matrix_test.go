package matbench

import (
	"math/rand"
	"testing"
)

func TestNewRandomMatrixRange(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	m := NewRandomMatrix(16, rng)

	if m.N != 16 || len(m.Data) != 256 {
		t.Fatalf("got %dx%d buffer of %d, want 16x16 of 256", m.N, m.N, len(m.Data))
	}
	for i, v := range m.Data {
		if v < 0 || v >= 1 {
			t.Errorf("element %d = %v, want [0,1)", i, v)
		}
	}
}

func TestNewRandomMatrixDeterministic(t *testing.T) {
	a := NewRandomMatrix(8, rand.New(rand.NewSource(42)))
	b := NewRandomMatrix(8, rand.New(rand.NewSource(42)))
	if !a.Equal(b) {
		t.Error("same seed should reproduce the same matrix")
	}
}

func TestAtSet(t *testing.T) {
	m := NewMatrix(3)
	m.Set(1, 2, 7.5)
	if got := m.At(1, 2); got != 7.5 {
		t.Errorf("At(1,2) = %v, want 7.5", got)
	}
	if got := m.Data[1*3+2]; got != 7.5 {
		t.Errorf("row-major layout violated: Data[5] = %v", got)
	}
}

func TestIdentity(t *testing.T) {
	m := Identity(3)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			want := float32(0)
			if i == j {
				want = 1
			}
			if got := m.At(i, j); got != want {
				t.Errorf("At(%d,%d) = %v, want %v", i, j, got, want)
			}
		}
	}
}

func TestEqual(t *testing.T) {
	a := NewMatrix(2)
	b := NewMatrix(2)
	if !a.Equal(b) {
		t.Error("zero matrices should be equal")
	}
	b.Set(0, 1, 1)
	if a.Equal(b) {
		t.Error("differing matrices reported equal")
	}
	if a.Equal(NewMatrix(3)) {
		t.Error("differing dimensions reported equal")
	}
}
