package matbench

// Multiplier computes the dense product C = A·B of two square matrices.
// Implementations must agree with the naive oracle within DefaultAbsTol.
type Multiplier interface {
	// Name identifies the implementation in benchmark output.
	Name() string

	// Multiply returns a freshly allocated product matrix.
	Multiply(a, b *Matrix) (*Matrix, error)
}

// checkOperands validates a multiplication operand pair.
func checkOperands(op string, a, b *Matrix) error {
	if a == nil || b == nil {
		return NewInvalidArgError(op, "nil operand matrix")
	}
	if a.N != b.N {
		return NewInvalidArgError(op, "operand dimensions differ")
	}
	if a.N < 1 {
		return NewInvalidArgError(op, "matrix dimension must be positive")
	}
	return nil
}
