// Package matbench tolerance-based verification for floating-point comparisons
package matbench

import (
	"fmt"
	"math"
)

// DefaultAbsTol is the absolute tolerance within which all multiplier
// implementations must agree element-wise.
const DefaultAbsTol = 1e-5

// ComparisonResult summarizes an element-wise comparison of two matrices.
type ComparisonResult struct {
	MaxAbsDiff    float32
	Mismatches    int
	TotalItems    int
	FirstMismatch int // Index of first mismatch, -1 if none
}

// CompareMatrices compares actual against expected element-wise with an
// absolute tolerance. MaxAbsDiff is tracked over all elements, not just the
// mismatched ones, so callers can always report the maximum deviation.
func CompareMatrices(expected, actual *Matrix, absTol float32) (ComparisonResult, error) {
	if expected.N != actual.N {
		return ComparisonResult{}, NewInvalidArgError("CompareMatrices",
			"matrix dimensions differ")
	}

	result := ComparisonResult{
		TotalItems:    len(expected.Data),
		FirstMismatch: -1,
	}
	for i := range expected.Data {
		diff := float32(math.Abs(float64(expected.Data[i] - actual.Data[i])))
		if diff > result.MaxAbsDiff {
			result.MaxAbsDiff = diff
		}
		if diff > absTol {
			result.Mismatches++
			if result.FirstMismatch == -1 {
				result.FirstMismatch = i
			}
		}
	}
	return result, nil
}

// Within reports whether every element matched within the tolerance the
// comparison was run with.
func (r ComparisonResult) Within() bool {
	return r.Mismatches == 0
}

// String formats the comparison result for display.
func (r ComparisonResult) String() string {
	if r.Mismatches == 0 {
		return fmt.Sprintf("PASS: all %d values match (max abs diff %e)",
			r.TotalItems, r.MaxAbsDiff)
	}

	rate := float64(r.Mismatches) / float64(r.TotalItems) * 100
	return fmt.Sprintf("FAIL: %d/%d values differ (%.2f%%)\n"+
		"  Max absolute error: %e\n"+
		"  First mismatch at index: %d",
		r.Mismatches, r.TotalItems, rate,
		r.MaxAbsDiff, r.FirstMismatch)
}
