// Copyright ©2025 The Matbench Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package matbench benchmarks dense square float32 matrix multiplication.
//
// Three interchangeable implementations of C = A·B are provided behind the
// Multiplier interface:
//
//   - NaiveMultiplier: a scalar triple loop, used as the correctness oracle
//   - BLASMultiplier: gonum's single-precision GEMM
//   - BlockedMultiplier: a cache-tiled variant with a tunable block size
//
// The Benchmark driver times all three over the same operand pair, derives
// MFLOPS from the fixed operation count 2n³, and cross-checks each result
// against the naive oracle within an absolute tolerance. Operand matrices
// are cached on disk through MatrixCache so repeated runs reuse the same
// inputs.
//
// Example usage:
//
//	cache := matbench.NewMatrixCache(".")
//	bench := matbench.NewBenchmark(2048, 32, cache)
//	results, err := bench.Run()
package matbench
