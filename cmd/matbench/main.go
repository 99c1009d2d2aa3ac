// Copyright ©2025 The Matbench Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command matbench times three dense matrix multiply implementations and
// cross-checks their numerical agreement.
package main

import (
	"flag"
	"log"

	"github.com/LynnColeArt/matbench"
)

func main() {
	var (
		n     = flag.Int("n", matbench.DefaultMatrixSize, "Matrix order")
		block = flag.Int("block", matbench.DefaultBlockSize, "Tile side for the blocked multiplier")
		dir   = flag.String("dir", ".", "Directory holding the operand cache files")
		force = flag.Bool("force", false, "Regenerate operand matrices even if cached")
		seed  = flag.Int64("seed", 0, "RNG seed for operand generation (0 = time-derived)")
	)
	flag.Parse()

	if *n < 1 {
		log.Fatalf("matrix order must be positive, got %d", *n)
	}
	if *block < 1 {
		log.Fatalf("block size must be positive, got %d", *block)
	}

	bench := matbench.NewBenchmark(*n, *block, matbench.NewMatrixCache(*dir))
	bench.Force = *force
	bench.Seed = *seed

	if _, err := bench.Run(); err != nil {
		log.Fatalf("benchmark failed: %v", err)
	}
}
