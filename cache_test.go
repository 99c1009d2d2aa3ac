package matbench

import (
	"math"
	"math/rand"
	"os"
	"path/filepath"
	"testing"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	sizes := []int{1, 3, 16, 33}

	for _, n := range sizes {
		rng := rand.New(rand.NewSource(int64(n)))
		m := NewRandomMatrix(n, rng)

		path := filepath.Join(t.TempDir(), "roundtrip.mat")
		if err := SaveMatrix(path, m); err != nil {
			t.Fatalf("save failed for n=%d: %v", n, err)
		}
		loaded, err := LoadMatrix(path)
		if err != nil {
			t.Fatalf("load failed for n=%d: %v", n, err)
		}

		if loaded.N != m.N {
			t.Fatalf("n=%d: loaded dimension %d", n, loaded.N)
		}
		for i := range m.Data {
			if math.Float32bits(loaded.Data[i]) != math.Float32bits(m.Data[i]) {
				t.Fatalf("n=%d: element %d not bit-identical: %x vs %x",
					n, i, math.Float32bits(loaded.Data[i]), math.Float32bits(m.Data[i]))
			}
		}
	}
}

func TestFetchGeneratesAndReloads(t *testing.T) {
	cache := NewMatrixCache(t.TempDir())
	rng := rand.New(rand.NewSource(7))

	// Cold cache: generates and persists.
	first, err := cache.Fetch("matrix_a", 8, false, rng)
	if err != nil {
		t.Fatalf("cold fetch failed: %v", err)
	}
	if _, err := os.Stat(cache.Path("matrix_a")); err != nil {
		t.Fatalf("cache file not written: %v", err)
	}

	// Warm cache: both loads return identical data irrespective of rng state.
	second, err := cache.Fetch("matrix_a", 8, false, rng)
	if err != nil {
		t.Fatalf("warm fetch failed: %v", err)
	}
	third, err := cache.Fetch("matrix_a", 8, false, rng)
	if err != nil {
		t.Fatalf("warm fetch failed: %v", err)
	}
	if !second.Equal(first) || !third.Equal(second) {
		t.Error("warm fetches do not reproduce the persisted matrix")
	}
}

func TestFetchForceRegenerates(t *testing.T) {
	cache := NewMatrixCache(t.TempDir())
	rng := rand.New(rand.NewSource(11))

	first, err := cache.Fetch("matrix_a", 8, false, rng)
	if err != nil {
		t.Fatalf("fetch failed: %v", err)
	}
	forced, err := cache.Fetch("matrix_a", 8, true, rng)
	if err != nil {
		t.Fatalf("forced fetch failed: %v", err)
	}
	if forced.Equal(first) {
		t.Error("forced fetch returned the cached matrix")
	}

	// The forced values replace the file.
	reloaded, err := cache.Fetch("matrix_a", 8, false, rng)
	if err != nil {
		t.Fatalf("reload failed: %v", err)
	}
	if !reloaded.Equal(forced) {
		t.Error("forced fetch did not persist the regenerated matrix")
	}
}

func TestFetchDimensionMismatch(t *testing.T) {
	cache := NewMatrixCache(t.TempDir())
	rng := rand.New(rand.NewSource(13))

	if _, err := cache.Fetch("matrix_a", 4, false, rng); err != nil {
		t.Fatalf("fetch failed: %v", err)
	}
	_, err := cache.Fetch("matrix_a", 8, false, rng)
	if !IsCorruptCacheError(err) {
		t.Errorf("dimension mismatch: got %v, want corrupt cache error", err)
	}
}

func TestLoadCorruptFiles(t *testing.T) {
	dir := t.TempDir()
	rng := rand.New(rand.NewSource(17))
	m := NewRandomMatrix(4, rng)

	good := filepath.Join(dir, "good.mat")
	if err := SaveMatrix(good, m); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	data, err := os.ReadFile(good)
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}

	corrupt := func(name string, mutate func([]byte) []byte) string {
		buf := append([]byte(nil), data...)
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, mutate(buf), 0644); err != nil {
			t.Fatalf("write %s failed: %v", name, err)
		}
		return path
	}

	tests := []struct {
		name string
		path string
	}{
		{"bad magic", corrupt("magic.mat", func(b []byte) []byte {
			b[0] ^= 0xFF
			return b
		})},
		{"bad version", corrupt("version.mat", func(b []byte) []byte {
			b[4] = 99
			return b
		})},
		{"truncated header", corrupt("short.mat", func(b []byte) []byte {
			return b[:6]
		})},
		{"truncated data", corrupt("trunc.mat", func(b []byte) []byte {
			return b[:len(b)-4]
		})},
		{"trailing garbage", corrupt("long.mat", func(b []byte) []byte {
			return append(b, 0, 0, 0, 0)
		})},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadMatrix(tt.path); !IsCorruptCacheError(err) {
				t.Errorf("got %v, want corrupt cache error", err)
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := LoadMatrix(filepath.Join(t.TempDir(), "absent.mat"))
	if !IsCacheIOError(err) {
		t.Errorf("got %v, want cache I/O error", err)
	}
}

func TestSaveToMissingDir(t *testing.T) {
	m := NewMatrix(2)
	err := SaveMatrix(filepath.Join(t.TempDir(), "no", "such", "dir", "m.mat"), m)
	if !IsCacheIOError(err) {
		t.Errorf("got %v, want cache I/O error", err)
	}
}
