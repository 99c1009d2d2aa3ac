package matbench

import (
	"encoding/binary"
	"fmt"
	"math"
	"math/rand"
	"os"
	"path/filepath"
)

// Cache file layout: a 12-byte header (magic, version, n as little-endian
// uint32) followed by n*n little-endian float32 words in row-major order.
const (
	cacheMagic   = 0x4D42544D // "MTBM"
	cacheVersion = 1
	headerSize   = 12
)

// MatrixCache loads and stores operand matrices under a directory so that
// repeated benchmark runs reuse the same inputs.
type MatrixCache struct {
	Dir string
}

// NewMatrixCache returns a cache rooted at dir.
func NewMatrixCache(dir string) *MatrixCache {
	return &MatrixCache{Dir: dir}
}

// Path returns the cache file path for a named matrix.
func (c *MatrixCache) Path(name string) string {
	return filepath.Join(c.Dir, name+".mat")
}

// Fetch returns the named n×n matrix, loading it from the cache file when
// one exists and force is false, and generating fresh values from rng (and
// persisting them) otherwise. A cache file whose header or stored dimension
// does not match is reported as a corrupt cache error rather than used.
func (c *MatrixCache) Fetch(name string, n int, force bool, rng *rand.Rand) (*Matrix, error) {
	if n < 1 {
		return nil, NewInvalidArgError("Fetch", "matrix dimension must be positive")
	}

	path := c.Path(name)
	if !force {
		if _, err := os.Stat(path); err == nil {
			m, err := LoadMatrix(path)
			if err != nil {
				return nil, err
			}
			if m.N != n {
				return nil, NewCorruptCacheError("Fetch",
					fmt.Sprintf("%s holds a %dx%d matrix, want %dx%d", path, m.N, m.N, n, n))
			}
			return m, nil
		}
	}

	m := NewRandomMatrix(n, rng)
	if err := SaveMatrix(path, m); err != nil {
		return nil, err
	}
	return m, nil
}

// SaveMatrix writes m to path in the cache file format.
func SaveMatrix(path string, m *Matrix) error {
	buf := make([]byte, headerSize+4*len(m.Data))
	binary.LittleEndian.PutUint32(buf[0:], cacheMagic)
	binary.LittleEndian.PutUint32(buf[4:], cacheVersion)
	binary.LittleEndian.PutUint32(buf[8:], uint32(m.N))
	for i, v := range m.Data {
		binary.LittleEndian.PutUint32(buf[headerSize+4*i:], math.Float32bits(v))
	}

	if err := os.WriteFile(path, buf, 0644); err != nil {
		return NewCacheIOError("SaveMatrix", "failed to write cache file", err)
	}
	return nil
}

// LoadMatrix reads a matrix previously written by SaveMatrix.
func LoadMatrix(path string) (*Matrix, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, NewCacheIOError("LoadMatrix", "failed to read cache file", err)
	}

	if len(buf) < headerSize {
		return nil, NewCorruptCacheError("LoadMatrix",
			fmt.Sprintf("%s is too short to hold a header", path))
	}
	if magic := binary.LittleEndian.Uint32(buf[0:]); magic != cacheMagic {
		return nil, NewCorruptCacheError("LoadMatrix",
			fmt.Sprintf("%s has bad magic 0x%08X", path, magic))
	}
	if version := binary.LittleEndian.Uint32(buf[4:]); version != cacheVersion {
		return nil, NewCorruptCacheError("LoadMatrix",
			fmt.Sprintf("%s has unsupported version %d", path, version))
	}

	n := int(binary.LittleEndian.Uint32(buf[8:]))
	if n < 1 {
		return nil, NewCorruptCacheError("LoadMatrix",
			fmt.Sprintf("%s declares invalid dimension %d", path, n))
	}
	if want := headerSize + 4*n*n; len(buf) != want {
		return nil, NewCorruptCacheError("LoadMatrix",
			fmt.Sprintf("%s is %d bytes, want %d for a %dx%d matrix", path, len(buf), want, n, n))
	}

	m := NewMatrix(n)
	for i := range m.Data {
		m.Data[i] = math.Float32frombits(binary.LittleEndian.Uint32(buf[headerSize+4*i:]))
	}
	return m, nil
}
