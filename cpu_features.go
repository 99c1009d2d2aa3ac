package matbench

import (
	"strings"

	"golang.org/x/sys/cpu"
)

// CPUFeatures tracks the instruction set extensions relevant to dense
// float32 arithmetic on the host.
type CPUFeatures struct {
	HasAVX     bool
	HasAVX2    bool
	HasAVX512F bool
	HasFMA     bool
	HasNEON    bool
}

// DetectCPUFeatures queries the host CPU via golang.org/x/sys/cpu.
func DetectCPUFeatures() CPUFeatures {
	return CPUFeatures{
		HasAVX:     cpu.X86.HasAVX,
		HasAVX2:    cpu.X86.HasAVX2,
		HasAVX512F: cpu.X86.HasAVX512F,
		HasFMA:     cpu.X86.HasFMA,
		HasNEON:    cpu.ARM64.HasASIMD,
	}
}

// String lists the detected features, or "none" when nothing relevant is
// available.
func (f CPUFeatures) String() string {
	var have []string
	if f.HasAVX {
		have = append(have, "AVX")
	}
	if f.HasAVX2 {
		have = append(have, "AVX2")
	}
	if f.HasAVX512F {
		have = append(have, "AVX512F")
	}
	if f.HasFMA {
		have = append(have, "FMA")
	}
	if f.HasNEON {
		have = append(have, "NEON")
	}
	if len(have) == 0 {
		return "none"
	}
	return strings.Join(have, " ")
}
