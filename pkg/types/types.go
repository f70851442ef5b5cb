package types

import (
	"fmt"
	"strings"
)

// DefaultTopK controls how many processes the non-interactive listing shows.
const DefaultTopK = 10

// ProcessRecord is one process as seen by a single capture.
type ProcessRecord struct {
	PID        int32
	Name       string
	CPUPercent float64 // OS-native, may exceed 100 on multi-core hosts
	MemoryKB   uint64  // resident set size
}

// SortKey selects the metric used to rank and render a listing.
type SortKey int

const (
	ByMemory SortKey = iota
	ByCPU
)

func (k SortKey) String() string {
	switch k {
	case ByCPU:
		return "cpu"
	case ByMemory:
		return "memory"
	default:
		return fmt.Sprintf("SortKey(%d)", int(k))
	}
}

// ParseSortKey accepts "cpu", "memory" or "mem" in any case.
func ParseSortKey(s string) (SortKey, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "cpu":
		return ByCPU, nil
	case "memory", "mem":
		return ByMemory, nil
	default:
		return ByMemory, fmt.Errorf("unknown sort key %q (want cpu or memory)", s)
	}
}

// MarshalYAML writes the key by name.
func (k SortKey) MarshalYAML() (interface{}, error) {
	return k.String(), nil
}
