package report

import (
	"sort"

	"github.com/srodi/topkill/pkg/types"
)

// Rank returns a copy of records ordered by key, highest first. Records with
// equal values keep their capture order, so identical system states always
// rank identically.
func Rank(records []types.ProcessRecord, key types.SortKey) []types.ProcessRecord {
	ranked := make([]types.ProcessRecord, len(records))
	copy(ranked, records)
	switch key {
	case types.ByCPU:
		sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].CPUPercent > ranked[j].CPUPercent })
	default:
		sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].MemoryKB > ranked[j].MemoryKB })
	}
	return ranked
}
