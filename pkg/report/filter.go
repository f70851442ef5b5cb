package report

import (
	"strings"

	mapset "github.com/deckarep/golang-set"

	"github.com/srodi/topkill/pkg/types"
)

// FilterConfig controls which processes reach the ranker. The zero value
// keeps every process.
type FilterConfig struct {
	HideKernel bool
	Exclude    []string // exact process names to drop
}

// Filter drops records hidden by cfg and preserves the order of the rest.
func Filter(records []types.ProcessRecord, cfg FilterConfig) []types.ProcessRecord {
	excluded := mapset.NewSet()
	for _, name := range cfg.Exclude {
		if name = strings.TrimSpace(name); name != "" {
			excluded.Add(name)
		}
	}
	filtered := make([]types.ProcessRecord, 0, len(records))
	for _, rec := range records {
		if cfg.HideKernel && isKernelThread(rec) {
			continue
		}
		if excluded.Contains(rec.Name) {
			continue
		}
		filtered = append(filtered, rec)
	}
	return filtered
}

func isKernelThread(rec types.ProcessRecord) bool {
	if rec.PID == 0 {
		return true
	}
	name := strings.ToLower(rec.Name)
	switch {
	case name == "kthreadd",
		strings.HasPrefix(name, "kworker"), strings.HasPrefix(name, "ksoftirqd"),
		strings.HasPrefix(name, "migration"), strings.HasPrefix(name, "watchdog"), strings.HasPrefix(name, "rcu"),
		strings.HasPrefix(name, "irq/"):
		return true
	}
	return false
}
