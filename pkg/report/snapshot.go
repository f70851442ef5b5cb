package report

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/srodi/topkill/pkg/types"
)

// ErrInvalidLimit is returned for list sizes that are not positive integers.
var ErrInvalidLimit = errors.New("list size must be a positive integer")

// Snapshot is one ranked, truncated listing. Ordinals (1-based) index into it
// and are only meaningful for the Snapshot that was displayed.
type Snapshot struct {
	key     types.SortKey
	records []types.ProcessRecord
	takenAt time.Time
}

// ParseLimit validates operator input for the list size.
func ParseLimit(text string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil || n <= 0 {
		return 0, ErrInvalidLimit
	}
	return n, nil
}

// Build keeps the first limit entries of ranked.
func Build(ranked []types.ProcessRecord, key types.SortKey, limit int) (*Snapshot, error) {
	if limit <= 0 {
		return nil, ErrInvalidLimit
	}
	n := min(limit, len(ranked))
	records := make([]types.ProcessRecord, n)
	copy(records, ranked[:n])
	return &Snapshot{key: key, records: records, takenAt: time.Now()}, nil
}

// Len returns the number of entries; a nil Snapshot is empty.
func (s *Snapshot) Len() int {
	if s == nil {
		return 0
	}
	return len(s.records)
}

// Key returns the metric the Snapshot was ranked by.
func (s *Snapshot) Key() types.SortKey {
	if s == nil {
		return types.ByMemory
	}
	return s.key
}

// TakenAt returns when the Snapshot was built.
func (s *Snapshot) TakenAt() time.Time {
	if s == nil {
		return time.Time{}
	}
	return s.takenAt
}

// At resolves a 1-based ordinal.
func (s *Snapshot) At(ordinal int) (types.ProcessRecord, bool) {
	if ordinal < 1 || ordinal > s.Len() {
		return types.ProcessRecord{}, false
	}
	return s.records[ordinal-1], true
}

// Records returns a copy of the entries in display order.
func (s *Snapshot) Records() []types.ProcessRecord {
	out := make([]types.ProcessRecord, s.Len())
	if s != nil {
		copy(out, s.records)
	}
	return out
}
