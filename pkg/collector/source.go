package collector

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/srodi/topkill/pkg/types"
)

// MinSampleInterval is the shortest pause between a CPU prime and the capture
// that reads it. Shorter windows make per-process CPU deltas meaningless.
const MinSampleInterval = time.Second

// Source enumerates processes visible to the caller.
//
// CPU usage is a rate, so it needs two observations: PrimeCPUSample records a
// baseline and the next Capture reports usage since that baseline. Memory
// needs only Capture.
type Source interface {
	PrimeCPUSample(ctx context.Context) error
	Capture(ctx context.Context) ([]types.ProcessRecord, error)
}

// ErrEnumeration matches every EnumerationError via errors.Is.
var ErrEnumeration = errors.New("process enumeration failed")

// EnumerationError reports that the process table itself could not be read.
// Per-process read failures never produce it.
type EnumerationError struct {
	Source string
	Err    error
}

func (e *EnumerationError) Error() string {
	return fmt.Sprintf("%s: listing processes: %v", e.Source, e.Err)
}

func (e *EnumerationError) Unwrap() error { return e.Err }

// Is lets errors.Is(err, ErrEnumeration) succeed for any EnumerationError.
func (e *EnumerationError) Is(target error) bool { return target == ErrEnumeration }

// SleepFunc blocks for d. Tests swap in a no-op.
type SleepFunc func(d time.Duration)

// Sample runs the capture protocol for key: a single Capture for memory, or
// prime, sleep, Capture for CPU. Intervals below MinSampleInterval are raised.
func Sample(ctx context.Context, src Source, key types.SortKey, interval time.Duration, sleep SleepFunc) ([]types.ProcessRecord, error) {
	if key == types.ByCPU {
		if err := src.PrimeCPUSample(ctx); err != nil {
			return nil, err
		}
		if interval < MinSampleInterval {
			interval = MinSampleInterval
		}
		if sleep == nil {
			sleep = time.Sleep
		}
		sleep(interval)
	}
	return src.Capture(ctx)
}
