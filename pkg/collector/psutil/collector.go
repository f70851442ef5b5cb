package psutil

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/srodi/topkill/pkg/collector"
	"github.com/srodi/topkill/pkg/types"
)

// Name identifies this source in flags and logs.
const Name = "psutil"

// Collector enumerates processes through gopsutil. It keeps the process
// handles from the previous observation so CPU usage can be read as a delta.
type Collector struct {
	log     logrus.FieldLogger
	tracked map[int32]trackedHandle
}

type trackedHandle struct {
	h       handle
	created int64
}

// NewCollector returns a gopsutil-backed source.
func NewCollector(log logrus.FieldLogger) *Collector {
	return &Collector{
		log:     collector.OrDiscard(log).WithField("source", Name),
		tracked: make(map[int32]trackedHandle),
	}
}

// PrimeCPUSample records a CPU baseline for every current process.
func (c *Collector) PrimeCPUSample(ctx context.Context) error {
	handles, err := c.list(ctx)
	if err != nil {
		return err
	}
	next := make(map[int32]trackedHandle, len(handles))
	for _, h := range handles {
		th := c.resolve(ctx, h)
		if _, err := th.h.Percent(ctx); err != nil {
			c.log.WithField("pid", h.PID()).Debugf("cpu baseline unavailable: %v", err)
		}
		next[h.PID()] = th
	}
	c.tracked = next
	return nil
}

// Capture lists all processes with CPU usage since the previous prime or
// capture. Unreadable per-process fields fall back to zero values.
func (c *Collector) Capture(ctx context.Context) ([]types.ProcessRecord, error) {
	handles, err := c.list(ctx)
	if err != nil {
		return nil, err
	}
	records := make([]types.ProcessRecord, 0, len(handles))
	next := make(map[int32]trackedHandle, len(handles))
	for _, h := range handles {
		pid := h.PID()
		th := c.resolve(ctx, h)
		next[pid] = th
		entry := c.log.WithField("pid", pid)

		name, err := th.h.Name(ctx)
		if err != nil {
			entry.Debugf("name unavailable: %v", err)
		}
		rec := types.ProcessRecord{PID: pid, Name: collector.DisplayName(pid, name)}
		if pct, err := th.h.Percent(ctx); err != nil {
			entry.Debugf("cpu unavailable: %v", err)
		} else if pct > 0 {
			rec.CPUPercent = pct
		}
		if rss, err := th.h.RSS(ctx); err != nil {
			entry.Debugf("memory unavailable: %v", err)
		} else {
			rec.MemoryKB = collector.BytesToKB(rss)
		}
		records = append(records, rec)
	}
	c.tracked = next
	return records, nil
}

func (c *Collector) list(ctx context.Context) ([]handle, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	handles, err := listProcesses(ctx)
	if err != nil {
		return nil, &collector.EnumerationError{Source: Name, Err: err}
	}
	// darwin reports kernel_task as pid 0, which cannot be signalled
	kept := handles[:0]
	for _, h := range handles {
		if h.PID() > 0 {
			kept = append(kept, h)
		}
	}
	return kept, nil
}

// resolve returns the tracked handle for h's PID when it still refers to the
// same process, so its CPU baseline carries over. A changed create time means
// the PID was reused and the fresh handle starts a new baseline.
func (c *Collector) resolve(ctx context.Context, h handle) trackedHandle {
	created, err := h.CreateTime(ctx)
	if err != nil {
		created = 0
	}
	if prev, ok := c.tracked[h.PID()]; ok && prev.created == created {
		return prev
	}
	return trackedHandle{h: h, created: created}
}

// Name returns the current display name of pid, read the same way Capture
// reads it.
func (c *Collector) Name(pid int32) (string, error) {
	ctx := context.Background()
	h, err := lookupProcess(ctx, pid)
	if err != nil {
		return "", err
	}
	name, err := h.Name(ctx)
	if err != nil {
		return "", err
	}
	return collector.DisplayName(pid, name), nil
}
