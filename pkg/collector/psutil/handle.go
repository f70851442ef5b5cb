package psutil

import (
	"context"
	"sort"

	"github.com/shirou/gopsutil/v4/process"
)

// handle is the subset of *process.Process the collector reads.
type handle interface {
	PID() int32
	Name(ctx context.Context) (string, error)
	CreateTime(ctx context.Context) (int64, error)
	// Percent returns CPU usage since the previous Percent call on the same
	// handle; the first call only records a baseline and returns zero.
	Percent(ctx context.Context) (float64, error)
	RSS(ctx context.Context) (uint64, error)
}

type gopsHandle struct{ p *process.Process }

func (h gopsHandle) PID() int32 { return h.p.Pid }

func (h gopsHandle) Name(ctx context.Context) (string, error) {
	return h.p.NameWithContext(ctx)
}

func (h gopsHandle) CreateTime(ctx context.Context) (int64, error) {
	return h.p.CreateTimeWithContext(ctx)
}

func (h gopsHandle) Percent(ctx context.Context) (float64, error) {
	return h.p.PercentWithContext(ctx, 0)
}

func (h gopsHandle) RSS(ctx context.Context) (uint64, error) {
	mi, err := h.p.MemoryInfoWithContext(ctx)
	if err != nil {
		return 0, err
	}
	return mi.RSS, nil
}

// listProcesses allows tests to stub the gopsutil process table.
var listProcesses = func(ctx context.Context) ([]handle, error) {
	procs, err := process.ProcessesWithContext(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]handle, 0, len(procs))
	for _, p := range procs {
		out = append(out, gopsHandle{p: p})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].PID() < out[j].PID() })
	return out, nil
}

// lookupProcess allows tests to stub single-process lookups.
var lookupProcess = func(ctx context.Context, pid int32) (handle, error) {
	p, err := process.NewProcessWithContext(ctx, pid)
	if err != nil {
		return nil, err
	}
	return gopsHandle{p: p}, nil
}
