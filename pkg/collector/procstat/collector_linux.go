//go:build linux
// +build linux

package procstat

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/prometheus/procfs"
	"github.com/sirupsen/logrus"

	"github.com/srodi/topkill/pkg/collector"
	"github.com/srodi/topkill/pkg/types"
)

// Name identifies this source in flags and logs.
const Name = "procfs"

// Collector reads per-process counters straight from /proc.
type Collector struct {
	fs  procfs.FS
	log logrus.FieldLogger
	now func() time.Time

	baseline   map[int]cpuSample
	baselineAt time.Time
}

// NewCollector opens the proc filesystem at mountPoint (procfs.DefaultMountPoint
// when empty).
func NewCollector(mountPoint string, log logrus.FieldLogger) (*Collector, error) {
	if mountPoint == "" {
		mountPoint = procfs.DefaultMountPoint
	}
	fs, err := procfs.NewFS(mountPoint)
	if err != nil {
		return nil, &collector.EnumerationError{Source: Name, Err: err}
	}
	return &Collector{
		fs:  fs,
		log: collector.OrDiscard(log).WithField("source", Name),
		now: time.Now,
	}, nil
}

type procEntry struct {
	pid   int
	name  string
	stat  procfs.ProcStat
	hasSt bool
}

// PrimeCPUSample records the CPU time of every process as the baseline for
// the next Capture.
func (c *Collector) PrimeCPUSample(ctx context.Context) error {
	entries, err := c.read(ctx)
	if err != nil {
		return err
	}
	c.remember(entries, c.now())
	return nil
}

// Capture lists all processes. CPU usage is measured against the previous
// prime or capture; processes without a baseline report zero.
func (c *Collector) Capture(ctx context.Context) ([]types.ProcessRecord, error) {
	entries, err := c.read(ctx)
	if err != nil {
		return nil, err
	}
	now := c.now()
	elapsed := now.Sub(c.baselineAt).Seconds()

	records := make([]types.ProcessRecord, 0, len(entries))
	for _, e := range entries {
		rec := types.ProcessRecord{
			PID:  int32(e.pid),
			Name: collector.DisplayName(int32(e.pid), e.name),
		}
		if e.hasSt {
			if rss := e.stat.ResidentMemory(); rss > 0 {
				rec.MemoryKB = collector.BytesToKB(uint64(rss))
			}
			if prev, ok := c.baseline[e.pid]; ok {
				rec.CPUPercent = cpuPercent(prev, sampleOf(e.stat), elapsed)
			}
		}
		records = append(records, rec)
	}
	c.remember(entries, now)
	return records, nil
}

func (c *Collector) read(ctx context.Context) ([]procEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	procs, err := c.fs.AllProcs()
	if err != nil {
		return nil, &collector.EnumerationError{Source: Name, Err: err}
	}
	sort.Slice(procs, func(i, j int) bool { return procs[i].PID < procs[j].PID })

	entries := make([]procEntry, 0, len(procs))
	for _, p := range procs {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if p.PID <= 0 {
			continue
		}
		st, err := p.Stat()
		if err == nil {
			entries = append(entries, procEntry{pid: p.PID, name: st.Comm, stat: st, hasSt: true})
			continue
		}
		// stat can be unreadable while comm is not; keep the process with zero metrics.
		comm, cerr := p.Comm()
		if cerr != nil {
			c.log.WithField("pid", p.PID).Debugf("skipping process: %v", fmt.Errorf("reading stat: %w", err))
			continue
		}
		entries = append(entries, procEntry{pid: p.PID, name: comm})
	}
	return entries, nil
}

func (c *Collector) remember(entries []procEntry, at time.Time) {
	baseline := make(map[int]cpuSample, len(entries))
	for _, e := range entries {
		if e.hasSt {
			baseline[e.pid] = sampleOf(e.stat)
		}
	}
	c.baseline = baseline
	c.baselineAt = at
}

func sampleOf(st procfs.ProcStat) cpuSample {
	return cpuSample{Seconds: st.CPUTime(), Start: st.Starttime}
}

// Name returns the current display name of pid, read the same way Capture
// reads it.
func (c *Collector) Name(pid int32) (string, error) {
	p, err := c.fs.Proc(int(pid))
	if err != nil {
		return "", err
	}
	if st, err := p.Stat(); err == nil {
		return collector.DisplayName(pid, st.Comm), nil
	}
	comm, err := p.Comm()
	if err != nil {
		return "", err
	}
	return collector.DisplayName(pid, comm), nil
}
