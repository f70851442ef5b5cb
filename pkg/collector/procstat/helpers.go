package procstat

// cpuSample is the cumulative CPU time of one process at one observation.
// Start is the process start time in clock ticks; a different Start for the
// same PID means the PID was reused and the sample must not be compared.
type cpuSample struct {
	Seconds float64
	Start   uint64
}

// cpuPercent returns the CPU usage between two samples of the same process
// over elapsed wall-clock seconds. The result is not divided by the number of
// CPUs, so a process saturating two cores reports 200.
func cpuPercent(prev, cur cpuSample, elapsed float64) float64 {
	if elapsed <= 0 || prev.Start != cur.Start {
		return 0
	}
	delta := cur.Seconds - prev.Seconds
	if delta <= 0 {
		return 0
	}
	return 100 * delta / elapsed
}
