package terminate

import (
	"context"
	"fmt"

	"github.com/shirou/gopsutil/v4/process"
)

// PsutilKiller terminates processes through gopsutil, which maps to
// TerminateProcess on Windows and SIGKILL elsewhere.
type PsutilKiller struct{}

func (PsutilKiller) Kill(pid int32) error {
	if pid <= 0 {
		return fmt.Errorf("invalid PID %d: %w", pid, ErrInvalidPID)
	}
	ctx := context.Background()
	p, err := process.NewProcessWithContext(ctx, pid)
	if err != nil {
		return fmt.Errorf("unable to find PID %d: %w", pid, err)
	}
	if err := p.KillWithContext(ctx); err != nil {
		return fmt.Errorf("failed to terminate process %d: %w", pid, err)
	}
	return nil
}
