//go:build unix

package terminate

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// SignalKiller sends SIGKILL.
type SignalKiller struct{}

func (SignalKiller) Kill(pid int32) error {
	if pid <= 0 {
		return fmt.Errorf("invalid PID %d: %w", pid, ErrInvalidPID)
	}
	return unix.Kill(int(pid), unix.SIGKILL)
}

// NewKiller returns the platform killer.
func NewKiller() Killer { return SignalKiller{} }
