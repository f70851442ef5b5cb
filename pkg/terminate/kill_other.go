//go:build !unix

package terminate

// NewKiller returns the platform killer.
func NewKiller() Killer { return PsutilKiller{} }
