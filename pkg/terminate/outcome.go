package terminate

import (
	"errors"
	"fmt"
)

// ErrStale is returned by Outcome.Error for stale selections.
var ErrStale = errors.New("process identity changed since listing")

// ErrInvalidPID is carried by Failed outcomes for PIDs that cannot name a
// single process. Signalling 0 or -1 would hit a process group or every
// process.
var ErrInvalidPID = errors.New("pid must be positive")

// Kind classifies the result of a stop request.
type Kind int

const (
	InvalidOrdinal Kind = iota
	Stopped
	Failed
	Stale
)

func (k Kind) String() string {
	switch k {
	case InvalidOrdinal:
		return "invalid-ordinal"
	case Stopped:
		return "stopped"
	case Failed:
		return "failed"
	case Stale:
		return "stale"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Outcome is the result of Service.Stop.
type Outcome struct {
	Kind    Kind
	Ordinal int
	PID     int32
	Name    string // name shown in the Snapshot
	Current string // name found at stop time, set for Stale
	Err     error  // OS or lookup error, set for Failed
}

// Error returns the cause of a failed or stale outcome, or nil.
func (o Outcome) Error() error {
	switch o.Kind {
	case Failed:
		return o.Err
	case Stale:
		return ErrStale
	default:
		return nil
	}
}

// String renders the operator-facing message.
func (o Outcome) String() string {
	switch o.Kind {
	case Stopped:
		return fmt.Sprintf("Process %d (PID: %d) has been stopped.", o.Ordinal, o.PID)
	case Failed:
		return fmt.Sprintf("Unable to stop process %d (PID: %d).", o.Ordinal, o.PID)
	case Stale:
		return fmt.Sprintf("Process %d (PID: %d) is no longer %q; not stopped.", o.Ordinal, o.PID, o.Name)
	default:
		return "Invalid process number."
	}
}
