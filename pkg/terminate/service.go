package terminate

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/srodi/topkill/pkg/collector"
	"github.com/srodi/topkill/pkg/report"
)

//go:generate mockgen -destination=mocks/mock_killer.go -package=mocks github.com/srodi/topkill/pkg/terminate Killer

// Killer delivers a non-catchable termination signal to a process.
type Killer interface {
	Kill(pid int32) error
}

// NameLookup reports the current name of a live process.
type NameLookup interface {
	Name(pid int32) (string, error)
}

// Service stops processes selected by ordinal from a displayed Snapshot.
type Service struct {
	killer Killer
	names  NameLookup
	log    logrus.FieldLogger
}

// Option configures a Service.
type Option func(*Service)

// WithNameCheck re-reads the process name before signalling and refuses to
// act when it no longer matches the Snapshot.
func WithNameCheck(names NameLookup) Option {
	return func(s *Service) { s.names = names }
}

// WithLogger sets the diagnostics logger.
func WithLogger(log logrus.FieldLogger) Option {
	return func(s *Service) { s.log = log }
}

// NewService returns a Service that signals through k.
func NewService(k Killer, opts ...Option) *Service {
	s := &Service{killer: k}
	for _, opt := range opts {
		opt(s)
	}
	s.log = collector.OrDiscard(s.log)
	return s
}

// Stop resolves ordinal against snap and kills that process. Out-of-range
// ordinals and non-positive PIDs never reach the OS.
func (s *Service) Stop(ctx context.Context, snap *report.Snapshot, ordinal int) Outcome {
	rec, ok := snap.At(ordinal)
	if !ok {
		return Outcome{Kind: InvalidOrdinal, Ordinal: ordinal}
	}
	out := Outcome{Ordinal: ordinal, PID: rec.PID, Name: rec.Name}
	entry := s.log.WithFields(logrus.Fields{"pid": rec.PID, "name": rec.Name})

	if err := ctx.Err(); err != nil {
		out.Kind, out.Err = Failed, err
		return out
	}

	if rec.PID <= 0 {
		entry.Warn("refusing to signal non-positive pid")
		out.Kind, out.Err = Failed, ErrInvalidPID
		return out
	}

	// a placeholder name was never read from the process, so there is
	// nothing to compare against
	if s.names != nil && !collector.IsFallbackName(rec.PID, rec.Name) {
		current, err := s.names.Name(rec.PID)
		if err != nil {
			entry.Debugf("name check failed: %v", err)
			out.Kind, out.Err = Failed, fmt.Errorf("checking process name: %w", err)
			return out
		}
		if current != rec.Name {
			entry.WithField("current", current).Warn("pid now belongs to a different process")
			out.Kind, out.Current = Stale, current
			return out
		}
	}

	if err := s.killer.Kill(rec.PID); err != nil {
		entry.Debugf("kill failed: %v", err)
		out.Kind, out.Err = Failed, err
		return out
	}
	entry.Info("process stopped")
	out.Kind = Stopped
	return out
}
