package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/srodi/topkill/pkg/collector"
	"github.com/srodi/topkill/pkg/report"
	"github.com/srodi/topkill/pkg/terminate"
	"github.com/srodi/topkill/pkg/types"
	"github.com/srodi/topkill/pkg/ui"
)

// Stopper stops a process selected from a displayed Snapshot.
type Stopper interface {
	Stop(ctx context.Context, snap *report.Snapshot, ordinal int) terminate.Outcome
}

// Options tunes a Session. The zero value is usable.
type Options struct {
	Interval    time.Duration
	Filter      report.FilterConfig
	Sleep       collector.SleepFunc // defaults to time.Sleep
	ClearScreen bool
	Banner      string
	Log         logrus.FieldLogger
}

// Session drives the menu loop over one input and one output stream.
type Session struct {
	in      *bufio.Reader
	out     io.Writer
	src     collector.Source
	stopper Stopper
	opts    Options
	log     logrus.FieldLogger

	state   State
	pending action
	limit   int
	snap    *report.Snapshot
}

// New returns a Session reading operator input from in.
func New(in io.Reader, out io.Writer, src collector.Source, stopper Stopper, opts Options) *Session {
	if opts.Sleep == nil {
		opts.Sleep = time.Sleep
	}
	return &Session{
		in:      bufio.NewReader(in),
		out:     out,
		src:     src,
		stopper: stopper,
		opts:    opts,
		log:     collector.OrDiscard(opts.Log),
		state:   MenuShown,
	}
}

// State returns the current step.
func (s *Session) State() State { return s.state }

// Run loops until the operator quits, input ends, or ctx is canceled.
// End of input is a normal exit; other read failures are returned.
func (s *Session) Run(ctx context.Context) error {
	for s.state != Quit {
		if err := ctx.Err(); err != nil {
			return err
		}
		next, err := s.step(ctx)
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
		if next != s.state {
			s.log.WithFields(logrus.Fields{"from": s.state, "to": next}).Debug("state change")
		}
		s.state = next
	}
	return nil
}

func (s *Session) step(ctx context.Context) (State, error) {
	switch s.state {
	case MenuShown:
		return s.showMenu(), nil
	case AwaitingChoice:
		return s.readChoice()
	case AwaitingListSize:
		return s.readListSize(ctx)
	case AwaitingOrdinal:
		return s.readOrdinal(ctx)
	case ActionComplete:
		return s.pause()
	default:
		return Quit, nil
	}
}

func (s *Session) showMenu() State {
	s.pending, s.limit, s.snap = actionNone, 0, nil
	if s.opts.ClearScreen {
		ui.ClearScreen(s.out)
	}
	fmt.Fprint(s.out, s.opts.Banner)
	fmt.Fprint(s.out, ui.Menu())
	return AwaitingChoice
}

func (s *Session) readChoice() (State, error) {
	line, err := s.prompt("Please enter your choice: ")
	if err != nil {
		if errors.Is(err, io.EOF) {
			fmt.Fprintln(s.out, "\nQuitting the application...")
			return Quit, err
		}
		return Quit, s.readFailed(err)
	}
	switch strings.TrimSpace(line) {
	case "1":
		s.pending = actionListCPU
	case "2", "":
		s.pending = actionListMemory
	case "3":
		s.pending = actionStop
	case "4":
		fmt.Fprintln(s.out, "Quitting the application...")
		return Quit, nil
	default:
		fmt.Fprintln(s.out, "Invalid option")
		return ActionComplete, nil
	}
	return AwaitingListSize, nil
}

func (s *Session) readListSize(ctx context.Context) (State, error) {
	line, err := s.prompt("How many processes do you want to display? ")
	if err != nil {
		return Quit, s.readFailed(err)
	}
	limit, err := report.ParseLimit(line)
	if err != nil {
		fmt.Fprintln(s.out, "Please enter a valid number")
		return ActionComplete, nil
	}
	s.limit = limit

	key := types.ByMemory
	if s.pending == actionListCPU {
		key = types.ByCPU
	}
	snap, err := s.list(ctx, key, limit)
	if err != nil {
		if ctx.Err() != nil {
			return Quit, ctx.Err()
		}
		fmt.Fprintf(s.out, "Unable to list processes: %v\n", err)
		return ActionComplete, nil
	}
	s.snap = snap
	if s.pending == actionStop {
		return AwaitingOrdinal, nil
	}
	return ActionComplete, nil
}

func (s *Session) list(ctx context.Context, key types.SortKey, limit int) (*report.Snapshot, error) {
	records, err := collector.Sample(ctx, s.src, key, s.opts.Interval, s.opts.Sleep)
	if err != nil {
		return nil, err
	}
	ranked := report.Rank(report.Filter(records, s.opts.Filter), key)
	snap, err := report.Build(ranked, key, limit)
	if err != nil {
		return nil, err
	}
	if err := report.Render(s.out, snap); err != nil {
		s.log.WithError(err).Warn("rendering process table")
	}
	s.log.WithFields(logrus.Fields{"key": key, "captured": len(records), "shown": snap.Len()}).Debug("listed processes")
	return snap, nil
}

func (s *Session) readOrdinal(ctx context.Context) (State, error) {
	line, err := s.prompt("Please enter the process number to stop: ")
	if err != nil {
		return Quit, s.readFailed(err)
	}
	// ordinals are unsigned; "-2" is malformed input, not an out-of-range pick
	ordinal, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil || ordinal < 0 {
		fmt.Fprintln(s.out, "Please enter a valid number")
		return ActionComplete, nil
	}
	out := s.stopper.Stop(ctx, s.snap, ordinal)
	if cause := out.Error(); cause != nil {
		s.log.WithFields(logrus.Fields{"pid": out.PID, "outcome": out.Kind}).Debugf("stop: %v", cause)
	}
	fmt.Fprintln(s.out, out.String())
	return ActionComplete, nil
}

func (s *Session) pause() (State, error) {
	if _, err := s.prompt("Press Enter to continue...\n"); err != nil {
		return Quit, s.readFailed(err)
	}
	return MenuShown, nil
}

func (s *Session) prompt(text string) (string, error) {
	fmt.Fprint(s.out, text)
	line, err := s.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}
	return line, nil
}

func (s *Session) readFailed(err error) error {
	fmt.Fprintln(s.out, "\nError reading input")
	if errors.Is(err, io.EOF) {
		return err
	}
	return fmt.Errorf("reading input: %w", err)
}
