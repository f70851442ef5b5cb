package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/srodi/topkill/pkg/collector"
	"github.com/srodi/topkill/pkg/collector/procstat"
	"github.com/srodi/topkill/pkg/collector/psutil"
	"github.com/srodi/topkill/pkg/config"
	"github.com/srodi/topkill/pkg/console"
	"github.com/srodi/topkill/pkg/report"
	"github.com/srodi/topkill/pkg/terminate"
	"github.com/srodi/topkill/pkg/types"
	"github.com/srodi/topkill/pkg/ui"
)

type runConfig struct {
	cfg    config.Config
	list   bool
	key    types.SortKey
	topK   string
	asYAML bool
}

// parseConfig layers flags explicitly given on the command line over the
// optional config file, which itself sits on top of config.Default.
func parseConfig(args []string, stderr io.Writer) (runConfig, error) {
	def := config.Default()
	fs := flag.NewFlagSet("topkill", flag.ContinueOnError)
	fs.SetOutput(stderr)

	configPath := fs.String("config", "", "path to a YAML config file")
	source := fs.String("source", def.Source, "process table backend: psutil or procfs")
	procMount := fs.String("proc-mount", def.ProcMount, "proc filesystem mount point for the procfs backend")
	interval := fs.Duration("interval", def.Interval, "CPU sampling window (minimum 1s)")
	hideKernel := fs.Bool("hide-kernel", def.HideKernel, "hide kernel threads such as kworker, ksoftirqd, etc")
	exclude := fs.String("exclude", "", "comma-separated process names to hide")
	verifyName := fs.Bool("verify-name", def.VerifyName, "refuse to stop a PID whose name changed since it was listed")
	noClear := fs.Bool("no-clear", def.NoClear, "do not clear the screen before the menu")
	noColor := fs.Bool("no-color", def.NoColor, "disable banner colors")
	logLevel := fs.String("log-level", def.LogLevel, "diagnostics level on stderr (debug, info, warn, error)")
	list := fs.String("list", "", "print one snapshot sorted by cpu or memory and exit")
	topK := fs.String("n", fmt.Sprint(types.DefaultTopK), "number of processes for -list")
	asYAML := fs.Bool("yaml", false, "with -list, print the snapshot as YAML")
	if err := fs.Parse(args); err != nil {
		return runConfig{}, err
	}
	if fs.NArg() > 0 {
		return runConfig{}, fmt.Errorf("unexpected arguments: %s", strings.Join(fs.Args(), " "))
	}

	cfg := def
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			return runConfig{}, err
		}
		cfg = loaded
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "source":
			cfg.Source = *source
		case "proc-mount":
			cfg.ProcMount = *procMount
		case "interval":
			cfg.Interval = *interval
		case "hide-kernel":
			cfg.HideKernel = *hideKernel
		case "exclude":
			cfg.Exclude = splitList(*exclude)
		case "verify-name":
			cfg.VerifyName = *verifyName
		case "no-clear":
			cfg.NoClear = *noClear
		case "no-color":
			cfg.NoColor = *noColor
		case "log-level":
			cfg.LogLevel = *logLevel
		}
	})
	if err := cfg.Validate(); err != nil {
		return runConfig{}, fmt.Errorf("invalid configuration: %w", err)
	}

	rc := runConfig{cfg: cfg, topK: *topK, asYAML: *asYAML}
	if *list != "" {
		key, err := types.ParseSortKey(*list)
		if err != nil {
			return runConfig{}, err
		}
		rc.list, rc.key = true, key
	}
	return rc, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func newLogger(cfg config.Config, w io.Writer) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(w)
	log.SetLevel(cfg.Level())
	log.SetFormatter(&logrus.TextFormatter{DisableColors: cfg.NoColor, FullTimestamp: true})
	return log
}

// backend is a process table that can also answer name checks.
type backend interface {
	collector.Source
	terminate.NameLookup
}

func openSource(cfg config.Config, log logrus.FieldLogger) (backend, error) {
	switch cfg.Source {
	case config.SourceProcfs:
		c, err := procstat.NewCollector(cfg.ProcMount, log)
		if err != nil {
			return nil, err
		}
		return c, nil
	default:
		return psutil.NewCollector(log), nil
	}
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	rc, err := parseConfig(args, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}
	tty := ui.IsTerminal(stdout)

	log := newLogger(rc.cfg, stderr)
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	src, err := openSource(rc.cfg, log)
	if err != nil {
		log.WithError(err).Error("initializing process source")
		return 1
	}
	log.WithFields(logrus.Fields{"source": rc.cfg.Source, "interval": rc.cfg.Interval}).Debug("process source ready")

	if rc.list {
		if err := printSnapshot(ctx, stdout, src, rc, time.Sleep); err != nil {
			fmt.Fprintln(stderr, err)
			return 1
		}
		return 0
	}

	opts := []terminate.Option{terminate.WithLogger(log)}
	if rc.cfg.VerifyName {
		opts = append(opts, terminate.WithNameCheck(src))
	}
	session := console.New(stdin, stdout, src, terminate.NewService(terminate.NewKiller(), opts...), console.Options{
		Interval:    rc.cfg.Interval,
		Filter:      report.FilterConfig{HideKernel: rc.cfg.HideKernel, Exclude: rc.cfg.Exclude},
		ClearScreen: tty && !rc.cfg.NoClear,
		Banner:      ui.Banner(tty && !rc.cfg.NoColor),
		Log:         log,
	})
	if err := session.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		log.WithError(err).Error("session ended")
		return 1
	}
	return 0
}

// printSnapshot captures once, ranks, and writes the table or YAML to w.
func printSnapshot(ctx context.Context, w io.Writer, src collector.Source, rc runConfig, sleep collector.SleepFunc) error {
	limit, err := report.ParseLimit(rc.topK)
	if err != nil {
		return fmt.Errorf("-n %q: %w", rc.topK, err)
	}
	key := rc.key
	records, err := collector.Sample(ctx, src, key, rc.cfg.Interval, sleep)
	if err != nil {
		return err
	}
	filter := report.FilterConfig{HideKernel: rc.cfg.HideKernel, Exclude: rc.cfg.Exclude}
	snap, err := report.Build(report.Rank(report.Filter(records, filter), key), key, limit)
	if err != nil {
		return err
	}
	if rc.asYAML {
		return report.WriteYAML(w, snap)
	}
	return report.Render(w, snap)
}
