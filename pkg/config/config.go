package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// Source backends.
const (
	SourcePsutil = "psutil"
	SourceProcfs = "procfs"
)

// Config holds runtime settings. Every field has a usable default.
type Config struct {
	Source     string        `yaml:"source"`
	ProcMount  string        `yaml:"proc_mount"`
	Interval   time.Duration `yaml:"interval"`
	HideKernel bool          `yaml:"hide_kernel"`
	Exclude    []string      `yaml:"exclude"`
	VerifyName bool          `yaml:"verify_name"`
	NoClear    bool          `yaml:"no_clear"`
	NoColor    bool          `yaml:"no_color"`
	LogLevel   string        `yaml:"log_level"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Source:     SourcePsutil,
		Interval:   time.Second,
		VerifyName: true,
		LogLevel:   "warn",
	}
}

// Load reads a YAML file on top of Default. Unknown keys are rejected.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config: %w", err)
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate normalizes cfg and reports settings that cannot be used.
// Sampling intervals below one second are raised to one second.
func (c *Config) Validate() error {
	c.Source = strings.ToLower(strings.TrimSpace(c.Source))
	if c.Source == "" {
		c.Source = SourcePsutil
	}
	var errs []error
	if c.Source != SourcePsutil && c.Source != SourceProcfs {
		errs = append(errs, fmt.Errorf("unknown source %q (want %s or %s)", c.Source, SourcePsutil, SourceProcfs))
	}
	if c.Interval < time.Second {
		c.Interval = time.Second
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, fmt.Errorf("log level: %w", err))
	}
	return errors.Join(errs...)
}

// Level returns the parsed log level, falling back to warn.
func (c Config) Level() logrus.Level {
	lvl, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return logrus.WarnLevel
	}
	return lvl
}
