//go:build !linux
// +build !linux

package procstat

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/srodi/topkill/pkg/types"
)

// Name identifies this source in flags and logs.
const Name = "procfs"

var errUnsupported = errors.New("procfs source requires linux")

// Collector is a placeholder on non-Linux platforms.
type Collector struct{}

// NewCollector returns an error because /proc is only available on Linux.
func NewCollector(mountPoint string, log logrus.FieldLogger) (*Collector, error) {
	return nil, errUnsupported
}

// PrimeCPUSample always fails on unsupported platforms.
func (c *Collector) PrimeCPUSample(ctx context.Context) error {
	return errUnsupported
}

// Capture always fails on unsupported platforms.
func (c *Collector) Capture(ctx context.Context) ([]types.ProcessRecord, error) {
	return nil, errUnsupported
}

// Name always fails on unsupported platforms.
func (c *Collector) Name(pid int32) (string, error) {
	return "", errUnsupported
}
