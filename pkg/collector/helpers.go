package collector

import (
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"
)

// DisplayName cleans a raw process name, falling back to "pid-N" when the name
// is unreadable or blank.
func DisplayName(pid int32, raw string) string {
	name := strings.TrimSpace(strings.TrimRight(raw, "\x00\n"))
	if name == "" {
		return fmt.Sprintf("pid-%d", pid)
	}
	return name
}

// IsFallbackName reports whether name is the "pid-N" placeholder DisplayName
// produces for pid, i.e. the real name was not readable.
func IsFallbackName(pid int32, name string) bool {
	return name == fmt.Sprintf("pid-%d", pid)
}

// BytesToKB converts a byte count to whole KiB.
func BytesToKB(b uint64) uint64 {
	return b / 1024
}

// OrDiscard returns log, or a logger that drops everything when log is nil.
func OrDiscard(log logrus.FieldLogger) logrus.FieldLogger {
	if log != nil {
		return log
	}
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}
