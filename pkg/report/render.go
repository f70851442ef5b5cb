package report

import (
	"bufio"
	"fmt"
	"io"

	"github.com/srodi/topkill/pkg/types"
)

const rowFormat = "%-10s %-10s %-60s %-10s\n"

// Render writes s as a fixed-width table: Number, PID, Name, Usage.
// CPU usage prints with two decimals and a "%" suffix, memory as whole KB.
func Render(w io.Writer, s *Snapshot) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, rowFormat, "Number", "PID", "Name", "Usage")
	fmt.Fprintf(bw, rowFormat, "======", "===", "====", "=====")
	for i, rec := range s.Records() {
		fmt.Fprintf(bw, "%-10d %-10d %-60s %s\n", i+1, rec.PID, rec.Name, usage(rec, s.Key()))
	}
	return bw.Flush()
}

func usage(rec types.ProcessRecord, key types.SortKey) string {
	if key == types.ByCPU {
		return fmt.Sprintf("%-10.2f %%", rec.CPUPercent)
	}
	return fmt.Sprintf("%-10d KB", rec.MemoryKB)
}
