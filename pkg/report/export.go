package report

import (
	"fmt"
	"io"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/srodi/topkill/pkg/types"
)

type yamlSnapshot struct {
	SortKey   types.SortKey `yaml:"sort_key"`
	TakenAt   time.Time     `yaml:"taken_at"`
	Processes []yamlProcess `yaml:"processes"`
}

type yamlProcess struct {
	Ordinal    int     `yaml:"ordinal"`
	PID        int32   `yaml:"pid"`
	Name       string  `yaml:"name"`
	CPUPercent float64 `yaml:"cpu_percent"`
	MemoryKB   uint64  `yaml:"memory_kb"`
}

// WriteYAML serializes s for scripting.
func WriteYAML(w io.Writer, s *Snapshot) error {
	doc := yamlSnapshot{SortKey: s.Key(), TakenAt: s.TakenAt().UTC(), Processes: make([]yamlProcess, 0, s.Len())}
	for i, rec := range s.Records() {
		doc.Processes = append(doc.Processes, yamlProcess{
			Ordinal:    i + 1,
			PID:        rec.PID,
			Name:       rec.Name,
			CPUPercent: rec.CPUPercent,
			MemoryKB:   rec.MemoryKB,
		})
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encoding snapshot: %w", err)
	}
	return enc.Close()
}
