package procstat

import (
	"math"
	"testing"
)

func TestCPUPercent(t *testing.T) {
	cases := []struct {
		name    string
		prev    cpuSample
		cur     cpuSample
		elapsed float64
		want    float64
	}{
		{"halfCore", cpuSample{Seconds: 1, Start: 7}, cpuSample{Seconds: 1.5, Start: 7}, 1, 50},
		{"twoCores", cpuSample{Seconds: 10, Start: 7}, cpuSample{Seconds: 14, Start: 7}, 2, 200},
		{"idle", cpuSample{Seconds: 3, Start: 7}, cpuSample{Seconds: 3, Start: 7}, 1, 0},
		{"pidReused", cpuSample{Seconds: 1, Start: 7}, cpuSample{Seconds: 9, Start: 8}, 1, 0},
		{"counterWentBack", cpuSample{Seconds: 5, Start: 7}, cpuSample{Seconds: 1, Start: 7}, 1, 0},
		{"noElapsed", cpuSample{Seconds: 1, Start: 7}, cpuSample{Seconds: 2, Start: 7}, 0, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := cpuPercent(tc.prev, tc.cur, tc.elapsed)
			if math.Abs(got-tc.want) > 1e-9 {
				t.Fatalf("expected %.3f, got %.3f", tc.want, got)
			}
		})
	}
}
