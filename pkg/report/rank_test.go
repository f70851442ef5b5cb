package report

import (
	"math/rand"
	"reflect"
	"sort"
	"testing"

	"github.com/srodi/topkill/pkg/types"
)

func pids(recs []types.ProcessRecord) []int32 {
	out := make([]int32, len(recs))
	for i, r := range recs {
		out[i] = r.PID
	}
	return out
}

func TestRankCPUTieKeepsCaptureOrder(t *testing.T) {
	input := []types.ProcessRecord{
		{PID: 10, CPUPercent: 5.0},
		{PID: 20, CPUPercent: 50.0},
		{PID: 30, CPUPercent: 50.0},
	}
	got := pids(Rank(input, types.ByCPU))
	want := []int32{20, 30, 10}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestRankMemoryDescending(t *testing.T) {
	input := []types.ProcessRecord{
		{PID: 1, MemoryKB: 100, CPUPercent: 90},
		{PID: 2, MemoryKB: 300},
		{PID: 3, MemoryKB: 200},
	}
	got := pids(Rank(input, types.ByMemory))
	want := []int32{2, 3, 1}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestRankDoesNotMutateInput(t *testing.T) {
	input := []types.ProcessRecord{{PID: 1, MemoryKB: 1}, {PID: 2, MemoryKB: 2}}
	before := append([]types.ProcessRecord(nil), input...)
	_ = Rank(input, types.ByMemory)
	if !reflect.DeepEqual(input, before) {
		t.Fatalf("input mutated: %+v", input)
	}
}

func TestRankEmpty(t *testing.T) {
	if got := Rank(nil, types.ByCPU); len(got) != 0 {
		t.Fatalf("expected empty result, got %+v", got)
	}
}

func TestRankProperties(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for iter := 0; iter < 200; iter++ {
		n := rng.Intn(40)
		input := make([]types.ProcessRecord, n)
		for i := range input {
			input[i] = types.ProcessRecord{
				PID:        int32(i + 1),
				CPUPercent: float64(rng.Intn(5)) * 12.5,
				MemoryKB:   uint64(rng.Intn(4)) * 1024,
			}
		}
		for _, key := range []types.SortKey{types.ByCPU, types.ByMemory} {
			out := Rank(input, key)
			if len(out) != len(input) {
				t.Fatalf("length changed: %d vs %d", len(out), len(input))
			}
			gotIDs, wantIDs := pids(out), pids(input)
			sort.Slice(gotIDs, func(i, j int) bool { return gotIDs[i] < gotIDs[j] })
			if !reflect.DeepEqual(gotIDs, wantIDs) {
				t.Fatalf("output is not a permutation of input")
			}
			for i := 1; i < len(out); i++ {
				a, b := metric(out[i-1], key), metric(out[i], key)
				if a < b {
					t.Fatalf("not descending at %d: %v < %v", i, a, b)
				}
				// PIDs follow capture order, so equal keys must keep ascending PIDs.
				if a == b && out[i-1].PID > out[i].PID {
					t.Fatalf("tie at %d broke capture order: %d before %d", i, out[i-1].PID, out[i].PID)
				}
			}
			if again := Rank(input, key); !reflect.DeepEqual(out, again) {
				t.Fatalf("ranking is not deterministic")
			}
		}
	}
}

func metric(r types.ProcessRecord, key types.SortKey) float64 {
	if key == types.ByCPU {
		return r.CPUPercent
	}
	return float64(r.MemoryKB)
}

func TestFilterRespectsKernelAndExclude(t *testing.T) {
	recs := []types.ProcessRecord{
		{PID: 2, Name: "kthreadd"},
		{PID: 5, Name: "kworker/0:1"},
		{PID: 42, Name: "api"},
		{PID: 43, Name: "db"},
		{PID: 44, Name: "rcu_sched"},
	}

	if got := Filter(recs, FilterConfig{}); len(got) != len(recs) {
		t.Fatalf("zero config must keep everything, got %+v", got)
	}

	visible := Filter(recs, FilterConfig{HideKernel: true})
	if !reflect.DeepEqual(pids(visible), []int32{42, 43}) {
		t.Fatalf("expected user processes only, got %+v", visible)
	}

	scoped := Filter(recs, FilterConfig{Exclude: []string{" db ", ""}})
	if !reflect.DeepEqual(pids(scoped), []int32{2, 5, 42, 44}) {
		t.Fatalf("expected db excluded, got %+v", scoped)
	}
}

func TestIsKernelThread(t *testing.T) {
	cases := []struct {
		rec      types.ProcessRecord
		expected bool
	}{
		{types.ProcessRecord{PID: 0}, true},
		{types.ProcessRecord{PID: 1, Name: "kworker/0:1"}, true},
		{types.ProcessRecord{PID: 2, Name: "ksoftirqd/1"}, true},
		{types.ProcessRecord{PID: 3, Name: "irq/9-acpi"}, true},
		{types.ProcessRecord{PID: 4, Name: "user"}, false},
	}
	for _, tc := range cases {
		if got := isKernelThread(tc.rec); got != tc.expected {
			t.Fatalf("kernel detection mismatch for %+v: got %v", tc.rec, got)
		}
	}
}
