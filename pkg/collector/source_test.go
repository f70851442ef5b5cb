package collector

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/srodi/topkill/pkg/types"
)

type fakeSource struct {
	calls   []string
	records []types.ProcessRecord
	err     error
}

func (f *fakeSource) PrimeCPUSample(ctx context.Context) error {
	f.calls = append(f.calls, "prime")
	return f.err
}

func (f *fakeSource) Capture(ctx context.Context) ([]types.ProcessRecord, error) {
	f.calls = append(f.calls, "capture")
	if f.err != nil {
		return nil, f.err
	}
	return f.records, nil
}

func TestSampleCPUPrimesSleepsThenCaptures(t *testing.T) {
	src := &fakeSource{records: []types.ProcessRecord{{PID: 1, CPUPercent: 12}}}
	var slept []time.Duration
	sleep := func(d time.Duration) {
		src.calls = append(src.calls, "sleep")
		slept = append(slept, d)
	}

	recs, err := Sample(context.Background(), src, types.ByCPU, 2*time.Second, sleep)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(recs) != 1 || recs[0].PID != 1 {
		t.Fatalf("unexpected records: %+v", recs)
	}
	want := []string{"prime", "sleep", "capture"}
	if len(src.calls) != len(want) {
		t.Fatalf("expected calls %v, got %v", want, src.calls)
	}
	for i := range want {
		if src.calls[i] != want[i] {
			t.Fatalf("expected calls %v, got %v", want, src.calls)
		}
	}
	if len(slept) != 1 || slept[0] != 2*time.Second {
		t.Fatalf("unexpected sleep durations: %v", slept)
	}
}

func TestSampleCPUClampsShortInterval(t *testing.T) {
	src := &fakeSource{}
	var slept time.Duration
	if _, err := Sample(context.Background(), src, types.ByCPU, 10*time.Millisecond, func(d time.Duration) { slept = d }); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if slept != MinSampleInterval {
		t.Fatalf("expected clamp to %v, got %v", MinSampleInterval, slept)
	}
}

func TestSampleMemoryCapturesOnce(t *testing.T) {
	src := &fakeSource{}
	sleep := func(time.Duration) { t.Fatalf("memory sampling must not sleep") }
	if _, err := Sample(context.Background(), src, types.ByMemory, time.Second, sleep); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(src.calls) != 1 || src.calls[0] != "capture" {
		t.Fatalf("expected single capture, got %v", src.calls)
	}
}

func TestSamplePrimeFailureStops(t *testing.T) {
	boom := &EnumerationError{Source: "fake", Err: os.ErrPermission}
	src := &fakeSource{err: boom}
	_, err := Sample(context.Background(), src, types.ByCPU, time.Second, func(time.Duration) {})
	if !errors.Is(err, ErrEnumeration) {
		t.Fatalf("expected enumeration error, got %v", err)
	}
	if !errors.Is(err, os.ErrPermission) {
		t.Fatalf("expected wrapped permission error, got %v", err)
	}
	if len(src.calls) != 1 {
		t.Fatalf("capture should not run after failed prime: %v", src.calls)
	}
}

func TestEnumerationErrorMessage(t *testing.T) {
	err := &EnumerationError{Source: "procfs", Err: errors.New("denied")}
	if got := err.Error(); got != "procfs: listing processes: denied" {
		t.Fatalf("unexpected message %q", got)
	}
	var target *EnumerationError
	if !errors.As(error(err), &target) || target.Source != "procfs" {
		t.Fatalf("errors.As failed for %v", err)
	}
}

func TestDisplayName(t *testing.T) {
	cases := []struct {
		pid  int32
		raw  string
		want string
	}{
		{42, "db\n", "db"},
		{77, "   \n", "pid-77"},
		{88, "", "pid-88"},
		{99, "nginx\x00", "nginx"},
	}
	for _, tc := range cases {
		if got := DisplayName(tc.pid, tc.raw); got != tc.want {
			t.Fatalf("DisplayName(%d, %q) = %q, want %q", tc.pid, tc.raw, got, tc.want)
		}
	}
}

func TestIsFallbackName(t *testing.T) {
	if !IsFallbackName(77, DisplayName(77, "")) {
		t.Fatalf("placeholder for pid 77 not recognized")
	}
	if IsFallbackName(78, "pid-77") {
		t.Fatalf("placeholder of another pid must not match")
	}
	if IsFallbackName(42, "db") {
		t.Fatalf("real name reported as placeholder")
	}
}

func TestBytesToKB(t *testing.T) {
	if got := BytesToKB(4096); got != 4 {
		t.Fatalf("expected 4, got %d", got)
	}
	if got := BytesToKB(1023); got != 0 {
		t.Fatalf("expected truncation to 0, got %d", got)
	}
}
