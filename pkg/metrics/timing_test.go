package metrics

import (
	"testing"
	"time"
)

func TestTimingMetric_Record(t *testing.T) {
	SetEnabled(true)
	m := newTimingMetric("test")
	m.Record(2 * time.Millisecond)
	m.Record(4 * time.Millisecond)

	if m.Count() != 2 {
		t.Fatalf("Count = %d, want 2", m.Count())
	}
	if m.MinNs() != int64(2*time.Millisecond) || m.MaxNs() != int64(4*time.Millisecond) {
		t.Errorf("min/max = %d/%d", m.MinNs(), m.MaxNs())
	}
	if m.AvgNs() != int64(3*time.Millisecond) {
		t.Errorf("AvgNs = %d, want %d", m.AvgNs(), int64(3*time.Millisecond))
	}

	m.Reset()
	if m.Count() != 0 || m.AvgNs() != 0 {
		t.Error("Reset did not clear the metric")
	}
}

func TestTimer_DisabledIsNoop(t *testing.T) {
	SetEnabled(false)
	defer SetEnabled(true)

	m := newTimingMetric("noop")
	Timer(m)()
	if m.Count() != 0 {
		t.Fatalf("disabled timer recorded %d samples", m.Count())
	}
}

func TestCollect_IncludesCounters(t *testing.T) {
	SetEnabled(true)
	ResetAll()
	defer ResetAll()

	FetchStarted.Inc()
	FetchStarted.Inc()
	Timer(WindowCompute)()

	snap := Collect()
	if snap.Counters["fetch_started"] != 2 {
		t.Errorf("fetch_started = %d, want 2", snap.Counters["fetch_started"])
	}
	found := false
	for _, s := range snap.Timings {
		if s.Name == "window_compute" {
			found = true
		}
	}
	if !found {
		t.Error("window_compute missing from timings")
	}
}
