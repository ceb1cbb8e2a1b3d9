package metrics

import "sync/atomic"

// Counter is a monotonically increasing event count.
type Counter struct {
	name string
	n    int64
}

func newCounter(name string) *Counter {
	return &Counter{name: name}
}

// Inc adds one to the counter.
func (c *Counter) Inc() {
	if !enabled {
		return
	}
	atomic.AddInt64(&c.n, 1)
}

// Name returns the counter name.
func (c *Counter) Name() string {
	return c.name
}

// Value returns the current count.
func (c *Counter) Value() int64 {
	return atomic.LoadInt64(&c.n)
}

// Reset sets the counter back to zero.
func (c *Counter) Reset() {
	atomic.StoreInt64(&c.n, 0)
}

// Event counters.
var (
	FetchStarted   = newCounter("fetch_started")
	FetchCancelled = newCounter("fetch_cancelled")
	FetchFailed    = newCounter("fetch_failed")
	FetchDropped   = newCounter("fetch_dropped")
	ScrollEvents   = newCounter("scroll_events")
)

// AllCounters returns all registered counters.
func AllCounters() []*Counter {
	return []*Counter{FetchStarted, FetchCancelled, FetchFailed, FetchDropped, ScrollEvents}
}

// Snapshot is the JSON shape printed by --robot-metrics.
type Snapshot struct {
	Timings  []TimingStats    `json:"timings"`
	Counters map[string]int64 `json:"counters"`
}

// Collect returns the current timings and counters.
func Collect() Snapshot {
	counters := make(map[string]int64)
	for _, c := range AllCounters() {
		counters[c.Name()] = c.Value()
	}
	return Snapshot{Timings: AllTimingStats(), Counters: counters}
}
