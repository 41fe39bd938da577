// Package perf provides lightweight wall-clock timing of named operations.
//
// A Tracker records the duration of every timed call under a named bucket
// and answers aggregate queries (count, total, min, max, average). It is
// purely additive instrumentation: timing an operation never changes its
// outcome or error behavior.
package perf

import (
	"fmt"
	"io"
	"slices"
	"sort"
	"sync"
	"time"
)

// Stats aggregates the recorded durations of one named operation.
type Stats struct {
	Count   int
	Total   time.Duration
	Min     time.Duration
	Max     time.Duration
	Average time.Duration
}

// Tracker records operation durations under named buckets. It is safe for
// concurrent use. The zero value is not usable; construct with NewTracker.
type Tracker struct {
	mu        sync.Mutex
	durations map[string][]time.Duration
	now       func() time.Time
}

// NewTracker creates an empty Tracker.
func NewTracker() *Tracker {
	return &Tracker{
		durations: make(map[string][]time.Duration),
		now:       time.Now,
	}
}

// Start begins timing the named operation and returns a release function
// that records the elapsed duration. Call it on every path, success or
// failure:
//
//	defer tracker.Start("load_json")()
func (t *Tracker) Start(name string) func() {
	began := t.now()
	return func() {
		t.Record(name, t.now().Sub(began))
	}
}

// Record appends a duration to the named bucket.
func (t *Tracker) Record(name string, d time.Duration) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.durations[name] = append(t.durations[name], d)
}

// Stats returns the aggregate for one bucket. The second return is false
// when nothing has been recorded under name.
func (t *Tracker) Stats(name string) (Stats, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	recorded, ok := t.durations[name]
	if !ok || len(recorded) == 0 {
		return Stats{}, false
	}
	return aggregate(recorded), true
}

// All returns the aggregate for every bucket.
func (t *Tracker) All() map[string]Stats {
	t.mu.Lock()
	defer t.mu.Unlock()

	all := make(map[string]Stats, len(t.durations))
	for name, recorded := range t.durations {
		if len(recorded) > 0 {
			all[name] = aggregate(recorded)
		}
	}
	return all
}

// Durations returns a copy of the raw recorded durations for one bucket in
// recording order.
func (t *Tracker) Durations(name string) []time.Duration {
	t.mu.Lock()
	defer t.mu.Unlock()
	return slices.Clone(t.durations[name])
}

// Clear resets every bucket.
func (t *Tracker) Clear() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.durations = make(map[string][]time.Duration)
}

// Report writes a textual summary of every bucket to w, sorted by
// operation name, with durations in milliseconds.
func (t *Tracker) Report(w io.Writer) {
	all := t.All()

	names := make([]string, 0, len(all))
	for name := range all {
		names = append(names, name)
	}
	sort.Strings(names)

	fmt.Fprintf(w, "%-28s %7s %12s %10s %10s %10s\n",
		"operation", "count", "total(ms)", "avg(ms)", "min(ms)", "max(ms)")
	for _, name := range names {
		s := all[name]
		fmt.Fprintf(w, "%-28s %7d %12.2f %10.2f %10.2f %10.2f\n",
			name, s.Count, millis(s.Total), millis(s.Average), millis(s.Min), millis(s.Max))
	}
}

func aggregate(recorded []time.Duration) Stats {
	s := Stats{
		Count: len(recorded),
		Min:   recorded[0],
		Max:   recorded[0],
	}
	for _, d := range recorded {
		s.Total += d
		if d < s.Min {
			s.Min = d
		}
		if d > s.Max {
			s.Max = d
		}
	}
	s.Average = s.Total / time.Duration(s.Count)
	return s
}

func millis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
