// Package metrics defines the minimal instrumentation surface recorded by
// the scheduler: processed items, pulled batches, contained faults, in-flight
// workers, and batch sizes. The default provider is a no-op; BasicProvider
// offers an in-memory implementation for tests and lightweight apps.
package metrics

// Provider constructs instruments by name. Implementations must be safe for
// concurrent use and must return the same instrument for the same name.
type Provider interface {
	Counter(name string) Counter
	UpDownCounter(name string) UpDownCounter
	Histogram(name string) Histogram
}

// Counter records monotonic counts.
// Methods must be safe for concurrent use.
type Counter interface {
	Add(n int64)
}

// UpDownCounter records values that can move up or down (e.g., current
// in-flight workers). Methods must be safe for concurrent use.
type UpDownCounter interface {
	Add(n int64)
}

// Histogram records a distribution of float64 measurements.
// Methods must be safe for concurrent use.
type Histogram interface {
	Record(v float64)
}
