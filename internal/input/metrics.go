package input

import (
	"sync/atomic"
	"time"
)

// Metrics counts what the handler did over a session.
type Metrics struct {
	keysTotal    atomic.Uint64
	motionsTotal atomic.Uint64
	unknownTotal atomic.Uint64

	totalLatency atomic.Int64
	peakLatency  atomic.Int64

	startTime time.Time
}

// NewMetrics creates a new metrics tracker.
func NewMetrics() *Metrics {
	return &Metrics{startTime: time.Now()}
}

// RecordKey records a handled key and how long it took.
func (m *Metrics) RecordKey(latency time.Duration) {
	m.keysTotal.Add(1)

	ns := latency.Nanoseconds()
	m.totalLatency.Add(ns)
	for {
		current := m.peakLatency.Load()
		if ns <= current {
			break
		}
		if m.peakLatency.CompareAndSwap(current, ns) {
			break
		}
	}
}

// RecordMotion records an applied motion.
func (m *Metrics) RecordMotion() {
	m.motionsTotal.Add(1)
}

// RecordUnknown records an unknown two-key sequence.
func (m *Metrics) RecordUnknown() {
	m.unknownTotal.Add(1)
}

// MetricsSnapshot is a point-in-time copy of Metrics.
type MetricsSnapshot struct {
	Keys        uint64
	Motions     uint64
	Unknown     uint64
	AvgLatency  time.Duration
	PeakLatency time.Duration
	Uptime      time.Duration
}

// Snapshot returns the current counters.
func (m *Metrics) Snapshot() MetricsSnapshot {
	keys := m.keysTotal.Load()
	snap := MetricsSnapshot{
		Keys:        keys,
		Motions:     m.motionsTotal.Load(),
		Unknown:     m.unknownTotal.Load(),
		PeakLatency: time.Duration(m.peakLatency.Load()),
		Uptime:      time.Since(m.startTime),
	}
	if keys > 0 {
		snap.AvgLatency = time.Duration(m.totalLatency.Load() / int64(keys))
	}
	return snap
}

// Reset zeroes all counters.
func (m *Metrics) Reset() {
	m.keysTotal.Store(0)
	m.motionsTotal.Store(0)
	m.unknownTotal.Store(0)
	m.totalLatency.Store(0)
	m.peakLatency.Store(0)
	m.startTime = time.Now()
}
