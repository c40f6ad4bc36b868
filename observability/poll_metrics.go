// Package observability aggregates runtime counters for the poll engine.
package observability

import (
	"sync/atomic"
	"time"
)

// PollMetrics tracks poll lifecycle counters. All fields are updated with
// atomics; the struct is shared by the engine, the reporter worker and the
// debug server.
type PollMetrics struct {
	started        uint64
	passed         uint64
	failed         uint64
	aborted        uint64
	actionFailures uint64
	startedAt      time.Time
}

// MetricsSnapshot is a point-in-time copy, safe to serialize.
type MetricsSnapshot struct {
	Started        uint64 `json:"polls_started"`
	Passed         uint64 `json:"polls_passed"`
	Failed         uint64 `json:"polls_failed"`
	Aborted        uint64 `json:"polls_aborted"`
	ActionFailures uint64 `json:"action_failures"`
	UptimeSeconds  int64  `json:"uptime_seconds"`
}

func NewPollMetrics() *PollMetrics {
	return &PollMetrics{startedAt: time.Now()}
}

func (m *PollMetrics) IncrStarted() {
	atomic.AddUint64(&m.started, 1)
}

func (m *PollMetrics) IncrPassed() {
	atomic.AddUint64(&m.passed, 1)
}

func (m *PollMetrics) IncrFailed() {
	atomic.AddUint64(&m.failed, 1)
}

func (m *PollMetrics) IncrAborted() {
	atomic.AddUint64(&m.aborted, 1)
}

func (m *PollMetrics) IncrActionFailures() {
	atomic.AddUint64(&m.actionFailures, 1)
}

func (m *PollMetrics) Snapshot() MetricsSnapshot {
	return MetricsSnapshot{
		Started:        atomic.LoadUint64(&m.started),
		Passed:         atomic.LoadUint64(&m.passed),
		Failed:         atomic.LoadUint64(&m.failed),
		Aborted:        atomic.LoadUint64(&m.aborted),
		ActionFailures: atomic.LoadUint64(&m.actionFailures),
		UptimeSeconds:  int64(time.Since(m.startedAt).Seconds()),
	}
}
