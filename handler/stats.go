package handler

import "sync/atomic"

// Stats tracks handler statistics
type Stats struct {
	// ProcessedTotal counts lines written successfully
	ProcessedTotal atomic.Uint64
	// FailedTotal counts lines whose write returned an error
	FailedTotal atomic.Uint64
}

// NewStats creates a new Stats instance
func NewStats() *Stats {
	return &Stats{}
}

// IncrementProcessed atomically increments the processed counter
func (s *Stats) IncrementProcessed() {
	s.ProcessedTotal.Add(1)
}

// IncrementFailed atomically increments the failed counter
func (s *Stats) IncrementFailed() {
	s.FailedTotal.Add(1)
}

// Reset resets all counters to zero
func (s *Stats) Reset() {
	s.ProcessedTotal.Store(0)
	s.FailedTotal.Store(0)
}

// Snapshot is a point-in-time copy of Stats
type Snapshot struct {
	ProcessedTotal uint64
	FailedTotal    uint64
}

// GetSnapshot returns a snapshot of current statistics
func (s *Stats) GetSnapshot() Snapshot {
	return Snapshot{
		ProcessedTotal: s.ProcessedTotal.Load(),
		FailedTotal:    s.FailedTotal.Load(),
	}
}
