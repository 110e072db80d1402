// Package fake provides a capturing sink for testing purposes.
package fake

import (
	"context"
	"sync"
	"time"

	"github.com/hostdiag/diaglog-go/pkg/diaglog"
)

// Sink captures all emitted records so they can be inspected in tests.
type Sink struct {
	mu      sync.RWMutex
	records []Emission
}

// Emission is one captured sink call.
type Emission struct {
	Record    diaglog.Record
	Timestamp time.Time
}

// NewSink creates a new capturing sink.
func NewSink() *Sink {
	return &Sink{
		records: make([]Emission, 0),
	}
}

// Emit captures a record.
func (s *Sink) Emit(_ context.Context, record diaglog.Record) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = append(s.records, Emission{
		Record:    record,
		Timestamp: time.Now(),
	})
}

// Records returns all captured records (for test assertions).
func (s *Sink) Records() []diaglog.Record {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]diaglog.Record, 0, len(s.records))
	for _, e := range s.records {
		result = append(result, e.Record)
	}
	return result
}

// Emissions returns all captured emissions with their timestamps.
func (s *Sink) Emissions() []Emission {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]Emission, len(s.records))
	copy(result, s.records)
	return result
}

// Len returns the number of captured records.
func (s *Sink) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}

// Reset clears all captured records.
func (s *Sink) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = make([]Emission, 0)
}
