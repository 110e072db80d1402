// Package noop provides a sink that discards every record, useful when
// diagnostics are disabled.
package noop

import (
	"context"

	"github.com/hostdiag/diaglog-go/pkg/diaglog"
)

// Sink discards all records.
type Sink struct{}

// NewSink creates a discarding sink.
func NewSink() *Sink {
	return &Sink{}
}

// Emit discards the record.
func (*Sink) Emit(context.Context, diaglog.Record) {}
