package zaplog

import (
	"context"
	"testing"

	"github.com/hostdiag/diaglog-go/pkg/diaglog"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

var _ diaglog.Sink = (*Sink)(nil)

func TestConvertLevel(t *testing.T) {
	tests := []struct {
		level diaglog.Level
		want  zapcore.Level
	}{
		{diaglog.LevelTrace, zapcore.DebugLevel},
		{diaglog.LevelDebug, zapcore.DebugLevel},
		{diaglog.LevelInformation, zapcore.InfoLevel},
		{diaglog.LevelWarning, zapcore.WarnLevel},
		{diaglog.LevelError, zapcore.ErrorLevel},
		{diaglog.LevelCritical, zapcore.ErrorLevel},
		{diaglog.Level("unknown"), zapcore.InfoLevel},
	}

	for _, tt := range tests {
		if got := convertLevel(tt.level); got != tt.want {
			t.Errorf("convertLevel(%q) = %v, want %v", tt.level, got, tt.want)
		}
	}
}

func TestEmitForwardsAllFields(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	sink := NewSink(zap.New(core))

	sink.Emit(context.Background(), diaglog.Record{
		Level:      diaglog.LevelWarning,
		Category:   "Function.TestFunction",
		Summary:    "slow invocation",
		InstanceID: "instance-1",
	})

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(entries))
	}

	entry := entries[0]
	if entry.Level != zapcore.WarnLevel {
		t.Errorf("level = %v, want warn", entry.Level)
	}
	if entry.Message != "slow invocation" {
		t.Errorf("message = %q", entry.Message)
	}

	fields := entry.ContextMap()
	if len(fields) != 12 {
		t.Errorf("got %d fields, want 12", len(fields))
	}
	if fields["category"] != "Function.TestFunction" {
		t.Errorf("category field = %v", fields["category"])
	}
	if fields["instanceId"] != "instance-1" {
		t.Errorf("instanceId field = %v", fields["instanceId"])
	}
	if fields["eventName"] != "" {
		t.Errorf("eventName field = %v, want empty string", fields["eventName"])
	}
}

func TestNewSinkWithNilLogger(t *testing.T) {
	sink := NewSink(nil)
	sink.Emit(context.Background(), diaglog.Record{Level: diaglog.LevelInformation, Summary: "ok"})
}
