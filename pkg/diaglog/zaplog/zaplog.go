// Package zaplog provides a diagnostic sink backed by a zap logger,
// intended for local development where no OTLP collector is running.
// Output encoding stays under zap's control.
package zaplog

import (
	"context"

	"github.com/hostdiag/diaglog-go/pkg/diaglog"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Sink forwards diagnostic records to a zap logger.
type Sink struct {
	logger *zap.Logger
}

// NewSink creates a zap-backed sink. A nil logger falls back to zap's
// no-op logger.
func NewSink(logger *zap.Logger) *Sink {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Sink{logger: logger}
}

// convertLevel maps a diaglog.Level to a zap level. Critical maps to
// ErrorLevel: the fatal and panic levels terminate the process, which a
// delivery sink must never do.
func convertLevel(level diaglog.Level) zapcore.Level {
	levelMap := map[diaglog.Level]zapcore.Level{
		diaglog.LevelTrace:       zapcore.DebugLevel,
		diaglog.LevelDebug:       zapcore.DebugLevel,
		diaglog.LevelInformation: zapcore.InfoLevel,
		diaglog.LevelWarning:     zapcore.WarnLevel,
		diaglog.LevelError:       zapcore.ErrorLevel,
		diaglog.LevelCritical:    zapcore.ErrorLevel,
	}

	if zapLevel, exists := levelMap[level]; exists {
		return zapLevel
	}

	return zapcore.InfoLevel
}

// Emit writes one diagnostic record. All twelve non-level fields are
// forwarded so the fixed-arity contract survives into the output.
func (s *Sink) Emit(_ context.Context, record diaglog.Record) {
	if entry := s.logger.Check(convertLevel(record.Level), record.Summary); entry != nil {
		entry.Write(
			zap.String("subscriptionId", record.SubscriptionID),
			zap.String("siteName", record.SiteName),
			zap.String("functionName", record.FunctionName),
			zap.String("eventName", record.EventName),
			zap.String("category", record.Category),
			zap.String("details", record.Details),
			zap.String("summary", record.Summary),
			zap.String("exceptionType", record.ExceptionType),
			zap.String("exceptionMessage", record.ExceptionMessage),
			zap.String("functionInvocationId", record.FunctionInvocationID),
			zap.String("instanceId", record.InstanceID),
			zap.String("activityId", record.ActivityID),
		)
	}
}
