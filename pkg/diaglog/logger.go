package diaglog

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Config holds the construction-time constants of a Logger. The ambient
// deployment identifiers come from the host configuration; the adapter
// never reads the environment itself.
type Config struct {
	// Category identifies the logical source of every record this logger
	// produces. Fixed for the logger's lifetime.
	Category string

	// Sink receives eligible records.
	Sink Sink

	// HostInstanceID identifies the logging host instance. A fresh
	// identifier is generated when empty.
	HostInstanceID string

	// SubscriptionID and SiteName are ambient deployment identifiers,
	// constant for the logger's lifetime.
	SubscriptionID string
	SiteName       string

	// Scope is the logger's ambient scope. A fresh empty scope is created
	// when nil. Concurrent operations should instead carry their own
	// scope via ContextWithScope.
	Scope *Scope

	// Metrics optionally counts emitted and filtered records.
	Metrics *EmitterMetrics
}

// Logger forwards system log records for a single category to a sink,
// filtering out end-user log streams and sanitizing credentials from
// message and exception text.
type Logger struct {
	category       string
	sink           Sink
	instanceID     string
	subscriptionID string
	siteName       string
	scope          *Scope
	metrics        *EmitterMetrics
}

// New creates a logger for the given category and sink.
func New(cfg Config) (*Logger, error) {
	if cfg.Category == "" {
		return nil, fmt.Errorf("category cannot be empty")
	}
	if cfg.Sink == nil {
		return nil, fmt.Errorf("sink cannot be nil")
	}

	instanceID := cfg.HostInstanceID
	if instanceID == "" {
		instanceID = uuid.NewString()
	}

	scope := cfg.Scope
	if scope == nil {
		scope = NewScope()
	}

	return &Logger{
		category:       cfg.Category,
		sink:           cfg.Sink,
		instanceID:     instanceID,
		subscriptionID: cfg.SubscriptionID,
		siteName:       cfg.SiteName,
		scope:          scope,
		metrics:        cfg.Metrics,
	}, nil
}

// Category returns the logger's category.
func (l *Logger) Category() string {
	return l.category
}

// Scope returns the logger's ambient scope.
func (l *Logger) Scope() *Scope {
	return l.scope
}

// Enter pushes a frame onto the logger's ambient scope.
func (l *Logger) Enter(values State) *ScopeHandle {
	return l.scope.Enter(values)
}

// Tracef logs a trace-level message.
func (l *Logger) Tracef(ctx context.Context, template string, args ...any) {
	l.Log(ctx, LevelTrace, nil, nil, template, args...)
}

// Debugf logs a debug-level message.
func (l *Logger) Debugf(ctx context.Context, template string, args ...any) {
	l.Log(ctx, LevelDebug, nil, nil, template, args...)
}

// Infof logs an information-level message.
func (l *Logger) Infof(ctx context.Context, template string, args ...any) {
	l.Log(ctx, LevelInformation, nil, nil, template, args...)
}

// Warnf logs a warning-level message.
func (l *Logger) Warnf(ctx context.Context, template string, args ...any) {
	l.Log(ctx, LevelWarning, nil, nil, template, args...)
}

// Errorf logs an error-level message with an optional error.
func (l *Logger) Errorf(ctx context.Context, err error, template string, args ...any) {
	l.Log(ctx, LevelError, err, nil, template, args...)
}

// Criticalf logs a critical-level message with an optional error.
func (l *Logger) Criticalf(ctx context.Context, err error, template string, args ...any) {
	l.Log(ctx, LevelCritical, err, nil, template, args...)
}

// Log is the generic logging call. Both eligibility gates are
// re-evaluated from scratch on every invocation; an ineligible record is
// silently skipped, no sink call occurs. When both gates pass the record
// is built, sanitized and forwarded exactly once.
func (l *Logger) Log(ctx context.Context, level Level, err error, state State, template string, args ...any) {
	if ctx == nil {
		ctx = context.Background()
	}

	switch Classify(l.category) {
	case ClassUserFunction:
		l.metrics.filtered(filterReasonUserCategory)
		return
	case ClassOther:
		l.metrics.filtered(filterReasonUnclassified)
		return
	}

	// The raw template is checked alongside the state so the marker
	// cannot be smuggled through formatting.
	if userLogMarked(state, template) {
		l.metrics.filtered(filterReasonUserMarker)
		return
	}

	summary := template
	if len(args) > 0 {
		summary = fmt.Sprintf(template, args...)
	}

	record := l.build(ctx, level, summary, err, state)
	l.metrics.emitted()
	l.sink.Emit(ctx, record)
}

// userLogMarked reports whether the call is explicitly marked as an
// end-user log, either via the state mapping or via the marker key
// appearing verbatim in the message template.
func userLogMarked(state State, template string) bool {
	if _, ok := state[UserLogMarkerKey]; ok {
		return true
	}
	return strings.Contains(template, UserLogMarkerKey)
}

func (l *Logger) build(ctx context.Context, level Level, summary string, err error, state State) Record {
	record := Record{
		Level:                level,
		SubscriptionID:       l.subscriptionID,
		SiteName:             l.siteName,
		FunctionName:         FunctionName(l.category),
		EventName:            "", // reserved, always unset
		Category:             l.category,
		Summary:              Sanitize(summary),
		FunctionInvocationID: l.resolve(ctx, state, FunctionInvocationIDKey),
		ActivityID:           l.resolve(ctx, state, ActivityIDKey),
		InstanceID:           l.instanceID,
	}

	if err != nil {
		// Type names carry no secrets; message and details may.
		record.ExceptionType = fmt.Sprintf("%T", err)
		record.ExceptionMessage = Sanitize(err.Error())
		record.Details = Sanitize(fmt.Sprintf("%T: %+v", err, err))
	}

	return record
}

// resolve looks a correlation identifier up with per-call state first,
// then the operation scope carried on ctx, then the logger's own scope.
// Absent identifiers resolve to the empty string.
func (l *Logger) resolve(ctx context.Context, state State, key string) string {
	if v, ok := state[key]; ok {
		return valueString(v)
	}
	if scope := ScopeFromContext(ctx); scope != nil {
		if v, ok := scope.Lookup(key); ok {
			return valueString(v)
		}
	}
	if v, ok := l.scope.Lookup(key); ok {
		return valueString(v)
	}
	return ""
}
