package otel

import (
	"github.com/hostdiag/diaglog-go/pkg/diaglog"

	otellog "go.opentelemetry.io/otel/log"
)

// convertLevel converts a diaglog.Level to an OTel Severity.
func convertLevel(level diaglog.Level) otellog.Severity {
	severityMap := map[diaglog.Level]otellog.Severity{
		diaglog.LevelTrace:       otellog.SeverityTrace,
		diaglog.LevelDebug:       otellog.SeverityDebug,
		diaglog.LevelInformation: otellog.SeverityInfo,
		diaglog.LevelWarning:     otellog.SeverityWarn,
		diaglog.LevelError:       otellog.SeverityError,
		diaglog.LevelCritical:    otellog.SeverityFatal,
	}

	if severity, exists := severityMap[level]; exists {
		return severity
	}

	return otellog.SeverityInfo
}

// recordAttributes converts the fixed record fields (summary travels as
// the body, level as severity) to OTel log attributes. Empty strings are
// forwarded as-is to keep the shape fixed-arity.
func recordAttributes(record diaglog.Record) []otellog.KeyValue {
	return []otellog.KeyValue{
		otellog.String("subscriptionId", record.SubscriptionID),
		otellog.String("siteName", record.SiteName),
		otellog.String("functionName", record.FunctionName),
		otellog.String("eventName", record.EventName),
		otellog.String("category", record.Category),
		otellog.String("details", record.Details),
		otellog.String("exceptionType", record.ExceptionType),
		otellog.String("exceptionMessage", record.ExceptionMessage),
		otellog.String("functionInvocationId", record.FunctionInvocationID),
		otellog.String("instanceId", record.InstanceID),
		otellog.String("activityId", record.ActivityID),
	}
}
