package diaglog

// Level represents the severity of a log record.
type Level string

const (
	LevelTrace       Level = "trace"
	LevelDebug       Level = "debug"
	LevelInformation Level = "information"
	LevelWarning     Level = "warning"
	LevelError       Level = "error"
	LevelCritical    Level = "critical"
)
