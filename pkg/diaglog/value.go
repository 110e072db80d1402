package diaglog

// Value is a scope frame or call state value. Only strings, booleans and
// correlation identifiers are ever consulted by the adapter, so the set of
// kinds is closed.
type Value interface {
	isValue()
}

// StringValue holds a plain string value.
type StringValue string

// BoolValue holds a boolean value.
type BoolValue bool

// IDValue holds a correlation identifier.
type IDValue string

func (StringValue) isValue() {}
func (BoolValue) isValue()   {}
func (IDValue) isValue()     {}

// String creates a string value.
func String(v string) Value {
	return StringValue(v)
}

// Bool creates a boolean value.
func Bool(v bool) Value {
	return BoolValue(v)
}

// ID creates a correlation identifier value.
func ID(v string) Value {
	return IDValue(v)
}

// State is the transient key/value mapping passed to a single log call.
// It is consulted with higher priority than the ambient scope for that one
// call only and never persists beyond it.
type State map[string]Value

// Well-known keys consulted by the adapter. Both the adapter and its
// callers agree on these names.
const (
	// FunctionInvocationIDKey carries the identifier of the function
	// invocation a record belongs to.
	FunctionInvocationIDKey = "functionInvocationId"

	// ActivityIDKey carries the identifier linking records across a
	// logical activity.
	ActivityIDKey = "activityId"

	// UserLogMarkerKey marks a record as belonging to a function's
	// end-user log stream. Marked records are never forwarded.
	UserLogMarkerKey = "isUserLog"
)

// valueString returns the string form of a value for record fields.
// Booleans carry no identifier content and resolve to the empty string.
func valueString(v Value) string {
	switch v := v.(type) {
	case StringValue:
		return string(v)
	case IDValue:
		return string(v)
	default:
		return ""
	}
}
