package diaglog

import "context"

// Record is the fixed-shape structured event handed to a sink. Every
// field is a concrete string or Level: absent data is the empty string,
// never a missing field, so the sink contract is fixed-arity.
type Record struct {
	Level                Level
	SubscriptionID       string
	SiteName             string
	FunctionName         string
	EventName            string
	Category             string
	Details              string
	Summary              string
	ExceptionType        string
	ExceptionMessage     string
	FunctionInvocationID string
	InstanceID           string
	ActivityID           string
}

// Sink is the external structured-event destination. Delivery, retries
// and failure handling are the sink's concern; the adapter calls Emit at
// most once per eligible record and never retries.
type Sink interface {
	Emit(ctx context.Context, record Record)
}
