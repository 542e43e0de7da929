package eventsub

import (
	"fmt"
)

// UnknownEventTypeError is returned when a message names a subscription type and
// version that this package has no decoder for. There is no best-effort fallback: a
// newly introduced type is rejected until it's registered here.
type UnknownEventTypeError struct {
	Type    EventType
	Version string
}

func (e *UnknownEventTypeError) Error() string {
	return fmt.Sprintf("unknown eventsub subscription type %q (version %q)", e.Type, e.Version)
}

// Part names the section of a message that failed to decode
type Part string

const (
	PartEnvelope  Part = "envelope"
	PartCondition Part = "condition"
	PartEvent     Part = "event"
)

// DecodeError is returned when a message is not valid JSON, or when its condition or
// event does not match the schema registered for its subscription type
type DecodeError struct {
	Key  Key
	Part Part
	Err  error
}

func (e *DecodeError) Error() string {
	if e.Part == PartEnvelope {
		return fmt.Sprintf("failed to decode eventsub message: %v", e.Err)
	}
	return fmt.Sprintf("failed to decode %s for %s: %v", e.Part, e.Key, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
