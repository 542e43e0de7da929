package pubsub

import (
	"fmt"
)

// UnknownTopicError is returned when a topic string names a topic that this package
// does not support
type UnknownTopicError struct {
	Topic string
}

func (e *UnknownTopicError) Error() string {
	return fmt.Sprintf("unknown pubsub topic '%s'", e.Topic)
}

// InvalidTopicError is returned when a topic's name is known but its parameters are
// malformed
type InvalidTopicError struct {
	Topic  string
	Reason string
}

func (e *InvalidTopicError) Error() string {
	return fmt.Sprintf("invalid pubsub topic '%s': %s", e.Topic, e.Reason)
}

// UnknownResponseTypeError is returned for a frame whose type is not one of RESPONSE,
// MESSAGE, PONG or RECONNECT
type UnknownResponseTypeError struct {
	Type string
}

func (e *UnknownResponseTypeError) Error() string {
	return fmt.Sprintf("unknown pubsub response type '%s'", e.Type)
}

// DecodeError is returned when a frame, or the message embedded within it, does not
// match the expected schema. Body holds the text that failed to decode.
type DecodeError struct {
	Topic string
	Body  string
	Err   error
}

func (e *DecodeError) Error() string {
	if e.Topic == "" {
		return fmt.Sprintf("failed to decode pubsub frame: %v", e.Err)
	}
	return fmt.Sprintf("failed to decode message for topic '%s': %v", e.Topic, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
