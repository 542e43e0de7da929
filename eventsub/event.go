package eventsub

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// MessageType distinguishes the kinds of message Twitch delivers over an EventSub
// transport
type MessageType string

const (
	MessageTypeNotification     MessageType = "notification"
	MessageTypeVerification     MessageType = "webhook_callback_verification"
	MessageTypeRevocation       MessageType = "revocation"
	MessageTypeSessionWelcome   MessageType = "session_welcome"
	MessageTypeSessionKeepalive MessageType = "session_keepalive"
	MessageTypeSessionReconnect MessageType = "session_reconnect"
)

// Headers sent by Twitch with every webhook delivery
const (
	HeaderMessageID        = "Twitch-Eventsub-Message-Id"
	HeaderMessageType      = "Twitch-Eventsub-Message-Type"
	HeaderMessageTimestamp = "Twitch-Eventsub-Message-Timestamp"
	HeaderMessageSignature = "Twitch-Eventsub-Message-Signature"
)

// Transport describes how Twitch delivers notifications for a subscription
type Transport struct {
	Method    string `json:"method"`
	Callback  string `json:"callback,omitempty"`
	SessionID string `json:"session_id,omitempty"`
}

// SubscriptionInfo is the subscription metadata that accompanies every message
type SubscriptionInfo struct {
	ID        string          `json:"id"`
	Status    string          `json:"status"`
	Type      EventType       `json:"type"`
	Version   string          `json:"version"`
	Cost      int64           `json:"cost"`
	Condition json.RawMessage `json:"condition"`
	Transport Transport       `json:"transport"`
	CreatedAt time.Time       `json:"created_at"`
}

// Key returns the type and version that determine how this subscription's condition
// and events are decoded
func (s SubscriptionInfo) Key() Key {
	return Key{Type: s.Type, Version: s.Version}
}

// Event is a fully-decoded EventSub message. Condition is always the typed condition
// registered for the subscription's type and version. Payload is set only for
// notifications, and Challenge only for webhook verification requests.
type Event struct {
	MessageType  MessageType
	Subscription SubscriptionInfo
	Condition    Subscription
	Payload      any
	Challenge    string
	RawPayload   json.RawMessage
}

// NotificationPayload returns the event's payload as type P, if the event is a
// notification carrying that payload type
func NotificationPayload[P any](e *Event) (P, bool) {
	if e == nil || e.MessageType != MessageTypeNotification {
		var zero P
		return zero, false
	}
	p, ok := e.Payload.(P)
	return p, ok
}

type envelope struct {
	Subscription SubscriptionInfo `json:"subscription"`
	Event        json.RawMessage  `json:"event"`
	Challenge    string           `json:"challenge"`
}

// ParseEvent decodes a webhook request body when the message type header isn't
// available, inferring the message type from the body: a challenge indicates a
// verification request, an event indicates a notification, and anything else is a
// revocation.
func ParseEvent(body []byte) (*Event, error) {
	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, &DecodeError{Part: PartEnvelope, Err: err}
	}
	messageType := MessageTypeRevocation
	if env.Challenge != "" {
		messageType = MessageTypeVerification
	} else if !isNull(env.Event) {
		messageType = MessageTypeNotification
	}
	return decodeEnvelope(messageType, &env)
}

// ParseHTTP decodes a webhook request, using the Twitch-Eventsub-Message-Type header to
// determine what kind of message the body holds. Signature verification is the
// caller's responsibility.
func ParseHTTP(header http.Header, body []byte) (*Event, error) {
	messageType := MessageType(header.Get(HeaderMessageType))
	if messageType == "" {
		return ParseEvent(body)
	}
	switch messageType {
	case MessageTypeNotification, MessageTypeVerification, MessageTypeRevocation:
	default:
		return nil, &DecodeError{Part: PartEnvelope, Err: fmt.Errorf("unsupported webhook message type %q", messageType)}
	}

	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, &DecodeError{Part: PartEnvelope, Err: err}
	}
	return decodeEnvelope(messageType, &env)
}

func decodeEnvelope(messageType MessageType, env *envelope) (*Event, error) {
	key := env.Subscription.Key()
	h, ok := registry[key]
	if !ok {
		return nil, &UnknownEventTypeError{Type: key.Type, Version: key.Version}
	}

	condition, err := h.parseCondition(env.Subscription.Condition)
	if err != nil {
		return nil, &DecodeError{Key: key, Part: PartCondition, Err: err}
	}

	event := &Event{
		MessageType:  messageType,
		Subscription: env.Subscription,
		Condition:    condition,
		Challenge:    env.Challenge,
	}
	if messageType == MessageTypeNotification {
		if isNull(env.Event) {
			return nil, &DecodeError{Key: key, Part: PartEvent, Err: fmt.Errorf("notification has no event")}
		}
		payload, err := h.parsePayload(env.Event)
		if err != nil {
			return nil, &DecodeError{Key: key, Part: PartEvent, Err: err}
		}
		event.Payload = payload
		event.RawPayload = env.Event
	}
	return event, nil
}

func isNull(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}
