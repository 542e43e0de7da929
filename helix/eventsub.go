package helix

import (
	"net/http"
	"net/url"
	"time"

	"github.com/golden-vcr/twitchapi"
)

// EventSubStatus is the state of an EventSub subscription as reported by Twitch
type EventSubStatus string

const (
	EventSubStatusEnabled                      EventSubStatus = "enabled"
	EventSubStatusVerificationPending          EventSubStatus = "webhook_callback_verification_pending"
	EventSubStatusVerificationFailed           EventSubStatus = "webhook_callback_verification_failed"
	EventSubStatusNotificationFailuresExceeded EventSubStatus = "notification_failures_exceeded"
	EventSubStatusAuthorizationRevoked         EventSubStatus = "authorization_revoked"
	EventSubStatusModeratorRemoved             EventSubStatus = "moderator_removed"
	EventSubStatusUserRemoved                  EventSubStatus = "user_removed"
	EventSubStatusVersionRemoved               EventSubStatus = "version_removed"
)

// EventSubTransport describes how notifications for a subscription are delivered. Secret
// is only ever sent, never returned.
type EventSubTransport struct {
	Method    string `json:"method"`
	Callback  string `json:"callback,omitempty"`
	Secret    string `json:"secret,omitempty"`
	SessionID string `json:"session_id,omitempty"`
	ConduitID string `json:"conduit_id,omitempty"`
}

// NewWebhookTransport returns a transport that delivers notifications by POSTing to
// callback, signed with secret
func NewWebhookTransport(callback, secret string) EventSubTransport {
	return EventSubTransport{Method: "webhook", Callback: callback, Secret: secret}
}

// NewWebsocketTransport returns a transport that delivers notifications over the given
// EventSub websocket session
func NewWebsocketTransport(sessionID string) EventSubTransport {
	return EventSubTransport{Method: "websocket", SessionID: sessionID}
}

// EventSubSubscription is a subscription as registered with Twitch. Condition is kept as
// a flat map: the eventsub package can convert it to a typed condition.
type EventSubSubscription struct {
	ID        string            `json:"id"`
	Status    EventSubStatus    `json:"status"`
	Type      string            `json:"type"`
	Version   string            `json:"version"`
	Condition map[string]string `json:"condition"`
	CreatedAt time.Time         `json:"created_at"`
	Transport EventSubTransport `json:"transport"`
	Cost      int64             `json:"cost"`
}

// GetEventSubSubscriptionsRequest lists the EventSub subscriptions created by the client
// ID that owns the (app) access token. At most one filter may be set.
//
// The response's Other map carries total_cost and max_total_cost.
//
// https://dev.twitch.tv/docs/api/reference#get-eventsub-subscriptions
type GetEventSubSubscriptionsRequest struct {
	Status EventSubStatus
	Type   string
	UserID string
	After  Cursor
}

// NewGetEventSubSubscriptionsRequest returns a request for all subscriptions
func NewGetEventSubSubscriptionsRequest() GetEventSubSubscriptionsRequest {
	return GetEventSubSubscriptionsRequest{}
}

// ForUser restricts results to subscriptions whose condition references userID
func (r GetEventSubSubscriptionsRequest) ForUser(userID string) GetEventSubSubscriptionsRequest {
	r.UserID = userID
	return r
}

// WithStatus restricts results to subscriptions in the given state
func (r GetEventSubSubscriptionsRequest) WithStatus(status EventSubStatus) GetEventSubSubscriptionsRequest {
	r.Status = status
	return r
}

// OfType restricts results to subscriptions of the given event type
func (r GetEventSubSubscriptionsRequest) OfType(eventType string) GetEventSubSubscriptionsRequest {
	r.Type = eventType
	return r
}

func (r GetEventSubSubscriptionsRequest) Method() string             { return http.MethodGet }
func (r GetEventSubSubscriptionsRequest) Path() string               { return "eventsub/subscriptions" }
func (r GetEventSubSubscriptionsRequest) Scope() twitchapi.Validator { return twitchapi.NoScopes() }

func (r GetEventSubSubscriptionsRequest) Query() url.Values {
	q := url.Values{}
	setOptional(q, "status", string(r.Status))
	setOptional(q, "type", r.Type)
	setOptional(q, "user_id", r.UserID)
	setOptional(q, "after", string(r.After))
	return q
}

func (r GetEventSubSubscriptionsRequest) ParseResponse(raw *RawResponse) (*Response[[]EventSubSubscription], error) {
	return DecodeData[[]EventSubSubscription](raw)
}

func (r GetEventSubSubscriptionsRequest) WithAfter(cursor Cursor) Pageable[[]EventSubSubscription] {
	r.After = cursor
	return r
}

// CreateEventSubSubscriptionBody is the JSON body of a Create EventSub Subscription
// request
type CreateEventSubSubscriptionBody struct {
	Type      string            `json:"type"`
	Version   string            `json:"version"`
	Condition map[string]string `json:"condition"`
	Transport EventSubTransport `json:"transport"`
}

// CreateEventSubSubscriptionRequest registers a new EventSub subscription. Webhook
// subscriptions require an app access token; Twitch responds 202 Accepted and then
// sends a verification challenge to the callback.
//
// https://dev.twitch.tv/docs/api/reference#create-eventsub-subscription
type CreateEventSubSubscriptionRequest struct{}

// NewCreateEventSubSubscriptionRequest returns a Create EventSub Subscription request
func NewCreateEventSubSubscriptionRequest() CreateEventSubSubscriptionRequest {
	return CreateEventSubSubscriptionRequest{}
}

func (r CreateEventSubSubscriptionRequest) Method() string             { return http.MethodPost }
func (r CreateEventSubSubscriptionRequest) Path() string               { return "eventsub/subscriptions" }
func (r CreateEventSubSubscriptionRequest) Scope() twitchapi.Validator { return twitchapi.NoScopes() }
func (r CreateEventSubSubscriptionRequest) Query() url.Values          { return url.Values{} }

func (r CreateEventSubSubscriptionRequest) EncodeBody(body CreateEventSubSubscriptionBody) ([]byte, error) {
	return encodeJSON(body)
}

func (r CreateEventSubSubscriptionRequest) ParseResponse(raw *RawResponse) (*Response[EventSubSubscription], error) {
	return DecodeFirst[EventSubSubscription](raw)
}

// EventSubDeleted is the only successful outcome of Delete EventSub Subscription, which
// responds with 204 No Content
type EventSubDeleted struct{}

// DeleteEventSubSubscriptionRequest removes a single EventSub subscription by ID
//
// https://dev.twitch.tv/docs/api/reference#delete-eventsub-subscription
type DeleteEventSubSubscriptionRequest struct {
	ID string
}

// NewDeleteEventSubSubscriptionRequest returns a request to delete the subscription with
// the given ID
func NewDeleteEventSubSubscriptionRequest(id string) DeleteEventSubSubscriptionRequest {
	return DeleteEventSubSubscriptionRequest{ID: id}
}

func (r DeleteEventSubSubscriptionRequest) Method() string             { return http.MethodDelete }
func (r DeleteEventSubSubscriptionRequest) Path() string               { return "eventsub/subscriptions" }
func (r DeleteEventSubSubscriptionRequest) Scope() twitchapi.Validator { return twitchapi.NoScopes() }

func (r DeleteEventSubSubscriptionRequest) Query() url.Values {
	q := url.Values{}
	q.Set("id", r.ID)
	return q
}

func (r DeleteEventSubSubscriptionRequest) ParseResponse(raw *RawResponse) (*Response[EventSubDeleted], error) {
	return DecodeNoContent(raw, EventSubDeleted{})
}
