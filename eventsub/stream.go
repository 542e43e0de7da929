package eventsub

import (
	"time"

	"github.com/golden-vcr/twitchapi"
)

// StreamOnlineV1 fires when the broadcaster starts a stream
type StreamOnlineV1 struct {
	BroadcasterUserID string `json:"broadcaster_user_id"`
}

func NewStreamOnlineV1(broadcasterUserID string) StreamOnlineV1 {
	return StreamOnlineV1{BroadcasterUserID: broadcasterUserID}
}

func (StreamOnlineV1) EventType() EventType       { return EventTypeStreamOnline }
func (StreamOnlineV1) Version() string            { return "1" }
func (StreamOnlineV1) Scope() twitchapi.Validator { return twitchapi.NoScopes() }

// StreamOnlineV1Payload describes a stream that's just gone live: Type is one of "live",
// "playlist", "watch_party", "premiere" or "rerun"
type StreamOnlineV1Payload struct {
	ID string `json:"id"`
	Broadcaster
	Type      string    `json:"type"`
	StartedAt time.Time `json:"started_at"`
}

// StreamOfflineV1 fires when the broadcaster stops a stream
type StreamOfflineV1 struct {
	BroadcasterUserID string `json:"broadcaster_user_id"`
}

func NewStreamOfflineV1(broadcasterUserID string) StreamOfflineV1 {
	return StreamOfflineV1{BroadcasterUserID: broadcasterUserID}
}

func (StreamOfflineV1) EventType() EventType       { return EventTypeStreamOffline }
func (StreamOfflineV1) Version() string            { return "1" }
func (StreamOfflineV1) Scope() twitchapi.Validator { return twitchapi.NoScopes() }

type StreamOfflineV1Payload struct {
	Broadcaster
}
