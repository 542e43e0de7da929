package pubsub

import (
	"strconv"
	"strings"

	"github.com/golden-vcr/twitchapi"
)

// Topic identifies a stream of PubSub messages. Its wire form, as returned by String,
// is the topic name followed by its numeric parameters, delimited by dots: e.g.
// "chat_moderator_actions.1234.5678".
type Topic interface {
	Name() string
	String() string
	Scope() twitchapi.Validator
}

func formatTopic(name string, ids ...uint32) string {
	var b strings.Builder
	b.WriteString(name)
	for _, id := range ids {
		b.WriteByte('.')
		b.WriteString(strconv.FormatUint(uint64(id), 10))
	}
	return b.String()
}

// CommunityPointsChannelV1 carries channel points redemptions for a channel
type CommunityPointsChannelV1 struct {
	ChannelID uint32
}

func (CommunityPointsChannelV1) Name() string               { return "community-points-channel-v1" }
func (t CommunityPointsChannelV1) String() string           { return formatTopic(t.Name(), t.ChannelID) }
func (CommunityPointsChannelV1) Scope() twitchapi.Validator { return twitchapi.NoScopes() }

// CommunityPointsUserV1 carries changes to the authenticated user's channel points
// balance in a channel
type CommunityPointsUserV1 struct {
	ChannelID uint32
}

func (CommunityPointsUserV1) Name() string               { return "community-points-user-v1" }
func (t CommunityPointsUserV1) String() string           { return formatTopic(t.Name(), t.ChannelID) }
func (CommunityPointsUserV1) Scope() twitchapi.Validator { return twitchapi.NoScopes() }

// ChannelPointsChannelV1 is the documented counterpart to CommunityPointsChannelV1,
// requiring the broadcaster's authorization
type ChannelPointsChannelV1 struct {
	ChannelID uint32
}

func (ChannelPointsChannelV1) Name() string     { return "channel-points-channel-v1" }
func (t ChannelPointsChannelV1) String() string { return formatTopic(t.Name(), t.ChannelID) }
func (ChannelPointsChannelV1) Scope() twitchapi.Validator {
	return twitchapi.RequireAll(twitchapi.ScopeChannelReadRedemptions)
}

// ChannelBitsEventsV2 carries cheers in a channel
type ChannelBitsEventsV2 struct {
	ChannelID uint32
}

func (ChannelBitsEventsV2) Name() string     { return "channel-bits-events-v2" }
func (t ChannelBitsEventsV2) String() string { return formatTopic(t.Name(), t.ChannelID) }
func (ChannelBitsEventsV2) Scope() twitchapi.Validator {
	return twitchapi.RequireAll(twitchapi.ScopeBitsRead)
}

// ChannelBitsBadgeUnlocks fires when a user earns a new bits badge in a channel
type ChannelBitsBadgeUnlocks struct {
	ChannelID uint32
}

func (ChannelBitsBadgeUnlocks) Name() string     { return "channel-bits-badge-unlocks" }
func (t ChannelBitsBadgeUnlocks) String() string { return formatTopic(t.Name(), t.ChannelID) }
func (ChannelBitsBadgeUnlocks) Scope() twitchapi.Validator {
	return twitchapi.RequireAll(twitchapi.ScopeBitsRead)
}

// ChannelSubscribeEventsV1 carries subscriptions, resubscriptions and gifts in a channel
type ChannelSubscribeEventsV1 struct {
	ChannelID uint32
}

func (ChannelSubscribeEventsV1) Name() string     { return "channel-subscribe-events-v1" }
func (t ChannelSubscribeEventsV1) String() string { return formatTopic(t.Name(), t.ChannelID) }
func (ChannelSubscribeEventsV1) Scope() twitchapi.Validator {
	return twitchapi.RequireAll(twitchapi.ScopeChannelReadSubscriptions)
}

// ChatModeratorActions carries moderation actions taken in a channel, as seen by the
// given moderator
type ChatModeratorActions struct {
	UserID    uint32
	ChannelID uint32
}

func (ChatModeratorActions) Name() string { return "chat_moderator_actions" }
func (t ChatModeratorActions) String() string {
	return formatTopic(t.Name(), t.UserID, t.ChannelID)
}
func (ChatModeratorActions) Scope() twitchapi.Validator {
	return twitchapi.RequireAll(twitchapi.ScopeChannelModerate)
}

// AutoModQueue carries messages held for review by AutoMod in a channel
type AutoModQueue struct {
	ModeratorID uint32
	ChannelID   uint32
}

func (AutoModQueue) Name() string { return "automod-queue" }
func (t AutoModQueue) String() string {
	return formatTopic(t.Name(), t.ModeratorID, t.ChannelID)
}
func (AutoModQueue) Scope() twitchapi.Validator {
	return twitchapi.RequireAll(twitchapi.ScopeModeratorManageAutomod)
}

// UserModerationNotifications notifies a user when their own message is held or
// resolved by AutoMod
type UserModerationNotifications struct {
	CurrentUserID uint32
	ChannelID     uint32
}

func (UserModerationNotifications) Name() string { return "user-moderation-notifications" }
func (t UserModerationNotifications) String() string {
	return formatTopic(t.Name(), t.CurrentUserID, t.ChannelID)
}
func (UserModerationNotifications) Scope() twitchapi.Validator {
	return twitchapi.RequireAll(twitchapi.ScopeChatRead)
}

// PredictionsChannelV1 carries the lifecycle of predictions in a channel
type PredictionsChannelV1 struct {
	ChannelID uint32
}

func (PredictionsChannelV1) Name() string               { return "predictions-channel-v1" }
func (t PredictionsChannelV1) String() string           { return formatTopic(t.Name(), t.ChannelID) }
func (PredictionsChannelV1) Scope() twitchapi.Validator { return twitchapi.NoScopes() }

// PredictionsUserV1 carries the authenticated user's own predictions in a channel
type PredictionsUserV1 struct {
	ChannelID uint32
}

func (PredictionsUserV1) Name() string               { return "predictions-user-v1" }
func (t PredictionsUserV1) String() string           { return formatTopic(t.Name(), t.ChannelID) }
func (PredictionsUserV1) Scope() twitchapi.Validator { return twitchapi.NoScopes() }

// ParseTopic decodes the wire form of a topic. It is the exact inverse of String: the
// name must be known, the number of parameters must match, and each parameter must be
// a canonically-formatted 32-bit unsigned integer.
func ParseTopic(s string) (Topic, error) {
	parts := strings.Split(s, ".")
	h, ok := registry[parts[0]]
	if !ok {
		return nil, &UnknownTopicError{Topic: s}
	}
	params := parts[1:]
	if len(params) != h.numParams {
		return nil, &InvalidTopicError{Topic: s, Reason: "expected " + strconv.Itoa(h.numParams) + " parameters, got " + strconv.Itoa(len(params))}
	}
	ids := make([]uint32, 0, len(params))
	for _, param := range params {
		id, err := strconv.ParseUint(param, 10, 32)
		if err != nil || strconv.FormatUint(id, 10) != param {
			return nil, &InvalidTopicError{Topic: s, Reason: "invalid numeric parameter '" + param + "'"}
		}
		ids = append(ids, uint32(id))
	}
	return h.build(ids), nil
}
