package eventsub

import (
	"time"

	"github.com/golden-vcr/twitchapi"
)

// ChannelUpdateV2 fires when a broadcaster updates the category, title, content
// classification labels, or broadcast language for their channel
type ChannelUpdateV2 struct {
	BroadcasterUserID string `json:"broadcaster_user_id"`
}

func NewChannelUpdateV2(broadcasterUserID string) ChannelUpdateV2 {
	return ChannelUpdateV2{BroadcasterUserID: broadcasterUserID}
}

func (ChannelUpdateV2) EventType() EventType       { return EventTypeChannelUpdate }
func (ChannelUpdateV2) Version() string            { return "2" }
func (ChannelUpdateV2) Scope() twitchapi.Validator { return twitchapi.NoScopes() }

type ChannelUpdateV2Payload struct {
	Broadcaster
	Title                       string   `json:"title"`
	Language                    string   `json:"language"`
	CategoryID                  string   `json:"category_id"`
	CategoryName                string   `json:"category_name"`
	ContentClassificationLabels []string `json:"content_classification_labels"`
}

// ChannelFollowV2 fires when a user follows the broadcaster's channel. The moderator
// must be the broadcaster or one of their moderators, and the token used to create the
// subscription must belong to that user.
type ChannelFollowV2 struct {
	BroadcasterUserID string `json:"broadcaster_user_id"`
	ModeratorUserID   string `json:"moderator_user_id"`
}

func NewChannelFollowV2(broadcasterUserID, moderatorUserID string) ChannelFollowV2 {
	return ChannelFollowV2{
		BroadcasterUserID: broadcasterUserID,
		ModeratorUserID:   moderatorUserID,
	}
}

func (ChannelFollowV2) EventType() EventType { return EventTypeChannelFollow }
func (ChannelFollowV2) Version() string      { return "2" }
func (ChannelFollowV2) Scope() twitchapi.Validator {
	return twitchapi.RequireAll(twitchapi.ScopeModeratorReadFollowers)
}

type ChannelFollowV2Payload struct {
	User
	Broadcaster
	FollowedAt time.Time `json:"followed_at"`
}

// ChannelRaidV1 fires when one broadcaster raids another. Exactly one of the from or
// to user IDs should be set.
type ChannelRaidV1 struct {
	FromBroadcasterUserID string `json:"from_broadcaster_user_id,omitempty"`
	ToBroadcasterUserID   string `json:"to_broadcaster_user_id,omitempty"`
}

// NewChannelRaidV1To subscribes to raids that target the given broadcaster
func NewChannelRaidV1To(toBroadcasterUserID string) ChannelRaidV1 {
	return ChannelRaidV1{ToBroadcasterUserID: toBroadcasterUserID}
}

// NewChannelRaidV1From subscribes to raids initiated by the given broadcaster
func NewChannelRaidV1From(fromBroadcasterUserID string) ChannelRaidV1 {
	return ChannelRaidV1{FromBroadcasterUserID: fromBroadcasterUserID}
}

func (ChannelRaidV1) EventType() EventType       { return EventTypeChannelRaid }
func (ChannelRaidV1) Version() string            { return "1" }
func (ChannelRaidV1) Scope() twitchapi.Validator { return twitchapi.NoScopes() }

type ChannelRaidV1Payload struct {
	FromBroadcasterUserID    string `json:"from_broadcaster_user_id"`
	FromBroadcasterUserLogin string `json:"from_broadcaster_user_login"`
	FromBroadcasterUserName  string `json:"from_broadcaster_user_name"`
	ToBroadcasterUserID      string `json:"to_broadcaster_user_id"`
	ToBroadcasterUserLogin   string `json:"to_broadcaster_user_login"`
	ToBroadcasterUserName    string `json:"to_broadcaster_user_name"`
	Viewers                  int64  `json:"viewers"`
}

// ChannelCheerV1 fires when a user cheers bits in the broadcaster's channel
type ChannelCheerV1 struct {
	BroadcasterUserID string `json:"broadcaster_user_id"`
}

func NewChannelCheerV1(broadcasterUserID string) ChannelCheerV1 {
	return ChannelCheerV1{BroadcasterUserID: broadcasterUserID}
}

func (ChannelCheerV1) EventType() EventType { return EventTypeChannelCheer }
func (ChannelCheerV1) Version() string      { return "1" }
func (ChannelCheerV1) Scope() twitchapi.Validator {
	return twitchapi.RequireAll(twitchapi.ScopeBitsRead)
}

// ChannelCheerV1Payload describes a cheer: the user fields are null when IsAnonymous
// is true
type ChannelCheerV1Payload struct {
	IsAnonymous bool    `json:"is_anonymous"`
	UserID      *string `json:"user_id"`
	UserLogin   *string `json:"user_login"`
	UserName    *string `json:"user_name"`
	Broadcaster
	Message string `json:"message"`
	Bits    int64  `json:"bits"`
}

// ChannelSubscribeV1 fires when a user subscribes to the broadcaster's channel. Resubs
// are not included: see ChannelSubscriptionMessageV1.
type ChannelSubscribeV1 struct {
	BroadcasterUserID string `json:"broadcaster_user_id"`
}

func NewChannelSubscribeV1(broadcasterUserID string) ChannelSubscribeV1 {
	return ChannelSubscribeV1{BroadcasterUserID: broadcasterUserID}
}

func (ChannelSubscribeV1) EventType() EventType { return EventTypeChannelSubscribe }
func (ChannelSubscribeV1) Version() string      { return "1" }
func (ChannelSubscribeV1) Scope() twitchapi.Validator {
	return twitchapi.RequireAll(twitchapi.ScopeChannelReadSubscriptions)
}

type ChannelSubscribeV1Payload struct {
	User
	Broadcaster
	Tier   string `json:"tier"`
	IsGift bool   `json:"is_gift"`
}

// ChannelSubscriptionEndV1 fires when a subscription to the broadcaster's channel
// expires
type ChannelSubscriptionEndV1 struct {
	BroadcasterUserID string `json:"broadcaster_user_id"`
}

func NewChannelSubscriptionEndV1(broadcasterUserID string) ChannelSubscriptionEndV1 {
	return ChannelSubscriptionEndV1{BroadcasterUserID: broadcasterUserID}
}

func (ChannelSubscriptionEndV1) EventType() EventType { return EventTypeChannelSubscriptionEnd }
func (ChannelSubscriptionEndV1) Version() string      { return "1" }
func (ChannelSubscriptionEndV1) Scope() twitchapi.Validator {
	return twitchapi.RequireAll(twitchapi.ScopeChannelReadSubscriptions)
}

type ChannelSubscriptionEndV1Payload struct {
	User
	Broadcaster
	Tier   string `json:"tier"`
	IsGift bool   `json:"is_gift"`
}

// ChannelSubscriptionGiftV1 fires when a user gives one or more gifted subscriptions
type ChannelSubscriptionGiftV1 struct {
	BroadcasterUserID string `json:"broadcaster_user_id"`
}

func NewChannelSubscriptionGiftV1(broadcasterUserID string) ChannelSubscriptionGiftV1 {
	return ChannelSubscriptionGiftV1{BroadcasterUserID: broadcasterUserID}
}

func (ChannelSubscriptionGiftV1) EventType() EventType { return EventTypeChannelSubscriptionGift }
func (ChannelSubscriptionGiftV1) Version() string      { return "1" }
func (ChannelSubscriptionGiftV1) Scope() twitchapi.Validator {
	return twitchapi.RequireAll(twitchapi.ScopeChannelReadSubscriptions)
}

// ChannelSubscriptionGiftV1Payload describes a batch of gifted subs. CumulativeTotal is
// null if the gift was anonymous or the gifter opted out of sharing it.
type ChannelSubscriptionGiftV1Payload struct {
	UserID    *string `json:"user_id"`
	UserLogin *string `json:"user_login"`
	UserName  *string `json:"user_name"`
	Broadcaster
	Total           int64  `json:"total"`
	Tier            string `json:"tier"`
	CumulativeTotal *int64 `json:"cumulative_total"`
	IsAnonymous     bool   `json:"is_anonymous"`
}

// ChannelSubscriptionMessageV1 fires when a user sends a resubscription chat message
type ChannelSubscriptionMessageV1 struct {
	BroadcasterUserID string `json:"broadcaster_user_id"`
}

func NewChannelSubscriptionMessageV1(broadcasterUserID string) ChannelSubscriptionMessageV1 {
	return ChannelSubscriptionMessageV1{BroadcasterUserID: broadcasterUserID}
}

func (ChannelSubscriptionMessageV1) EventType() EventType { return EventTypeChannelSubscriptionMessage }
func (ChannelSubscriptionMessageV1) Version() string      { return "1" }
func (ChannelSubscriptionMessageV1) Scope() twitchapi.Validator {
	return twitchapi.RequireAll(twitchapi.ScopeChannelReadSubscriptions)
}

// Emote marks the character range of an emote within a chat message
type Emote struct {
	Begin int64  `json:"begin"`
	End   int64  `json:"end"`
	ID    string `json:"id"`
}

type SubscriptionMessage struct {
	Text   string  `json:"text"`
	Emotes []Emote `json:"emotes"`
}

// ChannelSubscriptionMessageV1Payload describes a resub message. StreakMonths is null
// if the user opted out of sharing it.
type ChannelSubscriptionMessageV1Payload struct {
	User
	Broadcaster
	Tier             string              `json:"tier"`
	Message          SubscriptionMessage `json:"message"`
	CumulativeMonths int64               `json:"cumulative_months"`
	StreakMonths     *int64              `json:"streak_months"`
	DurationMonths   int64               `json:"duration_months"`
}

// ChannelHypeTrainBeginV1 fires when a hype train begins in the broadcaster's channel
type ChannelHypeTrainBeginV1 struct {
	BroadcasterUserID string `json:"broadcaster_user_id"`
}

func NewChannelHypeTrainBeginV1(broadcasterUserID string) ChannelHypeTrainBeginV1 {
	return ChannelHypeTrainBeginV1{BroadcasterUserID: broadcasterUserID}
}

func (ChannelHypeTrainBeginV1) EventType() EventType { return EventTypeChannelHypeTrainBegin }
func (ChannelHypeTrainBeginV1) Version() string      { return "1" }
func (ChannelHypeTrainBeginV1) Scope() twitchapi.Validator {
	return twitchapi.RequireAll(twitchapi.ScopeChannelReadHypeTrain)
}

// HypeTrainContribution is a single user's contribution to a hype train: Type is one of
// "bits", "subscription" or "other"
type HypeTrainContribution struct {
	User
	Type  string `json:"type"`
	Total int64  `json:"total"`
}

type ChannelHypeTrainBeginV1Payload struct {
	ID string `json:"id"`
	Broadcaster
	Total            int64                   `json:"total"`
	Progress         int64                   `json:"progress"`
	Goal             int64                   `json:"goal"`
	TopContributions []HypeTrainContribution `json:"top_contributions"`
	LastContribution HypeTrainContribution   `json:"last_contribution"`
	Level            int64                   `json:"level"`
	StartedAt        time.Time               `json:"started_at"`
	ExpiresAt        time.Time               `json:"expires_at"`
}

// ChannelVipAddV1 fires when a user is granted VIP status in the broadcaster's channel
type ChannelVipAddV1 struct {
	BroadcasterUserID string `json:"broadcaster_user_id"`
}

func NewChannelVipAddV1(broadcasterUserID string) ChannelVipAddV1 {
	return ChannelVipAddV1{BroadcasterUserID: broadcasterUserID}
}

func (ChannelVipAddV1) EventType() EventType { return EventTypeChannelVipAdd }
func (ChannelVipAddV1) Version() string      { return "1" }
func (ChannelVipAddV1) Scope() twitchapi.Validator {
	return twitchapi.RequireAny(twitchapi.ScopeChannelReadVips, twitchapi.ScopeChannelManageVips)
}

type ChannelVipAddV1Payload struct {
	User
	Broadcaster
}

// ChannelVipRemoveV1 fires when a user's VIP status is revoked
type ChannelVipRemoveV1 struct {
	BroadcasterUserID string `json:"broadcaster_user_id"`
}

func NewChannelVipRemoveV1(broadcasterUserID string) ChannelVipRemoveV1 {
	return ChannelVipRemoveV1{BroadcasterUserID: broadcasterUserID}
}

func (ChannelVipRemoveV1) EventType() EventType { return EventTypeChannelVipRemove }
func (ChannelVipRemoveV1) Version() string      { return "1" }
func (ChannelVipRemoveV1) Scope() twitchapi.Validator {
	return twitchapi.RequireAny(twitchapi.ScopeChannelReadVips, twitchapi.ScopeChannelManageVips)
}

type ChannelVipRemoveV1Payload struct {
	User
	Broadcaster
}

// ChannelPredictionBeginV1 fires when a channel points prediction is started
type ChannelPredictionBeginV1 struct {
	BroadcasterUserID string `json:"broadcaster_user_id"`
}

func NewChannelPredictionBeginV1(broadcasterUserID string) ChannelPredictionBeginV1 {
	return ChannelPredictionBeginV1{BroadcasterUserID: broadcasterUserID}
}

func (ChannelPredictionBeginV1) EventType() EventType { return EventTypeChannelPredictionBegin }
func (ChannelPredictionBeginV1) Version() string      { return "1" }
func (ChannelPredictionBeginV1) Scope() twitchapi.Validator {
	return twitchapi.RequireAny(twitchapi.ScopeChannelReadPredictions, twitchapi.ScopeChannelManagePredictions)
}

// PredictionOutcome is one of the choices in a prediction: Color is "blue" or "pink"
type PredictionOutcome struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Color string `json:"color"`
}

type ChannelPredictionBeginV1Payload struct {
	ID string `json:"id"`
	Broadcaster
	Title     string              `json:"title"`
	Outcomes  []PredictionOutcome `json:"outcomes"`
	StartedAt time.Time           `json:"started_at"`
	LocksAt   time.Time           `json:"locks_at"`
}
