package eventsub

import (
	"time"

	"github.com/golden-vcr/twitchapi"
)

// EventType is the dotted name of an EventSub subscription type, e.g. "stream.online"
type EventType string

const (
	EventTypeChannelUpdate                          EventType = "channel.update"
	EventTypeChannelFollow                          EventType = "channel.follow"
	EventTypeChannelRaid                            EventType = "channel.raid"
	EventTypeChannelCheer                           EventType = "channel.cheer"
	EventTypeChannelSubscribe                       EventType = "channel.subscribe"
	EventTypeChannelSubscriptionEnd                 EventType = "channel.subscription.end"
	EventTypeChannelSubscriptionGift                EventType = "channel.subscription.gift"
	EventTypeChannelSubscriptionMessage             EventType = "channel.subscription.message"
	EventTypeChannelHypeTrainBegin                  EventType = "channel.hype_train.begin"
	EventTypeChannelVipAdd                          EventType = "channel.vip.add"
	EventTypeChannelVipRemove                       EventType = "channel.vip.remove"
	EventTypeChannelPointsCustomRewardAdd           EventType = "channel.channel_points_custom_reward.add"
	EventTypeChannelPointsCustomRewardUpdate        EventType = "channel.channel_points_custom_reward.update"
	EventTypeChannelPointsCustomRewardRemove        EventType = "channel.channel_points_custom_reward.remove"
	EventTypeChannelPointsCustomRewardRedemptionAdd EventType = "channel.channel_points_custom_reward_redemption.add"
	EventTypeChannelPredictionBegin                 EventType = "channel.prediction.begin"
	EventTypeStreamOnline                           EventType = "stream.online"
	EventTypeStreamOffline                          EventType = "stream.offline"
	EventTypeUserUpdate                             EventType = "user.update"
	EventTypeUserAuthorizationGrant                 EventType = "user.authorization.grant"
	EventTypeUserAuthorizationRevoke                EventType = "user.authorization.revoke"
)

// Subscription is implemented by every typed EventSub condition. The condition's Go type
// determines the subscription type and version, and therefore the payload type that
// notifications for it will carry.
type Subscription interface {
	EventType() EventType
	Version() string
	Scope() twitchapi.Validator
}

// Broadcaster identifies the channel an event occurred in
type Broadcaster struct {
	BroadcasterUserID    string `json:"broadcaster_user_id"`
	BroadcasterUserLogin string `json:"broadcaster_user_login"`
	BroadcasterUserName  string `json:"broadcaster_user_name"`
}

// User identifies the user who caused an event
type User struct {
	UserID    string `json:"user_id"`
	UserLogin string `json:"user_login"`
	UserName  string `json:"user_name"`
}

// Image is a set of URLs for the same image at different scales
type Image struct {
	URL1x string `json:"url_1x"`
	URL2x string `json:"url_2x"`
	URL4x string `json:"url_4x"`
}

// Max is a limit that may be disabled
type Max struct {
	IsEnabled bool  `json:"is_enabled"`
	Value     int64 `json:"value"`
}

// GlobalCooldown is a reward cooldown that may be disabled
type GlobalCooldown struct {
	IsEnabled bool  `json:"is_enabled"`
	Seconds   int64 `json:"seconds"`
}

// CustomReward is the full state of a channel points custom reward, as carried by the
// add, update and remove events
type CustomReward struct {
	Broadcaster
	ID                                string         `json:"id"`
	IsEnabled                         bool           `json:"is_enabled"`
	IsPaused                          bool           `json:"is_paused"`
	IsInStock                         bool           `json:"is_in_stock"`
	Title                             string         `json:"title"`
	Cost                              int64          `json:"cost"`
	Prompt                            string         `json:"prompt"`
	IsUserInputRequired               bool           `json:"is_user_input_required"`
	ShouldRedemptionsSkipRequestQueue bool           `json:"should_redemptions_skip_request_queue"`
	CooldownExpiresAt                 *time.Time     `json:"cooldown_expires_at"`
	RedemptionsRedeemedCurrentStream  *int64         `json:"redemptions_redeemed_current_stream"`
	MaxPerStream                      Max            `json:"max_per_stream"`
	MaxPerUserPerStream               Max            `json:"max_per_user_per_stream"`
	GlobalCooldown                    GlobalCooldown `json:"global_cooldown"`
	BackgroundColor                   string         `json:"background_color"`
	Image                             *Image         `json:"image"`
	DefaultImage                      *Image         `json:"default_image"`
}
