package eventsub

import (
	"time"

	"github.com/golden-vcr/twitchapi"
)

var redemptionsScope = twitchapi.RequireAny(twitchapi.ScopeChannelReadRedemptions, twitchapi.ScopeChannelManageRedemptions)

// ChannelPointsCustomRewardAddV1 fires when a custom channel points reward is created
type ChannelPointsCustomRewardAddV1 struct {
	BroadcasterUserID string `json:"broadcaster_user_id"`
}

func NewChannelPointsCustomRewardAddV1(broadcasterUserID string) ChannelPointsCustomRewardAddV1 {
	return ChannelPointsCustomRewardAddV1{BroadcasterUserID: broadcasterUserID}
}

func (ChannelPointsCustomRewardAddV1) EventType() EventType {
	return EventTypeChannelPointsCustomRewardAdd
}
func (ChannelPointsCustomRewardAddV1) Version() string            { return "1" }
func (ChannelPointsCustomRewardAddV1) Scope() twitchapi.Validator { return redemptionsScope }

type ChannelPointsCustomRewardAddV1Payload = CustomReward

// ChannelPointsCustomRewardUpdateV1 fires when a custom reward is modified. Set
// RewardID to only be notified of changes to a single reward.
type ChannelPointsCustomRewardUpdateV1 struct {
	BroadcasterUserID string `json:"broadcaster_user_id"`
	RewardID          string `json:"reward_id,omitempty"`
}

func NewChannelPointsCustomRewardUpdateV1(broadcasterUserID string) ChannelPointsCustomRewardUpdateV1 {
	return ChannelPointsCustomRewardUpdateV1{BroadcasterUserID: broadcasterUserID}
}

func (c ChannelPointsCustomRewardUpdateV1) WithRewardID(rewardID string) ChannelPointsCustomRewardUpdateV1 {
	c.RewardID = rewardID
	return c
}

func (ChannelPointsCustomRewardUpdateV1) EventType() EventType {
	return EventTypeChannelPointsCustomRewardUpdate
}
func (ChannelPointsCustomRewardUpdateV1) Version() string            { return "1" }
func (ChannelPointsCustomRewardUpdateV1) Scope() twitchapi.Validator { return redemptionsScope }

type ChannelPointsCustomRewardUpdateV1Payload = CustomReward

// ChannelPointsCustomRewardRemoveV1 fires when a custom reward is deleted. Set RewardID
// to only be notified about a single reward.
type ChannelPointsCustomRewardRemoveV1 struct {
	BroadcasterUserID string `json:"broadcaster_user_id"`
	RewardID          string `json:"reward_id,omitempty"`
}

func NewChannelPointsCustomRewardRemoveV1(broadcasterUserID string) ChannelPointsCustomRewardRemoveV1 {
	return ChannelPointsCustomRewardRemoveV1{BroadcasterUserID: broadcasterUserID}
}

func (c ChannelPointsCustomRewardRemoveV1) WithRewardID(rewardID string) ChannelPointsCustomRewardRemoveV1 {
	c.RewardID = rewardID
	return c
}

func (ChannelPointsCustomRewardRemoveV1) EventType() EventType {
	return EventTypeChannelPointsCustomRewardRemove
}
func (ChannelPointsCustomRewardRemoveV1) Version() string            { return "1" }
func (ChannelPointsCustomRewardRemoveV1) Scope() twitchapi.Validator { return redemptionsScope }

type ChannelPointsCustomRewardRemoveV1Payload = CustomReward

// ChannelPointsCustomRewardRedemptionAddV1 fires when a viewer redeems a custom reward
type ChannelPointsCustomRewardRedemptionAddV1 struct {
	BroadcasterUserID string `json:"broadcaster_user_id"`
	RewardID          string `json:"reward_id,omitempty"`
}

func NewChannelPointsCustomRewardRedemptionAddV1(broadcasterUserID string) ChannelPointsCustomRewardRedemptionAddV1 {
	return ChannelPointsCustomRewardRedemptionAddV1{BroadcasterUserID: broadcasterUserID}
}

func (c ChannelPointsCustomRewardRedemptionAddV1) WithRewardID(rewardID string) ChannelPointsCustomRewardRedemptionAddV1 {
	c.RewardID = rewardID
	return c
}

func (ChannelPointsCustomRewardRedemptionAddV1) EventType() EventType {
	return EventTypeChannelPointsCustomRewardRedemptionAdd
}
func (ChannelPointsCustomRewardRedemptionAddV1) Version() string            { return "1" }
func (ChannelPointsCustomRewardRedemptionAddV1) Scope() twitchapi.Validator { return redemptionsScope }

// RedeemedReward is the basic information about the reward a viewer redeemed
type RedeemedReward struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Cost   int64  `json:"cost"`
	Prompt string `json:"prompt"`
}

// ChannelPointsCustomRewardRedemptionAddV1Payload describes a redemption. Status is
// "unfulfilled" unless the reward skips the request queue.
type ChannelPointsCustomRewardRedemptionAddV1Payload struct {
	ID string `json:"id"`
	Broadcaster
	User
	UserInput  string         `json:"user_input"`
	Status     string         `json:"status"`
	Reward     RedeemedReward `json:"reward"`
	RedeemedAt time.Time      `json:"redeemed_at"`
}
