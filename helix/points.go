package helix

import (
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/golden-vcr/twitchapi"
)

// RedemptionStatus is the fulfillment state of a channel points redemption
type RedemptionStatus string

const (
	RedemptionStatusUnfulfilled RedemptionStatus = "UNFULFILLED"
	RedemptionStatusFulfilled   RedemptionStatus = "FULFILLED"
	RedemptionStatusCanceled    RedemptionStatus = "CANCELED"
)

// RedemptionSortOrder orders redemptions by the time they were redeemed
type RedemptionSortOrder string

const (
	RedemptionSortOldest RedemptionSortOrder = "OLDEST"
	RedemptionSortNewest RedemptionSortOrder = "NEWEST"
)

// Reward is the summary of a custom reward embedded in each redemption
type Reward struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Prompt string `json:"prompt"`
	Cost   int64  `json:"cost"`
}

// CustomRewardRedemption records a viewer spending channel points on a custom reward
type CustomRewardRedemption struct {
	BroadcasterID    string           `json:"broadcaster_id"`
	BroadcasterName  string           `json:"broadcaster_name"`
	BroadcasterLogin string           `json:"broadcaster_login"`
	ID               string           `json:"id"`
	UserID           string           `json:"user_id"`
	UserName         string           `json:"user_name"`
	UserLogin        string           `json:"user_login"`
	Reward           Reward           `json:"reward"`
	UserInput        string           `json:"user_input"`
	Status           RedemptionStatus `json:"status"`
	RedeemedAt       time.Time        `json:"redeemed_at"`
}

// GetCustomRewardRedemptionRequest gets redemptions of the broadcaster's custom rewards.
// Twitch only returns redemptions of rewards created by the same client ID.
//
// https://dev.twitch.tv/docs/api/reference#get-custom-reward-redemption
type GetCustomRewardRedemptionRequest struct {
	BroadcasterID string
	RewardID      string
	Status        RedemptionStatus
	IDs           []string
	Sort          RedemptionSortOrder
	After         Cursor
	First         int
}

// NewGetCustomRewardRedemptionRequest returns a request for redemptions in the given
// broadcaster's channel
func NewGetCustomRewardRedemptionRequest(broadcasterID string) GetCustomRewardRedemptionRequest {
	return GetCustomRewardRedemptionRequest{BroadcasterID: broadcasterID}
}

// ForReward restricts results to redemptions of a single reward
func (r GetCustomRewardRedemptionRequest) ForReward(rewardID string) GetCustomRewardRedemptionRequest {
	r.RewardID = rewardID
	return r
}

// WithStatus restricts results to redemptions in the given state
func (r GetCustomRewardRedemptionRequest) WithStatus(status RedemptionStatus) GetCustomRewardRedemptionRequest {
	r.Status = status
	return r
}

// WithIDs restricts results to the given redemptions
func (r GetCustomRewardRedemptionRequest) WithIDs(ids ...string) GetCustomRewardRedemptionRequest {
	r.IDs = ids
	return r
}

// SortBy sets the order in which redemptions are returned
func (r GetCustomRewardRedemptionRequest) SortBy(sort RedemptionSortOrder) GetCustomRewardRedemptionRequest {
	r.Sort = sort
	return r
}

func (r GetCustomRewardRedemptionRequest) Method() string { return http.MethodGet }

func (r GetCustomRewardRedemptionRequest) Path() string {
	return "channel_points/custom_rewards/redemptions"
}

func (r GetCustomRewardRedemptionRequest) Scope() twitchapi.Validator {
	return twitchapi.RequireAny(twitchapi.ScopeChannelReadRedemptions, twitchapi.ScopeChannelManageRedemptions)
}

func (r GetCustomRewardRedemptionRequest) Query() url.Values {
	q := url.Values{}
	q.Set("broadcaster_id", r.BroadcasterID)
	setOptional(q, "reward_id", r.RewardID)
	setOptional(q, "status", string(r.Status))
	addAll(q, "id", r.IDs)
	setOptional(q, "sort", string(r.Sort))
	setOptional(q, "after", string(r.After))
	setFirst(q, r.First)
	return q
}

func (r GetCustomRewardRedemptionRequest) ParseResponse(raw *RawResponse) (*Response[[]CustomRewardRedemption], error) {
	return DecodeData[[]CustomRewardRedemption](raw)
}

func (r GetCustomRewardRedemptionRequest) WithAfter(cursor Cursor) Pageable[[]CustomRewardRedemption] {
	r.After = cursor
	return r
}

// UpdateRedemptionStatusBody is the JSON body of an Update Redemption Status request
type UpdateRedemptionStatusBody struct {
	Status RedemptionStatus `json:"status"`
}

// UpdateRedemptionStatusRequest marks a single redemption as fulfilled or canceled
//
// https://dev.twitch.tv/docs/api/reference#update-redemption-status
type UpdateRedemptionStatusRequest struct {
	BroadcasterID string
	RewardID      string
	ID            string
}

// NewUpdateRedemptionStatusRequest returns a request to update redemption id of reward
// rewardID in broadcasterID's channel
func NewUpdateRedemptionStatusRequest(broadcasterID, rewardID, id string) UpdateRedemptionStatusRequest {
	return UpdateRedemptionStatusRequest{BroadcasterID: broadcasterID, RewardID: rewardID, ID: id}
}

func (r UpdateRedemptionStatusRequest) Method() string { return http.MethodPatch }

func (r UpdateRedemptionStatusRequest) Path() string {
	return "channel_points/custom_rewards/redemptions"
}

func (r UpdateRedemptionStatusRequest) Scope() twitchapi.Validator {
	return twitchapi.RequireAll(twitchapi.ScopeChannelManageRedemptions)
}

func (r UpdateRedemptionStatusRequest) Query() url.Values {
	q := url.Values{}
	q.Set("broadcaster_id", r.BroadcasterID)
	q.Set("reward_id", r.RewardID)
	q.Set("id", r.ID)
	return q
}

func (r UpdateRedemptionStatusRequest) EncodeBody(body UpdateRedemptionStatusBody) ([]byte, error) {
	return encodeJSON(body)
}

// ParseResponse yields the updated redemption: Twitch documents only 200 OK as success
func (r UpdateRedemptionStatusRequest) ParseResponse(raw *RawResponse) (*Response[CustomRewardRedemption], error) {
	if raw.Status != http.StatusOK {
		return nil, newInvalidResponseError(raw, fmt.Sprintf("unexpected status code %d", raw.Status))
	}
	return DecodeFirst[CustomRewardRedemption](raw)
}
