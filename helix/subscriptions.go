package helix

import (
	"net/http"
	"net/url"

	"github.com/golden-vcr/twitchapi"
)

// SubscriptionTier identifies the level of a paid subscription
type SubscriptionTier string

const (
	SubscriptionTier1     SubscriptionTier = "1000"
	SubscriptionTier2     SubscriptionTier = "2000"
	SubscriptionTier3     SubscriptionTier = "3000"
	SubscriptionTierPrime SubscriptionTier = "Prime"
)

// UserSubscription describes a user's subscription to a broadcaster
type UserSubscription struct {
	BroadcasterID    string           `json:"broadcaster_id"`
	BroadcasterLogin string           `json:"broadcaster_login"`
	BroadcasterName  string           `json:"broadcaster_name"`
	IsGift           bool             `json:"is_gift"`
	GifterLogin      string           `json:"gifter_login,omitempty"`
	GifterName       string           `json:"gifter_name,omitempty"`
	Tier             SubscriptionTier `json:"tier"`
}

// CheckUserSubscriptionRequest checks whether the user that owns the access token is
// subscribed to the given broadcaster. If not, Twitch responds 404, which Send reports
// as an *APIError.
//
// https://dev.twitch.tv/docs/api/reference#check-user-subscription
type CheckUserSubscriptionRequest struct {
	BroadcasterID string
	UserIDs       []string
}

// NewCheckUserSubscriptionRequest returns a request to check a subscription to
// broadcasterID
func NewCheckUserSubscriptionRequest(broadcasterID string) CheckUserSubscriptionRequest {
	return CheckUserSubscriptionRequest{BroadcasterID: broadcasterID}
}

// ForUsers sets the user_id parameter, which must match the user that owns the token
func (r CheckUserSubscriptionRequest) ForUsers(userIDs ...string) CheckUserSubscriptionRequest {
	r.UserIDs = userIDs
	return r
}

func (r CheckUserSubscriptionRequest) Method() string { return http.MethodGet }
func (r CheckUserSubscriptionRequest) Path() string   { return "subscriptions/user" }

func (r CheckUserSubscriptionRequest) Scope() twitchapi.Validator {
	return twitchapi.RequireAll(twitchapi.ScopeUserReadSubscriptions)
}

func (r CheckUserSubscriptionRequest) Query() url.Values {
	q := url.Values{}
	q.Set("broadcaster_id", r.BroadcasterID)
	addAll(q, "user_id", r.UserIDs)
	return q
}

func (r CheckUserSubscriptionRequest) ParseResponse(raw *RawResponse) (*Response[UserSubscription], error) {
	return DecodeFirst[UserSubscription](raw)
}
