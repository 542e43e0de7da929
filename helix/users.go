package helix

import (
	"errors"
	"net/http"
	"net/url"
	"time"

	"github.com/golden-vcr/twitchapi"
)

// User describes a Twitch user account
type User struct {
	BroadcasterType string    `json:"broadcaster_type"`
	CreatedAt       time.Time `json:"created_at"`
	Description     string    `json:"description"`
	DisplayName     string    `json:"display_name"`
	// Email is only populated if the token carries the user:read:email scope
	Email           string `json:"email,omitempty"`
	ID              string `json:"id"`
	Login           string `json:"login"`
	OfflineImageURL string `json:"offline_image_url"`
	ProfileImageURL string `json:"profile_image_url"`
	Type            string `json:"type"`
	// Deprecated: Twitch no longer reports view counts; this is always 0.
	ViewCount int `json:"view_count"`
}

// GetUsersRequest gets users by ID and/or login name. If both are empty, Twitch returns
// the user that owns the access token.
//
// https://dev.twitch.tv/docs/api/reference#get-users
type GetUsersRequest struct {
	IDs    []string
	Logins []string
}

// NewGetUsersRequest returns a request for the users with the given IDs
func NewGetUsersRequest(ids ...string) GetUsersRequest {
	return GetUsersRequest{IDs: ids}
}

// NewGetUsersByLoginRequest returns a request for the users with the given login names
func NewGetUsersByLoginRequest(logins ...string) GetUsersRequest {
	return GetUsersRequest{Logins: logins}
}

func (r GetUsersRequest) Method() string             { return http.MethodGet }
func (r GetUsersRequest) Path() string               { return "users" }
func (r GetUsersRequest) Scope() twitchapi.Validator { return twitchapi.NoScopes() }

func (r GetUsersRequest) Query() url.Values {
	q := url.Values{}
	addAll(q, "id", r.IDs)
	addAll(q, "login", r.Logins)
	return q
}

func (r GetUsersRequest) ParseResponse(raw *RawResponse) (*Response[[]User], error) {
	return DecodeData[[]User](raw)
}

// UsersFollows is the result of the deprecated Get Users Follows endpoint, which reports
// its total alongside the data array
type UsersFollows struct {
	Total               int64                `json:"total"`
	FollowRelationships []FollowRelationship `json:"follow_relationships"`
}

// FollowRelationship records that the 'from' user follows the 'to' user
type FollowRelationship struct {
	FollowedAt time.Time `json:"followed_at"`
	FromID     string    `json:"from_id"`
	FromName   string    `json:"from_name"`
	FromLogin  string    `json:"from_login"`
	ToID       string    `json:"to_id"`
	ToName     string    `json:"to_name"`
	ToLogin    string    `json:"to_login"`
}

// GetUsersFollowsRequest gets follow relationships between users. At least one of FromID
// and ToID is required.
//
// Deprecated: Twitch has replaced this endpoint with Get Followed Channels and Get
// Channel Followers.
//
// https://dev.twitch.tv/docs/api/reference#get-users-follows
type GetUsersFollowsRequest struct {
	After  Cursor
	First  int
	FromID string
	ToID   string
}

// NewGetUsersFollowsRequest returns a request for the relationships from one user to
// another; either ID may be empty
func NewGetUsersFollowsRequest(fromID, toID string) GetUsersFollowsRequest {
	return GetUsersFollowsRequest{FromID: fromID, ToID: toID}
}

// NewGetFollowersRequest returns a request for the users that follow toID
func NewGetFollowersRequest(toID string) GetUsersFollowsRequest {
	return GetUsersFollowsRequest{ToID: toID}
}

func (r GetUsersFollowsRequest) Method() string             { return http.MethodGet }
func (r GetUsersFollowsRequest) Path() string               { return "users/follows" }
func (r GetUsersFollowsRequest) Scope() twitchapi.Validator { return twitchapi.NoScopes() }

func (r GetUsersFollowsRequest) Query() url.Values {
	q := url.Values{}
	setOptional(q, "after", string(r.After))
	setFirst(q, r.First)
	setOptional(q, "from_id", r.FromID)
	setOptional(q, "to_id", r.ToID)
	return q
}

// ParseResponse decodes the non-standard envelope used by this endpoint, in which the
// total is required rather than optional
func (r GetUsersFollowsRequest) ParseResponse(raw *RawResponse) (*Response[UsersFollows], error) {
	res, err := DecodeData[[]FollowRelationship](raw)
	if err != nil {
		return nil, err
	}
	if res.Total == nil {
		return nil, newDeserializeError(raw, errors.New("missing field 'total'"))
	}
	relationships := res.Data
	if relationships == nil {
		relationships = []FollowRelationship{}
	}
	return &Response[UsersFollows]{
		Data: UsersFollows{
			Total:               *res.Total,
			FollowRelationships: relationships,
		},
		Cursor: res.Cursor,
		Total:  res.Total,
		Other:  res.Other,
	}, nil
}

func (r GetUsersFollowsRequest) WithAfter(cursor Cursor) Pageable[UsersFollows] {
	r.After = cursor
	return r
}
