package helix

import (
	"net/http"
	"net/url"
	"time"

	"github.com/golden-vcr/twitchapi"
)

// Stream describes a live broadcast
type Stream struct {
	ID           string    `json:"id"`
	UserID       string    `json:"user_id"`
	UserLogin    string    `json:"user_login"`
	UserName     string    `json:"user_name"`
	GameID       string    `json:"game_id"`
	GameName     string    `json:"game_name"`
	Type         string    `json:"type"`
	Title        string    `json:"title"`
	Tags         []string  `json:"tags"`
	ViewerCount  int       `json:"viewer_count"`
	StartedAt    time.Time `json:"started_at"`
	Language     string    `json:"language"`
	ThumbnailURL string    `json:"thumbnail_url"`
	IsMature     bool      `json:"is_mature"`
	// Deprecated: Twitch has replaced tag IDs with free-form Tags.
	TagIDs []string `json:"tag_ids"`
}

// GetFollowedStreamsRequest gets the live streams of broadcasters that the given user
// follows
//
// https://dev.twitch.tv/docs/api/reference#get-followed-streams
type GetFollowedStreamsRequest struct {
	UserID string
	After  Cursor
	First  int
}

// NewGetFollowedStreamsRequest returns a request for the streams followed by userID,
// which must match the user that owns the access token
func NewGetFollowedStreamsRequest(userID string) GetFollowedStreamsRequest {
	return GetFollowedStreamsRequest{UserID: userID}
}

// WithFirst sets the maximum number of results per page (at most 100)
func (r GetFollowedStreamsRequest) WithFirst(first int) GetFollowedStreamsRequest {
	r.First = first
	return r
}

func (r GetFollowedStreamsRequest) Method() string { return http.MethodGet }
func (r GetFollowedStreamsRequest) Path() string   { return "streams/followed" }

func (r GetFollowedStreamsRequest) Scope() twitchapi.Validator {
	return twitchapi.RequireAll(twitchapi.ScopeUserReadFollows)
}

func (r GetFollowedStreamsRequest) Query() url.Values {
	q := url.Values{}
	q.Set("user_id", r.UserID)
	setOptional(q, "after", string(r.After))
	setFirst(q, r.First)
	return q
}

func (r GetFollowedStreamsRequest) ParseResponse(raw *RawResponse) (*Response[[]Stream], error) {
	return DecodeData[[]Stream](raw)
}

func (r GetFollowedStreamsRequest) WithAfter(cursor Cursor) Pageable[[]Stream] {
	r.After = cursor
	return r
}
