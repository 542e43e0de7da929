package helix

import (
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/golden-vcr/twitchapi"
)

// Clip is a short highlight captured from a broadcast
type Clip struct {
	BroadcasterID   string    `json:"broadcaster_id"`
	BroadcasterName string    `json:"broadcaster_name"`
	CreatedAt       time.Time `json:"created_at"`
	CreatorID       string    `json:"creator_id"`
	CreatorName     string    `json:"creator_name"`
	Duration        float64   `json:"duration"`
	EmbedURL        string    `json:"embed_url"`
	GameID          string    `json:"game_id"`
	ID              string    `json:"id"`
	Language        string    `json:"language"`
	ThumbnailURL    string    `json:"thumbnail_url"`
	Title           string    `json:"title"`
	URL             string    `json:"url"`
	VideoID         string    `json:"video_id"`
	ViewCount       int64     `json:"view_count"`
	// VODOffset is nil if the video is unavailable or the clip was created from a live
	// stream that has not yet been processed
	VODOffset  *int64 `json:"vod_offset"`
	IsFeatured bool   `json:"is_featured"`
}

// GetClipsRequest gets clips by clip ID (one or more), broadcaster ID (one only), or
// game ID (one only)
//
// https://dev.twitch.tv/docs/api/reference#get-clips
type GetClipsRequest struct {
	BroadcasterID string
	GameID        string
	IDs           []string
	After         Cursor
	Before        Cursor
	First         int
	StartedAt     *time.Time
	EndedAt       *time.Time
	IsFeatured    *bool
}

// NewGetClipsByBroadcasterRequest returns a request for clips of the given broadcaster
func NewGetClipsByBroadcasterRequest(broadcasterID string) GetClipsRequest {
	return GetClipsRequest{BroadcasterID: broadcasterID}
}

// NewGetClipsByGameRequest returns a request for clips in the given category
func NewGetClipsByGameRequest(gameID string) GetClipsRequest {
	return GetClipsRequest{GameID: gameID}
}

// NewGetClipsRequest returns a request for specific clips by ID
func NewGetClipsRequest(ids ...string) GetClipsRequest {
	return GetClipsRequest{IDs: ids}
}

// Between restricts results to clips created within the given range
func (r GetClipsRequest) Between(startedAt, endedAt time.Time) GetClipsRequest {
	r.StartedAt = &startedAt
	r.EndedAt = &endedAt
	return r
}

// Featured restricts results to featured (or non-featured) clips
func (r GetClipsRequest) Featured(featured bool) GetClipsRequest {
	r.IsFeatured = &featured
	return r
}

// WithFirst sets the maximum number of results per page (at most 100)
func (r GetClipsRequest) WithFirst(first int) GetClipsRequest {
	r.First = first
	return r
}

func (r GetClipsRequest) Method() string             { return http.MethodGet }
func (r GetClipsRequest) Path() string               { return "clips" }
func (r GetClipsRequest) Scope() twitchapi.Validator { return twitchapi.NoScopes() }

func (r GetClipsRequest) Query() url.Values {
	q := url.Values{}
	setOptional(q, "broadcaster_id", r.BroadcasterID)
	setOptional(q, "game_id", r.GameID)
	addAll(q, "id", r.IDs)
	setOptional(q, "after", string(r.After))
	setOptional(q, "before", string(r.Before))
	setFirst(q, r.First)
	if r.StartedAt != nil {
		q.Set("started_at", r.StartedAt.UTC().Format(time.RFC3339))
	}
	if r.EndedAt != nil {
		q.Set("ended_at", r.EndedAt.UTC().Format(time.RFC3339))
	}
	if r.IsFeatured != nil {
		q.Set("is_featured", strconv.FormatBool(*r.IsFeatured))
	}
	return q
}

func (r GetClipsRequest) ParseResponse(raw *RawResponse) (*Response[[]Clip], error) {
	return DecodeData[[]Clip](raw)
}

func (r GetClipsRequest) WithAfter(cursor Cursor) Pageable[[]Clip] {
	r.After = cursor
	return r
}
