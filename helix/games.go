package helix

import (
	"net/http"
	"net/url"

	"github.com/golden-vcr/twitchapi"
)

// Game is a category on Twitch, as returned by Get Games and Get Top Games
type Game struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	BoxArtURL string `json:"box_art_url"`
	IGDBID    string `json:"igdb_id"`
}

// GetTopGamesRequest gets games sorted by number of current viewers on Twitch, most
// popular first
//
// https://dev.twitch.tv/docs/api/reference#get-top-games
type GetTopGamesRequest struct {
	After  Cursor
	Before Cursor
	First  int
}

// NewGetTopGamesRequest returns a request for the first page of top games
func NewGetTopGamesRequest() GetTopGamesRequest {
	return GetTopGamesRequest{}
}

// WithFirst sets the maximum number of results per page (at most 100)
func (r GetTopGamesRequest) WithFirst(first int) GetTopGamesRequest {
	r.First = first
	return r
}

func (r GetTopGamesRequest) Method() string             { return http.MethodGet }
func (r GetTopGamesRequest) Path() string               { return "games/top" }
func (r GetTopGamesRequest) Scope() twitchapi.Validator { return twitchapi.NoScopes() }

func (r GetTopGamesRequest) Query() url.Values {
	q := url.Values{}
	setOptional(q, "after", string(r.After))
	setOptional(q, "before", string(r.Before))
	setFirst(q, r.First)
	return q
}

func (r GetTopGamesRequest) ParseResponse(raw *RawResponse) (*Response[[]Game], error) {
	return DecodeData[[]Game](raw)
}

func (r GetTopGamesRequest) WithAfter(cursor Cursor) Pageable[[]Game] {
	r.After = cursor
	return r
}

// GetGamesRequest gets games by ID, name or IGDB ID; at least one must be given, and
// up to 100 in total
//
// https://dev.twitch.tv/docs/api/reference#get-games
type GetGamesRequest struct {
	IDs     []string
	Names   []string
	IGDBIDs []string
}

// NewGetGamesRequest returns a request for the games with the given IDs
func NewGetGamesRequest(ids ...string) GetGamesRequest {
	return GetGamesRequest{IDs: ids}
}

// NewGetGamesByNameRequest returns a request for the games with the given exact names
func NewGetGamesByNameRequest(names ...string) GetGamesRequest {
	return GetGamesRequest{Names: names}
}

func (r GetGamesRequest) Method() string             { return http.MethodGet }
func (r GetGamesRequest) Path() string               { return "games" }
func (r GetGamesRequest) Scope() twitchapi.Validator { return twitchapi.NoScopes() }

func (r GetGamesRequest) Query() url.Values {
	q := url.Values{}
	addAll(q, "id", r.IDs)
	addAll(q, "name", r.Names)
	addAll(q, "igdb_id", r.IGDBIDs)
	return q
}

func (r GetGamesRequest) ParseResponse(raw *RawResponse) (*Response[[]Game], error) {
	return DecodeData[[]Game](raw)
}
