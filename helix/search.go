package helix

import (
	"net/http"
	"net/url"

	"github.com/golden-vcr/twitchapi"
)

// Category is a game or other category matched by Search Categories
type Category = Game

// SearchCategoriesRequest searches for games or categories whose names match the query
//
// https://dev.twitch.tv/docs/api/reference#search-categories
type SearchCategoriesRequest struct {
	Term   string
	After  Cursor
	Before Cursor
	First  int
}

// NewSearchCategoriesRequest returns a request for categories matching query
func NewSearchCategoriesRequest(query string) SearchCategoriesRequest {
	return SearchCategoriesRequest{Term: query}
}

// WithFirst sets the maximum number of results per page (at most 100)
func (r SearchCategoriesRequest) WithFirst(first int) SearchCategoriesRequest {
	r.First = first
	return r
}

func (r SearchCategoriesRequest) Method() string             { return http.MethodGet }
func (r SearchCategoriesRequest) Path() string               { return "search/categories" }
func (r SearchCategoriesRequest) Scope() twitchapi.Validator { return twitchapi.NoScopes() }

func (r SearchCategoriesRequest) Query() url.Values {
	q := url.Values{}
	q.Set("query", r.Term)
	setOptional(q, "after", string(r.After))
	setOptional(q, "before", string(r.Before))
	setFirst(q, r.First)
	return q
}

// ParseResponse tolerates "data": null, which Twitch returns when nothing matches
func (r SearchCategoriesRequest) ParseResponse(raw *RawResponse) (*Response[[]Category], error) {
	res, err := DecodeData[[]Category](raw)
	if err != nil {
		return nil, err
	}
	if res.Data == nil {
		res.Data = []Category{}
	}
	return res, nil
}

func (r SearchCategoriesRequest) WithAfter(cursor Cursor) Pageable[[]Category] {
	r.After = cursor
	return r
}
