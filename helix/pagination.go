package helix

import (
	"context"
)

// Cursor is the opaque token Twitch issues to address the next page of results. It is
// never parsed; the empty Cursor means there are no further pages.
type Cursor string

// Pageable is an Endpoint whose results may span multiple pages. WithAfter returns a
// copy of the request addressing the page after the given cursor: the receiver is left
// unmodified.
type Pageable[D any] interface {
	Endpoint[D]
	WithAfter(cursor Cursor) Pageable[D]
}

type pagerConfig struct {
	maxPages int
}

// PagerOption customizes the behavior of a Pager
type PagerOption func(*pagerConfig)

// WithMaxPages caps the number of pages a Pager will request. If the server still returns
// a cursor once the limit has been reached, the Pager stops with ErrPageLimit. A value of
// 0 means no limit.
func WithMaxPages(n int) PagerOption {
	return func(c *pagerConfig) {
		c.maxPages = n
	}
}

// Pager follows pagination cursors, requesting one page at a time:
//
//	p := helix.NewPager(c, req, creds)
//	for p.Next(ctx) {
//		handle(p.Page().Data)
//	}
//	if err := p.Err(); err != nil {
//		...
//	}
//
// A Pager is not safe for concurrent use.
type Pager[D any] struct {
	client *Client
	creds  Credentials
	next   Pageable[D]
	config pagerConfig

	page  *Response[D]
	pages int
	done  bool
	err   error
}

// NewPager returns a Pager that starts from req. Each Pager restarts from the initial
// request; req itself is never modified.
func NewPager[D any](c *Client, req Pageable[D], creds Credentials, opts ...PagerOption) *Pager[D] {
	p := &Pager[D]{
		client: c,
		creds:  creds,
		next:   req,
	}
	for _, opt := range opts {
		opt(&p.config)
	}
	return p
}

// Next requests the next page, returning false once there are no more pages or a request
// has failed. Pages already yielded remain valid after a failure.
func (p *Pager[D]) Next(ctx context.Context) bool {
	if p.done || p.err != nil {
		return false
	}
	if p.config.maxPages > 0 && p.pages >= p.config.maxPages {
		p.err = ErrPageLimit
		return false
	}

	res, err := Send[D](ctx, p.client, p.next, p.creds)
	if err != nil {
		p.err = err
		return false
	}
	p.page = res
	p.pages++
	if res.Cursor == "" {
		p.done = true
	} else {
		p.next = p.next.WithAfter(res.Cursor)
	}
	return true
}

// Page returns the most recent page yielded by Next
func (p *Pager[D]) Page() *Response[D] {
	return p.page
}

// Pages returns the number of pages successfully fetched so far
func (p *Pager[D]) Pages() int {
	return p.pages
}

// Err returns the error that stopped iteration, if any
func (p *Pager[D]) Err() error {
	return p.err
}

// Collect follows every page of req and concatenates the results
func Collect[T any](ctx context.Context, c *Client, req Pageable[[]T], creds Credentials, opts ...PagerOption) ([]T, error) {
	var items []T
	p := NewPager[[]T](c, req, creds, opts...)
	for p.Next(ctx) {
		items = append(items, p.Page().Data...)
	}
	if err := p.Err(); err != nil {
		return items, err
	}
	return items, nil
}
