package userauth

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/golden-vcr/twitchapi/eventsub"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer() *Server {
	return NewServer("https://my-cool-service.com", "my-client-id", []eventsub.Subscription{
		eventsub.NewStreamOnlineV1("1337"),
		eventsub.NewChannelFollowV2("1337", "1337"),
		eventsub.NewChannelCheerV1("1337"),
		eventsub.NewChannelPointsCustomRewardRedemptionAddV1("1337"),
	})
}

func Test_Server_handleStartAuth(t *testing.T) {
	s := newTestServer()
	req := httptest.NewRequest(http.MethodGet, "/userauth/start", nil)
	res := httptest.NewRecorder()
	s.handleStartAuth(res, req)

	assert.Equal(t, http.StatusSeeOther, res.Code)
	location, err := url.Parse(res.Header().Get("location"))
	require.NoError(t, err)
	assert.Equal(t, "id.twitch.tv", location.Host)
	assert.Equal(t, "/oauth2/authorize", location.Path)

	q := location.Query()
	assert.Equal(t, "code", q.Get("response_type"))
	assert.Equal(t, "my-client-id", q.Get("client_id"))
	assert.Equal(t, "https://my-cool-service.com/userauth/finish", q.Get("redirect_uri"))
	assert.Equal(t, "moderator:read:followers bits:read channel:read:redemptions", q.Get("scope"))
	assert.True(t, s.csrf.check(q.Get("state")))
}

func Test_Server_handleFinishAuth(t *testing.T) {
	tests := []struct {
		name       string
		query      func(state string) string
		wantStatus int
		wantBody   string
	}{
		{
			"all required scopes granted",
			func(state string) string {
				return "code=abc&scope=moderator%3Aread%3Afollowers+bits%3Aread+channel%3Aread%3Aredemptions&state=" + state
			},
			200,
			"Success!",
		},
		{
			"the manage scope satisfies an any-of requirement",
			func(state string) string {
				return "code=abc&scope=moderator%3Aread%3Afollowers+bits%3Aread+channel%3Amanage%3Aredemptions&state=" + state
			},
			200,
			"Success!",
		},
		{
			"missing scope is rejected",
			func(state string) string {
				return "code=abc&scope=moderator%3Aread%3Afollowers+channel%3Aread%3Aredemptions&state=" + state
			},
			400,
			"required scope 'bits:read' was not granted",
		},
		{
			"empty scope is rejected",
			func(state string) string {
				return "code=abc&scope=&state=" + state
			},
			400,
			"required scope 'moderator:read:followers' was not granted",
		},
		{
			"missing state is rejected",
			func(state string) string {
				return "code=abc&scope=bits%3Aread"
			},
			400,
			"'state' value not found in URL query params",
		},
		{
			"unknown state is rejected",
			func(state string) string {
				return "code=abc&scope=bits%3Aread&state=abcdef"
			},
			400,
			"CSRF token verification failed",
		},
		{
			"declined authorization is reported",
			func(state string) string {
				return "error=access_denied&error_description=The+user+denied+you+access&state=" + state
			},
			400,
			"authorization failed: The user denied you access",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestServer()
			state := s.csrf.generate()
			req := httptest.NewRequest(http.MethodGet, "/userauth/finish?"+tt.query(state), nil)
			res := httptest.NewRecorder()
			s.handleFinishAuth(res, req)

			assert.Equal(t, tt.wantStatus, res.Code)
			assert.True(t, strings.Contains(res.Body.String(), tt.wantBody), "body %q does not contain %q", res.Body.String(), tt.wantBody)
		})
	}
}
