package helix

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testCreds = Credentials{ClientID: "my-client-id", AccessToken: "my-token"}

func mustParseURL(t *testing.T, s string) *url.URL {
	u, err := url.Parse(s)
	require.NoError(t, err)
	return u
}

func Test_URI(t *testing.T) {
	base := mustParseURL(t, DefaultBaseURL)
	tests := []struct {
		name string
		req  Request
		want string
	}{
		{
			"no query parameters",
			NewGetTopGamesRequest(),
			"https://api.twitch.tv/helix/games/top",
		},
		{
			"single id",
			NewGetUsersRequest("44322889"),
			"https://api.twitch.tv/helix/users?id=44322889",
		},
		{
			"deprecated follows",
			NewGetFollowersRequest("23161357"),
			"https://api.twitch.tv/helix/users/follows?to_id=23161357",
		},
		{
			"search query",
			NewSearchCategoriesRequest("fort"),
			"https://api.twitch.tv/helix/search/categories?query=fort",
		},
		{
			"keys are sorted",
			NewSendChatAnnouncementRequest("1234", "5678"),
			"https://api.twitch.tv/helix/chat/announcements?broadcaster_id=1234&moderator_id=5678",
		},
		{
			"repeated list parameters",
			NewGetGamesRequest("33214", "493057"),
			"https://api.twitch.tv/helix/games?id=33214&id=493057",
		},
		{
			"clips by id",
			NewGetClipsRequest("AwkwardHelplessSalamanderSwiftRage"),
			"https://api.twitch.tv/helix/clips?id=AwkwardHelplessSalamanderSwiftRage",
		},
		{
			"redemption status update",
			NewUpdateRedemptionStatusRequest("274637212", "92af127c-7326-4483-a52b-b0da0be61c01", "17fa2df1-ad76-4804-bfa5-a40ef63efe63"),
			"https://api.twitch.tv/helix/channel_points/custom_rewards/redemptions?broadcaster_id=274637212&id=17fa2df1-ad76-4804-bfa5-a40ef63efe63&reward_id=92af127c-7326-4483-a52b-b0da0be61c01",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := URI(base, tt.req)
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got.String())

			again, err := URI(base, tt.req)
			assert.NoError(t, err)
			assert.Equal(t, got.String(), again.String())
		})
	}
}

func Test_NewClient(t *testing.T) {
	c, err := NewClient(Options{BaseURL: "http://localhost:8080/mock"})
	assert.NoError(t, err)
	u, err := c.URI(NewGetTopGamesRequest())
	assert.NoError(t, err)
	assert.Equal(t, "http://localhost:8080/mock/games/top", u.String())

	_, err = NewClient(Options{BaseURL: "not-a-url"})
	assert.Error(t, err)
}

func Test_Client_NewHTTPRequest(t *testing.T) {
	c, err := NewClient(Options{})
	require.NoError(t, err)

	req, err := c.NewHTTPRequest(context.Background(), NewGetUsersRequest("44322889"), nil, testCreds)
	assert.NoError(t, err)
	assert.Equal(t, http.MethodGet, req.Method)
	assert.Equal(t, "Bearer my-token", req.Header.Get("Authorization"))
	assert.Equal(t, "my-client-id", req.Header.Get("Client-Id"))
	assert.Equal(t, "", req.Header.Get("Content-Type"))

	body := []byte(`{"message":"Hello chat!","color":"purple"}`)
	req, err = c.NewHTTPRequest(context.Background(), NewSendChatAnnouncementRequest("1234", "5678"), body, testCreds)
	assert.NoError(t, err)
	assert.Equal(t, http.MethodPost, req.Method)
	assert.Equal(t, "application/json", req.Header.Get("Content-Type"))
	sent, err := io.ReadAll(req.Body)
	assert.NoError(t, err)
	assert.Equal(t, body, sent)
}

func Test_Send(t *testing.T) {
	var gotPath, gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(res http.ResponseWriter, req *http.Request) {
		gotPath = req.URL.RequestURI()
		gotAuth = req.Header.Get("Authorization")
		res.Write([]byte(`{"data":[{"id":"493057","name":"PUBG: BATTLEGROUNDS","box_art_url":"https://static-cdn.jtvnw.net/ttv-boxart/493057-{width}x{height}.jpg","igdb_id":"27789"}],"pagination":{"cursor":"abc"}}`))
	}))
	defer srv.Close()

	var observed []string
	c, err := NewClient(Options{
		BaseURL:    srv.URL + "/helix/",
		HTTPClient: srv.Client(),
		Observer: func(method, path string, status int, elapsed time.Duration) {
			observed = append(observed, method+" "+path)
			assert.Equal(t, http.StatusOK, status)
		},
	})
	require.NoError(t, err)

	res, err := Send[[]Game](context.Background(), c, NewGetTopGamesRequest(), testCreds)
	assert.NoError(t, err)
	assert.Equal(t, "/helix/games/top", gotPath)
	assert.Equal(t, "Bearer my-token", gotAuth)
	assert.Equal(t, []Game{{
		ID:        "493057",
		Name:      "PUBG: BATTLEGROUNDS",
		BoxArtURL: "https://static-cdn.jtvnw.net/ttv-boxart/493057-{width}x{height}.jpg",
		IGDBID:    "27789",
	}}, res.Data)
	assert.Equal(t, Cursor("abc"), res.Cursor)
	assert.Equal(t, []string{"GET games/top"}, observed)
}

type failingHTTPClient struct{}

func (failingHTTPClient) Do(req *http.Request) (*http.Response, error) {
	return nil, errors.New("connection refused")
}

type stubHTTPClient struct {
	status int
	body   string
	req    *http.Request
}

func (c *stubHTTPClient) Do(req *http.Request) (*http.Response, error) {
	c.req = req
	return &http.Response{
		StatusCode: c.status,
		Header:     http.Header{},
		Body:       io.NopCloser(strings.NewReader(c.body)),
	}, nil
}

func Test_Send_errors(t *testing.T) {
	t.Run("transport failure", func(t *testing.T) {
		c, err := NewClient(Options{HTTPClient: failingHTTPClient{}})
		require.NoError(t, err)
		_, err = Send[[]Game](context.Background(), c, NewGetTopGamesRequest(), testCreds)

		var transportErr *TransportError
		assert.ErrorAs(t, err, &transportErr)
		assert.Equal(t, "https://api.twitch.tv/helix/games/top", transportErr.URI)
	})
	t.Run("api error body", func(t *testing.T) {
		stub := &stubHTTPClient{
			status: http.StatusNotFound,
			body:   `{"error":"Not Found","message":"twitchdev has no subscription to twitchpresents","status":404}`,
		}
		c, err := NewClient(Options{HTTPClient: stub})
		require.NoError(t, err)
		_, err = Send[UserSubscription](context.Background(), c, NewCheckUserSubscriptionRequest("123"), testCreds)

		var apiErr *APIError
		assert.ErrorAs(t, err, &apiErr)
		assert.Equal(t, http.StatusNotFound, apiErr.Status)
		assert.Equal(t, "Not Found", apiErr.ErrorText)
		assert.Equal(t, "twitchdev has no subscription to twitchpresents", apiErr.Message)
		assert.Equal(t, "https://api.twitch.tv/helix/subscriptions/user?broadcaster_id=123", apiErr.URI)
	})
	t.Run("non-2xx without error body", func(t *testing.T) {
		stub := &stubHTTPClient{status: http.StatusBadGateway, body: "<html>oops</html>"}
		c, err := NewClient(Options{HTTPClient: stub})
		require.NoError(t, err)
		_, err = Send[[]Game](context.Background(), c, NewGetTopGamesRequest(), testCreds)

		var invalidErr *InvalidResponseError
		assert.ErrorAs(t, err, &invalidErr)
		assert.Equal(t, http.StatusBadGateway, invalidErr.Status)
		assert.Equal(t, "<html>oops</html>", invalidErr.Body)
	})
	t.Run("malformed body", func(t *testing.T) {
		stub := &stubHTTPClient{status: http.StatusOK, body: `{"data": [{"id": 12}]}`}
		c, err := NewClient(Options{HTTPClient: stub})
		require.NoError(t, err)
		_, err = Send[[]Game](context.Background(), c, NewGetTopGamesRequest(), testCreds)

		var deserializeErr *DeserializeError
		assert.ErrorAs(t, err, &deserializeErr)
		assert.Equal(t, `{"data": [{"id": 12}]}`, deserializeErr.Body)
		assert.Equal(t, http.StatusOK, deserializeErr.Status)
	})
}

func Test_SendWithBody(t *testing.T) {
	stub := &stubHTTPClient{status: http.StatusNoContent}
	c, err := NewClient(Options{HTTPClient: stub})
	require.NoError(t, err)

	body, err := NewSendChatAnnouncementBody("Hello chat!", "purple")
	require.NoError(t, err)
	res, err := SendWithBody[SendChatAnnouncementBody, SendChatAnnouncementResult](context.Background(), c, NewSendChatAnnouncementRequest("1234", "5678"), body, testCreds)
	assert.NoError(t, err)
	assert.Equal(t, AnnouncementSuccess, res.Data)

	require.NotNil(t, stub.req)
	sent, err := io.ReadAll(stub.req.Body)
	assert.NoError(t, err)
	assert.Equal(t, `{"message":"Hello chat!","color":"purple"}`, string(sent))
	assert.Equal(t, "application/json", stub.req.Header.Get("Content-Type"))
}
