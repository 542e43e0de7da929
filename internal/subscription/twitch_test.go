package subscription

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golden-vcr/twitchapi/helix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newFakeHelix serves the EventSub subscriptions endpoints, splitting its two
// subscriptions across two pages
func newFakeHelix(t *testing.T, deleted *[]string, created *[]map[string]any) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(res http.ResponseWriter, req *http.Request) {
		assert.Equal(t, "Bearer app-token", req.Header.Get("Authorization"))
		assert.Equal(t, "my-client-id", req.Header.Get("Client-Id"))
		assert.Equal(t, "/helix/eventsub/subscriptions", req.URL.Path)

		switch req.Method {
		case http.MethodGet:
			assert.Equal(t, "1337", req.URL.Query().Get("user_id"))
			res.Header().Set("content-type", "application/json")
			if req.URL.Query().Get("after") == "" {
				res.Write([]byte(`{"data":[{"id":"10000001","status":"enabled","type":"channel.update","version":"2","condition":{"broadcaster_user_id":"1337"},"created_at":"2023-01-01T00:00:00Z","transport":{"method":"webhook","callback":"https://my-cool-service.com/callback"},"cost":0}],"total":2,"total_cost":0,"max_total_cost":10000,"pagination":{"cursor":"page-2"}}`))
				return
			}
			assert.Equal(t, "page-2", req.URL.Query().Get("after"))
			res.Write([]byte(`{"data":[{"id":"10000002","status":"enabled","type":"stream.online","version":"1","condition":{"broadcaster_user_id":"1337"},"created_at":"2023-01-01T00:00:00Z","transport":{"method":"webhook","callback":"https://my-cool-service.com/callback"},"cost":0}],"total":2,"total_cost":0,"max_total_cost":10000,"pagination":{}}`))
		case http.MethodPost:
			body, err := io.ReadAll(req.Body)
			require.NoError(t, err)
			var payload map[string]any
			require.NoError(t, json.Unmarshal(body, &payload))
			*created = append(*created, payload)
			res.Header().Set("content-type", "application/json")
			res.WriteHeader(http.StatusAccepted)
			res.Write([]byte(`{"data":[{"id":"10000003","status":"webhook_callback_verification_pending","type":"stream.offline","version":"1","condition":{"broadcaster_user_id":"1337"},"created_at":"2023-01-01T00:00:00Z","transport":{"method":"webhook","callback":"https://my-cool-service.com/callback"},"cost":1}],"total":3,"total_cost":1,"max_total_cost":10000}`))
		case http.MethodDelete:
			id := req.URL.Query().Get("id")
			if id != "10000001" {
				res.WriteHeader(http.StatusNotFound)
				res.Write([]byte(`{"error":"Not Found","status":404,"message":"subscription not found"}`))
				return
			}
			*deleted = append(*deleted, id)
			res.WriteHeader(http.StatusNoContent)
		}
	}))
}

func Test_helixTwitchClient(t *testing.T) {
	var deleted []string
	var created []map[string]any
	srv := newFakeHelix(t, &deleted, &created)
	defer srv.Close()

	c, err := helix.NewClient(helix.Options{BaseURL: srv.URL + "/helix"})
	require.NoError(t, err)
	h := &helixTwitchClient{c: c, creds: helix.Credentials{ClientID: "my-client-id", AccessToken: "app-token"}}
	ctx := context.Background()

	t.Run("all pages of subscriptions are collected", func(t *testing.T) {
		subscriptions, err := h.GetEventSubSubscriptions(ctx, "1337")
		assert.NoError(t, err)
		require.Len(t, subscriptions, 2)
		assert.Equal(t, "10000001", subscriptions[0].ID)
		assert.Equal(t, "10000002", subscriptions[1].ID)
		assert.Equal(t, map[string]string{"broadcaster_user_id": "1337"}, subscriptions[1].Condition)
	})
	t.Run("created subscription is returned", func(t *testing.T) {
		subscription, err := h.CreateEventSubSubscription(ctx, helix.CreateEventSubSubscriptionBody{
			Type:      "stream.offline",
			Version:   "1",
			Condition: map[string]string{"broadcaster_user_id": "1337"},
			Transport: helix.NewWebhookTransport("https://my-cool-service.com/callback", "my-cool-webhook-secret"),
		})
		assert.NoError(t, err)
		require.NotNil(t, subscription)
		assert.Equal(t, "10000003", subscription.ID)
		assert.Equal(t, helix.EventSubStatusVerificationPending, subscription.Status)

		require.Len(t, created, 1)
		assert.Equal(t, "stream.offline", created[0]["type"])
		assert.Equal(t, map[string]any{
			"method":   "webhook",
			"callback": "https://my-cool-service.com/callback",
			"secret":   "my-cool-webhook-secret",
		}, created[0]["transport"])
	})
	t.Run("subscription is removed", func(t *testing.T) {
		assert.NoError(t, h.RemoveEventSubSubscription(ctx, "10000001"))
		assert.Equal(t, []string{"10000001"}, deleted)

		err := h.RemoveEventSubSubscription(ctx, "nonexistent")
		var apiErr *helix.APIError
		if assert.ErrorAs(t, err, &apiErr) {
			assert.Equal(t, 404, apiErr.Status)
		}
	})
}
