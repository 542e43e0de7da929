package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golden-vcr/twitchapi/helix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_getGames(t *testing.T) {
	var requestedIds [][]string
	srv := httptest.NewServer(http.HandlerFunc(func(res http.ResponseWriter, req *http.Request) {
		assert.Equal(t, "/helix/games", req.URL.Path)
		requestedIds = append(requestedIds, req.URL.Query()["id"])
		res.Header().Set("content-type", "application/json")
		res.Write([]byte(`{"data":[{"id":"33214","name":"Fortnite","box_art_url":"","igdb_id":"1905"},{"id":"509658","name":"Just Chatting","box_art_url":"","igdb_id":""}]}`))
	}))
	defer srv.Close()

	c, err := helix.NewClient(helix.Options{BaseURL: srv.URL + "/helix"})
	require.NoError(t, err)
	creds := helix.Credentials{ClientID: "my-client-id", AccessToken: "user-token"}

	games, err := getGames(context.Background(), c, creds, []helix.Stream{
		{UserName: "a", GameID: "33214"},
		{UserName: "b", GameID: "509658"},
		{UserName: "c", GameID: "33214"},
		{UserName: "d", GameID: ""},
	})
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"33214", "509658"}}, requestedIds)
	assert.Len(t, games, 2)
	assert.Equal(t, "Fortnite", games["33214"].Name)
	assert.Equal(t, "Just Chatting", games["509658"].Name)
}

func Test_getGames_no_streams(t *testing.T) {
	games, err := getGames(context.Background(), nil, helix.Credentials{}, nil)
	assert.NoError(t, err)
	assert.Empty(t, games)
}
