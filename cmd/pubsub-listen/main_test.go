package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golden-vcr/twitchapi/pubsub"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"golang.org/x/exp/slog"
)

func Test_handleResponse(t *testing.T) {
	tests := []struct {
		name    string
		res     *pubsub.Response
		wantErr string
	}{
		{
			"successful listen",
			&pubsub.Response{Type: pubsub.ResponseTypeResponse, Nonce: "my-nonce"},
			"",
		},
		{
			"failed listen",
			&pubsub.Response{Type: pubsub.ResponseTypeResponse, Nonce: "my-nonce", Error: "ERR_BADAUTH"},
			"LISTEN failed: ERR_BADAUTH",
		},
		{
			"response to some other command is ignored",
			&pubsub.Response{Type: pubsub.ResponseTypeResponse, Nonce: "other-nonce", Error: "ERR_BADAUTH"},
			"",
		},
		{
			"pong",
			&pubsub.Response{Type: pubsub.ResponseTypePong},
			"",
		},
		{
			"reconnect",
			&pubsub.Response{Type: pubsub.ResponseTypeReconnect},
			"server requested reconnect",
		},
		{
			"message",
			&pubsub.Response{Type: pubsub.ResponseTypeMessage, Message: &pubsub.Message{
				Topic: pubsub.ChannelBitsBadgeUnlocks{ChannelID: 1234},
				Reply: pubsub.ChannelBitsBadgeUnlocksReply{BadgeTier: 1000},
			}},
			"",
		},
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := handleResponse(logger, "my-nonce", tt.res)
			if tt.wantErr != "" {
				assert.EqualError(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func Test_isFrameError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"decode error", &pubsub.DecodeError{Topic: "channel-bits-events-v2.1", Err: errors.New("bad")}, true},
		{"unknown topic", &pubsub.UnknownTopicError{Topic: "video-playback-by-id.1"}, true},
		{"invalid topic", &pubsub.InvalidTopicError{Topic: "channel-bits-events-v2.x"}, true},
		{"unknown response type", &pubsub.UnknownResponseTypeError{Type: "AUTH_REVOKED"}, true},
		{"connection error", &websocket.CloseError{Code: websocket.CloseAbnormalClosure}, false},
		{"other error", io.ErrUnexpectedEOF, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isFrameError(tt.err))
		})
	}
}

// encodeMessageFrame wraps a reply in a MESSAGE frame, string-encoding it the way the
// server does
func encodeMessageFrame(t *testing.T, topic string, message string) []byte {
	encoded, err := json.Marshal(message)
	if err != nil {
		t.Fatal(err)
	}
	return []byte(fmt.Sprintf(`{"type":"MESSAGE","data":{"topic":"%s","message":%s}}`, topic, encoded))
}

func Test_listen_survives_undecodable_frames(t *testing.T) {
	upgrader := websocket.Upgrader{}
	srv := httptest.NewServer(http.HandlerFunc(func(res http.ResponseWriter, req *http.Request) {
		conn, err := upgrader.Upgrade(res, req, nil)
		if !assert.NoError(t, err) {
			return
		}
		defer conn.Close()

		var cmd struct {
			Nonce string `json:"nonce"`
		}
		if !assert.NoError(t, conn.ReadJSON(&cmd)) {
			return
		}
		conn.WriteJSON(map[string]string{"type": "RESPONSE", "nonce": cmd.Nonce, "error": ""})
		conn.WriteMessage(websocket.TextMessage, encodeMessageFrame(t, "channel-bits-events-v2.1", `{"data":"not an object"}`))
		conn.WriteMessage(websocket.TextMessage, encodeMessageFrame(t, "video-playback-by-id.1", `{}`))
		conn.WriteMessage(websocket.TextMessage, []byte(`{"type":"AUTH_REVOKED"}`))
		conn.WriteMessage(websocket.TextMessage, []byte(`{"type":"PONG"}`))
		conn.WriteMessage(websocket.TextMessage, []byte(`{"type":"RECONNECT"}`))
		conn.ReadMessage()
	}))
	defer srv.Close()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	topics := []pubsub.Topic{pubsub.ChannelBitsEventsV2{ChannelID: 1}}
	err := listen(context.Background(), logger, "ws"+strings.TrimPrefix(srv.URL, "http"), topics, "my token")
	assert.ErrorIs(t, err, errReconnect)
}
