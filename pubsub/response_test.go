package pubsub

import (
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const rewardRedeemedMessage = `{
	"type": "reward-redeemed",
	"data": {
		"timestamp": "2020-10-10T19:13:30.536153182Z",
		"redemption": {
			"id": "b021f290-bedb-49c2-b90f-e6ceb1c0d4ab",
			"user": {
				"id": "27620241",
				"login": "emilgardis",
				"display_name": "emilgardis"
			},
			"channel_id": "27620241",
			"redeemed_at": "2020-10-10T19:13:30.536153182Z",
			"reward": {
				"id": "252e209d-4f16-4886-a0d1-97f458ad5698",
				"channel_id": "27620241",
				"title": "Hydration",
				"prompt": "Make Emilgardis drink water",
				"cost": 2000,
				"is_user_input_required": true,
				"is_sub_only": false,
				"image": null,
				"default_image": {
					"url_1x": "https://static-cdn.jtvnw.net/custom-reward-images/default-1.png",
					"url_2x": "https://static-cdn.jtvnw.net/custom-reward-images/default-2.png",
					"url_4x": "https://static-cdn.jtvnw.net/custom-reward-images/default-4.png"
				},
				"background_color": "#81AEFF",
				"is_enabled": true,
				"is_paused": false,
				"is_in_stock": true,
				"max_per_stream": {
					"is_enabled": false,
					"max_per_stream": 10
				},
				"should_redemptions_skip_request_queue": false,
				"template_id": null,
				"updated_for_indicator_at": "2020-02-06T17:29:19.737311439Z",
				"max_per_user_per_stream": {
					"is_enabled": false,
					"max_per_user_per_stream": 0
				},
				"global_cooldown": {
					"is_enabled": false,
					"global_cooldown_seconds": 0
				},
				"redemptions_redeemed_current_stream": 0,
				"cooldown_expires_at": null
			},
			"user_input": "bap",
			"status": "UNFULFILLED"
		}
	}
}`

// messageFrame wraps a reply in a MESSAGE frame, string-encoding it the way the server
// does
func messageFrame(t *testing.T, topic string, message string) []byte {
	encoded, err := json.Marshal(message)
	require.NoError(t, err)
	return []byte(fmt.Sprintf(`{"type":"MESSAGE","data":{"topic":"%s","message":%s}}`, topic, encoded))
}

func Test_ParseResponse_community_points(t *testing.T) {
	res, err := ParseResponse(messageFrame(t, "community-points-channel-v1.27620241", rewardRedeemedMessage))
	require.NoError(t, err)
	assert.Equal(t, ResponseTypeMessage, res.Type)
	require.NotNil(t, res.Message)
	assert.Equal(t, CommunityPointsChannelV1{ChannelID: 27620241}, res.Message.Topic)
	assert.Equal(t, rewardRedeemedMessage, res.Message.Raw)

	reply, ok := MessageReply[ChannelPointsReply](res)
	require.True(t, ok)
	assert.Equal(t, "reward-redeemed", reply.Type)
	require.NotNil(t, reply.Data.Redemption)
	redemption := reply.Data.Redemption
	assert.Equal(t, "b021f290-bedb-49c2-b90f-e6ceb1c0d4ab", redemption.ID)
	assert.Equal(t, RedemptionUser{ID: "27620241", Login: "emilgardis", DisplayName: "emilgardis"}, redemption.User)
	assert.Equal(t, "bap", redemption.UserInput)
	assert.Equal(t, "UNFULFILLED", redemption.Status)
	assert.Equal(t, "Hydration", redemption.Reward.Title)
	assert.Equal(t, int64(2000), redemption.Reward.Cost)
	assert.Nil(t, redemption.Reward.Image)
	require.NotNil(t, redemption.Reward.DefaultImage)
	assert.Equal(t, MaxPerStream{IsEnabled: false, MaxPerStream: 10}, redemption.Reward.MaxPerStream)
	assert.Equal(t, time.Date(2020, 10, 10, 19, 13, 30, 536153182, time.UTC), reply.Data.Timestamp)

	_, ok = MessageReply[ChannelBitsEventsV2Reply](res)
	assert.False(t, ok)
}

func Test_ParseResponse_bits(t *testing.T) {
	message := `{
		"data": {
			"user_name": "dallasnchains",
			"channel_name": "dallas",
			"user_id": "129454141",
			"channel_id": "44322889",
			"time": "2017-02-09T13:23:58.168Z",
			"chat_message": "cheer10000 New badge hype!",
			"bits_used": 10000,
			"total_bits_used": 25000,
			"context": "cheer",
			"badge_entitlement": {
				"new_version": 25000,
				"previous_version": 10000
			}
		},
		"version": "1.0",
		"message_type": "bits_event",
		"message_id": "8145728a4-35f0-4cf7-9dc0-f2ef24de1eb6",
		"is_anonymous": false
	}`
	res, err := ParseResponse(messageFrame(t, "channel-bits-events-v2.44322889", message))
	require.NoError(t, err)

	reply, ok := MessageReply[ChannelBitsEventsV2Reply](res)
	require.True(t, ok)
	assert.Equal(t, "bits_event", reply.MessageType)
	assert.Equal(t, int64(10000), reply.Data.BitsUsed)
	require.NotNil(t, reply.Data.UserName)
	assert.Equal(t, "dallasnchains", *reply.Data.UserName)
	require.NotNil(t, reply.Data.BadgeEntitlement)
	assert.Equal(t, int64(25000), reply.Data.BadgeEntitlement.NewVersion)
}

func Test_ParseResponse_moderator_action(t *testing.T) {
	message := `{
		"type": "moderation_action",
		"data": {
			"type": "chat_login_moderation",
			"moderation_action": "timeout",
			"args": ["tmi", "1", ""],
			"created_by": "emilgardis",
			"created_by_user_id": "27620241",
			"msg_id": "",
			"target_user_id": "1234",
			"target_user_login": "",
			"from_automod": false
		}
	}`
	res, err := ParseResponse(messageFrame(t, "chat_moderator_actions.27620241.27620241", message))
	require.NoError(t, err)
	assert.Equal(t, ChatModeratorActions{UserID: 27620241, ChannelID: 27620241}, res.Message.Topic)

	reply, ok := MessageReply[ChatModeratorActionsReply](res)
	require.True(t, ok)
	assert.Equal(t, "timeout", reply.Data.ModerationAction)
	assert.Equal(t, []string{"tmi", "1", ""}, reply.Data.Args)
}

func Test_ParseResponse(t *testing.T) {
	tests := []struct {
		name string
		data string
		want *Response
	}{
		{
			"successful listen",
			`{"type": "RESPONSE", "nonce": "44h1k13746815ab1r2", "error": ""}`,
			&Response{Type: ResponseTypeResponse, Nonce: "44h1k13746815ab1r2"},
		},
		{
			"failed listen",
			`{"type": "RESPONSE", "nonce": "44h1k13746815ab1r2", "error": "ERR_BADAUTH"}`,
			&Response{Type: ResponseTypeResponse, Nonce: "44h1k13746815ab1r2", Error: "ERR_BADAUTH"},
		},
		{
			"pong",
			`{"type": "PONG"}`,
			&Response{Type: ResponseTypePong},
		},
		{
			"reconnect",
			`{"type": "RECONNECT"}`,
			&Response{Type: ResponseTypeReconnect},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseResponse([]byte(tt.data))
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	ok, err := ParseResponse([]byte(tests[0].data))
	require.NoError(t, err)
	assert.True(t, ok.IsSuccessful())
	failed, err := ParseResponse([]byte(tests[1].data))
	require.NoError(t, err)
	assert.False(t, failed.IsSuccessful())
}

func Test_ParseResponse_errors(t *testing.T) {
	t.Run("malformed frame", func(t *testing.T) {
		_, err := ParseResponse([]byte(`{"type": `))
		var decodeErr *DecodeError
		if assert.ErrorAs(t, err, &decodeErr) {
			assert.Equal(t, "", decodeErr.Topic)
		}
	})
	t.Run("unknown frame type", func(t *testing.T) {
		_, err := ParseResponse([]byte(`{"type": "AUTH_REVOKED"}`))
		var unknownErr *UnknownResponseTypeError
		if assert.ErrorAs(t, err, &unknownErr) {
			assert.Equal(t, "AUTH_REVOKED", unknownErr.Type)
		}
	})
	t.Run("unknown topic", func(t *testing.T) {
		_, err := ParseResponse(messageFrame(t, "video-playback-by-id.1234", `{"type":"viewcount","viewers":12}`))
		var unknownErr *UnknownTopicError
		if assert.ErrorAs(t, err, &unknownErr) {
			assert.Equal(t, "video-playback-by-id.1234", unknownErr.Topic)
		}
	})
	t.Run("message without data", func(t *testing.T) {
		_, err := ParseResponse([]byte(`{"type": "MESSAGE"}`))
		var decodeErr *DecodeError
		assert.ErrorAs(t, err, &decodeErr)
	})
	t.Run("message is not valid json", func(t *testing.T) {
		_, err := ParseResponse(messageFrame(t, "channel-bits-badge-unlocks.1234", `{not json`))
		var decodeErr *DecodeError
		if assert.ErrorAs(t, err, &decodeErr) {
			assert.Equal(t, "channel-bits-badge-unlocks.1234", decodeErr.Topic)
			assert.Equal(t, `{not json`, decodeErr.Body)
		}
	})
	t.Run("message does not match topic schema", func(t *testing.T) {
		_, err := ParseResponse(messageFrame(t, "channel-bits-badge-unlocks.1234", `{"badge_tier":"lots"}`))
		var decodeErr *DecodeError
		assert.ErrorAs(t, err, &decodeErr)
	})
}
