package pubsub

import (
	"testing"

	"github.com/golden-vcr/twitchapi"
	"github.com/stretchr/testify/assert"
)

func Test_Topic_roundtrip(t *testing.T) {
	tests := []struct {
		topic Topic
		want  string
	}{
		{CommunityPointsChannelV1{ChannelID: 1234}, "community-points-channel-v1.1234"},
		{CommunityPointsUserV1{ChannelID: 1234}, "community-points-user-v1.1234"},
		{ChannelPointsChannelV1{ChannelID: 1234}, "channel-points-channel-v1.1234"},
		{ChannelBitsEventsV2{ChannelID: 12345}, "channel-bits-events-v2.12345"},
		{ChannelBitsBadgeUnlocks{ChannelID: 12345}, "channel-bits-badge-unlocks.12345"},
		{ChannelSubscribeEventsV1{ChannelID: 27620241}, "channel-subscribe-events-v1.27620241"},
		{ChatModeratorActions{UserID: 1234, ChannelID: 5678}, "chat_moderator_actions.1234.5678"},
		{AutoModQueue{ModeratorID: 1234, ChannelID: 5678}, "automod-queue.1234.5678"},
		{UserModerationNotifications{CurrentUserID: 1234, ChannelID: 5678}, "user-moderation-notifications.1234.5678"},
		{PredictionsChannelV1{ChannelID: 0}, "predictions-channel-v1.0"},
		{PredictionsUserV1{ChannelID: 4294967295}, "predictions-user-v1.4294967295"},
	}
	assert.Len(t, tests, len(KnownTopics()))
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.topic.String())
			got, err := ParseTopic(tt.want)
			assert.NoError(t, err)
			assert.Equal(t, tt.topic, got)
		})
	}
}

func Test_ParseTopic_errors(t *testing.T) {
	tests := []struct {
		name        string
		s           string
		wantUnknown bool
	}{
		{"empty", "", true},
		{"unknown name", "video-playback.1234", true},
		{"name is case-sensitive", "Channel-Bits-Events-V2.1234", true},
		{"missing parameter", "channel-bits-events-v2", false},
		{"too many parameters", "channel-bits-events-v2.1234.5678", false},
		{"too few parameters", "chat_moderator_actions.1234", false},
		{"non-numeric parameter", "channel-bits-events-v2.abc", false},
		{"empty parameter", "channel-bits-events-v2.", false},
		{"negative parameter", "channel-bits-events-v2.-1", false},
		{"leading zero", "channel-bits-events-v2.01234", false},
		{"leading plus", "channel-bits-events-v2.+1234", false},
		{"out of range", "channel-bits-events-v2.4294967296", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			topic, err := ParseTopic(tt.s)
			assert.Nil(t, topic)
			if tt.wantUnknown {
				var unknownErr *UnknownTopicError
				assert.ErrorAs(t, err, &unknownErr)
			} else {
				var invalidErr *InvalidTopicError
				assert.ErrorAs(t, err, &invalidErr)
			}
		})
	}
}

func Test_Topic_Scope(t *testing.T) {
	assert.Equal(t, "all(bits:read)", ChannelBitsEventsV2{ChannelID: 1}.Scope().String())
	assert.Equal(t, "all(channel:moderate)", ChatModeratorActions{UserID: 1, ChannelID: 1}.Scope().String())
	assert.Equal(t, "none", CommunityPointsChannelV1{ChannelID: 1}.Scope().String())
	assert.True(t, ChannelPointsChannelV1{ChannelID: 1}.Scope().IsSatisfiedBy([]twitchapi.Scope{twitchapi.ScopeChannelReadRedemptions}))
	assert.False(t, AutoModQueue{ModeratorID: 1, ChannelID: 1}.Scope().IsSatisfiedBy([]twitchapi.Scope{twitchapi.ScopeChatRead}))
}
