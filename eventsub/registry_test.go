package eventsub

import (
	"encoding/json"
	"testing"

	"github.com/golden-vcr/twitchapi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var allConditions = []Subscription{
	NewChannelUpdateV2("1337"),
	NewChannelFollowV2("1337", "1338"),
	NewChannelRaidV1To("1337"),
	NewChannelCheerV1("1337"),
	NewChannelSubscribeV1("1337"),
	NewChannelSubscriptionEndV1("1337"),
	NewChannelSubscriptionGiftV1("1337"),
	NewChannelSubscriptionMessageV1("1337"),
	NewChannelHypeTrainBeginV1("1337"),
	NewChannelVipAddV1("1337"),
	NewChannelVipRemoveV1("1337"),
	NewChannelPointsCustomRewardAddV1("1337"),
	NewChannelPointsCustomRewardUpdateV1("1337").WithRewardID("12345"),
	NewChannelPointsCustomRewardRemoveV1("1337"),
	NewChannelPointsCustomRewardRedemptionAddV1("1337").WithRewardID("12345"),
	NewChannelPredictionBeginV1("1337"),
	NewStreamOnlineV1("1337"),
	NewStreamOfflineV1("1337"),
	NewUserUpdateV1("1337"),
	NewUserAuthorizationGrantV1("my-client-id"),
	NewUserAuthorizationRevokeV1("my-client-id"),
}

func Test_Known(t *testing.T) {
	known := Known()
	assert.Len(t, known, len(allConditions))
	for i := 1; i < len(known); i++ {
		assert.Less(t, string(known[i-1].Type), string(known[i].Type))
	}
	for _, c := range allConditions {
		assert.Contains(t, known, Key{Type: c.EventType(), Version: c.Version()})
	}
}

func Test_Lookup(t *testing.T) {
	c, ok := Lookup(EventTypeChannelFollow, "2")
	assert.True(t, ok)
	assert.Equal(t, ChannelFollowV2{}, c)
	assert.Equal(t, twitchapi.RequireAll(twitchapi.ScopeModeratorReadFollowers), c.Scope())

	_, ok = Lookup(EventTypeChannelFollow, "1")
	assert.False(t, ok)
	_, ok = Lookup("channel.follow ", "2")
	assert.False(t, ok)
}

func Test_ConditionMap_roundtrip(t *testing.T) {
	for _, c := range allConditions {
		t.Run(Key{Type: c.EventType(), Version: c.Version()}.String(), func(t *testing.T) {
			m, err := ConditionMap(c)
			require.NoError(t, err)
			assert.NotEmpty(t, m)

			got, err := ParseConditionMap(c.EventType(), c.Version(), m)
			assert.NoError(t, err)
			assert.Equal(t, c, got)

			raw, err := json.Marshal(c)
			require.NoError(t, err)
			got, err = ParseCondition(c.EventType(), c.Version(), raw)
			assert.NoError(t, err)
			assert.Equal(t, c, got)
		})
	}
}

func Test_ConditionMap(t *testing.T) {
	tests := []struct {
		name      string
		condition Subscription
		want      map[string]string
	}{
		{
			"raid to broadcaster omits from",
			NewChannelRaidV1To("1337"),
			map[string]string{"to_broadcaster_user_id": "1337"},
		},
		{
			"raid from broadcaster omits to",
			NewChannelRaidV1From("1337"),
			map[string]string{"from_broadcaster_user_id": "1337"},
		},
		{
			"follow requires moderator",
			NewChannelFollowV2("1337", "1337"),
			map[string]string{"broadcaster_user_id": "1337", "moderator_user_id": "1337"},
		},
		{
			"reward id is optional",
			NewChannelPointsCustomRewardRemoveV1("1337"),
			map[string]string{"broadcaster_user_id": "1337"},
		},
		{
			"reward id when set",
			NewChannelPointsCustomRewardRemoveV1("1337").WithRewardID("12345"),
			map[string]string{"broadcaster_user_id": "1337", "reward_id": "12345"},
		},
		{
			"authorization by client id",
			NewUserAuthorizationRevokeV1("my-client-id"),
			map[string]string{"client_id": "my-client-id"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ConditionMap(tt.condition)
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func Test_ParseCondition_errors(t *testing.T) {
	_, err := ParseCondition("channel.ban", "1", []byte(`{"broadcaster_user_id":"1337"}`))
	var unknownErr *UnknownEventTypeError
	assert.ErrorAs(t, err, &unknownErr)
	assert.Equal(t, `unknown eventsub subscription type "channel.ban" (version "1")`, err.Error())

	_, err = ParseCondition(EventTypeStreamOnline, "1", []byte(`[]`))
	var decodeErr *DecodeError
	assert.ErrorAs(t, err, &decodeErr)
	assert.Equal(t, PartCondition, decodeErr.Part)
	assert.Equal(t, Key{Type: EventTypeStreamOnline, Version: "1"}, decodeErr.Key)
}

func Test_Subscription_Scope(t *testing.T) {
	tests := []struct {
		condition Subscription
		granted   []twitchapi.Scope
		want      bool
	}{
		{NewStreamOnlineV1("1"), nil, true},
		{NewChannelCheerV1("1"), nil, false},
		{NewChannelCheerV1("1"), []twitchapi.Scope{twitchapi.ScopeBitsRead}, true},
		{NewChannelVipAddV1("1"), []twitchapi.Scope{twitchapi.ScopeChannelManageVips}, true},
		{NewChannelPointsCustomRewardAddV1("1"), []twitchapi.Scope{twitchapi.ScopeChannelReadRedemptions}, true},
		{NewChannelPredictionBeginV1("1"), []twitchapi.Scope{twitchapi.ScopeChannelReadPolls}, false},
		{NewChannelSubscriptionGiftV1("1"), []twitchapi.Scope{twitchapi.ScopeChannelReadSubscriptions}, true},
	}
	for _, tt := range tests {
		t.Run(string(tt.condition.EventType()), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.condition.Scope().IsSatisfiedBy(tt.granted))
		})
	}
}
