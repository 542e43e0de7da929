package subscription

import (
	"testing"

	"github.com/golden-vcr/twitchapi/eventsub"
	"github.com/golden-vcr/twitchapi/helix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_reconcileSubscriptionStatus(t *testing.T) {
	required := []eventsub.Subscription{
		eventsub.NewChannelRaidV1To("1337"),
		eventsub.NewChannelPointsCustomRewardRedemptionAddV1("1337"),
	}
	tests := []struct {
		name          string
		subscriptions []helix.EventSubSubscription
		wantOk        bool
		wantStates    []State
	}{
		{
			"conditions reported with empty optional fields match",
			[]helix.EventSubSubscription{
				{
					ID:        "10000001",
					Status:    helix.EventSubStatusEnabled,
					Type:      "channel.raid",
					Version:   "1",
					Condition: map[string]string{"from_broadcaster_user_id": "", "to_broadcaster_user_id": "1337"},
				},
				{
					ID:        "10000002",
					Status:    helix.EventSubStatusEnabled,
					Type:      "channel.channel_points_custom_reward_redemption.add",
					Version:   "1",
					Condition: map[string]string{"broadcaster_user_id": "1337", "reward_id": ""},
				},
			},
			true,
			[]State{
				{
					Required:       true,
					Supported:      true,
					Type:           "channel.raid",
					Version:        "1",
					Condition:      map[string]string{"to_broadcaster_user_id": "1337"},
					Status:         "enabled",
					subscriptionId: "10000001",
				},
				{
					Required:       true,
					Supported:      true,
					Type:           "channel.channel_points_custom_reward_redemption.add",
					Version:        "1",
					Condition:      map[string]string{"broadcaster_user_id": "1337"},
					Status:         "enabled",
					subscriptionId: "10000002",
				},
			},
		},
		{
			"raid in the other direction does not match",
			[]helix.EventSubSubscription{
				{
					ID:        "10000003",
					Status:    helix.EventSubStatusEnabled,
					Type:      "channel.raid",
					Version:   "1",
					Condition: map[string]string{"from_broadcaster_user_id": "1337", "to_broadcaster_user_id": ""},
				},
			},
			false,
			[]State{
				{
					Required:  true,
					Supported: true,
					Type:      "channel.raid",
					Version:   "1",
					Condition: map[string]string{"to_broadcaster_user_id": "1337"},
					Status:    "missing",
				},
				{
					Required:  true,
					Supported: true,
					Type:      "channel.channel_points_custom_reward_redemption.add",
					Version:   "1",
					Condition: map[string]string{"broadcaster_user_id": "1337"},
					Status:    "missing",
				},
				{
					Required:       false,
					Supported:      true,
					Type:           "channel.raid",
					Version:        "1",
					Condition:      map[string]string{"from_broadcaster_user_id": "1337"},
					Status:         "enabled",
					subscriptionId: "10000003",
				},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := reconcileSubscriptionStatus(tt.subscriptions, required)
			require.NoError(t, err)
			assert.Equal(t, tt.wantOk, got.Ok)
			assert.Equal(t, tt.wantStates, got.Subscriptions)
		})
	}
}
