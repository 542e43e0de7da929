package subscription

import (
	"github.com/golden-vcr/twitchapi"
	"github.com/golden-vcr/twitchapi/eventsub"
)

// RequiredSubscriptions declares all of the Twitch EventSub webhook subscriptions that
// must be registered for our app to function, with conditions targeting the given
// channel
func RequiredSubscriptions(channelUserId string) []eventsub.Subscription {
	return []eventsub.Subscription{
		eventsub.NewChannelUpdateV2(channelUserId),
		eventsub.NewStreamOnlineV1(channelUserId),
		eventsub.NewStreamOfflineV1(channelUserId),
		eventsub.NewChannelHypeTrainBeginV1(channelUserId),
		eventsub.NewChannelFollowV2(channelUserId, channelUserId),
		eventsub.NewChannelRaidV1To(channelUserId),
		eventsub.NewChannelCheerV1(channelUserId),
		eventsub.NewChannelSubscribeV1(channelUserId),
		eventsub.NewChannelSubscriptionEndV1(channelUserId),
		eventsub.NewChannelSubscriptionGiftV1(channelUserId),
		eventsub.NewChannelSubscriptionMessageV1(channelUserId),
		eventsub.NewChannelPointsCustomRewardRedemptionAddV1(channelUserId),
	}
}

// RequiredScopes returns the minimal set of user scopes that the broadcaster must grant
// to our app in order for all of the given subscriptions to be created, in the order
// they're first required
func RequiredScopes(subscriptions []eventsub.Subscription) []twitchapi.Scope {
	seen := make(map[twitchapi.Scope]bool)
	scopes := make([]twitchapi.Scope, 0)
	for _, subscription := range subscriptions {
		for _, scope := range subscription.Scope().Scopes() {
			if !seen[scope] {
				seen[scope] = true
				scopes = append(scopes, scope)
			}
		}
	}
	return scopes
}
