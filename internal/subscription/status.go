package subscription

import (
	"context"
	"fmt"

	"github.com/golden-vcr/twitchapi/eventsub"
	"github.com/golden-vcr/twitchapi/helix"
	"golang.org/x/exp/maps"
)

// getOwnedSubscriptions queries the Twitch API to find all relevant EventSub
// subscriptions that are registered with the given user ID and webhook callback URL
func getOwnedSubscriptions(ctx context.Context, c TwitchClient, channelUserId, callbackUrl string) ([]helix.EventSubSubscription, error) {
	// The Twitch client follows pagination cursors for us, so we get every subscription
	// that references our channel in a single call
	all, err := c.GetEventSubSubscriptions(ctx, channelUserId)
	if err != nil {
		return nil, err
	}

	subscriptions := make([]helix.EventSubSubscription, 0, len(all))
	for i := range all {
		// Ignore any subscriptions that don't hit our webhook API
		subscription := all[i]
		if subscription.Transport.Method != "webhook" {
			continue
		}
		if subscription.Transport.Callback != callbackUrl {
			continue
		}
		subscriptions = append(subscriptions, subscription)
	}
	return subscriptions, nil
}

// reconcileSubscriptionStatus examines the set of extant EventSub subscriptions as
// returned by the Twitch API, and it compares those subscriptions against the set of
// required subscriptions in order to determine the status of each required subscription
func reconcileSubscriptionStatus(subscriptions []helix.EventSubSubscription, requiredSubscriptions []eventsub.Subscription) (*Status, error) {
	// Prepare a list that will summarize the details of all subscriptions germane to
	// our service
	subscriptionStates := make([]State, 0, len(requiredSubscriptions))
	unexamined := make([]helix.EventSubSubscription, len(subscriptions))
	copy(unexamined, subscriptions)

	// First iterate through all required subscriptions to see if we have an extant
	// EventSub subscription matching the desired type, version, and condition
	for _, required := range requiredSubscriptions {
		// Flatten the typed condition into the form Twitch reports it in
		requiredType := string(required.EventType())
		encoded, err := eventsub.ConditionMap(required)
		if err != nil {
			return nil, fmt.Errorf("failed to encode condition for %s v%s: %w", requiredType, required.Version(), err)
		}
		requiredCondition := formatCondition(encoded)

		// Check through all existing subscriptions (as returned by the Twitch API) to
		// find one that matches this requirement
		foundAtIndex := -1
		for i := range unexamined {
			if unexamined[i].Type != requiredType {
				continue
			}
			if unexamined[i].Version != required.Version() {
				continue
			}
			if !maps.Equal(formatCondition(unexamined[i].Condition), requiredCondition) {
				continue
			}
			foundAtIndex = i
			break
		}

		// If we found a valid subscription, add it to our result list with its current
		// status as reported by the Twitch API; otherwise include it as missing (i.e.
		// we require such a subscription, but no such subscription exists)
		status := statusMissing
		subscriptionId := ""
		if foundAtIndex >= 0 {
			status = string(unexamined[foundAtIndex].Status)
			subscriptionId = unexamined[foundAtIndex].ID
			unexamined = append(unexamined[:foundAtIndex], unexamined[foundAtIndex+1:]...)
		}
		subscriptionStates = append(subscriptionStates, State{
			Required:       true,
			Supported:      true,
			Type:           requiredType,
			Version:        required.Version(),
			Condition:      requiredCondition,
			Status:         status,
			subscriptionId: subscriptionId,
		})
	}

	// If any other subscriptions exist that we don't actually require (and they're
	// registered to the callback URL associated with this service), list them as
	// ancillary
	for _, subscription := range unexamined {
		_, supported := eventsub.Lookup(eventsub.EventType(subscription.Type), subscription.Version)
		condition := formatCondition(subscription.Condition)
		subscriptionStates = append(subscriptionStates, State{
			Required:       false,
			Supported:      supported,
			Type:           subscription.Type,
			Version:        subscription.Version,
			Condition:      condition,
			Status:         string(subscription.Status),
			subscriptionId: subscription.ID,
		})
	}

	// Determine if our EventSub subscription status is A-OK: for full backend
	// functionality to work as intended, all required subscriptions must exist and have
	// a status of "enabled"
	ok := true
	for i := range subscriptionStates {
		if subscriptionStates[i].Required && !subscriptionStates[i].isHealthy() {
			ok = false
			break
		}
	}

	// Return a struct that represents the overall status of our service's EventSub
	// subscriptions
	return &Status{
		Ok:            ok,
		Subscriptions: subscriptionStates,
	}, nil
}
