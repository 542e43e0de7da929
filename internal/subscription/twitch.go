package subscription

import (
	"context"

	"github.com/golden-vcr/twitchapi/helix"
)

// TwitchClient represents the subset of Twitch API client functionality used to view
// and manage the state of EventSub subscriptions
type TwitchClient interface {
	GetEventSubSubscriptions(ctx context.Context, userId string) ([]helix.EventSubSubscription, error)
	CreateEventSubSubscription(ctx context.Context, body helix.CreateEventSubSubscriptionBody) (*helix.EventSubSubscription, error)
	RemoveEventSubSubscription(ctx context.Context, id string) error
}

// helixTwitchClient implements TwitchClient using the Helix client, authenticated with
// an app access token
type helixTwitchClient struct {
	c     *helix.Client
	creds helix.Credentials
}

func (h *helixTwitchClient) GetEventSubSubscriptions(ctx context.Context, userId string) ([]helix.EventSubSubscription, error) {
	return helix.Collect[helix.EventSubSubscription](ctx, h.c, helix.NewGetEventSubSubscriptionsRequest().ForUser(userId), h.creds)
}

func (h *helixTwitchClient) CreateEventSubSubscription(ctx context.Context, body helix.CreateEventSubSubscriptionBody) (*helix.EventSubSubscription, error) {
	r, err := helix.SendWithBody[helix.CreateEventSubSubscriptionBody, helix.EventSubSubscription](ctx, h.c, helix.NewCreateEventSubSubscriptionRequest(), body, h.creds)
	if err != nil {
		return nil, err
	}
	return &r.Data, nil
}

func (h *helixTwitchClient) RemoveEventSubSubscription(ctx context.Context, id string) error {
	_, err := helix.Send[helix.EventSubDeleted](ctx, h.c, helix.NewDeleteEventSubSubscriptionRequest(id), h.creds)
	return err
}
