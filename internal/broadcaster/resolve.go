package broadcaster

import (
	"context"
	"fmt"

	"github.com/golden-vcr/twitchapi/helix"
)

// ResolveUserId looks up the Twitch user ID of the channel with the given login name
func ResolveUserId(ctx context.Context, c *helix.Client, creds helix.Credentials, channelName string) (string, error) {
	r, err := helix.Send[[]helix.User](ctx, c, helix.NewGetUsersByLoginRequest(channelName), creds)
	if err != nil {
		return "", err
	}
	if len(r.Data) != 1 {
		return "", fmt.Errorf("expected exactly one user with login '%s'; got %d", channelName, len(r.Data))
	}
	return r.Data[0].ID, nil
}
