// Package twitchauth obtains and inspects the OAuth tokens that accompany every Helix
// request. Token acquisition is delegated to the nicklaw5/helix client, which already
// implements Twitch's client credentials and token validation flows; the resulting
// tokens are handed to our own Helix client as helix.Credentials.
package twitchauth

import (
	"fmt"
	"net/http"
	"time"

	"github.com/golden-vcr/twitchapi"
	"github.com/golden-vcr/twitchapi/helix"
	twitch "github.com/nicklaw5/helix/v2"
)

// TokenInfo describes an access token as reported by Twitch's validation endpoint.
// UserID and Login are empty for app access tokens.
type TokenInfo struct {
	ClientID  string
	UserID    string
	Login     string
	Scopes    []twitchapi.Scope
	ExpiresIn time.Duration
}

// MissingScopesError indicates that a token is valid but was not granted the scopes
// required for the operation we want to perform
type MissingScopesError struct {
	Required twitchapi.Validator
	Missing  []twitchapi.Scope
}

func (e *MissingScopesError) Error() string {
	return fmt.Sprintf("token does not satisfy required scopes %s: missing %v", e.Required, e.Missing)
}

// Authenticator requests and validates tokens on behalf of a single Twitch application
type Authenticator struct {
	clientID string
	client   *twitch.Client
}

// NewAuthenticator initializes an Authenticator for the app with the given client ID
// and secret. If httpClient is nil, http.DefaultClient is used.
func NewAuthenticator(clientID, clientSecret string, httpClient twitch.HTTPClient) (*Authenticator, error) {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	client, err := twitch.NewClient(&twitch.Options{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		HTTPClient:   httpClient,
	})
	if err != nil {
		return nil, err
	}
	return &Authenticator{
		clientID: clientID,
		client:   client,
	}, nil
}

// AppCredentials requests a new app access token via the client credentials grant
// flow. App tokens carry no user scopes; they're required to manage EventSub webhook
// subscriptions.
func (a *Authenticator) AppCredentials() (helix.Credentials, error) {
	r, err := a.client.RequestAppAccessToken(nil)
	if err != nil {
		return helix.Credentials{}, fmt.Errorf("failed to request app access token: %w", err)
	}
	if r.StatusCode != http.StatusOK {
		return helix.Credentials{}, fmt.Errorf("got response %d from app access token request: %s", r.StatusCode, r.ErrorMessage)
	}
	if r.Data.AccessToken == "" {
		return helix.Credentials{}, fmt.Errorf("app access token response did not include an access token")
	}
	return helix.Credentials{
		ClientID:    a.clientID,
		AccessToken: r.Data.AccessToken,
	}, nil
}

// Validate asks Twitch to describe the given access token, returning an error if the
// token is invalid or has expired
func (a *Authenticator) Validate(accessToken string) (*TokenInfo, error) {
	isValid, r, err := a.client.ValidateToken(accessToken)
	if err != nil {
		return nil, fmt.Errorf("failed to validate access token: %w", err)
	}
	if !isValid {
		return nil, fmt.Errorf("access token is not valid: got response %d: %s", r.StatusCode, r.ErrorMessage)
	}
	scopes := make([]twitchapi.Scope, 0, len(r.Data.Scopes))
	for _, scope := range r.Data.Scopes {
		scopes = append(scopes, twitchapi.Scope(scope))
	}
	return &TokenInfo{
		ClientID:  r.Data.ClientID,
		UserID:    r.Data.UserID,
		Login:     r.Data.Login,
		Scopes:    scopes,
		ExpiresIn: time.Duration(r.Data.ExpiresIn) * time.Second,
	}, nil
}

// UserCredentials validates a user access token and checks that it satisfies the given
// scope requirement, returning credentials that can be used to make requests on that
// user's behalf
func (a *Authenticator) UserCredentials(accessToken string, required twitchapi.Validator) (helix.Credentials, *TokenInfo, error) {
	info, err := a.Validate(accessToken)
	if err != nil {
		return helix.Credentials{}, nil, err
	}
	if info.ClientID != a.clientID {
		return helix.Credentials{}, nil, fmt.Errorf("access token was issued to client ID '%s', not '%s'", info.ClientID, a.clientID)
	}
	if missing := required.Missing(info.Scopes); len(missing) > 0 {
		return helix.Credentials{}, nil, &MissingScopesError{Required: required, Missing: missing}
	}
	return helix.Credentials{
		ClientID:    a.clientID,
		AccessToken: accessToken,
	}, info, nil
}
