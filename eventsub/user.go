package eventsub

import (
	"github.com/golden-vcr/twitchapi"
)

// UserUpdateV1 fires when a user updates their account details. The Email field of the
// payload is only populated if the app holds the user:read:email scope for that user.
type UserUpdateV1 struct {
	UserID string `json:"user_id"`
}

func NewUserUpdateV1(userID string) UserUpdateV1 {
	return UserUpdateV1{UserID: userID}
}

func (UserUpdateV1) EventType() EventType       { return EventTypeUserUpdate }
func (UserUpdateV1) Version() string            { return "1" }
func (UserUpdateV1) Scope() twitchapi.Validator { return twitchapi.NoScopes() }

type UserUpdateV1Payload struct {
	User
	Email         string `json:"email,omitempty"`
	EmailVerified bool   `json:"email_verified"`
	Description   string `json:"description"`
}

// UserAuthorizationGrantV1 fires when a user grants authorization to the app with the
// given client ID
type UserAuthorizationGrantV1 struct {
	ClientID string `json:"client_id"`
}

func NewUserAuthorizationGrantV1(clientID string) UserAuthorizationGrantV1 {
	return UserAuthorizationGrantV1{ClientID: clientID}
}

func (UserAuthorizationGrantV1) EventType() EventType       { return EventTypeUserAuthorizationGrant }
func (UserAuthorizationGrantV1) Version() string            { return "1" }
func (UserAuthorizationGrantV1) Scope() twitchapi.Validator { return twitchapi.NoScopes() }

type UserAuthorizationGrantV1Payload struct {
	ClientID string `json:"client_id"`
	User
}

// UserAuthorizationRevokeV1 fires when a user revokes the app's authorization
type UserAuthorizationRevokeV1 struct {
	ClientID string `json:"client_id"`
}

func NewUserAuthorizationRevokeV1(clientID string) UserAuthorizationRevokeV1 {
	return UserAuthorizationRevokeV1{ClientID: clientID}
}

func (UserAuthorizationRevokeV1) EventType() EventType       { return EventTypeUserAuthorizationRevoke }
func (UserAuthorizationRevokeV1) Version() string            { return "1" }
func (UserAuthorizationRevokeV1) Scope() twitchapi.Validator { return twitchapi.NoScopes() }

// UserAuthorizationRevokeV1Payload identifies the user who revoked access: login and
// display name are null if the user no longer exists
type UserAuthorizationRevokeV1Payload struct {
	ClientID  string  `json:"client_id"`
	UserID    string  `json:"user_id"`
	UserLogin *string `json:"user_login"`
	UserName  *string `json:"user_name"`
}
