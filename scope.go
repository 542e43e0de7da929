// Package twitchapi holds declarations shared by the Helix, EventSub and PubSub packages:
// chiefly the OAuth scopes that Twitch requires before it will serve a given endpoint,
// EventSub subscription type, or PubSub topic.
package twitchapi

import (
	"strings"
)

// Scope is a single Twitch OAuth scope, e.g. "channel:read:redemptions"
type Scope string

const (
	ScopeBitsRead                     Scope = "bits:read"
	ScopeChannelModerate              Scope = "channel:moderate"
	ScopeChannelManagePolls           Scope = "channel:manage:polls"
	ScopeChannelManagePredictions     Scope = "channel:manage:predictions"
	ScopeChannelManageRedemptions     Scope = "channel:manage:redemptions"
	ScopeChannelManageVips            Scope = "channel:manage:vips"
	ScopeChannelReadHypeTrain         Scope = "channel:read:hype_train"
	ScopeChannelReadPolls             Scope = "channel:read:polls"
	ScopeChannelReadPredictions       Scope = "channel:read:predictions"
	ScopeChannelReadRedemptions       Scope = "channel:read:redemptions"
	ScopeChannelReadSubscriptions     Scope = "channel:read:subscriptions"
	ScopeChannelReadVips              Scope = "channel:read:vips"
	ScopeChatRead                     Scope = "chat:read"
	ScopeModeratorManageAnnouncements Scope = "moderator:manage:announcements"
	ScopeModeratorManageAutomod       Scope = "moderator:manage:automod"
	ScopeModeratorReadFollowers       Scope = "moderator:read:followers"
	ScopeUserReadEmail                Scope = "user:read:email"
	ScopeUserReadFollows              Scope = "user:read:follows"
	ScopeUserReadSubscriptions        Scope = "user:read:subscriptions"
)

// ParseScopes splits the space-delimited 'scope' value returned from an OAuth flow
func ParseScopes(s string) []Scope {
	fields := strings.Fields(s)
	scopes := make([]Scope, 0, len(fields))
	for _, field := range fields {
		scopes = append(scopes, Scope(field))
	}
	return scopes
}

type validatorMode int

const (
	modeAll validatorMode = iota
	modeAny
)

// Validator describes the scopes a token must carry in order to use some API surface.
// The zero value requires no scopes at all.
type Validator struct {
	mode   validatorMode
	scopes []Scope
}

// NoScopes returns a Validator that is satisfied by any token, including an app access
// token with no user scopes
func NoScopes() Validator {
	return Validator{}
}

// RequireAll returns a Validator that is satisfied only if every given scope is present
func RequireAll(scopes ...Scope) Validator {
	return Validator{mode: modeAll, scopes: scopes}
}

// RequireAny returns a Validator that is satisfied if at least one of the given scopes
// is present: Twitch commonly accepts either a read or a manage scope
func RequireAny(scopes ...Scope) Validator {
	return Validator{mode: modeAny, scopes: scopes}
}

// IsSatisfiedBy reports whether a token carrying the given scopes meets the requirement
func (v Validator) IsSatisfiedBy(granted []Scope) bool {
	return len(v.Missing(granted)) == 0
}

// Missing returns the scopes that would need to be granted in order to satisfy the
// Validator. For an any-of requirement, the first option is reported.
func (v Validator) Missing(granted []Scope) []Scope {
	if len(v.scopes) == 0 {
		return nil
	}
	has := make(map[Scope]bool, len(granted))
	for _, scope := range granted {
		has[scope] = true
	}

	if v.mode == modeAny {
		for _, scope := range v.scopes {
			if has[scope] {
				return nil
			}
		}
		return []Scope{v.scopes[0]}
	}

	var missing []Scope
	for _, scope := range v.scopes {
		if !has[scope] {
			missing = append(missing, scope)
		}
	}
	return missing
}

// Scopes returns the minimal set of scopes that satisfies the Validator, i.e. the set we
// should request when sending a user through an OAuth flow
func (v Validator) Scopes() []Scope {
	if len(v.scopes) == 0 {
		return nil
	}
	if v.mode == modeAny {
		return []Scope{v.scopes[0]}
	}
	result := make([]Scope, len(v.scopes))
	copy(result, v.scopes)
	return result
}

func (v Validator) String() string {
	if len(v.scopes) == 0 {
		return "none"
	}
	parts := make([]string, 0, len(v.scopes))
	for _, scope := range v.scopes {
		parts = append(parts, string(scope))
	}
	if v.mode == modeAny {
		return "any(" + strings.Join(parts, ", ") + ")"
	}
	return "all(" + strings.Join(parts, ", ") + ")"
}
