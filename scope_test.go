package twitchapi

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_ParseScopes(t *testing.T) {
	assert.Equal(t, []Scope{ScopeBitsRead, ScopeModeratorReadFollowers}, ParseScopes("bits:read  moderator:read:followers"))
	assert.Equal(t, []Scope{}, ParseScopes(""))
}

func Test_Validator(t *testing.T) {
	tests := []struct {
		name        string
		v           Validator
		granted     []Scope
		wantOk      bool
		wantMissing []Scope
		wantScopes  []Scope
		wantString  string
	}{
		{
			"no scopes is always satisfied",
			NoScopes(),
			nil,
			true,
			nil,
			nil,
			"none",
		},
		{
			"all-of requires every scope",
			RequireAll(ScopeBitsRead, ScopeChannelReadSubscriptions),
			[]Scope{ScopeBitsRead},
			false,
			[]Scope{ScopeChannelReadSubscriptions},
			[]Scope{ScopeBitsRead, ScopeChannelReadSubscriptions},
			"all(bits:read, channel:read:subscriptions)",
		},
		{
			"all-of is satisfied by a superset",
			RequireAll(ScopeBitsRead),
			[]Scope{ScopeUserReadEmail, ScopeBitsRead},
			true,
			nil,
			[]Scope{ScopeBitsRead},
			"all(bits:read)",
		},
		{
			"any-of accepts the second option",
			RequireAny(ScopeChannelReadVips, ScopeChannelManageVips),
			[]Scope{ScopeChannelManageVips},
			true,
			nil,
			[]Scope{ScopeChannelReadVips},
			"any(channel:read:vips, channel:manage:vips)",
		},
		{
			"any-of reports the first option as missing",
			RequireAny(ScopeChannelReadVips, ScopeChannelManageVips),
			nil,
			false,
			[]Scope{ScopeChannelReadVips},
			[]Scope{ScopeChannelReadVips},
			"any(channel:read:vips, channel:manage:vips)",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantOk, tt.v.IsSatisfiedBy(tt.granted))
			assert.Equal(t, tt.wantMissing, tt.v.Missing(tt.granted))
			assert.Equal(t, tt.wantScopes, tt.v.Scopes())
			assert.Equal(t, tt.wantString, tt.v.String())
		})
	}
}
