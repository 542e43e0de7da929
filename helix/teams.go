package helix

import (
	"net/http"
	"net/url"
	"time"

	"github.com/golden-vcr/twitchapi"
)

// TeamInformation is the set of fields common to every team payload
type TeamInformation struct {
	BackgroundImageURL *string   `json:"background_image_url"`
	Banner             *string   `json:"banner"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
	Info               string    `json:"info"`
	ThumbnailURL       *string   `json:"thumbnail_url"`
	TeamName           string    `json:"team_name"`
	TeamDisplayName    string    `json:"team_display_name"`
	ID                 string    `json:"id"`
}

// TeamUser is a member of a team
type TeamUser struct {
	UserID    string `json:"user_id"`
	UserName  string `json:"user_name"`
	UserLogin string `json:"user_login"`
}

// Team is a team along with its members, as returned by Get Teams
type Team struct {
	TeamInformation
	Users []TeamUser `json:"users"`
}

// BroadcasterTeam is a team that a broadcaster belongs to, as returned by Get Channel
// Teams
type BroadcasterTeam struct {
	BroadcasterID    string `json:"broadcaster_id"`
	BroadcasterLogin string `json:"broadcaster_login"`
	BroadcasterName  string `json:"broadcaster_name"`
	TeamInformation
}

// GetTeamsRequest gets information about a single team, by name or by ID
//
// https://dev.twitch.tv/docs/api/reference#get-teams
type GetTeamsRequest struct {
	Name string
	ID   string
}

// NewGetTeamsByNameRequest returns a request for the team with the given name
func NewGetTeamsByNameRequest(name string) GetTeamsRequest {
	return GetTeamsRequest{Name: name}
}

// NewGetTeamsRequest returns a request for the team with the given ID
func NewGetTeamsRequest(id string) GetTeamsRequest {
	return GetTeamsRequest{ID: id}
}

func (r GetTeamsRequest) Method() string             { return http.MethodGet }
func (r GetTeamsRequest) Path() string               { return "teams" }
func (r GetTeamsRequest) Scope() twitchapi.Validator { return twitchapi.NoScopes() }

func (r GetTeamsRequest) Query() url.Values {
	q := url.Values{}
	setOptional(q, "name", r.Name)
	setOptional(q, "id", r.ID)
	return q
}

func (r GetTeamsRequest) ParseResponse(raw *RawResponse) (*Response[[]Team], error) {
	return DecodeData[[]Team](raw)
}

// GetChannelTeamsRequest gets the teams that a broadcaster is a member of
//
// https://dev.twitch.tv/docs/api/reference#get-channel-teams
type GetChannelTeamsRequest struct {
	BroadcasterID string
}

// NewGetChannelTeamsRequest returns a request for broadcasterID's teams
func NewGetChannelTeamsRequest(broadcasterID string) GetChannelTeamsRequest {
	return GetChannelTeamsRequest{BroadcasterID: broadcasterID}
}

func (r GetChannelTeamsRequest) Method() string             { return http.MethodGet }
func (r GetChannelTeamsRequest) Path() string               { return "teams/channel" }
func (r GetChannelTeamsRequest) Scope() twitchapi.Validator { return twitchapi.NoScopes() }

func (r GetChannelTeamsRequest) Query() url.Values {
	q := url.Values{}
	q.Set("broadcaster_id", r.BroadcasterID)
	return q
}

func (r GetChannelTeamsRequest) ParseResponse(raw *RawResponse) (*Response[[]BroadcasterTeam], error) {
	return DecodeData[[]BroadcasterTeam](raw)
}
