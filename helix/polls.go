package helix

import (
	"net/http"
	"net/url"
	"time"

	"github.com/golden-vcr/twitchapi"
)

// PollStatus is the lifecycle state of a poll
type PollStatus string

const (
	PollStatusActive     PollStatus = "ACTIVE"
	PollStatusCompleted  PollStatus = "COMPLETED"
	PollStatusTerminated PollStatus = "TERMINATED"
	PollStatusArchived   PollStatus = "ARCHIVED"
	PollStatusModerated  PollStatus = "MODERATED"
	PollStatusInvalid    PollStatus = "INVALID"
)

// PollChoice is one of the options viewers may vote for, along with its tally
type PollChoice struct {
	ID                 string `json:"id"`
	Title              string `json:"title"`
	Votes              int64  `json:"votes"`
	ChannelPointsVotes int64  `json:"channel_points_votes"`
	// Deprecated: Twitch no longer supports voting with bits; this is always 0.
	BitsVotes int64 `json:"bits_votes"`
}

// Poll is a poll in the broadcaster's channel
type Poll struct {
	ID                         string       `json:"id"`
	BroadcasterID              string       `json:"broadcaster_id"`
	BroadcasterName            string       `json:"broadcaster_name"`
	BroadcasterLogin           string       `json:"broadcaster_login"`
	Title                      string       `json:"title"`
	Choices                    []PollChoice `json:"choices"`
	ChannelPointsVotingEnabled bool         `json:"channel_points_voting_enabled"`
	ChannelPointsPerVote       int64        `json:"channel_points_per_vote"`
	Status                     PollStatus   `json:"status"`
	Duration                   int64        `json:"duration"`
	StartedAt                  time.Time    `json:"started_at"`
	EndedAt                    *time.Time   `json:"ended_at"`
	// Deprecated: Twitch no longer supports voting with bits.
	BitsVotingEnabled bool `json:"bits_voting_enabled"`
	// Deprecated: Twitch no longer supports voting with bits.
	BitsPerVote int64 `json:"bits_per_vote"`
}

// NewPollChoice is a choice to be offered in a new poll
type NewPollChoice struct {
	Title string `json:"title"`
}

// CreatePollBody is the JSON body of a Create Poll request
type CreatePollBody struct {
	BroadcasterID              string          `json:"broadcaster_id"`
	Title                      string          `json:"title"`
	Choices                    []NewPollChoice `json:"choices"`
	ChannelPointsVotingEnabled *bool           `json:"channel_points_voting_enabled,omitempty"`
	ChannelPointsPerVote       *int64          `json:"channel_points_per_vote,omitempty"`
	Duration                   int64           `json:"duration"`
}

// NewCreatePollBody returns a body for a poll with the given choices, which runs for
// duration seconds (15 to 1800)
func NewCreatePollBody(broadcasterID, title string, duration int64, choices ...string) CreatePollBody {
	body := CreatePollBody{
		BroadcasterID: broadcasterID,
		Title:         title,
		Choices:       make([]NewPollChoice, 0, len(choices)),
		Duration:      duration,
	}
	for _, choice := range choices {
		body.Choices = append(body.Choices, NewPollChoice{Title: choice})
	}
	return body
}

// WithChannelPointsVoting allows viewers to cast additional votes by spending the given
// number of channel points per vote
func (b CreatePollBody) WithChannelPointsVoting(pointsPerVote int64) CreatePollBody {
	enabled := true
	b.ChannelPointsVotingEnabled = &enabled
	b.ChannelPointsPerVote = &pointsPerVote
	return b
}

// CreatePollRequest creates a poll in the broadcaster's channel. All parameters are sent
// in the body.
//
// https://dev.twitch.tv/docs/api/reference#create-poll
type CreatePollRequest struct{}

// NewCreatePollRequest returns a Create Poll request
func NewCreatePollRequest() CreatePollRequest {
	return CreatePollRequest{}
}

func (r CreatePollRequest) Method() string    { return http.MethodPost }
func (r CreatePollRequest) Path() string      { return "polls" }
func (r CreatePollRequest) Query() url.Values { return url.Values{} }

func (r CreatePollRequest) Scope() twitchapi.Validator {
	return twitchapi.RequireAll(twitchapi.ScopeChannelManagePolls)
}

func (r CreatePollRequest) EncodeBody(body CreatePollBody) ([]byte, error) {
	return encodeJSON(body)
}

func (r CreatePollRequest) ParseResponse(raw *RawResponse) (*Response[Poll], error) {
	return DecodeFirst[Poll](raw)
}
