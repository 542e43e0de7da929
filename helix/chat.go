package helix

import (
	"fmt"
	"net/http"
	"net/url"

	"github.com/golden-vcr/twitchapi"
)

// AnnouncementColor is the accent color used to highlight a chat announcement
type AnnouncementColor string

const (
	AnnouncementColorBlue    AnnouncementColor = "blue"
	AnnouncementColorGreen   AnnouncementColor = "green"
	AnnouncementColorOrange  AnnouncementColor = "orange"
	AnnouncementColorPurple  AnnouncementColor = "purple"
	AnnouncementColorPrimary AnnouncementColor = "primary"
)

// ParseAnnouncementColor accepts only the colors that Twitch recognizes
func ParseAnnouncementColor(s string) (AnnouncementColor, error) {
	switch c := AnnouncementColor(s); c {
	case AnnouncementColorBlue, AnnouncementColorGreen, AnnouncementColorOrange, AnnouncementColorPurple, AnnouncementColorPrimary:
		return c, nil
	}
	return "", fmt.Errorf("invalid announcement color '%s'", s)
}

// SendChatAnnouncementResult is the only successful outcome of Send Chat Announcement,
// which responds with 204 No Content
type SendChatAnnouncementResult string

const AnnouncementSuccess SendChatAnnouncementResult = "success"

// SendChatAnnouncementBody is the JSON body of a Send Chat Announcement request
type SendChatAnnouncementBody struct {
	Message string            `json:"message"`
	Color   AnnouncementColor `json:"color"`
}

// NewSendChatAnnouncementBody validates color and returns the request body
func NewSendChatAnnouncementBody(message string, color string) (SendChatAnnouncementBody, error) {
	c, err := ParseAnnouncementColor(color)
	if err != nil {
		return SendChatAnnouncementBody{}, err
	}
	return SendChatAnnouncementBody{Message: message, Color: c}, nil
}

// SendChatAnnouncementRequest sends an announcement to the broadcaster's chat room, on
// behalf of a moderator (who may be the broadcaster)
//
// https://dev.twitch.tv/docs/api/reference#send-chat-announcement
type SendChatAnnouncementRequest struct {
	BroadcasterID string
	ModeratorID   string
}

// NewSendChatAnnouncementRequest returns a request to announce in broadcasterID's chat;
// moderatorID must match the user that owns the access token
func NewSendChatAnnouncementRequest(broadcasterID, moderatorID string) SendChatAnnouncementRequest {
	return SendChatAnnouncementRequest{BroadcasterID: broadcasterID, ModeratorID: moderatorID}
}

func (r SendChatAnnouncementRequest) Method() string { return http.MethodPost }
func (r SendChatAnnouncementRequest) Path() string   { return "chat/announcements" }

func (r SendChatAnnouncementRequest) Scope() twitchapi.Validator {
	return twitchapi.RequireAll(twitchapi.ScopeModeratorManageAnnouncements)
}

func (r SendChatAnnouncementRequest) Query() url.Values {
	q := url.Values{}
	q.Set("broadcaster_id", r.BroadcasterID)
	q.Set("moderator_id", r.ModeratorID)
	return q
}

func (r SendChatAnnouncementRequest) EncodeBody(body SendChatAnnouncementBody) ([]byte, error) {
	return encodeJSON(body)
}

func (r SendChatAnnouncementRequest) ParseResponse(raw *RawResponse) (*Response[SendChatAnnouncementResult], error) {
	return DecodeNoContent(raw, AnnouncementSuccess)
}
