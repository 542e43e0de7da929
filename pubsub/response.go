package pubsub

import (
	"encoding/json"
	"errors"
	"sort"
)

// ResponseType is the discriminant of a frame sent by the PubSub server
type ResponseType string

const (
	ResponseTypeResponse  ResponseType = "RESPONSE"
	ResponseTypeMessage   ResponseType = "MESSAGE"
	ResponseTypePong      ResponseType = "PONG"
	ResponseTypeReconnect ResponseType = "RECONNECT"
)

// Response is a decoded server frame. Nonce and Error are set for RESPONSE frames,
// which acknowledge a LISTEN or UNLISTEN command; Message is set for MESSAGE frames.
type Response struct {
	Type    ResponseType
	Nonce   string
	Error   string
	Message *Message
}

// IsSuccessful reports whether a RESPONSE frame acknowledges a successful command
func (r *Response) IsSuccessful() bool {
	return r.Type == ResponseTypeResponse && r.Error == ""
}

// Message is a message published to a topic. Reply holds the decoded message body,
// whose type is determined by the topic: e.g. a ChannelBitsEventsV2Reply for a
// ChannelBitsEventsV2 topic.
type Message struct {
	Topic Topic
	Reply any
	Raw   string
}

// MessageReply returns the reply carried by a MESSAGE frame as type R, if it has that
// type
func MessageReply[R any](r *Response) (R, bool) {
	if r == nil || r.Message == nil {
		var zero R
		return zero, false
	}
	reply, ok := r.Message.Reply.(R)
	return reply, ok
}

// ParseResponse decodes a frame received from the PubSub server. MESSAGE frames embed
// their payload as a JSON-encoded string, so decoding one takes two passes: the second
// pass decodes that string into the reply type for the frame's topic.
func ParseResponse(data []byte) (*Response, error) {
	var frame struct {
		Type  ResponseType `json:"type"`
		Nonce string       `json:"nonce"`
		Error string       `json:"error"`
		Data  *struct {
			Topic   string `json:"topic"`
			Message string `json:"message"`
		} `json:"data"`
	}
	if err := json.Unmarshal(data, &frame); err != nil {
		return nil, &DecodeError{Body: string(data), Err: err}
	}

	switch frame.Type {
	case ResponseTypeResponse:
		return &Response{Type: frame.Type, Nonce: frame.Nonce, Error: frame.Error}, nil
	case ResponseTypePong, ResponseTypeReconnect:
		return &Response{Type: frame.Type}, nil
	case ResponseTypeMessage:
		if frame.Data == nil {
			return nil, &DecodeError{Body: string(data), Err: errMissingData}
		}
		topic, err := ParseTopic(frame.Data.Topic)
		if err != nil {
			return nil, err
		}
		reply, err := registry[topic.Name()].parseReply([]byte(frame.Data.Message))
		if err != nil {
			return nil, &DecodeError{Topic: frame.Data.Topic, Body: frame.Data.Message, Err: err}
		}
		return &Response{
			Type: frame.Type,
			Message: &Message{
				Topic: topic,
				Reply: reply,
				Raw:   frame.Data.Message,
			},
		}, nil
	}
	return nil, &UnknownResponseTypeError{Type: string(frame.Type)}
}

var errMissingData = errors.New("MESSAGE frame has no data")

// handler knows how to build a topic from its parameters and decode its messages
type handler struct {
	numParams  int
	build      func(ids []uint32) Topic
	parseReply func(raw []byte) (any, error)
}

func decodeAs[R any](raw []byte) (any, error) {
	var reply R
	if err := json.Unmarshal(raw, &reply); err != nil {
		return nil, err
	}
	return reply, nil
}

// registry is the closed set of supported topics, keyed by topic name
var registry = map[string]handler{
	CommunityPointsChannelV1{}.Name(): {
		numParams:  1,
		build:      func(ids []uint32) Topic { return CommunityPointsChannelV1{ChannelID: ids[0]} },
		parseReply: decodeAs[ChannelPointsReply],
	},
	CommunityPointsUserV1{}.Name(): {
		numParams:  1,
		build:      func(ids []uint32) Topic { return CommunityPointsUserV1{ChannelID: ids[0]} },
		parseReply: decodeAs[CommunityPointsUserReply],
	},
	ChannelPointsChannelV1{}.Name(): {
		numParams:  1,
		build:      func(ids []uint32) Topic { return ChannelPointsChannelV1{ChannelID: ids[0]} },
		parseReply: decodeAs[ChannelPointsReply],
	},
	ChannelBitsEventsV2{}.Name(): {
		numParams:  1,
		build:      func(ids []uint32) Topic { return ChannelBitsEventsV2{ChannelID: ids[0]} },
		parseReply: decodeAs[ChannelBitsEventsV2Reply],
	},
	ChannelBitsBadgeUnlocks{}.Name(): {
		numParams:  1,
		build:      func(ids []uint32) Topic { return ChannelBitsBadgeUnlocks{ChannelID: ids[0]} },
		parseReply: decodeAs[ChannelBitsBadgeUnlocksReply],
	},
	ChannelSubscribeEventsV1{}.Name(): {
		numParams:  1,
		build:      func(ids []uint32) Topic { return ChannelSubscribeEventsV1{ChannelID: ids[0]} },
		parseReply: decodeAs[ChannelSubscribeEventsV1Reply],
	},
	ChatModeratorActions{}.Name(): {
		numParams:  2,
		build:      func(ids []uint32) Topic { return ChatModeratorActions{UserID: ids[0], ChannelID: ids[1]} },
		parseReply: decodeAs[ChatModeratorActionsReply],
	},
	AutoModQueue{}.Name(): {
		numParams:  2,
		build:      func(ids []uint32) Topic { return AutoModQueue{ModeratorID: ids[0], ChannelID: ids[1]} },
		parseReply: decodeAs[AutoModQueueReply],
	},
	UserModerationNotifications{}.Name(): {
		numParams:  2,
		build:      func(ids []uint32) Topic { return UserModerationNotifications{CurrentUserID: ids[0], ChannelID: ids[1]} },
		parseReply: decodeAs[UserModerationNotificationsReply],
	},
	PredictionsChannelV1{}.Name(): {
		numParams:  1,
		build:      func(ids []uint32) Topic { return PredictionsChannelV1{ChannelID: ids[0]} },
		parseReply: decodeAs[PredictionsChannelV1Reply],
	},
	PredictionsUserV1{}.Name(): {
		numParams:  1,
		build:      func(ids []uint32) Topic { return PredictionsUserV1{ChannelID: ids[0]} },
		parseReply: decodeAs[PredictionsUserV1Reply],
	},
}

// KnownTopics lists the names of all supported topics, sorted
func KnownTopics() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
