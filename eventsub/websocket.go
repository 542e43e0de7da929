package eventsub

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/gorilla/websocket"
)

// DefaultWebsocketURL is the address of Twitch's EventSub websocket server
const DefaultWebsocketURL = "wss://eventsub.wss.twitch.tv/ws"

// WebsocketMetadata accompanies every message received over an EventSub websocket
type WebsocketMetadata struct {
	MessageID           string      `json:"message_id"`
	MessageType         MessageType `json:"message_type"`
	MessageTimestamp    time.Time   `json:"message_timestamp"`
	SubscriptionType    EventType   `json:"subscription_type,omitempty"`
	SubscriptionVersion string      `json:"subscription_version,omitempty"`
}

// Session describes a websocket session. ReconnectURL is only set in a reconnect
// message, and KeepaliveTimeoutSeconds only in a welcome message.
type Session struct {
	ID                      string     `json:"id"`
	Status                  string     `json:"status"`
	ConnectedAt             time.Time  `json:"connected_at"`
	KeepaliveTimeoutSeconds *int64     `json:"keepalive_timeout_seconds"`
	ReconnectURL            *string    `json:"reconnect_url"`
	RecoveryURL             *string    `json:"recovery_url,omitempty"`
	DisconnectedAt          *time.Time `json:"disconnected_at,omitempty"`
}

// WebsocketMessage is a decoded websocket frame. Session is set for welcome and
// reconnect messages. Event is set for notifications and revocations.
type WebsocketMessage struct {
	Metadata WebsocketMetadata
	Session  *Session
	Event    *Event
}

// ParseWebsocketMessage decodes a single text frame received from an EventSub websocket
func ParseWebsocketMessage(data []byte) (*WebsocketMessage, error) {
	var frame struct {
		Metadata WebsocketMetadata `json:"metadata"`
		Payload  struct {
			Session      *Session          `json:"session"`
			Subscription *SubscriptionInfo `json:"subscription"`
			Event        json.RawMessage   `json:"event"`
		} `json:"payload"`
	}
	if err := json.Unmarshal(data, &frame); err != nil {
		return nil, &DecodeError{Part: PartEnvelope, Err: err}
	}

	message := &WebsocketMessage{Metadata: frame.Metadata}
	switch frame.Metadata.MessageType {
	case MessageTypeSessionKeepalive:
		return message, nil
	case MessageTypeSessionWelcome, MessageTypeSessionReconnect:
		if frame.Payload.Session == nil {
			return nil, &DecodeError{Part: PartEnvelope, Err: fmt.Errorf("%s message has no session", frame.Metadata.MessageType)}
		}
		message.Session = frame.Payload.Session
		return message, nil
	case MessageTypeNotification, MessageTypeRevocation:
		if frame.Payload.Subscription == nil {
			return nil, &DecodeError{Part: PartEnvelope, Err: fmt.Errorf("%s message has no subscription", frame.Metadata.MessageType)}
		}
		event, err := decodeEnvelope(frame.Metadata.MessageType, &envelope{
			Subscription: *frame.Payload.Subscription,
			Event:        frame.Payload.Event,
		})
		if err != nil {
			return nil, err
		}
		message.Event = event
		return message, nil
	}
	return nil, &DecodeError{Part: PartEnvelope, Err: fmt.Errorf("unsupported websocket message type %q", frame.Metadata.MessageType)}
}

// keepaliveGrace is added to the keepalive timeout announced by the server before a
// silent connection is considered dead
const keepaliveGrace = 5 * time.Second

// WebsocketConn is a client connection to an EventSub websocket server. It spawns no
// goroutines: the caller drives the connection by calling Next in a loop, and must not
// call Next concurrently.
type WebsocketConn struct {
	conn      *websocket.Conn
	keepalive time.Duration
}

// DialWebsocket connects to an EventSub websocket server. The first message received
// will be a session welcome, whose session ID must be used to create subscriptions via
// the Helix API.
func DialWebsocket(ctx context.Context, url string) (*WebsocketConn, error) {
	conn, _, err := websocket.DefaultDialer.DialContext(ctx, url, nil)
	if err != nil {
		return nil, fmt.Errorf("eventsub websocket connect: %w", err)
	}
	return &WebsocketConn{conn: conn}, nil
}

// Next blocks until the next message is received. Once the server has announced a
// keepalive timeout, Next fails if no message arrives within that timeout.
func (c *WebsocketConn) Next() (*WebsocketMessage, error) {
	for {
		if c.keepalive > 0 {
			if err := c.conn.SetReadDeadline(time.Now().Add(c.keepalive + keepaliveGrace)); err != nil {
				return nil, err
			}
		}
		messageType, data, err := c.conn.ReadMessage()
		if err != nil {
			return nil, err
		}
		if messageType != websocket.TextMessage {
			continue
		}

		message, err := ParseWebsocketMessage(data)
		if err != nil {
			return nil, err
		}
		if message.Session != nil && message.Session.KeepaliveTimeoutSeconds != nil {
			c.keepalive = time.Duration(*message.Session.KeepaliveTimeoutSeconds) * time.Second
		}
		return message, nil
	}
}

// Close sends a close frame and closes the underlying connection. A failure to send the
// close frame is ignored, since the connection is closed regardless.
func (c *WebsocketConn) Close() error {
	c.conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
	return c.conn.Close()
}
