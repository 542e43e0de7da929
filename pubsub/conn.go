package pubsub

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

// DefaultURL is the address of Twitch's PubSub server
const DefaultURL = "wss://pubsub-edge.twitch.tv"

// Conn is a client connection to a PubSub server. Commands may be sent from any
// goroutine, but Next must only be called from one goroutine at a time.
type Conn struct {
	conn *websocket.Conn
	mu   sync.Mutex
}

// Dial connects to a PubSub server
func Dial(ctx context.Context, url string) (*Conn, error) {
	conn, _, err := websocket.DefaultDialer.DialContext(ctx, url, nil)
	if err != nil {
		return nil, fmt.Errorf("pubsub connect: %w", err)
	}
	return &Conn{conn: conn}, nil
}

func (c *Conn) write(data []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conn.WriteMessage(websocket.TextMessage, data)
}

// Listen subscribes to the given topics, returning the nonce that the server's
// acknowledgement will carry
func (c *Conn) Listen(topics []Topic, authToken string) (string, error) {
	nonce := uuid.New().String()
	data, err := ListenCommand(topics, authToken, nonce)
	if err != nil {
		return "", err
	}
	if err := c.write(data); err != nil {
		return "", fmt.Errorf("pubsub listen: %w", err)
	}
	return nonce, nil
}

// Unlisten unsubscribes from the given topics, returning the nonce that the server's
// acknowledgement will carry
func (c *Conn) Unlisten(topics []Topic) (string, error) {
	nonce := uuid.New().String()
	data, err := UnlistenCommand(topics, nonce)
	if err != nil {
		return "", err
	}
	if err := c.write(data); err != nil {
		return "", fmt.Errorf("pubsub unlisten: %w", err)
	}
	return nonce, nil
}

// Ping sends a PING command
func (c *Conn) Ping() error {
	data, err := PingCommand()
	if err != nil {
		return err
	}
	if err := c.write(data); err != nil {
		return fmt.Errorf("pubsub ping: %w", err)
	}
	return nil
}

// Next blocks until the next frame is received from the server. A frame that can't be
// decoded yields a *DecodeError, *UnknownTopicError, *InvalidTopicError or
// *UnknownResponseTypeError, and the connection remains usable; any other error means
// the connection has failed.
func (c *Conn) Next() (*Response, error) {
	for {
		messageType, data, err := c.conn.ReadMessage()
		if err != nil {
			return nil, err
		}
		if messageType != websocket.TextMessage {
			continue
		}
		return ParseResponse(data)
	}
}

// Close sends a close frame and closes the underlying connection. A failure to send the
// close frame is ignored, since the connection is closed regardless.
func (c *Conn) Close() error {
	c.mu.Lock()
	c.conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
	c.mu.Unlock()
	return c.conn.Close()
}
