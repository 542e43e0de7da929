// Package events republishes EventSub notifications received by our webhook callback to
// an AMQP exchange, so that other services can react to activity on Twitch without
// holding Twitch credentials of their own.
//
// Each notification is published as a JSON-encoded Message, to a topic exchange, with
// the EventSub subscription type (e.g. "channel.follow") as its routing key: consumers
// may bind with patterns such as "channel.#" or "stream.*".
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/golden-vcr/twitchapi/eventsub"
	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
)

// DefaultExchange is the name of the exchange that carries Twitch events
const DefaultExchange = "twitch-events"

// Message is the body of each AMQP message we publish
type Message struct {
	ID             string             `json:"id"`
	Type           eventsub.EventType `json:"type"`
	Version        string             `json:"version"`
	SubscriptionID string             `json:"subscription_id"`
	Condition      map[string]string  `json:"condition"`
	Event          any                `json:"event"`
}

// NewMessage builds the Message for a notification. messageID should be the value of
// the Twitch-Eventsub-Message-Id header, which lets consumers discard redeliveries; if
// empty, a random ID is generated.
func NewMessage(messageID string, ev *eventsub.Event) (*Message, error) {
	if ev.MessageType != eventsub.MessageTypeNotification {
		return nil, fmt.Errorf("cannot publish EventSub message of type '%s'", ev.MessageType)
	}
	condition, err := eventsub.ConditionMap(ev.Condition)
	if err != nil {
		return nil, fmt.Errorf("failed to encode condition: %w", err)
	}
	if messageID == "" {
		messageID = uuid.New().String()
	}
	return &Message{
		ID:             messageID,
		Type:           ev.Subscription.Type,
		Version:        ev.Subscription.Version,
		SubscriptionID: ev.Subscription.ID,
		Condition:      condition,
		Event:          ev.Payload,
	}, nil
}

// channel is the subset of *amqp.Channel used by Producer
type channel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

// Producer publishes EventSub notifications to an AMQP exchange
type Producer struct {
	ch       channel
	exchange string
}

// NewProducer opens a channel on the given connection and declares a durable topic
// exchange with the given name
func NewProducer(conn *amqp.Connection, exchange string) (*Producer, error) {
	ch, err := conn.Channel()
	if err != nil {
		return nil, fmt.Errorf("failed to open AMQP channel: %w", err)
	}
	if err := ch.ExchangeDeclare(exchange, amqp.ExchangeTopic, true, false, false, false, nil); err != nil {
		ch.Close()
		return nil, fmt.Errorf("failed to declare exchange '%s': %w", exchange, err)
	}
	return &Producer{
		ch:       ch,
		exchange: exchange,
	}, nil
}

// Publish sends a notification to the exchange, routed by its subscription type
func (p *Producer) Publish(ctx context.Context, messageID string, ev *eventsub.Event) error {
	message, err := NewMessage(messageID, ev)
	if err != nil {
		return err
	}
	body, err := json.Marshal(message)
	if err != nil {
		return fmt.Errorf("failed to serialize message: %w", err)
	}
	return p.ch.PublishWithContext(ctx, p.exchange, string(message.Type), false, false, amqp.Publishing{
		ContentType: "application/json",
		MessageId:   message.ID,
		Type:        string(message.Type),
		Timestamp:   time.Now(),
		Body:        body,
	})
}

// Close closes the underlying AMQP channel
func (p *Producer) Close() error {
	return p.ch.Close()
}
