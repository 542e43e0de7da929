package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/codingconcepts/env"
	"github.com/joho/godotenv"
	"golang.org/x/exp/slog"

	"github.com/golden-vcr/server-common/entry"
	"github.com/golden-vcr/twitchapi/internal/twitchauth"
	"github.com/golden-vcr/twitchapi/pubsub"
)

// Twitch disconnects clients that don't send a PING at least once every 5 minutes
const pingInterval = 4 * time.Minute

// After a RECONNECT or a dropped connection, wait this long before dialing again
const reconnectDelay = 5 * time.Second

type Config struct {
	TwitchClientId        string `env:"TWITCH_CLIENT_ID" required:"true"`
	TwitchClientSecret    string `env:"TWITCH_CLIENT_SECRET" required:"true"`
	TwitchUserAccessToken string `env:"TWITCH_USER_ACCESS_TOKEN" required:"true"`
	TwitchPubSubURL       string `env:"TWITCH_PUBSUB_URL" default:"wss://pubsub-edge.twitch.tv"`
}

var errReconnect = errors.New("server requested reconnect")

func main() {
	app, ctx := entry.NewApplication("pubsub-listen")
	defer app.Stop()

	// Parse config from environment variables
	err := godotenv.Load()
	if err != nil && !os.IsNotExist(err) {
		app.Fail("Failed to load .env file", err)
	}
	config := Config{}
	if err := env.Set(&config); err != nil {
		app.Fail("Failed to load config", err)
	}

	// Each positional argument names a topic, e.g. "channel-bits-events-v2.1234"
	flag.Parse()
	if flag.NArg() == 0 {
		app.Fail("Usage: pubsub-listen <topic> [topic...]", fmt.Errorf("no topics given; known topics are %v", pubsub.KnownTopics()))
	}
	topics := make([]pubsub.Topic, 0, flag.NArg())
	for _, arg := range flag.Args() {
		topic, err := pubsub.ParseTopic(arg)
		if err != nil {
			app.Fail("Invalid topic", err)
		}
		topics = append(topics, topic)
	}

	// Make sure our user access token is valid and carries every scope that our
	// chosen topics require, so we don't just get ERR_BADAUTH from the server
	authenticator, err := twitchauth.NewAuthenticator(config.TwitchClientId, config.TwitchClientSecret, nil)
	if err != nil {
		app.Fail("Failed to initialize Twitch authenticator", err)
	}
	info, err := authenticator.Validate(config.TwitchUserAccessToken)
	if err != nil {
		app.Fail("Failed to validate user access token", err)
	}
	for _, topic := range topics {
		if missing := topic.Scope().Missing(info.Scopes); len(missing) > 0 {
			app.Fail(fmt.Sprintf("Access token can not listen to topic '%s'", topic), &twitchauth.MissingScopesError{Required: topic.Scope(), Missing: missing})
		}
	}
	app.Log().Info("Validated user access token", "login", info.Login, "expiresIn", info.ExpiresIn)

	// Listen until we're interrupted, connecting again whenever the server asks us to
	// or the connection drops
	for {
		err := listen(ctx, app.Log(), config.TwitchPubSubURL, topics, config.TwitchUserAccessToken)
		if ctx.Err() != nil {
			return
		}
		app.Log().Warn("PubSub connection closed; reconnecting", "error", err)
		select {
		case <-ctx.Done():
			return
		case <-time.After(reconnectDelay):
		}
	}
}

// listen connects to the PubSub server, subscribes to the given topics, and logs each
// response until the connection is closed
func listen(ctx context.Context, logger *slog.Logger, url string, topics []pubsub.Topic, authToken string) error {
	conn, err := pubsub.Dial(ctx, url)
	if err != nil {
		return err
	}
	defer conn.Close()

	nonce, err := conn.Listen(topics, authToken)
	if err != nil {
		return err
	}

	// Ping periodically to keep the connection alive, and close the connection when our
	// context is canceled so that Next will return
	done := make(chan struct{})
	defer close(done)
	go func() {
		ticker := time.NewTicker(pingInterval)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ctx.Done():
				conn.Close()
				return
			case <-ticker.C:
				if err := conn.Ping(); err != nil {
					logger.Error("Failed to send PING", "error", err)
				}
			}
		}
	}()

	for {
		res, err := conn.Next()
		if err != nil {
			if isFrameError(err) {
				logger.Warn("Ignoring frame that could not be decoded", "error", err)
				continue
			}
			return err
		}
		if err := handleResponse(logger, nonce, res); err != nil {
			return err
		}
	}
}

// isFrameError reports whether err concerns a single frame that could not be decoded,
// as opposed to a failure of the connection itself
func isFrameError(err error) bool {
	var decodeErr *pubsub.DecodeError
	var unknownTopicErr *pubsub.UnknownTopicError
	var invalidTopicErr *pubsub.InvalidTopicError
	var unknownTypeErr *pubsub.UnknownResponseTypeError
	return errors.As(err, &decodeErr) ||
		errors.As(err, &unknownTopicErr) ||
		errors.As(err, &invalidTopicErr) ||
		errors.As(err, &unknownTypeErr)
}

// handleResponse logs a single response from the server, returning an error if the
// connection should be abandoned
func handleResponse(logger *slog.Logger, listenNonce string, res *pubsub.Response) error {
	switch res.Type {
	case pubsub.ResponseTypeResponse:
		if res.Nonce != listenNonce {
			logger.Warn("Got RESPONSE with unexpected nonce", "nonce", res.Nonce)
			return nil
		}
		if !res.IsSuccessful() {
			return fmt.Errorf("LISTEN failed: %s", res.Error)
		}
		logger.Info("Listening for messages")
	case pubsub.ResponseTypePong:
		logger.Debug("Got PONG")
	case pubsub.ResponseTypeReconnect:
		return errReconnect
	case pubsub.ResponseTypeMessage:
		logger.Info("Got message",
			"topic", res.Message.Topic.String(),
			"reply", res.Message.Reply,
		)
	}
	return nil
}
