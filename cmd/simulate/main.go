package main

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/codingconcepts/env"
	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"github.com/golden-vcr/twitchapi/eventsub"
	"github.com/golden-vcr/twitchapi/helix"
	"github.com/golden-vcr/twitchapi/internal/broadcaster"
	"github.com/golden-vcr/twitchapi/internal/subscription"
	"github.com/golden-vcr/twitchapi/internal/twitchauth"
)

type Config struct {
	TwitchChannelName   string `env:"TWITCH_CHANNEL_NAME" required:"true"`
	TwitchClientId      string `env:"TWITCH_CLIENT_ID" required:"true"`
	TwitchClientSecret  string `env:"TWITCH_CLIENT_SECRET" required:"true"`
	TwitchWebhookSecret string `env:"TWITCH_WEBHOOK_SECRET" required:"true"`
}

type MessagePayload struct {
	Subscription eventsub.SubscriptionInfo `json:"subscription"`
	Event        any                       `json:"event"`
}

type Command struct {
	name     string
	initFunc func(cmd *flag.FlagSet)
	runFunc  func(channelName, channelUserId string) (eventsub.EventType, any)
}

var commands = []Command{
	{"online", initOnlineCommand, runOnlineCommand},
	{"offline", initOfflineCommand, runOfflineCommand},
	{"hype", initHypeCommand, runHypeCommand},
	{"follow", initFollowCommand, runFollowCommand},
	{"raid", initRaidCommand, runRaidCommand},
	{"cheer", initCheerCommand, runCheerCommand},
}

func main() {
	// We only want to simulate events locally for now; events that can be recorded in
	// the production DB and affect the state of the actual, deployed webapp should only
	// come from Twitch itself
	url := "http://localhost:5004/callback"

	// Parse config from environment variables
	err := godotenv.Load()
	if err != nil && !os.IsNotExist(err) {
		log.Fatalf("error loading .env file: %v", err)
	}
	config := Config{}
	if err := env.Set(&config); err != nil {
		log.Fatalf("error loading config: %v", err)
	}

	// Get an app access token, then use it to resolve the Twitch User ID of our desired
	// channel
	authenticator, err := twitchauth.NewAuthenticator(config.TwitchClientId, config.TwitchClientSecret, nil)
	if err != nil {
		log.Fatalf("Failed to initialize Twitch authenticator: %v", err)
	}
	appCreds, err := authenticator.AppCredentials()
	if err != nil {
		log.Fatalf("Failed to get Twitch app access token: %v", err)
	}
	helixClient, err := helix.NewClient(helix.Options{})
	if err != nil {
		log.Fatalf("Failed to initialize Twitch API client: %v", err)
	}
	channelUserId, err := broadcaster.ResolveUserId(context.Background(), helixClient, appCreds, config.TwitchChannelName)
	if err != nil {
		log.Fatalf("Failed to resolve Twitch user ID for channel '%s': %v", config.TwitchChannelName, err)
	}

	// Parse the subcommand that we want to run, or print usage if no match
	var command *Command
	commandName := ""
	if len(os.Args) > 1 {
		commandName = os.Args[1]
	}
	for i := range commands {
		if commands[i].name == commandName {
			command = &commands[i]
			break
		}
	}
	if command == nil {
		commandNames := make([]string, 0, len(commands))
		for i := range commands {
			commandNames = append(commandNames, commands[i].name)
		}
		log.Fatalf("Usage: simulate [%s]", strings.Join(commandNames, "|"))
	}

	// Initialize command-line flags for the chosen subcommand
	flagSet := flag.NewFlagSet(command.name, flag.ExitOnError)
	command.initFunc(flagSet)
	if err := flagSet.Parse(os.Args[2:]); err != nil {
		log.Fatalf("Parse error: %v", err)
	}

	// Run the subcommand-specific function to build an event payload, then wrap it in
	// a message carrying a required subscription of the same type
	eventType, event := command.runFunc(config.TwitchChannelName, channelUserId)
	info, err := buildSubscriptionInfo(subscription.RequiredSubscriptions(channelUserId), eventType, url)
	if err != nil {
		log.Fatalf("%v", err)
	}
	payload := MessagePayload{
		Subscription: *info,
		Event:        event,
	}

	// Serialize our entire payload to JSON, and make sure that our own callback handler
	// would be able to decode it before we send it off
	body, err := json.Marshal(payload)
	if err != nil {
		log.Fatalf("failed to encode message payload: %v", err)
	}
	if _, err := eventsub.ParseEvent(body); err != nil {
		log.Fatalf("simulated message would not be accepted: %v", err)
	}

	// Prepare the HTTP request that will carry that message in its body
	req, err := http.NewRequest(http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		log.Fatalf("error initializing HTTP request: %v", err)
	}

	// Set Twitch-Eventsub-* headers to identify the message and cryptographically sign
	// it, using the webhook secret, in a way that helix.VerifyEventSubNotification can
	// verify
	req.Header.Set(eventsub.HeaderMessageType, string(eventsub.MessageTypeNotification))
	eventsub.SetSignatureHeaders(req.Header, config.TwitchWebhookSecret, uuid.NewString(), time.Now().Format(time.RFC3339), body)

	// Print the details of the request to stdout
	fmt.Printf("%s %s\n", req.Method, req.URL)
	for k, values := range req.Header {
		for _, v := range values {
			fmt.Printf("> %s: %s\n", k, v)
		}
	}
	pretty, err := json.MarshalIndent(payload, "", "    ")
	if err != nil {
		log.Fatalf("failed to pretty-print JSON payload: %v", err)
	}
	fmt.Printf("\n%s\n\n", pretty)

	// Send the request and verify that we get an OK response
	res, err := http.DefaultClient.Do(req)
	if err != nil {
		log.Fatalf("error sending HTTP request: %v", err)
	}
	if res.StatusCode != http.StatusOK {
		log.Fatalf("got response %d", res.StatusCode)
	}
	fmt.Printf("< %d\n", res.StatusCode)
}

// buildSubscriptionInfo finds the required subscription of the given type and describes
// it as an enabled webhook subscription delivering to the given callback URL
func buildSubscriptionInfo(required []eventsub.Subscription, eventType eventsub.EventType, callbackUrl string) (*eventsub.SubscriptionInfo, error) {
	for _, s := range required {
		if s.EventType() != eventType {
			continue
		}
		condition, err := json.Marshal(s)
		if err != nil {
			return nil, fmt.Errorf("failed to encode subscription condition: %w", err)
		}
		return &eventsub.SubscriptionInfo{
			ID:        uuid.NewString(),
			Status:    string(helix.EventSubStatusEnabled),
			Type:      eventType,
			Version:   s.Version(),
			Condition: condition,
			Transport: eventsub.Transport{
				Method:   "webhook",
				Callback: callbackUrl,
			},
			CreatedAt: time.Now().Add(-5 * time.Minute),
		}, nil
	}
	return nil, fmt.Errorf("no subscription of type %s is required by the service", eventType)
}
