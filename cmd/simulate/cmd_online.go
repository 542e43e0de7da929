package main

import (
	"flag"
	"strings"
	"time"

	"github.com/golden-vcr/twitchapi/eventsub"
	"github.com/google/uuid"
)

func initOnlineCommand(cmd *flag.FlagSet) {
}

func runOnlineCommand(channelName, channelUserId string) (eventsub.EventType, any) {
	return eventsub.EventTypeStreamOnline, eventsub.StreamOnlineV1Payload{
		ID:          uuid.NewString(),
		Broadcaster: newBroadcaster(channelName, channelUserId),
		Type:        "live",
		StartedAt:   time.Now(),
	}
}

func newBroadcaster(channelName, channelUserId string) eventsub.Broadcaster {
	return eventsub.Broadcaster{
		BroadcasterUserID:    channelUserId,
		BroadcasterUserLogin: strings.ToLower(channelName),
		BroadcasterUserName:  channelName,
	}
}

func newUser(username, userId string) eventsub.User {
	return eventsub.User{
		UserID:    userId,
		UserLogin: strings.ToLower(username),
		UserName:  username,
	}
}
