package main

import (
	"flag"

	"github.com/golden-vcr/twitchapi/eventsub"
)

func initOfflineCommand(cmd *flag.FlagSet) {
}

func runOfflineCommand(channelName, channelUserId string) (eventsub.EventType, any) {
	return eventsub.EventTypeStreamOffline, eventsub.StreamOfflineV1Payload{
		Broadcaster: newBroadcaster(channelName, channelUserId),
	}
}
