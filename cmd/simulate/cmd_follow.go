package main

import (
	"flag"
	"time"

	"github.com/golden-vcr/twitchapi/eventsub"
)

var followUsername string
var followUserId string

func initFollowCommand(cmd *flag.FlagSet) {
	cmd.StringVar(&followUsername, "username", "BigJoeBob", "Twitch Display Name indicating who has followed the channel")
	cmd.StringVar(&followUserId, "user-id", "1337", "Twitch User ID of the user that followed the channel")
}

func runFollowCommand(channelName, channelUserId string) (eventsub.EventType, any) {
	return eventsub.EventTypeChannelFollow, eventsub.ChannelFollowV2Payload{
		User:        newUser(followUsername, followUserId),
		Broadcaster: newBroadcaster(channelName, channelUserId),
		FollowedAt:  time.Now(),
	}
}
