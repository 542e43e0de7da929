package main

import (
	"flag"
	"strings"

	"github.com/golden-vcr/twitchapi/eventsub"
)

var raidUsername string
var raidUserId string
var raidNumViewers int64

func initRaidCommand(cmd *flag.FlagSet) {
	cmd.StringVar(&raidUsername, "username", "BigJoeBob", "Twitch Display Name indicating who has raided the channel")
	cmd.StringVar(&raidUserId, "user-id", "1337", "Twitch User ID of the user that raided the channel")
	cmd.Int64Var(&raidNumViewers, "num-viewers", 99, "Number of viewers in the raid")
}

func runRaidCommand(channelName, channelUserId string) (eventsub.EventType, any) {
	return eventsub.EventTypeChannelRaid, eventsub.ChannelRaidV1Payload{
		FromBroadcasterUserID:    raidUserId,
		FromBroadcasterUserLogin: strings.ToLower(raidUsername),
		FromBroadcasterUserName:  raidUsername,
		ToBroadcasterUserID:      channelUserId,
		ToBroadcasterUserLogin:   strings.ToLower(channelName),
		ToBroadcasterUserName:    channelName,
		Viewers:                  raidNumViewers,
	}
}
