package main

import (
	"flag"
	"strings"

	"github.com/golden-vcr/twitchapi/eventsub"
)

var cheerUsername string
var cheerUserId string
var cheerNumBits int64
var cheerMessage string
var cheerAnonymous bool

func initCheerCommand(cmd *flag.FlagSet) {
	cmd.StringVar(&cheerUsername, "username", "BigJoeBob", "Twitch Display Name indicating who has cheered")
	cmd.StringVar(&cheerUserId, "user-id", "1337", "Twitch User ID of the user that cheered")
	cmd.Int64Var(&cheerNumBits, "num-bits", 200, "Number of bits cheered")
	cmd.StringVar(&cheerMessage, "message", "", "Text of cheer message")
	cmd.BoolVar(&cheerAnonymous, "anonymous", false, "Simulate an anonymous cheer")
}

func runCheerCommand(channelName, channelUserId string) (eventsub.EventType, any) {
	payload := eventsub.ChannelCheerV1Payload{
		IsAnonymous: cheerAnonymous,
		Broadcaster: newBroadcaster(channelName, channelUserId),
		Message:     cheerMessage,
		Bits:        cheerNumBits,
	}
	if !cheerAnonymous {
		login := strings.ToLower(cheerUsername)
		payload.UserID = &cheerUserId
		payload.UserLogin = &login
		payload.UserName = &cheerUsername
	}
	return eventsub.EventTypeChannelCheer, payload
}
