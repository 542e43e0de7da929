package main

import (
	"flag"
	"time"

	"github.com/golden-vcr/twitchapi/eventsub"
	"github.com/google/uuid"
)

var hypeTotal int64
var hypeGoal int64

func initHypeCommand(cmd *flag.FlagSet) {
	cmd.Int64Var(&hypeTotal, "total", 137, "Total points contributed to the hype train so far")
	cmd.Int64Var(&hypeGoal, "goal", 500, "Number of points required to reach the next level")
}

func runHypeCommand(channelName, channelUserId string) (eventsub.EventType, any) {
	contribution := eventsub.HypeTrainContribution{
		User:  newUser("BigJoeBob", "1337"),
		Type:  "bits",
		Total: hypeTotal,
	}
	now := time.Now()
	return eventsub.EventTypeChannelHypeTrainBegin, eventsub.ChannelHypeTrainBeginV1Payload{
		ID:               uuid.NewString(),
		Broadcaster:      newBroadcaster(channelName, channelUserId),
		Total:            hypeTotal,
		Progress:         hypeTotal,
		Goal:             hypeGoal,
		TopContributions: []eventsub.HypeTrainContribution{contribution},
		LastContribution: contribution,
		Level:            1,
		StartedAt:        now,
		ExpiresAt:        now.Add(5 * time.Minute),
	}
}
