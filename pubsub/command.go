package pubsub

import (
	"encoding/json"
)

type commandData struct {
	Topics    []string `json:"topics"`
	AuthToken string   `json:"auth_token,omitempty"`
}

type command struct {
	Type  string       `json:"type"`
	Nonce string       `json:"nonce,omitempty"`
	Data  *commandData `json:"data,omitempty"`
}

func topicStrings(topics []Topic) []string {
	strs := make([]string, 0, len(topics))
	for _, topic := range topics {
		strs = append(strs, topic.String())
	}
	return strs
}

// ListenCommand encodes a LISTEN command subscribing to the given topics. The server
// will acknowledge it with a RESPONSE frame carrying the same nonce.
func ListenCommand(topics []Topic, authToken string, nonce string) ([]byte, error) {
	return json.Marshal(command{
		Type:  "LISTEN",
		Nonce: nonce,
		Data: &commandData{
			Topics:    topicStrings(topics),
			AuthToken: authToken,
		},
	})
}

// UnlistenCommand encodes an UNLISTEN command for the given topics
func UnlistenCommand(topics []Topic, nonce string) ([]byte, error) {
	return json.Marshal(command{
		Type:  "UNLISTEN",
		Nonce: nonce,
		Data: &commandData{
			Topics: topicStrings(topics),
		},
	})
}

// PingCommand encodes a PING command: clients must send one at least once every five
// minutes, and should expect a PONG in reply within ten seconds
func PingCommand() ([]byte, error) {
	return json.Marshal(command{Type: "PING"})
}
