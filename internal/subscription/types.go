package subscription

import "github.com/golden-vcr/twitchapi/helix"

// Status represents the status of all registered EventSub webhook subscriptions
type Status struct {
	Ok            bool    `json:"ok"`
	Subscriptions []State `json:"subscriptions"`
}

// State represents the state of a single EventSub subscription. Supported is false for
// registered subscriptions whose type and version our callback can't decode.
type State struct {
	Required  bool              `json:"required"`
	Supported bool              `json:"supported"`
	Type      string            `json:"type"`
	Version   string            `json:"version"`
	Condition map[string]string `json:"condition"`
	Status    string            `json:"status"`

	subscriptionId string
}

// statusMissing is reported for a required subscription that has not been registered
const statusMissing = "missing"

// isHealthy reports whether a required subscription will actually deliver events
func (s *State) isHealthy() bool {
	return s.Status == string(helix.EventSubStatusEnabled)
}

// formatCondition returns a copy of an EventSub condition with empty values removed:
// Twitch reports unused optional condition fields as empty strings, while our typed
// conditions omit them entirely
func formatCondition(condition map[string]string) map[string]string {
	m := make(map[string]string, len(condition))
	for k, v := range condition {
		if v != "" {
			m[k] = v
		}
	}
	return m
}
