package eventsub

import (
	"encoding/json"
	"sort"
)

// Key identifies a single EventSub subscription type at a single version. Twitch
// versions each type independently, and a new version may change both the condition
// and the payload, so the pair is what determines how a message must be decoded.
type Key struct {
	Type    EventType
	Version string
}

func (k Key) String() string {
	return string(k.Type) + " v" + k.Version
}

// handler knows how to decode the condition and payload for a single Key
type handler struct {
	newCondition   func() Subscription
	parseCondition func(raw json.RawMessage) (Subscription, error)
	parsePayload   func(raw json.RawMessage) (any, error)
}

// handle pairs the condition type C with its payload type P
func handle[C Subscription, P any]() (Key, handler) {
	var zero C
	key := Key{Type: zero.EventType(), Version: zero.Version()}
	return key, handler{
		newCondition: func() Subscription {
			var c C
			return c
		},
		parseCondition: func(raw json.RawMessage) (Subscription, error) {
			var c C
			if err := json.Unmarshal(raw, &c); err != nil {
				return nil, err
			}
			return c, nil
		},
		parsePayload: func(raw json.RawMessage) (any, error) {
			var p P
			if err := json.Unmarshal(raw, &p); err != nil {
				return nil, err
			}
			return p, nil
		},
	}
}

// registry is the closed set of subscription types this package can decode. It is
// built once and never modified.
var registry = newRegistry(
	handle[ChannelUpdateV2, ChannelUpdateV2Payload],
	handle[ChannelFollowV2, ChannelFollowV2Payload],
	handle[ChannelRaidV1, ChannelRaidV1Payload],
	handle[ChannelCheerV1, ChannelCheerV1Payload],
	handle[ChannelSubscribeV1, ChannelSubscribeV1Payload],
	handle[ChannelSubscriptionEndV1, ChannelSubscriptionEndV1Payload],
	handle[ChannelSubscriptionGiftV1, ChannelSubscriptionGiftV1Payload],
	handle[ChannelSubscriptionMessageV1, ChannelSubscriptionMessageV1Payload],
	handle[ChannelHypeTrainBeginV1, ChannelHypeTrainBeginV1Payload],
	handle[ChannelVipAddV1, ChannelVipAddV1Payload],
	handle[ChannelVipRemoveV1, ChannelVipRemoveV1Payload],
	handle[ChannelPointsCustomRewardAddV1, ChannelPointsCustomRewardAddV1Payload],
	handle[ChannelPointsCustomRewardUpdateV1, ChannelPointsCustomRewardUpdateV1Payload],
	handle[ChannelPointsCustomRewardRemoveV1, ChannelPointsCustomRewardRemoveV1Payload],
	handle[ChannelPointsCustomRewardRedemptionAddV1, ChannelPointsCustomRewardRedemptionAddV1Payload],
	handle[ChannelPredictionBeginV1, ChannelPredictionBeginV1Payload],
	handle[StreamOnlineV1, StreamOnlineV1Payload],
	handle[StreamOfflineV1, StreamOfflineV1Payload],
	handle[UserUpdateV1, UserUpdateV1Payload],
	handle[UserAuthorizationGrantV1, UserAuthorizationGrantV1Payload],
	handle[UserAuthorizationRevokeV1, UserAuthorizationRevokeV1Payload],
)

func newRegistry(entries ...func() (Key, handler)) map[Key]handler {
	m := make(map[Key]handler, len(entries))
	for _, entry := range entries {
		key, h := entry()
		if _, exists := m[key]; exists {
			panic("eventsub: duplicate registration for " + key.String())
		}
		m[key] = h
	}
	return m
}

// Lookup returns the zero value of the condition type registered for the given type and
// version. Matching is exact: "channel.follow" version "1" is not the same subscription
// type as version "2".
func Lookup(eventType EventType, version string) (Subscription, bool) {
	h, ok := registry[Key{Type: eventType, Version: version}]
	if !ok {
		return nil, false
	}
	return h.newCondition(), true
}

// Known lists every subscription type and version that can be decoded, sorted by type
// and then version
func Known() []Key {
	keys := make([]Key, 0, len(registry))
	for key := range registry {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].Type != keys[j].Type {
			return keys[i].Type < keys[j].Type
		}
		return keys[i].Version < keys[j].Version
	})
	return keys
}

// ParseCondition decodes a raw condition object into the typed condition registered for
// the given type and version
func ParseCondition(eventType EventType, version string, raw []byte) (Subscription, error) {
	key := Key{Type: eventType, Version: version}
	h, ok := registry[key]
	if !ok {
		return nil, &UnknownEventTypeError{Type: eventType, Version: version}
	}
	c, err := h.parseCondition(raw)
	if err != nil {
		return nil, &DecodeError{Key: key, Part: PartCondition, Err: err}
	}
	return c, nil
}

// ConditionMap flattens a typed condition into the string map that the Helix API accepts
// and returns in EventSub subscription requests and responses. Unset optional fields are
// omitted.
func ConditionMap(s Subscription) (map[string]string, error) {
	data, err := json.Marshal(s)
	if err != nil {
		return nil, err
	}
	m := make(map[string]string)
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, err
	}
	return m, nil
}

// ParseConditionMap is the inverse of ConditionMap
func ParseConditionMap(eventType EventType, version string, m map[string]string) (Subscription, error) {
	data, err := json.Marshal(m)
	if err != nil {
		return nil, err
	}
	return ParseCondition(eventType, version, data)
}
