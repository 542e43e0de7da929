// Package eventsub decodes the messages Twitch delivers for EventSub subscriptions,
// whether they arrive via webhook callbacks or over a websocket session.
//
// Every supported subscription type is represented by a typed condition (e.g.
// StreamOnlineV1) which implements Subscription, paired with a payload type (e.g.
// StreamOnlineV1Payload). Incoming messages are dispatched on the exact combination of
// subscription type and version: messages for any other combination are rejected with
// an UnknownEventTypeError rather than partially decoded.
package eventsub
