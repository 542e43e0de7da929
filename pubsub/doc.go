// Package pubsub implements the client side of Twitch's legacy PubSub protocol: encoding
// LISTEN, UNLISTEN and PING commands, and decoding the frames the server sends back.
//
// Each supported Topic type is bound to the reply type its messages decode to. A
// MESSAGE frame for a topic this package does not know about fails to decode with an
// UnknownTopicError.
package pubsub
