// Package callback implements the HTTP server functionality required to handle incoming
// EventSub webhook requests from Twitch, as described in
// https://dev.twitch.tv/docs/eventsub/handling-webhook-events/
//
// Every request is authenticated by its HMAC signature before its body is decoded into
// a typed eventsub.Event. Verification challenges are answered immediately, revocations
// are logged, and notifications are handed off to a HandleEventFunc (in production, one
// that republishes the event to AMQP).
package callback
