package eventsub

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"net/http"
)

// Sign computes the Twitch-Eventsub-Message-Signature value for a webhook delivery: an
// HMAC-SHA256 of the message ID, timestamp and body, keyed with the secret supplied when
// the subscription was created
func Sign(secret, messageID, timestamp string, body []byte) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(messageID))
	mac.Write([]byte(timestamp))
	mac.Write(body)
	return "sha256=" + hex.EncodeToString(mac.Sum(nil))
}

// SetSignatureHeaders populates the message ID, timestamp and signature headers for a
// webhook delivery, as Twitch would
func SetSignatureHeaders(header http.Header, secret, messageID, timestamp string, body []byte) {
	header.Set(HeaderMessageID, messageID)
	header.Set(HeaderMessageTimestamp, timestamp)
	header.Set(HeaderMessageSignature, Sign(secret, messageID, timestamp, body))
}
