package eventsub

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Sign(t *testing.T) {
	got := Sign(
		"my-cool-webhook-secret",
		"e76c6bd4-55c9-4987-8304-da1588d8988b",
		"2019-11-16T10:11:12.634234626Z",
		[]byte(`{"challenge":"pogchamp-kappa-360noscope-vohiyo"}`),
	)
	assert.Equal(t, "sha256=2f7753bc65c317cbad2b0d77d9375ee7ac03c2bfef953573566218d8afa8fe5b", got)

	other := Sign("a-different-secret", "e76c6bd4-55c9-4987-8304-da1588d8988b", "2019-11-16T10:11:12.634234626Z", []byte(`{"challenge":"pogchamp-kappa-360noscope-vohiyo"}`))
	assert.NotEqual(t, got, other)
}

func Test_SetSignatureHeaders(t *testing.T) {
	header := http.Header{}
	body := []byte(`{"challenge":"pogchamp-kappa-360noscope-vohiyo"}`)
	SetSignatureHeaders(header, "my-cool-webhook-secret", "e76c6bd4-55c9-4987-8304-da1588d8988b", "2019-11-16T10:11:12.634234626Z", body)
	assert.Equal(t, "e76c6bd4-55c9-4987-8304-da1588d8988b", header.Get("Twitch-Eventsub-Message-Id"))
	assert.Equal(t, "2019-11-16T10:11:12.634234626Z", header.Get("Twitch-Eventsub-Message-Timestamp"))
	assert.Equal(t, "sha256=2f7753bc65c317cbad2b0d77d9375ee7ac03c2bfef953573566218d8afa8fe5b", header.Get("Twitch-Eventsub-Message-Signature"))
}
