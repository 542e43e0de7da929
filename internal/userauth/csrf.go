package userauth

import (
	"crypto/rand"
	"encoding/hex"
	"sync"
	"time"
)

// csrfTokenLifetime is how long the broadcaster has to complete the OAuth flow after
// we've sent them to id.twitch.tv
const csrfTokenLifetime = 15 * time.Minute

// csrfBuffer holds the single-use tokens we've issued as the 'state' parameter of
// in-progress OAuth flows
type csrfBuffer struct {
	tokens []csrfToken
	now    func() time.Time
	mu     sync.Mutex
}

type csrfToken struct {
	value     string
	expiresAt time.Time
}

func newCsrfBuffer() *csrfBuffer {
	return &csrfBuffer{
		tokens: make([]csrfToken, 0, 8),
		now:    time.Now,
	}
}

func (b *csrfBuffer) generate() string {
	bytes := make([]byte, 16)
	if _, err := rand.Read(bytes); err != nil {
		panic(err)
	}
	tokenValue := hex.EncodeToString(bytes)

	b.mu.Lock()
	defer b.mu.Unlock()

	b.tokens = append(b.purgeExpired(), csrfToken{
		value:     tokenValue,
		expiresAt: b.now().Add(csrfTokenLifetime),
	})
	return tokenValue
}

// check reports whether the given value is an outstanding token, consuming it if so
func (b *csrfBuffer) check(tokenValue string) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	retained := b.purgeExpired()
	for i := range retained {
		if retained[i].value == tokenValue {
			b.tokens = append(retained[:i], retained[i+1:]...)
			return true
		}
	}
	b.tokens = retained
	return false
}

// purgeExpired returns the tokens that are still valid; b.mu must be held
func (b *csrfBuffer) purgeExpired() []csrfToken {
	now := b.now()
	retained := make([]csrfToken, 0, len(b.tokens)+1)
	for _, token := range b.tokens {
		if token.expiresAt.After(now) {
			retained = append(retained, token)
		}
	}
	return retained
}
