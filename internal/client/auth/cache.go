package auth

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// expirySkew is subtracted from the token expiry when computing the cache
// TTL, as a margin against clock drift and in-flight request latency.
const expirySkew = 2 * time.Second

// Authenticator performs the sign-in round-trip. Implemented by the HTTP
// client; the cache stays free of transport concerns.
type Authenticator interface {
	SignIn(ctx context.Context, creds Credentials) (Token, error)
}

// TokenCache holds at most one live bearer token, keyed by credential value.
// A lookup with different credentials evicts the previous entry. Concurrent
// misses for the same credentials collapse into a single sign-in call whose
// result, success or failure, is shared by every waiter. Failed sign-ins are
// never cached.
type TokenCache struct {
	authenticator Authenticator
	now           func() time.Time

	group singleflight.Group

	mu      sync.Mutex
	key     string
	bearer  string
	expires time.Time
}

// NewTokenCache constructs an empty cache backed by the given Authenticator.
func NewTokenCache(a Authenticator) *TokenCache {
	return &TokenCache{authenticator: a, now: time.Now}
}

// Get returns a live bearer token for creds, signing in at most once however
// many callers arrive concurrently. A cached token is returned without any
// network call until its TTL (expiry minus skew) elapses.
func (tc *TokenCache) Get(ctx context.Context, creds Credentials) (string, error) {
	key := creds.cacheKey()

	if bearer, ok := tc.lookup(key); ok {
		return bearer, nil
	}

	v, err, _ := tc.group.Do(key, func() (any, error) {
		// A flight that finished between our miss and this callback may
		// already have stored a fresh token.
		if bearer, ok := tc.lookup(key); ok {
			return bearer, nil
		}

		tok, err := tc.authenticator.SignIn(ctx, creds)
		if err != nil {
			return "", err
		}
		claims, err := DecodeClaims(tok.Token)
		if err != nil {
			return "", err
		}
		tc.store(key, tok.Token, claims.ExpiresAt.Add(-expirySkew))
		return tok.Token, nil
	})
	if err != nil {
		return "", err
	}
	return v.(string), nil
}

func (tc *TokenCache) lookup(key string) (string, bool) {
	tc.mu.Lock()
	defer tc.mu.Unlock()

	if tc.key != key || tc.bearer == "" {
		return "", false
	}
	if !tc.now().Before(tc.expires) {
		return "", false
	}
	return tc.bearer, true
}

func (tc *TokenCache) store(key, bearer string, expires time.Time) {
	tc.mu.Lock()
	defer tc.mu.Unlock()

	tc.key = key
	tc.bearer = bearer
	tc.expires = expires
}
