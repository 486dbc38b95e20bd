package auth

import (
	"context"
	"time"

	"blogapi/internal/cache"
)

const denylistKeyPrefix = "denylist:token:"

// TokenStoreInterface defines the interface for token revocation.
type TokenStoreInterface interface {
	DenyToken(ctx context.Context, tokenID string, ttl time.Duration) error
	IsTokenDenied(ctx context.Context, tokenID string) (bool, error)
}

// TokenStore keeps revoked token IDs in redis until they expire on their
// own. Tokens are otherwise stateless.
type TokenStore struct {
	cache *cache.Client
}

// Ensure TokenStore implements TokenStoreInterface
var _ TokenStoreInterface = (*TokenStore)(nil)

// NewTokenStore creates a new token store.
func NewTokenStore(cache *cache.Client) *TokenStore {
	return &TokenStore{cache: cache}
}

// DenyToken marks a token ID as revoked until its natural expiry.
func (s *TokenStore) DenyToken(ctx context.Context, tokenID string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	key := denylistKeyPrefix + tokenID
	return s.cache.Set(ctx, key, []byte("1"), ttl)
}

// IsTokenDenied checks whether a token ID has been revoked. A redis
// failure reads as not revoked, matching the cache's fail-safe contract.
func (s *TokenStore) IsTokenDenied(ctx context.Context, tokenID string) (bool, error) {
	key := denylistKeyPrefix + tokenID
	data, err := s.cache.Get(ctx, key)
	if err != nil {
		return false, nil
	}
	return data != nil, nil
}
