package auth

import (
	"context"
	"time"

	"github.com/mobilecarebd/off-white/internal/cache"
)

const revokedKeyPrefix = "revoked_session:"

// RevocationStoreInterface defines the interface for session revocation.
type RevocationStoreInterface interface {
	Revoke(ctx context.Context, tokenID string, ttl time.Duration) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

// RevocationStore keeps logged-out session token IDs in Redis until the
// token would have expired on its own.
type RevocationStore struct {
	cache *cache.Client
}

// Ensure RevocationStore implements RevocationStoreInterface
var _ RevocationStoreInterface = (*RevocationStore)(nil)

// NewRevocationStore creates a new revocation store.
func NewRevocationStore(cache *cache.Client) *RevocationStore {
	return &RevocationStore{cache: cache}
}

// Revoke marks a session token ID as logged out until ttl elapses.
func (s *RevocationStore) Revoke(ctx context.Context, tokenID string, ttl time.Duration) error {
	return s.cache.Set(ctx, revokedKeyPrefix+tokenID, []byte("1"), ttl)
}

// IsRevoked checks whether a session token ID has been logged out.
// Redis errors read as not revoked, matching the cache's fail-safe behavior.
func (s *RevocationStore) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	return s.cache.Exists(ctx, revokedKeyPrefix+tokenID)
}
