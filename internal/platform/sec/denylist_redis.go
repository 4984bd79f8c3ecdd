// Copyright (c) 2026 Prachasan Foundation. All rights reserved.

package sec

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/prachasan/heritage-api/internal/platform/constants"
)

// RedisDenylist checks token revocation markers stored in Redis.
//
// The identity service writes a key per revoked token ID with a TTL matching
// the token's remaining lifetime; this API only reads them.
type RedisDenylist struct {
	client *redis.Client
}

// NewRedisDenylist constructs a Redis-backed [Denylist].
func NewRedisDenylist(client *redis.Client) *RedisDenylist {
	return &RedisDenylist{client: client}
}

// IsRevoked reports whether the given token ID has a revocation marker.
func (d *RedisDenylist) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	if tokenID == "" {
		return false, nil
	}

	count, err := d.client.Exists(ctx, constants.RedisPrefixRevokedToken+tokenID).Result()
	if err != nil {
		return false, fmt.Errorf("sec: revocation lookup failed: %w", err)
	}

	return count > 0, nil
}
