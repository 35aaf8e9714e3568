package redisstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "agenda:session:"

// SessionStore sesiones como claves "agenda:session:<id>" → uid con TTL.
type SessionStore struct {
	rdb redis.Cmdable
}

// NewSessionStore construye el almacén sobre un cliente (o cluster) de Redis.
func NewSessionStore(rdb redis.Cmdable) *SessionStore {
	return &SessionStore{rdb: rdb}
}

func (s *SessionStore) Put(ctx context.Context, sessionID, uid string, ttl time.Duration) error {
	if err := s.rdb.Set(ctx, keyPrefix+sessionID, uid, ttl).Err(); err != nil {
		return fmt.Errorf("redis set session: %w", err)
	}
	return nil
}

func (s *SessionStore) Lookup(ctx context.Context, sessionID string) (string, bool, error) {
	uid, err := s.rdb.Get(ctx, keyPrefix+sessionID).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("redis get session: %w", err)
	}
	return uid, true, nil
}

func (s *SessionStore) Revoke(ctx context.Context, sessionID string) error {
	if err := s.rdb.Del(ctx, keyPrefix+sessionID).Err(); err != nil {
		return fmt.Errorf("redis del session: %w", err)
	}
	return nil
}
