package redisad

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"travelease/internal/domain"
)

// SessionStore keeps one user record per token, the server-side counterpart
// of the single travelUser record the web client used to persist locally.
type SessionStore struct {
	c   *redis.Client
	ttl time.Duration
}

func NewSessionStore(c *redis.Client, ttl time.Duration) *SessionStore {
	return &SessionStore{c: c, ttl: ttl}
}

func sessionKey(token string) string { return "session:" + token }

func (s *SessionStore) Save(ctx context.Context, sess domain.Session) error {
	b, err := json.Marshal(sess.User)
	if err != nil {
		return err
	}
	return s.c.Set(ctx, sessionKey(sess.Token), b, s.ttl).Err()
}

func (s *SessionStore) Load(ctx context.Context, token string) (domain.Session, error) {
	b, err := s.c.Get(ctx, sessionKey(token)).Bytes()
	if err == redis.Nil {
		return domain.Session{}, domain.ErrNotFound
	}
	if err != nil {
		return domain.Session{}, err
	}
	var u domain.User
	if err := json.Unmarshal(b, &u); err != nil {
		return domain.Session{}, fmt.Errorf("decode session %s: %w", token, err)
	}
	return domain.Session{Token: token, User: u}, nil
}

func (s *SessionStore) Clear(ctx context.Context, token string) error {
	return s.c.Del(ctx, sessionKey(token)).Err()
}
