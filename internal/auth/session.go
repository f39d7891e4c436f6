package auth

import (
	"context"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

// Sessions remembers which refresh tokens are still valid.
type Sessions interface {
	Save(ctx context.Context, id string, ttl time.Duration) error
	Exists(ctx context.Context, id string) (bool, error)
	// Revoke removes the session and reports whether it was still valid.
	// Of several concurrent calls for one id at most one sees true.
	Revoke(ctx context.Context, id string) (bool, error)
}

type MemorySessions struct {
	mu      sync.Mutex
	expires map[string]time.Time
	now     func() time.Time
}

func NewMemorySessions() *MemorySessions {
	return &MemorySessions{
		expires: make(map[string]time.Time),
		now:     time.Now,
	}
}

func (m *MemorySessions) Save(_ context.Context, id string, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	for k, exp := range m.expires {
		if !exp.After(now) {
			delete(m.expires, k)
		}
	}
	m.expires[id] = now.Add(ttl)

	return nil
}

func (m *MemorySessions) Exists(_ context.Context, id string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	exp, ok := m.expires[id]
	return ok && exp.After(m.now()), nil
}

func (m *MemorySessions) Revoke(_ context.Context, id string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	exp, ok := m.expires[id]
	delete(m.expires, id)
	return ok && exp.After(m.now()), nil
}

const redisSessionPrefix = "dashboard:session:"

// RedisSessions keeps refresh sessions in redis so they survive restarts and
// are shared between instances.
type RedisSessions struct {
	client *redis.Client
}

func NewRedisSessions(client *redis.Client) *RedisSessions {
	return &RedisSessions{client: client}
}

func (r *RedisSessions) Save(ctx context.Context, id string, ttl time.Duration) error {
	if err := r.client.Set(ctx, redisSessionPrefix+id, 1, ttl).Err(); err != nil {
		return errors.Wrap(err, "saving session")
	}
	return nil
}

func (r *RedisSessions) Exists(ctx context.Context, id string) (bool, error) {
	n, err := r.client.Exists(ctx, redisSessionPrefix+id).Result()
	if err != nil {
		return false, errors.Wrap(err, "checking session")
	}
	return n == 1, nil
}

// Revoke relies on DEL being atomic: only the caller that removed the key
// gets a count of one.
func (r *RedisSessions) Revoke(ctx context.Context, id string) (bool, error) {
	n, err := r.client.Del(ctx, redisSessionPrefix+id).Result()
	if err != nil {
		return false, errors.Wrap(err, "revoking session")
	}
	return n == 1, nil
}
