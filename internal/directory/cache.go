package directory

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// cachedDirectory is a redis read-through cache in front of another
// Directory. Account records gate every request, so a short TTL keeps the
// identity service out of the hot path without letting revoked access
// linger for long.
type cachedDirectory struct {
	next Directory
	rdb  *redis.Client
	ttl  time.Duration
}

func WithCache(next Directory, rdb *redis.Client, ttl time.Duration) Directory {
	if ttl <= 0 {
		ttl = 30 * time.Second
	}
	return &cachedDirectory{next: next, rdb: rdb, ttl: ttl}
}

func (d *cachedDirectory) Account(ctx context.Context, id uuid.UUID) (*Account, error) {
	key := "directory:account:" + id.String()
	var acct Account
	if ok := d.get(ctx, key, &acct); ok {
		return &acct, nil
	}

	fresh, err := d.next.Account(ctx, id)
	if err != nil {
		return nil, err
	}
	d.put(ctx, key, fresh)
	return fresh, nil
}

func (d *cachedDirectory) Client(ctx context.Context, id uuid.UUID) (*Client, error) {
	key := "directory:client:" + id.String()
	var cl Client
	if ok := d.get(ctx, key, &cl); ok {
		return &cl, nil
	}

	fresh, err := d.next.Client(ctx, id)
	if err != nil {
		return nil, err
	}
	d.put(ctx, key, fresh)
	return fresh, nil
}

func (d *cachedDirectory) get(ctx context.Context, key string, out any) bool {
	raw, err := d.rdb.Get(ctx, key).Bytes()
	if err != nil {
		// a cache miss or cache trouble both mean going to the source
		return false
	}
	return json.Unmarshal(raw, out) == nil
}

func (d *cachedDirectory) put(ctx context.Context, key string, v any) {
	raw, err := json.Marshal(v)
	if err != nil {
		return
	}
	_ = d.rdb.Set(ctx, key, raw, d.ttl).Err()
}
