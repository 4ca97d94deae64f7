// Package cache holds the identity cache: a derived, non-authoritative
// mirror of user records keyed by id. It is populated at login only and
// must tolerate being cold for any id.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/d60-Lab/sns-timeline/internal/model"
)

// ErrMiss reports a cold cache for the requested id. Callers decide the
// fallback policy; the cache itself never reads the relational store.
var ErrMiss = errors.New("identity cache: miss")

type IdentityCache struct {
	client *redis.Client
}

func NewIdentityCache(client *redis.Client) *IdentityCache {
	return &IdentityCache{client: client}
}

func userKey(id int64) string { return fmt.Sprintf("user:%d", id) }

// Put stores the whole user record under its id, overwriting any previous
// value. No TTL; records live for the cache's lifetime.
func (c *IdentityCache) Put(ctx context.Context, user *model.User) error {
	payload, err := json.Marshal(user)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, userKey(user.ID), payload, 0).Err()
}

// Get is a point lookup. A cold id returns ErrMiss.
func (c *IdentityCache) Get(ctx context.Context, id int64) (*model.User, error) {
	data, err := c.client.Get(ctx, userKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrMiss
	}
	if err != nil {
		return nil, err
	}
	var user model.User
	if err := json.Unmarshal(data, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// GetMulti bulk-loads cached records via MGET. Cold ids are simply absent
// from the result map; no error is raised for them.
func (c *IdentityCache) GetMulti(ctx context.Context, ids []int64) (map[int64]*model.User, error) {
	if len(ids) == 0 {
		return map[int64]*model.User{}, nil
	}
	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = userKey(id)
	}
	vals, err := c.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, err
	}
	out := make(map[int64]*model.User, len(ids))
	for i, v := range vals {
		str, ok := v.(string)
		if !ok {
			continue
		}
		var user model.User
		if err := json.Unmarshal([]byte(str), &user); err != nil {
			continue
		}
		out[ids[i]] = &user
	}
	return out, nil
}
