package service

import (
	"context"
	"errors"

	"github.com/d60-Lab/sns-timeline/internal/cache"
	"github.com/d60-Lab/sns-timeline/internal/model"
	"github.com/d60-Lab/sns-timeline/internal/repository"
)

// IdentityService resolves user records through the identity cache.
//
// In strict mode a cache miss reads as ErrContentNotFound even when the user
// exists in the relational store, reproducing the login-populated-only cache
// semantics. The default mode falls back to the store on a miss and
// backfills the cache.
type IdentityService interface {
	GetUser(ctx context.Context, id int64) (*model.User, error)
	GetUserByAccountName(ctx context.Context, accountName string) (*model.User, error)
	// GetUsers bulk-resolves ids for display purposes. In fallback mode every
	// existing user is present in the result; in strict mode cold ids are
	// absent rather than an error, since list rendering tolerates gaps.
	GetUsers(ctx context.Context, ids []int64) (map[int64]*model.User, error)
}

type identityService struct {
	users  repository.UserRepository
	cache  *cache.IdentityCache
	strict bool
}

func NewIdentityService(users repository.UserRepository, c *cache.IdentityCache, strict bool) IdentityService {
	return &identityService{users: users, cache: c, strict: strict}
}

func (s *identityService) GetUser(ctx context.Context, id int64) (*model.User, error) {
	user, err := s.cache.Get(ctx, id)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, cache.ErrMiss) {
		return nil, err
	}
	if s.strict {
		return nil, ErrContentNotFound
	}
	user, err = s.users.GetByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err)
	}
	_ = s.cache.Put(ctx, user)
	return user, nil
}

func (s *identityService) GetUserByAccountName(ctx context.Context, accountName string) (*model.User, error) {
	// Account-name lookups go to the store of record; the cache is keyed by id.
	user, err := s.users.GetByAccountName(ctx, accountName)
	if err != nil {
		return nil, notFoundOr(err)
	}
	return user, nil
}

func (s *identityService) GetUsers(ctx context.Context, ids []int64) (map[int64]*model.User, error) {
	found, err := s.cache.GetMulti(ctx, ids)
	if err != nil {
		return nil, err
	}
	if s.strict {
		return found, nil
	}

	var missing []int64
	for _, id := range ids {
		if _, ok := found[id]; !ok {
			missing = append(missing, id)
		}
	}
	if len(missing) == 0 {
		return found, nil
	}

	users, err := s.users.GetByIDs(ctx, missing)
	if err != nil {
		return nil, err
	}
	for _, u := range users {
		found[u.ID] = u
		_ = s.cache.Put(ctx, u)
	}
	return found, nil
}
