package service

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/d60-Lab/sns-timeline/internal/cache"
	"github.com/d60-Lab/sns-timeline/internal/model"
	"github.com/d60-Lab/sns-timeline/internal/repository"
)

// AuthService checks credentials against the store of record. A successful
// login is the only write path into the identity cache.
type AuthService interface {
	Authenticate(ctx context.Context, email, password string) (*model.User, error)
}

type authService struct {
	users repository.UserRepository
	cache *cache.IdentityCache
}

func NewAuthService(users repository.UserRepository, c *cache.IdentityCache) AuthService {
	return &authService{users: users, cache: c}
}

func (s *authService) Authenticate(ctx context.Context, email, password string) (*model.User, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrAuthenticationFailed
	}
	if err != nil {
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Passhash), []byte(password)) != nil {
		return nil, ErrAuthenticationFailed
	}
	if err := s.cache.Put(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}
