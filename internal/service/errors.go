package service

import (
	"errors"

	"gorm.io/gorm"
)

// Request-scoped failure taxonomy. Store failures are not translated; they
// propagate wrapped so the handler layer reports them as internal errors.
var (
	ErrAuthenticationFailed = errors.New("authentication failed")
	ErrPermissionDenied     = errors.New("permission denied")
	ErrContentNotFound      = errors.New("content not found")
	ErrFriendSelf           = errors.New("cannot friend self")
)

// notFoundOr maps a missing row to ErrContentNotFound and leaves store
// failures untouched.
func notFoundOr(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrContentNotFound
	}
	return err
}
