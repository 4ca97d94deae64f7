package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/d60-Lab/sns-timeline/internal/model"
)

type ProfileRepository interface {
	Get(ctx context.Context, userID int64) (*model.Profile, error)
	Upsert(ctx context.Context, profile *model.Profile) error
}

type profileRepository struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) ProfileRepository { return &profileRepository{db: db} }

// Get returns nil without an error when the user has never saved a profile.
func (r *profileRepository) Get(ctx context.Context, userID int64) (*model.Profile, error) {
	var prof model.Profile
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&prof).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &prof, nil
}

func (r *profileRepository) Upsert(ctx context.Context, profile *model.Profile) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		UpdateAll: true,
	}).Create(profile).Error
}
