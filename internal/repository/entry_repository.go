package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/d60-Lab/sns-timeline/internal/model"
)

type EntryRepository interface {
	Create(ctx context.Context, entry *model.Entry) error
	GetByID(ctx context.Context, id int64) (*model.Entry, error)
	GetByIDs(ctx context.Context, ids []int64) ([]*model.Entry, error)
	// ListByOwner returns an owner's entries newest first, capped at limit.
	// When includePrivate is false the privacy filter is pushed down.
	ListByOwner(ctx context.Context, ownerID int64, includePrivate bool, limit int) ([]*model.Entry, error)
	// ListRecent is the bounded global scan feeding the friends feed.
	ListRecent(ctx context.Context, limit int) ([]*model.Entry, error)
	DeleteAbove(ctx context.Context, id int64) error
}

type entryRepository struct {
	db *gorm.DB
}

func NewEntryRepository(db *gorm.DB) EntryRepository { return &entryRepository{db: db} }

func (r *entryRepository) Create(ctx context.Context, entry *model.Entry) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *entryRepository) GetByID(ctx context.Context, id int64) (*model.Entry, error) {
	var entry model.Entry
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&entry).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

func (r *entryRepository) GetByIDs(ctx context.Context, ids []int64) ([]*model.Entry, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var entries []*model.Entry
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&entries).Error
	return entries, err
}

func (r *entryRepository) ListByOwner(ctx context.Context, ownerID int64, includePrivate bool, limit int) ([]*model.Entry, error) {
	q := r.db.WithContext(ctx).Where("user_id = ?", ownerID)
	if !includePrivate {
		q = q.Where("private = ?", false)
	}
	var entries []*model.Entry
	err := q.Order("created_at DESC").Order("id DESC").Limit(limit).Find(&entries).Error
	return entries, err
}

func (r *entryRepository) ListRecent(ctx context.Context, limit int) ([]*model.Entry, error) {
	var entries []*model.Entry
	err := r.db.WithContext(ctx).
		Order("created_at DESC").Order("id DESC").
		Limit(limit).
		Find(&entries).Error
	return entries, err
}

func (r *entryRepository) DeleteAbove(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Where("id > ?", id).Delete(&model.Entry{}).Error
}
