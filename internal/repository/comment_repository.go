package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/d60-Lab/sns-timeline/internal/model"
)

type CommentRepository interface {
	Create(ctx context.Context, comment *model.Comment) error
	ListByEntry(ctx context.Context, entryID int64) ([]*model.Comment, error)
	// ListReceived joins comments to entries and returns the newest comments
	// on entries owned by ownerID.
	ListReceived(ctx context.Context, ownerID int64, limit int) ([]*model.Comment, error)
	// ListRecent is the bounded global scan feeding the friends feed.
	ListRecent(ctx context.Context, limit int) ([]*model.Comment, error)
	DeleteAbove(ctx context.Context, id int64) error
}

type commentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) CommentRepository { return &commentRepository{db: db} }

func (r *commentRepository) Create(ctx context.Context, comment *model.Comment) error {
	return r.db.WithContext(ctx).Create(comment).Error
}

func (r *commentRepository) ListByEntry(ctx context.Context, entryID int64) ([]*model.Comment, error) {
	var comments []*model.Comment
	err := r.db.WithContext(ctx).
		Where("entry_id = ?", entryID).
		Order("created_at").Order("id").
		Find(&comments).Error
	return comments, err
}

func (r *commentRepository) ListReceived(ctx context.Context, ownerID int64, limit int) ([]*model.Comment, error) {
	var comments []*model.Comment
	err := r.db.WithContext(ctx).
		Model(&model.Comment{}).
		Select("comments.*").
		Joins("JOIN entries ON comments.entry_id = entries.id").
		Where("entries.user_id = ?", ownerID).
		Order("comments.created_at DESC").Order("comments.id DESC").
		Limit(limit).
		Find(&comments).Error
	return comments, err
}

func (r *commentRepository) ListRecent(ctx context.Context, limit int) ([]*model.Comment, error) {
	var comments []*model.Comment
	err := r.db.WithContext(ctx).
		Order("created_at DESC").Order("id DESC").
		Limit(limit).
		Find(&comments).Error
	return comments, err
}

func (r *commentRepository) DeleteAbove(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Where("id > ?", id).Delete(&model.Comment{}).Error
}
