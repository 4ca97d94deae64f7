package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/d60-Lab/sns-timeline/internal/model"
)

type RelationRepository interface {
	// Exists checks the single direction (one = a AND another = b).
	// Pair inserts keep the table symmetric, so one direction suffices.
	Exists(ctx context.Context, one, another int64) (bool, error)
	// CreatePair inserts both directed rows in one transaction.
	CreatePair(ctx context.Context, one, another int64) error
	FriendIDs(ctx context.Context, one int64) ([]int64, error)
	Count(ctx context.Context, one int64) (int64, error)
	// ListFriends returns (another, created_at) rows newest first.
	ListFriends(ctx context.Context, one int64) ([]*model.Relation, error)
	DeleteAbove(ctx context.Context, id int64) error
}

type relationRepository struct {
	db *gorm.DB
}

func NewRelationRepository(db *gorm.DB) RelationRepository { return &relationRepository{db: db} }

func (r *relationRepository) Exists(ctx context.Context, one, another int64) (bool, error) {
	var cnt int64
	if err := r.db.WithContext(ctx).
		Model(&model.Relation{}).
		Where("one = ? AND another = ?", one, another).
		Count(&cnt).Error; err != nil {
		return false, err
	}
	return cnt > 0, nil
}

func (r *relationRepository) CreatePair(ctx context.Context, one, another int64) error {
	// OnConflict DoNothing on the (one, another) unique index makes
	// concurrent double-inserts converge to a single pair.
	rows := []*model.Relation{
		{One: one, Another: another},
		{One: another, Another: one},
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&rows).Error
	})
}

func (r *relationRepository) FriendIDs(ctx context.Context, one int64) ([]int64, error) {
	var ids []int64
	err := r.db.WithContext(ctx).
		Model(&model.Relation{}).
		Where("one = ?", one).
		Pluck("another", &ids).Error
	return ids, err
}

func (r *relationRepository) Count(ctx context.Context, one int64) (int64, error) {
	var cnt int64
	err := r.db.WithContext(ctx).
		Model(&model.Relation{}).
		Where("one = ?", one).
		Count(&cnt).Error
	return cnt, err
}

func (r *relationRepository) ListFriends(ctx context.Context, one int64) ([]*model.Relation, error) {
	var rels []*model.Relation
	err := r.db.WithContext(ctx).
		Where("one = ?", one).
		Order("created_at DESC").Order("id DESC").
		Find(&rels).Error
	return rels, err
}

func (r *relationRepository) DeleteAbove(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Where("id > ?", id).Delete(&model.Relation{}).Error
}
