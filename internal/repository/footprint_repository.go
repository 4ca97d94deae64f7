package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/d60-Lab/sns-timeline/internal/model"
)

// visitScanPage bounds each page of the grouped-visits scan.
const visitScanPage = 500

type FootprintRepository interface {
	Create(ctx context.Context, subjectID, visitorID int64) error
	// ListRecentGrouped collapses same-day visits from the same visitor into
	// one row carrying the latest timestamp, newest group first.
	ListRecentGrouped(ctx context.Context, subjectID int64, limit int) ([]*model.GroupedFootprint, error)
	DeleteAbove(ctx context.Context, id int64) error
}

type footprintRepository struct {
	db *gorm.DB
}

func NewFootprintRepository(db *gorm.DB) FootprintRepository { return &footprintRepository{db: db} }

func (r *footprintRepository) Create(ctx context.Context, subjectID, visitorID int64) error {
	return r.db.WithContext(ctx).Create(&model.Footprint{UserID: subjectID, OwnerID: visitorID}).Error
}

// ListRecentGrouped pages through the subject's footprints newest first.
// Scanning in descending order means the first row seen for a
// (visitor, calendar date) pair is that group's latest visit, so groups
// come out already ordered by their latest timestamp.
func (r *footprintRepository) ListRecentGrouped(ctx context.Context, subjectID int64, limit int) ([]*model.GroupedFootprint, error) {
	type key struct {
		ownerID int64
		date    string
	}
	seen := make(map[key]bool)
	groups := make([]*model.GroupedFootprint, 0, limit)

	for offset := 0; ; offset += visitScanPage {
		var rows []*model.Footprint
		err := r.db.WithContext(ctx).
			Where("user_id = ?", subjectID).
			Order("created_at DESC").Order("id DESC").
			Offset(offset).Limit(visitScanPage).
			Find(&rows).Error
		if err != nil {
			return nil, err
		}
		for _, fp := range rows {
			date := fp.CreatedAt.Format("2006-01-02")
			k := key{ownerID: fp.OwnerID, date: date}
			if seen[k] {
				continue
			}
			seen[k] = true
			groups = append(groups, &model.GroupedFootprint{
				UserID:  fp.UserID,
				OwnerID: fp.OwnerID,
				Date:    date,
				Updated: fp.CreatedAt,
			})
			if len(groups) >= limit {
				return groups, nil
			}
		}
		if len(rows) < visitScanPage {
			return groups, nil
		}
	}
}

func (r *footprintRepository) DeleteAbove(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Where("id > ?", id).Delete(&model.Footprint{}).Error
}
