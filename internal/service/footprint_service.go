package service

import (
	"context"

	"github.com/d60-Lab/sns-timeline/internal/model"
	"github.com/d60-Lab/sns-timeline/internal/repository"
)

// FootprintService records and reads profile-visit traces.
type FootprintService interface {
	// RecordVisit appends a footprint. Self-visits are not recorded.
	RecordVisit(ctx context.Context, subjectID, visitorID int64) error
	RecentVisits(ctx context.Context, subjectID int64, limit int) ([]*model.GroupedFootprint, error)
}

type footprintService struct {
	footprints repository.FootprintRepository
}

func NewFootprintService(footprints repository.FootprintRepository) FootprintService {
	return &footprintService{footprints: footprints}
}

func (s *footprintService) RecordVisit(ctx context.Context, subjectID, visitorID int64) error {
	if subjectID == visitorID {
		return nil
	}
	return s.footprints.Create(ctx, subjectID, visitorID)
}

func (s *footprintService) RecentVisits(ctx context.Context, subjectID int64, limit int) ([]*model.GroupedFootprint, error) {
	return s.footprints.ListRecentGrouped(ctx, subjectID, limit)
}
