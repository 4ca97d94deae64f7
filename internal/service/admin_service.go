package service

import (
	"context"

	"github.com/d60-Lab/sns-timeline/internal/repository"
)

// Baseline id thresholds for the benchmark reset. Rows above these ids are
// load-generated and get truncated; ids become non-contiguous afterwards,
// which the read path tolerates.
const (
	resetMaxRelationID  = 500000
	resetMaxFootprintID = 500000
	resetMaxEntryID     = 500000
	resetMaxCommentID   = 1500000
)

// AdminService restores the seeded baseline.
type AdminService interface {
	Initialize(ctx context.Context) error
}

type adminService struct {
	relations  repository.RelationRepository
	footprints repository.FootprintRepository
	entries    repository.EntryRepository
	comments   repository.CommentRepository
}

func NewAdminService(
	relations repository.RelationRepository,
	footprints repository.FootprintRepository,
	entries repository.EntryRepository,
	comments repository.CommentRepository,
) AdminService {
	return &adminService{relations: relations, footprints: footprints, entries: entries, comments: comments}
}

func (s *adminService) Initialize(ctx context.Context) error {
	if err := s.relations.DeleteAbove(ctx, resetMaxRelationID); err != nil {
		return err
	}
	if err := s.footprints.DeleteAbove(ctx, resetMaxFootprintID); err != nil {
		return err
	}
	if err := s.entries.DeleteAbove(ctx, resetMaxEntryID); err != nil {
		return err
	}
	return s.comments.DeleteAbove(ctx, resetMaxCommentID)
}
