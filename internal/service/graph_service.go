package service

import (
	"context"

	"github.com/d60-Lab/sns-timeline/internal/model"
	"github.com/d60-Lab/sns-timeline/internal/repository"
)

// GraphService answers friendship and permission questions over the
// relations table.
type GraphService interface {
	IsFriend(ctx context.Context, userID, anotherID int64) (bool, error)
	// Permitted is the single authorization primitive: a viewer may see a
	// subject's private content iff the viewer is the subject or a friend.
	Permitted(ctx context.Context, subjectID, viewerID int64) (bool, error)
	// AddFriend is idempotent; an existing friendship is a no-op.
	AddFriend(ctx context.Context, userID, anotherID int64) error
	FriendIDs(ctx context.Context, userID int64) ([]int64, error)
	FriendCount(ctx context.Context, userID int64) (int64, error)
	ListFriends(ctx context.Context, userID int64) ([]*model.Relation, error)
}

type graphService struct {
	relations repository.RelationRepository
}

func NewGraphService(relations repository.RelationRepository) GraphService {
	return &graphService{relations: relations}
}

func (s *graphService) IsFriend(ctx context.Context, userID, anotherID int64) (bool, error) {
	return s.relations.Exists(ctx, userID, anotherID)
}

func (s *graphService) Permitted(ctx context.Context, subjectID, viewerID int64) (bool, error) {
	if subjectID == viewerID {
		return true, nil
	}
	return s.relations.Exists(ctx, viewerID, subjectID)
}

func (s *graphService) AddFriend(ctx context.Context, userID, anotherID int64) error {
	if userID == anotherID {
		return ErrFriendSelf
	}
	friends, err := s.relations.Exists(ctx, userID, anotherID)
	if err != nil {
		return err
	}
	if friends {
		return nil
	}
	// Two requests can race past the Exists check; the unique pair index in
	// the store makes the second insert a no-op and friendship stays true.
	return s.relations.CreatePair(ctx, userID, anotherID)
}

func (s *graphService) FriendIDs(ctx context.Context, userID int64) ([]int64, error) {
	return s.relations.FriendIDs(ctx, userID)
}

func (s *graphService) FriendCount(ctx context.Context, userID int64) (int64, error) {
	return s.relations.Count(ctx, userID)
}

func (s *graphService) ListFriends(ctx context.Context, userID int64) ([]*model.Relation, error) {
	return s.relations.ListFriends(ctx, userID)
}
