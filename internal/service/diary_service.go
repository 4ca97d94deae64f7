package service

import (
	"context"

	"github.com/d60-Lab/sns-timeline/internal/model"
	"github.com/d60-Lab/sns-timeline/internal/repository"
)

const defaultEntryTitle = "タイトルなし"

// DiaryService owns the entry/comment write path.
type DiaryService interface {
	// PostEntry stores a new entry. The body is the title line followed by a
	// newline and the content, so the body always has at least one line.
	PostEntry(ctx context.Context, authorID int64, title, content string, private bool) (*model.Entry, error)
	// PostComment checks read permission on private parents at creation time.
	PostComment(ctx context.Context, authorID, entryID int64, text string) (*model.Comment, error)
}

type diaryService struct {
	entries  repository.EntryRepository
	comments repository.CommentRepository
	graph    GraphService
}

func NewDiaryService(entries repository.EntryRepository, comments repository.CommentRepository, graph GraphService) DiaryService {
	return &diaryService{entries: entries, comments: comments, graph: graph}
}

func (s *diaryService) PostEntry(ctx context.Context, authorID int64, title, content string, private bool) (*model.Entry, error) {
	if title == "" {
		title = defaultEntryTitle
	}
	entry := &model.Entry{
		UserID:  authorID,
		Private: private,
		Body:    title + "\n" + content,
	}
	if err := s.entries.Create(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

func (s *diaryService) PostComment(ctx context.Context, authorID, entryID int64, text string) (*model.Comment, error) {
	entry, err := s.entries.GetByID(ctx, entryID)
	if err != nil {
		return nil, notFoundOr(err)
	}
	if entry.Private {
		permitted, err := s.graph.Permitted(ctx, entry.UserID, authorID)
		if err != nil {
			return nil, err
		}
		if !permitted {
			return nil, ErrPermissionDenied
		}
	}
	comment := &model.Comment{
		EntryID: entry.ID,
		UserID:  authorID,
		Comment: text,
	}
	if err := s.comments.Create(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}
