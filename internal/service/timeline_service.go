package service

import (
	"context"
	"time"

	"github.com/d60-Lab/sns-timeline/config"
	"github.com/d60-Lab/sns-timeline/internal/model"
	"github.com/d60-Lab/sns-timeline/internal/repository"
)

// EntryView is an entry with the body split into title and content.
// Feed items carry the title only.
type EntryView struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	Private   bool      `json:"private"`
	Title     string    `json:"title"`
	Content   string    `json:"content,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// FootprintView is a grouped visit with the visitor's display name resolved
// through the identity cache.
type FootprintView struct {
	UserID    int64     `json:"user_id"`
	OwnerID   int64     `json:"owner_id"`
	OwnerNick string    `json:"owner_nick,omitempty"`
	Date      string    `json:"date"`
	Updated   time.Time `json:"updated"`
}

// HomeTimeline is the assembled home-page view model.
type HomeTimeline struct {
	User              *model.User      `json:"user"`
	Profile           *model.Profile   `json:"profile,omitempty"`
	Entries           []*EntryView     `json:"entries"`
	CommentsForMe     []*model.Comment `json:"comments_for_me"`
	EntriesOfFriends  []*EntryView     `json:"entries_of_friends"`
	CommentsOfFriends []*model.Comment `json:"comments_of_friends"`
	FriendCount       int64            `json:"friend_count"`
	Footprints        []*FootprintView `json:"footprints"`
}

// ProfileView is the single-owner variant of the home view.
type ProfileView struct {
	Owner     *model.User    `json:"owner"`
	Profile   *model.Profile `json:"profile,omitempty"`
	Entries   []*EntryView   `json:"entries"`
	Permitted bool           `json:"permitted"`
}

// DiaryView lists one owner's entries.
type DiaryView struct {
	Owner   *model.User  `json:"owner"`
	Entries []*EntryView `json:"entries"`
	Myself  bool         `json:"myself"`
}

// EntryDetail is a single entry with its comments.
type EntryDetail struct {
	Owner    *model.User      `json:"owner"`
	Entry    *EntryView       `json:"entry"`
	Comments []*model.Comment `json:"comments"`
}

// TimelineService composes the read-path views. Each aggregation is a
// sequence of bounded store reads; a failing sub-query aborts the whole view.
type TimelineService interface {
	Home(ctx context.Context, viewer *model.User) (*HomeTimeline, error)
	Profile(ctx context.Context, viewer *model.User, accountName string) (*ProfileView, error)
	Diary(ctx context.Context, viewer *model.User, accountName string) (*DiaryView, error)
	Entry(ctx context.Context, viewer *model.User, entryID int64) (*EntryDetail, error)
}

type timelineService struct {
	cfg        config.TimelineConfig
	entries    repository.EntryRepository
	comments   repository.CommentRepository
	profiles   repository.ProfileRepository
	graph      GraphService
	footprints FootprintService
	identity   IdentityService
}

func NewTimelineService(
	cfg config.TimelineConfig,
	entries repository.EntryRepository,
	comments repository.CommentRepository,
	profiles repository.ProfileRepository,
	graph GraphService,
	footprints FootprintService,
	identity IdentityService,
) TimelineService {
	return &timelineService{
		cfg:        cfg,
		entries:    entries,
		comments:   comments,
		profiles:   profiles,
		graph:      graph,
		footprints: footprints,
		identity:   identity,
	}
}

func entryView(e *model.Entry, withContent bool) *EntryView {
	title, content := model.SplitBody(e.Body)
	v := &EntryView{
		ID:        e.ID,
		UserID:    e.UserID,
		Private:   e.Private,
		Title:     title,
		CreatedAt: e.CreatedAt,
	}
	if withContent {
		v.Content = content
	}
	return v
}

func entryViews(entries []*model.Entry) []*EntryView {
	views := make([]*EntryView, len(entries))
	for i, e := range entries {
		views[i] = entryView(e, true)
	}
	return views
}

func (s *timelineService) Home(ctx context.Context, viewer *model.User) (*HomeTimeline, error) {
	profile, err := s.profiles.Get(ctx, viewer.ID)
	if err != nil {
		return nil, err
	}

	own, err := s.entries.ListByOwner(ctx, viewer.ID, true, s.cfg.OwnEntries)
	if err != nil {
		return nil, err
	}

	commentsForMe, err := s.comments.ListReceived(ctx, viewer.ID, s.cfg.CommentsForMe)
	if err != nil {
		return nil, err
	}

	friendIDs, err := s.graph.FriendIDs(ctx, viewer.ID)
	if err != nil {
		return nil, err
	}
	friendSet := make(map[int64]bool, len(friendIDs))
	for _, id := range friendIDs {
		friendSet[id] = true
	}

	feedEntries, err := s.friendsEntries(ctx, friendSet)
	if err != nil {
		return nil, err
	}

	feedComments, err := s.friendsComments(ctx, viewer.ID, friendSet)
	if err != nil {
		return nil, err
	}

	visits, err := s.footprints.RecentVisits(ctx, viewer.ID, s.cfg.HomeFootprints)
	if err != nil {
		return nil, err
	}
	footprints, err := s.footprintViews(ctx, visits)
	if err != nil {
		return nil, err
	}

	return &HomeTimeline{
		User:              viewer,
		Profile:           profile,
		Entries:           entryViews(own),
		CommentsForMe:     commentsForMe,
		EntriesOfFriends:  feedEntries,
		CommentsOfFriends: feedComments,
		FriendCount:       int64(len(friendIDs)),
		Footprints:        footprints,
	}, nil
}

// friendsEntries scans the most recent ScanWindow entries system-wide and
// keeps entries authored by friends, stopping at FeedEntries or when the
// window is exhausted. Feed items carry the title only.
func (s *timelineService) friendsEntries(ctx context.Context, friendSet map[int64]bool) ([]*EntryView, error) {
	recent, err := s.entries.ListRecent(ctx, s.cfg.ScanWindow)
	if err != nil {
		return nil, err
	}
	feed := make([]*EntryView, 0, s.cfg.FeedEntries)
	for _, e := range recent {
		if !friendSet[e.UserID] {
			continue
		}
		feed = append(feed, entryView(e, false))
		if len(feed) >= s.cfg.FeedEntries {
			break
		}
	}
	return feed, nil
}

// friendsComments scans the most recent ScanWindow comments, keeps those
// authored by friends, and gates comments on private entries by the viewer's
// permission. Parent entries are loaded with one batched query instead of
// one lookup per comment.
func (s *timelineService) friendsComments(ctx context.Context, viewerID int64, friendSet map[int64]bool) ([]*model.Comment, error) {
	recent, err := s.comments.ListRecent(ctx, s.cfg.ScanWindow)
	if err != nil {
		return nil, err
	}

	candidates := make([]*model.Comment, 0, len(recent))
	entryIDs := make([]int64, 0, len(recent))
	seen := make(map[int64]bool)
	for _, c := range recent {
		if !friendSet[c.UserID] {
			continue
		}
		candidates = append(candidates, c)
		if !seen[c.EntryID] {
			seen[c.EntryID] = true
			entryIDs = append(entryIDs, c.EntryID)
		}
	}

	parents, err := s.entries.GetByIDs(ctx, entryIDs)
	if err != nil {
		return nil, err
	}
	parentByID := make(map[int64]*model.Entry, len(parents))
	for _, e := range parents {
		parentByID[e.ID] = e
	}

	feed := make([]*model.Comment, 0, s.cfg.FeedComments)
	for _, c := range candidates {
		parent, ok := parentByID[c.EntryID]
		if !ok {
			continue
		}
		if parent.Private && parent.UserID != viewerID && !friendSet[parent.UserID] {
			continue
		}
		feed = append(feed, c)
		if len(feed) >= s.cfg.FeedComments {
			break
		}
	}
	return feed, nil
}

func (s *timelineService) footprintViews(ctx context.Context, visits []*model.GroupedFootprint) ([]*FootprintView, error) {
	ownerIDs := make([]int64, 0, len(visits))
	seen := make(map[int64]bool)
	for _, v := range visits {
		if !seen[v.OwnerID] {
			seen[v.OwnerID] = true
			ownerIDs = append(ownerIDs, v.OwnerID)
		}
	}
	owners, err := s.identity.GetUsers(ctx, ownerIDs)
	if err != nil {
		return nil, err
	}
	views := make([]*FootprintView, len(visits))
	for i, v := range visits {
		view := &FootprintView{
			UserID:  v.UserID,
			OwnerID: v.OwnerID,
			Date:    v.Date,
			Updated: v.Updated,
		}
		if owner, ok := owners[v.OwnerID]; ok {
			view.OwnerNick = owner.NickName
		}
		views[i] = view
	}
	return views, nil
}

func (s *timelineService) Profile(ctx context.Context, viewer *model.User, accountName string) (*ProfileView, error) {
	owner, err := s.identity.GetUserByAccountName(ctx, accountName)
	if err != nil {
		return nil, err
	}
	profile, err := s.profiles.Get(ctx, owner.ID)
	if err != nil {
		return nil, err
	}
	permitted, err := s.graph.Permitted(ctx, owner.ID, viewer.ID)
	if err != nil {
		return nil, err
	}
	entries, err := s.entries.ListByOwner(ctx, owner.ID, permitted, s.cfg.ProfileEntries)
	if err != nil {
		return nil, err
	}
	return &ProfileView{
		Owner:     owner,
		Profile:   profile,
		Entries:   entryViews(entries),
		Permitted: permitted,
	}, nil
}

func (s *timelineService) Diary(ctx context.Context, viewer *model.User, accountName string) (*DiaryView, error) {
	owner, err := s.identity.GetUserByAccountName(ctx, accountName)
	if err != nil {
		return nil, err
	}
	permitted, err := s.graph.Permitted(ctx, owner.ID, viewer.ID)
	if err != nil {
		return nil, err
	}
	entries, err := s.entries.ListByOwner(ctx, owner.ID, permitted, s.cfg.DiaryEntries)
	if err != nil {
		return nil, err
	}
	return &DiaryView{
		Owner:   owner,
		Entries: entryViews(entries),
		Myself:  viewer.ID == owner.ID,
	}, nil
}

func (s *timelineService) Entry(ctx context.Context, viewer *model.User, entryID int64) (*EntryDetail, error) {
	entry, err := s.entries.GetByID(ctx, entryID)
	if err != nil {
		return nil, notFoundOr(err)
	}
	owner, err := s.identity.GetUser(ctx, entry.UserID)
	if err != nil {
		return nil, err
	}
	if entry.Private {
		permitted, err := s.graph.Permitted(ctx, owner.ID, viewer.ID)
		if err != nil {
			return nil, err
		}
		if !permitted {
			return nil, ErrPermissionDenied
		}
	}
	comments, err := s.comments.ListByEntry(ctx, entry.ID)
	if err != nil {
		return nil, err
	}
	return &EntryDetail{
		Owner:    owner,
		Entry:    entryView(entry, true),
		Comments: comments,
	}, nil
}
