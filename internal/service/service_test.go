package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/d60-Lab/sns-timeline/config"
	"github.com/d60-Lab/sns-timeline/internal/cache"
	"github.com/d60-Lab/sns-timeline/internal/model"
	"github.com/d60-Lab/sns-timeline/internal/repository"
)

func testTimelineConfig() config.TimelineConfig {
	return config.TimelineConfig{
		ScanWindow:     1000,
		OwnEntries:     5,
		CommentsForMe:  10,
		FeedEntries:    10,
		FeedComments:   10,
		HomeFootprints: 10,
		PageFootprints: 50,
		ProfileEntries: 5,
		DiaryEntries:   20,
	}
}

type testEnv struct {
	db    *gorm.DB
	cache *cache.IdentityCache

	users      repository.UserRepository
	profiles   repository.ProfileRepository
	entries    repository.EntryRepository
	comments   repository.CommentRepository
	relations  repository.RelationRepository
	footprints repository.FootprintRepository

	identity   IdentityService
	auth       AuthService
	graph      GraphService
	footprint  FootprintService
	timeline   TimelineService
	diary      DiaryService
	profileSvc ProfileService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&model.User{}, &model.Profile{}, &model.Entry{},
		&model.Comment{}, &model.Relation{}, &model.Footprint{},
	))

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	idCache := cache.NewIdentityCache(client)

	env := &testEnv{db: db, cache: idCache}
	env.users = repository.NewUserRepository(db)
	env.profiles = repository.NewProfileRepository(db)
	env.entries = repository.NewEntryRepository(db)
	env.comments = repository.NewCommentRepository(db)
	env.relations = repository.NewRelationRepository(db)
	env.footprints = repository.NewFootprintRepository(db)

	env.identity = NewIdentityService(env.users, idCache, false)
	env.auth = NewAuthService(env.users, idCache)
	env.graph = NewGraphService(env.relations)
	env.footprint = NewFootprintService(env.footprints)
	env.timeline = NewTimelineService(testTimelineConfig(), env.entries, env.comments, env.profiles, env.graph, env.footprint, env.identity)
	env.diary = NewDiaryService(env.entries, env.comments, env.graph)
	env.profileSvc = NewProfileService(env.profiles)
	return env
}

func (env *testEnv) createUser(t *testing.T, accountName string) *model.User {
	t.Helper()
	u := &model.User{
		AccountName: accountName,
		NickName:    accountName,
		Email:       fmt.Sprintf("%s@example.com", accountName),
		Passhash:    "x",
	}
	require.NoError(t, env.db.Create(u).Error)
	return u
}

func (env *testEnv) createEntry(t *testing.T, ownerID int64, body string, private bool, at time.Time) *model.Entry {
	t.Helper()
	e := &model.Entry{UserID: ownerID, Private: private, Body: body, CreatedAt: at}
	require.NoError(t, env.db.Create(e).Error)
	return e
}

func (env *testEnv) befriend(t *testing.T, a, b int64) {
	t.Helper()
	require.NoError(t, env.graph.AddFriend(context.Background(), a, b))
}
