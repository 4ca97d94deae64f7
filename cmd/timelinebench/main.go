package main

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"os"
	"sort"
	"strconv"
	"time"

	"github.com/d60-Lab/sns-timeline/config"
	"github.com/d60-Lab/sns-timeline/internal/cache"
	"github.com/d60-Lab/sns-timeline/internal/model"
	"github.com/d60-Lab/sns-timeline/internal/repository"
	"github.com/d60-Lab/sns-timeline/internal/service"
	rediscache "github.com/d60-Lab/sns-timeline/pkg/cache"
	"github.com/d60-Lab/sns-timeline/pkg/database"
)

func must[T any](v T, err error) T { if err != nil { panic(err) }; return v }
func mustDo(err error) { if err != nil { panic(err) } }

func pct(vs []time.Duration, p float64) time.Duration {
	if len(vs) == 0 { return 0 }
	xs := append([]time.Duration(nil), vs...)
	sort.Slice(xs, func(i, j int) bool { return xs[i] < xs[j] })
	k := int(math.Ceil(p*float64(len(xs)))) - 1
	if k < 0 { k = 0 }
	if k >= len(xs) { k = len(xs)-1 }
	return xs[k]
}

func envInt(name string, def int) int {
	if s := os.Getenv(name); s != "" { if v, e := strconv.Atoi(s); e == nil && v > 0 { return v } }
	return def
}

// Seeds a population and measures home-aggregation latency: per request the
// own-entries window, the joined comments-for-me read, two bounded 1000-row
// scans and the grouped footprint read.
func main() {
	ctx := context.Background()
	cfg := must(config.Load())
	db := must(database.InitDB(cfg))
	redisClient := must(rediscache.InitRedis(cfg))

	USERS := envInt("USERS", 2000)
	FRIENDS := envInt("FRIENDS", 50)
	ENTRIES := envInt("ENTRIES", 20000)
	COMMENTS := envInt("COMMENTS", 40000)
	REQS := envInt("REQS", 500)

	// clean tables for a reproducible run (ok for local bench)
	_ = db.Exec("TRUNCATE TABLE footprints, relations, comments, entries, profiles, users RESTART IDENTITY CASCADE").Error
	mustDo(db.AutoMigrate(&model.User{}, &model.Profile{}, &model.Entry{}, &model.Comment{}, &model.Relation{}, &model.Footprint{}))

	fmt.Println("seeding...")
	users := make([]*model.User, USERS)
	for i := range users {
		users[i] = &model.User{
			AccountName: fmt.Sprintf("user_%d", i),
			NickName:    fmt.Sprintf("ユーザ%d", i),
			Email:       fmt.Sprintf("user_%d@example.com", i),
			Passhash:    "x",
		}
	}
	mustDo(db.CreateInBatches(users, 1000).Error)

	relationRepo := repository.NewRelationRepository(db)
	for i := 0; i < USERS; i++ {
		for f := 0; f < FRIENDS/2; f++ {
			other := rand.Intn(USERS)
			if other == i { continue }
			_ = relationRepo.CreatePair(ctx, users[i].ID, users[other].ID)
		}
	}

	entries := make([]*model.Entry, ENTRIES)
	for i := range entries {
		entries[i] = &model.Entry{
			UserID:  users[rand.Intn(USERS)].ID,
			Private: rand.Intn(10) == 0,
			Body:    fmt.Sprintf("entry %d\nbody of entry %d", i, i),
		}
	}
	mustDo(db.CreateInBatches(entries, 1000).Error)

	comments := make([]*model.Comment, COMMENTS)
	for i := range comments {
		comments[i] = &model.Comment{
			EntryID: entries[rand.Intn(ENTRIES)].ID,
			UserID:  users[rand.Intn(USERS)].ID,
			Comment: fmt.Sprintf("comment %d", i),
		}
	}
	mustDo(db.CreateInBatches(comments, 1000).Error)

	identityCache := cache.NewIdentityCache(redisClient)
	for _, u := range users {
		mustDo(identityCache.Put(ctx, u))
	}

	userRepo := repository.NewUserRepository(db)
	entryRepo := repository.NewEntryRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	profileRepo := repository.NewProfileRepository(db)
	footprintRepo := repository.NewFootprintRepository(db)

	identitySvc := service.NewIdentityService(userRepo, identityCache, false)
	graphSvc := service.NewGraphService(relationRepo)
	footprintSvc := service.NewFootprintService(footprintRepo)
	timelineSvc := service.NewTimelineService(cfg.Timeline, entryRepo, commentRepo, profileRepo, graphSvc, footprintSvc, identitySvc)

	fmt.Printf("running %d home aggregations...\n", REQS)
	lat := make([]time.Duration, 0, REQS)
	for i := 0; i < REQS; i++ {
		viewer := users[rand.Intn(USERS)]
		start := time.Now()
		if _, err := timelineSvc.Home(ctx, viewer); err != nil {
			panic(err)
		}
		lat = append(lat, time.Since(start))
	}

	var total time.Duration
	for _, d := range lat { total += d }
	fmt.Printf("avg=%v p50=%v p95=%v p99=%v max=%v\n",
		total/time.Duration(len(lat)), pct(lat, 0.50), pct(lat, 0.95), pct(lat, 0.99), pct(lat, 1.0))
}
