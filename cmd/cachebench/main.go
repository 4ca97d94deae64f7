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

// Compares identity lookups with a warm cache against cold-cache lookups
// that fall back to the relational store.
func main() {
	ctx := context.Background()
	cfg := must(config.Load())
	db := must(database.InitDB(cfg))
	redisClient := must(rediscache.InitRedis(cfg))

	USERS := 10000
	LOOKUPS := 20000
	if s := os.Getenv("USERS"); s != "" { if v, e := strconv.Atoi(s); e == nil && v > 0 { USERS = v } }
	if s := os.Getenv("LOOKUPS"); s != "" { if v, e := strconv.Atoi(s); e == nil && v > 0 { LOOKUPS = v } }

	_ = db.Exec("TRUNCATE TABLE users RESTART IDENTITY CASCADE").Error
	mustDo(db.AutoMigrate(&model.User{}))

	fmt.Printf("seeding %d users...\n", USERS)
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

	identityCache := cache.NewIdentityCache(redisClient)
	userRepo := repository.NewUserRepository(db)
	identitySvc := service.NewIdentityService(userRepo, identityCache, false)

	run := func(label string) {
		lat := make([]time.Duration, 0, LOOKUPS)
		for i := 0; i < LOOKUPS; i++ {
			id := users[rand.Intn(USERS)].ID
			start := time.Now()
			if _, err := identitySvc.GetUser(ctx, id); err != nil {
				panic(err)
			}
			lat = append(lat, time.Since(start))
		}
		fmt.Printf("%s: p50=%v p95=%v p99=%v\n", label, pct(lat, 0.50), pct(lat, 0.95), pct(lat, 0.99))
	}

	mustDo(redisClient.FlushDB(ctx).Err())
	run("cold cache (store fallback + backfill)")

	// every id is now backfilled
	run("warm cache")
}
