package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	"go.uber.org/zap"

	"github.com/d60-Lab/sns-timeline/config"
	"github.com/d60-Lab/sns-timeline/internal/api"
	"github.com/d60-Lab/sns-timeline/internal/api/handler"
	"github.com/d60-Lab/sns-timeline/internal/cache"
	"github.com/d60-Lab/sns-timeline/internal/model"
	"github.com/d60-Lab/sns-timeline/internal/repository"
	"github.com/d60-Lab/sns-timeline/internal/service"
	rediscache "github.com/d60-Lab/sns-timeline/pkg/cache"
	"github.com/d60-Lab/sns-timeline/pkg/database"
	"github.com/d60-Lab/sns-timeline/pkg/logger"
	"github.com/d60-Lab/sns-timeline/pkg/tracing"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log, err := logger.New(cfg.Log.Level)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	db, err := database.InitDB(cfg)
	if err != nil {
		log.Fatal("open database", zap.Error(err))
	}
	if err := db.AutoMigrate(
		&model.User{}, &model.Profile{}, &model.Entry{},
		&model.Comment{}, &model.Relation{}, &model.Footprint{},
	); err != nil {
		log.Fatal("migrate", zap.Error(err))
	}

	redisClient, err := rediscache.InitRedis(cfg)
	if err != nil {
		log.Fatal("connect redis", zap.Error(err))
	}

	sentryEnabled := cfg.Sentry.DSN != ""
	if sentryEnabled {
		if err := sentry.Init(sentry.ClientOptions{Dsn: cfg.Sentry.DSN}); err != nil {
			log.Fatal("init sentry", zap.Error(err))
		}
		defer sentry.Flush(2 * time.Second)
	}

	tracingEnabled := cfg.Tracing.OTLPEndpoint != ""
	if tracingEnabled {
		shutdown, err := tracing.Init(context.Background(), "sns-timeline", cfg.Tracing.OTLPEndpoint)
		if err != nil {
			log.Fatal("init tracing", zap.Error(err))
		}
		defer shutdown(context.Background())
	}

	identityCache := cache.NewIdentityCache(redisClient)

	userRepo := repository.NewUserRepository(db)
	profileRepo := repository.NewProfileRepository(db)
	entryRepo := repository.NewEntryRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	relationRepo := repository.NewRelationRepository(db)
	footprintRepo := repository.NewFootprintRepository(db)

	identitySvc := service.NewIdentityService(userRepo, identityCache, cfg.Identity.Strict)
	authSvc := service.NewAuthService(userRepo, identityCache)
	graphSvc := service.NewGraphService(relationRepo)
	footprintSvc := service.NewFootprintService(footprintRepo)
	timelineSvc := service.NewTimelineService(cfg.Timeline, entryRepo, commentRepo, profileRepo, graphSvc, footprintSvc, identitySvc)
	diarySvc := service.NewDiaryService(entryRepo, commentRepo, graphSvc)
	profileSvc := service.NewProfileService(profileRepo)
	adminSvc := service.NewAdminService(relationRepo, footprintRepo, entryRepo, commentRepo)

	h := handler.New(
		log, authSvc, identitySvc, timelineSvc, diarySvc, profileSvc,
		graphSvc, footprintSvc, adminSvc,
		cfg.Auth.JWTSecret, cfg.Auth.TokenTTL, cfg.Timeline.PageFootprints,
	)
	router := api.NewRouter(cfg, h, identitySvc, sentryEnabled, tracingEnabled)

	srv := &http.Server{Addr: cfg.Server.Addr, Handler: router}
	go func() {
		log.Info("listening", zap.String("addr", cfg.Server.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("serve", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("shutdown", zap.Error(err))
	}
}
