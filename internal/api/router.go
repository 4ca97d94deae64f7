package api

import (
	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/d60-Lab/sns-timeline/config"
	"github.com/d60-Lab/sns-timeline/internal/api/handler"
	"github.com/d60-Lab/sns-timeline/internal/api/middleware"
	"github.com/d60-Lab/sns-timeline/internal/model"
	"github.com/d60-Lab/sns-timeline/internal/service"
)

// NewRouter assembles the gin engine. Sentry and tracing middleware attach
// only when the deployment configures them.
func NewRouter(cfg *config.Config, h *handler.Handler, identity service.IdentityService, sentryEnabled, tracingEnabled bool) *gin.Engine {
	registerValidations()

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.RateLimit(cfg.Server.RateLimit, cfg.Server.RateBurst))
	r.Use(gzip.Gzip(gzip.DefaultCompression))
	if tracingEnabled {
		r.Use(otelgin.Middleware("sns-timeline"))
	}
	if sentryEnabled {
		r.Use(sentrygin.New(sentrygin.Options{Repanic: true}))
	}

	r.POST("/login", h.Login)
	r.GET("/logout", h.Logout)
	r.GET("/initialize", h.Initialize)

	authed := r.Group("/", middleware.Auth(cfg.Auth.JWTSecret, identity))
	{
		authed.GET("/", h.Home)
		authed.GET("/profile/:account_name", h.Profile)
		authed.POST("/profile/:account_name", h.UpdateProfile)
		authed.GET("/diary/entries/:account_name", h.DiaryEntries)
		authed.GET("/diary/entry/:entry_id", h.DiaryEntry)
		authed.POST("/diary/entry", h.PostEntry)
		authed.POST("/diary/comment/:entry_id", h.PostComment)
		authed.GET("/footprints", h.Footprints)
		authed.GET("/friends", h.ListFriends)
		authed.POST("/friends/:account_name", h.AddFriend)
	}

	return r
}

// registerValidations adds the prefcode rule used by profile updates.
func registerValidations() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("prefcode", func(fl validator.FieldLevel) bool {
			code := fl.Field().Int()
			return code >= 0 && code < int64(len(model.Prefectures))
		})
	}
}
