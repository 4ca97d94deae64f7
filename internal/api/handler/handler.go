package handler

import (
	"errors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/d60-Lab/sns-timeline/internal/service"
	"github.com/d60-Lab/sns-timeline/pkg/response"
)

// Handler bundles the services behind the HTTP surface.
type Handler struct {
	log        *zap.Logger
	auth       service.AuthService
	identity   service.IdentityService
	timeline   service.TimelineService
	diary      service.DiaryService
	profile    service.ProfileService
	graph      service.GraphService
	footprints service.FootprintService
	admin      service.AdminService

	jwtSecret      string
	tokenTTL       int
	pageFootprints int
}

func New(
	log *zap.Logger,
	auth service.AuthService,
	identity service.IdentityService,
	timeline service.TimelineService,
	diary service.DiaryService,
	profile service.ProfileService,
	graph service.GraphService,
	footprints service.FootprintService,
	admin service.AdminService,
	jwtSecret string,
	tokenTTL int,
	pageFootprints int,
) *Handler {
	return &Handler{
		log:            log,
		auth:           auth,
		identity:       identity,
		timeline:       timeline,
		diary:          diary,
		profile:        profile,
		graph:          graph,
		footprints:     footprints,
		admin:          admin,
		jwtSecret:      jwtSecret,
		tokenTTL:       tokenTTL,
		pageFootprints: pageFootprints,
	}
}

// respondError maps the service taxonomy onto HTTP statuses. Anything not in
// the taxonomy is a store failure and terminal for the request.
func (h *Handler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrAuthenticationFailed):
		response.Unauthorized(c, "login failed")
	case errors.Is(err, service.ErrPermissionDenied):
		response.Forbidden(c, "friends only")
	case errors.Is(err, service.ErrContentNotFound):
		response.NotFound(c, "requested content does not exist")
	case errors.Is(err, service.ErrFriendSelf):
		response.BadRequest(c, err.Error())
	default:
		h.log.Error("request failed", zap.String("path", c.FullPath()), zap.Error(err))
		response.InternalError(c, err)
	}
}
