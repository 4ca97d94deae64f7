package middleware

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/d60-Lab/sns-timeline/internal/model"
	"github.com/d60-Lab/sns-timeline/internal/service"
	"github.com/d60-Lab/sns-timeline/pkg/response"
)

const currentUserKey = "current_user"

// IssueToken mints the session token handed out at login.
func IssueToken(secret string, userID int64, ttl time.Duration) (string, error) {
	claims := jwt.RegisteredClaims{
		Subject:   strconv.FormatInt(userID, 10),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

// Auth is the session/auth gate: it extracts the viewer id from the bearer
// token and resolves the viewer record through the identity service. The
// core downstream trusts the resolved viewer as given.
func Auth(secret string, identity service.IdentityService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		raw, found := strings.CutPrefix(header, "Bearer ")
		if !found {
			c.AbortWithStatusJSON(401, response.Response{Code: 401, Message: "authentication required"})
			return
		}

		token, err := jwt.ParseWithClaims(raw, &jwt.RegisteredClaims{}, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, errors.New("unexpected signing method")
			}
			return []byte(secret), nil
		})
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(401, response.Response{Code: 401, Message: "authentication required"})
			return
		}
		claims := token.Claims.(*jwt.RegisteredClaims)
		userID, err := strconv.ParseInt(claims.Subject, 10, 64)
		if err != nil {
			c.AbortWithStatusJSON(401, response.Response{Code: 401, Message: "authentication required"})
			return
		}

		viewer, err := identity.GetUser(c.Request.Context(), userID)
		if err != nil {
			// A token for an id the identity layer cannot resolve (for
			// strict mode, a cold cache) reads as an expired session.
			if errors.Is(err, service.ErrContentNotFound) {
				c.AbortWithStatusJSON(401, response.Response{Code: 401, Message: "authentication required"})
				return
			}
			c.AbortWithStatusJSON(500, response.Response{Code: 500, Message: err.Error()})
			return
		}
		c.Set(currentUserKey, viewer)
		c.Next()
	}
}

// CurrentUser returns the viewer resolved by Auth.
func CurrentUser(c *gin.Context) *model.User {
	v, ok := c.Get(currentUserKey)
	if !ok {
		return nil
	}
	return v.(*model.User)
}
