package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/d60-Lab/sns-timeline/internal/cache"
	"github.com/d60-Lab/sns-timeline/internal/model"
	"github.com/d60-Lab/sns-timeline/internal/repository"
	"github.com/d60-Lab/sns-timeline/internal/service"
)

const testSecret = "test-secret"

func setupAuthRouter(t *testing.T) (*gin.Engine, *model.User) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.User{}))
	user := &model.User{AccountName: "alice", NickName: "アリス", Email: "alice@example.com", Passhash: "x"}
	require.NoError(t, db.Create(user).Error)

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	identity := service.NewIdentityService(repository.NewUserRepository(db), cache.NewIdentityCache(client), false)

	r := gin.New()
	r.GET("/me", Auth(testSecret, identity), func(c *gin.Context) {
		c.JSON(http.StatusOK, CurrentUser(c))
	})
	return r, user
}

func TestAuthResolvesViewer(t *testing.T) {
	r, user := setupAuthRouter(t)

	token, err := IssueToken(testSecret, user.ID, time.Minute)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "alice")
}

func TestAuthRejectsMissingToken(t *testing.T) {
	r, _ := setupAuthRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthRejectsUnknownViewer(t *testing.T) {
	r, _ := setupAuthRouter(t)

	token, err := IssueToken(testSecret, 999, time.Minute)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthRejectsBadSignature(t *testing.T) {
	r, user := setupAuthRouter(t)

	token, err := IssueToken("other-secret", user.ID, time.Minute)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusUnauthorized, w.Code)
}
