package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"pingo/backend/internal/api/middleware"
	"pingo/backend/internal/auth"
	"pingo/backend/internal/models"
	"pingo/backend/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var secret = []byte("test-secret")

type fakeUsers struct {
	users map[uint]*models.User
}

func (f *fakeUsers) GetUserByID(id uint) (*models.User, error) {
	user, ok := f.users[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return user, nil
}

func newTestRouter(users middleware.UserGetter) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/me", middleware.ProtectRoute(secret, users), func(c *gin.Context) {
		c.JSON(http.StatusOK, middleware.CurrentUser(c).Profile())
	})
	return r
}

func TestProtectRoute_ValidCookie(t *testing.T) {
	users := &fakeUsers{users: map[uint]*models.User{7: {ID: 7, FullName: "Ann"}}}
	r := newTestRouter(users)

	token, err := auth.GenerateToken(7, secret)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.AddCookie(&http.Cookie{Name: auth.CookieName, Value: token})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"Ann"`)
}

func TestProtectRoute_MissingCookie(t *testing.T) {
	r := newTestRouter(&fakeUsers{})

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestProtectRoute_InvalidToken(t *testing.T) {
	r := newTestRouter(&fakeUsers{})

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.AddCookie(&http.Cookie{Name: auth.CookieName, Value: "garbage"})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestProtectRoute_UnknownUser(t *testing.T) {
	r := newTestRouter(&fakeUsers{})

	token, err := auth.GenerateToken(99, secret)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.AddCookie(&http.Cookie{Name: auth.CookieName, Value: token})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// The three failure modes are indistinguishable to the caller.
	assert.Contains(t, w.Body.String(), "Unauthorized")
}
