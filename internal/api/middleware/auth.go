package middleware

import (
	"net/http"

	"pingo/backend/internal/auth"
	"pingo/backend/internal/models"

	"github.com/gin-gonic/gin"
)

// ContextUserKey is where ProtectRoute stores the authenticated user.
const ContextUserKey = "user"

// UserGetter resolves an authenticated user ID to a full record.
type UserGetter interface {
	GetUserByID(id uint) (*models.User, error)
}

// ProtectRoute authenticates the request from the session cookie and loads
// the user into the Gin context. All failures collapse into a generic 401 so
// an unauthenticated observer cannot tell why the credential was rejected.
func ProtectRoute(secret []byte, users UserGetter) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := auth.TokenFromRequest(c.Request)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
			return
		}

		userID, err := auth.VerifyToken(token, secret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
			return
		}

		user, err := users.GetUserByID(userID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
			return
		}

		c.Set(ContextUserKey, user)
		c.Next()
	}
}

// CurrentUser pulls the authenticated user out of the context. It panics if
// ProtectRoute did not run, which would be a routing bug.
func CurrentUser(c *gin.Context) *models.User {
	return c.MustGet(ContextUserKey).(*models.User)
}
