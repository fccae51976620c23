package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// CookieName is the http-only cookie carrying the session token. The same
// cookie authenticates REST requests and the websocket handshake.
const CookieName = "jwt"

// SetAuthCookie attaches the session token to the response.
func SetAuthCookie(c *gin.Context, token string, secure bool) {
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(TokenTTL.Seconds()),
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteStrictMode,
	})
}

// ClearAuthCookie expires the session cookie.
func ClearAuthCookie(c *gin.Context) {
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
}

// TokenFromRequest extracts the session token from the request's cookies.
// Used by both the REST middleware and the websocket upgrade, which receives
// the cookie in the handshake headers rather than an Authorization slot.
func TokenFromRequest(r *http.Request) (string, error) {
	cookie, err := r.Cookie(CookieName)
	if err != nil || cookie.Value == "" {
		return "", ErrNoToken
	}
	return cookie.Value, nil
}
