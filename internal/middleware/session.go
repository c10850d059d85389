package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/rpatel-116/uniclash/internal/session"
)

const (
	// CurrentSessionKey is the gin context key holding the resolved session.
	CurrentSessionKey = "current_session"
	// SessionTokenKey holds the raw cookie token, needed by logout.
	SessionTokenKey = "session_token"
)

// SessionMiddleware resolves the session cookie against the store and, when a
// live session exists, attaches it to the request context. It never rejects:
// routes that require authentication layer rmiddleware.Require on top.
func SessionMiddleware(store *session.Store, cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(cookieName)
		if err == nil && token != "" {
			if s, ok := store.Get(token); ok {
				c.Set(CurrentSessionKey, s)
				c.Set(SessionTokenKey, token)
			}
		}
		c.Next()
	}
}

// GetSession returns the session attached to the request, if any.
func GetSession(c *gin.Context) (*session.Session, bool) {
	val, exists := c.Get(CurrentSessionKey)
	if !exists {
		return nil, false
	}
	s, ok := val.(session.Session)
	if !ok {
		return nil, false
	}
	return &s, true
}

// GetSessionToken returns the raw token the current session was resolved from.
func GetSessionToken(c *gin.Context) (string, bool) {
	val, exists := c.Get(SessionTokenKey)
	if !exists {
		return "", false
	}
	token, ok := val.(string)
	return token, ok
}
