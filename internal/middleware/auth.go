package middleware

import (
	"pinboard/internal/auth"
	"pinboard/internal/model"

	"github.com/gin-gonic/gin"
)

const CallerKey = "caller"

// Identify resolves the caller from the session cookie. It never rejects a
// request: a missing or invalid session leaves the caller anonymous.
func Identify(tokens *auth.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(auth.CookieName)
		if err == nil && token != "" {
			if identity, err := tokens.ParseToken(token); err == nil {
				c.Set(CallerKey, identity)
			}
		}
		c.Next()
	}
}

// Caller returns the identity set by Identify, or nil for an anonymous caller.
func Caller(c *gin.Context) *model.Identity {
	v, exists := c.Get(CallerKey)
	if !exists {
		return nil
	}
	identity, _ := v.(*model.Identity)
	return identity
}
