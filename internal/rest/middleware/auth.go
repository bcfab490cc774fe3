package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/gordonblake/moviereviews/domain"
)

// UsernameKey is the gin context key under which the authenticated caller's
// username is stored.
const UsernameKey = "username"

// Auth gates protected routes. The web client sends the raw token in the
// Authorization header; the Bearer prefix is accepted too.
func Auth(verifier domain.TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := strings.TrimSpace(c.GetHeader("Authorization"))
		token := strings.TrimSpace(strings.TrimPrefix(raw, "Bearer "))

		identity, err := verifier.Verify(token)
		if err != nil {
			if errors.Is(err, domain.ErrNoToken) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": domain.ErrNoToken.Error()})
				return
			}
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": domain.ErrInvalidToken.Error()})
			return
		}

		c.Set(UsernameKey, identity.Username)
		c.Next()
	}
}
