package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/imovia/api/internal/auth"
	"github.com/imovia/api/internal/models"
)

const (
	// CurrentUserKey is the context key for the authenticated user.
	CurrentUserKey = "current_user"
)

// UserLoader resolves a token subject to the current user record. Looking
// the account up on every request means deleted accounts lose access
// immediately and role changes take effect without reissuing tokens.
type UserLoader interface {
	LoadUser(c *gin.Context, id string) (*models.User, error)
}

// authenticate extracts and verifies the Bearer token, then loads the
// account. Returns nil without error when no token is present.
func authenticate(c *gin.Context, issuer *auth.TokenIssuer, loader UserLoader) (*models.User, error) {
	header := c.GetHeader("Authorization")
	if header == "" {
		return nil, nil
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		return nil, auth.ErrInvalidToken
	}

	claims, err := issuer.Verify(parts[1])
	if err != nil {
		return nil, err
	}

	user, err := loader.LoadUser(c, claims.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		// Token subject no longer exists.
		return nil, auth.ErrInvalidToken
	}
	return user, nil
}

// RequireAuth rejects requests without a valid session token. The loaded
// user is stored in the context for handlers.
func RequireAuth(issuer *auth.TokenIssuer, loader UserLoader) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := authenticate(c, issuer, loader)
		if err != nil || user == nil {
			requestID := GetRequestID(c)
			if log := GetLogger(c); log != nil {
				log.Warn("Unauthenticated request rejected", map[string]interface{}{
					"path":       c.Request.URL.Path,
					"request_id": requestID,
				})
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": gin.H{
					"code":       "UNAUTHORIZED",
					"message":    "Authentication required",
					"request_id": requestID,
				},
			})
			return
		}

		c.Set(CurrentUserKey, user)
		c.Next()
	}
}

// OptionalAuth loads the current user when a valid token is present and
// continues anonymously otherwise. Used by endpoints whose response is
// richer for authenticated callers.
func OptionalAuth(issuer *auth.TokenIssuer, loader UserLoader) gin.HandlerFunc {
	return func(c *gin.Context) {
		if user, err := authenticate(c, issuer, loader); err == nil && user != nil {
			c.Set(CurrentUserKey, user)
		}
		c.Next()
	}
}

// GetCurrentUser retrieves the authenticated user from the Gin context.
// Returns nil for anonymous requests.
func GetCurrentUser(c *gin.Context) *models.User {
	if v, exists := c.Get(CurrentUserKey); exists {
		if user, ok := v.(*models.User); ok {
			return user
		}
	}
	return nil
}
