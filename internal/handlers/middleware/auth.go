package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/userdash/dashboard-backend/internal/domain"
	"github.com/userdash/dashboard-backend/internal/domain/entities"
	"github.com/userdash/dashboard-backend/internal/domain/ports"
)

// ActorContextKey is where the authenticated actor is stored in the
// gin context.
const ActorContextKey = "actor"

// RequireAuth parses the bearer token and binds the acting user to the
// request. Requests without a valid token are rejected with 401.
func RequireAuth(tokens ports.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, found := strings.CutPrefix(header, "Bearer ")
		if !found || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			return
		}

		actor, err := tokens.Parse(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
			return
		}

		c.Set(ActorContextKey, actor)
		c.Next()
	}
}

// AdminOnly rejects requests whose actor is not an administrator.
// Must run after RequireAuth.
func AdminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		actor, ok := ActorFrom(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			return
		}
		if actor.Level != entities.LevelAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "admin access required"})
			return
		}
		c.Next()
	}
}

// ActorFrom returns the actor bound to the request, if any.
func ActorFrom(c *gin.Context) (domain.Actor, bool) {
	value, exists := c.Get(ActorContextKey)
	if !exists {
		return domain.Actor{}, false
	}
	actor, ok := value.(domain.Actor)
	return actor, ok
}
