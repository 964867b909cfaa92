package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/yoxaz-verse/obaol-rate-service/internal/domain"
)

const identityKey = "caller_identity"

// Identity reads the caller identity forwarded by the auth gateway. Requests
// without the headers, or with a role outside the known set, proceed as
// anonymous; the visibility rules treat anonymous as the most masked view.
func Identity() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetHeader("X-User-Id")
		role, ok := domain.ParseRole(c.GetHeader("X-User-Role"))
		if userID == "" || !ok {
			c.Set(identityKey, domain.Identity{})
			c.Next()
			return
		}
		c.Set(identityKey, domain.Identity{UserID: userID, Role: role})
		c.Next()
	}
}

func CallerIdentity(c *gin.Context) domain.Identity {
	if v, ok := c.Get(identityKey); ok {
		if id, ok := v.(domain.Identity); ok {
			return id
		}
	}
	return domain.Identity{}
}
