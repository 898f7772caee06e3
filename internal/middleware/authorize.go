package middleware

import (
	"github.com/gin-gonic/gin"

	"carrental/internal/response"
	"carrental/internal/security"
)

// RequireRoles admits only identities holding one of roles. It must run
// after Authenticate.
func RequireRoles(roles ...string) gin.HandlerFunc {
	roleSet := make(map[string]struct{}, len(roles))
	for _, role := range roles {
		roleSet[role] = struct{}{}
	}

	return func(c *gin.Context) {
		identity, ok := security.IdentityFrom(c.Request.Context())
		if !ok {
			response.Unauthorized(c)
			return
		}
		if _, ok := roleSet[identity.Role]; !ok {
			response.Forbidden(c)
			return
		}
		c.Next()
	}
}
