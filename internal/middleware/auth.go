package middleware

import (
	"context"
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"carrental/internal/response"
	"carrental/internal/security"
)

type TokenResolver interface {
	ResolveToken(ctx context.Context, token string) (security.Identity, error)
}

// Authenticate attaches the bearer token's identity to the request context.
// It never rejects: a missing or invalid token leaves the request anonymous
// and Gate decides whether that is acceptable.
func Authenticate(resolver TokenResolver, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			c.Next()
			return
		}

		identity, err := resolver.ResolveToken(c.Request.Context(), token)
		if err != nil {
			if !errors.Is(err, security.ErrInvalidToken) {
				log.Error().Err(err).Str("path", c.Request.URL.Path).Msg("token resolution failed")
			}
			c.Next()
			return
		}

		c.Request = c.Request.WithContext(security.WithIdentity(c.Request.Context(), identity))
		c.Next()
	}
}

// Gate rejects anonymous requests to paths outside the public allow-list.
func Gate(public *security.PublicRoutes) gin.HandlerFunc {
	return func(c *gin.Context) {
		if public.Match(c.Request.URL.Path) {
			c.Next()
			return
		}
		if _, ok := security.IdentityFrom(c.Request.Context()); !ok {
			response.Unauthorized(c)
			return
		}
		c.Next()
	}
}

func bearerToken(header string) (string, bool) {
	const prefix = "Bearer "
	if len(header) <= len(prefix) || !strings.EqualFold(header[:len(prefix)], prefix) {
		return "", false
	}
	token := strings.TrimSpace(header[len(prefix):])
	return token, token != ""
}
