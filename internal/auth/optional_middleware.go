package auth

import (
	"context"
	"strings"

	"gamereviews/backend/pkg/jwt"

	"github.com/gin-gonic/gin"
)

type contextKey struct{}

// SubjectFromContext returns the authenticated subject, or "" when the
// request carried no valid token.
func SubjectFromContext(ctx context.Context) string {
	subject, _ := ctx.Value(contextKey{}).(string)
	return subject
}

// WithSubject returns a copy of ctx carrying subject.
func WithSubject(ctx context.Context, subject string) context.Context {
	return context.WithValue(ctx, contextKey{}, subject)
}

// OptionalAuthMiddleware inspects for a token and sets the subject if present and valid,
// but does not fail if the token is missing or invalid.
// The subject is stored both on the gin context and on the request context,
// so GraphQL resolvers can see it.
func OptionalAuthMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader != "" && secret != "" {
			parts := strings.Split(authHeader, " ")
			if len(parts) == 2 && parts[0] == "Bearer" {
				if subject, err := jwt.ParseToken(parts[1], secret); err == nil {
					c.Set("subject", subject)
					c.Request = c.Request.WithContext(WithSubject(c.Request.Context(), subject))
				}
			}
		}
		c.Next()
	}
}
