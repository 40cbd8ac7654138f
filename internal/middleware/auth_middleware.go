// internal/middleware/auth_middleware.go
package middleware

import (
	"net/http"
	"strings"

	"humsafar-service/internal/pkg/jwt"
	"humsafar-service/internal/pkg/response"
	"humsafar-service/internal/service/identitymirror"

	"github.com/gin-gonic/gin"
)

type AuthMiddleware struct {
	verifier        *jwt.Verifier
	identityService *identitymirror.IdentityService
}

func NewAuthMiddleware(verifier *jwt.Verifier, identityService *identitymirror.IdentityService) *AuthMiddleware {
	return &AuthMiddleware{
		verifier:        verifier,
		identityService: identityService,
	}
}

// Auth validates the bearer token and mirrors the verified claims into the
// local identities table, so every foreign key onto identities has a target
// by the time a handler runs.
func (m *AuthMiddleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			response.Unauthorized(c, "missing authorization token")
			return
		}

		claims, err := m.verifier.Verify(token)
		if err != nil {
			response.Unauthorized(c, "invalid or expired token")
			return
		}

		if _, err := m.identityService.Mirror(c.Request.Context(), claims.Subject, claims.Username, claims.FullName, claims.IsStaff); err != nil {
			response.Error(c, http.StatusInternalServerError, "failed to record identity", err)
			return
		}

		// Set user context
		c.Set("identity_id", claims.Subject)
		c.Set("username", claims.Username)
		c.Set("is_staff", claims.IsStaff)

		c.Next()
	}
}

// extractToken extracts Bearer token from Authorization header
func extractToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader != "" {
		parts := strings.Split(authHeader, " ")
		if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
			return parts[1]
		}
	}
	return ""
}

// GetIdentityID returns the acting identity id from context
func GetIdentityID(c *gin.Context) (string, bool) {
	identityID, exists := c.Get("identity_id")
	if !exists {
		return "", false
	}

	id, ok := identityID.(string)
	return id, ok
}
