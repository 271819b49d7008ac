package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	jwtsvc "makeupstudio/internal/pkg/jwt"
)

// AdminVerifier re-checks on every request that the token's subject is still
// an allow-listed admin with an existing profile row.
type AdminVerifier interface {
	VerifyAdmin(ctx context.Context, adminID int64, email string) error
}

// RequireAdmin gates the admin surface. It fails closed: a valid session that
// is not an allow-listed admin gets signed_out=true and a redirect to the
// login surface, and the protected handler never runs.
func RequireAdmin(jwt *jwtsvc.Service, verifier AdminVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := bearerClaims(c, jwt)
		if !ok {
			abortToLogin(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
			return
		}

		if err := verifier.VerifyAdmin(c.Request.Context(), claims.AdminID, claims.Email); err != nil {
			abortToLogin(c, http.StatusForbidden, "FORBIDDEN", "Not authorized for the admin area")
			return
		}

		c.Set("admin_id", claims.AdminID)
		c.Set("email", claims.Email)
		c.Next()
	}
}

// OptionalAuth attaches the session identity when a valid token is presented
// and stays silent otherwise. Used by the public booking endpoint to link a
// booking to a logged-in client.
func OptionalAuth(jwt *jwtsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		if claims, ok := bearerClaims(c, jwt); ok {
			c.Set("admin_id", claims.AdminID)
			c.Set("email", claims.Email)
		}
		c.Next()
	}
}

func bearerClaims(c *gin.Context, jwt *jwtsvc.Service) (*jwtsvc.Claims, bool) {
	h := c.GetHeader("Authorization")
	if !strings.HasPrefix(h, "Bearer ") {
		return nil, false
	}
	tokenStr := strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
	if tokenStr == "" {
		return nil, false
	}
	claims, err := jwt.ValidateToken(tokenStr)
	if err != nil {
		return nil, false
	}
	return claims, true
}

func abortToLogin(c *gin.Context, status int, code, message string) {
	c.AbortWithStatusJSON(status, gin.H{
		"success": false,
		"error": gin.H{
			"code":    code,
			"message": message,
		},
		"signed_out": true,
		"redirect":   "/login",
	})
}
