package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"talenthive_backend/internal/auth"
	"talenthive_backend/internal/models"
)

const (
	ContextUserIDKey = "userID"
	ContextRoleKey   = "role"

	AccessTokenCookie  = "accessToken"
	RefreshTokenCookie = "refreshToken"
)

// AuthMiddleware authenticates via the Authorization header or, for browser
// clients, the access token cookie.
func AuthMiddleware(tokens *auth.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr := bearerToken(c)
		if tokenStr == "" {
			if cookie, err := c.Cookie(AccessTokenCookie); err == nil {
				tokenStr = cookie
			}
		}
		if tokenStr == "" {
			abortUnauthorized(c, "Authentication required")
			return
		}

		claims, err := tokens.ParseToken(tokenStr)
		if err != nil {
			abortUnauthorized(c, "Invalid or expired token")
			return
		}

		c.Set(ContextUserIDKey, claims.UserID)
		c.Set(ContextRoleKey, claims.Role)
		c.Next()
	}
}

// RequireRoles rejects authenticated users whose role is not in the allow
// list.
func RequireRoles(roles ...models.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		roleVal, exists := c.Get(ContextRoleKey)
		if !exists {
			abortUnauthorized(c, "Authentication required")
			return
		}

		role := models.UserRole(roleVal.(string))
		for _, allowed := range roles {
			if role == allowed {
				c.Next()
				return
			}
		}

		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
			"statusCode": http.StatusForbidden,
			"data":       nil,
			"message":    "You do not have permission to perform this action",
			"success":    false,
		})
	}
}

func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return parts[1]
}

func abortUnauthorized(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"statusCode": http.StatusUnauthorized,
		"data":       nil,
		"message":    message,
		"success":    false,
	})
}
