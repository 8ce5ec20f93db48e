package middleware

import (
	"net/http"
	"strings"

	"clubsphere_backend/internal/auth"
	"clubsphere_backend/internal/config"
	"clubsphere_backend/internal/logger"

	"github.com/gin-gonic/gin"
)

const claimsContextKey = "claims"

// AuthMiddleware validates the Bearer token and stores the resolved
// identity in the request context.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header missing or invalid"})
			return
		}

		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := auth.ParseToken(tokenStr, config.GetConfig().JWT.Secret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		c.Set(claimsContextKey, claims)

		ctx := logger.WithUserID(c.Request.Context(), claims.Sub)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// RequireCapability guards a route with a single capability check.
func RequireCapability(capability string) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := GetClaims(c)
		if claims == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
			return
		}

		if !auth.CanPerformAction(claims, capability) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Access denied: insufficient permissions"})
			return
		}

		c.Next()
	}
}

// GetClaims returns the identity stored by AuthMiddleware, or nil.
func GetClaims(c *gin.Context) *auth.Claims {
	val, exists := c.Get(claimsContextKey)
	if !exists {
		return nil
	}

	claims, ok := val.(*auth.Claims)
	if !ok {
		return nil
	}
	return claims
}
