package middleware

import (
	"net/http"
	"strings"

	"koobings/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Context keys populated by JWTAuthMiddleware.
const (
	CtxSubjectID  = "subjectID"
	CtxBusinessID = "businessID"
	CtxTokenKind  = "tokenKind"
	CtxRole       = "role"
	CtxClaims     = "tokenClaims"
)

// JWTAuthMiddleware validates the bearer token and rejects revoked tokens.
// On success the actor's identity is placed in the gin context.
func JWTAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}

		claims, err := utils.ValidateToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}

		revoked, err := utils.IsTokenRevoked(c.Request.Context(), claims.JTI)
		if err != nil {
			zap.L().Error("Revocation check failed", zap.Error(err))
			c.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{"error": "Authorization temporarily unavailable"})
			return
		}
		if revoked {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token has been revoked"})
			return
		}

		c.Set(CtxSubjectID, claims.Subject)
		c.Set(CtxBusinessID, claims.BusinessID)
		c.Set(CtxTokenKind, claims.Kind)
		c.Set(CtxRole, claims.Role)
		c.Set(CtxClaims, claims)
		c.Next()
	}
}

// RequireKind restricts a route group to a token kind (business or staff).
func RequireKind(kinds ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		kind := c.GetString(CtxTokenKind)
		for _, k := range kinds {
			if kind == k {
				c.Next()
				return
			}
		}
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
	}
}

// RequireRole restricts a route to staff carrying one of the given roles.
// Business tokens always pass; the owner outranks staff roles.
func RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString(CtxTokenKind) == utils.TokenKindBusiness {
			c.Next()
			return
		}
		role := c.GetString(CtxRole)
		for _, r := range roles {
			if role == r {
				c.Next()
				return
			}
		}
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
	}
}
