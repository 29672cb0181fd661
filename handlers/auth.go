package handlers

import (
	"net/http"

	"koobings/middleware"
	"koobings/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Logout answers POST /api/auth/logout by putting the current token on the
// server-side revocation list. The token dies immediately for every later
// request, not just on this client.
func Logout(c *gin.Context) {
	claimsVal, exists := c.Get(middleware.CtxClaims)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
		return
	}
	claims, ok := claimsVal.(*utils.TokenClaims)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
		return
	}
	if err := utils.RevokeToken(c.Request.Context(), claims); err != nil {
		zap.L().Error("Failed to revoke token", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to revoke token"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "logged out"})
}
