package auth

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"veriplot-server/models"
)

// Logout clears the refresh token and invalidates access tokens issued so
// far.
func (h *Handler) Logout(c *gin.Context) {
	userInterface, exists := c.Get("user")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in context"})
		return
	}
	user := userInterface.(models.User)

	now := time.Now()
	if err := h.DB.Model(&user).Updates(map[string]interface{}{
		"refresh_token_hash": "",
		"last_logout_at":     now,
	}).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to log out"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Logout successful.",
	})
}
