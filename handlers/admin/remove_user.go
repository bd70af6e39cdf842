package admin

import (
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"veriplot-server/models"
)

// banDuration keeps a removed account locked out effectively forever.
const banDuration = 100 * 365 * 24 * time.Hour

// RemoveUser removes a realtor in four independent best-effort steps:
// overwrite the auth email and ban the account, force sign-out everywhere,
// hard-delete the profile row, and when the delete fails, scrub the PII in
// place instead. Each step's outcome is reported separately; partial
// completion is a terminal state, not an error.
func (h *Handler) RemoveUser(c *gin.Context) {
	var input struct {
		UserID string `json:"userId" binding:"required"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "userId is required."})
		return
	}

	userID, err := strconv.ParseUint(input.UserID, 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "userId must be a valid user id."})
		return
	}

	placeholderEmail := fmt.Sprintf("deleted+%d@deleted.local", userID)
	bannedUntil := time.Now().Add(banDuration)

	authUpdated := false
	res := h.DB.Model(&models.User{}).Where("id = ?", userID).Updates(map[string]interface{}{
		"email":        placeholderEmail,
		"banned_until": bannedUntil,
	})
	if res.Error != nil {
		log.Printf("remove-user %d: auth update failed: %v", userID, res.Error)
	} else {
		authUpdated = res.RowsAffected > 0
	}

	authSignedOut := false
	res = h.DB.Model(&models.User{}).Where("id = ?", userID).Updates(map[string]interface{}{
		"refresh_token_hash": "",
		"last_logout_at":     time.Now(),
	})
	if res.Error != nil {
		log.Printf("remove-user %d: forced sign-out failed: %v", userID, res.Error)
	} else {
		authSignedOut = res.RowsAffected > 0
	}

	publicDeleted := false
	res = h.DB.Unscoped().Where("id = ?", userID).Delete(&models.User{})
	if res.Error != nil {
		log.Printf("remove-user %d: hard delete failed: %v", userID, res.Error)
	} else {
		publicDeleted = res.RowsAffected > 0
	}

	publicScrubbed := false
	if !publicDeleted {
		res = h.DB.Model(&models.User{}).Where("id = ?", userID).Updates(map[string]interface{}{
			"first_name":      "Deleted",
			"last_name":       "User",
			"email":           placeholderEmail,
			"phone":           "",
			"gender":          "",
			"avatar_url":      "",
			"bank_name":       "",
			"bank_account_no": "",
		})
		if res.Error != nil {
			log.Printf("remove-user %d: PII scrub failed: %v", userID, res.Error)
		} else {
			publicScrubbed = res.RowsAffected > 0
		}
	}

	c.JSON(http.StatusOK, gin.H{"data": gin.H{
		"userId":         input.UserID,
		"authUpdated":    authUpdated,
		"authSignedOut":  authSignedOut,
		"publicDeleted":  publicDeleted,
		"publicScrubbed": publicScrubbed,
	}})
}
