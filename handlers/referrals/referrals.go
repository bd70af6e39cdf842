package referrals

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"veriplot-server/models"
)

type Handler struct {
	DB *gorm.DB
}

func New(db *gorm.DB) *Handler {
	return &Handler{DB: db}
}

// Attach links the caller to the upline owning the given referral code. The
// first successful attach wins; calling again with any code is a reported
// no-op. Self-referral is rejected.
func (h *Handler) Attach(c *gin.Context) {
	var input struct {
		ReferralCode string `json:"referralCode" binding:"required"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Referral code is required."})
		return
	}

	code := strings.TrimSpace(input.ReferralCode)
	if code == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Referral code is required."})
		return
	}

	userInterface, exists := c.Get("user")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in context"})
		return
	}
	user := userInterface.(models.User)

	var upline models.User
	if err := h.DB.Where("referral_code = ?", code).First(&upline).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Referral code not found."})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if upline.ID == user.ID {
		c.JSON(http.StatusBadRequest, gin.H{"error": "You cannot use your own referral code."})
		return
	}

	if user.ReferredBy != nil {
		c.JSON(http.StatusOK, gin.H{"data": gin.H{
			"attached": false,
			"reason":   "already_attached",
		}})
		return
	}

	if err := h.DB.Model(&user).Update("referred_by", upline.ID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	// The level-1 edge is created at most once per pair.
	var edge models.Referral
	err := h.DB.Where("upline_id = ? AND downline_id = ? AND level = ?", upline.ID, user.ID, 1).First(&edge).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		edge = models.Referral{
			UplineID:         upline.ID,
			DownlineID:       user.ID,
			Level:            1,
			CommissionEarned: 0,
		}
		if err := h.DB.Create(&edge).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
	} else if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": gin.H{
		"attached": true,
		"uplineId": upline.ID,
	}})
}

// List returns the caller's downline edges.
func (h *Handler) List(c *gin.Context) {
	userInterface, exists := c.Get("user")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in context"})
		return
	}
	user := userInterface.(models.User)

	var edges []models.Referral
	if err := h.DB.Where("upline_id = ?", user.ID).Find(&edges).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch referrals"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"referrals": edges})
}

// Commissions returns the caller's own commission records.
func (h *Handler) Commissions(c *gin.Context) {
	userInterface, exists := c.Get("user")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in context"})
		return
	}
	user := userInterface.(models.User)

	var commissions []models.Commission
	if err := h.DB.Where("realtor_id = ?", user.ID).Order("created_at DESC").Find(&commissions).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch commissions"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"commissions": commissions})
}
