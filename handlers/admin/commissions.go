package admin

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"veriplot-server/models"
)

// UpdateCommissionStatus sets a commission's status. paid_on is set exactly
// when the new status is "paid" and cleared otherwise, including transitions
// between non-paid statuses. Last writer wins.
func (h *Handler) UpdateCommissionStatus(c *gin.Context) {
	var input struct {
		ID     string `json:"id" binding:"required"`
		Status string `json:"status" binding:"required,oneof=pending approved paid rejected"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id is required and status must be one of pending, approved, paid, rejected."})
		return
	}

	commissionID, err := strconv.ParseUint(input.ID, 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id must be a valid commission id."})
		return
	}

	var commission models.Commission
	if err := h.DB.First(&commission, commissionID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Commission not found."})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	var paidOn *time.Time
	if input.Status == models.CommissionPaid {
		now := time.Now()
		paidOn = &now
	}

	if err := h.DB.Model(&commission).Updates(map[string]interface{}{
		"status":  input.Status,
		"paid_on": paidOn,
	}).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	commission.Status = input.Status
	commission.PaidOn = paidOn

	c.JSON(http.StatusOK, gin.H{"data": commission})
}
