package receipts

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"veriplot-server/dashboard"
	"veriplot-server/models"
	"veriplot-server/utils"
)

// commissionRate is the level-1 upline cut of an approved receipt.
const commissionRate = 0.05

type Handler struct {
	DB     *gorm.DB
	Mailer *utils.Mailer
}

func New(db *gorm.DB, mailer *utils.Mailer) *Handler {
	return &Handler{DB: db, Mailer: mailer}
}

// Submit records a realtor's payment proof for admin review.
func (h *Handler) Submit(c *gin.Context) {
	var input struct {
		AmountPaid float64 `json:"amount_paid" binding:"required,gt=0"`
		Reference  string  `json:"reference"`
		Note       string  `json:"note"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "amount_paid is required and must be greater than zero."})
		return
	}

	userInterface, exists := c.Get("user")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in context"})
		return
	}
	user := userInterface.(models.User)

	receipt := models.Receipt{
		RealtorID:  user.ID,
		AmountPaid: input.AmountPaid,
		Status:     models.ReceiptPending,
		Reference:  input.Reference,
		Note:       input.Note,
	}

	if err := h.DB.Create(&receipt).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to submit receipt"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Receipt submitted successfully", "receipt": receipt})
}

// List returns the caller's own receipts.
func (h *Handler) List(c *gin.Context) {
	userInterface, exists := c.Get("user")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in context"})
		return
	}
	user := userInterface.(models.User)

	var rows []models.Receipt
	if err := h.DB.Where("realtor_id = ?", user.ID).Order("created_at DESC").Find(&rows).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch receipts"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"receipts": rows})
}

// Review lets an admin settle a receipt. Approval credits the realtor's
// upline with a level-1 commission and bumps the referral edge's earnings.
// The notification email is best-effort.
func (h *Handler) Review(c *gin.Context) {
	var input struct {
		Status string `json:"status" binding:"required,oneof=approved rejected under_review"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "status must be one of approved, rejected, under_review."})
		return
	}

	receiptID := c.Param("id")
	var receipt models.Receipt
	if err := h.DB.First(&receipt, "id = ?", receiptID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Receipt not found."})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	alreadyApproved := receipt.Status == models.ReceiptApproved

	now := time.Now()
	if err := h.DB.Model(&receipt).Updates(map[string]interface{}{
		"status":      input.Status,
		"reviewed_at": now,
	}).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	receipt.Status = input.Status
	receipt.ReviewedAt = &now

	var realtor models.User
	if err := h.DB.First(&realtor, receipt.RealtorID).Error; err == nil {
		if input.Status == models.ReceiptApproved && !alreadyApproved && realtor.ReferredBy != nil {
			h.creditUpline(&realtor, &receipt)
		}
		h.Mailer.SendReceiptReviewed(realtor.Email, realtor.FullName(), input.Status, dashboard.FormatAmount(receipt.AmountPaid))
	} else {
		log.Printf("receipt %d review: realtor %d not found: %v", receipt.ID, receipt.RealtorID, err)
	}

	c.JSON(http.StatusOK, gin.H{"data": receipt})
}

func (h *Handler) creditUpline(realtor *models.User, receipt *models.Receipt) {
	amount := receipt.AmountPaid * commissionRate

	commission := models.Commission{
		RealtorID:       *realtor.ReferredBy,
		Amount:          amount,
		Status:          models.CommissionPending,
		SourceReceiptID: &receipt.ID,
	}
	if err := h.DB.Create(&commission).Error; err != nil {
		log.Printf("receipt %d: failed to credit upline %d: %v", receipt.ID, *realtor.ReferredBy, err)
		return
	}

	if err := h.DB.Model(&models.Referral{}).
		Where("upline_id = ? AND downline_id = ? AND level = ?", *realtor.ReferredBy, realtor.ID, 1).
		Update("commission_earned", gorm.Expr("commission_earned + ?", amount)).Error; err != nil {
		log.Printf("receipt %d: failed to bump referral edge earnings: %v", receipt.ID, err)
	}
}
