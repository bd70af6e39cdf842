package auth

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"veriplot-server/models"
	"veriplot-server/utils"
)

const referralCodeAttempts = 5

// Register creates a new realtor account with a fresh unique referral code.
func (h *Handler) Register(c *gin.Context) {
	var input struct {
		FirstName string `json:"first_name" binding:"required"`
		LastName  string `json:"last_name" binding:"required"`
		Email     string `json:"email" binding:"required,email"`
		Phone     string `json:"phone"`
		Password  string `json:"password" binding:"required,min=8"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input data. Please fill all required fields."})
		return
	}

	var existing models.User
	if err := h.DB.Where("email = ?", input.Email).First(&existing).Error; err == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "An account with this email already exists. Please log in instead."})
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "An error occurred while processing your password. Please try again."})
		return
	}

	user := models.User{
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Email:        input.Email,
		Phone:        input.Phone,
		PasswordHash: string(hashedPassword),
		Role:         models.RoleRealtor,
		KYCStatus:    models.KYCPending,
	}

	// Referral codes are unique; retry on the rare collision.
	created := false
	for i := 0; i < referralCodeAttempts; i++ {
		user.ReferralCode = utils.NewReferralCode()
		if err := h.DB.Create(&user).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				continue
			}
			log.Printf("Failed to create user in the database: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "We encountered an issue creating your account. Please contact support."})
			return
		}
		created = true
		break
	}
	if !created {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "We encountered an issue creating your account. Please contact support."})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Registration successful. You can now log in.",
		"user": gin.H{
			"id":            user.ID,
			"email":         user.Email,
			"name":          user.FullName(),
			"referral_code": user.ReferralCode,
		},
	})
}
