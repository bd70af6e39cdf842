package payments

import (
	"encoding/json"
	"io"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	stripe "github.com/stripe/stripe-go/v80"
	"github.com/stripe/stripe-go/v80/paymentintent"
	"github.com/stripe/stripe-go/v80/webhook"
	"gorm.io/gorm"

	"veriplot-server/config"
	"veriplot-server/models"
)

type Handler struct {
	DB  *gorm.DB
	Cfg *config.Config
}

func New(db *gorm.DB, cfg *config.Config) *Handler {
	return &Handler{DB: db, Cfg: cfg}
}

// CreateSubscriptionIntent starts a card payment for the realtor subscription
// fee. The realtor id travels in the intent metadata so the webhook can
// attribute the resulting receipt.
func (h *Handler) CreateSubscriptionIntent(c *gin.Context) {
	userInterface, exists := c.Get("user")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in context"})
		return
	}
	user := userInterface.(models.User)

	params := &stripe.PaymentIntentParams{
		Amount:       stripe.Int64(h.Cfg.SubscriptionAmount),
		Currency:     stripe.String("ngn"),
		ReceiptEmail: stripe.String(user.Email),
	}
	params.AddMetadata("realtor_id", strconv.FormatUint(uint64(user.ID), 10))

	pi, err := paymentintent.New(params)
	if err != nil {
		log.Printf("Failed to create payment intent for realtor %d: %v", user.ID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create payment intent"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"client_secret": pi.ClientSecret,
		"amount":        pi.Amount,
		"currency":      pi.Currency,
	})
}

// HandleStripeWebhook verifies the webhook signature and records a pending
// receipt when a subscription payment succeeds.
func (h *Handler) HandleStripeWebhook(c *gin.Context) {
	const MaxBodyBytes = int64(65536)
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, MaxBodyBytes)
	payload, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.Writer.WriteHeader(http.StatusServiceUnavailable)
		return
	}

	event, err := webhook.ConstructEvent(payload, c.Request.Header.Get("Stripe-Signature"), h.Cfg.StripeWebhookSecret)
	if err != nil {
		log.Printf("Webhook signature verification failed: %v", err)
		c.Writer.WriteHeader(http.StatusBadRequest)
		return
	}

	if event.Type == "payment_intent.succeeded" {
		var paymentIntent stripe.PaymentIntent
		if err := json.Unmarshal(event.Data.Raw, &paymentIntent); err != nil {
			log.Printf("Error parsing webhook JSON: %v", err)
			c.Writer.WriteHeader(http.StatusBadRequest)
			return
		}

		h.handlePaymentSuccess(paymentIntent)
	}

	c.JSON(http.StatusOK, gin.H{"status": "success"})
}

func (h *Handler) handlePaymentSuccess(paymentIntent stripe.PaymentIntent) {
	realtorIDStr := paymentIntent.Metadata["realtor_id"]
	if realtorIDStr == "" {
		log.Printf("PaymentIntent %s does not have realtor_id in metadata", paymentIntent.ID)
		return
	}

	realtorID, err := strconv.ParseUint(realtorIDStr, 10, 64)
	if err != nil {
		log.Printf("PaymentIntent %s has invalid realtor_id %q", paymentIntent.ID, realtorIDStr)
		return
	}

	var realtor models.User
	if err := h.DB.First(&realtor, realtorID).Error; err != nil {
		log.Printf("Failed to find realtor %d for payment %s: %v", realtorID, paymentIntent.ID, err)
		return
	}

	receipt := models.Receipt{
		RealtorID:  realtor.ID,
		AmountPaid: float64(paymentIntent.Amount) / 100,
		Status:     models.ReceiptPending,
		Reference:  paymentIntent.ID,
		Note:       "Card subscription payment",
	}
	if err := h.DB.Create(&receipt).Error; err != nil {
		log.Printf("Failed to record receipt for payment %s: %v", paymentIntent.ID, err)
		return
	}

	log.Printf("Recorded receipt %d for payment %s (realtor %d)", receipt.ID, paymentIntent.ID, realtor.ID)
}
