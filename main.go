package main

import (
	"log"
	"net/http"
	"time"

	"github.com/getsentry/sentry-go"
	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	stripe "github.com/stripe/stripe-go/v80"

	"veriplot-server/config"
	"veriplot-server/handlers/admin"
	"veriplot-server/handlers/auth"
	"veriplot-server/handlers/payments"
	"veriplot-server/handlers/receipts"
	"veriplot-server/handlers/referrals"
	"veriplot-server/migrations"
	"veriplot-server/seed"
	"veriplot-server/utils"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if cfg.SentryDSN != "" {
		if err := sentry.Init(sentry.ClientOptions{Dsn: cfg.SentryDSN}); err != nil {
			log.Fatalf("Failed to initialize sentry: %v", err)
		}
		defer sentry.Flush(2 * time.Second)
	}

	db, err := utils.ConnectDatabase(cfg.DBDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := migrations.Migrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	if err := seed.SeedAdmin(db, cfg.AdminEmail, cfg.AdminPassword); err != nil {
		log.Fatalf("Failed to seed admin account: %v", err)
	}

	stripe.Key = cfg.StripeSecretKey

	mailer := utils.NewMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass, cfg.SMTPSender)

	r := gin.Default()
	r.HandleMethodNotAllowed = true

	if cfg.SentryDSN != "" {
		r.Use(sentrygin.New(sentrygin.Options{Repanic: true}))
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Client-Info", "Apikey"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	authHandler := auth.New(db, cfg, mailer)
	referralHandler := referrals.New(db)
	receiptHandler := receipts.New(db, mailer)
	paymentHandler := payments.New(db, cfg)
	adminHandler := admin.New(db)

	r.POST("/register", authHandler.Register)
	r.POST("/login", authHandler.Login)
	r.POST("/refresh", authHandler.RefreshToken)
	r.POST("/request-otp", authHandler.RequestOTP)
	r.POST("/verify-otp-reset", authHandler.VerifyOTPReset)
	r.POST("/reset-password", authHandler.ResetPassword)
	r.POST("/payments/webhook", paymentHandler.HandleStripeWebhook)

	protected := r.Group("/")
	protected.Use(auth.Middleware(db, cfg.JWTSecret))
	{
		protected.POST("/logout", authHandler.Logout)
		protected.GET("/me", authHandler.Me)
		protected.POST("/referrals/attach", referralHandler.Attach)
		protected.GET("/referrals", referralHandler.List)
		protected.GET("/commissions", referralHandler.Commissions)
		protected.POST("/receipts", receiptHandler.Submit)
		protected.GET("/receipts", receiptHandler.List)
		protected.POST("/payments/intent", paymentHandler.CreateSubscriptionIntent)

		adminGroup := protected.Group("/admin")
		adminGroup.Use(auth.RequireAdmin())
		{
			adminGroup.POST("/remove-user", adminHandler.RemoveUser)
			adminGroup.POST("/update-commission-status", adminHandler.UpdateCommissionStatus)
			adminGroup.POST("/receipts/:id/review", receiptHandler.Review)
			adminGroup.GET("/realtors", adminHandler.ListRealtors)
		}
	}

	r.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, gin.H{"error": "Method not allowed"})
	})

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}
