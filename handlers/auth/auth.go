package auth

import (
	"math/rand"
	"time"

	"gorm.io/gorm"

	"veriplot-server/config"
	"veriplot-server/utils"
)

const otpValidityDuration = 10 * time.Minute

// Handler carries the dependencies the auth endpoints need.
type Handler struct {
	DB     *gorm.DB
	Cfg    *config.Config
	Mailer *utils.Mailer
}

func New(db *gorm.DB, cfg *config.Config, mailer *utils.Mailer) *Handler {
	return &Handler{DB: db, Cfg: cfg, Mailer: mailer}
}

// generateOTP generates a 6-digit OTP
func generateOTP() string {
	source := rand.NewSource(time.Now().UnixNano())
	r := rand.New(source)
	const digits = "0123456789"
	otp := make([]byte, 6)
	for i := range otp {
		otp[i] = digits[r.Intn(len(digits))]
	}
	return string(otp)
}
