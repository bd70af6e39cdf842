package models

import (
	"strings"
	"time"

	"gorm.io/gorm"
)

const (
	RoleRealtor = "realtor"
	RoleAdmin   = "admin"
)

const (
	KYCPending  = "pending"
	KYCApproved = "approved"
	KYCRejected = "rejected"
)

type User struct {
	gorm.Model
	FirstName        string     `json:"first_name"`
	LastName         string     `json:"last_name"`
	Email            string     `gorm:"unique;not null" json:"email"`
	Phone            string     `json:"phone"`
	Gender           string     `json:"gender"`
	AvatarURL        string     `json:"avatar_url"`
	BankName         string     `json:"bank_name"`
	BankAccountNo    string     `json:"bank_account_no"`
	PasswordHash     string     `gorm:"not null" json:"-"`
	Role             string     `gorm:"not null;default:realtor" json:"role"`
	KYCStatus        string     `gorm:"column:kyc_status;default:pending" json:"kyc_status"`
	ReferralCode     string     `gorm:"unique" json:"referral_code"`
	ReferredBy       *uint      `gorm:"column:referred_by" json:"referred_by"`
	BannedUntil      *time.Time `json:"-"`
	LastLogoutAt     *time.Time `gorm:"column:last_logout_at" json:"-"`
	RefreshTokenHash string     `json:"-"`
	OTP              string     `json:"-"`
	OTPGeneratedAt   *time.Time `json:"-"`
}

func (u *User) FullName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}
