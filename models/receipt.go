package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	ReceiptPending     = "pending"
	ReceiptApproved    = "approved"
	ReceiptRejected    = "rejected"
	ReceiptUnderReview = "under_review"
)

// Receipt is a realtor's submitted proof of payment. It is created by the
// realtor (or the Stripe webhook) and reviewed by an admin.
type Receipt struct {
	gorm.Model
	RealtorID  uint       `gorm:"index;not null" json:"realtor_id"`
	AmountPaid float64    `gorm:"column:amount_paid" json:"amount_paid"`
	Status     string     `gorm:"default:pending" json:"status"`
	Reference  string     `json:"reference"`
	Note       string     `json:"note"`
	ReviewedAt *time.Time `json:"reviewed_at"`
}
