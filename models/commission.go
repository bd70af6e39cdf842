package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	CommissionPending  = "pending"
	CommissionApproved = "approved"
	CommissionPaid     = "paid"
	CommissionRejected = "rejected"
)

// Commission is a payable owed to a realtor, usually earned from a downline's
// approved receipt. PaidOn is non-null exactly when Status is "paid".
type Commission struct {
	gorm.Model
	RealtorID       uint       `gorm:"index;not null" json:"realtor_id"`
	Amount          float64    `json:"amount"`
	Status          string     `gorm:"default:pending" json:"status"`
	PaidOn          *time.Time `gorm:"column:paid_on" json:"paid_on"`
	SourceReceiptID *uint      `json:"source_receipt_id"`
}
