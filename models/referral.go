package models

import "gorm.io/gorm"

// Referral is an edge in the referral tree. A given (upline, downline, level)
// pair exists at most once; the attach operation creates level-1 edges only.
type Referral struct {
	gorm.Model
	UplineID         uint    `gorm:"column:upline_id;uniqueIndex:idx_referral_edge;not null" json:"upline_id"`
	DownlineID       uint    `gorm:"column:downline_id;uniqueIndex:idx_referral_edge;not null" json:"downline_id"`
	Level            int     `gorm:"uniqueIndex:idx_referral_edge;not null" json:"level"`
	CommissionEarned float64 `gorm:"column:commission_earned" json:"commission_earned"`
}
