package utils

import (
	"strings"

	"github.com/google/uuid"
)

const referralCodeLength = 8

// NewReferralCode generates a candidate referral code. Uniqueness is enforced
// by the database; callers retry on conflict.
func NewReferralCode() string {
	raw := strings.ReplaceAll(uuid.NewString(), "-", "")
	return "VP-" + strings.ToUpper(raw[:referralCodeLength])
}
