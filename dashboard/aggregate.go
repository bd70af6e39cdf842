// Package dashboard derives the admin realtor listing from raw user and
// receipt collections: per-realtor receipt tallies, approved-amount sums, and
// the filter/pagination pipeline applied before render.
package dashboard

import (
	"math"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"veriplot-server/models"
)

const (
	StatusActive   = "Active"
	StatusInactive = "Inactive"
)

// RealtorRow is the derived presentation row for one realtor. It is
// recomputed on every fetch and never persisted.
type RealtorRow struct {
	ID           uint      `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone"`
	RegisteredAt time.Time `json:"registered_at"`
	Status       string    `json:"status"`

	PendingCount     int `json:"pending_count"`
	ApprovedCount    int `json:"approved_count"`
	RejectedCount    int `json:"rejected_count"`
	UnderReviewCount int `json:"under_review_count"`

	ApprovedAmount        float64 `json:"approved_amount"`
	ApprovedAmountDisplay string  `json:"approved_amount_display"`
}

type receiptTally struct {
	pending     int
	approved    int
	rejected    int
	underReview int
	approvedSum float64
}

// BuildRealtorRows joins users (already filtered to the realtor role) with
// the full receipt collection and produces one row per user.
func BuildRealtorRows(users []models.User, receipts []models.Receipt) []RealtorRow {
	tallies := make(map[uint]*receiptTally, len(users))
	for _, r := range receipts {
		t := tallies[r.RealtorID]
		if t == nil {
			t = &receiptTally{}
			tallies[r.RealtorID] = t
		}

		switch r.Status {
		case models.ReceiptPending:
			t.pending++
		case models.ReceiptApproved:
			t.approved++
			amount := r.AmountPaid
			if math.IsNaN(amount) || math.IsInf(amount, 0) {
				amount = 0
			}
			t.approvedSum += amount
		case models.ReceiptRejected:
			t.rejected++
		case models.ReceiptUnderReview:
			t.underReview++
		}
	}

	rows := make([]RealtorRow, 0, len(users))
	for _, u := range users {
		row := RealtorRow{
			ID:           u.ID,
			Name:         u.FullName(),
			Email:        u.Email,
			Phone:        u.Phone,
			RegisteredAt: u.CreatedAt,
			Status:       StatusInactive,
		}
		if u.KYCStatus == models.KYCApproved {
			row.Status = StatusActive
		}

		if t := tallies[u.ID]; t != nil {
			row.PendingCount = t.pending
			row.ApprovedCount = t.approved
			row.RejectedCount = t.rejected
			row.UnderReviewCount = t.underReview
			row.ApprovedAmount = t.approvedSum
		}
		row.ApprovedAmountDisplay = FormatAmount(row.ApprovedAmount)

		rows = append(rows, row)
	}

	return rows
}

var amountPrinter = message.NewPrinter(language.English)

// FormatAmount renders an amount as a naira string with grouped thousands,
// e.g. ₦1,250,000.00.
func FormatAmount(v float64) string {
	return amountPrinter.Sprintf("₦%.2f", v)
}

// ParseAmount parses a display amount back to a number, stripping the
// currency symbol, grouping commas and whitespace first. Unparseable input
// yields 0.
func ParseAmount(s string) float64 {
	var b strings.Builder
	for _, r := range s {
		if (r >= '0' && r <= '9') || r == '.' || r == '-' {
			b.WriteRune(r)
		}
	}

	v, err := strconv.ParseFloat(b.String(), 64)
	if err != nil {
		return 0
	}
	return v
}
