package dashboard

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"veriplot-server/models"
)

func newUser(id uint, first, last, email, kyc string) models.User {
	return models.User{
		Model:     gorm.Model{ID: id, CreatedAt: time.Date(2026, 3, 10, 9, 0, 0, 0, time.Local)},
		FirstName: first,
		LastName:  last,
		Email:     email,
		Role:      models.RoleRealtor,
		KYCStatus: kyc,
	}
}

func newReceipt(realtorID uint, status string, amount float64) models.Receipt {
	return models.Receipt{RealtorID: realtorID, Status: status, AmountPaid: amount}
}

func TestBuildRealtorRows(t *testing.T) {
	users := []models.User{
		newUser(1, "Ibrahim", "Musa", "ibrahim@veriplot.test", models.KYCApproved),
		newUser(2, "Amaka", "Eze", "amaka@veriplot.test", models.KYCPending),
	}
	receipts := []models.Receipt{
		newReceipt(1, models.ReceiptApproved, 250000),
		newReceipt(1, models.ReceiptApproved, 100000),
		newReceipt(1, models.ReceiptPending, 40000),
		newReceipt(1, models.ReceiptRejected, 10000),
		newReceipt(2, models.ReceiptUnderReview, 5000),
	}

	rows := BuildRealtorRows(users, receipts)
	assert.Len(t, rows, 2)

	assert.Equal(t, "Ibrahim Musa", rows[0].Name)
	assert.Equal(t, StatusActive, rows[0].Status)
	assert.Equal(t, 2, rows[0].ApprovedCount)
	assert.Equal(t, 1, rows[0].PendingCount)
	assert.Equal(t, 1, rows[0].RejectedCount)
	assert.Equal(t, 350000.0, rows[0].ApprovedAmount)
	assert.Equal(t, "₦350,000.00", rows[0].ApprovedAmountDisplay)

	assert.Equal(t, StatusInactive, rows[1].Status)
	assert.Equal(t, 1, rows[1].UnderReviewCount)
	assert.Equal(t, 0.0, rows[1].ApprovedAmount)
}

func TestBuildRealtorRowsNonFiniteAmounts(t *testing.T) {
	users := []models.User{newUser(1, "A", "B", "a@b.test", models.KYCApproved)}
	receipts := []models.Receipt{
		newReceipt(1, models.ReceiptApproved, math.NaN()),
		newReceipt(1, models.ReceiptApproved, math.Inf(1)),
		newReceipt(1, models.ReceiptApproved, 500),
	}

	rows := BuildRealtorRows(users, receipts)
	assert.Equal(t, 3, rows[0].ApprovedCount)
	assert.Equal(t, 500.0, rows[0].ApprovedAmount)
}

// The per-realtor approved sums must add up to the total of approved receipts
// in the source collection.
func TestApprovedAmountConservation(t *testing.T) {
	users := []models.User{
		newUser(1, "A", "One", "a@x.test", models.KYCApproved),
		newUser(2, "B", "Two", "b@x.test", models.KYCApproved),
		newUser(3, "C", "Three", "c@x.test", models.KYCPending),
	}
	receipts := []models.Receipt{
		newReceipt(1, models.ReceiptApproved, 120.5),
		newReceipt(2, models.ReceiptApproved, 79.5),
		newReceipt(2, models.ReceiptApproved, 300),
		newReceipt(3, models.ReceiptApproved, 42),
		newReceipt(1, models.ReceiptPending, 9999),
		newReceipt(3, models.ReceiptRejected, 1234),
	}

	var sourceTotal float64
	for _, r := range receipts {
		if r.Status == models.ReceiptApproved {
			sourceTotal += r.AmountPaid
		}
	}

	var rowTotal float64
	for _, row := range BuildRealtorRows(users, receipts) {
		rowTotal += row.ApprovedAmount
	}

	assert.InDelta(t, sourceTotal, rowTotal, 1e-9)
}

func TestFormatAndParseAmount(t *testing.T) {
	assert.Equal(t, "₦1,250,000.00", FormatAmount(1250000))
	assert.Equal(t, "₦0.00", FormatAmount(0))

	assert.Equal(t, 1250000.0, ParseAmount("₦1,250,000.00"))
	assert.Equal(t, 350.75, ParseAmount("350.75"))
	assert.Equal(t, 0.0, ParseAmount("not a number"))
	assert.Equal(t, 0.0, ParseAmount(""))
}
