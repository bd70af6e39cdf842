package admin

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"veriplot-server/models"
)

func TestUpdateCommissionStatusPaidSetsPaidOn(t *testing.T) {
	db := setupTestDB(t)
	h := New(db)

	commission := models.Commission{RealtorID: 1, Amount: 5000, Status: models.CommissionApproved}
	require.NoError(t, db.Create(&commission).Error)

	c, rec := postJSONContext(t, "/admin/update-commission-status",
		fmt.Sprintf(`{"id":"%d","status":"paid"}`, commission.ID))
	h.UpdateCommissionStatus(c)

	assert.Equal(t, http.StatusOK, rec.Code)

	var response struct {
		Data models.Commission `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, models.CommissionPaid, response.Data.Status)
	require.NotNil(t, response.Data.PaidOn)
	assert.False(t, response.Data.PaidOn.After(time.Now()))

	var stored models.Commission
	require.NoError(t, db.First(&stored, commission.ID).Error)
	assert.Equal(t, models.CommissionPaid, stored.Status)
	assert.NotNil(t, stored.PaidOn)
}

func TestUpdateCommissionStatusNonPaidClearsPaidOn(t *testing.T) {
	db := setupTestDB(t)
	h := New(db)

	paidOn := time.Now().Add(-24 * time.Hour)
	commission := models.Commission{RealtorID: 1, Amount: 5000, Status: models.CommissionPaid, PaidOn: &paidOn}
	require.NoError(t, db.Create(&commission).Error)

	c, rec := postJSONContext(t, "/admin/update-commission-status",
		fmt.Sprintf(`{"id":"%d","status":"approved"}`, commission.ID))
	h.UpdateCommissionStatus(c)

	assert.Equal(t, http.StatusOK, rec.Code)

	var stored models.Commission
	require.NoError(t, db.First(&stored, commission.ID).Error)
	assert.Equal(t, models.CommissionApproved, stored.Status)
	assert.Nil(t, stored.PaidOn)
}

func TestUpdateCommissionStatusIdempotentReapply(t *testing.T) {
	db := setupTestDB(t)
	h := New(db)

	commission := models.Commission{RealtorID: 1, Amount: 100, Status: models.CommissionPending}
	require.NoError(t, db.Create(&commission).Error)

	for i := 0; i < 2; i++ {
		c, rec := postJSONContext(t, "/admin/update-commission-status",
			fmt.Sprintf(`{"id":"%d","status":"rejected"}`, commission.ID))
		h.UpdateCommissionStatus(c)
		assert.Equal(t, http.StatusOK, rec.Code)
	}

	var stored models.Commission
	require.NoError(t, db.First(&stored, commission.ID).Error)
	assert.Equal(t, models.CommissionRejected, stored.Status)
	assert.Nil(t, stored.PaidOn)
}

func TestUpdateCommissionStatusValidation(t *testing.T) {
	db := setupTestDB(t)
	h := New(db)

	c, rec := postJSONContext(t, "/admin/update-commission-status", `{"id":"1","status":"refunded"}`)
	h.UpdateCommissionStatus(c)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	c, rec = postJSONContext(t, "/admin/update-commission-status", `{"status":"paid"}`)
	h.UpdateCommissionStatus(c)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	c, rec = postJSONContext(t, "/admin/update-commission-status", `{"id":"not-a-number","status":"paid"}`)
	h.UpdateCommissionStatus(c)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdateCommissionStatusNotFound(t *testing.T) {
	db := setupTestDB(t)
	h := New(db)

	c, rec := postJSONContext(t, "/admin/update-commission-status", `{"id":"9999","status":"paid"}`)
	h.UpdateCommissionStatus(c)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
