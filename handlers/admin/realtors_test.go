package admin

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"veriplot-server/dashboard"
	"veriplot-server/models"
)

type realtorListResponse struct {
	Data     []dashboard.RealtorRow `json:"data"`
	Total    int                    `json:"total"`
	Page     int                    `json:"page"`
	PageSize int                    `json:"page_size"`
}

func TestListRealtors(t *testing.T) {
	db := setupTestDB(t)
	h := New(db)

	active := createRealtor(t, db, "active@veriplot.test", "VP-ACTIVE1", models.KYCApproved)
	inactive := createRealtor(t, db, "inactive@veriplot.test", "VP-INACT01", models.KYCPending)

	require.NoError(t, db.Create(&models.Receipt{RealtorID: active.ID, Status: models.ReceiptApproved, AmountPaid: 75000}).Error)
	require.NoError(t, db.Create(&models.Receipt{RealtorID: inactive.ID, Status: models.ReceiptPending, AmountPaid: 5000}).Error)

	c, rec := getContext(t, "/admin/realtors")
	h.ListRealtors(c)

	assert.Equal(t, http.StatusOK, rec.Code)

	var response realtorListResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, 2, response.Total)
	assert.Equal(t, 1, response.Page)
	assert.Equal(t, dashboard.PageSize, response.PageSize)
	require.Len(t, response.Data, 2)
}

func TestListRealtorsStatusFilter(t *testing.T) {
	db := setupTestDB(t)
	h := New(db)

	createRealtor(t, db, "active@veriplot.test", "VP-ACTIVE2", models.KYCApproved)
	createRealtor(t, db, "inactive@veriplot.test", "VP-INACT02", models.KYCPending)

	c, rec := getContext(t, "/admin/realtors?status=Active")
	h.ListRealtors(c)

	assert.Equal(t, http.StatusOK, rec.Code)

	var response realtorListResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	require.Equal(t, 1, response.Total)
	assert.Equal(t, dashboard.StatusActive, response.Data[0].Status)
}

func TestListRealtorsExcludesAdmins(t *testing.T) {
	db := setupTestDB(t)
	h := New(db)

	createRealtor(t, db, "realtor@veriplot.test", "VP-ONLY001", models.KYCApproved)
	adminUser := models.User{
		Email:        "admin@veriplot.test",
		PasswordHash: "x",
		Role:         models.RoleAdmin,
		KYCStatus:    models.KYCApproved,
		ReferralCode: "VP-ADMIN01",
	}
	require.NoError(t, db.Create(&adminUser).Error)

	c, rec := getContext(t, "/admin/realtors")
	h.ListRealtors(c)

	var response realtorListResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, 1, response.Total)
}

func TestListRealtorsRejectsUnknownParams(t *testing.T) {
	db := setupTestDB(t)
	h := New(db)

	c, rec := getContext(t, "/admin/realtors?price=100")
	h.ListRealtors(c)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListRealtorsRejectsBadValues(t *testing.T) {
	db := setupTestDB(t)
	h := New(db)

	for _, target := range []string{
		"/admin/realtors?min_amount=abc",
		"/admin/realtors?status=Suspended",
		"/admin/realtors?tab=weird",
		"/admin/realtors?page=0",
		"/admin/realtors?from=31-01-2026",
	} {
		c, rec := getContext(t, target)
		h.ListRealtors(c)
		assert.Equal(t, http.StatusBadRequest, rec.Code, target)
	}
}
