package admin

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"veriplot-server/migrations"
	"veriplot-server/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, migrations.Migrate(db))

	return db
}

func postJSONContext(t *testing.T, target, body string) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodPost, target, strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	return c, rec
}

func getContext(t *testing.T, target string) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, target, nil)

	return c, rec
}

func createRealtor(t *testing.T, db *gorm.DB, email, code, kyc string) models.User {
	t.Helper()

	user := models.User{
		FirstName:     "Test",
		LastName:      "Realtor",
		Email:         email,
		Phone:         "+2348012345678",
		Gender:        "female",
		BankName:      "First Bank",
		BankAccountNo: "0123456789",
		PasswordHash:  "x",
		Role:          models.RoleRealtor,
		KYCStatus:     kyc,
		ReferralCode:  code,
	}
	require.NoError(t, db.Create(&user).Error)
	return user
}
