package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"

	"github.com/francis-villapando/pulsepoint/internal/database"
	"github.com/francis-villapando/pulsepoint/internal/models"
	"github.com/francis-villapando/pulsepoint/pkg/utils"
)

func seedTestAdmin(t *testing.T) models.AdminUser {
	t.Helper()
	hash, _ := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.MinCost)
	admin := models.AdminUser{
		ID:           "admin-test",
		Email:        "admin@pulsepoint.gov",
		PasswordHash: string(hash),
		Role:         models.RoleSuperAdmin,
	}
	if err := database.DB.Create(&admin).Error; err != nil {
		t.Fatalf("failed to seed admin: %v", err)
	}
	return admin
}

func TestLogin_Success(t *testing.T) {
	SetupTestDB()
	seedTestAdmin(t)

	c, w := testContext(t, "POST", "/api/auth/login", map[string]interface{}{
		"email":    "admin@pulsepoint.gov",
		"password": "admin123",
	})
	Login(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var response struct {
		Token string           `json:"token"`
		User  models.AdminUser `json:"user"`
	}
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.NotEmpty(t, response.Token)
	assert.Equal(t, "admin@pulsepoint.gov", response.User.Email)

	claims, err := utils.ValidateToken(response.Token)
	assert.NoError(t, err)
	assert.Equal(t, "admin-test", claims.AdminID)

	// Login records the session
	var stored models.AdminUser
	database.DB.First(&stored, "id = ?", "admin-test")
	assert.NotNil(t, stored.LastLogin)
}

func TestLogin_WrongPassword(t *testing.T) {
	SetupTestDB()
	seedTestAdmin(t)

	c, w := testContext(t, "POST", "/api/auth/login", map[string]interface{}{
		"email":    "admin@pulsepoint.gov",
		"password": "wrong",
	})
	Login(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLogin_UnknownEmail(t *testing.T) {
	SetupTestDB()

	c, w := testContext(t, "POST", "/api/auth/login", map[string]interface{}{
		"email":    "nobody@pulsepoint.gov",
		"password": "admin123",
	})
	Login(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
