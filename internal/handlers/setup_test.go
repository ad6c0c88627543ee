package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/francis-villapando/pulsepoint/internal/config"
	"github.com/francis-villapando/pulsepoint/internal/database"
	"github.com/francis-villapando/pulsepoint/internal/models"
	"github.com/francis-villapando/pulsepoint/pkg/logger"
)

// SetupTestDB initializes a fresh in-memory SQLite DB for testing
func SetupTestDB() {
	db, _ := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	database.DB = db

	// Shared-cache memory DBs survive between tests in one process
	database.DB.Migrator().DropTable(
		&models.Announcement{},
		&models.Event{},
		&models.CarouselImage{},
		&models.Poll{},
		&models.PollOption{},
		&models.PollVote{},
		&models.Feedback{},
		&models.AdminUser{},
		&models.AdminAction{},
	)
	database.DB.AutoMigrate(
		&models.Announcement{},
		&models.Event{},
		&models.CarouselImage{},
		&models.Poll{},
		&models.PollOption{},
		&models.PollVote{},
		&models.Feedback{},
		&models.AdminUser{},
		&models.AdminAction{},
	)

	config.AppConfig = &config.Config{
		JWTSecret: "test_secret_key_12345",
	}
	logger.Init("test")
}

// testContext builds a recorder-backed gin context with an optional JSON body.
func testContext(t *testing.T, method, path string, body interface{}) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	var reader *bytes.Buffer
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal request body: %v", err)
		}
		reader = bytes.NewBuffer(payload)
	} else {
		reader = bytes.NewBuffer(nil)
	}

	req, err := http.NewRequest(method, path, reader)
	if err != nil {
		t.Fatalf("failed to build request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	c.Request = req

	return c, w
}

func withID(c *gin.Context, id string) *gin.Context {
	c.Params = gin.Params{{Key: "id", Value: id}}
	return c
}
