package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/francis-villapando/pulsepoint/internal/database"
	"github.com/francis-villapando/pulsepoint/internal/models"
)

func TestCreateFeedback_DefaultsApplied(t *testing.T) {
	SetupTestDB()

	c, w := testContext(t, "POST", "/api/feedback", map[string]interface{}{
		"content": "Street lights on Elm Avenue have been out for two weeks now.",
	})
	CreateFeedback(c)

	assert.Equal(t, http.StatusCreated, w.Code)

	var created models.Feedback
	json.Unmarshal(w.Body.Bytes(), &created)
	assert.Equal(t, models.FeedbackSuggestion, created.Category)
	assert.Equal(t, models.FeedbackPending, created.Status)
}

func TestCreateFeedback_BogusCategory(t *testing.T) {
	SetupTestDB()

	c, w := testContext(t, "POST", "/api/feedback", map[string]interface{}{
		"content":  "Valid text",
		"category": "rant",
	})
	CreateFeedback(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var count int64
	database.DB.Model(&models.Feedback{}).Count(&count)
	assert.Zero(t, count)
}

func TestAdminUpdateFeedbackStatus(t *testing.T) {
	SetupTestDB()

	entry := models.Feedback{
		Content:  "Can we get more recycling bins near the playground areas?",
		Category: models.FeedbackSuggestion,
		Status:   models.FeedbackPending,
	}
	database.DB.Create(&entry)
	id := fmt.Sprintf("%d", entry.ID)

	c, w := testContext(t, "PUT", "/api/admin/feedback/"+id+"/status", map[string]interface{}{
		"status": "reviewed",
	})
	c.Set("adminId", "admin-1")
	AdminUpdateFeedbackStatus(withID(c, id))

	assert.Equal(t, http.StatusOK, w.Code)

	var updated models.Feedback
	database.DB.First(&updated, entry.ID)
	assert.Equal(t, models.FeedbackReviewed, updated.Status)

	// The change lands in the audit log
	var actions []models.AdminAction
	database.DB.Find(&actions)
	if assert.Len(t, actions, 1) {
		assert.Equal(t, models.ActionUpdateFeedback, actions[0].Action)
		assert.Equal(t, "admin-1", actions[0].AdminID)
	}
}

func TestAdminUpdateFeedbackStatus_InvalidStatus(t *testing.T) {
	SetupTestDB()

	entry := models.Feedback{Content: "x", Category: models.FeedbackPraise, Status: models.FeedbackPending}
	database.DB.Create(&entry)
	id := fmt.Sprintf("%d", entry.ID)

	c, w := testContext(t, "PUT", "/api/admin/feedback/"+id+"/status", map[string]interface{}{
		"status": "ignored",
	})
	c.Set("adminId", "admin-1")
	AdminUpdateFeedbackStatus(withID(c, id))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAdminListFeedback_StatusFilter(t *testing.T) {
	SetupTestDB()

	database.DB.Create(&models.Feedback{Content: "a", Category: models.FeedbackPraise, Status: models.FeedbackPending})
	database.DB.Create(&models.Feedback{Content: "b", Category: models.FeedbackComplaint, Status: models.FeedbackAddressed})

	c, w := testContext(t, "GET", "/api/admin/feedback?status=pending", nil)
	AdminListFeedback(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var response struct {
		Feedback []models.Feedback `json:"feedback"`
	}
	json.Unmarshal(w.Body.Bytes(), &response)
	if assert.Len(t, response.Feedback, 1) {
		assert.Equal(t, models.FeedbackPending, response.Feedback[0].Status)
	}
}
