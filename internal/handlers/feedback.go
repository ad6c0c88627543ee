package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/francis-villapando/pulsepoint/internal/database"
	"github.com/francis-villapando/pulsepoint/internal/models"
)

// CreateFeedback accepts an anonymous citizen submission from the mobile
// view. One submission per 30 seconds per client keeps the box usable.
func CreateFeedback(c *gin.Context) {
	allowed, err := database.CheckRateLimit("feedback:"+c.ClientIP(), 1, 30*time.Second)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Rate limit check failed"})
		return
	}
	if !allowed {
		c.JSON(http.StatusTooManyRequests, gin.H{"error": "You're submitting too fast. Please wait 30 seconds."})
		return
	}

	var input struct {
		Content  string                  `json:"content" binding:"required,max=500"`
		Category models.FeedbackCategory `json:"category" binding:"omitempty,oneof=praise suggestion complaint question"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	feedback := models.Feedback{
		Content:  input.Content,
		Category: input.Category,
		Status:   models.FeedbackPending,
	}
	if feedback.Category == "" {
		feedback.Category = models.FeedbackSuggestion
	}

	if err := database.DB.Create(&feedback).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save feedback"})
		return
	}

	c.JSON(http.StatusCreated, feedback)
}

// AdminListFeedback returns submissions for the console, optionally
// filtered by status, newest first.
func AdminListFeedback(c *gin.Context) {
	query := database.DB.Order("created_at DESC")
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var entries []models.Feedback
	if err := query.Find(&entries).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch feedback"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"feedback": entries})
}

// AdminUpdateFeedbackStatus walks a submission through the review lifecycle.
func AdminUpdateFeedbackStatus(c *gin.Context) {
	id := c.Param("id")
	adminID := getAdminID(c)

	var req struct {
		Status models.FeedbackStatus `json:"status" binding:"required,oneof=pending reviewed addressed"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var entry models.Feedback
	if err := database.DB.First(&entry, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Feedback not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch feedback"})
		return
	}

	if err := database.DB.Model(&entry).Update("status", req.Status).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update feedback"})
		return
	}

	logAdminAction(database.DB, adminID, models.ActionUpdateFeedback, id, "feedback", "Status: "+string(req.Status))

	c.JSON(http.StatusOK, entry)
}
