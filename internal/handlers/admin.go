package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/francis-villapando/pulsepoint/internal/database"
	"github.com/francis-villapando/pulsepoint/internal/models"
	"github.com/francis-villapando/pulsepoint/pkg/logger"
)

func getAdminID(c *gin.Context) string {
	val, exists := c.Get("adminId")
	if !exists {
		return ""
	}
	return val.(string)
}

func logAdminAction(tx *gorm.DB, adminID string, action models.ActionType, targetID string, targetType string, reason string) {
	audit := models.AdminAction{
		ID:         uuid.New().String(),
		AdminID:    adminID,
		Action:     action,
		TargetID:   targetID,
		TargetType: targetType,
		Reason:     reason,
		CreatedAt:  time.Now(),
	}
	if err := tx.Create(&audit).Error; err != nil {
		logger.Warn().Err(err).Str("action", string(action)).Msg("failed to write audit row")
	}
}

// AdminGetDashboard returns the stats cards on the console landing page.
func AdminGetDashboard(c *gin.Context) {
	type resourceCounts struct {
		Active   int64 `json:"active"`
		Archived int64 `json:"archived"`
	}

	countFlag := func(model interface{}) resourceCounts {
		var counts resourceCounts
		database.DB.Model(model).Where("is_archived = ?", false).Count(&counts.Active)
		database.DB.Model(model).Where("is_archived = ?", true).Count(&counts.Archived)
		return counts
	}

	var pendingFeedback int64
	database.DB.Model(&models.Feedback{}).Where("status = ?", models.FeedbackPending).Count(&pendingFeedback)

	var livePolls int64
	database.DB.Model(&models.Poll{}).
		Where("is_archived = ? AND is_active = ? AND expires_at > ?", false, true, time.Now()).
		Count(&livePolls)

	c.JSON(http.StatusOK, gin.H{
		"announcements":   countFlag(&models.Announcement{}),
		"events":          countFlag(&models.Event{}),
		"carousel":        countFlag(&models.CarouselImage{}),
		"pendingFeedback": pendingFeedback,
		"livePolls":       livePolls,
	})
}

// AdminGetAuditLogs lists recent console actions, newest first.
func AdminGetAuditLogs(c *gin.Context) {
	var actions []models.AdminAction
	if err := database.DB.Order("created_at DESC").Limit(200).Find(&actions).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch audit logs"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"actions": actions})
}

// Admin wrappers around the poll resource so console mutations land in the
// audit log. The content endpoints themselves stay unauthenticated; polls
// are managed only through the console.
func AdminCreatePoll(c *gin.Context) {
	Polls.Create(c)
	if c.Writer.Status() == http.StatusCreated {
		logAdminAction(database.DB, getAdminID(c), models.ActionCreatePoll, "", "poll", "Created poll")
	}
}

func AdminUpdatePoll(c *gin.Context) {
	Polls.Update(c)
	if c.Writer.Status() == http.StatusOK {
		logAdminAction(database.DB, getAdminID(c), models.ActionUpdatePoll, c.Param("id"), "poll", "Updated poll")
	}
}

func AdminArchivePoll(c *gin.Context) {
	Polls.Archive(c)
	if c.Writer.Status() == http.StatusNoContent {
		logAdminAction(database.DB, getAdminID(c), models.ActionArchivePoll, c.Param("id"), "poll", "Archived poll")
	}
}

func AdminRestorePoll(c *gin.Context) {
	Polls.Restore(c)
	if c.Writer.Status() == http.StatusOK {
		logAdminAction(database.DB, getAdminID(c), models.ActionRestorePoll, c.Param("id"), "poll", "Restored poll")
	}
}
