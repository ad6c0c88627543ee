package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/francis-villapando/pulsepoint/internal/handlers"
	"github.com/francis-villapando/pulsepoint/internal/middleware"
)

func RegisterAdminRoutes(rg *gin.RouterGroup) {
	admin := rg.Group("/admin")
	admin.Use(middleware.AuthMiddleware(), middleware.AdminOnly())

	// Dashboard
	admin.GET("/dashboard", handlers.AdminGetDashboard)

	// Feedback moderation
	admin.GET("/feedback", handlers.AdminListFeedback)
	admin.PUT("/feedback/:id/status", handlers.AdminUpdateFeedbackStatus)

	// Poll management
	admin.GET("/polls/archived", handlers.Polls.ListArchived)
	admin.POST("/polls", handlers.AdminCreatePoll)
	admin.PUT("/polls/:id", handlers.AdminUpdatePoll)
	admin.DELETE("/polls/:id", handlers.AdminArchivePoll)
	admin.PUT("/polls/:id/restore", handlers.AdminRestorePoll)

	// Audit
	admin.GET("/audit-logs", handlers.AdminGetAuditLogs)
}
