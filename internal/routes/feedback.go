package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/francis-villapando/pulsepoint/internal/handlers"
)

// RegisterFeedbackRoutes wires the public submission endpoint. Review and
// moderation live under the admin routes.
func RegisterFeedbackRoutes(rg *gin.RouterGroup) {
	rg.POST("/feedback", handlers.CreateFeedback)
}
