package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/francis-villapando/pulsepoint/internal/handlers"
)

// RegisterPollRoutes wires the citizen-facing poll surface. Management of
// polls happens through the admin console routes.
func RegisterPollRoutes(rg *gin.RouterGroup) {
	polls := rg.Group("/polls")
	polls.GET("", handlers.Polls.ListActive)
	polls.POST("/:id/vote", handlers.VotePoll)
}
