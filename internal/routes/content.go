package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/francis-villapando/pulsepoint/internal/handlers"
)

// RegisterContentRoutes wires the three archive-aware content resource
// families. These stay unauthenticated: the display and mobile views read
// them anonymously, and the console's use of the write endpoints is a
// deployment convention rather than a transport-level gate.
func RegisterContentRoutes(rg *gin.RouterGroup) {
	handlers.Announcements.Register(rg, "/announcements")
	handlers.Events.Register(rg, "/events")
	handlers.Carousel.Register(rg, "/carousel")
}
