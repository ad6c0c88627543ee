package middleware

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/francis-villapando/pulsepoint/internal/config"
)

func CORSMiddleware() gin.HandlerFunc {
	// The display dashboard and admin console are served from the same SPA
	origins := []string{"http://localhost:5173"}
	if config.AppConfig.FrontendURL != "" {
		origins = append(origins, config.AppConfig.FrontendURL)
	}

	cfg := cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	return cors.New(cfg)
}
