package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/francis-villapando/pulsepoint/internal/handlers"
	"github.com/francis-villapando/pulsepoint/internal/middleware"
)

func RegisterAuthRoutes(rg *gin.RouterGroup) {
	rg.POST("/login", handlers.Login)
	rg.GET("/me", middleware.AuthMiddleware(), handlers.Me)
}
