package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"github.com/francis-villapando/pulsepoint/internal/database"
	"github.com/francis-villapando/pulsepoint/internal/models"
	"github.com/francis-villapando/pulsepoint/pkg/logger"
	"github.com/francis-villapando/pulsepoint/pkg/utils"
)

// Login exchanges console credentials for a session token. The response
// shape feeds the admin frontend's auth context directly.
func Login(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var admin models.AdminUser
	if err := database.DB.First(&admin, "email = ?", req.Email).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(req.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
		return
	}

	token, err := utils.GenerateToken(admin.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create session"})
		return
	}

	now := time.Now()
	if err := database.DB.Model(&admin).Update("last_login", &now).Error; err != nil {
		logger.Warn().Err(err).Str("admin", admin.ID).Msg("failed to record last login")
	}

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user":  admin,
	})
}

// Me returns the authenticated admin for session restoration on page load.
func Me(c *gin.Context) {
	adminID := getAdminID(c)
	if adminID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var admin models.AdminUser
	if err := database.DB.First(&admin, "id = ?", adminID).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Admin not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": admin})
}
