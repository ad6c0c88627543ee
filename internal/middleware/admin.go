package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/francis-villapando/pulsepoint/internal/database"
	"github.com/francis-villapando/pulsepoint/internal/models"
)

// AdminOnly restricts a route to console accounts. Both admin roles pass;
// super_admin is reserved for future account management.
func AdminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		adminID, exists := c.Get("adminId")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			c.Abort()
			return
		}

		var admin models.AdminUser
		if err := database.DB.First(&admin, "id = ?", adminID.(string)).Error; err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Admin not found"})
			c.Abort()
			return
		}

		if admin.Role != models.RoleAdmin && admin.Role != models.RoleSuperAdmin {
			c.JSON(http.StatusForbidden, gin.H{"error": "Admin access required"})
			c.Abort()
			return
		}

		c.Next()
	}
}
