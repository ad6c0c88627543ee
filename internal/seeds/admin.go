package seeds

import (
	"log"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/francis-villapando/pulsepoint/internal/config"
	"github.com/francis-villapando/pulsepoint/internal/database"
	"github.com/francis-villapando/pulsepoint/internal/models"
)

const adminEmail = "admin@pulsepoint.gov"

// SeedAdmin creates the default super admin account once.
func SeedAdmin() {
	log.Println("Seeding admin account...")

	var existing models.AdminUser
	if err := database.DB.Where("email = ?", adminEmail).First(&existing).Error; err == nil {
		log.Printf("   Admin %s already exists", adminEmail)
		return
	}

	password := config.AppConfig.AdminPassword
	if password == "" {
		password = "admin123"
		log.Println("   ADMIN_PASSWORD not set, using the development default")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("   Failed to hash admin password: %v", err)
		return
	}

	admin := models.AdminUser{
		ID:           uuid.New().String(),
		Email:        adminEmail,
		PasswordHash: string(hash),
		Role:         models.RoleSuperAdmin,
	}

	if err := database.DB.Create(&admin).Error; err != nil {
		log.Printf("   Failed to seed admin: %v", err)
	} else {
		log.Printf("   Admin created: %s", adminEmail)
	}
}
