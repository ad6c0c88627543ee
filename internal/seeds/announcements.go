package seeds

import (
	"log"

	"github.com/francis-villapando/pulsepoint/internal/database"
	"github.com/francis-villapando/pulsepoint/internal/models"
)

// SeedAnnouncements loads the starter notices shown on a fresh install.
func SeedAnnouncements() {
	log.Println("Seeding announcements...")

	var count int64
	database.DB.Model(&models.Announcement{}).Count(&count)
	if count > 0 {
		log.Println("   Announcements already present, skipping")
		return
	}

	announcements := []models.Announcement{
		{
			Title:    "Community Clean-Up Day This Saturday",
			Content:  "Join your neighbors for our monthly community clean-up! Meet at the town square at 9 AM. Gloves and bags will be provided.",
			Category: models.AnnouncementGeneral,
			IsPinned: true,
		},
		{
			Title:    "Water Main Maintenance Notice",
			Content:  "Scheduled maintenance on Oak Street water main. Expect reduced water pressure from 10 PM to 6 AM on January 25th.",
			Category: models.AnnouncementMaintenance,
		},
		{
			Title:    "New Playground Opening Ceremony",
			Content:  "We are excited to announce the grand opening of Maple Park playground! Join us for ribbon cutting and refreshments.",
			Category: models.AnnouncementCelebration,
		},
		{
			Title:    "Winter Storm Advisory",
			Content:  "Heavy snowfall expected this weekend. Please stock up on essentials and check on elderly neighbors.",
			Category: models.AnnouncementSafety,
			IsPinned: true,
		},
	}

	if err := database.DB.Create(&announcements).Error; err != nil {
		log.Printf("   Failed to seed announcements: %v", err)
	} else {
		log.Printf("   Seeded %d announcements", len(announcements))
	}
}
