package seeds

import (
	"log"
	"time"

	"github.com/francis-villapando/pulsepoint/internal/database"
	"github.com/francis-villapando/pulsepoint/internal/models"
)

func day(s string) time.Time {
	t, _ := time.Parse("2006-01-02", s)
	return t
}

// SeedEvents loads the starter event calendar.
func SeedEvents() {
	log.Println("Seeding events...")

	var count int64
	database.DB.Model(&models.Event{}).Count(&count)
	if count > 0 {
		log.Println("   Events already present, skipping")
		return
	}

	events := []models.Event{
		{
			Title:       "Farmers Market",
			Description: "Fresh local produce, artisan goods, and live music every Saturday morning.",
			Date:        day("2026-01-25"),
			Time:        "8:00 AM - 1:00 PM",
			Venue:       "Town Square",
			Category:    models.EventCommunity,
		},
		{
			Title:       "Youth Basketball Tournament",
			Description: "Annual youth basketball tournament featuring teams from across the district.",
			Date:        day("2026-01-27"),
			Time:        "9:00 AM - 5:00 PM",
			Venue:       "Community Sports Center",
			Category:    models.EventSports,
		},
		{
			Title:       "Digital Literacy Workshop",
			Description: "Free workshop on internet safety and basic computer skills for seniors.",
			Date:        day("2026-01-28"),
			Time:        "2:00 PM - 4:00 PM",
			Venue:       "Public Library",
			Category:    models.EventEducation,
		},
		{
			Title:       "Cultural Heritage Festival",
			Description: "Celebrate our diverse community with food, music, and performances from around the world.",
			Date:        day("2026-02-01"),
			Time:        "11:00 AM - 8:00 PM",
			Venue:       "Riverside Park",
			Category:    models.EventCulture,
		},
		{
			Title:       "Free Health Screening",
			Description: "Blood pressure, glucose, and cholesterol screenings provided by local healthcare professionals.",
			Date:        day("2026-02-03"),
			Time:        "10:00 AM - 3:00 PM",
			Venue:       "Community Health Center",
			Category:    models.EventHealth,
		},
	}

	if err := database.DB.Create(&events).Error; err != nil {
		log.Printf("   Failed to seed events: %v", err)
	} else {
		log.Printf("   Seeded %d events", len(events))
	}
}
