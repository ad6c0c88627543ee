package seeds

import (
	"log"

	"github.com/francis-villapando/pulsepoint/internal/database"
	"github.com/francis-villapando/pulsepoint/internal/models"
)

// SeedPolls loads the starter polls with their historical vote counts.
func SeedPolls() {
	log.Println("Seeding polls...")

	var count int64
	database.DB.Model(&models.Poll{}).Count(&count)
	if count > 0 {
		log.Println("   Polls already present, skipping")
		return
	}

	polls := []models.Poll{
		{
			Question:   "What should be the priority for next year's community budget?",
			ExpiresAt:  day("2026-01-30"),
			IsActive:   true,
			TotalVotes: 650,
			Options: []models.PollOption{
				{Text: "Road repairs", Votes: 145},
				{Text: "Park improvements", Votes: 203},
				{Text: "Public safety", Votes: 178},
				{Text: "Youth programs", Votes: 124},
			},
		},
		{
			Question:   "Preferred time for community meetings?",
			ExpiresAt:  day("2026-02-01"),
			IsActive:   true,
			TotalVotes: 268,
			Options: []models.PollOption{
				{Text: "Weekday evenings (6-8 PM)", Votes: 89},
				{Text: "Saturday mornings (10 AM)", Votes: 112},
				{Text: "Sunday afternoons (2 PM)", Votes: 67},
			},
		},
	}

	if err := database.DB.Create(&polls).Error; err != nil {
		log.Printf("   Failed to seed polls: %v", err)
	} else {
		log.Printf("   Seeded %d polls", len(polls))
	}
}
