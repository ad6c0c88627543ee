package main

import (
	"log"

	"github.com/francis-villapando/pulsepoint/internal/config"
	"github.com/francis-villapando/pulsepoint/internal/database"
	"github.com/francis-villapando/pulsepoint/internal/models"
	"github.com/francis-villapando/pulsepoint/internal/seeds"
)

func main() {
	config.LoadConfig()
	database.Connect()

	log.Println("Running migrations (just in case)...")
	if err := database.DB.AutoMigrate(
		&models.Announcement{},
		&models.Event{},
		&models.CarouselImage{},
		&models.Poll{},
		&models.PollOption{},
		&models.PollVote{},
		&models.Feedback{},
		&models.AdminUser{},
		&models.AdminAction{},
	); err != nil {
		log.Fatalf("Failed to migrate: %v", err)
	}

	seeds.SeedAdmin()
	seeds.SeedAnnouncements()
	seeds.SeedEvents()
	seeds.SeedCarousel()
	seeds.SeedPolls()

	log.Println("Seeding complete")
}
