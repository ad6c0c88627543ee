package seeds

import (
	"log"
	"time"

	"github.com/francis-villapando/pulsepoint/internal/database"
	"github.com/francis-villapando/pulsepoint/internal/models"
)

func strPtr(s string) *string    { return &s }
func dayPtr(s string) *time.Time { t := day(s); return &t }

// SeedCarousel loads the starter rotation for the display dashboard.
func SeedCarousel() {
	log.Println("Seeding carousel images...")

	var count int64
	database.DB.Model(&models.CarouselImage{}).Count(&count)
	if count > 0 {
		log.Println("   Carousel images already present, skipping")
		return
	}

	images := []models.CarouselImage{
		{
			ImageURL:   "https://images.unsplash.com/photo-1527529482837-4698179dc6ce?w=800&h=400&fit=crop",
			AltText:    "Community Clean-Up Day 2026",
			EventTitle: strPtr("Community Clean-Up Day"),
			EventDate:  dayPtr("2026-01-17"),
			IsActive:   true,
		},
		{
			ImageURL:   "https://images.unsplash.com/photo-1529156069898-49953e39b3ac?w=800&h=400&fit=crop",
			AltText:    "Farmers Market Opening",
			EventTitle: strPtr("Farmers Market Opening"),
			EventDate:  dayPtr("2026-01-10"),
			IsActive:   true,
		},
		{
			ImageURL:   "https://images.unsplash.com/photo-1540575467063-178a50c2df87?w=800&h=400&fit=crop",
			AltText:    "Youth Basketball Tournament Finals",
			EventTitle: strPtr("Youth Basketball Tournament Finals"),
			EventDate:  dayPtr("2026-01-05"),
			IsActive:   true,
		},
		{
			ImageURL:   "https://images.unsplash.com/photo-1516116216624-53e697fedbea?w=800&h=400&fit=crop",
			AltText:    "Digital Literacy Workshop",
			EventTitle: strPtr("Digital Literacy Workshop"),
			EventDate:  dayPtr("2025-12-28"),
			IsActive:   true,
		},
	}

	if err := database.DB.Create(&images).Error; err != nil {
		log.Printf("   Failed to seed carousel images: %v", err)
	} else {
		log.Printf("   Seeded %d carousel images", len(images))
	}
}
