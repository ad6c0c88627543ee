package handlers

import (
	"time"

	"github.com/francis-villapando/pulsepoint/internal/content"
	"github.com/francis-villapando/pulsepoint/internal/models"
)

type CarouselCreate struct {
	ImageURL   string  `json:"imageUrl" binding:"required,url"`
	AltText    string  `json:"altText" binding:"required"`
	EventTitle *string `json:"eventTitle"`
	EventDate  *string `json:"eventDate" binding:"omitnil,min=1"`
	IsActive   *bool   `json:"isActive"`
}

type CarouselUpdate struct {
	ImageURL   *string `json:"imageUrl" binding:"omitnil,url"`
	AltText    *string `json:"altText" binding:"omitnil,min=1"`
	EventTitle *string `json:"eventTitle"`
	EventDate  *string `json:"eventDate" binding:"omitnil,min=1"`
	IsActive   *bool   `json:"isActive"`
}

// Carousel serves /api/carousel. Images are external URLs only; newest
// uploads rotate first.
var Carousel = content.NewResource(content.Definition[models.CarouselImage, CarouselCreate, CarouselUpdate]{
	Name:        "carousel item",
	Plural:      "carousel items",
	CachePrefix: "carousel",
	ActiveOrder: "created_at DESC",
	Build: func(in CarouselCreate) (models.CarouselImage, error) {
		eventDate, err := parseOptionalDate(in.EventDate)
		if err != nil {
			return models.CarouselImage{}, err
		}

		// Matches the admin form default: new images start active
		active := true
		if in.IsActive != nil {
			active = *in.IsActive
		}

		return models.CarouselImage{
			ImageURL:   in.ImageURL,
			AltText:    in.AltText,
			EventTitle: in.EventTitle,
			EventDate:  eventDate,
			IsActive:   active,
		}, nil
	},
	Apply: func(row *models.CarouselImage, in CarouselUpdate) error {
		if in.ImageURL != nil {
			row.ImageURL = *in.ImageURL
		}
		if in.AltText != nil {
			row.AltText = *in.AltText
		}
		if in.EventTitle != nil {
			row.EventTitle = in.EventTitle
		}
		if in.EventDate != nil {
			eventDate, err := parseOptionalDate(in.EventDate)
			if err != nil {
				return err
			}
			row.EventDate = eventDate
		}
		if in.IsActive != nil {
			row.IsActive = *in.IsActive
		}
		return nil
	},
})

func parseOptionalDate(s *string) (*time.Time, error) {
	if s == nil {
		return nil, nil
	}
	t, err := parseDate(*s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
