package handlers

import (
	"errors"
	"time"

	"github.com/francis-villapando/pulsepoint/internal/content"
	"github.com/francis-villapando/pulsepoint/internal/models"
)

type EventCreate struct {
	Title       string               `json:"title" binding:"required"`
	Description string               `json:"description" binding:"required"`
	Category    models.EventCategory `json:"category" binding:"required,oneof=community sports education culture health"`
	Date        string               `json:"date" binding:"required"`
	Time        string               `json:"time" binding:"required"`
	Venue       string               `json:"venue" binding:"required"`
}

type EventUpdate struct {
	Title       *string               `json:"title" binding:"omitnil,min=1"`
	Description *string               `json:"description" binding:"omitnil,min=1"`
	Category    *models.EventCategory `json:"category" binding:"omitnil,oneof=community sports education culture health"`
	Date        *string               `json:"date" binding:"omitnil,min=1"`
	Time        *string               `json:"time" binding:"omitnil,min=1"`
	Venue       *string               `json:"venue" binding:"omitnil,min=1"`
}

// Events serves /api/events. Events are forward-looking, so the public
// listing sorts by calendar day ascending instead of recency.
var Events = content.NewResource(content.Definition[models.Event, EventCreate, EventUpdate]{
	Name:        "event",
	Plural:      "events",
	CachePrefix: "events",
	ActiveOrder: "date ASC",
	Build: func(in EventCreate) (models.Event, error) {
		date, err := parseDate(in.Date)
		if err != nil {
			return models.Event{}, err
		}
		return models.Event{
			Title:       in.Title,
			Description: in.Description,
			Category:    in.Category,
			Date:        date,
			Time:        in.Time,
			Venue:       in.Venue,
		}, nil
	},
	Apply: func(row *models.Event, in EventUpdate) error {
		if in.Title != nil {
			row.Title = *in.Title
		}
		if in.Description != nil {
			row.Description = *in.Description
		}
		if in.Category != nil {
			row.Category = *in.Category
		}
		if in.Date != nil {
			date, err := parseDate(*in.Date)
			if err != nil {
				return err
			}
			row.Date = date
		}
		if in.Time != nil {
			row.Time = *in.Time
		}
		if in.Venue != nil {
			row.Venue = *in.Venue
		}
		return nil
	},
})

// parseDate accepts the calendar-day form the admin forms send and full
// RFC 3339 timestamps.
func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Time{}, errors.New("date must be YYYY-MM-DD or RFC 3339")
}
