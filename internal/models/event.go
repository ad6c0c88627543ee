package models

import (
	"time"
)

type EventCategory string

const (
	EventCommunity EventCategory = "community"
	EventSports    EventCategory = "sports"
	EventEducation EventCategory = "education"
	EventCulture   EventCategory = "culture"
	EventHealth    EventCategory = "health"
)

// Event is a scheduled community happening. Time is a free-form display
// string ("8:00 AM - 1:00 PM"); Date carries the calendar day used for
// forward-looking sort order.
type Event struct {
	ID          uint          `gorm:"primaryKey" json:"id"`
	Title       string        `gorm:"not null" json:"title"`
	Description string        `gorm:"type:text;not null" json:"description"`
	Category    EventCategory `gorm:"type:text;default:'community';index" json:"category"`
	Date        time.Time     `gorm:"index" json:"date"`
	Time        string        `gorm:"not null" json:"time"`
	Venue       string        `gorm:"not null" json:"venue"`
	IsArchived  bool          `gorm:"default:false;index" json:"isArchived"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
