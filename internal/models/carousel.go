package models

import (
	"time"
)

// CarouselImage rotates on the display dashboard. Images live at external
// URLs; the store never holds blobs. EventTitle/EventDate optionally link
// the image to the happening it promotes.
type CarouselImage struct {
	ID         uint       `gorm:"primaryKey" json:"id"`
	ImageURL   string     `gorm:"not null" json:"imageUrl"`
	AltText    string     `gorm:"not null" json:"altText"`
	EventTitle *string    `json:"eventTitle,omitempty"`
	EventDate  *time.Time `json:"eventDate,omitempty"`
	IsActive   bool       `gorm:"default:true" json:"isActive"`
	IsArchived bool       `gorm:"default:false;index" json:"isArchived"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (CarouselImage) TableName() string {
	return "carousel_images"
}
