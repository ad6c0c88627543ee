package models

import (
	"time"
)

type AnnouncementCategory string

const (
	AnnouncementGeneral     AnnouncementCategory = "general"
	AnnouncementSafety      AnnouncementCategory = "safety"
	AnnouncementMaintenance AnnouncementCategory = "maintenance"
	AnnouncementCelebration AnnouncementCategory = "celebration"
)

// Announcement is a notice shown on the public display board.
// Pinned announcements sort ahead of everything else regardless of age.
type Announcement struct {
	ID         uint                 `gorm:"primaryKey" json:"id"`
	Title      string               `gorm:"not null" json:"title"`
	Content    string               `gorm:"type:text;not null" json:"content"`
	Category   AnnouncementCategory `gorm:"type:text;default:'general';index" json:"category"`
	IsPinned   bool                 `gorm:"default:false" json:"isPinned"`
	IsArchived bool                 `gorm:"default:false;index" json:"isArchived"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
