package handlers

import (
	"github.com/francis-villapando/pulsepoint/internal/content"
	"github.com/francis-villapando/pulsepoint/internal/models"
)

type AnnouncementCreate struct {
	Title    string                      `json:"title" binding:"required"`
	Content  string                      `json:"content" binding:"required"`
	Category models.AnnouncementCategory `json:"category" binding:"required,oneof=general safety maintenance celebration"`
	IsPinned bool                        `json:"isPinned"`
}

type AnnouncementUpdate struct {
	Title    *string                      `json:"title" binding:"omitnil,min=1"`
	Content  *string                      `json:"content" binding:"omitnil,min=1"`
	Category *models.AnnouncementCategory `json:"category" binding:"omitnil,oneof=general safety maintenance celebration"`
	IsPinned *bool                        `json:"isPinned"`
}

// Announcements serves /api/announcements. Pinned rows sort ahead of
// newer unpinned ones.
var Announcements = content.NewResource(content.Definition[models.Announcement, AnnouncementCreate, AnnouncementUpdate]{
	Name:        "announcement",
	Plural:      "announcements",
	CachePrefix: "announcements",
	ActiveOrder: "is_pinned DESC, created_at DESC",
	Build: func(in AnnouncementCreate) (models.Announcement, error) {
		return models.Announcement{
			Title:    in.Title,
			Content:  in.Content,
			Category: in.Category,
			IsPinned: in.IsPinned,
		}, nil
	},
	Apply: func(row *models.Announcement, in AnnouncementUpdate) error {
		if in.Title != nil {
			row.Title = *in.Title
		}
		if in.Content != nil {
			row.Content = *in.Content
		}
		if in.Category != nil {
			row.Category = *in.Category
		}
		if in.IsPinned != nil {
			row.IsPinned = *in.IsPinned
		}
		return nil
	},
})
