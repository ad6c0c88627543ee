package models

import (
	"time"
)

type FeedbackCategory string

const (
	FeedbackPraise     FeedbackCategory = "praise"
	FeedbackSuggestion FeedbackCategory = "suggestion"
	FeedbackComplaint  FeedbackCategory = "complaint"
	FeedbackQuestion   FeedbackCategory = "question"
)

// FeedbackStatus walks pending -> reviewed -> addressed as staff work
// through submissions.
type FeedbackStatus string

const (
	FeedbackPending   FeedbackStatus = "pending"
	FeedbackReviewed  FeedbackStatus = "reviewed"
	FeedbackAddressed FeedbackStatus = "addressed"
)

// Feedback is an anonymous citizen submission from the mobile view.
type Feedback struct {
	ID       uint             `gorm:"primaryKey" json:"id"`
	Content  string           `gorm:"type:text;not null" json:"content"`
	Category FeedbackCategory `gorm:"type:text;default:'suggestion';index" json:"category"`
	Status   FeedbackStatus   `gorm:"type:text;default:'pending';index" json:"status"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (Feedback) TableName() string {
	return "feedback_entries"
}
