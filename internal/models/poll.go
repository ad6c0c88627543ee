package models

import (
	"time"
)

// Poll is a citizen vote with a fixed option list and an expiry. Vote
// counters are denormalized onto the poll and its options; PollVote rows
// exist to keep one vote per client.
type Poll struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Question   string    `gorm:"type:text;not null" json:"question"`
	ExpiresAt  time.Time `json:"expiresAt"`
	IsActive   bool      `gorm:"default:true" json:"isActive"`
	TotalVotes int       `gorm:"default:0" json:"totalVotes"`
	IsArchived bool      `gorm:"default:false;index" json:"isArchived"`

	Options []PollOption `gorm:"foreignKey:PollID" json:"options"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type PollOption struct {
	ID     uint   `gorm:"primaryKey" json:"id"`
	PollID uint   `gorm:"index" json:"pollId"`
	Text   string `gorm:"not null" json:"text"`
	Votes  int    `gorm:"default:0" json:"votes"`
}

// PollVote records that a client already voted on a poll.
type PollVote struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	PollID   uint   `gorm:"uniqueIndex:idx_poll_voter" json:"pollId"`
	OptionID uint   `json:"optionId"`
	VoterKey string `gorm:"uniqueIndex:idx_poll_voter" json:"-"`

	CreatedAt time.Time `json:"createdAt"`
}
