package models

import "time"

type AdminRole string

const (
	RoleAdmin      AdminRole = "admin"
	RoleSuperAdmin AdminRole = "super_admin"
)

// AdminUser is a console account. Citizens never authenticate; only staff do.
type AdminUser struct {
	ID           string     `gorm:"primaryKey;type:text" json:"id"`
	Email        string     `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string     `gorm:"not null" json:"-"`
	Role         AdminRole  `gorm:"type:text;default:'admin'" json:"role"`
	LastLogin    *time.Time `json:"lastLogin,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
}

func (AdminUser) TableName() string {
	return "admin_users"
}

type ActionType string

const (
	ActionCreatePoll     ActionType = "CREATE_POLL"
	ActionUpdatePoll     ActionType = "UPDATE_POLL"
	ActionArchivePoll    ActionType = "ARCHIVE_POLL"
	ActionRestorePoll    ActionType = "RESTORE_POLL"
	ActionUpdateFeedback ActionType = "UPDATE_FEEDBACK_STATUS"
)

// AdminAction is an audit row for mutations made through the console's
// authenticated surface.
type AdminAction struct {
	ID         string     `gorm:"primaryKey;type:text" json:"id"`
	AdminID    string     `gorm:"index" json:"adminId"`
	Action     ActionType `json:"action"`
	TargetID   string     `json:"targetId"`
	TargetType string     `json:"targetType"`
	Reason     string     `gorm:"type:text" json:"reason"`

	CreatedAt time.Time `json:"createdAt"`
}
