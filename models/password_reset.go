package models

import (
	"time"

	"github.com/google/uuid"
)

// PasswordReset is a single-use token letting a user set a new password.
type PasswordReset struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	User      *User     `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Token     string    `gorm:"uniqueIndex;not null;size:64" json:"token"`
	Used      bool      `gorm:"default:false" json:"used"`
	ExpiresAt time.Time `gorm:"not null" json:"expires_at"`
}

func NewResetToken() string {
	return uuid.NewString()
}

func (p *PasswordReset) IsValid() bool {
	return !p.Used && time.Now().Before(p.ExpiresAt)
}
