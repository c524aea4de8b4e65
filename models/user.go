package models

import (
	"time"
)

type Role string

const (
	RoleCandidate Role = "candidate"
	RoleLecturer  Role = "lecturer"
	RoleAdmin     Role = "admin"
)

type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Name         string    `gorm:"not null;size:100" json:"name"`
	Email        string    `gorm:"uniqueIndex;not null;size:255" json:"email"`
	PasswordHash string    `gorm:"not null" json:"-"`
	Role         Role      `gorm:"not null;size:20" json:"role"`
	AvatarURL    *string   `gorm:"size:500" json:"avatar_url"`
	IsBlocked    bool      `gorm:"default:false" json:"is_blocked"`
	JoinedAt     time.Time `gorm:"autoCreateTime" json:"joined_at"`

	Applications []TutorApplication  `gorm:"foreignKey:UserID" json:"applications,omitempty"`
	Selections   []SelectedCandidate `gorm:"foreignKey:SelectedByID" json:"selections,omitempty"`
}

func (u *User) IsCandidate() bool {
	return u.Role == RoleCandidate
}

func (u *User) IsLecturer() bool {
	return u.Role == RoleLecturer
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
