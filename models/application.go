package models

import (
	"time"
)

type SessionType string

const (
	SessionTutorial SessionType = "tutorial"
	SessionLab      SessionType = "lab"
)

const (
	AvailabilityFullTime = "Full Time"
	AvailabilityPartTime = "Part Time"
)

// TutorApplication is a candidate's application for a tutor or lab role in
// one course. A candidate may hold at most one application per
// (course, session type); the composite unique index backs that rule up at
// the storage level.
type TutorApplication struct {
	ID            uint        `gorm:"primaryKey" json:"id"`
	UserID        uint        `gorm:"not null;uniqueIndex:idx_user_course_session" json:"user_id"`
	User          User        `gorm:"foreignKey:UserID" json:"user,omitempty"`
	CourseID      uint        `gorm:"not null;index;uniqueIndex:idx_user_course_session" json:"course_id"`
	Course        Course      `gorm:"foreignKey:CourseID" json:"course,omitempty"`
	SessionType   SessionType `gorm:"not null;size:10;uniqueIndex:idx_user_course_session" json:"session_type"`
	Availability  string      `gorm:"size:20" json:"availability"`
	RoleApplied   string      `gorm:"size:50" json:"role_applied"`
	PreviousRoles string      `gorm:"type:text" json:"previous_roles"`
	Skills        string      `gorm:"type:text" json:"skills"`
	Credentials   string      `gorm:"type:text" json:"credentials"`
	IsSelected    bool        `gorm:"default:false" json:"is_selected"`
	Rank          *int        `json:"rank"`
	Comment       string      `gorm:"type:text" json:"comment"`
	CreatedAt     time.Time   `json:"created_at"`
}

// SessionTypeForRole maps a requested role onto the session it fills:
// a "lab" role is a lab session, everything else is a tutorial.
func SessionTypeForRole(role string) SessionType {
	if role == string(SessionLab) {
		return SessionLab
	}
	return SessionTutorial
}
