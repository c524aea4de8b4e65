package models

import (
	"time"
)

// CourseLecturer assigns a lecturer to a course. A lecturer may only review
// and act on applications for courses they are assigned to.
type CourseLecturer struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	CreatedAt  time.Time `json:"created_at"`
	CourseID   uint      `gorm:"not null;index" json:"course_id"`
	Course     *Course   `gorm:"foreignKey:CourseID" json:"course,omitempty"`
	LecturerID uint      `gorm:"not null;index" json:"lecturer_id"`
	Lecturer   *User     `gorm:"foreignKey:LecturerID" json:"lecturer,omitempty"`
}
