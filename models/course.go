package models

import (
	"fmt"
	"time"
)

type Course struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Code      string    `gorm:"uniqueIndex;not null;size:20" json:"code"`
	Name      string    `gorm:"not null;size:200" json:"name"`
	Semester  string    `gorm:"not null;size:10" json:"semester"`

	Applications        []TutorApplication `gorm:"foreignKey:CourseID" json:"applications,omitempty"`
	LecturerAssignments []CourseLecturer   `gorm:"foreignKey:CourseID" json:"lecturer_assignments,omitempty"`
}

// CurrentSemester returns the semester label for the given time:
// YYYY-1 for January through June, YYYY-2 for July through December.
func CurrentSemester(now time.Time) string {
	half := 1
	if now.Month() > time.June {
		half = 2
	}
	return fmt.Sprintf("%d-%d", now.Year(), half)
}
