package models

import (
	"time"
)

// SelectedCandidate records that a lecturer marked an application as
// selected. At most one row may exist per (application, lecturer) pair; the
// unique index enforces this even when two updates race.
type SelectedCandidate struct {
	ID            uint              `gorm:"primaryKey" json:"id"`
	ApplicationID uint              `gorm:"not null;uniqueIndex:idx_application_lecturer" json:"application_id"`
	Application   *TutorApplication `gorm:"foreignKey:ApplicationID;constraint:OnDelete:CASCADE" json:"application,omitempty"`
	SelectedByID  uint              `gorm:"not null;index;uniqueIndex:idx_application_lecturer" json:"selected_by_id"`
	SelectedBy    *User             `gorm:"foreignKey:SelectedByID" json:"selected_by,omitempty"`
	SelectedAt    time.Time         `gorm:"autoCreateTime" json:"selected_at"`
}
