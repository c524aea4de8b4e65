package selection

import (
	"errors"
	"fmt"
)

var (
	ErrApplicationNotFound = errors.New("Application not found")
	ErrUserNotFound        = errors.New("User not found")
	ErrLecturerNotFound    = errors.New("Lecturer not found")
)

// DuplicateApplicationError rejects a second application by the same
// candidate for the same course and session type.
type DuplicateApplicationError struct {
	Role string
}

func (e *DuplicateApplicationError) Error() string {
	return fmt.Sprintf("You have already applied for %s role in this course.", e.Role)
}

// DuplicateRankError rejects a rank already held by another selected
// candidate in one of the acting lecturer's courses.
type DuplicateRankError struct {
	Rank          int
	CandidateName string
}

func (e *DuplicateRankError) Error() string {
	return fmt.Sprintf("Rank %d is already assigned to %s. Please choose a different rank.", e.Rank, e.CandidateName)
}
