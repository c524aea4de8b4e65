// Package validation holds the pure input checks applied before any request
// reaches the database: field presence, email format, password strength,
// enumerated values and numeric bounds. Error messages are surfaced verbatim
// in API responses.
package validation

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"teachteam/models"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

const specialChars = `!@#$%^&*()_+-=[]{};':"\|,.<>/?`

const (
	minPasswordLen = 8
	maxPasswordLen = 128
	MaxCommentLen  = 1000
	MinRank        = 1
	MaxRank        = 100
)

func Email(email string) error {
	if email == "" {
		return errors.New("Email is required")
	}
	if !emailPattern.MatchString(email) {
		return errors.New("Invalid email format")
	}
	return nil
}

func Name(name string) error {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return errors.New("Name is required and must be a non-empty string")
	}
	if len(trimmed) < 2 || len(trimmed) > 100 {
		return errors.New("Name must be between 2 and 100 characters")
	}
	return nil
}

// Password checks the strength requirements: 8-128 characters with at least
// one uppercase letter, one lowercase letter, one digit and one special
// character.
func Password(password string) error {
	if password == "" {
		return errors.New("Password is required")
	}
	if len(password) < minPasswordLen {
		return fmt.Errorf("Password must be at least %d characters long", minPasswordLen)
	}
	if len(password) > maxPasswordLen {
		return fmt.Errorf("Password cannot exceed %d characters", maxPasswordLen)
	}

	var hasUpper, hasLower, hasDigit, hasSpecial bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		case strings.ContainsRune(specialChars, r):
			hasSpecial = true
		}
	}

	if !hasUpper {
		return errors.New("Password must contain at least one uppercase letter")
	}
	if !hasLower {
		return errors.New("Password must contain at least one lowercase letter")
	}
	if !hasDigit {
		return errors.New("Password must contain at least one number")
	}
	if !hasSpecial {
		return errors.New("Password must contain at least one special character (!@#$%^&* etc.)")
	}
	return nil
}

func Role(role string) error {
	switch models.Role(role) {
	case models.RoleCandidate, models.RoleLecturer, models.RoleAdmin:
		return nil
	}
	return errors.New("Role must be either 'candidate', 'lecturer', or 'admin'")
}

func Availability(availability string) error {
	if availability != models.AvailabilityFullTime && availability != models.AvailabilityPartTime {
		return errors.New("Availability must be either 'Full Time' or 'Part Time'")
	}
	return nil
}

func Rank(rank int) error {
	if rank < MinRank || rank > MaxRank {
		return errors.New("Rank must be a positive integer between 1 and 100")
	}
	return nil
}

func Comment(comment string) error {
	if len(comment) > MaxCommentLen {
		return errors.New("Comment cannot exceed 1000 characters")
	}
	return nil
}

var (
	courseCodePattern = regexp.MustCompile(`^COSC\d{4}$`)
	semesterPattern   = regexp.MustCompile(`^\d{4}-[1-2]$`)
)

func CourseCode(code string) error {
	if !courseCodePattern.MatchString(code) {
		return errors.New("Course code must be in format COSCxxxx (e.g., COSC2222)")
	}
	return nil
}

func Semester(semester string) error {
	if !semesterPattern.MatchString(semester) {
		return errors.New("Semester must be in format YYYY-S (e.g., 2024-1 or 2024-2)")
	}
	return nil
}
