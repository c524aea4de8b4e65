package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEmail(t *testing.T) {
	valid := []string{"john@x.edu", "a.b@uni.example.org", "x+tag@dom.io"}
	for _, email := range valid {
		assert.NoError(t, Email(email), email)
	}

	invalid := []string{"", "plain", "no@tld", "two@@x.edu", "sp ace@x.edu", "@x.edu"}
	for _, email := range invalid {
		assert.Error(t, Email(email), email)
	}
}

func TestPassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
		wantMsg  string
	}{
		{"valid", "Str0ng!pass", ""},
		{"empty", "", "Password is required"},
		{"too short", "Ab1!", "Password must be at least 8 characters long"},
		{"too long", "Ab1!" + strings.Repeat("x", 130), "Password cannot exceed 128 characters"},
		{"no uppercase", "weak1pass!", "Password must contain at least one uppercase letter"},
		{"no lowercase", "WEAK1PASS!", "Password must contain at least one lowercase letter"},
		{"no digit", "Weakpass!", "Password must contain at least one number"},
		{"no special", "Weak1pass", "Password must contain at least one special character (!@#$%^&* etc.)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Password(tt.password)
			if tt.wantMsg == "" {
				assert.NoError(t, err)
				return
			}
			assert.EqualError(t, err, tt.wantMsg)
		})
	}
}

func TestName(t *testing.T) {
	assert.NoError(t, Name("John Smith"))
	assert.Error(t, Name(""))
	assert.Error(t, Name("   "))
	assert.Error(t, Name("J"))
	assert.Error(t, Name(strings.Repeat("a", 101)))
}

func TestRole(t *testing.T) {
	for _, role := range []string{"candidate", "lecturer", "admin"} {
		assert.NoError(t, Role(role))
	}
	assert.Error(t, Role("student"))
	assert.Error(t, Role(""))
	assert.Error(t, Role("Lecturer"))
}

func TestAvailability(t *testing.T) {
	assert.NoError(t, Availability("Full Time"))
	assert.NoError(t, Availability("Part Time"))
	assert.Error(t, Availability("full time"))
	assert.Error(t, Availability("Casual"))
	assert.Error(t, Availability(""))
}

func TestRank(t *testing.T) {
	assert.NoError(t, Rank(1))
	assert.NoError(t, Rank(100))
	assert.EqualError(t, Rank(0), "Rank must be a positive integer between 1 and 100")
	assert.Error(t, Rank(-3))
	assert.Error(t, Rank(101))
}

func TestComment(t *testing.T) {
	assert.NoError(t, Comment(""))
	assert.NoError(t, Comment(strings.Repeat("a", 1000)))
	assert.EqualError(t, Comment(strings.Repeat("a", 1001)), "Comment cannot exceed 1000 characters")
}

func TestCourseCode(t *testing.T) {
	assert.NoError(t, CourseCode("COSC2222"))
	assert.Error(t, CourseCode("cosc2222"))
	assert.Error(t, CourseCode("COSC12345"))
	assert.Error(t, CourseCode("MATH1010"))
	assert.Error(t, CourseCode(""))
}

func TestSemester(t *testing.T) {
	assert.NoError(t, Semester("2024-1"))
	assert.NoError(t, Semester("2026-2"))
	assert.Error(t, Semester("2024-3"))
	assert.Error(t, Semester("24-1"))
	assert.Error(t, Semester("2024"))
}
