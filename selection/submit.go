package selection

import (
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"teachteam/models"
)

// SubmitRequest carries a candidate's application form. The candidate is
// resolved by email; the course by code, created on first reference.
type SubmitRequest struct {
	Name          string
	Email         string
	CourseCode    string
	CourseName    string
	Role          string
	Availability  string
	PreviousRoles string
	Skills        []string
	Credentials   string
}

// Submit creates a new tutor application. A candidate may apply once per
// (course, session type); a second submission for the same pair is rejected
// and nothing is written.
func (e *Engine) Submit(req SubmitRequest) (*models.TutorApplication, error) {
	user, err := e.stores.Users.FindUserByEmail(req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	course, err := e.findOrCreateCourse(req.CourseCode, req.CourseName)
	if err != nil {
		return nil, err
	}

	session := models.SessionTypeForRole(req.Role)

	_, err = e.stores.Apps.FindApplication(user.ID, course.ID, session)
	if err == nil {
		return nil, &DuplicateApplicationError{Role: req.Role}
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	app := &models.TutorApplication{
		UserID:        user.ID,
		CourseID:      course.ID,
		SessionType:   session,
		Availability:  req.Availability,
		RoleApplied:   req.Role,
		PreviousRoles: req.PreviousRoles,
		Skills:        strings.Join(req.Skills, ", "),
		Credentials:   req.Credentials,
	}
	if err := e.stores.Apps.CreateApplication(app); err != nil {
		return nil, err
	}

	e.log.Info("application submitted",
		zap.Uint("application_id", app.ID),
		zap.Uint("user_id", user.ID),
		zap.Uint("course_id", course.ID),
	)
	return app, nil
}

// findOrCreateCourse resolves a course by code, creating it with the
// current semester on first reference. When a later submission supplies a
// different name for an existing code, the latest name wins.
func (e *Engine) findOrCreateCourse(code, name string) (*models.Course, error) {
	course, err := e.stores.Courses.FindCourseByCode(code)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		courseName := name
		if courseName == "" {
			courseName = code
		}
		course = &models.Course{
			Code:     code,
			Name:     courseName,
			Semester: models.CurrentSemester(time.Now()),
		}
		if err := e.stores.Courses.CreateCourse(course); err != nil {
			return nil, err
		}
		return course, nil
	}
	if err != nil {
		return nil, err
	}

	if name != "" && course.Name != name {
		course.Name = name
		if err := e.stores.Courses.SaveCourse(course); err != nil {
			return nil, err
		}
	}
	return course, nil
}
