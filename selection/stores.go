package selection

import (
	"teachteam/models"
)

// The store interfaces cover the find/create/save/delete operations the
// engine needs. Missing records are reported as gorm.ErrRecordNotFound.
// The GORM-backed implementations live in the database package; tests use
// map-backed fakes.

type UserStore interface {
	FindUserByID(id uint) (*models.User, error)
	FindUserByEmail(email string) (*models.User, error)
}

type CourseStore interface {
	FindCourseByCode(code string) (*models.Course, error)
	CreateCourse(course *models.Course) error
	SaveCourse(course *models.Course) error
}

type CourseLecturerStore interface {
	// CourseIDsForLecturer returns the ids of all courses currently
	// assigned to the lecturer.
	CourseIDsForLecturer(lecturerID uint) ([]uint, error)
}

type ApplicationStore interface {
	FindApplicationByID(id uint) (*models.TutorApplication, error)
	FindApplication(userID, courseID uint, session models.SessionType) (*models.TutorApplication, error)
	// FindSelectedByRank returns a selected application other than
	// excludeID, in one of the given courses, holding the given rank. The
	// result has its User loaded.
	FindSelectedByRank(courseIDs []uint, rank int, excludeID uint) (*models.TutorApplication, error)
	CreateApplication(app *models.TutorApplication) error
	SaveApplication(app *models.TutorApplication) error
	DeleteApplication(app *models.TutorApplication) error
	// ApplicationsInCourses returns all applications in the given courses
	// with their User loaded.
	ApplicationsInCourses(courseIDs []uint) ([]models.TutorApplication, error)
}

type SelectedCandidateStore interface {
	FindSelection(applicationID, lecturerID uint) (*models.SelectedCandidate, error)
	CreateSelection(sc *models.SelectedCandidate) error
	// DeleteSelection removes the (application, lecturer) row if present;
	// deleting a missing row is not an error.
	DeleteSelection(applicationID, lecturerID uint) error
}

// Stores bundles everything the engine depends on.
type Stores struct {
	Users       UserStore
	Courses     CourseStore
	Assignments CourseLecturerStore
	Apps        ApplicationStore
	Selected    SelectedCandidateStore
}
