package database

import (
	"gorm.io/gorm"

	"teachteam/models"
	"teachteam/selection"
)

// GORM-backed implementations of the selection store interfaces.

type Users struct {
	db *gorm.DB
}

func NewUsers(db *gorm.DB) *Users {
	return &Users{db: db}
}

func (s *Users) FindUserByID(id uint) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *Users) FindUserByEmail(email string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

type Courses struct {
	db *gorm.DB
}

func NewCourses(db *gorm.DB) *Courses {
	return &Courses{db: db}
}

func (s *Courses) FindCourseByCode(code string) (*models.Course, error) {
	var course models.Course
	if err := s.db.Where("code = ?", code).First(&course).Error; err != nil {
		return nil, err
	}
	return &course, nil
}

func (s *Courses) CreateCourse(course *models.Course) error {
	return s.db.Create(course).Error
}

func (s *Courses) SaveCourse(course *models.Course) error {
	return s.db.Save(course).Error
}

type CourseLecturers struct {
	db *gorm.DB
}

func NewCourseLecturers(db *gorm.DB) *CourseLecturers {
	return &CourseLecturers{db: db}
}

func (s *CourseLecturers) CourseIDsForLecturer(lecturerID uint) ([]uint, error) {
	var ids []uint
	err := s.db.Model(&models.CourseLecturer{}).
		Where("lecturer_id = ?", lecturerID).
		Pluck("course_id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

type Applications struct {
	db *gorm.DB
}

func NewApplications(db *gorm.DB) *Applications {
	return &Applications{db: db}
}

func (s *Applications) FindApplicationByID(id uint) (*models.TutorApplication, error) {
	var app models.TutorApplication
	if err := s.db.Preload("User").Preload("Course").First(&app, id).Error; err != nil {
		return nil, err
	}
	return &app, nil
}

func (s *Applications) FindApplication(userID, courseID uint, session models.SessionType) (*models.TutorApplication, error) {
	var app models.TutorApplication
	err := s.db.
		Where("user_id = ? AND course_id = ? AND session_type = ?", userID, courseID, session).
		First(&app).Error
	if err != nil {
		return nil, err
	}
	return &app, nil
}

func (s *Applications) FindSelectedByRank(courseIDs []uint, rank int, excludeID uint) (*models.TutorApplication, error) {
	if len(courseIDs) == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	var app models.TutorApplication
	err := s.db.Preload("User").
		Where("id <> ? AND course_id IN ? AND rank = ? AND is_selected = ?", excludeID, courseIDs, rank, true).
		First(&app).Error
	if err != nil {
		return nil, err
	}
	return &app, nil
}

func (s *Applications) CreateApplication(app *models.TutorApplication) error {
	return s.db.Create(app).Error
}

func (s *Applications) SaveApplication(app *models.TutorApplication) error {
	return s.db.Save(app).Error
}

func (s *Applications) DeleteApplication(app *models.TutorApplication) error {
	return s.db.Delete(app).Error
}

func (s *Applications) ApplicationsInCourses(courseIDs []uint) ([]models.TutorApplication, error) {
	var apps []models.TutorApplication
	err := s.db.Preload("User").
		Where("course_id IN ?", courseIDs).
		Order("id asc").
		Find(&apps).Error
	if err != nil {
		return nil, err
	}
	return apps, nil
}

type SelectedCandidates struct {
	db *gorm.DB
}

func NewSelectedCandidates(db *gorm.DB) *SelectedCandidates {
	return &SelectedCandidates{db: db}
}

func (s *SelectedCandidates) FindSelection(applicationID, lecturerID uint) (*models.SelectedCandidate, error) {
	var sc models.SelectedCandidate
	err := s.db.
		Where("application_id = ? AND selected_by_id = ?", applicationID, lecturerID).
		First(&sc).Error
	if err != nil {
		return nil, err
	}
	return &sc, nil
}

func (s *SelectedCandidates) CreateSelection(sc *models.SelectedCandidate) error {
	return s.db.Create(sc).Error
}

func (s *SelectedCandidates) DeleteSelection(applicationID, lecturerID uint) error {
	return s.db.
		Where("application_id = ? AND selected_by_id = ?", applicationID, lecturerID).
		Delete(&models.SelectedCandidate{}).Error
}

// NewStores wires the GORM implementations into the bundle the selection
// engine consumes.
func NewStores(db *gorm.DB) selection.Stores {
	return selection.Stores{
		Users:       NewUsers(db),
		Courses:     NewCourses(db),
		Assignments: NewCourseLecturers(db),
		Apps:        NewApplications(db),
		Selected:    NewSelectedCandidates(db),
	}
}
