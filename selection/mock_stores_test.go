package selection

import (
	"go.uber.org/zap"
	"gorm.io/gorm"

	"teachteam/models"
)

// Map-backed store fakes. Find methods return copies so staged, unsaved
// mutations never leak into the backing maps.

type mockUserStore struct {
	users map[uint]*models.User
}

func newMockUserStore() *mockUserStore {
	return &mockUserStore{users: make(map[uint]*models.User)}
}

func (m *mockUserStore) FindUserByID(id uint) (*models.User, error) {
	if u, ok := m.users[id]; ok {
		copied := *u
		return &copied, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserStore) FindUserByEmail(email string) (*models.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

type mockCourseStore struct {
	courses map[uint]*models.Course
	nextID  uint
}

func newMockCourseStore() *mockCourseStore {
	return &mockCourseStore{courses: make(map[uint]*models.Course), nextID: 1}
}

func (m *mockCourseStore) FindCourseByCode(code string) (*models.Course, error) {
	for _, c := range m.courses {
		if c.Code == code {
			copied := *c
			return &copied, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockCourseStore) CreateCourse(course *models.Course) error {
	course.ID = m.nextID
	m.nextID++
	copied := *course
	m.courses[course.ID] = &copied
	return nil
}

func (m *mockCourseStore) SaveCourse(course *models.Course) error {
	copied := *course
	m.courses[course.ID] = &copied
	return nil
}

type mockAssignmentStore struct {
	byLecturer map[uint][]uint
}

func newMockAssignmentStore() *mockAssignmentStore {
	return &mockAssignmentStore{byLecturer: make(map[uint][]uint)}
}

func (m *mockAssignmentStore) CourseIDsForLecturer(lecturerID uint) ([]uint, error) {
	return m.byLecturer[lecturerID], nil
}

type mockApplicationStore struct {
	apps   map[uint]*models.TutorApplication
	nextID uint
}

func newMockApplicationStore() *mockApplicationStore {
	return &mockApplicationStore{apps: make(map[uint]*models.TutorApplication), nextID: 1}
}

func (m *mockApplicationStore) FindApplicationByID(id uint) (*models.TutorApplication, error) {
	if a, ok := m.apps[id]; ok {
		copied := *a
		return &copied, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockApplicationStore) FindApplication(userID, courseID uint, session models.SessionType) (*models.TutorApplication, error) {
	for _, a := range m.apps {
		if a.UserID == userID && a.CourseID == courseID && a.SessionType == session {
			copied := *a
			return &copied, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockApplicationStore) FindSelectedByRank(courseIDs []uint, rank int, excludeID uint) (*models.TutorApplication, error) {
	for _, a := range m.apps {
		if a.ID == excludeID || !a.IsSelected || a.Rank == nil || *a.Rank != rank {
			continue
		}
		for _, id := range courseIDs {
			if a.CourseID == id {
				copied := *a
				return &copied, nil
			}
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockApplicationStore) CreateApplication(app *models.TutorApplication) error {
	app.ID = m.nextID
	m.nextID++
	copied := *app
	m.apps[app.ID] = &copied
	return nil
}

func (m *mockApplicationStore) SaveApplication(app *models.TutorApplication) error {
	copied := *app
	m.apps[app.ID] = &copied
	return nil
}

func (m *mockApplicationStore) DeleteApplication(app *models.TutorApplication) error {
	delete(m.apps, app.ID)
	return nil
}

func (m *mockApplicationStore) ApplicationsInCourses(courseIDs []uint) ([]models.TutorApplication, error) {
	var result []models.TutorApplication
	for id := uint(1); id < m.nextID; id++ {
		a, ok := m.apps[id]
		if !ok {
			continue
		}
		for _, cid := range courseIDs {
			if a.CourseID == cid {
				result = append(result, *a)
				break
			}
		}
	}
	return result, nil
}

type mockSelectedStore struct {
	rows   map[uint]*models.SelectedCandidate
	nextID uint
}

func newMockSelectedStore() *mockSelectedStore {
	return &mockSelectedStore{rows: make(map[uint]*models.SelectedCandidate), nextID: 1}
}

func (m *mockSelectedStore) FindSelection(applicationID, lecturerID uint) (*models.SelectedCandidate, error) {
	for _, sc := range m.rows {
		if sc.ApplicationID == applicationID && sc.SelectedByID == lecturerID {
			copied := *sc
			return &copied, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockSelectedStore) CreateSelection(sc *models.SelectedCandidate) error {
	sc.ID = m.nextID
	m.nextID++
	copied := *sc
	m.rows[sc.ID] = &copied
	return nil
}

func (m *mockSelectedStore) DeleteSelection(applicationID, lecturerID uint) error {
	for id, sc := range m.rows {
		if sc.ApplicationID == applicationID && sc.SelectedByID == lecturerID {
			delete(m.rows, id)
		}
	}
	return nil
}

func (m *mockSelectedStore) count() int {
	return len(m.rows)
}

type testStores struct {
	users       *mockUserStore
	courses     *mockCourseStore
	assignments *mockAssignmentStore
	apps        *mockApplicationStore
	selected    *mockSelectedStore
}

func newTestEngine() (*Engine, *testStores) {
	ts := &testStores{
		users:       newMockUserStore(),
		courses:     newMockCourseStore(),
		assignments: newMockAssignmentStore(),
		apps:        newMockApplicationStore(),
		selected:    newMockSelectedStore(),
	}
	engine := NewEngine(Stores{
		Users:       ts.users,
		Courses:     ts.courses,
		Assignments: ts.assignments,
		Apps:        ts.apps,
		Selected:    ts.selected,
	}, zap.NewNop())
	return engine, ts
}

func (ts *testStores) addUser(id uint, name, email string, role models.Role) *models.User {
	u := &models.User{ID: id, Name: name, Email: email, Role: role}
	ts.users.users[id] = u
	return u
}

func (ts *testStores) addCourse(id uint, code string) *models.Course {
	c := &models.Course{ID: id, Code: code, Name: code, Semester: "2026-2"}
	ts.courses.courses[id] = c
	if id >= ts.courses.nextID {
		ts.courses.nextID = id + 1
	}
	return c
}

func (ts *testStores) addApplication(userID uint, userName string, courseID uint, session models.SessionType) *models.TutorApplication {
	app := &models.TutorApplication{
		UserID:      userID,
		User:        models.User{ID: userID, Name: userName},
		CourseID:    courseID,
		SessionType: session,
	}
	ts.apps.CreateApplication(app)
	return app
}
