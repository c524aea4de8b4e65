package handlers

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"go.uber.org/zap"

	"teachteam/database"
	"teachteam/models"
	"teachteam/validation"
)

// AdminHandler serves the admin panel API: course management, lecturer
// assignments, candidate access control and recruitment reports.
type AdminHandler struct {
	log *zap.Logger
}

func NewAdminHandler(log *zap.Logger) *AdminHandler {
	return &AdminHandler{log: log}
}

func (h *AdminHandler) ListCourses(w http.ResponseWriter, r *http.Request) {
	var courses []models.Course
	if err := database.GetDB().Find(&courses).Error; err != nil {
		h.log.Error("listing courses failed", zap.Error(err))
		respondMessage(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	respondJSON(w, http.StatusOK, courses)
}

type courseRequest struct {
	Name     string `json:"name"`
	Code     string `json:"code"`
	Semester string `json:"semester"`
}

func (h *AdminHandler) CreateCourse(w http.ResponseWriter, r *http.Request) {
	var req courseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Name == "" {
		respondMessage(w, http.StatusBadRequest, "Course name is required")
		return
	}
	if err := validation.CourseCode(req.Code); err != nil {
		respondMessage(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := validation.Semester(req.Semester); err != nil {
		respondMessage(w, http.StatusBadRequest, err.Error())
		return
	}

	course := models.Course{Name: req.Name, Code: req.Code, Semester: req.Semester}
	if err := database.GetDB().Create(&course).Error; err != nil {
		h.log.Error("course creation failed", zap.Error(err))
		respondMessage(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	respondJSON(w, http.StatusCreated, course)
}

// UpdateCourse applies a partial edit: only the provided fields change.
func (h *AdminHandler) UpdateCourse(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r, "id", "Invalid course ID")
	if !ok {
		return
	}

	var req courseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	db := database.GetDB()

	var course models.Course
	if err := db.First(&course, id).Error; err != nil {
		respondMessage(w, http.StatusNotFound, "Course not found")
		return
	}

	if req.Name != "" {
		course.Name = req.Name
	}
	if req.Code != "" {
		if err := validation.CourseCode(req.Code); err != nil {
			respondMessage(w, http.StatusBadRequest, err.Error())
			return
		}
		course.Code = req.Code
	}
	if req.Semester != "" {
		if err := validation.Semester(req.Semester); err != nil {
			respondMessage(w, http.StatusBadRequest, err.Error())
			return
		}
		course.Semester = req.Semester
	}

	if err := db.Save(&course).Error; err != nil {
		h.log.Error("course update failed", zap.Error(err))
		respondMessage(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	respondJSON(w, http.StatusOK, course)
}

func (h *AdminHandler) DeleteCourse(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r, "id", "Invalid course ID")
	if !ok {
		return
	}

	db := database.GetDB()

	var course models.Course
	if err := db.First(&course, id).Error; err != nil {
		respondMessage(w, http.StatusNotFound, "Course not found")
		return
	}

	if err := db.Delete(&course).Error; err != nil {
		h.log.Error("course deletion failed", zap.Error(err))
		respondMessage(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	respondMessage(w, http.StatusOK, "Course deleted")
}

type assignRequest struct {
	LecturerID uint `json:"lecturerId"`
	CourseID   uint `json:"courseId"`
}

// AssignLecturer links a lecturer to a course, defining which applications
// that lecturer may review.
func (h *AdminHandler) AssignLecturer(w http.ResponseWriter, r *http.Request) {
	var req assignRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	db := database.GetDB()

	var lecturer models.User
	if err := db.First(&lecturer, req.LecturerID).Error; err != nil || !lecturer.IsLecturer() {
		respondMessage(w, http.StatusBadRequest, "User is not a lecturer")
		return
	}

	var course models.Course
	if err := db.First(&course, req.CourseID).Error; err != nil {
		respondMessage(w, http.StatusNotFound, "Course not found")
		return
	}

	assignment := models.CourseLecturer{CourseID: course.ID, LecturerID: lecturer.ID}
	if err := db.Create(&assignment).Error; err != nil {
		h.log.Error("lecturer assignment failed", zap.Error(err))
		respondMessage(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	h.log.Info("lecturer assigned",
		zap.Uint("lecturer_id", lecturer.ID),
		zap.Uint("course_id", course.ID),
	)
	respondMessage(w, http.StatusCreated, "Lecturer assigned")
}

func (h *AdminHandler) ListLecturers(w http.ResponseWriter, r *http.Request) {
	h.listUsersByRole(w, models.RoleLecturer)
}

func (h *AdminHandler) ListCandidates(w http.ResponseWriter, r *http.Request) {
	h.listUsersByRole(w, models.RoleCandidate)
}

func (h *AdminHandler) listUsersByRole(w http.ResponseWriter, role models.Role) {
	var users []models.User
	if err := database.GetDB().Where("role = ?", role).Find(&users).Error; err != nil {
		h.log.Error("listing users failed", zap.Error(err))
		respondMessage(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	respondJSON(w, http.StatusOK, users)
}

// ToggleBlockCandidate flips a candidate's blocked flag. Blocked candidates
// cannot sign in or submit applications.
func (h *AdminHandler) ToggleBlockCandidate(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r, "id", "Invalid user ID")
	if !ok {
		return
	}

	db := database.GetDB()

	var user models.User
	if err := db.First(&user, id).Error; err != nil || !user.IsCandidate() {
		respondMessage(w, http.StatusNotFound, "Candidate not found")
		return
	}

	user.IsBlocked = !user.IsBlocked
	if err := db.Save(&user).Error; err != nil {
		h.log.Error("block toggle failed", zap.Error(err))
		respondMessage(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	h.log.Info("candidate block toggled",
		zap.Uint("user_id", user.ID),
		zap.Bool("is_blocked", user.IsBlocked),
	)
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"message":    "Candidate updated",
		"is_blocked": user.IsBlocked,
	})
}

type overloadedCandidate struct {
	ID           uint   `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	TotalCourses int    `json:"total_courses"`
}

// OverloadedCandidates reports candidates selected in more than three
// courses.
func (h *AdminHandler) OverloadedCandidates(w http.ResponseWriter, r *http.Request) {
	var rows []overloadedCandidate
	err := database.GetDB().
		Table("tutor_applications").
		Select("users.id AS id, users.name AS name, users.email AS email, COUNT(DISTINCT tutor_applications.course_id) AS total_courses").
		Joins("JOIN users ON users.id = tutor_applications.user_id").
		Where("tutor_applications.is_selected = ?", true).
		Group("users.id, users.name, users.email").
		Having("COUNT(DISTINCT tutor_applications.course_id) > ?", 3).
		Scan(&rows).Error
	if err != nil {
		h.log.Error("overloaded candidates report failed", zap.Error(err))
		respondMessage(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if rows == nil {
		rows = []overloadedCandidate{}
	}
	respondJSON(w, http.StatusOK, rows)
}

type unselectedCandidate struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// UnselectedCandidates reports candidates who have applied at least once
// but have never been selected.
func (h *AdminHandler) UnselectedCandidates(w http.ResponseWriter, r *http.Request) {
	var rows []unselectedCandidate
	err := database.GetDB().
		Table("tutor_applications").
		Select("users.id AS id, users.name AS name, users.email AS email").
		Joins("JOIN users ON users.id = tutor_applications.user_id").
		Group("users.id, users.name, users.email").
		Having("SUM(CASE WHEN tutor_applications.is_selected THEN 1 ELSE 0 END) = 0").
		Scan(&rows).Error
	if err != nil {
		h.log.Error("unselected candidates report failed", zap.Error(err))
		respondMessage(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if rows == nil {
		rows = []unselectedCandidate{}
	}
	respondJSON(w, http.StatusOK, rows)
}

// ExportSelectedCSV streams the selected candidates per course as CSV.
func (h *AdminHandler) ExportSelectedCSV(w http.ResponseWriter, r *http.Request) {
	var apps []models.TutorApplication
	err := database.GetDB().Preload("User").Preload("Course").
		Where("is_selected = ?", true).
		Order("course_id asc, rank asc nulls last").
		Find(&apps).Error
	if err != nil {
		h.log.Error("selected candidates export failed", zap.Error(err))
		respondMessage(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	filename := fmt.Sprintf("selected_candidates_%s.csv", time.Now().Format("2006-01-02"))
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))

	writer := csv.NewWriter(w)
	defer writer.Flush()

	writer.Write([]string{"Candidate", "Email", "Course Code", "Course Name", "Session Type", "Rank", "Comment"})

	for _, app := range apps {
		rank := ""
		if app.Rank != nil {
			rank = strconv.Itoa(*app.Rank)
		}
		writer.Write([]string{
			app.User.Name,
			app.User.Email,
			app.Course.Code,
			app.Course.Name,
			string(app.SessionType),
			rank,
			app.Comment,
		})
	}
}
