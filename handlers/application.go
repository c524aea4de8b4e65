package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"teachteam/database"
	"teachteam/metrics"
	"teachteam/models"
	"teachteam/selection"
	"teachteam/validation"
)

type ApplicationHandler struct {
	engine *selection.Engine
	log    *zap.Logger
}

func NewApplicationHandler(engine *selection.Engine, log *zap.Logger) *ApplicationHandler {
	return &ApplicationHandler{engine: engine, log: log}
}

type createApplicationRequest struct {
	Name          string   `json:"name"`
	Email         string   `json:"email"`
	Course        string   `json:"course"`
	CourseName    string   `json:"courseName"`
	Role          string   `json:"role"`
	PreviousRoles string   `json:"previousRoles"`
	Availability  string   `json:"availability"`
	Skills        []string `json:"skills"`
	Credentials   string   `json:"credentials"`
}

func (h *ApplicationHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createApplicationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Name == "" || req.Email == "" || req.Course == "" || req.Availability == "" {
		respondMessage(w, http.StatusBadRequest, "Missing required fields")
		return
	}
	if req.Credentials == "" || req.PreviousRoles == "" {
		respondMessage(w, http.StatusBadRequest, "Credentials and previous roles are required.")
		return
	}
	if err := validation.Email(req.Email); err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid email format.")
		return
	}
	if err := validation.Availability(req.Availability); err != nil {
		respondMessage(w, http.StatusBadRequest, err.Error())
		return
	}

	_, err := h.engine.Submit(selection.SubmitRequest{
		Name:          req.Name,
		Email:         req.Email,
		CourseCode:    req.Course,
		CourseName:    req.CourseName,
		Role:          req.Role,
		Availability:  req.Availability,
		PreviousRoles: req.PreviousRoles,
		Skills:        req.Skills,
		Credentials:   req.Credentials,
	})
	if err != nil {
		respondEngineError(w, h.log, err)
		return
	}

	metrics.ApplicationsSubmitted.Inc()
	respondMessage(w, http.StatusCreated, "Application submitted successfully")
}

type updateApplicationRequest struct {
	IsSelected *bool   `json:"is_selected"`
	Rank       *int    `json:"rank"`
	Comment    *string `json:"comment"`
	LecturerID uint    `json:"lecturerId"`
}

// Update is the lecturer review entry point: selection toggle, rank
// assignment and comment, applied by the selection engine.
func (h *ApplicationHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r, "id", "Invalid application ID")
	if !ok {
		return
	}

	var req updateApplicationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Rank != nil {
		if err := validation.Rank(*req.Rank); err != nil {
			respondMessage(w, http.StatusBadRequest, err.Error())
			return
		}
	}
	if req.Comment != nil {
		if err := validation.Comment(*req.Comment); err != nil {
			respondMessage(w, http.StatusBadRequest, err.Error())
			return
		}
	}

	_, err := h.engine.Update(id, req.LecturerID, selection.UpdateRequest{
		IsSelected: req.IsSelected,
		Rank:       req.Rank,
		Comment:    req.Comment,
	})
	if err != nil {
		respondEngineError(w, h.log, err)
		return
	}

	if req.IsSelected != nil && *req.IsSelected {
		metrics.CandidatesSelected.Inc()
	}
	respondMessage(w, http.StatusOK, "Application updated")
}

func (h *ApplicationHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r, "id", "Invalid application ID")
	if !ok {
		return
	}

	if err := h.engine.Withdraw(id); err != nil {
		respondEngineError(w, h.log, err)
		return
	}
	respondMessage(w, http.StatusOK, "Application withdrawn successfully")
}

func (h *ApplicationHandler) List(w http.ResponseWriter, r *http.Request) {
	var apps []models.TutorApplication
	err := database.GetDB().Preload("User").Preload("Course").Find(&apps).Error
	if err != nil {
		h.log.Error("listing applications failed", zap.Error(err))
		respondMessage(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	respondJSON(w, http.StatusOK, apps)
}

func (h *ApplicationHandler) ListByUser(w http.ResponseWriter, r *http.Request) {
	userID, ok := parseIDParam(w, r, "userId", "Invalid user ID")
	if !ok {
		return
	}

	var apps []models.TutorApplication
	err := database.GetDB().Preload("User").Preload("Course").
		Where("user_id = ?", userID).
		Find(&apps).Error
	if err != nil {
		h.log.Error("listing user applications failed", zap.Error(err))
		respondMessage(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	respondJSON(w, http.StatusOK, apps)
}

// ListForLecturer returns the applications in the lecturer's assigned
// courses, optionally filtered by candidate name, session type,
// availability and skills.
func (h *ApplicationHandler) ListForLecturer(w http.ResponseWriter, r *http.Request) {
	lecturerID, ok := parseIDParam(w, r, "lecturerId", "Invalid lecturer ID")
	if !ok {
		return
	}

	db := database.GetDB()

	var courseIDs []uint
	err := db.Model(&models.CourseLecturer{}).
		Where("lecturer_id = ?", lecturerID).
		Pluck("course_id", &courseIDs).Error
	if err != nil {
		h.log.Error("resolving lecturer courses failed", zap.Error(err))
		respondMessage(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if len(courseIDs) == 0 {
		respondJSON(w, http.StatusOK, []models.TutorApplication{})
		return
	}

	query := db.Preload("User").Preload("Course").
		Where("tutor_applications.course_id IN ?", courseIDs)

	// Apply name filter
	if name := r.URL.Query().Get("name"); name != "" {
		query = query.Joins("JOIN users ON users.id = tutor_applications.user_id").
			Where("users.name ILIKE ?", "%"+name+"%")
	}

	// Apply session type filter
	if sessionType := r.URL.Query().Get("sessionType"); sessionType != "" {
		query = query.Where("tutor_applications.session_type = ?", sessionType)
	}

	// Apply availability filter
	if availability := r.URL.Query().Get("availability"); availability != "" {
		query = query.Where("tutor_applications.availability = ?", availability)
	}

	// Apply skills filter
	if skills := r.URL.Query().Get("skills"); skills != "" {
		query = query.Where("tutor_applications.skills ILIKE ?", "%"+skills+"%")
	}

	var apps []models.TutorApplication
	if err := query.Order("tutor_applications.created_at desc").Find(&apps).Error; err != nil {
		h.log.Error("listing lecturer applications failed", zap.Error(err))
		respondMessage(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	respondJSON(w, http.StatusOK, apps)
}

func (h *ApplicationHandler) Stats(w http.ResponseWriter, r *http.Request) {
	lecturerIDStr := r.URL.Query().Get("lecturerId")
	if lecturerIDStr == "" {
		respondMessage(w, http.StatusBadRequest, "Missing lecturerId")
		return
	}

	lecturerID, err := strconv.ParseUint(lecturerIDStr, 10, 32)
	if err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid lecturer ID")
		return
	}

	stats, err := h.engine.LecturerStats(uint(lecturerID))
	if err != nil {
		respondEngineError(w, h.log, err)
		return
	}
	respondJSON(w, http.StatusOK, stats)
}

func parseIDParam(w http.ResponseWriter, r *http.Request, name, invalidMsg string) (uint, bool) {
	raw := chi.URLParam(r, name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		respondMessage(w, http.StatusBadRequest, invalidMsg)
		return 0, false
	}
	return uint(id), true
}
