package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"teachteam/database"
	"teachteam/models"
)

type UserHandler struct {
	log *zap.Logger
}

func NewUserHandler(log *zap.Logger) *UserHandler {
	return &UserHandler{log: log}
}

type avatarRequest struct {
	AvatarURL *string `json:"avatar_url"`
}

// UpdateAvatar sets the avatar URL for the user with the given email.
func (h *UserHandler) UpdateAvatar(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "email")

	var req avatarRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	db := database.GetDB()

	var user models.User
	if err := db.Where("email = ?", email).First(&user).Error; err != nil {
		respondMessage(w, http.StatusNotFound, "User not found")
		return
	}

	user.AvatarURL = req.AvatarURL
	if err := db.Save(&user).Error; err != nil {
		h.log.Error("avatar update failed", zap.Error(err))
		respondMessage(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"message":    "Avatar updated",
		"avatar_url": user.AvatarURL,
	})
}
