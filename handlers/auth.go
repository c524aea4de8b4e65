package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"teachteam/config"
	"teachteam/database"
	"teachteam/middleware"
	"teachteam/models"
	"teachteam/validation"
)

type AuthHandler struct {
	config *config.Config
	log    *zap.Logger
}

func NewAuthHandler(cfg *config.Config, log *zap.Logger) *AuthHandler {
	return &AuthHandler{config: cfg, log: log}
}

type signupRequest struct {
	Name      string  `json:"name"`
	Email     string  `json:"email"`
	Password  string  `json:"password"`
	Role      string  `json:"role"`
	AvatarURL *string `json:"avatar_url"`
}

func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req signupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Name == "" || req.Email == "" || req.Password == "" || req.Role == "" {
		respondMessage(w, http.StatusBadRequest, "All fields are required.")
		return
	}
	if err := validation.Name(req.Name); err != nil {
		respondMessage(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := validation.Email(req.Email); err != nil {
		respondMessage(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := validation.Role(req.Role); err != nil {
		respondMessage(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := validation.Password(req.Password); err != nil {
		respondMessage(w, http.StatusBadRequest, err.Error())
		return
	}

	db := database.GetDB()

	var count int64
	db.Model(&models.User{}).Where("email = ?", req.Email).Count(&count)
	if count > 0 {
		respondMessage(w, http.StatusConflict, "Email already exists.")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		h.log.Error("password hashing failed", zap.Error(err))
		respondMessage(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	user := models.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hashed),
		Role:         models.Role(req.Role),
		AvatarURL:    req.AvatarURL,
	}
	if err := db.Create(&user).Error; err != nil {
		h.log.Error("user creation failed", zap.Error(err))
		respondMessage(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	h.log.Info("user registered", zap.Uint("user_id", user.ID), zap.String("role", req.Role))
	respondMessage(w, http.StatusCreated, "User registered successfully!")
}

type signinRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *AuthHandler) Signin(w http.ResponseWriter, r *http.Request) {
	var req signinRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Email == "" || req.Password == "" {
		respondMessage(w, http.StatusBadRequest, "Email and password are required.")
		return
	}
	if err := validation.Email(req.Email); err != nil {
		respondMessage(w, http.StatusBadRequest, err.Error())
		return
	}

	var user models.User
	if err := database.GetDB().Where("email = ?", req.Email).First(&user).Error; err != nil {
		respondMessage(w, http.StatusUnauthorized, "Invalid email or password.")
		return
	}

	if user.IsBlocked {
		respondMessage(w, http.StatusForbidden, "Your account has been blocked. Please contact admin.")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		respondMessage(w, http.StatusUnauthorized, "Invalid email or password.")
		return
	}

	token, err := middleware.GenerateToken(&user, h.config.JWTExpiration)
	if err != nil {
		h.log.Error("token generation failed", zap.Error(err))
		respondMessage(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Login successful",
		"token":   token,
		"user": map[string]interface{}{
			"id":         user.ID,
			"name":       user.Name,
			"email":      user.Email,
			"role":       user.Role,
			"joined_at":  user.JoinedAt,
			"avatar_url": user.AvatarURL,
		},
	})
}

type resetRequest struct {
	Email string `json:"email"`
}

// RequestPasswordReset issues a single-use reset token for the account. The
// token is returned in the response; a mail integration would deliver it
// out of band instead.
func (h *AuthHandler) RequestPasswordReset(w http.ResponseWriter, r *http.Request) {
	var req resetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validation.Email(req.Email); err != nil {
		respondMessage(w, http.StatusBadRequest, err.Error())
		return
	}

	db := database.GetDB()

	var user models.User
	if err := db.Where("email = ?", req.Email).First(&user).Error; err != nil {
		respondMessage(w, http.StatusNotFound, "User not found")
		return
	}

	reset := models.PasswordReset{
		UserID:    user.ID,
		Token:     models.NewResetToken(),
		ExpiresAt: time.Now().Add(h.config.ResetExpiration),
	}
	if err := db.Create(&reset).Error; err != nil {
		h.log.Error("reset token creation failed", zap.Error(err))
		respondMessage(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	h.log.Info("password reset requested", zap.Uint("user_id", user.ID))
	respondJSON(w, http.StatusOK, map[string]string{
		"message": "Password reset token issued",
		"token":   reset.Token,
	})
}

type resetConfirmRequest struct {
	Token    string `json:"token"`
	Password string `json:"password"`
}

func (h *AuthHandler) ConfirmPasswordReset(w http.ResponseWriter, r *http.Request) {
	var req resetConfirmRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validation.Password(req.Password); err != nil {
		respondMessage(w, http.StatusBadRequest, err.Error())
		return
	}

	db := database.GetDB()

	var reset models.PasswordReset
	err := db.Where("token = ?", req.Token).First(&reset).Error
	if err != nil || !reset.IsValid() {
		respondMessage(w, http.StatusNotFound, "Invalid or expired reset token")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		h.log.Error("password hashing failed", zap.Error(err))
		respondMessage(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.User{}).Where("id = ?", reset.UserID).
			Update("password_hash", string(hashed)).Error; err != nil {
			return err
		}
		reset.Used = true
		return tx.Save(&reset).Error
	})
	if err != nil {
		h.log.Error("password reset failed", zap.Error(err))
		respondMessage(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	h.log.Info("password reset completed", zap.Uint("user_id", reset.UserID))
	respondMessage(w, http.StatusOK, "Password updated")
}
