package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"teachteam/selection"
)

func respondJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func respondMessage(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"message": message})
}

// respondEngineError maps selection errors onto status codes: not-found
// errors to 404, rejection errors to 400, everything else to an opaque 500.
func respondEngineError(w http.ResponseWriter, log *zap.Logger, err error) {
	var dupApp *selection.DuplicateApplicationError
	var dupRank *selection.DuplicateRankError

	switch {
	case errors.Is(err, selection.ErrApplicationNotFound),
		errors.Is(err, selection.ErrUserNotFound),
		errors.Is(err, selection.ErrLecturerNotFound):
		respondMessage(w, http.StatusNotFound, err.Error())
	case errors.As(err, &dupApp), errors.As(err, &dupRank):
		respondMessage(w, http.StatusBadRequest, err.Error())
	default:
		log.Error("request failed", zap.Error(err))
		respondMessage(w, http.StatusInternalServerError, "Internal server error")
	}
}
