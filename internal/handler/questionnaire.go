package handler

import (
	"net/http"

	"github.com/arthverse/finance-service/internal/finance"
)

// SaveQuestionnaire replaces the user's financial profile wholesale
func (h *Handler) SaveQuestionnaire(w http.ResponseWriter, r *http.Request) {
	var profile finance.Profile
	if !decodeBody(w, r, &profile) {
		return
	}
	saved, err := h.svc.SaveQuestionnaire(r.Context(), &profile)
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{
		"message":       "Questionnaire saved successfully",
		"questionnaire": saved,
	})
}

// GetQuestionnaire returns the user's financial profile
func (h *Handler) GetQuestionnaire(w http.ResponseWriter, r *http.Request) {
	profile, err := h.svc.GetQuestionnaire(r.Context())
	if err != nil {
		respondError(w, http.StatusNotFound, err.Error())
		return
	}
	respondJSON(w, http.StatusOK, profile)
}

// ResetQuestionnaire deletes the user's financial profile
func (h *Handler) ResetQuestionnaire(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.ResetQuestionnaire(r.Context()); err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "Questionnaire reset"})
}
