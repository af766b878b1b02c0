package handler

import (
	"net/http"

	"github.com/arthverse/finance-service/internal/models"
	"github.com/gorilla/mux"
)

// StartConsent begins a bank-linking flow
func (h *Handler) StartConsent(w http.ResponseWriter, r *http.Request) {
	var req models.ConsentCreateRequest
	if !decodeBody(w, r, &req) {
		return
	}
	consent, err := h.svc.StartConsent(r.Context(), &req)
	if err != nil {
		respondError(w, http.StatusBadGateway, err.Error())
		return
	}
	respondJSON(w, http.StatusCreated, consent)
}

// ConsentStatus refreshes and returns a consent's state
func (h *Handler) ConsentStatus(w http.ResponseWriter, r *http.Request) {
	consent, err := h.svc.ConsentStatus(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		respondError(w, http.StatusNotFound, err.Error())
		return
	}
	respondJSON(w, http.StatusOK, consent)
}

// FetchFinancialData pulls account data through an active consent
func (h *Handler) FetchFinancialData(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ConsentID string `json:"consent_id"`
	}
	if !decodeBody(w, r, &req) {
		return
	}
	snap, err := h.svc.FetchFinancialData(r.Context(), req.ConsentID)
	if err != nil {
		respondError(w, http.StatusBadGateway, err.Error())
		return
	}
	respondJSON(w, http.StatusOK, snap)
}

// FinancialData returns the most recently fetched bundle
func (h *Handler) FinancialData(w http.ResponseWriter, r *http.Request) {
	snap, err := h.svc.LatestFinancialData(r.Context())
	if err != nil {
		respondError(w, http.StatusNotFound, err.Error())
		return
	}
	respondJSON(w, http.StatusOK, snap)
}
