package handler

import (
	"net/http"

	"github.com/arthverse/finance-service/internal/models"
)

// Plans lists purchasable report plans
func (h *Handler) Plans(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.svc.Plans())
}

// CreateOrder opens a payment order for a plan
func (h *Handler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var req models.CreateOrderRequest
	if !decodeBody(w, r, &req) {
		return
	}
	payment, err := h.svc.CreateOrder(r.Context(), &req)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	respondJSON(w, http.StatusCreated, payment)
}

// VerifyPayment validates the checkout callback signature
func (h *Handler) VerifyPayment(w http.ResponseWriter, r *http.Request) {
	var req models.VerifyPaymentRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if err := h.svc.VerifyPayment(r.Context(), &req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "Payment verified"})
}

// PaymentStatus reports whether the user has an unlocked report
func (h *Handler) PaymentStatus(w http.ResponseWriter, r *http.Request) {
	status, err := h.svc.PaymentStatus(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	respondJSON(w, http.StatusOK, status)
}

// BenchmarkRates returns the central-bank benchmark lending rates
func (h *Handler) BenchmarkRates(w http.ResponseWriter, r *http.Request) {
	rates, err := h.svc.BenchmarkRates()
	if err != nil {
		respondError(w, http.StatusBadGateway, err.Error())
		return
	}
	respondJSON(w, http.StatusOK, rates)
}
