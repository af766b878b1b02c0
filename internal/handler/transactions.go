package handler

import (
	"net/http"

	"github.com/arthverse/finance-service/internal/models"
	"github.com/arthverse/finance-service/internal/repository"
	"github.com/gorilla/mux"
)

// CreateTransaction records an income or expense entry
func (h *Handler) CreateTransaction(w http.ResponseWriter, r *http.Request) {
	var req models.TransactionCreate
	if !decodeBody(w, r, &req) {
		return
	}
	tx, err := h.svc.CreateTransaction(r.Context(), &req)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	respondJSON(w, http.StatusCreated, tx)
}

// ListTransactions returns the user's transactions, newest first
func (h *Handler) ListTransactions(w http.ResponseWriter, r *http.Request) {
	txs, err := h.svc.ListTransactions(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	respondJSON(w, http.StatusOK, txs)
}

// DeleteTransaction removes one of the user's transactions
func (h *Handler) DeleteTransaction(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if err := h.svc.DeleteTransaction(r.Context(), id); err != nil {
		if err == repository.ErrNotFound {
			respondError(w, http.StatusNotFound, "transaction not found")
			return
		}
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "Transaction deleted"})
}

// CategorizeExpense suggests a category for an expense description
func (h *Handler) CategorizeExpense(w http.ResponseWriter, r *http.Request) {
	var req models.CategorizeRequest
	if !decodeBody(w, r, &req) {
		return
	}
	respondJSON(w, http.StatusOK, h.svc.CategorizeExpense(r.Context(), &req))
}
