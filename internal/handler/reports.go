package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/arthverse/finance-service/internal/service"
	"github.com/gorilla/mux"
)

// HealthScore returns the full benchmarked score when a questionnaire
// exists, and the transaction-based quick score otherwise. Other
// failures surface as errors rather than silently degrading the report.
func (h *Handler) HealthScore(w http.ResponseWriter, r *http.Request) {
	score, err := h.svc.HealthScoreReport(r.Context())
	if err == nil {
		respondJSON(w, http.StatusOK, score)
		return
	}
	if !questionnaireMissing(err) {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	quick, qerr := h.svc.QuickHealthScore(r.Context())
	if qerr != nil {
		respondError(w, http.StatusInternalServerError, qerr.Error())
		return
	}
	respondJSON(w, http.StatusOK, quick)
}

// questionnaireMissing reports whether the full score failed only
// because the user has no saved questionnaire
func questionnaireMissing(err error) bool {
	return errors.Is(err, service.ErrNoQuestionnaire)
}

// PLStatement returns the profit and loss report
func (h *Handler) PLStatement(w http.ResponseWriter, r *http.Request) {
	report, err := h.svc.PLReport(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	respondJSON(w, http.StatusOK, report)
}

// BalanceSheet returns assets, liabilities and net worth
func (h *Handler) BalanceSheet(w http.ResponseWriter, r *http.Request) {
	report, err := h.svc.BalanceSheetReport(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	respondJSON(w, http.StatusOK, report)
}

// ProtectionGap returns the insurance coverage assessment
func (h *Handler) ProtectionGap(w http.ResponseWriter, r *http.Request) {
	report, err := h.svc.ProtectionGapReport(r.Context())
	if err != nil {
		respondError(w, http.StatusNotFound, err.Error())
		return
	}
	respondJSON(w, http.StatusOK, report)
}

// LoanSchedule returns the amortization schedule for one loan
func (h *Handler) LoanSchedule(w http.ResponseWriter, r *http.Request) {
	index, err := strconv.Atoi(mux.Vars(r)["index"])
	if err != nil {
		respondError(w, http.StatusBadRequest, "loan index must be a number")
		return
	}
	schedule, err := h.svc.LoanSchedule(r.Context(), index)
	if err != nil {
		respondError(w, http.StatusNotFound, err.Error())
		return
	}
	respondJSON(w, http.StatusOK, schedule)
}
