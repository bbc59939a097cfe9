package expense

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/centavo-app/centavo/internal/http/api"
	"github.com/centavo-app/centavo/internal/http/middleware"
	"github.com/centavo-app/centavo/internal/ledger"
)

type Handler struct {
	svc *ledger.Service
}

func NewHandler(svc *ledger.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.create)
	r.Get("/", h.list)
	r.Get("/{id}", h.get)
	r.Patch("/{id}", h.update)
	r.Delete("/{id}", h.delete)
}

type createExpenseRequest struct {
	CategoryID    uuid.UUID       `json:"category_id"`
	BankAccountID *uuid.UUID      `json:"bank_account_id,omitempty"`
	FundSourceID  *uuid.UUID      `json:"fund_source_id,omitempty"`
	LoanID        *uuid.UUID      `json:"loan_id,omitempty"`
	Amount        decimal.Decimal `json:"amount"`
	Description   string          `json:"description"`
	Date          time.Time       `json:"date"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var req createExpenseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	e, err := h.svc.CreateExpense(r.Context(), ledger.CreateExpenseParams{
		UserID:     userID,
		CategoryID: req.CategoryID,
		Source: ledger.SourceRef{
			BankAccountID: req.BankAccountID,
			FundSourceID:  req.FundSourceID,
			LoanID:        req.LoanID,
		},
		Amount:      req.Amount,
		Description: req.Description,
		Date:        req.Date,
	})
	if err != nil {
		api.WriteError(w, err)
		return
	}

	api.WriteJSON(w, http.StatusCreated, toResponse(e))
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	filter := ledger.ListFilter{}

	if s := r.URL.Query().Get("category_id"); s != "" {
		if id, err := uuid.Parse(s); err == nil {
			filter.CategoryID = &id
		}
	}

	if s := r.URL.Query().Get("start_date"); s != "" {
		if t, err := time.Parse(time.DateOnly, s); err == nil {
			filter.StartDate = &t
		}
	}

	if s := r.URL.Query().Get("end_date"); s != "" {
		if t, err := time.Parse(time.DateOnly, s); err == nil {
			filter.EndDate = &t
		}
	}

	expenses, err := h.svc.ListExpenses(r.Context(), userID, filter)
	if err != nil {
		api.WriteError(w, err)
		return
	}

	api.WriteJSON(w, http.StatusOK, toResponseList(expenses))
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	e, err := h.svc.Expense(r.Context(), userID, id)
	if err != nil {
		api.WriteError(w, err)
		return
	}

	api.WriteJSON(w, http.StatusOK, toResponse(e))
}

type updateExpenseRequest struct {
	CategoryID    *uuid.UUID       `json:"category_id,omitempty"`
	BankAccountID *uuid.UUID       `json:"bank_account_id,omitempty"`
	FundSourceID  *uuid.UUID       `json:"fund_source_id,omitempty"`
	LoanID        *uuid.UUID       `json:"loan_id,omitempty"`
	Amount        *decimal.Decimal `json:"amount,omitempty"`
	Description   *string          `json:"description,omitempty"`
	Date          *time.Time       `json:"date,omitempty"`
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req updateExpenseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	changes := ledger.UpdateExpenseParams{
		CategoryID:  req.CategoryID,
		Amount:      req.Amount,
		Description: req.Description,
		Date:        req.Date,
	}

	// Any source field in the payload replaces the source wholesale.
	if req.BankAccountID != nil || req.FundSourceID != nil || req.LoanID != nil {
		changes.Source = &ledger.SourceRef{
			BankAccountID: req.BankAccountID,
			FundSourceID:  req.FundSourceID,
			LoanID:        req.LoanID,
		}
	}

	e, err := h.svc.UpdateExpense(r.Context(), userID, id, changes)
	if err != nil {
		api.WriteError(w, err)
		return
	}

	api.WriteJSON(w, http.StatusOK, toResponse(e))
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	if err := h.svc.DeleteExpense(r.Context(), userID, id); err != nil {
		api.WriteError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type expenseResponse struct {
	ID            uuid.UUID       `json:"id"`
	CategoryID    uuid.UUID       `json:"category_id"`
	BankAccountID *uuid.UUID      `json:"bank_account_id,omitempty"`
	FundSourceID  *uuid.UUID      `json:"fund_source_id,omitempty"`
	LoanID        *uuid.UUID      `json:"loan_id,omitempty"`
	Amount        decimal.Decimal `json:"amount"`
	Description   string          `json:"description"`
	Date          time.Time       `json:"date"`
	CreatedAt     time.Time       `json:"created_at"`
}

func toResponse(e *ledger.Expense) expenseResponse {
	return expenseResponse{
		ID:            e.ID,
		CategoryID:    e.CategoryID,
		BankAccountID: e.BankAccountID,
		FundSourceID:  e.FundSourceID,
		LoanID:        e.LoanID,
		Amount:        e.Amount,
		Description:   e.Description,
		Date:          e.Date,
		CreatedAt:     e.CreatedAt,
	}
}

func toResponseList(expenses []*ledger.Expense) []expenseResponse {
	out := make([]expenseResponse, 0, len(expenses))
	for _, e := range expenses {
		out = append(out, toResponse(e))
	}

	return out
}
