package loan

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
	"github.com/centavo-app/centavo/internal/loan"
)

type Handler struct {
	svc *ledger.Service
}

func NewHandler(svc *ledger.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.create)
	r.Post("/{id}/repayments", h.repay)
	r.Patch("/{id}/amount", h.updateAmount)
}

type createRequest struct {
	LenderName      string          `json:"lender_name"`
	Amount          decimal.Decimal `json:"amount"`
	Description     string          `json:"description"`
	DueDate         *time.Time      `json:"due_date,omitempty"`
	IsFundingSource bool            `json:"is_funding_source"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var req createRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	l, err := h.svc.CreateLoan(r.Context(), ledger.CreateLoanParams{
		UserID:          userID,
		LenderName:      req.LenderName,
		Amount:          req.Amount,
		Description:     req.Description,
		DueDate:         req.DueDate,
		IsFundingSource: req.IsFundingSource,
	})
	if err != nil {
		api.WriteError(w, err)
		return
	}

	api.WriteJSON(w, http.StatusCreated, toResponse(l))
}

type repayRequest struct {
	Amount        decimal.Decimal `json:"amount"`
	BankAccountID *uuid.UUID      `json:"bank_account_id,omitempty"`
	FundSourceID  *uuid.UUID      `json:"fund_source_id,omitempty"`
	CategoryID    uuid.UUID       `json:"category_id"`
	Date          time.Time       `json:"date"`
	Description   string          `json:"description"`
}

type repayResponse struct {
	Loan      loanResponse `json:"loan"`
	ExpenseID uuid.UUID    `json:"expense_id"`
}

func (h *Handler) repay(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	loanID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req repayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	l, e, err := h.svc.RepayLoan(r.Context(), ledger.RepayLoanParams{
		UserID: userID,
		LoanID: loanID,
		Amount: req.Amount,
		Source: ledger.SourceRef{
			BankAccountID: req.BankAccountID,
			FundSourceID:  req.FundSourceID,
		},
		CategoryID:  req.CategoryID,
		Date:        req.Date,
		Description: req.Description,
	})
	if err != nil {
		api.WriteError(w, err)
		return
	}

	api.WriteJSON(w, http.StatusCreated, repayResponse{
		Loan:      toResponse(l),
		ExpenseID: e.ID,
	})
}

type updateAmountRequest struct {
	Amount decimal.Decimal `json:"amount"`
}

func (h *Handler) updateAmount(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	loanID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req updateAmountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	l, err := h.svc.UpdateLoanAmount(r.Context(), userID, loanID, req.Amount)
	if err != nil {
		api.WriteError(w, err)
		return
	}

	api.WriteJSON(w, http.StatusOK, toResponse(l))
}

type loanResponse struct {
	ID               uuid.UUID       `json:"id"`
	LenderName       string          `json:"lender_name"`
	Amount           decimal.Decimal `json:"amount"`
	BalanceRemaining decimal.Decimal `json:"balance_remaining"`
	Status           loan.Status     `json:"status"`
	PercentagePaid   decimal.Decimal `json:"percentage_paid"`
	IsFundingSource  bool            `json:"is_funding_source"`
	DueDate          *time.Time      `json:"due_date,omitempty"`
}

func toResponse(l *loan.Loan) loanResponse {
	return loanResponse{
		ID:               l.ID,
		LenderName:       l.LenderName,
		Amount:           l.Amount,
		BalanceRemaining: l.BalanceRemaining,
		Status:           l.Status,
		PercentagePaid:   l.PercentagePaid(),
		IsFundingSource:  l.IsFundingSource,
		DueDate:          l.DueDate,
	}
}
