package recurring

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/centavo-app/centavo/internal/http/api"
	"github.com/centavo-app/centavo/internal/http/middleware"
	"github.com/centavo-app/centavo/internal/recurring"
)

type Handler struct {
	repo   recurring.Repository
	runner *recurring.Runner
}

func NewHandler(repo recurring.Repository, runner *recurring.Runner) *Handler {
	return &Handler{repo: repo, runner: runner}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.list)
	r.Post("/run", h.run)
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	series, err := h.repo.ListByUser(r.Context(), userID)
	if err != nil {
		api.WriteError(w, err)
		return
	}

	out := make([]transactionResponse, 0, len(series))
	for _, rt := range series {
		out = append(out, toResponse(rt))
	}

	api.WriteJSON(w, http.StatusOK, out)
}

type runResponse struct {
	Processed int                 `json:"processed"`
	Failed    int                 `json:"failed"`
	Failures  []recurring.Failure `json:"failures,omitempty"`
}

// run materializes everything due right now. The batch lock makes
// concurrent triggers fail fast rather than double-process.
func (h *Handler) run(w http.ResponseWriter, r *http.Request) {
	report, err := h.runner.RunDue(r.Context(), time.Now())
	if err != nil {
		api.WriteError(w, err)
		return
	}

	api.WriteJSON(w, http.StatusOK, runResponse{
		Processed: report.Processed,
		Failed:    report.Failed,
		Failures:  report.Failures,
	})
}

type transactionResponse struct {
	ID            uuid.UUID           `json:"id"`
	CategoryID    uuid.UUID           `json:"category_id"`
	BankAccountID *uuid.UUID          `json:"bank_account_id,omitempty"`
	FundSourceID  *uuid.UUID          `json:"fund_source_id,omitempty"`
	Name          string              `json:"name"`
	Description   string              `json:"description"`
	Amount        decimal.Decimal     `json:"amount"`
	Frequency     recurring.Frequency `json:"frequency"`
	StartDate     time.Time           `json:"start_date"`
	EndDate       *time.Time          `json:"end_date,omitempty"`
	NextDueDate   time.Time           `json:"next_due_date"`
	LastProcessed *time.Time          `json:"last_processed_date,omitempty"`
	IsActive      bool                `json:"is_active"`
}

func toResponse(rt *recurring.Transaction) transactionResponse {
	return transactionResponse{
		ID:            rt.ID,
		CategoryID:    rt.CategoryID,
		BankAccountID: rt.BankAccountID,
		FundSourceID:  rt.FundSourceID,
		Name:          rt.Name,
		Description:   rt.Description,
		Amount:        rt.Amount,
		Frequency:     rt.Frequency,
		StartDate:     rt.StartDate,
		EndDate:       rt.EndDate,
		NextDueDate:   rt.NextDueDate,
		LastProcessed: rt.LastProcessedDate,
		IsActive:      rt.IsActive,
	}
}
