package budget

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/centavo-app/centavo/internal/budget"
	"github.com/centavo-app/centavo/internal/http/api"
	"github.com/centavo-app/centavo/internal/http/middleware"
	"github.com/centavo-app/centavo/internal/ledger"
)

type Handler struct {
	svc    *budget.Service
	ledger *ledger.Service
}

func NewHandler(svc *budget.Service, ledgerSvc *ledger.Service) *Handler {
	return &Handler{svc: svc, ledger: ledgerSvc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.create)
	r.Get("/", h.list)
	r.Get("/{categoryID}", h.snapshot)
	r.Post("/rollover", h.rollover)
}

type createBudgetRequest struct {
	CategoryID       uuid.UUID       `json:"category_id"`
	Amount           decimal.Decimal `json:"amount"`
	Month            int             `json:"month"`
	Year             int             `json:"year"`
	RolloverEnabled  bool            `json:"rollover_enabled"`
	AlertAt90Percent bool            `json:"alert_at_90_percent"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var req createBudgetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	b, err := h.svc.Create(r.Context(), budget.CreateParams{
		UserID:           userID,
		CategoryID:       req.CategoryID,
		Amount:           req.Amount,
		Month:            req.Month,
		Year:             req.Year,
		RolloverEnabled:  req.RolloverEnabled,
		AlertAt90Percent: req.AlertAt90Percent,
	})
	if err != nil {
		api.WriteError(w, err)
		return
	}

	api.WriteJSON(w, http.StatusCreated, toResponse(b.Snapshot()))
}

// period reads the month/year query pair, defaulting to the current
// month.
func period(r *http.Request) (int, int) {
	now := time.Now()
	month, year := int(now.Month()), now.Year()

	if s := r.URL.Query().Get("month"); s != "" {
		if n, err := strconv.Atoi(s); err == nil && n >= 1 && n <= 12 {
			month = n
		}
	}

	if s := r.URL.Query().Get("year"); s != "" {
		if n, err := strconv.Atoi(s); err == nil {
			year = n
		}
	}

	return month, year
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	month, year := period(r)

	snapshots, err := h.svc.ListMonth(r.Context(), userID, month, year)
	if err != nil {
		api.WriteError(w, err)
		return
	}

	out := make([]budgetResponse, 0, len(snapshots))
	for _, snap := range snapshots {
		out = append(out, toResponse(snap))
	}

	api.WriteJSON(w, http.StatusOK, out)
}

func (h *Handler) snapshot(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	categoryID, err := uuid.Parse(chi.URLParam(r, "categoryID"))
	if err != nil {
		http.Error(w, "invalid category id", http.StatusBadRequest)
		return
	}

	month, year := period(r)

	snap, err := h.svc.Snapshot(r.Context(), userID, categoryID, month, year)
	if err != nil {
		api.WriteError(w, err)
		return
	}

	api.WriteJSON(w, http.StatusOK, toResponse(*snap))
}

type budgetResponse struct {
	ID               uuid.UUID       `json:"id"`
	CategoryID       uuid.UUID       `json:"category_id"`
	Amount           decimal.Decimal `json:"amount"`
	Spent            decimal.Decimal `json:"spent"`
	RolloverAmount   decimal.Decimal `json:"rollover_amount"`
	TotalBudget      decimal.Decimal `json:"total_budget"`
	Remaining        decimal.Decimal `json:"remaining"`
	PercentageUsed   float64         `json:"percentage_used"`
	IsNearLimit      bool            `json:"is_near_limit"`
	IsExceeded       bool            `json:"is_exceeded"`
	RolloverEnabled  bool            `json:"rollover_enabled"`
	AlertAt90Percent bool            `json:"alert_at_90_percent"`
	Month            int             `json:"month"`
	Year             int             `json:"year"`
}

func toResponse(snap budget.Snapshot) budgetResponse {
	return budgetResponse{
		ID:               snap.ID,
		CategoryID:       snap.CategoryID,
		Amount:           snap.Amount,
		Spent:            snap.Spent,
		RolloverAmount:   snap.RolloverAmount,
		TotalBudget:      snap.TotalBudget,
		Remaining:        snap.Remaining,
		PercentageUsed:   snap.PercentageUsed,
		IsNearLimit:      snap.IsNearLimit,
		IsExceeded:       snap.IsExceeded,
		RolloverEnabled:  snap.RolloverEnabled,
		AlertAt90Percent: snap.AlertAt90Percent,
		Month:            snap.Month,
		Year:             snap.Year,
	}
}

type rolloverResponse struct {
	Carried int `json:"carried"`
}

func (h *Handler) rollover(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	carried, err := h.ledger.ProcessMonthRollover(r.Context(), userID)
	if err != nil {
		api.WriteError(w, err)
		return
	}

	api.WriteJSON(w, http.StatusOK, rolloverResponse{Carried: carried})
}
