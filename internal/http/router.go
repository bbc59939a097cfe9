package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	budgetHandler "github.com/centavo-app/centavo/internal/http/budget"
	categoryHandler "github.com/centavo-app/centavo/internal/http/category"
	"github.com/centavo-app/centavo/internal/http/expense"
	"github.com/centavo-app/centavo/internal/http/income"
	installmentHandler "github.com/centavo-app/centavo/internal/http/installment"
	loanHandler "github.com/centavo-app/centavo/internal/http/loan"
	"github.com/centavo-app/centavo/internal/http/middleware"
	recurringHandler "github.com/centavo-app/centavo/internal/http/recurring"
)

func New(
	jwtSecret string,
	expensesV1 *expense.Handler,
	incomesV1 *income.Handler,
	budgetsV1 *budgetHandler.Handler,
	categoriesV1 *categoryHandler.Handler,
	loansV1 *loanHandler.Handler,
	installmentsV1 *installmentHandler.Handler,
	recurringV1 *recurringHandler.Handler,
) http.Handler {
	router := chi.NewRouter()

	router.Use(chimiddleware.Logger)
	router.Use(chimiddleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
	}))

	router.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.Auth(jwtSecret))
		r.Use(chimiddleware.AllowContentType("application/json"))

		r.Route("/expenses", expensesV1.Routes)
		r.Route("/incomes", incomesV1.Routes)
		r.Route("/budgets", budgetsV1.Routes)
		r.Route("/categories", categoriesV1.Routes)
		r.Route("/loans", loansV1.Routes)
		r.Route("/installments", installmentsV1.Routes)
		r.Route("/recurring-transactions", recurringV1.Routes)
	})

	return router
}
