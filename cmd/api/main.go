package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/centavo-app/centavo/internal/budget"
	budgetStore "github.com/centavo-app/centavo/internal/budget/store"
	categoryStore "github.com/centavo-app/centavo/internal/category/store"
	"github.com/centavo-app/centavo/internal/config"
	"github.com/centavo-app/centavo/internal/database"
	centavoHttp "github.com/centavo-app/centavo/internal/http"
	budgetHandler "github.com/centavo-app/centavo/internal/http/budget"
	categoryHandler "github.com/centavo-app/centavo/internal/http/category"
	expenseHandler "github.com/centavo-app/centavo/internal/http/expense"
	incomeHandler "github.com/centavo-app/centavo/internal/http/income"
	installmentHandler "github.com/centavo-app/centavo/internal/http/installment"
	loanHandler "github.com/centavo-app/centavo/internal/http/loan"
	recurringHandler "github.com/centavo-app/centavo/internal/http/recurring"
	"github.com/centavo-app/centavo/internal/ledger"
	ledgerStore "github.com/centavo-app/centavo/internal/ledger/store"
	"github.com/centavo-app/centavo/internal/recurring"
	recurringStore "github.com/centavo-app/centavo/internal/recurring/store"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	db, err := database.New(cfg.ConnectionString())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		slog.Error("failed to apply migrations", "error", err)
		os.Exit(1)
	}

	var (
		recurringRepo = recurringStore.New(db)

		ledgerService = ledger.NewService(ledgerStore.New(db), nil)
		budgetService = budget.NewService(budgetStore.New(db))
		runner        = recurring.NewRunner(recurringRepo, ledgerService, nil)
	)

	var (
		expenseH     = expenseHandler.NewHandler(ledgerService)
		incomeH      = incomeHandler.NewHandler(ledgerService)
		budgetH      = budgetHandler.NewHandler(budgetService, ledgerService)
		categoryH    = categoryHandler.NewHandler(categoryStore.New(db))
		loanH        = loanHandler.NewHandler(ledgerService)
		installmentH = installmentHandler.NewHandler(ledgerService)
		recurringH   = recurringHandler.NewHandler(recurringRepo, runner)
	)

	router := centavoHttp.New(cfg.Auth.JWTSecret,
		expenseH, incomeH, budgetH, categoryH, loanH, installmentH, recurringH)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	slog.Info("starting server", "port", port)

	if err := http.ListenAndServe(port, router); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
