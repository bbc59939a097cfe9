// Command recurring materializes every recurring transaction due as of
// now and exits. It is meant to run from cron or a systemd timer once a
// day.
package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/centavo-app/centavo/internal/config"
	"github.com/centavo-app/centavo/internal/database"
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

	ledgerService := ledger.NewService(ledgerStore.New(db), nil)
	runner := recurring.NewRunner(recurringStore.New(db), ledgerService, nil)

	report, err := runner.RunDue(context.Background(), time.Now())
	if err != nil {
		slog.Error("recurring run failed", "error", err)
		os.Exit(1)
	}

	if report.Failed > 0 {
		os.Exit(1)
	}
}
