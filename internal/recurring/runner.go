package recurring

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"time"

	"github.com/google/uuid"
)

// ErrRunInProgress is returned when another due-transaction run holds
// the batch lock.
var ErrRunInProgress = errors.New("recurring run already in progress")

//go:generate mockgen -destination=runner_mock.go -package=recurring github.com/centavo-app/centavo/internal/recurring Materializer,Repository

// Materializer turns one due recurring transaction into a persisted
// expense and advances its schedule, all in one atomic unit.
type Materializer interface {
	MaterializeRecurring(ctx context.Context, rt *Transaction) error
}

// Repository lists due transactions and guards against overlapping
// batch runs.
type Repository interface {
	// ListDue returns active transactions with next_due_date <= asOf.
	ListDue(ctx context.Context, asOf time.Time) ([]*Transaction, error)

	// ListByUser returns all of a user's recurring transactions.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*Transaction, error)

	// AcquireRunLock takes the batch lock without blocking. When ok,
	// the caller must invoke release when the run finishes.
	AcquireRunLock(ctx context.Context) (release func(), ok bool, err error)
}

// Failure records why one due transaction could not materialize.
type Failure struct {
	TransactionID uuid.UUID `json:"transaction_id"`
	Name          string    `json:"name"`
	Reason        string    `json:"reason"`
}

// RunReport summarizes one batch run.
type RunReport struct {
	Processed int
	Failed    int
	Failures  []Failure
}

// Runner drives the due-transaction batch. Each item is an independent
// atomic unit: one failure is reported and skipped, never retried in
// the same run, and leaves that item's schedule untouched so the next
// run picks it up again.
type Runner struct {
	repo         Repository
	materializer Materializer
	log          *slog.Logger
}

func NewRunner(repo Repository, m Materializer, log *slog.Logger) *Runner {
	if log == nil {
		log = slog.Default()
	}

	return &Runner{repo: repo, materializer: m, log: log}
}

// RunDue materializes every transaction due as of asOf. At most one
// run executes at a time; a concurrent invocation fails with
// ErrRunInProgress.
func (r *Runner) RunDue(ctx context.Context, asOf time.Time) (*RunReport, error) {
	release, ok, err := r.repo.AcquireRunLock(ctx)
	if err != nil {
		return nil, fmt.Errorf("acquiring run lock: %w", err)
	}

	if !ok {
		return nil, ErrRunInProgress
	}
	defer release()

	due, err := r.repo.ListDue(ctx, asOf)
	if err != nil {
		return nil, fmt.Errorf("listing due transactions: %w", err)
	}

	report := &RunReport{}

	for _, rt := range due {
		if err := r.materializer.MaterializeRecurring(ctx, rt); err != nil {
			report.Failed++
			report.Failures = append(report.Failures, Failure{
				TransactionID: rt.ID,
				Name:          rt.Name,
				Reason:        err.Error(),
			})
			r.log.Warn("recurring transaction failed",
				"id", rt.ID, "name", rt.Name, "error", err)

			continue
		}

		report.Processed++
	}

	r.log.Info("recurring run finished",
		"as_of", asOf.Format(time.DateOnly),
		"processed", report.Processed,
		"failed", report.Failed)

	return report, nil
}
