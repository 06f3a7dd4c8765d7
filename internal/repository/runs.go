package repository

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/ecom-insights/listing-attributes/constants"
	"github.com/ecom-insights/listing-attributes/internal/report"
)

type RunRepository interface {
	CreateRun(ctx context.Context, inputPath, mode string, totalRows int) (uuid.UUID, error)
	MarkRunning(ctx context.Context, runID uuid.UUID) error
	FinishRun(ctx context.Context, runID uuid.UUID, status constants.RunStatus, completed int, runErr error) error
	SaveCoverage(ctx context.Context, runID uuid.UUID, coverage []report.AttributeCoverage) error
}

type runRepo struct {
	db  *sql.DB
	log *slog.Logger
}

func NewRunRepository(db *sql.DB, logger *slog.Logger) RunRepository {
	if logger == nil {
		logger = slog.Default()
	}
	return &runRepo{db: db, log: logger}
}

// CreateRun records a queued run; MarkRunning flips it once processing
// actually begins.
func (r *runRepo) CreateRun(ctx context.Context, inputPath, mode string, totalRows int) (uuid.UUID, error) {
	id := uuid.New()
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO extraction_run (id, input_path, mode, status, total_rows, started_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		id.String(), inputPath, mode, string(constants.RunStatusQueued), totalRows, time.Now().UTC(),
	)
	if err != nil {
		r.log.Error("repository.run.create_failed", "input", inputPath, "error", err)
		return uuid.Nil, err
	}
	r.log.Info("repository.run.created", "run_id", id, "input", inputPath, "mode", mode, "rows", totalRows)
	return id, nil
}

func (r *runRepo) MarkRunning(ctx context.Context, runID uuid.UUID) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE extraction_run SET status = ? WHERE id = ?`,
		string(constants.RunStatusRunning), runID.String(),
	)
	if err != nil {
		r.log.Error("repository.run.mark_running_failed", "run_id", runID, "error", err)
		return err
	}
	r.log.Info("repository.run.running", "run_id", runID)
	return nil
}

func (r *runRepo) FinishRun(ctx context.Context, runID uuid.UUID, status constants.RunStatus, completed int, runErr error) error {
	var msg sql.NullString
	if runErr != nil {
		msg = sql.NullString{String: runErr.Error(), Valid: true}
	}
	_, err := r.db.ExecContext(ctx,
		`UPDATE extraction_run SET status = ?, completed = ?, finished_at = ?, error = ? WHERE id = ?`,
		string(status), completed, time.Now().UTC(), msg, runID.String(),
	)
	if err != nil {
		r.log.Error("repository.run.finish_failed", "run_id", runID, "error", err)
		return err
	}
	r.log.Info("repository.run.finished", "run_id", runID, "status", status, "completed", completed)
	return nil
}

func (r *runRepo) SaveCoverage(ctx context.Context, runID uuid.UUID, coverage []report.AttributeCoverage) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	for _, c := range coverage {
		if _, err := tx.ExecContext(ctx,
			`INSERT OR REPLACE INTO attribute_coverage (run_id, attribute, extracted, total)
			 VALUES (?, ?, ?, ?)`,
			runID.String(), string(c.Attribute), c.Extracted, c.Total,
		); err != nil {
			tx.Rollback()
			r.log.Error("repository.coverage.save_failed", "run_id", runID, "error", err)
			return err
		}
	}
	return tx.Commit()
}
