// Command llm-enhance runs the LLM-assisted pass: each listing row's text
// fields are sent to DeepSeek through a fixed pool of workers, responses are
// validated and normalized, price-based overrides are applied, and the
// attribute columns are appended to a copy of the workbook.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/ecom-insights/listing-attributes/constants"
	"github.com/ecom-insights/listing-attributes/internal/batch"
	"github.com/ecom-insights/listing-attributes/internal/common"
	"github.com/ecom-insights/listing-attributes/internal/extract"
	"github.com/ecom-insights/listing-attributes/internal/llm"
	"github.com/ecom-insights/listing-attributes/internal/llm/deepseek"
	"github.com/ecom-insights/listing-attributes/internal/report"
	repo "github.com/ecom-insights/listing-attributes/internal/repository"
	"github.com/ecom-insights/listing-attributes/internal/table"
)

// printError prints an error message to stderr, falling back to stdout if stderr fails
func printError(format string, args ...interface{}) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		fmt.Printf(format, args...)
	}
}

func main() {
	var (
		in      = flag.String("in", "", "input XLSX listing file (required)")
		out     = flag.String("out", "", "output XLSX file path (optional, defaults to input name with suffix)")
		workers = flag.Int("workers", 0, "worker count (0 uses MAX_WORKERS from env)")
		start   = flag.Int("start", 0, "first sheet row to process (0 = from the top)")
		end     = flag.Int("end", 0, "last sheet row to process (0 = to the bottom)")
		verbose = flag.Bool("verbose", false, "enable debug logging")
	)
	flag.Parse()

	if *in == "" {
		printError("Error: --in is required\n")
		os.Exit(1)
	}
	if *out == "" {
		*out = table.OutputPath(*in, "llm_enhanced")
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if *workers > 0 {
		cfg.Batch.Workers = *workers
	}
	if err := cfg.ValidateLLM(); err != nil {
		printError("Error: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	wb, err := table.Load(*in, logger)
	if err != nil {
		logger.Error("failed to load workbook", "error", err)
		os.Exit(1)
	}

	db, err := repo.Open(ctx, cfg.Runs.DBPath, logger)
	if err != nil {
		logger.Error("failed to open run database", "error", err)
		os.Exit(1)
	}
	defer db.Close()
	runs := repo.NewRunRepository(db, logger)

	jobs := buildJobs(wb.Records(), *start, *end)
	if len(jobs) == 0 {
		logger.Error("no rows to process", "start", *start, "end", *end)
		os.Exit(1)
	}

	runID, err := runs.CreateRun(ctx, *in, "llm", len(jobs))
	if err != nil {
		logger.Error("failed to record run start", "error", err)
		os.Exit(1)
	}
	if err := runs.MarkRunning(ctx, runID); err != nil {
		logger.Warn("failed to mark run running", "error", err)
	}

	factory := func(workerID int) llm.FieldExtractor {
		return deepseek.NewClient(deepseek.Config{
			APIKey:            cfg.LLM.APIKey,
			BaseURL:           cfg.LLM.BaseURL,
			Model:             cfg.LLM.Model,
			Temperature:       cfg.LLM.Temperature,
			Timeout:           cfg.LLM.Timeout,
			Retry:             cfg.LLM.Retry,
			RequestsPerSecond: cfg.LLM.RequestsPerSecond,
		}, logger.With("worker_id", workerID))
	}

	coordinator := batch.NewCoordinator(factory, logger,
		batch.WithWorkers(cfg.Batch.Workers),
		batch.WithOverrides(llm.Overrides{PriceThreshold: cfg.LLM.PriceThreshold}),
	)

	results := make(map[int]extract.AttributeSet, len(jobs))
	completed := coordinator.Run(ctx, jobs, func(res batch.Result) {
		results[res.RowID] = res.Attributes
	})

	coverage := report.Compute(results, len(jobs))
	report.Log(logger, coverage)
	if err := runs.SaveCoverage(ctx, runID, coverage); err != nil {
		logger.Warn("failed to save coverage", "error", err)
	}

	status := constants.RunStatusDone
	var runErr error
	if completed < len(jobs) {
		status = constants.RunStatusFailed
		runErr = fmt.Errorf("processed %d of %d rows", completed, len(jobs))
	}

	if err := wb.AppendAttributes(results); err != nil {
		_ = runs.FinishRun(ctx, runID, constants.RunStatusFailed, completed, err)
		logger.Error("failed to append attribute columns", "error", err)
		os.Exit(1)
	}
	if err := wb.SaveAs(*out); err != nil {
		_ = runs.FinishRun(ctx, runID, constants.RunStatusFailed, completed, err)
		logger.Error("failed to save workbook", "error", err)
		os.Exit(1)
	}

	if err := runs.FinishRun(ctx, runID, status, completed, runErr); err != nil {
		logger.Warn("failed to record run finish", "error", err)
	}
	logger.Info("enhance.done",
		"input", *in,
		"output", *out,
		"completed", completed,
		"total", len(jobs),
		"status", string(status),
	)
}

// buildJobs turns records into jobs, honoring the optional sheet-row window
// and skipping rows with no text at all.
func buildJobs(records []table.Record, start, end int) []batch.Job {
	var jobs []batch.Job
	for _, rec := range records {
		if start > 0 && rec.Row < start {
			continue
		}
		if end > 0 && rec.Row > end {
			continue
		}
		if rec.FlatText() == "" {
			continue
		}
		jobs = append(jobs, batch.Job{
			RowID: rec.Row,
			Request: llm.ExtractRequest{
				RowID:  rec.Row,
				Fields: rec.Fields,
				Price:  rec.Price,
			},
		})
	}
	return jobs
}
