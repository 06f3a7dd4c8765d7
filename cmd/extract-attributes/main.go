// Command extract-attributes runs the rule-based pass: it reads a listing
// workbook, extracts the ten product attributes from each row's text fields
// with regex recognizers, and writes a copy of the workbook with the
// attribute columns appended.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/ecom-insights/listing-attributes/constants"
	"github.com/ecom-insights/listing-attributes/internal/common"
	"github.com/ecom-insights/listing-attributes/internal/extract"
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
		verbose = flag.Bool("verbose", false, "enable debug logging")
	)
	flag.Parse()

	if *in == "" {
		printError("Error: --in is required\n")
		os.Exit(1)
	}
	if *out == "" {
		*out = table.OutputPath(*in, "extracted")
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	ctx := context.Background()
	cfg := common.LoadConfig()

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

	records := wb.Records()
	runID, err := runs.CreateRun(ctx, *in, "rules", len(records))
	if err != nil {
		logger.Error("failed to record run start", "error", err)
		os.Exit(1)
	}
	if err := runs.MarkRunning(ctx, runID); err != nil {
		logger.Warn("failed to mark run running", "error", err)
	}

	results := make(map[int]extract.AttributeSet, len(records))
	for i, rec := range records {
		results[rec.Row] = extract.Extract(rec.FlatText())
		if (i+1)%10 == 0 {
			logger.Info("extract.progress", "completed", i+1, "total", len(records))
		}
	}

	coverage := report.Compute(results, len(records))
	report.Log(logger, coverage)
	if err := runs.SaveCoverage(ctx, runID, coverage); err != nil {
		logger.Warn("failed to save coverage", "error", err)
	}

	if err := wb.AppendAttributes(results); err != nil {
		_ = runs.FinishRun(ctx, runID, constants.RunStatusFailed, len(results), err)
		logger.Error("failed to append attribute columns", "error", err)
		os.Exit(1)
	}
	if err := wb.SaveAs(*out); err != nil {
		_ = runs.FinishRun(ctx, runID, constants.RunStatusFailed, len(results), err)
		logger.Error("failed to save workbook", "error", err)
		os.Exit(1)
	}

	if err := runs.FinishRun(ctx, runID, constants.RunStatusDone, len(results), nil); err != nil {
		logger.Warn("failed to record run finish", "error", err)
	}
	logger.Info("extract.done", "input", *in, "output", *out, "rows", len(records))
}
