// Package batch fans a record set out to a fixed pool of workers, each
// owning its own remote-service client, and streams results back to the
// single goroutine that merges them into the output table.
package batch

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/ecom-insights/listing-attributes/internal/extract"
	"github.com/ecom-insights/listing-attributes/internal/llm"
)

// Job is one record to extract: identity plus the prepared request.
type Job struct {
	RowID   int
	Request llm.ExtractRequest
}

// Result is one finished extraction, pushed by exactly one worker.
type Result struct {
	RowID      int
	Attributes extract.AttributeSet
}

// ExtractorFactory builds one extractor per worker so clients are never
// shared across goroutines. Returning nil marks the worker unusable; the
// coordinator tolerates that and finishes with partial results.
type ExtractorFactory func(workerID int) llm.FieldExtractor

type Coordinator struct {
	factory   ExtractorFactory
	overrides llm.Overrides
	logger    *slog.Logger
	workers   int

	progressEvery time.Duration
}

type Option func(*Coordinator)

func WithWorkers(n int) Option {
	return func(c *Coordinator) {
		if n > 0 {
			c.workers = n
		}
	}
}

func WithOverrides(o llm.Overrides) Option {
	return func(c *Coordinator) { c.overrides = o }
}

func WithProgressInterval(d time.Duration) Option {
	return func(c *Coordinator) {
		if d > 0 {
			c.progressEvery = d
		}
	}
}

func NewCoordinator(factory ExtractorFactory, logger *slog.Logger, opts ...Option) *Coordinator {
	if logger == nil {
		logger = slog.Default()
	}
	c := &Coordinator{
		factory:       factory,
		overrides:     llm.DefaultOverrides(),
		logger:        logger,
		workers:       4,
		progressEvery: 10 * time.Second,
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// Run processes the jobs with the configured worker count and invokes apply
// for every result, always on the calling goroutine, so apply is the only
// writer to the output table and needs no locking. Run returns the number of
// results applied. It returns early (with whatever was applied) when every
// worker has exited, so a dying worker can never hang the batch; ctx
// cancellation stops handing out jobs but drains in-flight results.
func (c *Coordinator) Run(ctx context.Context, jobs []Job, apply func(Result)) int {
	total := len(jobs)
	if total == 0 {
		return 0
	}

	jobCh := make(chan Job, total)
	for _, j := range jobs {
		jobCh <- j
	}
	close(jobCh)

	resultCh := make(chan Result, c.workers)

	var wg sync.WaitGroup
	for i := 0; i < c.workers; i++ {
		wg.Add(1)
		go func(workerID int) {
			defer wg.Done()
			c.worker(ctx, workerID, jobCh, resultCh)
		}(i + 1)
	}

	// Once every worker has exited no further results can arrive; closing
	// the result channel lets the drain loop below terminate even when
	// completed < total.
	go func() {
		wg.Wait()
		close(resultCh)
	}()

	completed := 0
	lastReport := time.Now()
	ticker := time.NewTicker(c.progressEvery)
	defer ticker.Stop()

	for {
		select {
		case res, ok := <-resultCh:
			if !ok {
				if completed < total {
					c.logger.Warn("batch.incomplete",
						"completed", completed, "total", total)
				}
				return completed
			}
			apply(res)
			completed++
			if completed == total {
				c.logger.Info("batch.progress", "completed", completed, "total", total)
				return completed
			}
			if completed%10 == 0 || time.Since(lastReport) > c.progressEvery {
				c.logger.Info("batch.progress", "completed", completed, "total", total)
				lastReport = time.Now()
			}
		case <-ticker.C:
			c.logger.Info("batch.progress", "completed", completed, "total", total)
			lastReport = time.Now()
		}
	}
}

// worker pulls jobs until the queue is empty. Every dequeued job produces
// exactly one result; a failed or degraded call still reports an empty set
// so the supervisor's completion count stays honest.
func (c *Coordinator) worker(ctx context.Context, workerID int, jobCh <-chan Job, resultCh chan<- Result) {
	extractor := c.factory(workerID)
	if extractor == nil {
		c.logger.Error("batch.worker.no_extractor", "worker_id", workerID)
		return
	}
	c.logger.Debug("batch.worker.start", "worker_id", workerID)

	for job := range jobCh {
		if ctx.Err() != nil {
			c.logger.Warn("batch.worker.cancelled", "worker_id", workerID)
			return
		}

		set, _, err := extractor.ExtractAttributes(ctx, job.Request)
		if err != nil {
			c.logger.Warn("batch.worker.extract_error",
				"worker_id", workerID, "row_id", job.RowID, "error", err)
			set = extract.AttributeSet{}
		}
		c.overrides.Apply(&set, job.Request.Price)

		resultCh <- Result{RowID: job.RowID, Attributes: set}
	}

	c.logger.Debug("batch.worker.stop", "worker_id", workerID)
}
