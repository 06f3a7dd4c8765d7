package batch

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ecom-insights/listing-attributes/internal/extract"
	"github.com/ecom-insights/listing-attributes/internal/llm"
)

type stubExtractor struct {
	fn func(req llm.ExtractRequest) (extract.AttributeSet, error)
}

func (s *stubExtractor) ExtractAttributes(_ context.Context, req llm.ExtractRequest) (extract.AttributeSet, []byte, error) {
	set, err := s.fn(req)
	return set, nil, err
}

func makeJobs(n int) []Job {
	jobs := make([]Job, 0, n)
	for i := 0; i < n; i++ {
		row := i + 2
		jobs = append(jobs, Job{
			RowID: row,
			Request: llm.ExtractRequest{
				RowID:  row,
				Fields: []llm.Field{{Name: "Title", Value: fmt.Sprintf("listing %d", row)}},
			},
		})
	}
	return jobs
}

func strp(s string) *string { return &s }

func TestCoordinatorProcessesEveryJobOnce(t *testing.T) {
	factory := func(int) llm.FieldExtractor {
		return &stubExtractor{fn: func(req llm.ExtractRequest) (extract.AttributeSet, error) {
			return extract.AttributeSet{Color: strp("blue、gold")}, nil
		}}
	}

	c := NewCoordinator(factory, nil, WithWorkers(4))
	jobs := makeJobs(25)

	seen := make(map[int]int)
	completed := c.Run(context.Background(), jobs, func(res Result) {
		seen[res.RowID]++
		require.NotNil(t, res.Attributes.Color)
		// Overrides run on every result before it is applied.
		assert.Equal(t, "blue", *res.Attributes.Color)
	})

	assert.Equal(t, len(jobs), completed)
	assert.Len(t, seen, len(jobs))
	for row, n := range seen {
		assert.Equal(t, 1, n, "row %d applied more than once", row)
	}
}

func TestCoordinatorDegradedClientStillCompletes(t *testing.T) {
	factory := func(int) llm.FieldExtractor {
		return &stubExtractor{fn: func(llm.ExtractRequest) (extract.AttributeSet, error) {
			return extract.AttributeSet{}, errors.New("remote unavailable")
		}}
	}

	c := NewCoordinator(factory, nil, WithWorkers(3))
	jobs := makeJobs(10)

	empty := 0
	completed := c.Run(context.Background(), jobs, func(res Result) {
		if res.Attributes.IsEmpty() {
			empty++
		}
	})

	assert.Equal(t, len(jobs), completed, "a failing client degrades, it does not hang the batch")
	assert.Equal(t, len(jobs), empty)
}

func TestCoordinatorReturnsWhenNoWorkerIsUsable(t *testing.T) {
	factory := func(int) llm.FieldExtractor { return nil }

	c := NewCoordinator(factory, nil, WithWorkers(4))
	jobs := makeJobs(8)

	done := make(chan int, 1)
	go func() {
		done <- c.Run(context.Background(), jobs, func(Result) {})
	}()

	select {
	case completed := <-done:
		assert.Zero(t, completed)
	case <-time.After(5 * time.Second):
		t.Fatal("coordinator hung with no usable workers")
	}
}

func TestCoordinatorSurvivesPartialWorkerLoss(t *testing.T) {
	// Only worker 1 gets a client; the others exit immediately. The live
	// worker drains the whole queue.
	factory := func(workerID int) llm.FieldExtractor {
		if workerID != 1 {
			return nil
		}
		return &stubExtractor{fn: func(llm.ExtractRequest) (extract.AttributeSet, error) {
			return extract.AttributeSet{StorageCase: strp("yes")}, nil
		}}
	}

	c := NewCoordinator(factory, nil, WithWorkers(4))
	jobs := makeJobs(12)

	completed := c.Run(context.Background(), jobs, func(Result) {})
	assert.Equal(t, len(jobs), completed)
}

func TestCoordinatorStopsOnCancelledContext(t *testing.T) {
	var calls atomic.Int32
	factory := func(int) llm.FieldExtractor {
		return &stubExtractor{fn: func(llm.ExtractRequest) (extract.AttributeSet, error) {
			calls.Add(1)
			return extract.AttributeSet{}, nil
		}}
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c := NewCoordinator(factory, nil, WithWorkers(2))
	completed := c.Run(ctx, makeJobs(20), func(Result) {})

	assert.Zero(t, completed)
	assert.Zero(t, calls.Load())
}

func TestCoordinatorEmptyJobList(t *testing.T) {
	c := NewCoordinator(func(int) llm.FieldExtractor { return nil }, nil)
	assert.Zero(t, c.Run(context.Background(), nil, func(Result) {}))
}
