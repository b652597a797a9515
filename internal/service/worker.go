package service

import (
	"context"
	"errors"
	"sync"

	"github.com/vanshika/campusdraw/internal/domain"
)

// TaskError accumulates multiple errors produced during bulk loading.
type TaskError struct {
	Errors []error
}

func (e *TaskError) Error() string {
	if len(e.Errors) == 0 {
		return "no errors"
	}
	if len(e.Errors) == 1 {
		return e.Errors[0].Error()
	}
	msg := "multiple errors:"
	for _, err := range e.Errors {
		msg += " " + err.Error() + ";"
	}
	return msg
}

func (e *TaskError) append(err error) {
	if err == nil {
		return
	}
	e.Errors = append(e.Errors, err)
}

func (e *TaskError) asError() error {
	if len(e.Errors) == 0 {
		return nil
	}
	return e
}

// CampusStore persists the campus map used by the graph-backed path source.
type CampusStore interface {
	UpsertBuilding(ctx context.Context, building domain.Building) error
	UpsertWalkway(ctx context.Context, walkway domain.Walkway) error
}

// BulkLoader writes buildings and walkways using a worker pool.
type BulkLoader struct {
	store   CampusStore
	workers int
}

// NewBulkLoader creates a BulkLoader with the provided concurrency.
func NewBulkLoader(store CampusStore, workers int) *BulkLoader {
	if workers <= 0 {
		workers = 4
	}
	return &BulkLoader{
		store:   store,
		workers: workers,
	}
}

// LoadBuildings upserts every building concurrently.
func (bl *BulkLoader) LoadBuildings(ctx context.Context, buildings []domain.Building) error {
	return bl.run(ctx, len(buildings), func(idx int) error {
		return bl.store.UpsertBuilding(ctx, buildings[idx])
	})
}

// LoadWalkways upserts every walkway concurrently. Buildings should be loaded
// first so walkway endpoints attach to existing building nodes.
func (bl *BulkLoader) LoadWalkways(ctx context.Context, walkways []domain.Walkway) error {
	return bl.run(ctx, len(walkways), func(idx int) error {
		return bl.store.UpsertWalkway(ctx, walkways[idx])
	})
}

func (bl *BulkLoader) run(ctx context.Context, total int, workerFn func(idx int) error) error {
	if total == 0 {
		return nil
	}
	indexCh := make(chan int)
	errCh := make(chan error, total)
	var wg sync.WaitGroup

	worker := func() {
		defer wg.Done()
		for idx := range indexCh {
			if err := workerFn(idx); err != nil {
				select {
				case errCh <- err:
				case <-ctx.Done():
					return
				}
			}
		}
	}

	for i := 0; i < bl.workers; i++ {
		wg.Add(1)
		go worker()
	}

Loop:
	for i := 0; i < total; i++ {
		select {
		case indexCh <- i:
		case <-ctx.Done():
			break Loop
		}
	}
	close(indexCh)
	wg.Wait()
	close(errCh)

	var taskErr TaskError
	for err := range errCh {
		if err == nil {
			continue
		}
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return err
		}
		taskErr.append(err)
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	return taskErr.asError()
}
