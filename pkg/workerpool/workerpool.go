// Package workerpool runs bounded concurrent work.
package workerpool

import (
	"context"
	"errors"
	"sync"
)

// Task is a unit of work run by Run.
type Task func(context.Context) error

// Run executes tasks on at most workers goroutines. A failing task cancels the context handed to
// the others and tasks not yet started are skipped. The returned error joins every task failure;
// it is the parent context error when the parent was canceled and no task failed.
func Run(ctx context.Context, workers int, tasks ...Task) error {
	if len(tasks) == 0 {
		return ctx.Err()
	}
	if workers <= 0 || workers > len(tasks) {
		workers = len(tasks)
	}

	parent := ctx
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var (
		mu   sync.Mutex
		errs []error
		wg   sync.WaitGroup
	)
	queue := make(chan Task)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for task := range queue {
				if ctx.Err() != nil {
					continue
				}
				if err := task(ctx); err != nil {
					mu.Lock()
					errs = append(errs, err)
					mu.Unlock()
					cancel()
				}
			}
		}()
	}

feed:
	for _, task := range tasks {
		select {
		case <-ctx.Done():
			break feed
		case queue <- task:
		}
	}
	close(queue)
	wg.Wait()

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return parent.Err()
}

// Each runs fn for every item through Run.
func Each[T any](ctx context.Context, workers int, items []T, fn func(context.Context, T) error) error {
	tasks := make([]Task, 0, len(items))
	for _, item := range items {
		tasks = append(tasks, func(ctx context.Context) error {
			return fn(ctx, item)
		})
	}
	return Run(ctx, workers, tasks...)
}
