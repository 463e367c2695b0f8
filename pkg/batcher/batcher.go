// Package batcher buffers items and writes them in rate-limited batches.
package batcher

import (
	"context"
	"sync"
	"time"

	"go.uber.org/ratelimit"
	"go.uber.org/zap"
)

// Options controls when a Batcher flushes.
type Options struct {
	// Size flushes once this many items are buffered.
	Size int
	// Interval flushes whatever is buffered at this period.
	Interval time.Duration
	// RPS caps flushes per second.
	RPS int
}

// Batcher buffers items and hands them to a flush function by size or interval.
// Items still queued when the batcher stops are flushed before Stop returns.
type Batcher[T any] struct {
	flush   func(context.Context, []T) error
	onError func([]T, error)
	opts    Options
	items   chan T
	rl      ratelimit.Limiter
	logger  *zap.Logger

	wg       sync.WaitGroup
	stop     chan struct{}
	stopOnce sync.Once
}

// New constructs a Batcher.
func New[T any](logger *zap.Logger, flush func(context.Context, []T) error, opts Options) *Batcher[T] {
	if opts.Size <= 0 {
		opts.Size = 1
	}
	if opts.Interval <= 0 {
		opts.Interval = time.Second
	}
	if opts.RPS <= 0 {
		opts.RPS = 1
	}
	return &Batcher[T]{
		logger: logger,
		flush:  flush,
		opts:   opts,
		items:  make(chan T, opts.Size*2),
		rl:     ratelimit.New(opts.RPS),
		stop:   make(chan struct{}),
	}
}

// OnError registers a hook called with every batch that failed to flush.
// It must be called before Start.
func (b *Batcher[T]) OnError(hook func([]T, error)) {
	b.onError = hook
}

// Start begins the background flushing loop.
func (b *Batcher[T]) Start(ctx context.Context) {
	b.wg.Add(1)
	go b.run(ctx)
}

// Stop flushes queued items and waits for the loop to exit. It is safe to call more than once.
func (b *Batcher[T]) Stop() {
	b.stopOnce.Do(func() { close(b.stop) })
	b.wg.Wait()
}

// Add queues an item, blocking while the queue is full.
func (b *Batcher[T]) Add(ctx context.Context, item T) error {
	select {
	case <-b.stop:
		return context.Canceled
	default:
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-b.stop:
		return context.Canceled
	case b.items <- item:
		return nil
	}
}

func (b *Batcher[T]) run(ctx context.Context) {
	defer b.wg.Done()

	ticker := time.NewTicker(b.opts.Interval)
	defer ticker.Stop()

	buf := make([]T, 0, b.opts.Size)
	flush := func(ctx context.Context) {
		if len(buf) == 0 {
			return
		}
		batch := buf
		buf = make([]T, 0, b.opts.Size)

		b.rl.Take()
		if err := b.flush(ctx, batch); err != nil {
			b.logger.Error("batch not flushed", zap.Int("size", len(batch)), zap.Error(err))
			if b.onError != nil {
				b.onError(batch, err)
			}
			return
		}
		b.logger.Debug("batch flushed", zap.Int("size", len(batch)))
	}

	// drain runs on shutdown with a context that outlives the caller's so queued items still land.
	drain := func() {
		ctx := context.WithoutCancel(ctx)
		for {
			select {
			case item := <-b.items:
				buf = append(buf, item)
				if len(buf) >= b.opts.Size {
					flush(ctx)
				}
			default:
				flush(ctx)
				return
			}
		}
	}

	for {
		select {
		case <-ctx.Done():
			drain()
			return

		case <-b.stop:
			drain()
			return

		case item := <-b.items:
			buf = append(buf, item)
			if len(buf) >= b.opts.Size {
				flush(ctx)
			}

		case <-ticker.C:
			flush(ctx)
		}
	}
}
