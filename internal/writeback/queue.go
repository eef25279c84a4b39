// Package writeback runs persistence effects on a single goroutine in the
// order they were issued. The session store updates its in-memory state first
// and hands the durable write to the queue; Submit does not wait for the
// write, Do does.
package writeback

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/alexanderramin/liftlog/internal/metrics"
)

// ErrClosed is returned by Do and Flush after Close.
var ErrClosed = errors.New("writeback queue closed")

// DefaultBuffer is the number of operations that can wait before Submit blocks.
const DefaultBuffer = 64

// Op is one persistence effect.
type Op func(ctx context.Context) error

type job struct {
	name   string
	ctx    context.Context
	fn     Op
	result chan error // nil for fire-and-forget jobs
}

// Queue executes Ops sequentially. It is safe for concurrent use.
type Queue struct {
	jobs   chan job
	logger *slog.Logger

	mu     sync.RWMutex
	closed bool
	done   chan struct{}
}

// New starts a queue whose worker logs failures to logger.
func New(logger *slog.Logger, buffer int) *Queue {
	if logger == nil {
		logger = slog.Default()
	}
	if buffer <= 0 {
		buffer = DefaultBuffer
	}
	q := &Queue{
		jobs:   make(chan job, buffer),
		logger: logger,
		done:   make(chan struct{}),
	}
	go q.run()
	return q
}

// Submit enqueues fn and returns immediately. Failures are logged, counted
// and otherwise dropped. After Close the operation is dropped with a warning.
func (q *Queue) Submit(ctx context.Context, name string, fn Op) {
	if !q.enqueue(job{name: name, ctx: context.WithoutCancel(ctx), fn: fn}) {
		q.logger.Warn("persistence operation dropped after close", "operation", name)
		metrics.PersistenceFailuresTotal.WithLabelValues(name).Inc()
	}
}

// Do enqueues fn behind everything already submitted and waits for it to
// run. The operation itself is not cancelled with ctx; ctx only bounds the
// wait.
func (q *Queue) Do(ctx context.Context, name string, fn Op) error {
	result := make(chan error, 1)
	if !q.enqueue(job{name: name, ctx: context.WithoutCancel(ctx), fn: fn, result: result}) {
		return fmt.Errorf("%s: %w", name, ErrClosed)
	}
	select {
	case err := <-result:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Flush waits until every operation submitted before the call has run.
func (q *Queue) Flush(ctx context.Context) error {
	return q.Do(ctx, "flush", func(context.Context) error { return nil })
}

// Close stops accepting work, drains pending operations and waits for the
// worker to exit. It is safe to call more than once.
func (q *Queue) Close() {
	q.mu.Lock()
	if !q.closed {
		q.closed = true
		close(q.jobs)
	}
	q.mu.Unlock()
	<-q.done
}

func (q *Queue) enqueue(j job) bool {
	q.mu.RLock()
	defer q.mu.RUnlock()
	if q.closed {
		return false
	}
	metrics.PersistenceQueueDepth.Inc()
	q.jobs <- j
	return true
}

func (q *Queue) run() {
	defer close(q.done)
	for j := range q.jobs {
		metrics.PersistenceQueueDepth.Dec()
		err := q.execute(j)
		if j.result != nil {
			j.result <- err
		}
	}
}

func (q *Queue) execute(j job) (err error) {
	start := time.Now()
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%s panicked: %v", j.name, r)
		}
		metrics.PersistenceOpDuration.WithLabelValues(j.name).Observe(time.Since(start).Seconds())
		if err != nil {
			metrics.PersistenceOpsTotal.WithLabelValues(j.name, metrics.StatusError).Inc()
			metrics.PersistenceFailuresTotal.WithLabelValues(j.name).Inc()
			q.logger.Error("persistence operation failed", "operation", j.name, "error", err)
			return
		}
		metrics.PersistenceOpsTotal.WithLabelValues(j.name, metrics.StatusSuccess).Inc()
	}()
	return j.fn(j.ctx)
}
