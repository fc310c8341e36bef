package queue

import (
	"context"
	"sync"

	"storehub-server/internal/domain/media"
	"storehub-server/internal/infrastructure/metrics"
)

// MemoryQueue is a process-local Queue backend used by default and in tests.
// Envelopes acked before Close are gone; anything still pending is simply
// lost with the process, which is the accepted durability level for this
// backend.
type MemoryQueue struct {
	mu      sync.Mutex
	items   []*Envelope
	pending map[string]*Envelope
	signal  chan struct{}
	closed  bool
}

func NewMemoryQueue() *MemoryQueue {
	return &MemoryQueue{
		pending: make(map[string]*Envelope),
		signal:  make(chan struct{}, 1),
	}
}

func (q *MemoryQueue) PublishUpload(_ context.Context, job media.UploadJob) error {
	return q.push(newUploadEnvelope(job))
}

func (q *MemoryQueue) PublishDeletion(_ context.Context, job media.DeletionJob) error {
	return q.push(newDeletionEnvelope(job))
}

func (q *MemoryQueue) push(env *Envelope) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		return context.Canceled
	}
	q.items = append(q.items, env)
	metrics.QueueDepth.Set(float64(len(q.items)))
	select {
	case q.signal <- struct{}{}:
	default:
	}
	return nil
}

// Consume pops the oldest envelope, blocking until one is published or ctx
// is done.
func (q *MemoryQueue) Consume(ctx context.Context) (*Envelope, error) {
	for {
		q.mu.Lock()
		if len(q.items) > 0 {
			env := q.items[0]
			q.items = q.items[1:]
			q.pending[env.ID.String()] = env
			metrics.QueueDepth.Set(float64(len(q.items)))
			q.mu.Unlock()
			return env, nil
		}
		q.mu.Unlock()

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-q.signal:
		}
	}
}

func (q *MemoryQueue) Ack(_ context.Context, env *Envelope) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	delete(q.pending, env.ID.String())
	return nil
}

func (q *MemoryQueue) Depth(_ context.Context) (int64, error) {
	q.mu.Lock()
	defer q.mu.Unlock()
	return int64(len(q.items)), nil
}

func (q *MemoryQueue) Close() error {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.closed = true
	return nil
}
