package worker

import (
	"context"
	"hash/fnv"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"storehub-server/internal/domain/media"
	"storehub-server/internal/infrastructure/queue"
)

const shardBuffer = 64

// Pool manages the background media workers. A single dispatcher goroutine
// consumes envelopes from the queue and routes each one to a worker picked
// by hashing the envelope key, so all jobs for one target are handled by the
// same worker in consume order.
type Pool struct {
	workers     []*Worker
	queue       queue.Queue
	store       media.BlobStore
	records     *media.RecordWriter
	workerCount int
	jobTimeout  time.Duration
	log         zerolog.Logger
	wg          sync.WaitGroup
	stopChan    chan struct{}
	stopOnce    sync.Once
	drainCtx    context.Context
	drainCancel context.CancelFunc
}

// Config contains worker pool configuration.
type Config struct {
	WorkerCount int
	JobTimeout  time.Duration
}

// NewPool creates a new worker pool.
func NewPool(
	q queue.Queue,
	store media.BlobStore,
	records *media.RecordWriter,
	cfg Config,
	log zerolog.Logger,
) *Pool {
	// Workers run against their own context so a shutdown signal does not
	// poison the jobs still draining from the shard buffers. It is canceled
	// only once Stop gives up waiting.
	drainCtx, drainCancel := context.WithCancel(context.Background())
	return &Pool{
		queue:       q,
		store:       store,
		records:     records,
		workerCount: cfg.WorkerCount,
		jobTimeout:  cfg.JobTimeout,
		log:         log.With().Str("component", "worker-pool").Logger(),
		stopChan:    make(chan struct{}),
		drainCtx:    drainCtx,
		drainCancel: drainCancel,
	}
}

// Start initializes the workers and the dispatcher.
func (p *Pool) Start(ctx context.Context) error {
	p.log.Info().Int("worker_count", p.workerCount).Msg("starting worker pool")

	p.workers = make([]*Worker, p.workerCount)
	for i := 0; i < p.workerCount; i++ {
		worker := NewWorker(
			i+1,
			p.queue,
			p.store,
			p.records,
			p.jobTimeout,
			p.log,
		)
		p.workers[i] = worker

		p.wg.Add(1)
		go func(w *Worker) {
			defer p.wg.Done()
			w.Run(p.drainCtx)
		}(worker)
	}

	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		p.dispatch(ctx)
	}()

	p.log.Info().Msg("worker pool started")

	return nil
}

func (p *Pool) dispatch(ctx context.Context) {
	consumeCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	go func() {
		select {
		case <-p.stopChan:
			cancel()
		case <-consumeCtx.Done():
		}
	}()

	for {
		env, err := p.queue.Consume(consumeCtx)
		if err != nil {
			if consumeCtx.Err() != nil {
				p.closeShards()
				return
			}
			p.log.Error().Err(err).Msg("failed to consume envelope")
			continue
		}

		shard := p.shardFor(env.Key())
		select {
		case p.workers[shard].jobs <- env:
		case <-consumeCtx.Done():
			p.closeShards()
			return
		}
	}
}

func (p *Pool) shardFor(key string) int {
	h := fnv.New32a()
	h.Write([]byte(key))
	return int(h.Sum32() % uint32(p.workerCount))
}

func (p *Pool) closeShards() {
	for _, w := range p.workers {
		close(w.jobs)
	}
}

// Stop gracefully shuts down the dispatcher and all workers, letting
// in-flight jobs drain.
func (p *Pool) Stop() {
	p.log.Info().Msg("stopping worker pool")

	p.stopOnce.Do(func() {
		close(p.stopChan)
	})

	done := make(chan struct{})
	go func() {
		p.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		p.log.Info().Msg("all workers stopped gracefully")
	case <-time.After(30 * time.Second):
		p.log.Warn().Msg("worker pool shutdown timed out")
	}

	p.drainCancel()
}

// QueueDepth returns the number of envelopes waiting in the queue.
func (p *Pool) QueueDepth(ctx context.Context) (int64, error) {
	return p.queue.Depth(ctx)
}
