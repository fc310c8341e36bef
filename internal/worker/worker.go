package worker

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"

	"storehub-server/internal/domain/media"
	"storehub-server/internal/infrastructure/metrics"
	"storehub-server/internal/infrastructure/observability"
	"storehub-server/internal/infrastructure/queue"
)

// Worker processes the media job envelopes routed to its shard. Every
// envelope is acked after handling, success or not: a failed upload leaves
// the entity record untouched and is reported rather than retried, and a
// failed deletion is best effort by contract.
type Worker struct {
	id         int
	queue      queue.Queue
	store      media.BlobStore
	records    *media.RecordWriter
	jobTimeout time.Duration
	log        zerolog.Logger
	jobs       chan *queue.Envelope
}

// NewWorker creates a new background worker.
func NewWorker(
	id int,
	q queue.Queue,
	store media.BlobStore,
	records *media.RecordWriter,
	jobTimeout time.Duration,
	log zerolog.Logger,
) *Worker {
	return &Worker{
		id:         id,
		queue:      q,
		store:      store,
		records:    records,
		jobTimeout: jobTimeout,
		log:        log.With().Int("worker_id", id).Str("component", "worker").Logger(),
		jobs:       make(chan *queue.Envelope, shardBuffer),
	}
}

// Run drains the worker's shard channel until it is closed.
func (w *Worker) Run(ctx context.Context) {
	w.log.Info().Msg("worker started")

	for env := range w.jobs {
		w.handle(ctx, env)
		if err := w.queue.Ack(ctx, env); err != nil {
			w.log.Error().Err(err).Str("envelope_id", env.ID.String()).Msg("failed to ack envelope")
		}
	}

	w.log.Info().Msg("worker stopped")
}

func (w *Worker) handle(ctx context.Context, env *queue.Envelope) {
	switch env.Channel {
	case queue.ChannelUpload:
		w.handleUpload(ctx, env.Upload)
	case queue.ChannelDeletion:
		w.handleDeletion(ctx, env.Deletion)
	default:
		w.log.Error().Str("channel", string(env.Channel)).Msg("unknown envelope channel")
	}
}

func (w *Worker) handleUpload(ctx context.Context, job *media.UploadJob) {
	kind := string(job.Kind)
	ctx, span := observability.StartJobSpan(ctx, "upload", kind, job.TargetID)
	defer span.End()

	log := w.log.With().
		Str("kind", kind).
		Str("target_id", job.TargetID).
		Int("files", len(job.Payloads)).
		Logger()
	log.Info().Msg("processing upload job")

	locations := make([]string, 0, len(job.Payloads))
	for _, payload := range job.Payloads {
		result, err := w.uploadPayload(ctx, payload, job.Kind.Tag())
		if err != nil {
			observability.RecordError(span, err)
			metrics.JobsProcessed.WithLabelValues("upload", kind, "failure").Inc()
			log.Error().Err(err).Msg("upload failed, entity record left untouched")
			return
		}
		locations = append(locations, result.Location)
		metrics.UploadBytesTotal.WithLabelValues(kind).Add(float64(result.Bytes))
	}

	if err := w.records.Apply(ctx, job.Kind, job.TargetID, locations); err != nil {
		observability.RecordError(span, err)
		metrics.JobsProcessed.WithLabelValues("upload", kind, "failure").Inc()
		log.Error().Err(err).Msg("failed to store upload result")
		return
	}

	metrics.JobsProcessed.WithLabelValues("upload", kind, "success").Inc()
	log.Info().Strs("locations", locations).Msg("upload job completed")
}

func (w *Worker) uploadPayload(ctx context.Context, payload []byte, kindTag string) (media.UploadResult, error) {
	ctx, cancel := context.WithTimeout(ctx, w.jobTimeout)
	defer cancel()

	ctx, span := observability.StartStoreSpan(ctx, "upload", kindTag)
	defer span.End()

	timer := prometheus.NewTimer(metrics.StoreDuration.WithLabelValues("upload"))
	defer timer.ObserveDuration()

	result, err := w.store.Upload(ctx, payload, kindTag)
	if err != nil {
		observability.RecordError(span, err)
		return media.UploadResult{}, err
	}
	return result, nil
}

// handleDeletion reclaims blobs one location at a time. Missing blobs are a
// no-op inside the store adapters, which keeps redelivered deletions
// harmless. Failures are logged and skipped; the record was already cleared
// or overwritten when the job was enqueued.
func (w *Worker) handleDeletion(ctx context.Context, job *media.DeletionJob) {
	kind := string(job.Kind)
	ctx, span := observability.StartJobSpan(ctx, "deletion", kind, job.TargetID)
	defer span.End()

	log := w.log.With().
		Str("kind", kind).
		Str("target_id", job.TargetID).
		Int("locations", len(job.Locations)).
		Logger()
	log.Info().Msg("processing deletion job")

	failed := 0
	for _, location := range job.Locations {
		if err := w.deleteLocation(ctx, location, job.Kind.Tag()); err != nil {
			observability.RecordError(span, err)
			log.Error().Err(err).Str("location", location).Msg("failed to delete blob")
			failed++
		}
	}

	status := "success"
	if failed > 0 {
		status = "failure"
	}
	metrics.JobsProcessed.WithLabelValues("deletion", kind, status).Inc()
	log.Info().Int("failed", failed).Msg("deletion job completed")
}

func (w *Worker) deleteLocation(ctx context.Context, location, kindTag string) error {
	ctx, cancel := context.WithTimeout(ctx, w.jobTimeout)
	defer cancel()

	ctx, span := observability.StartStoreSpan(ctx, "delete", kindTag)
	defer span.End()

	timer := prometheus.NewTimer(metrics.StoreDuration.WithLabelValues("delete"))
	defer timer.ObserveDuration()

	if err := w.store.Delete(ctx, location); err != nil {
		observability.RecordError(span, err)
		return err
	}
	return nil
}
