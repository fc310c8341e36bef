package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Media pipeline metrics
var (
	// Jobs published to the queue, by channel (upload/deletion) and media kind.
	JobsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "storehub",
			Subsystem: "media_pipeline",
			Name:      "jobs_published_total",
			Help:      "Total media jobs published to the queue",
		},
		[]string{"channel", "kind"},
	)

	// Jobs processed by the worker pool, by channel, kind and outcome.
	JobsProcessed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "storehub",
			Subsystem: "media_pipeline",
			Name:      "jobs_processed_total",
			Help:      "Total media jobs processed by the worker pool",
		},
		[]string{"channel", "kind", "status"},
	)

	// Bytes successfully uploaded to the blob store.
	UploadBytesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "storehub",
			Subsystem: "media_pipeline",
			Name:      "upload_bytes_total",
			Help:      "Total bytes uploaded to the blob store",
		},
		[]string{"kind"},
	)

	// Blob store call duration.
	StoreDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "storehub",
			Subsystem: "media_pipeline",
			Name:      "store_operation_duration_seconds",
			Help:      "Blob store operation duration in seconds",
			Buckets:   []float64{0.1, 0.5, 1, 2, 5, 10, 30},
		},
		[]string{"operation"},
	)

	// Current queue depth (pending deliveries).
	QueueDepth = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "storehub",
			Subsystem: "media_pipeline",
			Name:      "queue_depth",
			Help:      "Number of media jobs waiting in the queue",
		},
	)

	// Entity updated but the search index reconcile failed.
	ConsistencyWarnings = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "storehub",
			Subsystem: "media_pipeline",
			Name:      "consistency_warnings_total",
			Help:      "Entity updates whose search index reconcile failed",
		},
	)

	// Reconciliations skipped because the search record does not exist.
	ReconciliationsSkipped = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "storehub",
			Subsystem: "media_pipeline",
			Name:      "reconciliations_skipped_total",
			Help:      "Search index reconciliations skipped due to a missing record",
		},
	)

	// Rating recomputations triggered by review writes.
	RatingRecomputations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "storehub",
			Subsystem: "media_pipeline",
			Name:      "rating_recomputations_total",
			Help:      "Product/store rating recomputations after review writes",
		},
		[]string{"level"},
	)
)
