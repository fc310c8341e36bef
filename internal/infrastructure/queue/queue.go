package queue

import (
	"context"
	"time"

	"github.com/google/uuid"

	"storehub-server/internal/domain/media"
)

// Channel names the logical stream an envelope belongs to. Both channels
// ride a single physical FIFO so that a deletion enqueued before an upload
// for the same target is always consumed first.
type Channel string

const (
	ChannelUpload   Channel = "upload"
	ChannelDeletion Channel = "deletion"
)

// Envelope is the unit of transport. Exactly one of Upload or Deletion is
// set, matching Channel.
type Envelope struct {
	ID         uuid.UUID          `json:"id"`
	Channel    Channel            `json:"channel"`
	Upload     *media.UploadJob   `json:"upload,omitempty"`
	Deletion   *media.DeletionJob `json:"deletion,omitempty"`
	EnqueuedAt time.Time          `json:"enqueued_at"`
}

// Key returns the ordering key of the carried job.
func (e Envelope) Key() string {
	switch e.Channel {
	case ChannelUpload:
		return e.Upload.Key()
	case ChannelDeletion:
		return e.Deletion.Key()
	}
	return ""
}

// Queue is an at-least-once FIFO job transport. Consume blocks until an
// envelope is available or ctx is done. A consumed envelope stays pending
// until Ack; unacked envelopes are redelivered after a restart.
type Queue interface {
	PublishUpload(ctx context.Context, job media.UploadJob) error
	PublishDeletion(ctx context.Context, job media.DeletionJob) error
	Consume(ctx context.Context) (*Envelope, error)
	Ack(ctx context.Context, env *Envelope) error
	Depth(ctx context.Context) (int64, error)
	Close() error
}

func newUploadEnvelope(job media.UploadJob) *Envelope {
	return &Envelope{
		ID:         uuid.New(),
		Channel:    ChannelUpload,
		Upload:     &job,
		EnqueuedAt: time.Now(),
	}
}

func newDeletionEnvelope(job media.DeletionJob) *Envelope {
	return &Envelope{
		ID:         uuid.New(),
		Channel:    ChannelDeletion,
		Deletion:   &job,
		EnqueuedAt: time.Now(),
	}
}
