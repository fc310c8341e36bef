// Package media implements the asynchronous media pipeline: the upload
// orchestrator that request handlers call, the job model carried by the
// queue, and the record writer the worker pool applies results through.
package media

import (
	"context"
	"time"
)

// Kind enumerates the media slots the pipeline manages.
type Kind string

const (
	KindCategoryImage    Kind = "category_image"
	KindCategoryIcon     Kind = "category_icon"
	KindUserImage        Kind = "user_image"
	KindBrandLogo        Kind = "brand_logo"
	KindProductMainImage Kind = "product_main_image"
	KindProductGallery   Kind = "product_gallery"
	KindProductVideo     Kind = "product_video"
	KindReviewImages     Kind = "review_images"
	KindReviewVideo      Kind = "review_video"
)

// IsVideo reports whether the kind carries video payloads.
func (k Kind) IsVideo() bool {
	return k == KindProductVideo || k == KindReviewVideo
}

// IsGallery reports whether the kind carries multiple payloads.
func (k Kind) IsGallery() bool {
	return k == KindProductGallery || k == KindReviewImages
}

// IsProduct reports whether the kind belongs to a product, in which case the
// search index must be reconciled after the record changes.
func (k Kind) IsProduct() bool {
	return k == KindProductMainImage || k == KindProductGallery || k == KindProductVideo
}

// Tag returns the storage folder tag for the kind.
func (k Kind) Tag() string {
	return string(k)
}

// UploadJob carries raw payload bytes from the orchestrator to a worker.
// Ephemeral: consumed once, then discarded.
type UploadJob struct {
	TargetID  string    `json:"target_id"`
	Kind      Kind      `json:"kind"`
	Payloads  [][]byte  `json:"payloads"`
	CreatedAt time.Time `json:"created_at"`
}

// Key returns the per-target ordering key.
func (j UploadJob) Key() string {
	return j.TargetID
}

// DeletionJob reclaims blobs whose record was overwritten or cleared.
type DeletionJob struct {
	TargetID  string   `json:"target_id"`
	Kind      Kind     `json:"kind"`
	Locations []string `json:"locations"`
}

// Key returns the per-target ordering key.
func (j DeletionJob) Key() string {
	return j.TargetID
}

// UploadResult is the blob store's reply for one stored payload.
type UploadResult struct {
	Location  string
	Format    string
	Bytes     int64
	CreatedAt time.Time
}

// BlobStore is the opaque upload/delete capability the pipeline consumes.
// Delete must be a no-op on a missing location so that redelivered deletion
// jobs stay idempotent.
type BlobStore interface {
	Upload(ctx context.Context, data []byte, kindTag string) (UploadResult, error)
	Delete(ctx context.Context, location string) error
}

// Publisher is the queue port the orchestrator publishes through. Both
// operations must preserve relative publish order for jobs sharing a key.
type Publisher interface {
	PublishUpload(ctx context.Context, job UploadJob) error
	PublishDeletion(ctx context.Context, job DeletionJob) error
}

// AccessPolicy answers the ownership checks the orchestrator runs before any
// job is enqueued. Implementations return an authorization error on denial.
type AccessPolicy interface {
	CanManageCatalog(ctx context.Context, actorID string) error
	CanManageProduct(ctx context.Context, actorID, productID string) error
	CanManageReview(ctx context.Context, actorID string, reviewID int64) error
}

// StatusProcessing marks a receipt whose job is still in flight.
const StatusProcessing = "processing"

// Receipt is the placeholder response returned before async processing
// completes: one placeholder location per accepted file.
type Receipt struct {
	TargetID     string   `json:"target_id"`
	Kind         Kind     `json:"kind"`
	Status       string   `json:"status"`
	Placeholders []string `json:"placeholders"`
}
