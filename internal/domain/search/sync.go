// Package search keeps the denormalized product search records eventually
// consistent with the authoritative catalog rows. The records themselves are
// created by a separate indexing path; this package only reconciles fields
// on records that already exist.
package search

import (
	"context"

	"github.com/rs/zerolog"

	"storehub-server/internal/infrastructure/metrics"
)

// Record is the read-optimized copy of a product used by the search path.
// It is never the source of truth.
type Record struct {
	ProductID    string
	Name         string
	MainImageURL *string
	ImageURLs    []string
	VideoURL     *string
	Rating       float64
}

// Fields carries a partial update; nil members are left untouched.
type Fields struct {
	MainImageURL *string
	ImageURLs    *[]string
	VideoURL     *string
	Rating       *float64
}

// Empty reports whether the update carries no fields at all.
func (f Fields) Empty() bool {
	return f.MainImageURL == nil && f.ImageURLs == nil && f.VideoURL == nil && f.Rating == nil
}

// Repository persists search records.
type Repository interface {
	// FindByProductID returns nil, nil when no record exists for the product.
	FindByProductID(ctx context.Context, productID string) (*Record, error)
	Update(ctx context.Context, productID string, fields Fields) error
}

// Sync reconciles a product's search record after an authoritative change.
type Sync struct {
	repo Repository
	log  zerolog.Logger
}

func NewSync(repo Repository, log zerolog.Logger) *Sync {
	return &Sync{
		repo: repo,
		log:  log.With().Str("component", "search-sync").Logger(),
	}
}

// Reconcile overwrites the supplied fields on the product's search record.
// A missing record is not an error: the record is created elsewhere and the
// triggering media job must never fail because of it.
func (s *Sync) Reconcile(ctx context.Context, productID string, fields Fields) error {
	if fields.Empty() {
		return nil
	}

	record, err := s.repo.FindByProductID(ctx, productID)
	if err != nil {
		return err
	}
	if record == nil {
		metrics.ReconciliationsSkipped.Inc()
		s.log.Debug().
			Str("product_id", productID).
			Msg("search record absent, reconciliation skipped")
		return nil
	}

	return s.repo.Update(ctx, productID, fields)
}
