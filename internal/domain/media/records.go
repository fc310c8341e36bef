package media

import (
	"context"
	"strconv"

	"github.com/rs/zerolog"

	"storehub-server/internal/domain/apperrors"
	"storehub-server/internal/domain/catalog"
	"storehub-server/internal/domain/review"
	"storehub-server/internal/domain/search"
	"storehub-server/internal/infrastructure/metrics"
)

// RecordWriter applies the outcome of a completed upload to the owning
// entity's media record and, for product kinds, reconciles the change into
// the search index. A failed reconcile is reported and counted but never
// rolls back the entity write.
type RecordWriter struct {
	categories catalog.CategoryRepository
	brands     catalog.BrandRepository
	users      catalog.UserRepository
	products   catalog.ProductRepository
	reviews    review.Repository
	search     *search.Sync
	log        zerolog.Logger
}

func NewRecordWriter(
	categories catalog.CategoryRepository,
	brands catalog.BrandRepository,
	users catalog.UserRepository,
	products catalog.ProductRepository,
	reviews review.Repository,
	searchSync *search.Sync,
	log zerolog.Logger,
) *RecordWriter {
	return &RecordWriter{
		categories: categories,
		brands:     brands,
		users:      users,
		products:   products,
		reviews:    reviews,
		search:     searchSync,
		log:        log.With().Str("component", "record-writer").Logger(),
	}
}

// Apply stores the uploaded locations on the entity identified by kind and
// targetID. The locations replace the previous record value wholesale; the
// old blobs were already queued for reclaim when the upload was accepted.
func (w *RecordWriter) Apply(ctx context.Context, kind Kind, targetID string, locations []string) error {
	if len(locations) == 0 {
		return apperrors.Newf(apperrors.KindInternal, "no locations to apply for %s %s", kind, targetID)
	}

	switch kind {
	case KindCategoryImage:
		id, err := parseID(targetID)
		if err != nil {
			return err
		}
		return w.categories.SetImageURL(ctx, id, &locations[0])

	case KindCategoryIcon:
		id, err := parseID(targetID)
		if err != nil {
			return err
		}
		return w.categories.SetIconURL(ctx, id, &locations[0])

	case KindBrandLogo:
		id, err := parseID(targetID)
		if err != nil {
			return err
		}
		return w.brands.SetLogoURL(ctx, id, &locations[0])

	case KindUserImage:
		return w.users.SetImageURL(ctx, targetID, &locations[0])

	case KindProductMainImage:
		if err := w.products.SetMainImageURL(ctx, targetID, &locations[0]); err != nil {
			return err
		}
		w.reconcile(ctx, targetID, search.Fields{MainImageURL: &locations[0]})
		return nil

	case KindProductGallery:
		if err := w.products.ReplaceImages(ctx, targetID, locations); err != nil {
			return err
		}
		w.reconcile(ctx, targetID, search.Fields{ImageURLs: &locations})
		return nil

	case KindProductVideo:
		if err := w.products.SetVideoURL(ctx, targetID, &locations[0]); err != nil {
			return err
		}
		w.reconcile(ctx, targetID, search.Fields{VideoURL: &locations[0]})
		return nil

	case KindReviewImages:
		id, err := parseID(targetID)
		if err != nil {
			return err
		}
		return w.reviews.ReplaceImages(ctx, id, locations)

	case KindReviewVideo:
		id, err := parseID(targetID)
		if err != nil {
			return err
		}
		return w.reviews.SetVideoURL(ctx, id, &locations[0])

	default:
		return apperrors.Newf(apperrors.KindInternal, "unknown media kind %q", kind)
	}
}

func (w *RecordWriter) reconcile(ctx context.Context, productID string, fields search.Fields) {
	if err := w.search.Reconcile(ctx, productID, fields); err != nil {
		metrics.ConsistencyWarnings.Inc()
		w.log.Warn().
			Err(err).
			Str("product_id", productID).
			Msg("search index reconcile failed, entity record kept")
	}
}

func parseID(targetID string) (int64, error) {
	id, err := strconv.ParseInt(targetID, 10, 64)
	if err != nil {
		return 0, apperrors.Wrap(apperrors.KindInternal, "malformed target id", err)
	}
	return id, nil
}
