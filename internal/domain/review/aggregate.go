package review

import (
	"context"
	"math"

	"github.com/rs/zerolog"

	"storehub-server/internal/domain/catalog"
	"storehub-server/internal/domain/search"
	"storehub-server/internal/infrastructure/metrics"
)

// Aggregator recomputes derived ratings after a review mutation. Product and
// store ratings are read-then-write without a cross-request lock: concurrent
// reviews on the same product may race and the later recomputation wins. The
// aggregate is a rolling approximation, so last-writer-wins is the accepted
// policy here, not a bug.
type Aggregator struct {
	reviews  Repository
	products catalog.ProductRepository
	stores   catalog.StoreRepository
	search   *search.Sync
	log      zerolog.Logger
}

func NewAggregator(
	reviews Repository,
	products catalog.ProductRepository,
	stores catalog.StoreRepository,
	searchSync *search.Sync,
	log zerolog.Logger,
) *Aggregator {
	return &Aggregator{
		reviews:  reviews,
		products: products,
		stores:   stores,
		search:   searchSync,
		log:      log.With().Str("component", "rating-aggregator").Logger(),
	}
}

// RecomputeAfterReview refreshes the rating of every product the review
// touches, then each owning store's rating. Invoked synchronously right
// after the review row is durably saved.
func (a *Aggregator) RecomputeAfterReview(ctx context.Context, rev *Review) error {
	for _, productID := range rev.ProductIDs {
		if err := a.RecomputeProduct(ctx, productID); err != nil {
			return err
		}
	}
	return nil
}

// RecomputeProduct recalculates one product's rating from the full review
// set and cascades into the owning store's rating.
func (a *Aggregator) RecomputeProduct(ctx context.Context, productID string) error {
	ratings, err := a.reviews.ListRatingsByProduct(ctx, productID)
	if err != nil {
		return err
	}

	rating, rated := MeanHalfUp(ratings)
	var value *float64
	if rated {
		value = &rating
	}
	if err := a.products.SetRating(ctx, productID, value); err != nil {
		return err
	}
	metrics.RatingRecomputations.WithLabelValues("product").Inc()

	product, err := a.products.Get(ctx, productID)
	if err != nil {
		return err
	}
	if product == nil {
		// The product was deleted between the review write and this
		// recomputation; there is no store left to cascade into.
		a.log.Debug().Str("product_id", productID).Msg("product gone before rating cascade")
		return nil
	}
	if err := a.recomputeStore(ctx, product.StoreID); err != nil {
		return err
	}

	// Index staleness is acceptable; the authoritative rating is not lost if
	// this fails, so reconcile errors are logged and absorbed.
	if err := a.search.Reconcile(ctx, productID, search.Fields{Rating: &rating}); err != nil {
		metrics.ConsistencyWarnings.Inc()
		a.log.Warn().Err(err).
			Str("product_id", productID).
			Msg("product rating updated but search index reconcile failed")
	}

	return nil
}

func (a *Aggregator) recomputeStore(ctx context.Context, storeID string) error {
	ratings, err := a.products.ListRatingsByStore(ctx, storeID)
	if err != nil {
		return err
	}
	rating, _ := MeanHalfUp(ratings)
	if err := a.stores.SetRating(ctx, storeID, rating); err != nil {
		return err
	}
	metrics.RatingRecomputations.WithLabelValues("store").Inc()
	return nil
}

// MeanHalfUp computes the arithmetic mean of the ratings rounded half-up to
// one decimal place. The second result is false when there are no ratings, in
// which case the mean is reported as 0.
//
// The computation runs in integer tenths so the tie at the rounding boundary
// is exact: a mean of 4.25 rounds to 4.3 and a mean of 4.15 rounds to 4.2,
// regardless of how those values would be represented in floating point.
func MeanHalfUp(ratings []float64) (float64, bool) {
	if len(ratings) == 0 {
		return 0, false
	}
	sumTenths := 0
	for _, r := range ratings {
		sumTenths += int(math.Round(r * 10))
	}
	n := len(ratings)
	tenths := (2*sumTenths + n) / (2 * n)
	return float64(tenths) / 10, true
}
