package review

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"storehub-server/internal/domain/apperrors"
	"storehub-server/internal/domain/catalog"
)

// RatingSummary describes a product's review distribution.
type RatingSummary struct {
	Distribution map[int]int64
	WithComment  int64
	WithMedia    int64
}

// CreateParams carries a review submission.
type CreateParams struct {
	ActorID string
	OrderID string
	Rating  float64
	Comment string
}

// Service validates and persists reviews, then triggers rating aggregation.
type Service struct {
	reviews    Repository
	orders     catalog.OrderRepository
	aggregator *Aggregator
	log        zerolog.Logger
}

func NewService(
	reviews Repository,
	orders catalog.OrderRepository,
	aggregator *Aggregator,
	log zerolog.Logger,
) *Service {
	return &Service{
		reviews:    reviews,
		orders:     orders,
		aggregator: aggregator,
		log:        log.With().Str("component", "review-service").Logger(),
	}
}

// Create saves a review for a delivered order and recomputes the derived
// ratings of every product the order contains. The recomputation runs after
// the review row is durable; a concurrent review on the same product may
// race it, in which case the later recomputation wins.
func (s *Service) Create(ctx context.Context, params CreateParams) (*Review, error) {
	if params.Rating < 1 || params.Rating > 5 {
		return nil, apperrors.New(apperrors.KindValidation, "rating must be between 1 and 5")
	}

	order, err := s.orders.Get(ctx, params.OrderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, apperrors.New(apperrors.KindNotFound, "order not found")
	}
	if order.UserID != params.ActorID {
		return nil, apperrors.New(apperrors.KindAuthorization, "order does not belong to user")
	}
	if order.Status != catalog.OrderStatusDelivered {
		return nil, apperrors.New(apperrors.KindValidation, "order has not been delivered")
	}

	reviewed, err := s.reviews.HasUserReviewedOrder(ctx, params.ActorID, params.OrderID)
	if err != nil {
		return nil, err
	}
	if reviewed {
		return nil, apperrors.New(apperrors.KindConflict, "order already reviewed")
	}

	productIDs, err := s.orders.ProductIDs(ctx, params.OrderID)
	if err != nil {
		return nil, err
	}
	if len(productIDs) == 0 {
		return nil, apperrors.New(apperrors.KindValidation, "order has no products to review")
	}

	rev := &Review{
		UserID:     params.ActorID,
		OrderID:    params.OrderID,
		Rating:     params.Rating,
		ProductIDs: productIDs,
		CreatedAt:  time.Now(),
	}
	if comment := strings.TrimSpace(params.Comment); comment != "" {
		rev.Comment = &comment
	}

	if err := s.reviews.Create(ctx, rev); err != nil {
		return nil, err
	}

	if err := s.aggregator.RecomputeAfterReview(ctx, rev); err != nil {
		// The review itself is durable; a failed recomputation leaves the
		// aggregate stale until the next review write refreshes it.
		s.log.Error().Err(err).
			Str("order_id", params.OrderID).
			Msg("review saved but rating recomputation failed")
	}

	return rev, nil
}

// RatingSummary returns the star distribution and content totals for a
// product's reviews.
func (s *Service) RatingSummary(ctx context.Context, productID string) (*RatingSummary, error) {
	distribution, err := s.reviews.CountByRating(ctx, productID)
	if err != nil {
		return nil, err
	}
	counts, err := s.reviews.CountContent(ctx, productID)
	if err != nil {
		return nil, err
	}
	return &RatingSummary{
		Distribution: distribution,
		WithComment:  counts.WithComment,
		WithMedia:    counts.WithMedia,
	}, nil
}
