// Package review owns the review write path and the rating aggregation that
// must follow every successful review creation.
package review

import (
	"context"
	"time"
)

// Review is one buyer review. A single review covers every product of the
// reviewed order, so ProductIDs usually holds more than one entry.
type Review struct {
	ID         int64
	UserID     string
	OrderID    string
	Rating     float64
	Comment    *string
	VideoURL   *string
	ProductIDs []string
	CreatedAt  time.Time
}

// Image is one member of a review's image set.
type Image struct {
	ID       int64
	ReviewID int64
	URL      string
}

// ContentCounts reports how many of a product's reviews carry a comment and
// how many carry media (images or a video).
type ContentCounts struct {
	WithComment int64
	WithMedia   int64
}

// Repository persists reviews and answers the aggregation queries.
type Repository interface {
	Get(ctx context.Context, id int64) (*Review, error)
	Create(ctx context.Context, review *Review) error
	HasUserReviewedOrder(ctx context.Context, userID, orderID string) (bool, error)

	// ListRatingsByProduct returns every rating touching the product.
	ListRatingsByProduct(ctx context.Context, productID string) ([]float64, error)

	// CountByRating returns the star distribution (1..5) for a product.
	CountByRating(ctx context.Context, productID string) (map[int]int64, error)

	// CountContent returns the comment and media totals for a product's reviews.
	CountContent(ctx context.Context, productID string) (ContentCounts, error)

	ListImages(ctx context.Context, reviewID int64) ([]Image, error)
	ReplaceImages(ctx context.Context, reviewID int64, urls []string) error
	SetVideoURL(ctx context.Context, reviewID int64, url *string) error
}
