package catalog

import "context"

// CategoryRepository exposes the category reads and media-record writes the
// pipeline needs. A nil url clears the record.
type CategoryRepository interface {
	Get(ctx context.Context, id int64) (*Category, error)
	SetImageURL(ctx context.Context, id int64, url *string) error
	SetIconURL(ctx context.Context, id int64, url *string) error
}

// BrandRepository exposes brand reads and logo writes.
type BrandRepository interface {
	Get(ctx context.Context, id int64) (*Brand, error)
	SetLogoURL(ctx context.Context, id int64, url *string) error
}

// UserRepository exposes user reads and avatar writes.
type UserRepository interface {
	Get(ctx context.Context, id string) (*User, error)
	SetImageURL(ctx context.Context, id string, url *string) error
}

// ProductRepository exposes product reads, media-record writes and the rating
// queries the aggregation engine runs.
type ProductRepository interface {
	Get(ctx context.Context, id string) (*Product, error)
	SetMainImageURL(ctx context.Context, id string, url *string) error
	SetVideoURL(ctx context.Context, id string, url *string) error
	SetRating(ctx context.Context, id string, rating *float64) error

	ListImages(ctx context.Context, productID string) ([]ProductImage, error)
	GetImages(ctx context.Context, ids []int64) ([]ProductImage, error)
	ReplaceImages(ctx context.Context, productID string, urls []string) error
	DeleteImages(ctx context.Context, productID string, ids []int64) error

	// ListRatingsByStore returns the defined ratings of a store's products;
	// unrated products are excluded.
	ListRatingsByStore(ctx context.Context, storeID string) ([]float64, error)
}

// StoreRepository exposes store reads and derived-rating writes.
type StoreRepository interface {
	Get(ctx context.Context, id string) (*Store, error)
	SetRating(ctx context.Context, id string, rating float64) error
}

// OrderRepository exposes the order reads the review path validates against.
type OrderRepository interface {
	Get(ctx context.Context, id string) (*Order, error)
	ProductIDs(ctx context.Context, orderID string) ([]string, error)
}
