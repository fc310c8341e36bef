package review_test

import (
	"context"

	"storehub-server/internal/domain/catalog"
	"storehub-server/internal/domain/review"
	"storehub-server/internal/domain/search"
)

// MockReviewRepository is a mock implementation of review.Repository.
type MockReviewRepository struct {
	GetFunc                  func(ctx context.Context, id int64) (*review.Review, error)
	CreateFunc               func(ctx context.Context, rev *review.Review) error
	HasUserReviewedOrderFunc func(ctx context.Context, userID, orderID string) (bool, error)
	ListRatingsByProductFunc func(ctx context.Context, productID string) ([]float64, error)
	CountByRatingFunc        func(ctx context.Context, productID string) (map[int]int64, error)
	CountContentFunc         func(ctx context.Context, productID string) (review.ContentCounts, error)
	ListImagesFunc           func(ctx context.Context, reviewID int64) ([]review.Image, error)
	ReplaceImagesFunc        func(ctx context.Context, reviewID int64, urls []string) error
	SetVideoURLFunc          func(ctx context.Context, reviewID int64, url *string) error
}

func (m *MockReviewRepository) Get(ctx context.Context, id int64) (*review.Review, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockReviewRepository) Create(ctx context.Context, rev *review.Review) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, rev)
	}
	return nil
}

func (m *MockReviewRepository) HasUserReviewedOrder(ctx context.Context, userID, orderID string) (bool, error) {
	if m.HasUserReviewedOrderFunc != nil {
		return m.HasUserReviewedOrderFunc(ctx, userID, orderID)
	}
	return false, nil
}

func (m *MockReviewRepository) ListRatingsByProduct(ctx context.Context, productID string) ([]float64, error) {
	if m.ListRatingsByProductFunc != nil {
		return m.ListRatingsByProductFunc(ctx, productID)
	}
	return nil, nil
}

func (m *MockReviewRepository) CountByRating(ctx context.Context, productID string) (map[int]int64, error) {
	if m.CountByRatingFunc != nil {
		return m.CountByRatingFunc(ctx, productID)
	}
	return nil, nil
}

func (m *MockReviewRepository) CountContent(ctx context.Context, productID string) (review.ContentCounts, error) {
	if m.CountContentFunc != nil {
		return m.CountContentFunc(ctx, productID)
	}
	return review.ContentCounts{}, nil
}

func (m *MockReviewRepository) ListImages(ctx context.Context, reviewID int64) ([]review.Image, error) {
	if m.ListImagesFunc != nil {
		return m.ListImagesFunc(ctx, reviewID)
	}
	return nil, nil
}

func (m *MockReviewRepository) ReplaceImages(ctx context.Context, reviewID int64, urls []string) error {
	if m.ReplaceImagesFunc != nil {
		return m.ReplaceImagesFunc(ctx, reviewID, urls)
	}
	return nil
}

func (m *MockReviewRepository) SetVideoURL(ctx context.Context, reviewID int64, url *string) error {
	if m.SetVideoURLFunc != nil {
		return m.SetVideoURLFunc(ctx, reviewID, url)
	}
	return nil
}

// MockProductRepository is a mock implementation of catalog.ProductRepository.
type MockProductRepository struct {
	GetFunc                func(ctx context.Context, id string) (*catalog.Product, error)
	SetMainImageURLFunc    func(ctx context.Context, id string, url *string) error
	SetVideoURLFunc        func(ctx context.Context, id string, url *string) error
	SetRatingFunc          func(ctx context.Context, id string, rating *float64) error
	ListImagesFunc         func(ctx context.Context, productID string) ([]catalog.ProductImage, error)
	GetImagesFunc          func(ctx context.Context, ids []int64) ([]catalog.ProductImage, error)
	ReplaceImagesFunc      func(ctx context.Context, productID string, urls []string) error
	DeleteImagesFunc       func(ctx context.Context, productID string, ids []int64) error
	ListRatingsByStoreFunc func(ctx context.Context, storeID string) ([]float64, error)
}

func (m *MockProductRepository) Get(ctx context.Context, id string) (*catalog.Product, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockProductRepository) SetMainImageURL(ctx context.Context, id string, url *string) error {
	if m.SetMainImageURLFunc != nil {
		return m.SetMainImageURLFunc(ctx, id, url)
	}
	return nil
}

func (m *MockProductRepository) SetVideoURL(ctx context.Context, id string, url *string) error {
	if m.SetVideoURLFunc != nil {
		return m.SetVideoURLFunc(ctx, id, url)
	}
	return nil
}

func (m *MockProductRepository) SetRating(ctx context.Context, id string, rating *float64) error {
	if m.SetRatingFunc != nil {
		return m.SetRatingFunc(ctx, id, rating)
	}
	return nil
}

func (m *MockProductRepository) ListImages(ctx context.Context, productID string) ([]catalog.ProductImage, error) {
	if m.ListImagesFunc != nil {
		return m.ListImagesFunc(ctx, productID)
	}
	return nil, nil
}

func (m *MockProductRepository) GetImages(ctx context.Context, ids []int64) ([]catalog.ProductImage, error) {
	if m.GetImagesFunc != nil {
		return m.GetImagesFunc(ctx, ids)
	}
	return nil, nil
}

func (m *MockProductRepository) ReplaceImages(ctx context.Context, productID string, urls []string) error {
	if m.ReplaceImagesFunc != nil {
		return m.ReplaceImagesFunc(ctx, productID, urls)
	}
	return nil
}

func (m *MockProductRepository) DeleteImages(ctx context.Context, productID string, ids []int64) error {
	if m.DeleteImagesFunc != nil {
		return m.DeleteImagesFunc(ctx, productID, ids)
	}
	return nil
}

func (m *MockProductRepository) ListRatingsByStore(ctx context.Context, storeID string) ([]float64, error) {
	if m.ListRatingsByStoreFunc != nil {
		return m.ListRatingsByStoreFunc(ctx, storeID)
	}
	return nil, nil
}

// MockStoreRepository is a mock implementation of catalog.StoreRepository.
type MockStoreRepository struct {
	GetFunc       func(ctx context.Context, id string) (*catalog.Store, error)
	SetRatingFunc func(ctx context.Context, id string, rating float64) error
}

func (m *MockStoreRepository) Get(ctx context.Context, id string) (*catalog.Store, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockStoreRepository) SetRating(ctx context.Context, id string, rating float64) error {
	if m.SetRatingFunc != nil {
		return m.SetRatingFunc(ctx, id, rating)
	}
	return nil
}

// MockOrderRepository is a mock implementation of catalog.OrderRepository.
type MockOrderRepository struct {
	GetFunc        func(ctx context.Context, id string) (*catalog.Order, error)
	ProductIDsFunc func(ctx context.Context, orderID string) ([]string, error)
}

func (m *MockOrderRepository) Get(ctx context.Context, id string) (*catalog.Order, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockOrderRepository) ProductIDs(ctx context.Context, orderID string) ([]string, error) {
	if m.ProductIDsFunc != nil {
		return m.ProductIDsFunc(ctx, orderID)
	}
	return nil, nil
}

// MockSearchRepository is a mock implementation of search.Repository.
type MockSearchRepository struct {
	FindByProductIDFunc func(ctx context.Context, productID string) (*search.Record, error)
	UpdateFunc          func(ctx context.Context, productID string, fields search.Fields) error
}

func (m *MockSearchRepository) FindByProductID(ctx context.Context, productID string) (*search.Record, error) {
	if m.FindByProductIDFunc != nil {
		return m.FindByProductIDFunc(ctx, productID)
	}
	return nil, nil
}

func (m *MockSearchRepository) Update(ctx context.Context, productID string, fields search.Fields) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, productID, fields)
	}
	return nil
}
